// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// ParseScalar converts an overlay value into the value stored in the tree.
// "true" and "false" in any letter case become booleans; every other string is
// returned unchanged.
func ParseScalar(raw string) any {
	switch {
	case strings.EqualFold(raw, "true"):
		return true
	case strings.EqualFold(raw, "false"):
		return false
	default:
		return raw
	}
}
