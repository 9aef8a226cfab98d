// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"sort"
	"strings"

	"github.com/knadh/koanf/maps"
)

// PathSeparator splits a dotted path into its segments.
const PathSeparator = "."

// EnvironmentNameKey is the root key that carries the resolved environment
// name after all sources have been merged.
const EnvironmentNameKey = "environmentName"

// Tree is the resolved configuration. A value is either a scalar (string,
// bool, number, slice) or a nested map[string]any node.
//
// Nested nodes are always plain map[string]any so that values decoded from
// JSON or YAML documents and nodes created by path expansion look the same.
type Tree map[string]any

// NewTree returns an empty [Tree].
func NewTree() Tree {
	return Tree{}
}

// SplitPath splits a dotted path into segments.
func SplitPath(path string) []string {
	return strings.Split(path, PathSeparator)
}

// Expand descends along all but the last segment of path, creating empty
// nodes where a segment is absent, and returns the node reached together with
// the last segment name.
//
// A scalar found on an intermediate segment is replaced by an empty node.
func (t Tree) Expand(path string) (map[string]any, string) {
	return t.expandSegments(SplitPath(path))
}

func (t Tree) expandSegments(segments []string) (map[string]any, string) {
	current := map[string]any(t)
	last := segments[len(segments)-1]

	for _, segment := range segments[:len(segments)-1] {
		next, ok := asNode(current[segment])
		if !ok {
			next = make(map[string]any)
			current[segment] = next
		}
		current = next
	}

	return current, last
}

// Set assigns value at the dotted path, creating intermediate nodes.
func (t Tree) Set(path string, value any) {
	node, last := t.Expand(path)
	node[last] = value
}

// SetSegments assigns value at the location named by already split segments.
// Segments may themselves contain the path separator.
func (t Tree) SetSegments(segments []string, value any) {
	if len(segments) == 0 {
		return
	}
	node, last := t.expandSegments(segments)
	node[last] = value
}

// Get returns the value at the dotted path without modifying the tree.
func (t Tree) Get(path string) (any, bool) {
	return t.lookup(SplitPath(path))
}

func (t Tree) lookup(segments []string) (any, bool) {
	current := map[string]any(t)
	last := segments[len(segments)-1]

	for _, segment := range segments[:len(segments)-1] {
		next, ok := asNode(current[segment])
		if !ok {
			return nil, false
		}
		current = next
	}

	value, ok := current[last]
	return value, ok
}

// Boolean reports whether the leaf at path is the boolean true or the string
// "true". Missing paths yield false.
func (t Tree) Boolean(path string) bool {
	value, ok := t.Get(path)
	if !ok {
		return false
	}

	switch v := value.(type) {
	case bool:
		return v
	case string:
		return v == "true"
	default:
		return false
	}
}

// String returns the leaf at path when it holds a string.
func (t Tree) String(path string) (string, bool) {
	value, ok := t.Get(path)
	if !ok {
		return "", false
	}
	s, ok := value.(string)
	return s, ok
}

// EnvironmentName returns the environment name the tree was resolved for.
func (t Tree) EnvironmentName() string {
	name, _ := t[EnvironmentNameKey].(string)
	return name
}

// FindFold looks path up ignoring case and returns the segments as they are
// spelled in the tree. Exact matches are preferred over case-folded ones; among
// several case-folded candidates the lexically smallest key wins.
func (t Tree) FindFold(path string) ([]string, bool) {
	segments := SplitPath(path)
	found := make([]string, 0, len(segments))
	current := map[string]any(t)

	for i, segment := range segments {
		key, ok := foldKey(current, segment)
		if !ok {
			return nil, false
		}
		found = append(found, key)

		if i == len(segments)-1 {
			break
		}
		next, ok := asNode(current[key])
		if !ok {
			return nil, false
		}
		current = next
	}

	return found, true
}

// Clone returns a deep copy of the tree.
func (t Tree) Clone() Tree {
	return Tree(maps.Copy(map[string]any(t)))
}

// Flatten returns the tree as a single-level map keyed by dotted paths.
// Empty nodes are kept as empty maps.
func (t Tree) Flatten() map[string]any {
	flat, _ := maps.Flatten(map[string]any(t), nil, PathSeparator)
	return flat
}

func foldKey(node map[string]any, segment string) (string, bool) {
	if _, ok := node[segment]; ok {
		return segment, true
	}

	candidates := make([]string, 0, 1)
	for key := range node {
		if strings.EqualFold(key, segment) {
			candidates = append(candidates, key)
		}
	}
	if len(candidates) == 0 {
		return "", false
	}
	sort.Strings(candidates)
	return candidates[0], true
}

func asNode(value any) (map[string]any, bool) {
	switch v := value.(type) {
	case map[string]any:
		return v, true
	case Tree:
		return v, true
	default:
		return nil, false
	}
}
