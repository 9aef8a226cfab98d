// Package printer renders a resolved tree for the config-resolve binary.
package printer

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/MKhiriev/go-layered-config/internal/config"
	"github.com/MKhiriev/go-layered-config/models"
	"gopkg.in/yaml.v3"
)

// Write renders tree to w in the given format (see [config.OutputFormats]).
func Write(w io.Writer, tree models.Tree, format string) error {
	switch format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(tree); err != nil {
			return fmt.Errorf("error encoding json: %w", err)
		}
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(map[string]any(tree)); err != nil {
			return fmt.Errorf("error encoding yaml: %w", err)
		}
		return enc.Close()
	case config.FormatFlat:
		return writeFlat(w, tree)
	default:
		return fmt.Errorf("%w: %q", config.ErrInvalidOutputFormat, format)
	}

	return nil
}

// writeFlat prints one sorted key=value line per leaf. Strings are printed
// as is, other values as JSON.
func writeFlat(w io.Writer, tree models.Tree) error {
	flat := tree.Flatten()
	for _, key := range slices.Sorted(maps.Keys(flat)) {
		value, err := flatValue(flat[key])
		if err != nil {
			return fmt.Errorf("error encoding %s: %w", key, err)
		}
		if _, err = fmt.Fprintf(w, "%s=%s\n", key, value); err != nil {
			return err
		}
	}
	return nil
}

func flatValue(value any) (string, error) {
	if s, ok := value.(string); ok {
		return s, nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
