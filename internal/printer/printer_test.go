package printer

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/MKhiriev/go-layered-config/internal/config"
	"github.com/MKhiriev/go-layered-config/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleTree() models.Tree {
	return models.Tree{
		"prop":                    "value",
		"level1":                  map[string]any{"level2": "nested value", "list": []any{1, "two"}},
		"bool1":                   true,
		models.EnvironmentNameKey: "development",
	}
}

// TestWrite_JSON verifies that the JSON output decodes back to the tree.
func TestWrite_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleTree(), config.FormatJSON))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "value", decoded["prop"])
	assert.Equal(t, true, decoded["bool1"])
	assert.Equal(t, "nested value", decoded["level1"].(map[string]any)["level2"])
}

// TestWrite_YAML verifies that the YAML output decodes back to the tree.
func TestWrite_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleTree(), config.FormatYAML))

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "development", decoded[models.EnvironmentNameKey])
	assert.Equal(t, map[string]any{"level2": "nested value", "list": []any{1, "two"}}, decoded["level1"])
}

// TestWrite_Flat verifies sorted key=value lines.
func TestWrite_Flat(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleTree(), config.FormatFlat))

	assert.Equal(t, "bool1=true\n"+
		"environmentName=development\n"+
		"level1.level2=nested value\n"+
		"level1.list=[1,\"two\"]\n"+
		"prop=value\n", buf.String())
}

// TestWrite_UnknownFormat verifies the format check.
func TestWrite_UnknownFormat(t *testing.T) {
	err := Write(&bytes.Buffer{}, sampleTree(), "xml")
	assert.ErrorIs(t, err, config.ErrInvalidOutputFormat)
}
