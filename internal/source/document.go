// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package source

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DocumentExtensions lists the suffixes tried, in order, when a document is
// looked up. The empty suffix matches the extension-less file itself.
var DocumentExtensions = []string{".json", ".yaml", ".yml", ""}

// DocumentLoader reads structured documents from the file system.
type DocumentLoader struct{}

// NewDocumentLoader returns a file-system backed [DocumentLoader].
func NewDocumentLoader() *DocumentLoader {
	return &DocumentLoader{}
}

// Load decodes the first existing candidate of the extension-less path.
//
// Returns [ErrDocumentNotFound] when no candidate exists, a wrapped read
// error when the file cannot be read and [ErrMalformedDocument] when its
// content is not a key-value mapping.
func (l *DocumentLoader) Load(path string) (map[string]any, error) {
	file, ok := l.Find(path)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrDocumentNotFound, path)
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("error reading document %s: %w", file, err)
	}

	doc, err := decodeDocument(filepath.Ext(file), data)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrMalformedDocument, file, err)
	}

	return doc, nil
}

// Find returns the first candidate file of the extension-less path that
// exists and is not a directory.
func (l *DocumentLoader) Find(path string) (string, bool) {
	for _, ext := range DocumentExtensions {
		candidate := path + ext
		info, err := os.Stat(candidate)
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				// stat failed for another reason; let ReadFile report it
				return candidate, true
			}
			continue
		}
		if info.IsDir() {
			continue
		}
		return candidate, true
	}

	return "", false
}

func decodeDocument(ext string, data []byte) (map[string]any, error) {
	doc := make(map[string]any)
	if len(bytes.TrimSpace(data)) == 0 {
		return doc, nil
	}

	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
		if doc == nil {
			doc = make(map[string]any)
		}
	default:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
	}

	return normalize(doc), nil
}

// normalize converts YAML mappings with non-string keys into map[string]any
// so the whole document uses a single node type.
func normalize(node map[string]any) map[string]any {
	for key, value := range node {
		node[key] = normalizeValue(value)
	}
	return node
}

func normalizeValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		return normalize(v)
	case map[any]any:
		converted := make(map[string]any, len(v))
		for key, inner := range v {
			converted[fmt.Sprint(key)] = normalizeValue(inner)
		}
		return converted
	case []any:
		for i, inner := range v {
			v[i] = normalizeValue(inner)
		}
		return v
	default:
		return value
	}
}
