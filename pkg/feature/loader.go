package feature

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrEmptyDocument is returned when a features document has no content.
var ErrEmptyDocument = errors.New("feature: document is empty")

type documentFile struct {
	Features []recordFile `json:"features" yaml:"features"`
}

type recordFile struct {
	Title       string `json:"title" yaml:"title"`
	Icon        string `json:"icon" yaml:"icon"`
	Description string `json:"description" yaml:"description"`
}

// LoadFS reads the features document at path inside fsys.
func LoadFS(fsys fs.FS, path string) (List, error) {
	if fsys == nil {
		return List{}, errors.New("feature: filesystem is required")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return List{}, fmt.Errorf("feature: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse decodes a JSON or YAML features document. JSON is attempted first;
// source is only used in error messages.
func Parse(data []byte, source string) (List, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return List{}, fmt.Errorf("%w: %s", ErrEmptyDocument, source)
	}

	var doc documentFile
	if err := json.Unmarshal(data, &doc); err != nil {
		doc = documentFile{}
		if yamlErr := yaml.Unmarshal(data, &doc); yamlErr != nil {
			return List{}, fmt.Errorf("feature: parse %s: invalid JSON or YAML: %w", source, yamlErr)
		}
	}

	records := make([]Record, 0, len(doc.Features))
	for i, raw := range doc.Features {
		record, err := New(raw.Title, IconRef(raw.Icon), raw.Description)
		if err != nil {
			return List{}, fmt.Errorf("feature: %s entry %d: %w", source, i, err)
		}
		records = append(records, record)
	}
	return List{records: records}, nil
}

// EncodeYAML writes the list as a features document that Parse can read back.
func EncodeYAML(list List) ([]byte, error) {
	doc := documentFile{Features: make([]recordFile, 0, list.Len())}
	for _, record := range list.records {
		doc.Features = append(doc.Features, recordFile{
			Title:       record.title,
			Icon:        string(record.icon),
			Description: string(record.description),
		})
	}
	out, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("feature: encode yaml: %w", err)
	}
	return out, nil
}
