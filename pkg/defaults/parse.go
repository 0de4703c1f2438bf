package defaults

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-snowstart/pkg/options"
)

// Parse decodes a defaults document. The format follows the file extension;
// unknown extensions are tried as JSON, then YAML.
func Parse(path string, data []byte) (options.Record, error) {
	if strings.TrimSpace(string(data)) == "" {
		return nil, &ParseError{Path: path, Err: errors.New("file is empty")}
	}

	var (
		raw map[string]any
		err error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		raw, err = decodeYAML(data)
	case ".json":
		raw, err = decodeJSON(data)
	case ".toml":
		raw, err = decodeTOML(data)
	default:
		raw, err = decodeJSON(data)
		if err != nil {
			raw, err = decodeYAML(data)
		}
	}
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	if raw == nil {
		return nil, &ParseError{Path: path, Err: errors.New("document is not a mapping")}
	}

	rec := make(options.Record, len(raw))
	for k, v := range raw {
		rec[k] = canonical(v)
	}
	return rec, nil
}

func decodeYAML(data []byte) (map[string]any, error) {
	var out map[string]any
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("yaml: %w", err)
	}
	return out, nil
}

func decodeJSON(data []byte) (map[string]any, error) {
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("json: %w", err)
	}
	return out, nil
}

func decodeTOML(data []byte) (map[string]any, error) {
	var out map[string]any
	if err := toml.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("toml: %w", err)
	}
	return out, nil
}

// canonical turns lists made only of strings into []string so records loaded
// from any format compare equal to the built-in table. Other values are kept
// as decoded.
func canonical(value any) any {
	list, ok := value.([]any)
	if !ok {
		return value
	}
	out := make([]string, 0, len(list))
	for _, item := range list {
		s, ok := item.(string)
		if !ok {
			return value
		}
		out = append(out, s)
	}
	return out
}
