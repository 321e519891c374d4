package props

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v2"
)

// ErrUnsupportedFormat is returned by LoadFile for extensions other than
// .json, .yaml and .yml.
var ErrUnsupportedFormat = errors.New("unsupported props file format")

// LoadFile reads a base configuration from a JSON or YAML file.
func LoadFile(path string) (Props, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Props{}, fmt.Errorf("read props: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return Parse(data)
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return Props{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// Parse decodes a JSON configuration.
func Parse(data []byte) (Props, error) {
	var p Props
	if err := json.Unmarshal(data, &p); err != nil {
		return Props{}, fmt.Errorf("parse props: %w", err)
	}
	return p, nil
}

// ParseYAML decodes a YAML configuration. The document is converted to JSON
// first so both formats share one set of decoding rules.
func ParseYAML(data []byte) (Props, error) {
	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Props{}, fmt.Errorf("parse props: %w", err)
	}
	if doc == nil {
		return Props{}, nil
	}

	normalized, err := jsonCompatible(doc)
	if err != nil {
		return Props{}, fmt.Errorf("parse props: %w", err)
	}
	body, err := json.Marshal(normalized)
	if err != nil {
		return Props{}, fmt.Errorf("parse props: %w", err)
	}
	return Parse(body)
}

// jsonCompatible rewrites the map[interface{}]interface{} values yaml.v2
// produces into string-keyed maps.
func jsonCompatible(v interface{}) (interface{}, error) {
	switch t := v.(type) {
	case map[interface{}]interface{}:
		out := make(map[string]interface{}, len(t))
		for k, val := range t {
			key, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("non-string key %v", k)
			}
			conv, err := jsonCompatible(val)
			if err != nil {
				return nil, err
			}
			out[key] = conv
		}
		return out, nil
	case []interface{}:
		out := make([]interface{}, len(t))
		for i, val := range t {
			conv, err := jsonCompatible(val)
			if err != nil {
				return nil, err
			}
			out[i] = conv
		}
		return out, nil
	default:
		return v, nil
	}
}
