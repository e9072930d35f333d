package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/dosanma1/sysgen/pkg/xos"
)

// decoder turns a document into plain Go data.
type decoder func(data []byte) (any, error)

var decoders = map[string]decoder{
	".json": decodeJSON,
	".yaml": decodeYAML,
	".yml":  decodeYAML,
	".toml": decodeTOML,
}

func decodeJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var out any
	if err := dec.Decode(&out); err != nil {
		return nil, err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unexpected data after top-level value at offset %d", dec.InputOffset())
	}
	return out, nil
}

func decodeYAML(data []byte) (any, error) {
	var out any
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func decodeTOML(data []byte) (any, error) {
	var out map[string]any
	if err := toml.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func decoderFor(path string) (decoder, error) {
	ext := strings.ToLower(filepath.Ext(path))
	dec, ok := decoders[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %s (expected .json, .yaml, .yml or .toml)", ErrUnsupportedFormat, path)
	}
	return dec, nil
}

// Decode parses a document in the format implied by name's extension. An
// empty or null document yields an empty mapping.
func Decode(name string, data []byte) (Mapping, error) {
	dec, err := decoderFor(name)
	if err != nil {
		return nil, err
	}

	raw, err := dec(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}
	if raw == nil {
		return Mapping{}, nil
	}

	v, err := FromAny(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}
	m, ok := v.(Mapping)
	if !ok {
		return nil, fmt.Errorf("%s: top level must be a mapping, got %s", name, v.Kind())
	}
	return m, nil
}

// LoadFile reads and decodes a single configuration file.
func LoadFile(path string) (Mapping, error) {
	if _, err := decoderFor(path); err != nil {
		return nil, err
	}
	data, err := xos.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Decode(path, data)
}

// Load merges the given files, in order, followed by the key=value
// overrides, in order. Every file extension is checked before any file is
// read.
func Load(paths []string, overrides []string) (Mapping, error) {
	for _, p := range paths {
		if _, err := decoderFor(p); err != nil {
			return nil, err
		}
	}
	vars, err := ParseOverrides(overrides)
	if err != nil {
		return nil, err
	}

	cfg := Mapping{}
	for _, p := range paths {
		fragment, err := LoadFile(p)
		if err != nil {
			return nil, err
		}
		if err := Merge(cfg, fragment); err != nil {
			return nil, fmt.Errorf("failed to merge %s: %w", p, err)
		}
	}
	for i, v := range vars {
		if err := Merge(cfg, v); err != nil {
			return nil, fmt.Errorf("failed to merge override %q: %w", overrides[i], err)
		}
	}
	return cfg, nil
}
