package theme

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tidwall/jsonc"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// LoadFile reads a preset from a YAML or JSON (comments allowed) file and
// lays it over the default preset.
func LoadFile(path string) (*Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read preset %s: %w", path, err)
	}
	p, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("preset %s: %w", path, err)
	}
	return Default().Merge(p), nil
}

// Parse decodes preset data. ext selects the format (".json", ".jsonc",
// ".yaml", ".yml"); an empty ext sniffs the content.
func Parse(data []byte, ext string) (*Preset, error) {
	p := &Preset{}
	switch strings.ToLower(ext) {
	case ".json", ".jsonc":
		if err := decodeJSON(data, p); err != nil {
			return nil, err
		}
	case ".yaml", ".yml":
		if err := decodeYAML(data, p); err != nil {
			return nil, err
		}
	default:
		trimmed := bytes.TrimSpace(data)
		if len(trimmed) > 0 && trimmed[0] == '{' {
			if err := decodeJSON(data, p); err != nil {
				return nil, err
			}
		} else if err := decodeYAML(data, p); err != nil {
			return nil, err
		}
	}
	if err := Validate(p); err != nil {
		return nil, err
	}
	return p, nil
}

func decodeJSON(data []byte, p *Preset) error {
	dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
	dec.DisallowUnknownFields()
	if err := dec.Decode(p); err != nil {
		return fmt.Errorf("failed to parse JSON: %w", err)
	}
	return nil
}

func decodeYAML(data []byte, p *Preset) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(p); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}
	return nil
}

// Validate checks that every color parses and every screen, container and
// spacing entry is a length. All problems are reported together.
func Validate(p *Preset) error {
	var err error
	for _, fam := range sortedKeys(p.Colors) {
		for _, shade := range sortedKeys(p.Colors[fam]) {
			v := p.Colors[fam][shade]
			if _, ok := ParseColor(v); !ok {
				err = multierr.Append(err, fmt.Errorf("colors.%s.%s: invalid color %q", fam, shade, v))
			}
		}
	}
	err = multierr.Append(err, validateLengths("screens", p.Screens))
	err = multierr.Append(err, validateLengths("containers", p.Containers))
	err = multierr.Append(err, validateLengths("spacing", p.Spacing))
	return err
}

func validateLengths(table string, m map[string]string) error {
	var err error
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if _, ok := ParseLength(m[k], DefaultRemBase); !ok {
			err = multierr.Append(err, fmt.Errorf("%s.%s: invalid length %q", table, k, m[k]))
		}
	}
	return err
}
