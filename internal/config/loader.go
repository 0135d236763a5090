package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/naoina/toml"
	"gopkg.in/yaml.v3"

	"type-caster/strategy"
)

// CurrentVersion is the only chain file version understood.
const CurrentVersion = "1"

var ErrUnknownFormat = errors.New("unknown chain file format")

// tomlSettings rejects keys that do not map to a field.
var tomlSettings = toml.Config{
	NormFieldName: toml.DefaultConfig.NormFieldName,
	FieldToKey:    toml.DefaultConfig.FieldToKey,
	MissingField: func(rt reflect.Type, field string) error {
		return fmt.Errorf("field %q is not defined in %s", field, rt.Name())
	},
}

// Default returns the chain file equivalent to the default strategies.
func Default() *ChainFile {
	cf := &ChainFile{}
	applyDefaults(cf)

	return cf
}

// FormatOf picks the format from the file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}

// LoadFile loads and parses a chain file from the given path.
func LoadFile(path string) (*ChainFile, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read chain file %s: %w", path, err)
	}

	cf, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cf, nil
}

// Parse parses chain file data in the given format.
func Parse(data []byte, format Format) (*ChainFile, error) {
	var cf ChainFile

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &cf); err != nil {
			return nil, fmt.Errorf("failed to parse chain YAML: %w", err)
		}
	case FormatTOML:
		if err := tomlSettings.Unmarshal(data, &cf); err != nil {
			return nil, fmt.Errorf("failed to parse chain TOML: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}

	applyDefaults(&cf)

	return &cf, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(cf *ChainFile) {
	if cf.Version == "" {
		cf.Version = CurrentVersion
	}

	if len(cf.Strategies) == 0 {
		cf.Strategies = strategy.DefaultNames()
	}
}

// Marshal serializes a ChainFile in the given format.
func Marshal(cf *ChainFile, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		return yaml.Marshal(cf)
	case FormatTOML:
		return tomlSettings.Marshal(cf)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
}

// WriteFile writes a ChainFile to the given path, in the format of its extension.
func WriteFile(cf *ChainFile, path string) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}

	data, err := Marshal(cf, format)
	if err != nil {
		return fmt.Errorf("failed to marshal chain file: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write chain file %s: %w", path, err)
	}

	return nil
}
