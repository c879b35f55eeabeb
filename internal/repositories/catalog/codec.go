package catalog

import (
	"encoding/json"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-gearset/internal/entities/gear"
	"github.com/KirkDiggler/rpg-gearset/internal/errors"
)

// Format is a catalog file encoding
type Format string

// Supported formats
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks a format from a file extension, defaulting to JSON
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Decode reads a list of item records and validates each one
func Decode(r io.Reader, format Format) ([]gear.Item, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read catalog")
	}

	var items []gear.Item
	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, &items)
	case FormatYAML:
		err = yaml.Unmarshal(data, &items)
	default:
		return nil, errors.InvalidArgumentf("unsupported catalog format %q", format)
	}
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeInvalidArgument, "failed to parse %s catalog", format)
	}

	if err := Validate(items); err != nil {
		return nil, err
	}
	return items, nil
}

// Encode writes items in the given format
func Encode(w io.Writer, format Format, items []gear.Item) error {
	if items == nil {
		items = []gear.Item{}
	}

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(items); err != nil {
			return errors.Wrap(err, "failed to encode catalog")
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(items); err != nil {
			return errors.Wrap(err, "failed to encode catalog")
		}
		if err := enc.Close(); err != nil {
			return errors.Wrap(err, "failed to encode catalog")
		}
	default:
		return errors.InvalidArgumentf("unsupported catalog format %q", format)
	}
	return nil
}

// Validate checks every record, reporting the first invalid one
func Validate(items []gear.Item) error {
	for i := range items {
		if err := items[i].Validate(); err != nil {
			return errors.Wrapf(err, "invalid catalog record %d", i).
				WithMeta("record", i).
				WithMeta("name", items[i].Name)
		}
	}
	return nil
}
