// Package config holds the generator settings and the default placeholder params.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"time"

	"github.com/ancientlore/makesite/render"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ParamsFiles are the params file names looked up at the site root, in order.
// The first one found is used.
var ParamsFiles = []string{"params.json", "params.toml", "params.yaml", "params.yml"}

// DefaultParams returns the params every page starts from.
func DefaultParams(now time.Time) render.Params {
	return render.Params{
		"base_path":    "",
		"subtitle":     "Lorem Ipsum",
		"author":       "Admin",
		"site_url":     "http://localhost:8000/",
		"current_year": now.Year(),
		"imports":      "",
		"index":        "",
	}
}

// LoadParams merges the first params file found in fsys over defaults.
// It is not an error if there is no params file.
func LoadParams(fsys fs.FS, defaults render.Params) (render.Params, error) {
	for _, name := range ParamsFiles {
		b, err := fs.ReadFile(fsys, name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		} else if err != nil {
			return nil, fmt.Errorf("LoadParams: %w", err)
		}
		m, err := decodeParams(name, b)
		if err != nil {
			return nil, fmt.Errorf("LoadParams %q: %w", name, err)
		}
		return defaults.With(m), nil
	}
	return defaults.With(), nil
}

func decodeParams(name string, b []byte) (map[string]any, error) {
	var m map[string]any
	switch path.Ext(name) {
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(b))
		dec.UseNumber()
		if err := dec.Decode(&m); err != nil {
			return nil, err
		}
	case ".toml":
		if err := toml.Unmarshal(b, &m); err != nil {
			return nil, err
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &m); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported params format %q", path.Ext(name))
	}
	return m, nil
}
