package content

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Load reads a YAML override from fsys and applies it on top of the
// defaults. Only the keys present in the file replace default values; lists
// are replaced as a whole. An empty path returns the defaults.
func Load(fsys afero.Fs, path string) (*Catalog, error) {
	cat := Default()
	if path == "" {
		return cat, nil
	}

	raw, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read content file %s: %w", path, err)
	}
	if err := Decode(raw, cat); err != nil {
		return nil, fmt.Errorf("parse content file %s: %w", path, err)
	}
	if err := cat.Validate(); err != nil {
		return nil, fmt.Errorf("content file %s: %w", path, err)
	}
	return cat, nil
}

// Decode applies raw YAML onto cat. Unknown keys are rejected so typos do not
// silently leave the default copy in place.
func Decode(raw []byte, cat *Catalog) error {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(cat); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
