package menu

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrEmptyDefinition is returned when a menu definition document is empty.
var ErrEmptyDefinition = errors.New("menu definition is empty")

// LoadDefinition decodes a YAML menu definition. Unknown keys are rejected.
func LoadDefinition(r io.Reader) (Definition, error) {
	var def Definition
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&def); err != nil {
		if errors.Is(err, io.EOF) {
			return Definition{}, ErrEmptyDefinition
		}
		return Definition{}, fmt.Errorf("decode menu definition: %w", err)
	}
	return def, nil
}

// LoadFile reads a YAML menu definition from disk and builds its tree.
func LoadFile(path string) (*Tree, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open menu file: %w", err)
	}
	defer f.Close()

	def, err := LoadDefinition(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	tree, err := FromDefinition(def)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tree, nil
}
