/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package schema

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Schema file contents
type File struct {
	Version  string        `yaml:"version,omitempty"`
	Generics []*NodeSchema `yaml:"generics,omitempty"`
	Nodes    []*NodeSchema `yaml:"nodes,omitempty"`
}

// Returns generics followed by nodes, types are set by section
func (f *File) Schemas() []*NodeSchema {
	res := make([]*NodeSchema, 0, len(f.Generics)+len(f.Nodes))
	for _, g := range f.Generics {
		g.Type = NodeTypeGeneric
		res = append(res, g)
	}
	for _, n := range f.Nodes {
		if n.Type == "" {
			n.Type = NodeTypeNode
		}
		res = append(res, n)
	}
	return res
}

func Parse(data []byte) (*File, error) {
	f := &File{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(f); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSchema, err)
	}
	return f, nil
}

// Loads schemas from YAML files. Files are read in order, kinds must be unique across files
func LoadFiles(paths ...string) ([]*NodeSchema, error) {
	res := []*NodeSchema{}
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, err
		}
		f, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p, err)
		}
		res = append(res, f.Schemas()...)
	}
	return res, nil
}
