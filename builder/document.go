// SPDX-License-Identifier: MIT
// Package: SEB/builder
//
// document.go - declarative World descriptions decoded from YAML or TOML.
//
// A description is an ordered list of steps replayed against a World:
//
//	name: diblock
//	steps:
//	  - {op: add, type: GaussianPolymer, name: A, tag: poly}
//	  - {op: link, type: GaussianPolymer, new: B.end1, existing: A.end2, tag: poly}
//	  - {op: structure, name: AB, graph: A}
//	params:
//	  Rg_poly: 10
//
// Graphs are referred to by the name of any sub-unit or structure recorded
// in them by an earlier step.

package builder

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/Tobionecenobi/SEB/errors"
)

// Document is a decoded description.
type Document struct {
	Name  string `yaml:"name" toml:"name"`
	Steps []Step `yaml:"steps" toml:"steps"`
	// Params holds default parameter values for evaluating the described
	// World's expressions.
	Params map[string]float64 `yaml:"params" toml:"params"`
}

// Step is one World operation. Which fields are read depends on Op:
//
//	add:           Type, Name, Tag
//	link:          Type, New, Existing, Tag
//	structure:     Name, Graph
//	linkstructure: Graph, New, Existing
type Step struct {
	Op       string `yaml:"op" toml:"op"`
	Type     string `yaml:"type" toml:"type"`
	Name     string `yaml:"name" toml:"name"`
	Tag      string `yaml:"tag" toml:"tag"`
	New      string `yaml:"new" toml:"new"`
	Existing string `yaml:"existing" toml:"existing"`
	Graph    string `yaml:"graph" toml:"graph"`
}

// ParseYAML decodes and validates a YAML description.
func ParseYAML(data []byte) (*Document, error) {
	var d Document
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, errors.Wrapf(ErrBadDocument, "yaml: %v", err)
	}
	return &d, d.Validate()
}

// ParseTOML decodes and validates a TOML description. Keys the Document
// does not know are rejected.
func ParseTOML(data []byte) (*Document, error) {
	var d Document
	md, err := toml.Decode(string(data), &d)
	if err != nil {
		return nil, errors.Wrapf(ErrBadDocument, "toml: %v", err)
	}
	if und := md.Undecoded(); len(und) > 0 {
		return nil, errors.Wrapf(ErrBadDocument, "toml: unknown keys %v", und)
	}
	return &d, d.Validate()
}

// LoadDocument reads the description at path, choosing the decoder by
// extension: .yaml, .yml or .toml.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading description %s", path)
	}
	var d *Document
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		d, err = ParseYAML(data)
	case ".toml":
		d, err = ParseTOML(data)
	default:
		return nil, errors.WithHint(
			errors.Wrapf(ErrBadDocument, "unsupported extension %q", ext),
			"use .yaml, .yml or .toml")
	}
	if err != nil {
		return nil, errors.Wrapf(err, "description %s", path)
	}
	return d, nil
}

// Validate checks that every step names a known op and carries the fields
// that op reads. It does not consult a World.
func (d *Document) Validate() error {
	if len(d.Steps) == 0 {
		return errors.Wrap(ErrBadDocument, "no steps")
	}
	for i, s := range d.Steps {
		if err := s.validate(); err != nil {
			return errors.Wrapf(err, "step %d", i)
		}
	}
	return nil
}

func (s Step) validate() error {
	var need map[string]string
	switch strings.ToLower(s.Op) {
	case OpAdd:
		need = map[string]string{"type": s.Type, "name": s.Name}
	case OpLink:
		need = map[string]string{"type": s.Type, "new": s.New, "existing": s.Existing}
	case OpStructure:
		need = map[string]string{"name": s.Name, "graph": s.Graph}
	case OpLinkStructure:
		need = map[string]string{"graph": s.Graph, "new": s.New, "existing": s.Existing}
	default:
		return errors.Wrapf(ErrUnknownStep, "op %q", s.Op)
	}
	for _, field := range []string{"type", "name", "new", "existing", "graph"} {
		if v, ok := need[field]; ok && v == "" {
			return errors.Wrapf(ErrBadDocument, "%s step without %s", s.Op, field)
		}
	}
	return nil
}
