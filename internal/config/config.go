// Package config holds minihol's version constants, default grammar
// separators, and the YAML bootstrap-file loader: a declarative prelude of
// base types, notations, and axioms a script can be run on top of.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Version is the current minihol version, overridable at build time via
// -ldflags.
var Version = "0.1.0"

// DefaultSeparators is the initial separator set a fresh CoreState's trie is
// built from.
var DefaultSeparators = []string{
	"(", ")", "->", "\\", ":", ",", "!!", "=>", ":=",
	"assum", "intro", "apply", "have",
	"notation", "axiom", "prove", "by",
}

// DescrSpec is one element of a bootstrap notation's surface pattern: either
// a literal atom or a term slot naming its type by reference and the
// precedence it recurses at.
type DescrSpec struct {
	Atom string `yaml:"atom,omitempty"`
	Ty   string `yaml:"ty,omitempty"`
	Prec int    `yaml:"prec,omitempty"`
}

// NotationSpec is one bootstrap notation declaration, the YAML equivalent of
// a `notation` command.
type NotationSpec struct {
	Name   string      `yaml:"name"`
	Prec   int         `yaml:"prec"`
	BaseTy string      `yaml:"baseTy"`
	Descrs []DescrSpec `yaml:"descrs"`
}

// AxiomSpec is one bootstrap axiom, given as raw rule source text to be
// parsed and elaborated the same way a script's `axiom` command is.
type AxiomSpec struct {
	Name   string `yaml:"name"`
	Source string `yaml:"rule"`
}

// Prelude is a bootstrap environment a script can be run on top of: base
// types, notations introducing constants, and axioms, all declared before
// any user-supplied script text is parsed.
type Prelude struct {
	Types     []string       `yaml:"types"`
	Notations []NotationSpec `yaml:"notations"`
	Axioms    []AxiomSpec    `yaml:"axioms"`
}

// LoadBootstrap reads and parses a YAML prelude file.
func LoadBootstrap(path string) (*Prelude, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading bootstrap %s: %w", path, err)
	}
	return ParseBootstrap(data, path)
}

// ParseBootstrap parses prelude YAML content from bytes. path is used only
// for error messages.
func ParseBootstrap(data []byte, path string) (*Prelude, error) {
	var p Prelude
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing bootstrap %s: %w", path, err)
	}
	for i, n := range p.Notations {
		if n.Name == "" {
			return nil, fmt.Errorf("%s: notations[%d]: name is required", path, i)
		}
		if n.BaseTy == "" {
			return nil, fmt.Errorf("%s: notations[%d] (%s): baseTy is required", path, i, n.Name)
		}
	}
	return &p, nil
}
