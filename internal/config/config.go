// Package config loads optional solver settings from a YAML file.
// Values present in the file act as defaults; command line flags the user
// set explicitly take precedence.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// File mirrors the YAML document. Every field is a pointer so that an
// absent key can be told apart from an explicit zero.
type File struct {
	Ants        *int     `yaml:"ants"`
	Iterations  *int     `yaml:"iterations"`
	Evaporation *float64 `yaml:"evaporation"`
	Alpha       *float64 `yaml:"alpha"`
	Beta        *float64 `yaml:"beta"`
	MinDist     *float64 `yaml:"min-dist"`
	Seed        *int64   `yaml:"seed"`
	Parallel    *int     `yaml:"parallel"`
	Except      []string `yaml:"except"`
}

// Load reads and parses the YAML file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML document. Unknown keys are rejected so a typo in a
// setting name does not silently fall back to the default.
func Parse(data []byte) (*File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return &File{}, nil
		}
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &f, nil
}

// Settings are the effective solver settings after merging the config
// file with flag values.
type Settings struct {
	Ants        int
	Iterations  int
	Evaporation float64
	Alpha       float64
	Beta        float64
	MinDist     float64
	Seed        int64
	Parallel    int
	Except      []string
}

// Merge overlays the file onto base for every setting the file carries,
// except those named in explicit, which the user set on the command line.
func (f *File) Merge(base Settings, explicit map[string]bool) Settings {
	if f == nil {
		return base
	}
	set := func(name string) bool { return !explicit[name] }
	if f.Ants != nil && set("ants") {
		base.Ants = *f.Ants
	}
	if f.Iterations != nil && set("iterations") {
		base.Iterations = *f.Iterations
	}
	if f.Evaporation != nil && set("evaporation") {
		base.Evaporation = *f.Evaporation
	}
	if f.Alpha != nil && set("alpha") {
		base.Alpha = *f.Alpha
	}
	if f.Beta != nil && set("beta") {
		base.Beta = *f.Beta
	}
	if f.MinDist != nil && set("min-dist") {
		base.MinDist = *f.MinDist
	}
	if f.Seed != nil && set("seed") {
		base.Seed = *f.Seed
	}
	if f.Parallel != nil && set("parallel") {
		base.Parallel = *f.Parallel
	}
	if len(f.Except) > 0 && set("except") {
		base.Except = f.Except
	}
	return base
}
