// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pigment

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/iox/jsonx"
	"cogentcore.org/core/base/iox/tomlx"
	"cogentcore.org/core/base/iox/yamlx"
	"cogentcore.org/paintmix/spectral"
	"github.com/Masterminds/semver/v3"
	"github.com/mitchellh/go-homedir"
)

// Format is a palette file encoding.
type Format int32

const (
	TOML Format = iota
	YAML
	JSON
)

func (f Format) String() string {
	switch f {
	case TOML:
		return "toml"
	case YAML:
		return "yaml"
	case JSON:
		return "json"
	}
	return fmt.Sprintf("Format(%d)", int32(f))
}

// FormatOf returns the format implied by the extension of path.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	case ".json":
		return JSON, nil
	}
	return 0, fmt.Errorf("pigment: unsupported palette file extension %q", filepath.Ext(path))
}

// File is the document stored in a palette file.
type File struct {

	// Version is an optional semver constraint, such as "^1.0",
	// that the observer table version must satisfy for the
	// reflectances to be interpreted as intended.
	Version string `toml:"version" yaml:"version" json:"version,omitempty"`

	// Pigments are the pigment definitions.
	Pigments []Source `toml:"pigments" yaml:"pigments" json:"pigments"`
}

// Decode reads a palette document in the given format.
func Decode(r io.Reader, format Format) (*File, error) {
	f := &File{}
	var err error
	switch format {
	case TOML:
		err = tomlx.Read(f, r)
	case YAML:
		err = yamlx.Read(f, r)
	case JSON:
		err = jsonx.Read(f, r)
	default:
		err = fmt.Errorf("unknown format %v", format)
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("pigment: decoding %v palette: %w", format, err)
	}
	return f, nil
}

// ReadFile opens and decodes the palette file at path, which may
// start with ~ for the home directory.
func ReadFile(path string) (*File, error) {
	path, err := homedir.Expand(path)
	if err != nil {
		return nil, err
	}
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	fp, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	f, err := Decode(fp, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Check returns an error if the file declares a version constraint
// that the observer table does not satisfy.
func (f *File) Check(obs *spectral.Observer) error {
	if f.Version == "" {
		return nil
	}
	c, err := semver.NewConstraint(f.Version)
	if err != nil {
		return fmt.Errorf("pigment: invalid palette version constraint %q: %w", f.Version, err)
	}
	if !c.Check(obs.Version) {
		return fmt.Errorf("pigment: palette requires observer %s, have %s %v", f.Version, obs.Name, obs.Version)
	}
	return nil
}

// Build returns a palette on g of the built-in pigments extended by the
// pigments of the palette file and the samples spreadsheet. Either path
// may be empty. Pigments from the files replace built-in pigments of
// the same name.
func Build(g spectral.Grid, obs *spectral.Observer, paletteFile, samplesFile string) (*Palette, error) {
	var extra []Source
	if paletteFile != "" {
		f, err := ReadFile(paletteFile)
		if err != nil {
			return nil, err
		}
		if err := f.Check(obs); err != nil {
			return nil, fmt.Errorf("%s: %w", paletteFile, err)
		}
		extra = append(extra, f.Pigments...)
	}
	if samplesFile != "" {
		s, err := ReadSamplesFile(samplesFile)
		if err != nil {
			return nil, err
		}
		extra = append(extra, s...)
	}
	base, err := NewBuiltin(g)
	if err != nil {
		return nil, err
	}
	return base.With(extra...)
}
