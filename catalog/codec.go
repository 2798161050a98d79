// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package catalog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// Format is a catalog file encoding.
type Format int

const (
	FormatYAML Format = iota
	FormatMsgpack
)

func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatMsgpack:
		return "msgpack"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// file is the on-disk layout shared by both encodings.
type file struct {
	Materials []Material `yaml:"materials" msgpack:"materials"`
}

// FormatOf picks the encoding from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".msgpack", ".mp":
		return FormatMsgpack, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

// Decode reads a material list.
func Decode(r io.Reader, format Format) ([]Material, error) {
	var f file
	switch format {
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&f); err != nil && err != io.EOF {
			return nil, fmt.Errorf("decode yaml catalog: %w", err)
		}
	case FormatMsgpack:
		if err := msgpack.NewDecoder(r).Decode(&f); err != nil {
			return nil, fmt.Errorf("decode msgpack catalog: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, format)
	}
	return f.Materials, nil
}

// Encode writes a material list.
func Encode(w io.Writer, format Format, materials []Material) error {
	f := file{Materials: materials}
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(f); err != nil {
			return fmt.Errorf("encode yaml catalog: %w", err)
		}
		return enc.Close()
	case FormatMsgpack:
		if err := msgpack.NewEncoder(w).Encode(f); err != nil {
			return fmt.Errorf("encode msgpack catalog: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %v", ErrUnknownFormat, format)
	}
}

// ReadFile loads a material list, choosing the encoding by extension.
func ReadFile(path string) ([]Material, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()
	return Decode(fh, format)
}

// WriteFile saves a material list, choosing the encoding by extension.
func WriteFile(path string, materials []Material) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Encode(fh, format, materials); err != nil {
		fh.Close()
		return err
	}
	return fh.Close()
}

// Load reads path into a new catalog.
func Load(path string, opts ...Option) (*Catalog, error) {
	materials, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return NewFrom(materials, opts...)
}
