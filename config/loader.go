// SPDX-License-Identifier: MIT
// Package: lvfuzzy/config
//
// loader.go — Load/Parse: read, strict-decode, then MapDocument.

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads and maps the definitions file at path.
func Load(path string) (Document, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Document{}, &DocumentError{Op: opLoad, Path: path, Err: err}
	}

	return parse(path, b)
}

// Parse decodes and maps an in-memory definitions document.
func Parse(data []byte) (Document, error) {
	return parse("", data)
}

func parse(path string, data []byte) (Document, error) {
	dto, err := decode(data)
	if err != nil {
		return Document{}, &DocumentError{
			Op:   opParse,
			Path: path,
			Err:  fmt.Errorf("%w: %w", ErrInvalidDocument, err),
		}
	}

	return MapDocument(path, dto)
}

// decode unmarshals data rejecting unknown keys and empty input.
func decode(data []byte) (YAMLDocument, error) {
	var dto YAMLDocument
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&dto); err != nil {
		if errors.Is(err, io.EOF) {
			return YAMLDocument{}, errors.New("empty document")
		}

		return YAMLDocument{}, err
	}

	return dto, nil
}
