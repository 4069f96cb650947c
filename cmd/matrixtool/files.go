// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/lvmatrix/matrix"
	"github.com/katalvlaran/lvmatrix/matrix/codec"
)

// isCBOR selects the encoding from the file extension.
func isCBOR(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".cbor")
}

// load reads a matrix document, keeping its capacity hints.
func load(path string) (*matrix.Matrix[float64], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var m *matrix.Matrix[float64]
	if isCBOR(path) {
		m, err = codec.UnmarshalCBOR[float64](data, codec.WithCapacity())
	} else {
		m, err = codec.UnmarshalYAML[float64](data, codec.WithCapacity())
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	return m, nil
}

// save writes m with its capacities so a later load restores them.
func save(path string, m *matrix.Matrix[float64]) error {
	var (
		data []byte
		err  error
	)
	if isCBOR(path) {
		data, err = codec.MarshalCBOR(m, codec.WithCapacity())
	} else {
		data, err = codec.MarshalYAML(m, codec.WithCapacity())
	}
	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}

	return os.WriteFile(path, data, 0o644)
}
