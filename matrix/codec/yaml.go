// SPDX-License-Identifier: MIT

package codec

import (
	"fmt"
	"io"

	"github.com/katalvlaran/lvmatrix/matrix"
	"gopkg.in/yaml.v3"
)

// yamlIndent is the indentation used by EncodeYAML.
const yamlIndent = 2

// MarshalYAML encodes m as a YAML document.
func MarshalYAML[T any](m *matrix.Matrix[T], optFns ...Option) ([]byte, error) {
	return yaml.Marshal(ToDocument(m, optFns...))
}

// UnmarshalYAML decodes a matrix written by MarshalYAML or by hand.
func UnmarshalYAML[T any](data []byte, optFns ...Option) (*matrix.Matrix[T], error) {
	var d Document[T]
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	return FromDocument(d, optFns...)
}

// EncodeYAML writes m to w.
func EncodeYAML[T any](w io.Writer, m *matrix.Matrix[T], optFns ...Option) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(yamlIndent)
	if err := enc.Encode(ToDocument(m, optFns...)); err != nil {
		return err
	}

	return enc.Close()
}

// DecodeYAML reads one matrix document from r.
func DecodeYAML[T any](r io.Reader, optFns ...Option) (*matrix.Matrix[T], error) {
	var d Document[T]
	if err := yaml.NewDecoder(r).Decode(&d); err != nil {
		return nil, decodeError(err)
	}

	return FromDocument(d, optFns...)
}
