// SPDX-License-Identifier: MIT

package codec

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvmatrix/matrix"
)

// maxHintRatio bounds a decoded capacity hint relative to its dimension.
const maxHintRatio = 4

// ErrMalformed is returned when a decoded document cannot describe a matrix.
var ErrMalformed = errors.New("codec: malformed matrix document")

// Document is the serialized form of a matrix.
// RowCapacity and ColCapacity are hints; zero means "exact".
type Document[T any] struct {
	Rows        int `cbor:"rows" yaml:"rows"`
	Cols        int `cbor:"cols" yaml:"cols"`
	RowCapacity int `cbor:"row_capacity,omitempty" yaml:"row_capacity,omitempty"`
	ColCapacity int `cbor:"col_capacity,omitempty" yaml:"col_capacity,omitempty"`
	Values      []T `cbor:"values" yaml:"values,flow"`
}

// Option tunes document conversion.
type Option func(*options)

type options struct {
	capacity bool
	matrix   []matrix.Option
}

// WithCapacity records (on encode) and restores (on decode) capacities.
// On decode each hint is capped at maxHintRatio times the decoded size, so a
// small document cannot request a large allocation.
func WithCapacity() Option { return func(o *options) { o.capacity = true } }

// WithMatrixOptions forwards options to the decoded matrix's constructor.
func WithMatrixOptions(opts ...matrix.Option) Option {
	return func(o *options) { o.matrix = append(o.matrix, opts...) }
}

func gather(optFns []Option) options {
	var o options
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// ToDocument captures m's logical content. A nil matrix is treated as empty.
func ToDocument[T any](m *matrix.Matrix[T], optFns ...Option) Document[T] {
	o := gather(optFns)
	if m == nil {
		return Document[T]{Values: []T{}}
	}
	d := Document[T]{Rows: m.Rows(), Cols: m.Cols(), Values: m.Values()}
	if o.capacity {
		d.RowCapacity, d.ColCapacity = m.RowCapacity(), m.ColCapacity()
	}

	return d
}

// FromDocument rebuilds a matrix from d.
// Errors: ErrMalformed (inconsistent shape or length, negative hints), plus
// the matrix construction sentinels (ErrNullOrNegDimension, ErrDimensionTooLarge).
func FromDocument[T any](d Document[T], optFns ...Option) (*matrix.Matrix[T], error) {
	o := gather(optFns)
	if d.Rows == 0 && d.Cols == 0 {
		if len(d.Values) != 0 {
			return nil, fmt.Errorf("%w: %d values for an empty matrix", ErrMalformed, len(d.Values))
		}

		return matrix.New[T](o.matrix...), nil
	}
	if d.Rows > 0 && d.Cols > 0 && len(d.Values) != d.Rows*d.Cols {
		return nil, fmt.Errorf("%w: %d values for %dx%d", ErrMalformed, len(d.Values), d.Rows, d.Cols)
	}
	m, err := matrix.NewFromSliceMove(d.Rows, d.Cols, d.Values, o.matrix...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	if o.capacity {
		rowCap := min(d.RowCapacity, maxHintRatio*d.Rows)
		colCap := min(d.ColCapacity, maxHintRatio*d.Cols)
		if err = m.Reserve(rowCap, colCap); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
		}
	}

	return m, nil
}
