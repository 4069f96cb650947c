// SPDX-License-Identifier: MIT

package codec

import (
	"errors"
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
	"github.com/katalvlaran/lvmatrix/matrix"
)

// encMode is the CBOR encoder configured with Core Deterministic Encoding:
// sorted map keys, smallest integer encoding, no indefinite-length items.
var encMode cbor.EncMode

// decMode rejects duplicate map keys; unknown fields are ignored.
// Arrays may hold up to maxValues elements.
var decMode cbor.DecMode

// maxValues is the element count of the largest matrix a document can carry.
const maxValues = matrix.MaxAllowedDimension * matrix.MaxAllowedDimension

func init() {
	var err error

	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("codec: CBOR encoder initialization failed: " + err.Error())
	}

	decMode, err = cbor.DecOptions{
		DupMapKey:        cbor.DupMapKeyEnforcedAPF,
		MaxArrayElements: maxValues,
	}.DecMode()
	if err != nil {
		panic("codec: CBOR decoder initialization failed: " + err.Error())
	}
}

// MarshalCBOR encodes m deterministically.
func MarshalCBOR[T any](m *matrix.Matrix[T], optFns ...Option) ([]byte, error) {
	return encMode.Marshal(ToDocument(m, optFns...))
}

// UnmarshalCBOR decodes a matrix written by MarshalCBOR.
func UnmarshalCBOR[T any](data []byte, optFns ...Option) (*matrix.Matrix[T], error) {
	var d Document[T]
	if err := decMode.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	return FromDocument(d, optFns...)
}

// EncodeCBOR writes one matrix to w. Repeated calls produce a CBOR sequence.
func EncodeCBOR[T any](w io.Writer, m *matrix.Matrix[T], optFns ...Option) error {
	return encMode.NewEncoder(w).Encode(ToDocument(m, optFns...))
}

// DecodeCBOR reads one matrix from r.
func DecodeCBOR[T any](r io.Reader, optFns ...Option) (*matrix.Matrix[T], error) {
	var d Document[T]
	if err := decMode.NewDecoder(r).Decode(&d); err != nil {
		return nil, decodeError(err)
	}

	return FromDocument(d, optFns...)
}

// decodeError marks a stream read failure as ErrMalformed; io.EOF passes
// through untouched so callers can detect the end of a sequence.
func decodeError(err error) error {
	if errors.Is(err, io.EOF) {
		return err
	}

	return fmt.Errorf("%w: %w", ErrMalformed, err)
}

// Diagnose returns the CBOR diagnostic notation (RFC 8949 §8) of data.
func Diagnose(data []byte) (string, error) {
	return cbor.Diagnose(data)
}
