// SPDX-License-Identifier: MIT

// Package codec serializes the logical content of a matrix.Matrix.
//
// A matrix is written as a Document: its size, its values in row-major (Z)
// order and, optionally, its capacities. Offsets are never written: they
// follow from the centering law once the capacities are restored with Reserve.
//
// Two encodings share the Document shape:
//   - CBOR with Core Deterministic Encoding (RFC 8949 §4.2): the same matrix
//     always produces identical bytes.
//   - YAML for human-edited fixtures and the matrixtool command.
package codec
