// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvmatrix/matrix"
)

// step is one parsed --op.
type step struct {
	raw   string
	apply func(m *matrix.Matrix[float64]) error
}

func (s step) String() string { return s.raw }

// parseSteps turns every --op into a step, failing on the first bad one.
func parseSteps(ops []string) ([]step, error) {
	steps := make([]step, 0, len(ops))
	for _, op := range ops {
		s, err := parseStep(op)
		if err != nil {
			return nil, fmt.Errorf("--op %q: %w", op, err)
		}
		steps = append(steps, s)
	}

	return steps, nil
}

func parseStep(op string) (step, error) {
	name, arg, _ := strings.Cut(op, ":")
	arg, fillText, hasFill := strings.Cut(arg, "=")
	var fill float64
	if hasFill {
		v, err := strconv.ParseFloat(fillText, 64)
		if err != nil {
			return step{}, fmt.Errorf("fill: %w", err)
		}
		fill = v
	}

	s := step{raw: op}
	switch name {
	case "insert-row", "insert-col", "erase-row", "erase-col", "split-row", "split-col":
		pos, err := strconv.Atoi(arg)
		if err != nil {
			return step{}, fmt.Errorf("position: %w", err)
		}
		s.apply = positional(name, pos, fill)
	case "resize", "reserve":
		rows, cols, err := parseShape(arg)
		if err != nil {
			return step{}, err
		}
		if name == "resize" {
			s.apply = func(m *matrix.Matrix[float64]) error { return m.ResizeFill(rows, cols, fill) }
		} else {
			s.apply = func(m *matrix.Matrix[float64]) error { return m.Reserve(rows, cols) }
		}
	case "cat-row", "cat-col":
		if arg == "" {
			return step{}, fmt.Errorf("%s needs a file", name)
		}
		byRow := name == "cat-row"
		s.apply = func(m *matrix.Matrix[float64]) error {
			src, err := load(arg)
			if err != nil {
				return err
			}
			if byRow {
				return m.CatByRow(src, matrix.ConcatMove)
			}

			return m.CatByColumn(src, matrix.ConcatMove)
		}
	case "transpose":
		s.apply = func(m *matrix.Matrix[float64]) error { return m.Transpose(m) }
	case "shrink":
		s.apply = func(m *matrix.Matrix[float64]) error {
			m.ShrinkToFit()
			return nil
		}
	default:
		return step{}, fmt.Errorf("unknown operation %q", name)
	}

	return s, nil
}

// positional binds the single-position operations.
func positional(name string, pos int, fill float64) func(m *matrix.Matrix[float64]) error {
	return func(m *matrix.Matrix[float64]) error {
		switch name {
		case "insert-row":
			return m.InsertRowFill(pos, fill)
		case "insert-col":
			return m.InsertColumnFill(pos, fill)
		case "erase-row":
			return m.EraseRow(pos)
		case "erase-col":
			return m.EraseColumn(pos)
		case "split-row":
			return m.SplitByRow(matrix.New[float64](), pos)
		default: // split-col
			return m.SplitByColumn(matrix.New[float64](), pos)
		}
	}
}

// parseShape reads ROWSxCOLS.
func parseShape(s string) (rows, cols int, err error) {
	r, c, ok := strings.Cut(s, "x")
	if !ok {
		return 0, 0, fmt.Errorf("shape %q: want ROWSxCOLS", s)
	}
	if rows, err = strconv.Atoi(r); err != nil {
		return 0, 0, fmt.Errorf("rows: %w", err)
	}
	if cols, err = strconv.Atoi(c); err != nil {
		return 0, 0, fmt.Errorf("cols: %w", err)
	}

	return rows, cols, nil
}

// describe renders size, capacities and offsets on one line.
func describe[T any](m *matrix.Matrix[T]) string {
	ro, rok := m.RowCapacityOffset()
	co, cok := m.ColCapacityOffset()
	offset := "none"
	if rok && cok {
		offset = fmt.Sprintf("(%d,%d)", ro, co)
	}

	return fmt.Sprintf("size %dx%d capacity %dx%d offset %s",
		m.Rows(), m.Cols(), m.RowCapacity(), m.ColCapacity(), offset)
}
