// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/katalvlaran/densemat/matrix"
)

// errOperand is returned for a malformed "RxC:v,v,..." literal.
var errOperand = errors.New("matcalc: malformed operand")

// parseOperand decodes "RxC:v1,v2,..." (values column-major) into a matrix.
// A square matrix may be written "N:v,..." and whitespace around values is
// ignored.
func parseOperand(s string) (*matrix.Dense, error) {
	shape, body, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return nil, fmt.Errorf("%w: %q: missing ':'", errOperand, s)
	}
	rows, cols, err := parseShape(shape)
	if err != nil {
		return nil, err
	}
	vals, err := parseValues(body)
	if err != nil {
		return nil, err
	}

	return matrix.NewFromColMajor(rows, cols, vals)
}

// parseShape accepts "R", "RxC" or "R×C".
func parseShape(s string) (rows, cols int, err error) {
	parts := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool { return r == 'x' || r == '×' })
	switch len(parts) {
	case 1:
		if rows, err = strconv.Atoi(strings.TrimSpace(parts[0])); err != nil {
			return 0, 0, fmt.Errorf("%w: shape %q", errOperand, s)
		}
		return rows, rows, nil
	case 2:
		if rows, err = strconv.Atoi(strings.TrimSpace(parts[0])); err != nil {
			return 0, 0, fmt.Errorf("%w: shape %q", errOperand, s)
		}
		if cols, err = strconv.Atoi(strings.TrimSpace(parts[1])); err != nil {
			return 0, 0, fmt.Errorf("%w: shape %q", errOperand, s)
		}
		return rows, cols, nil
	default:
		return 0, 0, fmt.Errorf("%w: shape %q", errOperand, s)
	}
}

// parseValues splits a comma list, dropping empty fields.
func parseValues(s string) ([]float64, error) {
	fields := lo.Compact(lo.Map(strings.Split(s, ","), func(f string, _ int) string {
		return strings.TrimSpace(f)
	}))
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: value %q", errOperand, f)
		}
		out = append(out, v)
	}

	return out, nil
}
