// SPDX-License-Identifier: MIT

// Package console is the interactive front end of package matrix: it prompts
// for and reads matrix elements from a text stream, and prints matrices in
// visual row-major order.
//
// It talks to the core only through Init, Load, Info and the BufferView, so
// it exercises the same contract any other caller would.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/densemat/matrix"
)

// ErrInput is returned when the stream ends early or a token is not a number.
var ErrInput = errors.New("console: invalid input")

// Reader reads whitespace-separated tokens and writes prompts.
// A Reader keeps its buffered input between calls, so several matrices can be
// read from one stream.
type Reader struct {
	sc  *bufio.Scanner
	out io.Writer
}

// NewReader returns a Reader over in that prompts on out.
// out may be io.Discard for non-interactive input.
func NewReader(in io.Reader, out io.Writer) *Reader {
	sc := bufio.NewScanner(in)
	sc.Split(bufio.ScanWords)

	return &Reader{sc: sc, out: out}
}

// ReadDims prompts for and reads the number of rows and columns.
func (r *Reader) ReadDims() (rows, cols int, err error) {
	if rows, err = r.readInt("rows: "); err != nil {
		return 0, 0, err
	}
	if cols, err = r.readInt("cols: "); err != nil {
		return 0, 0, err
	}

	return rows, cols, nil
}

// ReadMatrix fills an initialized m from the stream. Elements are requested in
// column-major order, M(0,0), M(1,0), ..., matching the storage layout, and
// are committed with a single Load once every value has been read; a read
// error leaves m unchanged.
func (r *Reader) ReadMatrix(m *matrix.Dense) error {
	rows, cols, _, err := m.Info()
	if err != nil {
		return err
	}
	if !m.IsValid() {
		return fmt.Errorf("console: read: %w", matrix.ErrUninitialized)
	}

	buf := make([]float64, rows*cols)
	var i, j int
	for j = 0; j < cols; j++ {
		for i = 0; i < rows; i++ {
			v, err := r.readFloat(fmt.Sprintf("M(%d,%d) = ", i, j))
			if err != nil {
				return err
			}
			buf[matrix.ColMajorOffset(i, j, rows)] = v
		}
	}

	return m.Load(buf)
}

// ReadNew prompts for a shape, initializes a matrix of that shape and fills it.
func (r *Reader) ReadNew() (*matrix.Dense, error) {
	rows, cols, err := r.ReadDims()
	if err != nil {
		return nil, err
	}
	m, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	if err = r.ReadMatrix(m); err != nil {
		return nil, err
	}

	return m, nil
}

func (r *Reader) next(prompt string) (string, error) {
	if _, err := io.WriteString(r.out, prompt); err != nil {
		return "", err
	}
	if !r.sc.Scan() {
		if err := r.sc.Err(); err != nil {
			return "", err
		}
		return "", fmt.Errorf("%w: unexpected end of input", ErrInput)
	}

	return r.sc.Text(), nil
}

func (r *Reader) readInt(prompt string) (int, error) {
	tok, err := r.next(prompt)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrInput, tok)
	}

	return n, nil
}

func (r *Reader) readFloat(prompt string) (float64, error) {
	tok, err := r.next(prompt)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInput, tok)
	}

	return v, nil
}

// ReadInteractive fills an initialized m from in, prompting on out.
func ReadInteractive(in io.Reader, out io.Writer, m *matrix.Dense) error {
	return NewReader(in, out).ReadMatrix(m)
}
