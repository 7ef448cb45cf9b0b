// SPDX-License-Identifier: MIT

package console

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/katalvlaran/densemat/matrix"
)

// Display prints m one visual row per line, columns tab-aligned. Elements are
// read from the column-major buffer exposed by Info. An uninitialized matrix
// prints nothing.
func Display(w io.Writer, m *matrix.Dense) error {
	rows, cols, view, err := m.Info()
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err := view.At(matrix.ColMajorOffset(i, j, rows))
			if err != nil {
				return err
			}
			if _, err = fmt.Fprint(tw, strconv.FormatFloat(v, 'g', -1, 64), "\t"); err != nil {
				return err
			}
		}
		if _, err = fmt.Fprintln(tw); err != nil {
			return err
		}
	}

	return tw.Flush()
}
