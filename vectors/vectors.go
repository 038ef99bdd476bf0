// Package vectors generates the host arrays fed to the tutorial kernels and
// prints device results in row-major order.
package vectors

import (
	"fmt"
	"io"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Separator is printed above every rendered vector
var Separator = strings.Repeat("-", 65)

// CountUp returns [0, 1, ..., n-1]
func CountUp(n int) []int32 {
	v := make([]int32, n)
	for i := range v {
		v[i] = int32(i)
	}
	return v
}

// CountUp2D returns a width×height row-major grid where every element holds
// its own linear index, so element (row y, column x) is width*y + x.
func CountUp2D(width, height int) []int32 {
	return CountUp(width * height)
}

// Fill returns n copies of value
func Fill(n int, value int32) []int32 {
	v := make([]int32, n)
	for i := range v {
		v[i] = value
	}
	return v
}

// Print writes a separator line followed by every element as |v|<tab>
func Print(w io.Writer, v []int32) {
	fmt.Fprintln(w, Separator)
	for _, x := range v {
		fmt.Fprintf(w, "|%d|\t", x)
	}
	fmt.Fprintln(w)
}

// Print2D writes v as height rows of width cells, framed by separators
func Print2D(w io.Writer, v []int32, width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid grid %dx%d", width, height)
	}
	if len(v) != width*height {
		return fmt.Errorf("vector of length %d does not fill a %dx%d grid", len(v), width, height)
	}

	fmt.Fprintln(w, Separator)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			fmt.Fprintf(w, "|%d|\t", v[width*y+x])
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w, Separator)
	return nil
}

// ToDense copies a row-major vector into a rows×cols gonum matrix
func ToDense(v []int32, rows, cols int) (*mat.Dense, error) {
	if rows <= 0 || cols <= 0 || len(v) != rows*cols {
		return nil, fmt.Errorf("vector of length %d cannot be viewed as %dx%d", len(v), rows, cols)
	}
	data := make([]float64, len(v))
	for i, x := range v {
		data[i] = float64(x)
	}
	return mat.NewDense(rows, cols, data), nil
}

// FromDense flattens a matrix back into a row-major int32 vector
func FromDense(m mat.Matrix) []int32 {
	rows, cols := m.Dims()
	v := make([]int32, 0, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v = append(v, int32(m.At(i, j)))
		}
	}
	return v
}

// Floats widens an int32 vector for gonum's floats routines
func Floats(v []int32) []float64 {
	f := make([]float64, len(v))
	for i, x := range v {
		f[i] = float64(x)
	}
	return f
}
