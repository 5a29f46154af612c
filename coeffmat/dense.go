package coeffmat

import (
	"fmt"
	"strings"

	"github.com/polyra/groebner/poly"
)

// Dense is a row-major matrix of poly.Polynomial values over a shared
// ring. r is rows, c is columns, data holds r*c entries in row-major
// order, with poly.Zero(ring) in place of 0.0 as the fill value.
type Dense struct {
	ring *poly.RingDescriptor
	r, c int
	data []poly.Polynomial
}

// NewDense allocates an r×c Dense matrix, every entry the zero
// polynomial over ring.
func NewDense(ring *poly.RingDescriptor, rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}
	data := make([]poly.Polynomial, rows*cols)
	for i := range data {
		data[i] = poly.Zero(ring)
	}
	return &Dense{ring: ring, r: rows, c: cols, data: data}, nil
}

// Rows returns the row count.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense) Cols() int { return m.c }

func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, fmt.Errorf("coeffmat.Dense: (%d,%d): %w", row, col, ErrOutOfRange)
	}
	return row*m.c + col, nil
}

// At retrieves the entry at (row, col).
func (m *Dense) At(row, col int) (poly.Polynomial, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return poly.Polynomial{}, err
	}
	return m.data[idx], nil
}

// Set assigns v at (row, col).
func (m *Dense) Set(row, col int, v poly.Polynomial) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v
	return nil
}

// Clone returns a deep, independent copy of m.
func (m *Dense) Clone() *Dense {
	data := make([]poly.Polynomial, len(m.data))
	for i, p := range m.data {
		data[i] = p.Clone()
	}
	return &Dense{ring: m.ring, r: m.r, c: m.c, data: data}
}

// FromRows builds a Dense of the given column count from a sequence of
// sparse rows (column index to polynomial), the shape groebner's
// transformation and syzygy's relation set both produce.
func FromRows(ring *poly.RingDescriptor, cols int, rows []map[int]poly.Polynomial) (*Dense, error) {
	m, err := NewDense(ring, len(rows), cols)
	if err != nil {
		return nil, err
	}
	for r, sparse := range rows {
		for c, p := range sparse {
			if err := m.Set(r, c, p); err != nil {
				return nil, err
			}
		}
	}
	return m, nil
}

func (m *Dense) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		b.WriteString("[")
		for j := 0; j < m.c; j++ {
			b.WriteString(m.data[i*m.c+j].String())
			if j < m.c-1 {
				b.WriteString(", ")
			}
		}
		b.WriteString("]\n")
	}
	return b.String()
}
