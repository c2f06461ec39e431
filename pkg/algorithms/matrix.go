package algorithms

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/dd0wney/cluso-communities/pkg/pools"
)

// Number is the element type a Matrix can hold.
type Number interface {
	constraints.Integer | constraints.Float
}

// Matrix is a square n×n matrix stored row-major in a single slice.
type Matrix[T Number] struct {
	n    int
	data []T
}

// Backing storage for the matrix element types the engines use. Released
// matrices return their slices here.
var (
	float64Slices pools.SlicePool[float64]
	intSlices     pools.SlicePool[int]
)

func slicePool[T Number]() *pools.SlicePool[T] {
	var zero T
	switch any(zero).(type) {
	case float64:
		return any(&float64Slices).(*pools.SlicePool[T])
	case int:
		return any(&intSlices).(*pools.SlicePool[T])
	}
	return nil
}

// NewMatrix allocates an n×n matrix with every cell set to fill.
func NewMatrix[T Number](n int, fill T) *Matrix[T] {
	if n < 0 {
		panic(fmt.Sprintf("algorithms: NewMatrix called with negative size %d", n))
	}

	var data []T
	if pool := slicePool[T](); pool != nil {
		data = pool.Get(n * n)
	} else {
		data = make([]T, n*n)
	}
	for i := range data {
		data[i] = fill
	}
	return &Matrix[T]{n: n, data: data}
}

// Size returns the matrix dimension.
func (m *Matrix[T]) Size() int {
	return m.n
}

func (m *Matrix[T]) index(i, j int) int {
	if m.data == nil && m.n > 0 {
		panic("algorithms: matrix used after Release")
	}
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		panic(fmt.Sprintf("algorithms: matrix index (%d, %d) out of range for size %d", i, j, m.n))
	}
	return i*m.n + j
}

// At returns the value at row i, column j.
func (m *Matrix[T]) At(i, j int) T {
	return m.data[m.index(i, j)]
}

// Set stores v at row i, column j.
func (m *Matrix[T]) Set(i, j int, v T) {
	m.data[m.index(i, j)] = v
}

// Add increments the cell at row i, column j by delta.
func (m *Matrix[T]) Add(i, j int, delta T) {
	m.data[m.index(i, j)] += delta
}

// Row returns a copy of row i.
func (m *Matrix[T]) Row(i int) []T {
	start := m.index(i, 0)
	row := make([]T, m.n)
	copy(row, m.data[start:start+m.n])
	return row
}

// Equal reports whether both matrices have the same size and cells.
func (m *Matrix[T]) Equal(other *Matrix[T]) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.n != other.n || len(m.data) != len(other.data) {
		return false
	}
	for i := range m.data {
		if m.data[i] != other.data[i] {
			return false
		}
	}
	return true
}

// Release returns the backing storage to the pool. The matrix must not be
// used afterwards.
func (m *Matrix[T]) Release() {
	if m.data == nil {
		return
	}
	if pool := slicePool[T](); pool != nil {
		pool.Put(m.data)
	}
	m.data = nil
}
