package pools

import (
	"math/bits"
	"sync"
)

// maxClass bounds pooled slices to 1<<maxClass elements. Larger requests
// are allocated directly and never retained.
const maxClass = 26

// SlicePool pools slices of T in power-of-two capacity classes. The zero
// value is ready to use.
type SlicePool[T any] struct {
	classes [maxClass + 1]sync.Pool
}

// sizeClass returns the smallest class whose capacity holds n elements.
func sizeClass(n int) int {
	if n <= 1 {
		return 0
	}
	return bits.Len(uint(n - 1))
}

// Get returns a slice of length n. Its contents are unspecified; callers
// must initialise every element they read.
func (p *SlicePool[T]) Get(n int) []T {
	if n <= 0 {
		return make([]T, 0)
	}

	class := sizeClass(n)
	if class > maxClass {
		return make([]T, n)
	}

	if sp, ok := p.classes[class].Get().(*[]T); ok && cap(*sp) >= n {
		return (*sp)[:n]
	}
	return make([]T, n, 1<<class)
}

// Put returns s to the pool. Slices whose capacity is not an exact class
// size came from elsewhere and are dropped.
func (p *SlicePool[T]) Put(s []T) {
	c := cap(s)
	if c == 0 {
		return
	}

	class := sizeClass(c)
	if class > maxClass || 1<<class != c {
		return
	}

	s = s[:0]
	p.classes[class].Put(&s)
}
