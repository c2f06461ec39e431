// Package pools provides object pooling for reducing GC pressure.
//
// Community detection recomputes all-pairs matrices of identical size on
// every iteration; SlicePool lets those backing slices be reused between
// iterations instead of reallocated.
package pools
