package mapok

import (
	"github.com/csimplestring/mapok-go/iter"
	"github.com/samber/mo"
)

// Box moves v into its own heap allocation.
func Box[T any](v T) *T {
	return &v
}

// BoxOk yields each Ok payload of it behind a pointer to a fresh copy.
func BoxOk[T any](it iter.Iter[mo.Result[T]]) *MapOkIter[T, *T] {
	return MapOk(it, Box[T])
}

// BoxOkAny erases the payload type so that result iterators over different
// types can be stored together.
func BoxOkAny[T any](it iter.Iter[mo.Result[T]]) *MapOkIter[T, any] {
	return MapOk(it, func(t T) any { return t })
}
