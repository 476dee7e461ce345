// Package mapok maps the success payload of result-yielding iterators while
// passing failures through untouched.
package mapok

import (
	"io"

	"github.com/csimplestring/mapok-go/iter"
	"github.com/samber/mo"
)

// Mapper transforms a success payload. It is assumed not to fail.
type Mapper[T any, U any] interface {
	Map(t T) U
}

// MapperFunc adapts an ordinary function to Mapper.
type MapperFunc[T any, U any] func(t T) U

func (f MapperFunc[T, U]) Map(t T) U {
	return f(t)
}

type state uint8

const (
	active state = iota
	exhausted
)

var _ iter.Iter[mo.Result[int]] = &MapOkIter[string, int]{}
var _ iter.SizeHinter = &MapOkIter[string, int]{}

// MapOkIter yields the elements of an inner result iterator with Mapper
// applied to every Ok payload. Err elements are yielded unchanged and never
// reach the mapper. Each call to Next pulls exactly one element from the
// inner iterator.
type MapOkIter[T any, U any] struct {
	it     iter.Iter[mo.Result[T]]
	mapper Mapper[T, U]
	state  state
}

// MapOk wraps it so that every Ok(t) becomes Ok(f(t)).
func MapOk[T any, U any](it iter.Iter[mo.Result[T]], f func(t T) U) *MapOkIter[T, U] {
	return MapOkWith[T, U](it, MapperFunc[T, U](f))
}

// MapOkWith is MapOk for an existing Mapper implementation.
func MapOkWith[T any, U any](it iter.Iter[mo.Result[T]], m Mapper[T, U]) *MapOkIter[T, U] {
	return &MapOkIter[T, U]{
		it:     it,
		mapper: m,
		state:  active,
	}
}

// Next returns io.EOF once the inner iterator is exhausted, and on every call
// after that. Other errors from the inner iterator are returned as is.
func (m *MapOkIter[T, U]) Next() (mo.Result[U], error) {
	if m.state == exhausted {
		return mo.Result[U]{}, io.EOF
	}

	r, err := m.it.Next()
	if err == io.EOF {
		m.state = exhausted
		return mo.Result[U]{}, io.EOF
	}
	if err != nil {
		return mo.Result[U]{}, err
	}

	if r.IsError() {
		return mo.Err[U](r.Error()), nil
	}
	return mo.Ok(m.mapper.Map(r.MustGet())), nil
}

// SizeHint reports the bounds of the inner iterator; mapping never changes
// the number of elements.
func (m *MapOkIter[T, U]) SizeHint() (int, mo.Option[int]) {
	if m.state == exhausted {
		return 0, mo.Some(0)
	}
	return iter.SizeHint(m.it)
}

func (m *MapOkIter[T, U]) Close() error {
	return m.it.Close()
}
