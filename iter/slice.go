package iter

import (
	"io"

	"github.com/csimplestring/mapok-go/errno"
	"github.com/samber/mo"
)

var _ Iter[string] = &SliceIter[string]{}
var _ SizeHinter = &SliceIter[string]{}

type SliceIter[T any] struct {
	items []T
	i     int
}

func (a *SliceIter[T]) Next() (T, error) {
	var item T
	if a.i < len(a.items) {
		item = a.items[a.i]
		a.i++
		return item, nil
	}
	return item, io.EOF
}

func (a *SliceIter[T]) SizeHint() (int, mo.Option[int]) {
	n := len(a.items) - a.i
	return n, mo.Some(n)
}

func (a *SliceIter[T]) Close() error {
	return nil
}

// FromSlice iterates over s without copying it.
func FromSlice[T any](s []T) Iter[T] {
	return &SliceIter[T]{
		items: s,
		i:     0,
	}
}

// ToSlice drains and closes iter.
func ToSlice[T any](iter Iter[T]) ([]T, error) {
	if iter == nil {
		return nil, errno.NilIterator()
	}
	defer iter.Close()

	var s []T
	var item T
	var err error
	for item, err = iter.Next(); err == nil; item, err = iter.Next() {
		s = append(s, item)
	}
	if err != nil && err != io.EOF {
		return nil, err
	}

	return s, nil
}
