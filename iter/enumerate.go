package iter

import (
	"github.com/barweiss/go-tuple"
	"github.com/samber/mo"
)

type enumerated[T any] struct {
	it Iter[T]
	i  int
}

// Enumerate pairs each element with its zero-based position.
func Enumerate[T any](it Iter[T]) Iter[tuple.T2[int, T]] {
	return &enumerated[T]{it: it}
}

func (e *enumerated[T]) Next() (tuple.T2[int, T], error) {
	v, err := e.it.Next()
	if err != nil {
		return tuple.T2[int, T]{}, err
	}
	res := tuple.New2(e.i, v)
	e.i++
	return res, nil
}

func (e *enumerated[T]) SizeHint() (int, mo.Option[int]) {
	return SizeHint(e.it)
}

func (e *enumerated[T]) Close() error {
	return e.it.Close()
}
