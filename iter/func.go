package iter

import "io"

var _ Iter[int] = &FuncIter[int]{}

// FuncIter pulls elements from a generator function until it reports false.
type FuncIter[T any] struct {
	next func() (T, bool)
	done bool
}

// FromFunc returns an iterator over the values next produces until it reports
// false. next is not called again after that.
func FromFunc[T any](next func() (T, bool)) *FuncIter[T] {
	return &FuncIter[T]{next: next}
}

func (f *FuncIter[T]) Next() (T, error) {
	var zero T
	if f.done {
		return zero, io.EOF
	}
	v, ok := f.next()
	if !ok {
		f.done = true
		return zero, io.EOF
	}
	return v, nil
}

func (f *FuncIter[T]) Close() error {
	f.done = true
	return nil
}

type flattened[T any] struct {
	it  Iter[[]T]
	buf []T
}

// Flatten yields the elements of every slice produced by it, in order.
func Flatten[T any](it Iter[[]T]) Iter[T] {
	return &flattened[T]{it: it}
}

func (f *flattened[T]) Next() (T, error) {
	for len(f.buf) == 0 {
		s, err := f.it.Next()
		if err != nil {
			var zero T
			return zero, err
		}
		f.buf = s
	}
	v := f.buf[0]
	f.buf = f.buf[1:]
	return v, nil
}

func (f *flattened[T]) Close() error {
	return f.it.Close()
}
