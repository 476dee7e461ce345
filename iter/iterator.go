package iter

import (
	"io"

	"github.com/rotisserie/eris"
	"github.com/samber/mo"
)

// An Iterator that also implements the Closer interface.
// Next returns io.EOF once the iterator is exhausted. Any other error is a
// failure of the producer itself.
// The caller should call close() method to free all resources properly after using the iterator.
type Iter[T any] interface {
	Next() (T, error)
	Close() error
}

// SizeHinter is implemented by iterators that know bounds on the number of
// remaining elements. An absent upper bound means unknown.
type SizeHinter interface {
	SizeHint() (int, mo.Option[int])
}

// SizeHint returns the bounds reported by it, or (0, None) when it does not
// implement SizeHinter.
func SizeHint[T any](it Iter[T]) (int, mo.Option[int]) {
	if h, ok := it.(SizeHinter); ok {
		return h.SizeHint()
	}
	return 0, mo.None[int]()
}

// Map drains the iterator, applying mapper to every element. It stops at the
// first error from either the iterator or the mapper.
func Map[T any, R any](iter Iter[T], mapper func(t T) (R, error)) ([]R, error) {
	var res []R
	var err error
	var item T
	for item, err = iter.Next(); err == nil; item, err = iter.Next() {
		r, err := mapper(item)
		if err != nil {
			return nil, eris.Wrapf(err, "mapping value %v", item)
		}
		res = append(res, r)
	}

	if err == io.EOF {
		return res, nil
	}
	return nil, err
}
