package iter

import (
	"github.com/samber/mo"
)

// MapIter applies a fallible Mapper to each element. A mapper error is
// returned from Next as a producer error, so most callers stop there.
// Use Results to keep going past per-element failures.
type MapIter[T any, R any] struct {
	It     Iter[T]
	Mapper func(t T) (R, error)
}

func (d *MapIter[T, R]) Next() (R, error) {
	var res R
	t, err := d.It.Next()
	if err != nil {
		return res, err
	}
	return d.Mapper(t)
}

func (d *MapIter[T, R]) SizeHint() (int, mo.Option[int]) {
	return SizeHint(d.It)
}

func (d *MapIter[T, R]) Close() error {
	return d.It.Close()
}

// Results runs op on every element and yields its outcome as a result value.
// A failing element does not end the iteration.
func Results[T any, R any](it Iter[T], op func(t T) (R, error)) Iter[mo.Result[R]] {
	return &MapIter[T, mo.Result[R]]{
		It: it,
		Mapper: func(t T) (mo.Result[R], error) {
			r, err := op(t)
			if err != nil {
				return mo.Err[R](err), nil
			}
			return mo.Ok(r), nil
		},
	}
}
