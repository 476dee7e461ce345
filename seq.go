package mapok

import (
	"io"
	stditer "iter"

	"github.com/csimplestring/mapok-go/errno"
	"github.com/csimplestring/mapok-go/iter"
	"github.com/samber/mo"
)

// Seq adapts a result iterator to a range-over-func sequence. A producer
// error other than io.EOF is yielded last. it is closed when the loop ends.
// An Err element holding a nil error is yielded with errno.ErrNilFailure,
// since a nil error would read as success.
func Seq[T any](it iter.Iter[mo.Result[T]]) stditer.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		defer it.Close()
		for {
			r, err := it.Next()
			if err == io.EOF {
				return
			}
			if err != nil {
				var zero T
				yield(zero, err)
				return
			}
			if !yieldResult(r, yield) {
				return
			}
		}
	}
}

func yieldResult[T any](r mo.Result[T], yield func(T, error) bool) bool {
	if !r.IsError() {
		return yield(r.MustGet(), nil)
	}
	var zero T
	err := r.Error()
	if err == nil {
		err = errno.ErrNilFailure
	}
	return yield(zero, err)
}

// MapOkSeq applies f to the value of every pair whose error is nil. Pairs
// carrying an error are yielded with the zero U and the same error.
func MapOkSeq[T any, U any](seq stditer.Seq2[T, error], f func(t T) U) stditer.Seq2[U, error] {
	return func(yield func(U, error) bool) {
		for t, err := range seq {
			if err != nil {
				var zero U
				if !yield(zero, err) {
					return
				}
				continue
			}
			if !yield(f(t), nil) {
				return
			}
		}
	}
}
