package mapok

import (
	"io"

	"github.com/csimplestring/mapok-go/iter"
	"github.com/samber/mo"
)

var _ iter.Iter[mo.Either[string, int]] = &MapRightIter[string, int, int]{}

// MapRightIter is MapOkIter for iterators of mo.Either, for failure payloads
// that are not errors. Right is the success side, Left passes through.
type MapRightIter[E any, T any, U any] struct {
	it     iter.Iter[mo.Either[E, T]]
	mapper Mapper[T, U]
	state  state
}

// MapRight wraps it so that every Right(t) becomes Right(f(t)).
func MapRight[E any, T any, U any](it iter.Iter[mo.Either[E, T]], f func(t T) U) *MapRightIter[E, T, U] {
	return &MapRightIter[E, T, U]{
		it:     it,
		mapper: MapperFunc[T, U](f),
		state:  active,
	}
}

func (m *MapRightIter[E, T, U]) Next() (mo.Either[E, U], error) {
	if m.state == exhausted {
		return mo.Either[E, U]{}, io.EOF
	}

	e, err := m.it.Next()
	if err == io.EOF {
		m.state = exhausted
		return mo.Either[E, U]{}, io.EOF
	}
	if err != nil {
		return mo.Either[E, U]{}, err
	}

	if v, ok := e.Right(); ok {
		return mo.Right[E, U](m.mapper.Map(v)), nil
	}
	return mo.Left[E, U](e.MustLeft()), nil
}

func (m *MapRightIter[E, T, U]) SizeHint() (int, mo.Option[int]) {
	if m.state == exhausted {
		return 0, mo.Some(0)
	}
	return iter.SizeHint(m.it)
}

func (m *MapRightIter[E, T, U]) Close() error {
	return m.it.Close()
}
