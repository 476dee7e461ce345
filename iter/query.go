package iter

import (
	"github.com/ahmetb/go-linq/v3"
)

// Query exposes it as a linq.Query. The underlying iterator is single-pass:
// only the first evaluation of the query sees its elements, later ones see an
// empty sequence. A producer error ends the query.
func Query[T any](it Iter[T]) linq.Query {
	return linq.Query{
		Iterate: func() linq.Iterator {
			return func() (interface{}, bool) {
				v, err := it.Next()
				if err != nil {
					return nil, false
				}
				return v, true
			}
		},
	}
}
