package parse

import (
	"math"
	"math/big"
	"math/bits"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/csimplestring/mapok-go/errno"
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/repeale/fp-go"
	"github.com/shopspring/decimal"
	duration "github.com/xhit/go-str2duration/v2"
)

const (
	KindUint     = "uint"
	KindDecimal  = "decimal"
	KindDuration = "duration"
)

var kinds = mapset.NewSet(KindUint, KindDecimal, KindDuration)

// Kind knows how to parse one token type, scale it by an integer factor and
// print it back. Scale wraps around on overflow; Fits reports whether it
// would not. A nil Fits means every value fits.
type Kind[T any] struct {
	Name   string
	Parse  func(s string) (T, error)
	Fits   func(v T, factor uint64) bool
	Scale  func(v T, factor uint64) T
	Format func(v T) string
}

// ParseFor parses s and rejects values that Scale cannot multiply by factor.
func (k Kind[T]) ParseFor(factor uint64) func(s string) (T, error) {
	return func(s string) (T, error) {
		v, err := k.Parse(s)
		if err != nil {
			return v, err
		}
		if k.Fits != nil && !k.Fits(v, factor) {
			var zero T
			return zero, errno.ScaleOverflow(k.Name, s, factor)
		}
		return v, nil
	}
}

var Uints = Kind[uint64]{
	Name:  KindUint,
	Parse: Uint,
	Fits: func(v uint64, factor uint64) bool {
		hi, _ := bits.Mul64(v, factor)
		return hi == 0
	},
	Scale: func(v uint64, factor uint64) uint64 {
		return v * factor
	},
	Format: func(v uint64) string {
		return strconv.FormatUint(v, 10)
	},
}

var Decimals = Kind[decimal.Decimal]{
	Name:  KindDecimal,
	Parse: Decimal,
	Scale: func(v decimal.Decimal, factor uint64) decimal.Decimal {
		return v.Mul(decimal.NewFromBigInt(new(big.Int).SetUint64(factor), 0))
	},
	Format: func(v decimal.Decimal) string {
		return v.String()
	},
}

var Durations = Kind[time.Duration]{
	Name:  KindDuration,
	Parse: Duration,
	Fits: func(v time.Duration, factor uint64) bool {
		if v == 0 || factor == 0 {
			return true
		}
		if factor > math.MaxInt64 {
			return false
		}
		r := v * time.Duration(factor)
		return r/v == time.Duration(factor) && (r < 0) == (v < 0)
	},
	Scale: func(v time.Duration, factor uint64) time.Duration {
		return v * time.Duration(factor)
	},
	Format: duration.String,
}

// Valid reports whether name is a registered kind.
func Valid(name string) bool {
	return kinds.Contains(name)
}

// Names returns the registered kinds in sorted order.
func Names() []string {
	names := kinds.ToSlice()
	sort.Strings(names)
	return names
}

func Uint(s string) (uint64, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, errno.ParseError(KindUint, s, err)
	}
	return v, nil
}

func Decimal(s string) (decimal.Decimal, error) {
	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, errno.ParseError(KindDecimal, s, err)
	}
	return v, nil
}

// Duration accepts Go durations extended with days and weeks, e.g. "1w2d3h".
func Duration(s string) (time.Duration, error) {
	d, err := duration.ParseDuration(s)
	if err != nil {
		return 0, errno.ParseError(KindDuration, s, err)
	}
	return d, nil
}

// Tokens splits a line on commas. Surrounding space is trimmed, empty tokens
// are dropped and everything after a '#' is ignored.
func Tokens(line string) []string {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	trimmed := fp.Map(strings.TrimSpace)(strings.Split(line, ","))
	return fp.Filter(func(s string) bool { return s != "" })(trimmed)
}
