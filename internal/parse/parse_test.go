package parse

import (
	"math"
	"strconv"
	"testing"
	"time"

	"github.com/csimplestring/mapok-go/errno"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokens(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{"single", "10", []string{"10"}},
		{"commas", "10, 20,x ,30", []string{"10", "20", "x", "30"}},
		{"empty fields", ",,10,,", []string{"10"}},
		{"comment", "10, 20 # trailing", []string{"10", "20"}},
		{"blank", "   ", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokens(tt.line)
			if len(tt.want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUint(t *testing.T) {
	v, err := Uint("42")
	require.NoError(t, err)
	assert.Equal(t, uint64(42), v)

	_, err = Uint("-1")
	assert.ErrorIs(t, err, errno.ErrParse)
	assert.ErrorIs(t, err, strconv.ErrSyntax)

	var te *errno.TokenError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, "-1", te.Token)
	assert.Equal(t, KindUint, te.Kind)
}

func TestDecimal(t *testing.T) {
	v, err := Decimal("1.5")
	require.NoError(t, err)
	assert.Equal(t, "4.5", Decimals.Format(Decimals.Scale(v, 3)))

	_, err = Decimal("1.5.5")
	assert.ErrorIs(t, err, errno.ErrParse)
}

func TestDuration(t *testing.T) {
	d, err := Duration("1d2h")
	require.NoError(t, err)
	assert.Equal(t, 26*time.Hour, d)

	scaled := Durations.Scale(d, 2)
	assert.Equal(t, 52*time.Hour, scaled)

	back, err := Duration(Durations.Format(scaled))
	require.NoError(t, err)
	assert.Equal(t, scaled, back)

	_, err = Duration("soon")
	assert.ErrorIs(t, err, errno.ErrParse)
}

func TestUints(t *testing.T) {
	v, err := Uints.Parse("20")
	require.NoError(t, err)
	assert.Equal(t, "2000", Uints.Format(Uints.Scale(v, 100)))
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{KindDecimal, KindDuration, KindUint}, Names())
	assert.True(t, Valid(KindUint))
	assert.False(t, Valid("hex"))
}

func TestParseForOverflow(t *testing.T) {
	tests := []struct {
		name    string
		parse   func() error
		wantErr bool
	}{
		{"uint fits", parseFor(Uints, 100, "10"), false},
		{"uint max times one", parseFor(Uints, 1, strconv.FormatUint(math.MaxUint64, 10)), false},
		{"uint overflows", parseFor(Uints, 100, "200000000000000000"), true},
		{"duration fits", parseFor(Durations, 2, "1d"), false},
		{"duration overflows", parseFor(Durations, 1000000, "1000w"), true},
		{"duration huge factor", parseFor(Durations, math.MaxUint64, "1ns"), true},
		{"zero duration huge factor", parseFor(Durations, math.MaxUint64, "0s"), false},
		{"decimal never overflows", parseFor(Decimals, math.MaxUint64, "1e30"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.parse()
			if tt.wantErr {
				assert.ErrorIs(t, err, errno.ErrOutOfRange)
				return
			}
			assert.NoError(t, err)
		})
	}

	assert.True(t, Durations.Fits(-2*time.Hour, 3))
	assert.False(t, Durations.Fits(math.MinInt64/2-1, 2))

	_, err := Uints.ParseFor(2)("x")
	assert.ErrorIs(t, err, errno.ErrParse)
}

func parseFor[T any](k Kind[T], factor uint64, s string) func() error {
	return func() error {
		_, err := k.ParseFor(factor)(s)
		return err
	}
}
