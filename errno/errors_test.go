package errno

import (
	"errors"
	"strconv"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
)

func TestParseError(t *testing.T) {
	_, cause := strconv.ParseUint("x", 10, 64)
	err := ParseError("uint", "x", cause)

	assert.True(t, errors.Is(err, ErrParse))
	assert.True(t, errors.Is(err, strconv.ErrSyntax))
	assert.Contains(t, err.Error(), `"x"`)
	assert.Contains(t, err.Error(), "uint")

	var te *TokenError
	assert.True(t, errors.As(err, &te))
	assert.Equal(t, "x", te.Token)
}

func TestWrappedSentinels(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"nil iterator", NilIterator(), ErrNullPointer},
		{"illegal state", IllegalStateError("boom"), ErrIllegalState},
		{"illegal argument", IllegalArgument("boom"), ErrIllegalArgument},
		{"unknown kind", UnknownKind("hex", []string{"uint"}), ErrIllegalArgument},
		{"unsupported scheme", UnsupportedScheme("ftp"), ErrUnsupportedOperation},
		{"read", ReadError(eris.New("disk")), ErrRead},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.err, tt.want)
		})
	}
}
