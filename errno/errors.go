package errno

import (
	"errors"
	"fmt"

	"github.com/rotisserie/eris"
)

var ErrIllegalState = errors.New("illegal state")
var ErrIllegalArgument = errors.New("illegal argument")
var ErrNullPointer = errors.New("null pointer")
var ErrUnsupportedOperation = errors.New("unsupported operation")
var ErrParse = errors.New("parse error")
var ErrFileNotFound = errors.New("file not found")
var ErrRead = errors.New("read error")
var ErrOutOfRange = errors.New("value out of range")

// ErrNilFailure stands in for the missing error of a failure element that
// carries none.
var ErrNilFailure = errors.New("failure without error")

func NilIterator() error {
	return eris.Wrap(ErrNullPointer, "nil iterator")
}

func IllegalStateError(msg string) error {
	return eris.Wrap(ErrIllegalState, msg)
}

func IllegalArgument(msg string) error {
	return eris.Wrap(ErrIllegalArgument, msg)
}

func UnsupportedScheme(scheme string) error {
	return eris.Wrap(ErrUnsupportedOperation, fmt.Sprintf("unsupported scheme %q", scheme))
}

func UnknownKind(kind string, known []string) error {
	return eris.Wrap(ErrIllegalArgument, fmt.Sprintf("unknown kind %q, expected one of %v", kind, known))
}

// ParseError reports a token that could not be parsed as kind. The cause is
// kept so errors.Is still reaches it.
func ParseError(kind string, token string, cause error) error {
	return &TokenError{Kind: kind, Token: token, Err: cause}
}

func ScaleOverflow(kind string, value string, factor uint64) error {
	return eris.Wrap(ErrOutOfRange, fmt.Sprintf("%s %s times %d overflows", kind, value, factor))
}

func ReadError(err error) error {
	return eris.Wrap(ErrRead, err.Error())
}

func FileNotFound(msg string) error {
	return eris.Wrap(ErrFileNotFound, msg)
}

// TokenError carries the offending token of a failed parse.
type TokenError struct {
	Kind  string
	Token string
	Err   error
}

func (t *TokenError) Error() string {
	return fmt.Sprintf("cannot parse %q as %s: %v", t.Token, t.Kind, t.Err)
}

func (t *TokenError) Is(target error) bool {
	return target == ErrParse
}

func (t *TokenError) Unwrap() error {
	return t.Err
}
