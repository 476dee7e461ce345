package iter

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsReadCloser(t *testing.T) {
	tests := []struct {
		name    string
		input   []string
		newline bool
		bufSize int
		want    string
	}{
		{"newline, short reads", []string{"1000", "2000", "a longer line than the buffer"}, true, 3, "1000\n2000\na longer line than the buffer\n"},
		{"no newline", []string{"ab", "", "c"}, false, 64, "abc"},
		{"empty", nil, true, 8, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := AsReadCloser(FromSlice(tt.input), tt.newline)
			buf := make([]byte, tt.bufSize)
			var got []byte
			for {
				n, err := r.Read(buf)
				got = append(got, buf[:n]...)
				if err == io.EOF {
					break
				}
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, string(got))
			assert.NoError(t, r.Close())
		})
	}
}

func TestAsReadCloserProducerError(t *testing.T) {
	boom := errors.New("boom")
	src := &MapIter[string, string]{
		It: FromSlice([]string{"ok", "bad"}),
		Mapper: func(s string) (string, error) {
			if s == "bad" {
				return "", boom
			}
			return s, nil
		},
	}

	b, err := io.ReadAll(AsReadCloser(src, true))
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, "ok\n", string(b))
}

func TestFromReadCloser(t *testing.T) {
	input := "10\n20\nx\n30\n"
	iter := FromReadCloser(io.NopCloser(strings.NewReader(input)))

	lines, err := ToSlice[string](iter)
	require.NoError(t, err)
	assert.Equal(t, []string{"10", "20", "x", "30"}, lines)

	_, err = iter.Next()
	assert.Equal(t, io.EOF, err)
}

func TestRoundTripThroughReader(t *testing.T) {
	input := []string{"a", "", "c"}
	r := AsReadCloser(FromSlice(input), true)

	lines, err := ToSlice[string](FromReadCloser(r))
	require.NoError(t, err)
	assert.Equal(t, input, lines)
}
