package iter

import (
	"bufio"
	"io"

	"github.com/csimplestring/mapok-go/errno"
)

var _ Iter[string] = &LineReader{}

// FromReadCloser returns an iterator producing lines from the given reader.
func FromReadCloser(r io.ReadCloser) *LineReader {
	s := bufio.NewScanner(r)

	return &LineReader{
		reader:  r,
		scanner: s,
	}
}

type LineReader struct {
	reader  io.ReadCloser
	scanner *bufio.Scanner
}

// Next implements Iter[T].Next by returning the next line from the reader.
func (it *LineReader) Next() (string, error) {
	if it.scanner.Scan() {
		return it.scanner.Text(), nil
	}
	if err := it.scanner.Err(); err != nil {
		return "", errno.ReadError(err)
	}

	return "", io.EOF
}

func (it *LineReader) Close() error {
	return it.reader.Close()
}

// AsReadCloser streams the strings of itr as one byte stream, each followed
// by a newline when appendNewline is set. A producer error from itr is
// returned from Read. Closing the reader closes itr.
func AsReadCloser(itr Iter[string], appendNewline bool) io.ReadCloser {
	return &stringStream{src: itr, newline: appendNewline}
}

type stringStream struct {
	src     Iter[string]
	pending []byte
	newline bool
}

func (s *stringStream) Read(p []byte) (int, error) {
	for len(s.pending) == 0 {
		str, err := s.src.Next()
		if err != nil {
			return 0, err
		}
		if s.newline {
			str += "\n"
		}
		s.pending = []byte(str)
	}

	n := copy(p, s.pending)
	s.pending = s.pending[n:]
	return n, nil
}

func (s *stringStream) Close() error {
	return s.src.Close()
}
