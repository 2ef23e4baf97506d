package common

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
)

var (
	// ErrMalformed signals broken content inside a source: a row with too
	// few fields, or text that must parse as a number and does not.
	ErrMalformed = errors.New("malformed content")

	// ErrNotReadable signals that a stream could not be read at all. It is
	// raised before any header parsing is attempted.
	ErrNotReadable = errors.New("stream is not readable")
)

// Precheck verifies that there is something to read before an importer
// touches the stream. A nil or empty stream is a precondition failure,
// distinct from a parse error.
func Precheck(r io.Reader) (*bufio.Reader, error) {
	if r == nil {
		return nil, errors.WithStack(ErrNotReadable)
	}

	br := bufio.NewReader(r)

	if _, err := br.Peek(1); err != nil {
		return nil, errors.Wrapf(ErrNotReadable, "nothing to read: %v", err)
	}

	return br, nil
}
