package sources

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// Source is anything that can hand out a readable stream of one dataset.
// The core never resolves paths or closes streams on its own; callers own
// the lifetime of what Open returns.
type Source interface {
	Name() string
	Open() (io.ReadCloser, error)
}

type fileSource struct {
	path string
}

func NewFile(path string) Source {
	return &fileSource{path: path}
}

func (s *fileSource) Name() string {
	return s.path
}

func (s *fileSource) Open() (io.ReadCloser, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open file %v", s.path)
	}

	return f, nil
}

type bufferSource struct {
	name    string
	content string
}

// NewBuffer is an in-memory source, used in tests and for embedded data.
func NewBuffer(name string, content string) Source {
	return &bufferSource{name: name, content: content}
}

func (s *bufferSource) Name() string {
	return s.name
}

func (s *bufferSource) Open() (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader(s.content)), nil
}
