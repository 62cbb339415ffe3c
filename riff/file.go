package riff

import (
	"bufio"
	"os"

	"github.com/pkg/errors"
)

// File is a RIFF stream read from a file on disk.
type File struct {
	*Reader

	path   string
	file   *os.File
	closed bool
}

// Open opens the file at path and reads its RIFF header.
//
// The file is closed again if the header cannot be read.
func Open(path string, opts ...Option) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Op: "open", Err: err}
	}

	r, err := NewReader(bufio.NewReader(f), opts...)
	if err != nil {
		f.Close()
		return nil, errors.Wrapf(err, "opening %s", path)
	}

	return &File{
		Reader: r,
		path:   path,
		file:   f,
	}, nil
}

// Path returns the file path.
func (f *File) Path() string {
	return f.path
}

// Close closes the file. Calling Close more than once is a no-op.
func (f *File) Close() error {
	if f.closed {
		return nil
	}
	f.closed = true
	return f.file.Close()
}
