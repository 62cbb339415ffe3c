package riff

import (
	"errors"
	"fmt"

	"github.com/robert-malhotra/go-riff/internal/header"
)

// Common errors
var (
	// ErrNotRIFF is returned by Open and NewReader when the stream does not
	// start with the RIFF container tag.
	ErrNotRIFF = header.ErrNotRIFF

	ErrTruncated     = errors.New("chunk truncated")
	ErrMalformedList = errors.New("malformed list chunk")
	ErrMaxDepth      = errors.New("maximum list depth exceeded")
)

// IOError reports a fault of the underlying byte source while opening a
// stream, including a source that ends before the header is complete.
type IOError struct {
	Op  string
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("riff: %s: %v", e.Op, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// ChunkError describes why chunk iteration stopped early.
type ChunkError struct {
	// Offset is the position of the failing chunk within the region being
	// iterated: the stream itself (header included) at the top level, or the
	// enclosing list's children.
	Offset int64
	// Depth is the list nesting level of the failing chunk; 0 is top level.
	Depth int
	Err   error
}

func (e *ChunkError) Error() string {
	return fmt.Sprintf("riff: chunk at offset %d (depth %d): %v", e.Offset, e.Depth, e.Err)
}

func (e *ChunkError) Unwrap() error {
	return e.Err
}
