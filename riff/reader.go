package riff

import (
	"errors"
	"fmt"
	"io"
	"iter"

	"go.uber.org/zap"

	binpkg "github.com/robert-malhotra/go-riff/internal/binary"
	"github.com/robert-malhotra/go-riff/internal/header"
)

// Reader parses a RIFF stream read from an io.Reader.
//
// A Reader has exclusive use of its source: nothing else may read from the
// source while chunks are being consumed.
type Reader struct {
	src    *binpkg.Reader
	header *header.Header
	dec    *decoder
	it     *Iterator
}

// NewReader reads and validates the RIFF header from r.
//
// It fails with ErrNotRIFF if r does not start with the RIFF tag, or with an
// *IOError if r faults or ends before the 12-byte header is complete.
func NewReader(r io.Reader, opts ...Option) (*Reader, error) {
	o := defaultReaderOptions()
	for _, opt := range opts {
		opt(o)
	}

	src := binpkg.NewReader(r, binpkg.DefaultConfig())
	h, err := header.Read(src)
	if err != nil {
		if errors.Is(err, header.ErrNotRIFF) {
			return nil, ErrNotRIFF
		}
		return nil, &IOError{Op: "read header", Err: err}
	}

	dec := &decoder{opts: o}
	return &Reader{
		src:    src,
		header: h,
		dec:    dec,
		it:     dec.iterate(src, 0),
	}, nil
}

// FormType returns the form type declared in the header.
func (r *Reader) FormType() DataType {
	return DataType(r.header.FormType)
}

// ChunksSize returns the chunk area size declared in the header.
func (r *Reader) ChunksSize() uint32 {
	return r.header.ChunksSize
}

// Source returns the underlying stream, positioned after the bytes consumed
// so far. The Reader must not be used once the source has been taken back.
func (r *Reader) Source() io.Reader {
	return r.src.Source()
}

// Iter returns the iterator over the top-level chunks. Every call returns
// the same iterator, so iteration resumes where the last one stopped.
func (r *Reader) Iter() *Iterator {
	return r.it
}

// Chunks returns the remaining top-level chunks as a sequence.
//
// Each step reads one chunk, descending into lists. The sequence ends at
// the end of the stream or at the first fault, silently; Err reports which.
func (r *Reader) Chunks() iter.Seq[Chunk] {
	return r.it.All()
}

// Err returns the fault that ended iteration. If the top-level sequence
// ended cleanly it returns the first fault that cut a list's children
// short, so nil means every chunk read so far was complete.
func (r *Reader) Err() error {
	if err := r.it.Err(); err != nil {
		return err
	}
	return r.dec.nestedErr
}

// ReadAll reads every remaining top-level chunk. On a fault it returns the
// chunks read before it together with the error.
func (r *Reader) ReadAll() (*Tree, error) {
	tree := &Tree{FormType: r.FormType()}
	for c := range r.Chunks() {
		tree.Chunks = append(tree.Chunks, c)
	}
	return tree, r.Err()
}

// decoder holds the per-stream parsing configuration shared by every level
// of recursion.
type decoder struct {
	opts *readerOptions
	// nestedErr is the first fault that ended a list's children early
	// without ending the enclosing sequence.
	nestedErr error
}

func (d *decoder) iterate(src *binpkg.Reader, depth int) *Iterator {
	return &Iterator{dec: d, src: src, depth: depth}
}

// readChunk reads one chunk at depth. A bare io.EOF means the region ended
// exactly on a chunk boundary.
func (d *decoder) readChunk(src *binpkg.Reader, depth int) (Chunk, error) {
	tag, err := src.ReadTag()
	if err != nil {
		if err == io.EOF {
			return nil, io.EOF
		}
		return nil, truncated(err)
	}
	size, err := src.ReadUint32()
	if err != nil {
		return nil, truncated(err)
	}

	id := ID(tag)
	if id != LIST {
		data, err := src.ReadBytes(int(size))
		if err != nil {
			return nil, truncated(err)
		}
		return Simple{ID: id, Data: data}, nil
	}

	dt, err := src.ReadTag()
	if err != nil {
		return nil, truncated(err)
	}
	if size < typeSize {
		return nil, fmt.Errorf("%w: declared size %d is smaller than its type tag", ErrMalformedList, size)
	}
	if d.opts.maxDepth > 0 && depth+1 > d.opts.maxDepth {
		return nil, ErrMaxDepth
	}
	region, err := src.Region(int(size - typeSize))
	if err != nil {
		return nil, truncated(err)
	}

	var children []Chunk
	it := d.iterate(region, depth+1)
	for it.Next() {
		children = append(children, it.Chunk())
	}
	if err := it.Err(); err != nil {
		if d.opts.strict {
			return nil, err
		}
		if d.nestedErr == nil {
			d.nestedErr = err
		}
	}
	return List{DataType: DataType(dt), Chunks: children}, nil
}

func truncated(err error) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return fmt.Errorf("%w: %w", ErrTruncated, io.ErrUnexpectedEOF)
	}
	return err
}

// Iterator reads chunks one at a time from a region.
//
//	it := r.Iter()
//	for it.Next() {
//	    c := it.Chunk()
//	    ...
//	}
//	if err := it.Err(); err != nil {
//	    // the stream was truncated or malformed
//	}
type Iterator struct {
	dec   *decoder
	src   *binpkg.Reader
	depth int
	chunk Chunk
	err   error
	done  bool
}

// Next reads the next chunk. It returns false once the region is exhausted
// or a fault occurs, and keeps returning false afterwards.
func (it *Iterator) Next() bool {
	if it.done {
		return false
	}
	start := it.src.Pos()
	c, err := it.dec.readChunk(it.src, it.depth)
	if err != nil {
		it.done = true
		it.chunk = nil
		if err != io.EOF {
			it.err = &ChunkError{Offset: start, Depth: it.depth, Err: err}
			it.dec.opts.logger.Debug("chunk iteration ended on fault",
				zap.Int64("offset", start),
				zap.Int("depth", it.depth),
				zap.Error(err))
		}
		return false
	}
	it.chunk = c
	return true
}

// Chunk returns the chunk read by the last successful call to Next.
func (it *Iterator) Chunk() Chunk {
	return it.chunk
}

// Err returns the fault that stopped the iterator, or nil if it stopped at
// a clean chunk boundary or has not stopped yet. Faults inside lists that
// did not stop the iterator are reported by Reader.Err.
func (it *Iterator) Err() error {
	return it.err
}

// All returns the remaining chunks as a sequence. Breaking out of a range
// loop leaves the iterator positioned after the last chunk yielded.
func (it *Iterator) All() iter.Seq[Chunk] {
	return func(yield func(Chunk) bool) {
		for it.Next() {
			if !yield(it.Chunk()) {
				return
			}
		}
	}
}
