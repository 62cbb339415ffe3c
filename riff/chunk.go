package riff

import (
	"bytes"
	"cmp"
)

const (
	// headerSize is the identifier plus the length field of every chunk.
	headerSize = 8
	// typeSize is the data-type tag at the start of a list payload.
	typeSize = 4
)

// Chunk is one node of a parsed tree. It is either a Simple or a List.
type Chunk interface {
	// OuterSize returns the bytes the chunk occupies on disk,
	// including its identifier and length field.
	OuterSize() int

	// InnerSize returns the value of the chunk's on-disk length field.
	InnerSize() int

	// Clone returns a deep copy.
	Clone() Chunk

	isChunk()
}

// Simple is an opaque chunk: an identifier and its payload.
type Simple struct {
	ID   ID
	Data []byte
}

// List is a chunk holding an ordered sequence of sub-chunks.
// A nil entry in Chunks occupies no bytes and is skipped by Walk.
type List struct {
	DataType DataType
	Chunks   []Chunk
}

// OuterSize returns 8 plus the payload length.
func (s Simple) OuterSize() int {
	return headerSize + s.InnerSize()
}

// InnerSize returns the payload length.
func (s Simple) InnerSize() int {
	return len(s.Data)
}

// Clone returns a copy with its own payload.
func (s Simple) Clone() Chunk {
	return Simple{ID: s.ID, Data: bytes.Clone(s.Data)}
}

func (Simple) isChunk() {}

// OuterSize returns 8 plus InnerSize.
func (l List) OuterSize() int {
	return headerSize + l.InnerSize()
}

// InnerSize returns 4 plus the outer size of every child.
// It is computed from the children on every call.
func (l List) InnerSize() int {
	return typeSize + sumOuter(l.Chunks)
}

// Clone returns a deep copy of the list and all of its descendants.
func (l List) Clone() Chunk {
	return List{DataType: l.DataType, Chunks: cloneChunks(l.Chunks)}
}

func (List) isChunk() {}

// Tree is a whole parsed stream: its form type and top-level chunks.
type Tree struct {
	FormType DataType
	Chunks   []Chunk
}

// InnerSize returns the chunk area size the tree would declare in its header.
func (t *Tree) InnerSize() int {
	return typeSize + sumOuter(t.Chunks)
}

// Compare orders chunks. A nil chunk sorts first, then simple chunks, then
// lists; simple chunks compare by identifier then payload, lists by data
// type then children.
func Compare(a, b Chunk) int {
	if c := cmp.Compare(kind(a), kind(b)); c != 0 {
		return c
	}
	switch a := a.(type) {
	case Simple:
		bs := b.(Simple)
		if c := a.ID.Compare(bs.ID); c != 0 {
			return c
		}
		return bytes.Compare(a.Data, bs.Data)
	case List:
		bl := b.(List)
		if c := a.DataType.Compare(bl.DataType); c != 0 {
			return c
		}
		return compareChunks(a.Chunks, bl.Chunks)
	}
	return 0
}

func kind(c Chunk) int {
	switch c.(type) {
	case Simple:
		return 1
	case List:
		return 2
	}
	return 0
}

// Equal reports whether a and b are structurally identical.
func Equal(a, b Chunk) bool {
	return Compare(a, b) == 0
}

func compareChunks(a, b []Chunk) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}

func sumOuter(chunks []Chunk) int {
	total := 0
	for _, c := range chunks {
		if c != nil {
			total += c.OuterSize()
		}
	}
	return total
}

func cloneChunks(chunks []Chunk) []Chunk {
	if chunks == nil {
		return nil
	}
	out := make([]Chunk, len(chunks))
	for i, c := range chunks {
		if c != nil {
			out[i] = c.Clone()
		}
	}
	return out
}
