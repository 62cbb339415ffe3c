// Package rifftest builds RIFF byte streams for tests.
package rifftest

import (
	"bytes"

	binpkg "github.com/robert-malhotra/go-riff/internal/binary"
	"github.com/robert-malhotra/go-riff/internal/header"
	"github.com/robert-malhotra/go-riff/riff"
)

// Builder accumulates an encoded stream.
type Builder struct {
	buf bytes.Buffer
	w   *binpkg.Writer
}

// New returns an empty builder.
func New() *Builder {
	b := &Builder{}
	b.w = binpkg.NewWriter(&b.buf, binpkg.DefaultConfig())
	return b
}

// Header appends a RIFF header with an explicit declared size.
func (b *Builder) Header(chunksSize uint32, form riff.DataType) *Builder {
	h := &header.Header{ChunksSize: chunksSize, FormType: form}
	h.Write(b.w)
	return b
}

// Chunk appends c encoded per the on-disk grammar.
func (b *Builder) Chunk(c riff.Chunk) *Builder {
	switch c := c.(type) {
	case riff.Simple:
		b.w.WriteTag(c.ID)
		b.w.WriteUint32(uint32(len(c.Data)))
		b.w.WriteBytes(c.Data)
	case riff.List:
		b.w.WriteTag(riff.LIST)
		b.w.WriteUint32(uint32(c.InnerSize()))
		b.w.WriteTag(c.DataType)
		for _, child := range c.Chunks {
			b.Chunk(child)
		}
	}
	return b
}

// Tag appends a bare four-byte tag.
func (b *Builder) Tag(tag [4]byte) *Builder {
	b.w.WriteTag(tag)
	return b
}

// Uint32 appends a little-endian integer.
func (b *Builder) Uint32(v uint32) *Builder {
	b.w.WriteUint32(v)
	return b
}

// Raw appends bytes as-is.
func (b *Builder) Raw(p []byte) *Builder {
	b.w.WriteBytes(p)
	return b
}

// Bytes returns the encoded stream.
func (b *Builder) Bytes() []byte {
	return bytes.Clone(b.buf.Bytes())
}

// File encodes a complete stream whose header declares the correct size.
func File(form riff.DataType, chunks ...riff.Chunk) []byte {
	tree := &riff.Tree{FormType: form, Chunks: chunks}
	b := New().Header(uint32(tree.InnerSize()), form)
	for _, c := range chunks {
		b.Chunk(c)
	}
	return b.Bytes()
}

