package riff

import (
	"bytes"
	"strings"
)

// ID is the four-byte identifier of a chunk.
type ID [4]byte

// DataType is the four-byte type tag of a form or list.
type DataType [4]byte

// Built-in identifiers.
var (
	RIFF = ID{'R', 'I', 'F', 'F'}
	LIST = ID{'L', 'I', 'S', 'T'}

	Fmt  = ID{'f', 'm', 't', ' '}
	Data = ID{'d', 'a', 't', 'a'}
	// JUNK chunks carry padding only.
	JUNK = ID{'J', 'U', 'N', 'K'}
)

// Built-in data types.
var (
	// INFO lists carry metadata.
	INFO = DataType{'I', 'N', 'F', 'O'}
	WAVE = DataType{'W', 'A', 'V', 'E'}
	AVI  = DataType{'A', 'V', 'I', ' '}
)

// String renders the tag as text, replacing invalid UTF-8.
func (id ID) String() string {
	return renderTag(id)
}

// Compare orders tags by byte value. It returns -1, 0 or +1.
func (id ID) Compare(other ID) int {
	return bytes.Compare(id[:], other[:])
}

// String renders the tag as text, replacing invalid UTF-8.
func (dt DataType) String() string {
	return renderTag(dt)
}

// Compare orders tags by byte value. It returns -1, 0 or +1.
func (dt DataType) Compare(other DataType) int {
	return bytes.Compare(dt[:], other[:])
}

func renderTag(tag [4]byte) string {
	return strings.ToValidUTF8(string(tag[:]), "�")
}
