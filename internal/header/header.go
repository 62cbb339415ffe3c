package header

import (
	"errors"
	"fmt"

	binpkg "github.com/robert-malhotra/go-riff/internal/binary"
)

// Signature is the container tag every RIFF stream starts with.
var Signature = [4]byte{'R', 'I', 'F', 'F'}

// ErrNotRIFF is returned when the first four bytes are not the RIFF signature.
var ErrNotRIFF = errors.New("not a RIFF file: signature not found")

// Size is the on-disk size of the header in bytes.
const Size = 12

// Header is the fixed-format preamble of a RIFF stream.
type Header struct {
	// ChunksSize is the declared byte length of the chunk area,
	// counting the form type but not the signature or this field.
	ChunksSize uint32

	// FormType names the flavour of the container (e.g. "WAVE").
	FormType [4]byte
}

// Read parses the header at the current reader position.
//
// On a signature mismatch the four signature bytes have already been
// consumed; the reader must not be reused.
func Read(r *binpkg.Reader) (*Header, error) {
	sig, err := r.ReadTag()
	if err != nil {
		return nil, fmt.Errorf("reading signature: %w", err)
	}
	if sig != Signature {
		return nil, ErrNotRIFF
	}

	size, err := r.ReadUint32()
	if err != nil {
		return nil, fmt.Errorf("reading chunks size: %w", err)
	}

	form, err := r.ReadTag()
	if err != nil {
		return nil, fmt.Errorf("reading form type: %w", err)
	}

	return &Header{ChunksSize: size, FormType: form}, nil
}

// Write encodes h at the current writer position.
func (h *Header) Write(w *binpkg.Writer) error {
	w.WriteTag(Signature)
	w.WriteUint32(h.ChunksSize)
	w.WriteTag(h.FormType)
	return w.Err()
}
