package binary

import (
	"encoding/binary"
	"io"
)

// Writer writes fixed-width fields to a byte sink.
//
// The first write error is sticky: later writes are no-ops and Err reports it.
type Writer struct {
	w     io.Writer
	order binary.ByteOrder
	err   error
}

// NewWriter creates a binary writer with the given configuration.
func NewWriter(w io.Writer, cfg Config) *Writer {
	order := cfg.ByteOrder
	if order == nil {
		order = binary.LittleEndian
	}
	return &Writer{w: w, order: order}
}

// Err returns the first error encountered while writing.
func (w *Writer) Err() error {
	return w.err
}

// WriteBytes writes data as-is.
func (w *Writer) WriteBytes(data []byte) error {
	if w.err != nil {
		return w.err
	}
	if len(data) == 0 {
		return nil
	}
	n, err := w.w.Write(data)
	if err == nil && n < len(data) {
		err = io.ErrShortWrite
	}
	w.err = err
	return err
}

// WriteTag writes a four-byte tag.
func (w *Writer) WriteTag(tag [4]byte) error {
	return w.WriteBytes(tag[:])
}

// WriteUint32 writes an unsigned 32-bit integer.
func (w *Writer) WriteUint32(v uint32) error {
	buf := make([]byte, 4)
	w.order.PutUint32(buf, v)
	return w.WriteBytes(buf)
}
