// Package header handles the RIFF stream header.
//
// Every RIFF stream begins with a 12-byte header:
//
//	offset  size  field
//	0       4     signature, the literal bytes "RIFF"
//	4       4     declared chunk area size (little-endian uint32)
//	8       4     form type (e.g. "WAVE", "AVI ")
//
// The declared size counts the form type and every chunk that follows it,
// but not the signature or the size field itself.
//
// # Usage
//
//	h, err := header.Read(reader)
//	if err == header.ErrNotRIFF {
//	    // Not a RIFF stream
//	}
//
// [Read] reports any short read or source fault wrapped with the name of the
// field being read, so callers can use errors.Is against io.EOF,
// io.ErrUnexpectedEOF or the source's own error.
//
// # Errors
//
//   - [ErrNotRIFF]: the stream does not start with the RIFF signature
package header
