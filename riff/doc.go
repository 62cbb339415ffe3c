// Package riff reads files in the Resource Interchange File Format.
//
// A RIFF stream is a 12-byte header followed by a sequence of chunks:
//
//	File   := "RIFF" size(u32) formType(4) Chunk*
//	Chunk  := id(4) size(u32) payload(size bytes)
//
// A chunk with identifier "LIST" is a [List]: its payload is a four-byte
// data type followed by further chunks. Every other chunk is a [Simple]
// chunk with an opaque payload. All integers are little-endian.
//
// # Reading
//
//	f, err := riff.Open("sound.wav")
//	if err != nil {
//	    return err
//	}
//	defer f.Close()
//
//	fmt.Println(f.FormType(), f.ChunksSize())
//	for c := range f.Chunks() {
//	    ...
//	}
//
// Use [NewReader] to read from any io.Reader instead of a file.
//
// # Termination
//
// Only the header can fail loudly: [Open] and [NewReader] return
// [ErrNotRIFF] or an [*IOError]. Chunk iteration stops silently at the end of
// the stream and also at the first truncated or malformed chunk, so a
// damaged file yields the chunks read before the damage. Callers that need
// to tell the two apart check [Reader.Err] (or [Iterator.Err]) after the
// loop; it returns a [*ChunkError] when iteration stopped on a fault.
//
// Inside a list, a damaged child ends the list's children and the list is
// kept with the children read so far; iteration carries on past the list
// and [Reader.Err] reports the first such fault once the sequence ends.
// [WithStrict] makes the fault fail the enclosing chunk instead.
//
// List nesting is unlimited unless [WithMaxDepth] sets a bound.
//
// Each list's payload is read in full before its children are parsed, so a
// corrupt child can never read past the end of its parent.
//
// # Sizes
//
// For every chunk OuterSize() == 8 + InnerSize(). A list's InnerSize is
// 4 plus the OuterSize of each child, computed from the children each time.
package riff
