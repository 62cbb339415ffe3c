package riff

import (
	"errors"
	"iter"
	"slices"
)

// SkipList can be returned by a WalkFunc visiting a List to skip its
// children. Returned for a Simple chunk it has no effect.
var SkipList = errors.New("skip this list")

// WalkFunc is called for each chunk during traversal.
// depth is 0 for the chunks passed to Walk and grows by one per list level.
// Return nil to continue walking, SkipList to skip a list's children, or
// any other error to stop.
type WalkFunc func(depth int, c Chunk) error

// Walk traverses chunks depth-first, visiting each list before its children.
//
// Example:
//
//	riff.Walk(r.Chunks(), func(depth int, c riff.Chunk) error {
//	    indent := strings.Repeat("  ", depth)
//	    switch c := c.(type) {
//	    case riff.Simple:
//	        fmt.Printf("%s%s: %d\n", indent, c.ID, c.InnerSize())
//	    case riff.List:
//	        fmt.Printf("%sLIST %d items: %s\n", indent, c.InnerSize(), c.DataType)
//	    }
//	    return nil
//	})
func Walk(chunks iter.Seq[Chunk], fn WalkFunc) error {
	for c := range chunks {
		if err := walkChunk(c, 0, fn); err != nil {
			return err
		}
	}
	return nil
}

// WalkChunks is Walk over an already parsed slice of chunks.
func WalkChunks(chunks []Chunk, fn WalkFunc) error {
	return Walk(slices.Values(chunks), fn)
}

// walkChunk visits c and, if it is a list, its children.
func walkChunk(c Chunk, depth int, fn WalkFunc) error {
	if c == nil {
		return nil
	}
	if err := fn(depth, c); err != nil {
		if errors.Is(err, SkipList) {
			return nil
		}
		return err
	}
	l, ok := c.(List)
	if !ok {
		return nil
	}

	for _, child := range l.Chunks {
		if err := walkChunk(child, depth+1, fn); err != nil {
			return err
		}
	}
	return nil
}
