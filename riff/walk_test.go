package riff_test

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robert-malhotra/go-riff/internal/rifftest"
	"github.com/robert-malhotra/go-riff/riff"
)

func walkTree() []riff.Chunk {
	return []riff.Chunk{
		simple("fmt ", []byte{1, 2, 3, 4}),
		list("INFO",
			simple("INAM", []byte("ab")),
			list("sub ", simple("ICMT", nil)),
		),
		simple("data", make([]byte, 6)),
	}
}

func describe(depth int, c riff.Chunk) string {
	indent := strings.Repeat("  ", depth)
	switch c := c.(type) {
	case riff.Simple:
		return fmt.Sprintf("%s%s: %d", indent, c.ID, c.InnerSize())
	case riff.List:
		return fmt.Sprintf("%sLIST %d items: %s", indent, c.InnerSize(), c.DataType)
	}
	return ""
}

func TestWalkChunksOrder(t *testing.T) {
	var lines []string
	err := riff.WalkChunks(walkTree(), func(depth int, c riff.Chunk) error {
		lines = append(lines, describe(depth, c))
		return nil
	})
	require.NoError(t, err)

	want := []string{
		"fmt : 4",
		"LIST 34 items: INFO",
		"  INAM: 2",
		"  LIST 12 items: sub ",
		"    ICMT: 0",
		"data: 6",
	}
	require.Equal(t, want, lines)
}

func TestWalkReaderSequence(t *testing.T) {
	r, err := riff.NewReader(bytes.NewReader(rifftest.File(riff.WAVE, walkTree()...)))
	require.NoError(t, err)

	count := 0
	maxDepth := 0
	err = riff.Walk(r.Chunks(), func(depth int, c riff.Chunk) error {
		count++
		maxDepth = max(maxDepth, depth)
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, 6, count)
	require.Equal(t, 2, maxDepth)
}

func TestWalkSkipList(t *testing.T) {
	var ids []string
	err := riff.WalkChunks(walkTree(), func(depth int, c riff.Chunk) error {
		switch c := c.(type) {
		case riff.Simple:
			ids = append(ids, c.ID.String())
			return riff.SkipList
		case riff.List:
			ids = append(ids, c.DataType.String())
			if c.DataType.String() == "sub " {
				return riff.SkipList
			}
		}
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, []string{"fmt ", "INFO", "INAM", "sub ", "data"}, ids)
}

func TestWalkStop(t *testing.T) {
	stop := errors.New("stop")
	visited := 0
	err := riff.WalkChunks(walkTree(), func(depth int, c riff.Chunk) error {
		visited++
		if depth == 1 {
			return stop
		}
		return nil
	})
	require.ErrorIs(t, err, stop)
	require.Equal(t, 3, visited)
}

func TestWalkWrappedSkipList(t *testing.T) {
	var ids []string
	err := riff.WalkChunks(walkTree(), func(depth int, c riff.Chunk) error {
		if l, ok := c.(riff.List); ok {
			ids = append(ids, l.DataType.String())
			return fmt.Errorf("list %s: %w", l.DataType, riff.SkipList)
		}
		ids = append(ids, c.(riff.Simple).ID.String())
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, []string{"fmt ", "INFO", "data"}, ids)
}

func TestWalkSkipsNilChildren(t *testing.T) {
	chunks := []riff.Chunk{nil, list("INFO", nil, simple("INAM", nil)), nil}
	var lines []string
	err := riff.WalkChunks(chunks, func(depth int, c riff.Chunk) error {
		require.NotNil(t, c)
		lines = append(lines, describe(depth, c))
		return nil
	})
	require.NoError(t, err)
	require.Len(t, lines, 2)
}
