package riff_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robert-malhotra/go-riff/internal/rifftest"
	"github.com/robert-malhotra/go-riff/riff"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestOpenFile(t *testing.T) {
	chunks := []riff.Chunk{
		simple("fmt ", []byte{1, 0, 1, 0}),
		list("INFO", simple("INAM", []byte("song")), list("nest", simple("ICMT", nil))),
		simple("data", make([]byte, 33)),
	}
	path := writeFile(t, "test.wav", rifftest.File(riff.WAVE, chunks...))

	f, err := riff.Open(path)
	require.NoError(t, err)
	defer f.Close()

	require.Equal(t, path, f.Path())
	require.Equal(t, riff.WAVE, f.FormType())
	require.Equal(t, uint32(4+12+44+41), f.ChunksSize())

	requireTree(t, chunks, collect(t, f.Reader))
	require.NoError(t, f.Err())
}

func TestOpenInvalidFiles(t *testing.T) {
	tests := []struct {
		name    string
		content []byte
		notRIFF bool
	}{
		{"empty file", nil, false},
		{"short header", []byte("RIFF\x00"), false},
		{"text file", []byte("This is not a RIFF file"), true},
		{"big-endian RIFX", []byte("RIFX\x00\x00\x00\x04WAVE"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "invalid.riff", tt.content)
			f, err := riff.Open(path)
			require.Nil(t, f)
			require.Error(t, err)
			require.Contains(t, err.Error(), path)

			if tt.notRIFF {
				require.ErrorIs(t, err, riff.ErrNotRIFF)
				return
			}
			var ioErr *riff.IOError
			require.ErrorAs(t, err, &ioErr)
			require.Equal(t, "read header", ioErr.Op)
		})
	}
}

func TestOpenMissingFile(t *testing.T) {
	f, err := riff.Open(filepath.Join(t.TempDir(), "missing.wav"))
	require.Nil(t, f)

	var ioErr *riff.IOError
	require.ErrorAs(t, err, &ioErr)
	require.Equal(t, "open", ioErr.Op)
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestOpenTruncatedBody(t *testing.T) {
	data := rifftest.File(riff.WAVE, simple("fmt ", []byte{1, 2}), simple("data", make([]byte, 100)))
	path := writeFile(t, "truncated.wav", data[:len(data)-50])

	f, err := riff.Open(path)
	require.NoError(t, err)
	defer f.Close()

	requireTree(t, []riff.Chunk{simple("fmt ", []byte{1, 2})}, collect(t, f.Reader))
	require.ErrorIs(t, f.Err(), riff.ErrTruncated)
}

func TestFileCloseTwice(t *testing.T) {
	path := writeFile(t, "test.wav", rifftest.File(riff.WAVE))
	f, err := riff.Open(path)
	require.NoError(t, err)

	require.NoError(t, f.Close())
	require.NoError(t, f.Close())
}
