package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/robert-malhotra/go-riff/riff"
)

// printer writes the indented chunk listing.
type printer struct {
	w     io.Writer
	human bool
}

func (p *printer) header(r *riff.Reader) error {
	if _, err := fmt.Fprintf(p.w, "File size: %d bytes%s\n", r.ChunksSize(), p.humanSize(int(r.ChunksSize()))); err != nil {
		return err
	}
	_, err := fmt.Fprintf(p.w, "Form type: %s\n", r.FormType())
	return err
}

func (p *printer) chunk(depth int, c riff.Chunk) error {
	indent := strings.Repeat("  ", depth)
	size := c.InnerSize()

	var err error
	switch c := c.(type) {
	case riff.Simple:
		_, err = fmt.Fprintf(p.w, "%s%s: %d%s\n", indent, c.ID, size, p.humanSize(size))
	case riff.List:
		_, err = fmt.Fprintf(p.w, "%sLIST %d items: %s%s\n", indent, size, c.DataType, p.humanSize(size))
	}
	return err
}

func (p *printer) humanSize(n int) string {
	if !p.human {
		return ""
	}
	return " (" + humanize.Bytes(uint64(n)) + ")"
}
