// Package report formats the per-URI crawl results and the min/max
// summary that the orchestrator prints to stdout, as one small
// injectable writer so tests can capture output in a bytes.Buffer
// instead of the real terminal.
package report

import (
	"fmt"
	"io"
)

// Line is one reported resource: its discovered URI, the filename its
// body was stored under, its byte size, and its Adler-32 checksum.
type Line struct {
	URI      string
	Filename string
	Size     uint64
	Checksum uint32
}

// Write prints one line per entry in lines, in the order given, then a
// "Minimal size" and "Maximal size" line naming the smallest and
// largest entries (ties broken by first occurrence), provided lines is
// non-empty.
func Write(w io.Writer, lines []Line) error {
	var minLine, maxLine *Line

	for i := range lines {
		l := &lines[i]

		if _, err := fmt.Fprintf(w, "URI %q stored in %s size: %d, Adler32 checksum: %08x\n",
			l.URI, l.Filename, l.Size, l.Checksum); err != nil {
			return err
		}

		if minLine == nil || l.Size < minLine.Size {
			minLine = l
		}
		if maxLine == nil || l.Size > maxLine.Size {
			maxLine = l
		}
	}

	if minLine != nil {
		if _, err := fmt.Fprintf(w, "Minimal size: %s size: %d, Adler32 checksum: %08x\n",
			minLine.Filename, minLine.Size, minLine.Checksum); err != nil {
			return err
		}
	}
	if maxLine != nil {
		if _, err := fmt.Fprintf(w, "Maximal size: %s size: %d, Adler32 checksum: %08x\n",
			maxLine.Filename, maxLine.Size, maxLine.Checksum); err != nil {
			return err
		}
	}

	return nil
}
