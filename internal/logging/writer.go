package logging

import (
	"io"

	"go.uber.org/multierr"
)

// TeeWriter duplicates log lines to every destination. A broken
// destination is skipped and its error merged into the result.
type TeeWriter struct {
	dests []io.Writer
}

func NewTeeWriter(dests ...io.Writer) *TeeWriter {
	return &TeeWriter{dests: dests}
}

func (t *TeeWriter) Write(p []byte) (int, error) {
	var (
		written int
		errs    error
	)
	for _, d := range t.dests {
		n, err := d.Write(p)
		errs = multierr.Append(errs, err)
		written += n
	}
	return written, errs
}
