package main

import (
	"context"
	"errors"
	"io"

	"github.com/jcorbin/gostack/internal/panicerr"
)

// New creates an interpreter with an empty stack and dictionary.
func New(opts ...Option) *Interp {
	var in Interp
	in.apply(opts...)
	return &in
}

// Run reads and interprets lines until input is exhausted, reporting the
// outcome of each after it. Faults only end their own line; Run returns an
// error only when input or output fail, or ctx is done between lines.
func (in *Interp) Run(ctx context.Context) error {
	err := panicerr.Recover("interp", func() error {
		return in.run(ctx)
	})
	if ferr := in.out.Flush(); err == nil {
		err = ferr
	}
	if in.tracing() {
		in.logf("#", "halt: %v", err)
		in.dumpToLog()
	}
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func WithInput(r io.Reader) Option  { return withInput(r) }
func WithOutput(w io.Writer) Option { return withOutput(w) }
func WithTee(w io.Writer) Option    { return withTee(w) }

func WithLogf(logfn func(mess string, args ...interface{})) Option { return withLogfn(logfn) }

// NamedReader attaches a name to r, used to locate lines in trace logs.
func NamedReader(name string, r io.Reader) io.Reader { return namedReader{r, name} }

type namedReader struct {
	io.Reader
	name string
}

func (nr namedReader) Name() string { return nr.name }
