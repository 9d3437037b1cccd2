package main

import (
	"io"

	"github.com/jcorbin/gostack/internal/flushio"
)

// Option configures an Interp when passed to New.
type Option interface{ apply(in *Interp) }

var defaults = []Option{
	withOutput(io.Discard),
}

// Options combines any number of options into one, applied in order.
func Options(opts ...Option) Option {
	var all options
	for _, opt := range opts {
		switch impl := opt.(type) {
		case nil:
		case options:
			all = append(all, impl...)
		default:
			all = append(all, impl)
		}
	}
	if len(all) == 1 {
		return all[0]
	}
	return all
}

type options []Option

func (opts options) apply(in *Interp) {
	for _, opt := range opts {
		opt.apply(in)
	}
}

func (in *Interp) apply(opts ...Option) {
	for _, opt := range defaults {
		if opt != nil {
			opt.apply(in)
		}
	}
	for _, opt := range opts {
		if opt != nil {
			opt.apply(in)
		}
	}
	if in.src == nil {
		in.src = promptSource{&in.input, in.out}
	}
}

type withLogfn func(mess string, args ...interface{})

func (logfn withLogfn) apply(in *Interp) {
	in.logfn = logfn
}

type inputOption struct{ io.Reader }
type outputOption struct{ io.Writer }
type teeOption struct{ io.Writer }
type lineSourceOption struct{ lineSource }

func withInput(r io.Reader) inputOption              { return inputOption{r} }
func withOutput(w io.Writer) outputOption            { return outputOption{w} }
func withTee(w io.Writer) teeOption                  { return teeOption{w} }
func withLineSource(src lineSource) lineSourceOption { return lineSourceOption{src} }

func (i inputOption) apply(in *Interp) {
	in.input.Queue = append(in.input.Queue, i.Reader)
}

func (o outputOption) apply(in *Interp) {
	if in.out != nil {
		in.out.Flush()
	}
	in.out = flushio.NewWriteFlusher(o.Writer)
}

func (o teeOption) apply(in *Interp) {
	in.out = flushio.WriteFlushers(in.out, flushio.NewWriteFlusher(o.Writer))
}

func (o lineSourceOption) apply(in *Interp) {
	in.src = o.lineSource
	if cl, ok := o.lineSource.(io.Closer); ok {
		in.closers = append(in.closers, cl)
	}
}
