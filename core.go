package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/jcorbin/gostack/internal/fileinput"
	"github.com/jcorbin/gostack/internal/flushio"
)

// Interp holds all interpreter state: the stack and dictionary persist
// across every line handed to it, along with its input and output streams.
type Interp struct {
	logging

	input   fileinput.Input
	src     lineSource
	out     flushio.WriteFlusher
	closers []io.Closer

	stack Stack
	dict  Dictionary
}

// Stack returns the interpreter's stack.
func (in *Interp) Stack() *Stack { return &in.stack }

// Dictionary returns the interpreter's word dictionary.
func (in *Interp) Dictionary() *Dictionary { return &in.dict }

// Close flushes output and closes any resources held by the interpreter,
// like an interactive terminal.
func (in *Interp) Close() (err error) {
	if in.out != nil {
		err = in.out.Flush()
	}
	for i := len(in.closers) - 1; i >= 0; i-- {
		if cerr := in.closers[i].Close(); err == nil {
			err = cerr
		}
	}
	in.closers = nil
	return err
}

// lineSource provides the REPL with input lines, displaying a prompt for
// each one.
type lineSource interface {
	readLine(prompt string) (string, error)
	location() string
}

// promptSource writes its prompt to the interpreter output before reading
// each line from the queued input streams.
type promptSource struct {
	in  *fileinput.Input
	out flushio.WriteFlusher
}

func (ps promptSource) readLine(prompt string) (string, error) {
	if _, err := io.WriteString(ps.out, prompt); err != nil {
		return "", err
	}
	if err := ps.out.Flush(); err != nil {
		return "", err
	}
	return ps.in.ReadLine()
}

func (ps promptSource) location() string { return ps.in.Last.Location.String() }

type logging struct {
	logfn func(mess string, args ...interface{})

	markWidth int
}

func (log logging) tracing() bool { return log.logfn != nil }

func (log *logging) logf(mark, mess string, args ...interface{}) {
	if log.logfn == nil {
		return
	}
	if n := log.markWidth - len(mark); n > 0 {
		mark = strings.Repeat(" ", n) + mark
	} else if n < 0 {
		log.markWidth = len(mark)
	}
	if len(args) > 0 {
		mess = fmt.Sprintf(mess, args...)
	}
	log.logfn("%v %v", mark, mess)
}
