package main

import (
	"errors"
	"fmt"
)

// Fault classifies a line-scoped failure. Every fault is itself an error,
// whose text is the short tag reported after a failed line.
type Fault uint8

// Fault kinds.
const (
	InvalidStructure Fault = iota + 1
	StackUnderflow
	DivisionByZero
)

var faultTags = [...]string{
	InvalidStructure: "InvalidStructure",
	StackUnderflow:   "StackUnderflow",
	DivisionByZero:   "DivisionByZero",
}

func (f Fault) Error() string {
	if int(f) < len(faultTags) && faultTags[f] != "" {
		return faultTags[f]
	}
	return fmt.Sprintf("Fault(%d)", uint8(f))
}

// faultError adds the offending token and some detail to a Fault.
type faultError struct {
	Fault
	tok    Token
	detail string
}

func (fe faultError) Error() string {
	switch {
	case fe.tok != "" && fe.detail != "":
		return fmt.Sprintf("%v at %q: %v", fe.Fault, string(fe.tok), fe.detail)
	case fe.tok != "":
		return fmt.Sprintf("%v at %q", fe.Fault, string(fe.tok))
	case fe.detail != "":
		return fmt.Sprintf("%v: %v", fe.Fault, fe.detail)
	}
	return fe.Fault.Error()
}

func (fe faultError) Unwrap() error { return fe.Fault }

func faultf(f Fault, tok Token, mess string, args ...interface{}) error {
	if len(args) > 0 {
		mess = fmt.Sprintf(mess, args...)
	}
	return faultError{f, tok, mess}
}

// faultOf returns the Fault that err wraps, if any.
func faultOf(err error) (Fault, bool) {
	var f Fault
	if errors.As(err, &f) {
		return f, true
	}
	return 0, false
}
