package main

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/repr"
)

const prompt = ">> "

func (in *Interp) run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		line, err := in.src.readLine(prompt)
		if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		in.logf(">", "%v %q", in.src.location(), line)
		if err := in.report(in.Line(line)); err != nil {
			return err
		}
	}
}

// report writes the outcome of a line: its stack depth after success, or the
// tag of its fault. Any other error is returned, halting the REPL.
func (in *Interp) report(lineErr error) error {
	var sb strings.Builder
	if lineErr == nil {
		sb.WriteString(" ok ")
		sb.WriteString(strconv.Itoa(in.stack.Depth()))
		in.logf("#", "stack %v", repr.String(in.stack.values))
	} else if fault, ok := faultOf(lineErr); ok {
		sb.WriteByte(' ')
		sb.WriteString(fault.Error())
		in.logf("!", "%v", lineErr)
	} else {
		return lineErr
	}
	sb.WriteByte('\n')
	if _, err := io.WriteString(in.out, sb.String()); err != nil {
		return err
	}
	return in.out.Flush()
}
