package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/jcorbin/gostack/internal/logio"
)

// interpDumper writes a human readable summary of interpreter state: the
// stack, bottom first, and every word definition in name order.
type interpDumper struct {
	in  *Interp
	out io.Writer
}

func (dump interpDumper) dump() {
	fmt.Fprintf(dump.out, "# Interp Dump\n")
	fmt.Fprintf(dump.out, "  stack: %v\n", dump.in.stack.values)
	dump.dumpDict()
}

func (dump interpDumper) dumpDict() {
	names := dump.in.dict.Names()
	fmt.Fprintf(dump.out, "# Dictionary (%v words)\n", len(names))
	for _, name := range names {
		ent := dump.in.dict.words[name]
		if body := formatBody(ent.body); body == "" {
			fmt.Fprintf(dump.out, "  : %v ;", name)
		} else {
			fmt.Fprintf(dump.out, "  : %v %v ;", name, body)
		}
		if ent.resolved && ent.condErr != nil {
			fmt.Fprintf(dump.out, " \\ %v", ent.condErr)
		}
		io.WriteString(dump.out, "\n")
	}
}

// formatBody renders tokens back into source form.
func formatBody(body Body) string {
	var sb strings.Builder
	for i, tok := range body {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(string(tok))
	}
	return sb.String()
}

func (in *Interp) dumpToLog() {
	lw := logio.Writer{Logf: func(mess string, args ...interface{}) {
		in.logf("#", mess, args...)
	}}
	defer lw.Close()
	interpDumper{in: in, out: &lw}.dump()
}
