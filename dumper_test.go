package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_interpDumper(t *testing.T) {
	in := New()
	assert.NoError(t, in.Line(`: sq dup * ; : nop ; : hi ." hi there" ;`))
	assert.NoError(t, in.Line(": bad if 1 then ;"))
	assert.Error(t, in.Line("1 2 bad"))

	var out strings.Builder
	interpDumper{in: in, out: &out}.dump()
	assert.Equal(t, strings.Join([]string{
		"# Interp Dump",
		"  stack: [1 2]",
		"# Dictionary (4 words)",
		`  : bad if 1 then ; \ InvalidStructure at "then": missing else for if at 0`,
		`  : hi ."hi there" ;`,
		"  : nop ;",
		"  : sq dup * ;",
		"",
	}, "\n"), out.String())
}

func Test_formatBody(t *testing.T) {
	assert.Equal(t, "", formatBody(nil))
	assert.Equal(t, "dup", formatBody(Body{"dup"}))
	assert.Equal(t, `1 ."a b" .`, formatBody(Body{"1", `."a b"`, "."}))
}
