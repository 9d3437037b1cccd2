package main

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptSource feeds canned lines, recording the prompts it is given.
type scriptSource struct {
	lines   []string
	prompts []string
	read    int
	closed  bool
}

func (ss *scriptSource) readLine(prompt string) (string, error) {
	ss.prompts = append(ss.prompts, prompt)
	if ss.read >= len(ss.lines) {
		return "", io.EOF
	}
	ss.read++
	return ss.lines[ss.read-1], nil
}

func (ss *scriptSource) location() string { return "script" }

func (ss *scriptSource) Close() error {
	ss.closed = true
	return nil
}

func TestOptions(t *testing.T) {
	assert.Nil(t, Options(), "expected nothing from no options")
	one := WithTee(io.Discard)
	assert.Equal(t, one, Options(nil, one), "expected a lone option as-is")

	var a, b strings.Builder
	all := Options(Options(WithOutput(&a)), nil, WithTee(&b))
	assert.Len(t, all, 2, "expected flattened options")

	in := New(all, WithInput(strings.NewReader("1 2 + .\n")))
	require.NoError(t, in.Run(context.Background()))
	require.NoError(t, in.Close())
	assert.Equal(t, transcript("3  ok 0"), a.String())
	assert.Equal(t, a.String(), b.String(), "expected teed output")
}

func TestWithLineSource(t *testing.T) {
	src := &scriptSource{lines: []string{"2 3", "*"}}
	var out strings.Builder
	in := New(WithOutput(&out), withLineSource(src))
	require.NoError(t, in.Run(context.Background()))
	assert.Equal(t, []string{prompt, prompt, prompt}, src.prompts)
	assert.Equal(t, " ok 2\n ok 1\n", out.String(), "line sources draw their own prompts")
	assert.Equal(t, []int{6}, in.Stack().Values())

	assert.False(t, src.closed)
	require.NoError(t, in.Close())
	assert.True(t, src.closed, "expected line source closed with the interpreter")
}

type closeFunc func() error

func (f closeFunc) Close() error { return f() }

func TestInterp_Close(t *testing.T) {
	var order []string
	in := New()
	in.closers = append(in.closers,
		closeFunc(func() error { order = append(order, "a"); return errors.New("first") }),
		closeFunc(func() error { order = append(order, "b"); return errors.New("second") }),
	)
	assert.EqualError(t, in.Close(), "second")
	assert.Equal(t, []string{"b", "a"}, order, "expected closers in reverse")
	assert.NoError(t, in.Close(), "expected closers dropped after close")
}
