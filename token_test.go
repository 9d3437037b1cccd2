package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_tokenize(t *testing.T) {
	for _, tc := range []struct {
		name   string
		line   string
		toks   Body
		errStr string
	}{
		{name: "empty"},
		{name: "blank", line: " \t "},
		{
			name: "words",
			line: "1  2\t+ .",
			toks: Body{"1", "2", "+", "."},
		},
		{
			name: "quote",
			line: `." hello world"`,
			toks: Body{`."hello world"`},
		},
		{
			name: "quote without space",
			line: `."hi"`,
			toks: Body{`."hi"`},
		},
		{
			name: "empty quote",
			line: `." "`,
			toks: Body{`.""`},
		},
		{
			name: "adjacent quotes",
			line: `." one"." two"`,
			toks: Body{`."one"`, `."two"`},
		},
		{
			name: "text after quote",
			line: `." x"1 2`,
			toks: Body{`."x"`, "1", "2"},
		},
		{
			name: "quote runs collapse",
			line: "1 .\"  a \t b\" 2",
			toks: Body{"1", `."a b"`, "2"},
		},
		{
			name: "inner quote char",
			line: `x"y`,
			toks: Body{`x"y`},
		},
		{
			name:   "unterminated quote",
			line:   `1 2 ." never closed`,
			toks:   Body{"1", "2"},
			errStr: `InvalidStructure at ".\"": unterminated quote`,
		},
		{
			name:   "unterminated second quote",
			line:   `." a" ." b`,
			toks:   Body{`."a"`},
			errStr: `InvalidStructure at ".\"": unterminated quote`,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			toks, err := tokenize(tc.line)
			assert.Equal(t, tc.toks, toks, "expected tokens")
			if tc.errStr == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tc.errStr)
				assert.True(t, errors.Is(err, InvalidStructure), "expected an InvalidStructure fault")
			}
		})
	}
}
