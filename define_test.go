package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_capture(t *testing.T) {
	for _, tc := range []struct {
		name      string
		prior     map[string]Body
		toks      string
		committed []string
		errStr    string
		finishErr string
		words     map[string]Body
	}{
		{
			name:      "simple",
			toks:      ": sq dup * ;",
			committed: []string{"sq"},
			words:     map[string]Body{"sq": {"dup", "*"}},
		},
		{
			name:      "empty body",
			toks:      ": nop ;",
			committed: []string{"nop"},
			words:     map[string]Body{"nop": {}},
		},
		{
			name:      "two in a row",
			toks:      ": a 1 ; : b a a + ;",
			committed: []string{"a", "b"},
			words:     map[string]Body{"a": {"1"}, "b": {"a", "a", "+"}},
		},
		{
			name:      "forward reference",
			toks:      ": a later ;",
			committed: []string{"a"},
			words:     map[string]Body{"a": {"later"}},
		},
		{
			name:      "redefine",
			prior:     map[string]Body{"a": {"1"}},
			toks:      ": a 2 ;",
			committed: []string{"a"},
			words:     map[string]Body{"a": {"2"}},
		},
		{
			name:   "builtin name",
			toks:   ": swap 1 ;",
			errStr: `InvalidStructure at "swap": invalid word name`,
		},
		{
			name:   "value name",
			toks:   ": -3 1 ;",
			errStr: `InvalidStructure at "-3": invalid word name`,
		},
		{
			name:   "delimiter name",
			toks:   ": ; ;",
			errStr: `InvalidStructure at ";": invalid word name`,
		},
		{
			name:   "nested",
			toks:   ": a : b ;",
			errStr: `InvalidStructure at ":": nested definition`,
		},
		{
			name:   "bad body token",
			toks:   `: a b"c ;`,
			errStr: `InvalidStructure at "b\"c": invalid token in definition`,
		},
		{
			name:   "stray close",
			toks:   ";",
			errStr: `InvalidStructure at ";": not a definition`,
		},
		{
			name:      "missing name",
			toks:      ":",
			finishErr: `InvalidStructure at ":": missing word name`,
		},
		{
			name:      "unterminated",
			toks:      ": a 1 2",
			finishErr: `InvalidStructure at "a": unterminated definition`,
		},
		{
			name:      "unterminated keeps earlier",
			toks:      ": a 1 ; : b 2",
			committed: []string{"a"},
			finishErr: `InvalidStructure at "b": unterminated definition`,
			words:     map[string]Body{"a": {"1"}},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var dict Dictionary
			for name, body := range tc.prior {
				dict.Define(name, body)
			}

			var (
				def       capture
				committed []string
				err       error
			)
			for _, tok := range strings.Fields(tc.toks) {
				var name string
				if name, err = def.feed(Token(tok), &dict); err != nil {
					break
				} else if name != "" {
					committed = append(committed, name)
				}
			}
			if tc.errStr != "" {
				assert.EqualError(t, err, tc.errStr)
				assert.False(t, def.active(), "expected capture reset after fault")
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tc.committed, committed, "expected committed words")

			if ferr := def.finish(); tc.finishErr != "" {
				assert.EqualError(t, ferr, tc.finishErr)
			} else {
				assert.NoError(t, ferr)
			}
			assert.False(t, def.active(), "expected capture reset after finish")

			if tc.words == nil {
				tc.words = tc.prior
			}
			assert.Equal(t, len(tc.words), dict.Len(), "expected word count")
			for name, body := range tc.words {
				have, defined := dict.Lookup(name)
				if assert.True(t, defined, "expected %q defined", name) {
					assert.Equal(t, body, have, "expected %q body", name)
				}
			}
		})
	}
}

func Test_captureState_String(t *testing.T) {
	var def capture
	assert.Equal(t, "normal", def.state.String())
	_, err := def.feed(defineOpen, nil)
	require.NoError(t, err)
	assert.Equal(t, "awaiting name", def.state.String())
}
