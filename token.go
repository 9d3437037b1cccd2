package main

import "strings"

// Token is a single instruction unit, as split out of an input line.
type Token string

// Body is an ordered token sequence; word definitions store one, and each
// top-level run of a line is executed as one.
type Body []Token

const (
	quoteOpen  = `."`
	quoteClose = `"`
)

// tokenize splits a line on whitespace, merging quoted literals like
// `." hello world"` into a single `."hello world"` token.
//
// A quote left open at the end of the line is an InvalidStructure fault;
// any tokens completed before the quote opened are still returned so that
// they may be executed up to the point of failure.
func tokenize(line string) (Body, error) {
	var (
		toks   Body
		quote  []string
		open   bool
		frags  = strings.Fields(line)
		opened Token
	)
	for len(frags) > 0 {
		frag := frags[0]
		frags = frags[1:]

		if !open {
			if !strings.HasPrefix(frag, quoteOpen) {
				toks = append(toks, Token(frag))
				continue
			}
			open, quote, opened = true, quote[:0], Token(frag)
			if frag = frag[len(quoteOpen):]; frag == "" {
				continue
			}
		}

		i := strings.Index(frag, quoteClose)
		if i < 0 {
			quote = append(quote, frag)
			continue
		}
		quote = append(quote, frag[:i])
		toks = append(toks, Token(quoteOpen+strings.Join(quote, " ")+quoteClose))
		open = false
		if rest := frag[i+len(quoteClose):]; rest != "" {
			frags = append([]string{rest}, frags...)
		}
	}
	if open {
		return toks, faultf(InvalidStructure, opened, "unterminated quote")
	}
	return toks, nil
}
