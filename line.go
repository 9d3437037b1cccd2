package main

import "strings"

// Line interprets one line against the interpreter's persistent state.
//
// Tokens outside of `:` ... `;` definitions run as soon as the next
// definition starts, or at the end of the line. A fault stops the line
// where it happens: changes made by any earlier token remain.
func (in *Interp) Line(line string) error {
	toks, tokErr := tokenize(strings.TrimSpace(line))

	var (
		def capture
		run Body
	)
	for _, tok := range toks {
		if !def.active() {
			if tok != defineOpen {
				run = append(run, tok)
				continue
			}
			if err := in.runBody(run); err != nil {
				return err
			}
			run = nil
		}
		name, err := def.feed(tok, &in.dict)
		if err != nil {
			return err
		}
		if name != "" {
			in.logf("+", ": %v %v ;", name, formatBody(in.dict.words[name].body))
		}
	}
	if err := def.finish(); err != nil {
		return err
	}
	if err := in.runBody(run); err != nil {
		return err
	}
	return tokErr
}

// runBody executes an anonymous body, such as a run of top-level tokens.
func (in *Interp) runBody(body Body) error {
	if len(body) == 0 {
		return nil
	}
	cm, err := resolveConditionals(body)
	if err != nil {
		return err
	}
	return in.execute(body, cm, 0)
}
