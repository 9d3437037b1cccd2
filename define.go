package main

const (
	defineOpen  Token = ":"
	defineClose Token = ";"
)

type captureState uint8

const (
	captureNormal captureState = iota
	captureAwaitingName
	captureBody
)

func (st captureState) String() string {
	switch st {
	case captureAwaitingName:
		return "awaiting name"
	case captureBody:
		return "capturing body"
	default:
		return "normal"
	}
}

// capture turns a `: name ... ;` token run into a dictionary definition.
// Nothing is committed until the closing `;` is fed.
type capture struct {
	state captureState
	name  Token
	body  Body
}

func (c *capture) active() bool { return c.state != captureNormal }

func (c *capture) reset() {
	c.state = captureNormal
	c.name = ""
	c.body = nil
}

// feed advances the capture by one token; the committed word name is
// returned once a definition completes.
func (c *capture) feed(tok Token, dict *Dictionary) (committed string, err error) {
	switch c.state {
	case captureNormal:
		if tok != defineOpen {
			return "", faultf(InvalidStructure, tok, "not a definition")
		}
		c.state = captureAwaitingName

	case captureAwaitingName:
		switch classify(tok, dict).Kind {
		case KindQuote, KindBuiltin, KindValue:
			c.reset()
			return "", faultf(InvalidStructure, tok, "invalid word name")
		}
		if !isWordName(tok) {
			c.reset()
			return "", faultf(InvalidStructure, tok, "invalid word name")
		}
		c.name, c.body, c.state = tok, Body{}, captureBody

	case captureBody:
		if tok == defineClose {
			name := string(c.name)
			dict.Define(name, c.body)
			c.reset()
			return name, nil
		}
		if tok == defineOpen {
			c.reset()
			return "", faultf(InvalidStructure, tok, "nested definition")
		}
		// words not defined yet are captured as forward references
		if classify(tok, dict).Kind == KindInvalid && !isWordName(tok) {
			c.reset()
			return "", faultf(InvalidStructure, tok, "invalid token in definition")
		}
		c.body = append(c.body, tok)
	}
	return "", nil
}

// finish checks that no definition was left open at the end of a line,
// discarding any partial one.
func (c *capture) finish() error {
	if !c.active() {
		return nil
	}
	st, name := c.state, c.name
	c.reset()
	if st == captureAwaitingName {
		return faultf(InvalidStructure, defineOpen, "missing word name")
	}
	return faultf(InvalidStructure, name, "unterminated definition")
}
