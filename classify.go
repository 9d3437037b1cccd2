package main

import (
	"strconv"
	"strings"
)

// Kind is the category of a classified token.
type Kind uint8

// Token kinds, in reverse order of classification precedence.
const (
	KindInvalid Kind = iota
	KindValue
	KindWord
	KindBuiltin
	KindQuote
)

func (k Kind) String() string {
	switch k {
	case KindValue:
		return "value"
	case KindWord:
		return "word"
	case KindBuiltin:
		return "builtin"
	case KindQuote:
		return "quote"
	default:
		return "invalid"
	}
}

// Builtin enumerates the fixed core operators. The structural keywords
// if/else/then are included, but are driven by a body's conditional map
// rather than by the operator table.
type Builtin uint8

// Builtin operators.
const (
	opNone Builtin = iota
	opEmit
	opAdd
	opSub
	opMul
	opDiv
	opMod
	opDup
	opSwap
	opDepth
	opClear
	opEq
	opGt
	opLt
	opIf
	opElse
	opThen
	numBuiltins
)

var builtinNames = [numBuiltins]string{
	opEmit:  ".",
	opAdd:   "+",
	opSub:   "-",
	opMul:   "*",
	opDiv:   "/",
	opMod:   "mod",
	opDup:   "dup",
	opSwap:  "swap",
	opDepth: "depth",
	opClear: "clearstack",
	opEq:    "=",
	opGt:    ">",
	opLt:    "<",
	opIf:    "if",
	opElse:  "else",
	opThen:  "then",
}

var builtins map[Token]Builtin

func init() {
	builtins = make(map[Token]Builtin, len(builtinNames))
	for op, name := range builtinNames {
		if name != "" {
			builtins[Token(name)] = Builtin(op)
		}
	}
}

func (op Builtin) String() string {
	if op < numBuiltins && builtinNames[op] != "" {
		return builtinNames[op]
	}
	return "op" + strconv.Itoa(int(op))
}

func (op Builtin) structural() bool { return op == opIf || op == opElse || op == opThen }

// Instr is a classified token.
type Instr struct {
	Kind  Kind
	Op    Builtin // KindBuiltin
	Value int     // KindValue
	Text  string  // KindQuote literal, or KindWord name
}

// classify assigns a token its category against the current dictionary:
// quote, then builtin, then word, then value; anything else is invalid.
func classify(tok Token, dict *Dictionary) Instr {
	if text, ok := quoteText(tok); ok {
		return Instr{Kind: KindQuote, Text: text}
	}
	if op, ok := builtins[tok]; ok {
		return Instr{Kind: KindBuiltin, Op: op}
	}
	if dict != nil && dict.Has(string(tok)) {
		return Instr{Kind: KindWord, Text: string(tok)}
	}
	if val, ok := parseValue(tok); ok {
		return Instr{Kind: KindValue, Value: val}
	}
	return Instr{}
}

func quoteText(tok Token) (string, bool) {
	s := string(tok)
	if len(s) < len(quoteOpen)+len(quoteClose) ||
		!strings.HasPrefix(s, quoteOpen) ||
		!strings.HasSuffix(s, quoteClose) {
		return "", false
	}
	return s[len(quoteOpen) : len(s)-len(quoteClose)], true
}

// parseValue accepts base-10 integers with an optional leading minus sign;
// a leading plus, or a value that does not fit an int, is not a value.
func parseValue(tok Token) (int, bool) {
	s := string(tok)
	digits := strings.TrimPrefix(s, "-")
	if digits == "" {
		return 0, false
	}
	for i := 0; i < len(digits); i++ {
		if c := digits[i]; c < '0' || c > '9' {
			return 0, false
		}
	}
	val, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return val, true
}

// isWordName reports whether tok may name a word: it must not be one of the
// definition delimiters, nor carry quote characters.
func isWordName(tok Token) bool {
	return tok != "" && tok != defineOpen && tok != defineClose &&
		!strings.Contains(string(tok), quoteClose)
}
