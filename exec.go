package main

import (
	"io"
	"strconv"
)

// execute runs a body to completion or to its first failure. Mutations made
// before a failure are kept; nothing is rolled back.
//
// Words are executed by recursion, sharing the one stack, so a word that
// calls itself without a base case will exhaust the goroutine stack.
func (in *Interp) execute(body Body, cm condMap, depth int) error {
	for pc := 0; pc < len(body); pc++ {
		tok := body[pc]
		ins := classify(tok, &in.dict)
		if depth > 0 {
			in.logf(".", "%*s%v %v", 2*(depth-1), "", ins.Kind, string(tok))
		}

		switch ins.Kind {
		case KindValue:
			in.stack.push(ins.Value)

		case KindQuote:
			if _, err := io.WriteString(in.out, ins.Text); err != nil {
				return err
			}

		case KindWord:
			if err := in.call(ins.Text, depth+1); err != nil {
				return err
			}

		case KindBuiltin:
			switch ins.Op {
			case opIf:
				if err := in.stack.need(tok, 1); err != nil {
					return err
				}
				to, ok := cm.target(pc)
				if !ok {
					return faultf(InvalidStructure, tok, "unresolved at %v", pc)
				}
				if in.stack.pop() == 0 {
					pc = to // resume after else
				}

			case opElse:
				// only reached at the end of a taken true branch
				to, ok := cm.target(pc)
				if !ok {
					return faultf(InvalidStructure, tok, "unresolved at %v", pc)
				}
				pc = to

			case opThen:

			default:
				if err := in.builtin(tok, ins.Op); err != nil {
					return err
				}
			}

		default:
			return faultf(InvalidStructure, tok, "unknown word")
		}
	}
	return nil
}

// call executes the current definition of the named word.
func (in *Interp) call(name string, depth int) error {
	body, cm, err := in.dict.resolve(name)
	if err != nil {
		return err
	}
	return in.execute(body, cm, depth)
}

// builtin performs one non-structural core operator. Operands are checked
// before anything is popped, so an underflow leaves the stack untouched.
func (in *Interp) builtin(tok Token, op Builtin) error {
	st := &in.stack
	switch op {
	case opEmit:
		if err := st.need(tok, 1); err != nil {
			return err
		}
		_, err := io.WriteString(in.out, strconv.Itoa(st.pop())+" ")
		return err

	case opAdd, opSub, opMul, opEq, opGt, opLt:
		if err := st.need(tok, 2); err != nil {
			return err
		}
		v1, v2 := st.pop2()
		st.push(binaryOp(op, v1, v2))

	case opDiv, opMod:
		if err := st.need(tok, 2); err != nil {
			return err
		}
		if st.top() == 0 {
			return faultf(DivisionByZero, tok, "")
		}
		v1, v2 := st.pop2()
		if op == opDiv {
			st.push(floorDiv(v1, v2))
		} else {
			st.push(floorMod(v1, v2))
		}

	case opDup:
		if err := st.need(tok, 1); err != nil {
			return err
		}
		st.push(st.top())

	case opSwap:
		if err := st.need(tok, 2); err != nil {
			return err
		}
		v1, v2 := st.pop2()
		st.push(v2)
		st.push(v1)

	case opDepth:
		st.push(st.Depth())

	case opClear:
		st.clear()

	default:
		return faultf(InvalidStructure, tok, "%v is not an operator", op)
	}
	return nil
}

func binaryOp(op Builtin, v1, v2 int) int {
	switch op {
	case opAdd:
		return v1 + v2
	case opSub:
		return v1 - v2
	case opMul:
		return v1 * v2
	case opEq:
		return truth(v1 == v2)
	case opGt:
		return truth(v1 > v2)
	case opLt:
		return truth(v1 < v2)
	}
	panic("binaryOp: unsupported " + op.String())
}

// truth encodes a boolean the conventional way, with all bits set for true.
func truth(b bool) int {
	if b {
		return -1
	}
	return 0
}

// floorDiv rounds the quotient toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// floorMod returns a remainder with the sign of the divisor.
func floorMod(a, b int) int {
	m := a % b
	if m != 0 && (m < 0) != (b < 0) {
		m += b
	}
	return m
}
