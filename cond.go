package main

// branch records the positions of one if/else/then construct within a body,
// along with its nesting layer (0 being outermost).
type branch struct {
	If, Else, Then int
	Layer          int
}

// condMap holds the resolved conditional structure of a body: every branch,
// and a jump table from each if (to its else) and each else (to its then).
type condMap struct {
	branches []branch
	jump     map[int]int
}

// target returns the jump destination for the if or else at pc.
func (cm condMap) target(pc int) (int, bool) {
	to, ok := cm.jump[pc]
	return to, ok
}

// resolveConditionals scans a body for if/else/then, pairing each with its
// nearest open layer. Every if must have exactly one else before its then,
// and every layer must be closed by the end of the body.
func resolveConditionals(body Body) (cm condMap, err error) {
	var open []int // indices into cm.branches, innermost last
	for pc, tok := range body {
		op, isOp := builtins[tok]
		if !isOp || !op.structural() {
			continue
		}
		switch op {
		case opIf:
			open = append(open, len(cm.branches))
			cm.branches = append(cm.branches, branch{If: pc, Else: -1, Then: -1, Layer: len(open) - 1})

		case opElse:
			if len(open) == 0 {
				return condMap{}, faultf(InvalidStructure, tok, "no open if at %v", pc)
			}
			br := &cm.branches[open[len(open)-1]]
			if br.Else >= 0 {
				return condMap{}, faultf(InvalidStructure, tok, "duplicate else at %v for if at %v", pc, br.If)
			}
			br.Else = pc

		case opThen:
			if len(open) == 0 {
				return condMap{}, faultf(InvalidStructure, tok, "no open if at %v", pc)
			}
			br := &cm.branches[open[len(open)-1]]
			if br.Else < 0 {
				return condMap{}, faultf(InvalidStructure, tok, "missing else for if at %v", br.If)
			}
			br.Then = pc
			open = open[:len(open)-1]
		}
	}
	if len(open) > 0 {
		br := cm.branches[open[len(open)-1]]
		return condMap{}, faultf(InvalidStructure, body[br.If], "unclosed if at %v", br.If)
	}

	if len(cm.branches) > 0 {
		cm.jump = make(map[int]int, 2*len(cm.branches))
		for _, br := range cm.branches {
			cm.jump[br.If] = br.Else
			cm.jump[br.Else] = br.Then
		}
	}
	return cm, nil
}
