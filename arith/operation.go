package arith

// NewAddition applies + to two segments. Addition is commutative, so both
// orderings of every operand text pair are recorded: later duplicates that
// render the same sum in a different order are then caught by Equal.
func NewAddition(a, b *Segment) *Segment {
	s := newOperation(OpAdd, a, b, a.value+b.value)
	if !s.valid {
		return s
	}
	forEachTextPair(a, b, func(ta, tb string) {
		s.texts.add(ta + " + " + tb)
		s.texts.add(tb + " + " + ta)
	})
	return s
}

// NewSubtraction applies - to two segments. Only one ordering is recorded.
// When the right operand is itself an addition or a subtraction, its
// renderings are parenthesized so the text keeps the arithmetic meaning.
func NewSubtraction(a, b *Segment) *Segment {
	s := newOperation(OpSub, a, b, a.value-b.value)
	if !s.valid {
		return s
	}
	wrap := b.op.Distributive()
	forEachTextPair(a, b, func(ta, tb string) {
		if wrap {
			tb = "(" + tb + ")"
		}
		s.texts.add(ta + " - " + tb)
	})
	return s
}

// newOperation builds the shared part of a binary operation. The operation
// is invalid when the operands share digits, or when it is complete but its
// value falls outside the solution range: incomplete results are kept as
// building blocks whatever their value, complete ones only as solutions.
func newOperation(op Operator, a, b *Segment, value int) *Segment {
	s := &Segment{op: op, mask: a.mask.Union(b.mask), value: value}
	if a.SharesDigits(b) {
		return s
	}
	if s.IsComplete() && !s.IsSolution() {
		return s
	}
	s.valid = true
	return s
}
