package arith

import (
	"fmt"
	"strconv"
)

// A Segment is any computed value: a single digit, a concatenation of
// digits, or the result of a binary operation. It records which of the four
// input positions it consumed and every distinct textual rendering known to
// produce its value from that exact set of digits.
//
// Segments never change after their constructor returns.
type Segment struct {
	value int
	mask  Mask
	op    Operator
	valid bool
	texts textSet
}

// textSet is an append-only deduplicating set of expression strings.
// The slice keeps insertion order; its first element is the primary
// rendering used for display.
type textSet struct {
	ordered []string
	member  map[string]struct{}
}

func (ts *textSet) add(s string) {
	if _, ok := ts.member[s]; ok {
		return
	}
	if ts.member == nil {
		ts.member = make(map[string]struct{})
	}
	ts.member[s] = struct{}{}
	ts.ordered = append(ts.ordered, s)
}

func (ts *textSet) contains(s string) bool {
	_, ok := ts.member[s]
	return ok
}

// NewDigit builds the leaf segment for one input digit at its original
// position. index must be in [0, NbDigits); any other value is a contract
// violation and fails with ErrDigitIndex.
func NewDigit(digit, index int) (*Segment, error) {
	if index < 0 || index >= NbDigits {
		return nil, fmt.Errorf("%w %d", ErrDigitIndex, index)
	}
	s := &Segment{value: digit, mask: 1 << index, op: OpNumber, valid: true}
	s.texts.add(strconv.Itoa(digit))
	return s, nil
}

// Value returns the numeric result of the segment.
func (s *Segment) Value() int { return s.value }

// Mask returns the set of input positions the segment consumed.
func (s *Segment) Mask() Mask { return s.mask }

// Op returns the operator that produced the segment, OpNumber for digits
// and concatenations.
func (s *Segment) Op() Operator { return s.op }

// Valid reports whether the segment may be retained. Constructors return
// invalid segments instead of errors when operands cannot legally combine.
func (s *Segment) Valid() bool { return s.valid }

// IsNumber is true for digits and concatenation results, the only segments
// that may take part in further concatenation.
func (s *Segment) IsNumber() bool { return s.op == OpNumber }

// IsComplete is true iff the segment consumed all four digit positions.
func (s *Segment) IsComplete() bool { return s.mask.Complete() }

// IsSolution is true iff the segment is complete and its value lies in
// [MinSolution, MaxSolution].
func (s *Segment) IsSolution() bool {
	return s.IsComplete() && s.value >= MinSolution && s.value <= MaxSolution
}

// PrimaryExpression returns the first recorded rendering of the segment,
// or the empty string for an invalid segment.
func (s *Segment) PrimaryExpression() string {
	if len(s.texts.ordered) == 0 {
		return ""
	}
	return s.texts.ordered[0]
}

// Expressions returns every distinct rendering, in insertion order.
func (s *Segment) Expressions() []string {
	out := make([]string, len(s.texts.ordered))
	copy(out, s.texts.ordered)
	return out
}

func (s *Segment) String() string { return s.PrimaryExpression() }

// SharesDigits is true iff the two segments consumed at least one common
// input position. Two such segments can never be combined: every digit is
// consumed at most once per expression.
func (s *Segment) SharesDigits(o *Segment) bool {
	return s.mask.Overlaps(o.mask)
}

// Equal implements the dedup predicate of the search: equal values and at
// least one rendering in common. Two segments with the same value but
// disjoint rendering sets are distinct on purpose; see the package
// documentation.
func (s *Segment) Equal(o *Segment) bool {
	if s.value != o.value {
		return false
	}
	for _, t := range s.texts.ordered {
		if o.texts.contains(t) {
			return true
		}
	}
	return false
}

// forEachTextPair calls fn once per pair in the Cartesian product of the
// two operands' renderings, in insertion order. Operator constructors use
// it to enumerate every rendering of a composite without re-deriving them.
func forEachTextPair(a, b *Segment, fn func(ta, tb string)) {
	for _, ta := range a.texts.ordered {
		for _, tb := range b.texts.ordered {
			fn(ta, tb)
		}
	}
}
