package arith

// Describes basic types and constants that are used in the segment model.

// NbDigits is the number of digits in a puzzle input.
const NbDigits = 4

// MinSolution and MaxSolution bound the range of target values.
const (
	MinSolution = 1
	MaxSolution = 100
)

// A Mask is the set of original digit positions consumed by a segment,
// one bit per position: a segment built from the digit at input position i
// has bit i set.
type Mask uint8

// FullMask is the mask of a segment that consumed all digit positions.
const FullMask = Mask(1<<NbDigits - 1)

// Union returns the positions consumed by either mask.
func (m Mask) Union(o Mask) Mask { return m | o }

// Overlaps is true iff the two masks share at least one position.
func (m Mask) Overlaps(o Mask) bool { return m&o != 0 }

// Complete is true iff every digit position is consumed.
func (m Mask) Complete() bool { return m == FullMask }

// Operator identifies how a segment was produced.
type Operator byte

const (
	// OpNumber marks digits and concatenation results.
	OpNumber = Operator(iota)
	// OpAdd marks additions.
	OpAdd
	// OpSub marks subtractions.
	OpSub
	// OpMul is declared for completeness; the search never constructs it.
	OpMul
	// OpDiv is declared for completeness; the search never constructs it.
	OpDiv
)

func (op Operator) String() string {
	switch op {
	case OpNumber:
		return ""
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	default:
		panic("invalid operator")
	}
}

// Commutative is true for operators whose operands can swap without
// changing the value. Used only when rendering expression texts.
func (op Operator) Commutative() bool { return op == OpAdd || op == OpMul }

// Distributive is true for operators that must be parenthesized when they
// appear on the right of a subtraction. Used only when rendering.
func (op Operator) Distributive() bool { return op == OpAdd || op == OpSub }
