package arith

import "strconv"

// NewCombination concatenates the decimal renderings of two number
// segments into a single larger number: 1 and 2 combine into 12.
//
// The result is invalid when the operands share digits, when either is not
// a plain number, when the left operand is zero (no leading zeros), or when
// the combined literal would consume all four positions at once: a literal
// spending the whole input leaves no room for an operator, so it is never a
// useful step.
func NewCombination(a, b *Segment) *Segment {
	s := &Segment{op: OpNumber, mask: a.mask.Union(b.mask)}
	if a.SharesDigits(b) || !a.IsNumber() || !b.IsNumber() || a.value == 0 || s.mask.Complete() {
		return s
	}
	s.value = a.value*pow10(digitCount(b.value)) + b.value
	s.texts.add(strconv.Itoa(s.value))
	s.valid = true
	return s
}

// digitCount returns the number of decimal digits of n, 1 for 0.
func digitCount(n int) int {
	if n < 0 {
		n = -n
	}
	count := 1
	for n >= 10 {
		n /= 10
		count++
	}
	return count
}

func pow10(n int) int {
	res := 1
	for ; n > 0; n-- {
		res *= 10
	}
	return res
}
