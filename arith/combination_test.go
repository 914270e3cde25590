package arith

import (
	"reflect"
	"testing"
)

func TestNewCombination(t *testing.T) {
	c := NewCombination(digit(t, 1, 0), digit(t, 2, 1))
	if !c.Valid() {
		t.Fatalf("combination of distinct digits should be valid")
	}
	if c.Value() != 12 {
		t.Errorf("wanted value 12, got %d", c.Value())
	}
	if c.Mask() != 0b0011 {
		t.Errorf("wanted mask 0011, got %04b", c.Mask())
	}
	if !c.IsNumber() {
		t.Errorf("a combination is a number and may be concatenated further")
	}
	if wanted := []string{"12"}; !reflect.DeepEqual(c.Expressions(), wanted) {
		t.Errorf("a combination renders as its numeral only: wanted %v, got %v", wanted, c.Expressions())
	}
}

func TestNewCombinationTrailingZero(t *testing.T) {
	c := NewCombination(digit(t, 5, 0), digit(t, 0, 1))
	if !c.Valid() || c.Value() != 50 {
		t.Errorf("5 then 0 should combine into 50, got valid=%t value=%d", c.Valid(), c.Value())
	}
}

func TestNewCombinationLeadingZero(t *testing.T) {
	if c := NewCombination(digit(t, 0, 0), digit(t, 5, 1)); c.Valid() {
		t.Errorf("a combination may not start with zero")
	}
}

func TestNewCombinationSharedDigits(t *testing.T) {
	if c := NewCombination(digit(t, 1, 0), digit(t, 2, 0)); c.Valid() {
		t.Errorf("combinations may not reuse a digit position")
	}
}

func TestNewCombinationNonNumber(t *testing.T) {
	sum := NewAddition(digit(t, 1, 0), digit(t, 2, 1))
	if c := NewCombination(sum, digit(t, 3, 2)); c.Valid() {
		t.Errorf("an operation result may not be concatenated")
	}
	if c := NewCombination(digit(t, 3, 2), sum); c.Valid() {
		t.Errorf("an operation result may not be concatenated")
	}
}

func TestNewCombinationThreeDigits(t *testing.T) {
	two := NewCombination(digit(t, 1, 0), digit(t, 2, 1))
	three := NewCombination(two, digit(t, 3, 2))
	if !three.Valid() || three.Value() != 123 {
		t.Fatalf("wanted 123, got valid=%t value=%d", three.Valid(), three.Value())
	}
	if three.Mask() != 0b0111 {
		t.Errorf("wanted mask 0111, got %04b", three.Mask())
	}
}

func TestNewCombinationMultiDigitRight(t *testing.T) {
	right := NewCombination(digit(t, 2, 1), digit(t, 3, 2))
	c := NewCombination(digit(t, 1, 0), right)
	if !c.Valid() || c.Value() != 123 {
		t.Errorf("1 then 23 should combine into 123, got valid=%t value=%d", c.Valid(), c.Value())
	}
}

func TestNewCombinationAllFourDigits(t *testing.T) {
	three := NewCombination(NewCombination(digit(t, 1, 0), digit(t, 2, 1)), digit(t, 3, 2))
	if c := NewCombination(three, digit(t, 4, 3)); c.Valid() {
		t.Errorf("a literal spending all four digits is never a valid step")
	}
}
