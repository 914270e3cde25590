package arith

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the base error for fail-fast input violations.
// Both sub-cases below wrap it.
var ErrInvalidInput = errors.New("invalid input")

// ErrDigitCount reports an input that does not hold exactly four digits.
var ErrDigitCount = fmt.Errorf("%w: invalid digits argument", ErrInvalidInput)

// ErrDigitIndex reports a digit position outside the four input slots.
var ErrDigitIndex = fmt.Errorf("%w: invalid digit index", ErrInvalidInput)
