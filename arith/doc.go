// Package arith models the value space of the four-digit puzzle.
//
// A Segment is any value reachable from the input digits: a single digit, a
// multi-digit number obtained by concatenating digits, or the result of
// adding or subtracting two smaller segments. Each segment records the set
// of input positions it consumed as a four-bit Mask, so that no expression
// ever uses a digit twice, and accumulates every distinct textual rendering
// of its value, e.g. both "3 + 12" and "12 + 3".
//
// Segments are built through constructors only. NewCombination, NewAddition
// and NewSubtraction never fail: when the operands cannot legally combine,
// they return a segment whose Valid method reports false and which callers
// simply discard.
//
// Two segments are duplicates of each other when they carry the same value
// and share at least one rendering. The predicate is deliberately loose: two
// segments with the same value but disjoint rendering sets coexist, each
// accumulating its own texts. The search in the calculator package depends
// on this exact rule.
package arith
