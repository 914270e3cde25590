package calculator

import "sort"

// Solutions maps each reachable target value in [1, 100] to the expressions
// that produce it, in discovery order.
type Solutions map[int][]string

// Values returns the reachable target values in ascending order.
func (s Solutions) Values() []int {
	values := make([]int, 0, len(s))
	for v := range s {
		values = append(values, v)
	}
	sort.Ints(values)
	return values
}

// Count returns the total number of recorded expressions.
func (s Solutions) Count() int {
	n := 0
	for _, exprs := range s {
		n += len(exprs)
	}
	return n
}
