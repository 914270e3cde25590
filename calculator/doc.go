/*
Package calculator searches the space of arithmetic expressions reachable
from four digits, using digit concatenation, addition and subtraction, each
digit exactly once.

Starting from one segment per input digit, the calculator first builds every
two and three digit number obtainable by concatenation. It then repeatedly
applies addition and subtraction to every ordered pair of known segments
with disjoint digit usage: each round only accepts operations no earlier
equal segment precedes, accepted operations join the registry, and the
search stops at the first round that accepts nothing. Complete segments,
those consuming all four digits, whose value lies in [1, 100] are collected
as solutions.

	c, err := calculator.New([]int{5, 2, 4, 8})
	if err != nil {
		// not exactly four digits
	}
	solutions, err := c.Solve()
	if err != nil {
		// search did not converge within the round cap
	}
	for _, v := range solutions.Values() {
		fmt.Printf("%d = %s\n", v, strings.Join(solutions[v], " , "))
	}

A Calculator can be tuned before the first Solve call: Verbose prints one
comment line per round, Workers parallelizes candidate construction within a
round without changing the result, and MaxRounds caps the closure phase.
*/
package calculator
