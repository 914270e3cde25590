package calculator

import (
	"errors"
	"fmt"

	"github.com/otogan/we-have-got-your-number/arith"
)

// DefaultMaxRounds bounds the closure phase. The search provably converges
// for four-digit inputs; the cap only guards against regressions in the
// dedup rule.
const DefaultMaxRounds = 64

// ErrNoConvergence is returned by Solve when the closure phase is still
// producing new segments after the round cap.
var ErrNoConvergence = errors.New("search did not converge")

// Stats regroups counters about a finished search.
type Stats struct {
	NbRounds     int // closure rounds run, including the final empty one
	NbSegments   int // segments in the registry when the search ended
	NbCandidates int // valid operations constructed across all rounds
	NbRejected   int // operations discarded at construction
	NbDuplicates int // valid operations equal to an earlier segment
	NbSolutions  int // expressions recorded in the solution map
}

// A Calculator owns the growing registry of every segment reachable from
// its four input digits and collects the complete ones whose value lands
// in the solution range. It is not safe for concurrent use.
type Calculator struct {
	digits    []int
	segments  []*arith.Segment
	byValue   map[int][]*arith.Segment
	solutions Solutions
	done      bool
	err       error

	// Verbose makes Solve print one comment line per closure round.
	Verbose bool
	// Workers is the number of goroutines constructing candidate
	// operations within a round. Values below 2 keep the search serial.
	// The result is identical either way.
	Workers int
	// MaxRounds caps the closure phase: 0 means DefaultMaxRounds,
	// negative values disable the cap.
	MaxRounds int
	// Stats is filled in as the search runs.
	Stats Stats
}

// New creates a calculator for exactly four digits. Any other count fails
// with arith.ErrDigitCount.
func New(digits []int) (*Calculator, error) {
	if len(digits) != arith.NbDigits {
		return nil, fmt.Errorf("%w: got %d digits, want %d", arith.ErrDigitCount, len(digits), arith.NbDigits)
	}
	return &Calculator{
		digits:    append([]int(nil), digits...),
		byValue:   make(map[int][]*arith.Segment),
		solutions: make(Solutions),
	}, nil
}

// Solve runs the search and returns every reachable target value in
// [1, 100] mapped to the expressions producing it, in discovery order.
// Solve is idempotent: later calls return the first outcome, result or
// error, without searching again.
func (c *Calculator) Solve() (Solutions, error) {
	if c.done {
		if c.err != nil {
			return nil, c.err
		}
		return c.solutions, nil
	}
	c.done = true
	if err := c.seed(); err != nil {
		c.err = err
		return nil, err
	}
	c.combineNumbers()
	if err := c.close(); err != nil {
		c.err = err
		return nil, err
	}
	c.Stats.NbSegments = len(c.segments)
	c.Stats.NbSolutions = c.solutions.Count()
	return c.solutions, nil
}

// seed registers one digit segment per input position.
func (c *Calculator) seed() error {
	for i, d := range c.digits {
		s, err := arith.NewDigit(d, i)
		if err != nil {
			return err
		}
		c.register(s)
	}
	return nil
}

// combineNumbers builds every two and three digit number reachable by
// concatenating distinct input digits, keeping the first valid combination
// per distinct value. Dedup here is by value only; the loose Equal rule
// only applies during the closure phase.
func (c *Calculator) combineNumbers() {
	digits := c.segments[:arith.NbDigits]
	seen := make(map[int]bool)
	var numbers []*arith.Segment
	for _, a := range digits {
		for _, b := range digits {
			two := arith.NewCombination(a, b)
			if !two.Valid() || seen[two.Value()] {
				continue
			}
			seen[two.Value()] = true
			numbers = append(numbers, two)
			for _, d := range digits {
				three := arith.NewCombination(two, d)
				if !three.Valid() || seen[three.Value()] {
					continue
				}
				seen[three.Value()] = true
				numbers = append(numbers, three)
			}
		}
	}
	for _, n := range numbers {
		c.register(n)
	}
}

// register appends a segment to the permanent registry and to its value
// bucket. The registry is append-only: composite segments reference earlier
// ones, which therefore outlive them.
func (c *Calculator) register(s *arith.Segment) {
	c.segments = append(c.segments, s)
	c.byValue[s.Value()] = append(c.byValue[s.Value()], s)
}
