package calculator

import (
	"fmt"
	"sync"

	"github.com/otogan/we-have-got-your-number/arith"
)

// The closure phase: rounds of pairwise operator application over the whole
// registry, until a round accepts nothing new.

type pair struct {
	a, b *arith.Segment
}

func (c *Calculator) close() error {
	maxRounds := c.MaxRounds
	if maxRounds == 0 {
		maxRounds = DefaultMaxRounds
	}
	for round := 1; ; round++ {
		if maxRounds > 0 && round > maxRounds {
			return fmt.Errorf("%w after %d rounds", ErrNoConvergence, maxRounds)
		}
		pairs := c.disjointPairs()
		candidates := c.buildCandidates(pairs)
		c.Stats.NbCandidates += len(candidates)
		c.Stats.NbRejected += 2*len(pairs) - len(candidates)
		batch := c.accept(candidates)
		c.Stats.NbRounds = round
		if c.Verbose {
			fmt.Printf("c round %d: %d new segments\n", round, len(batch))
		}
		if len(batch) == 0 {
			return nil
		}
		for _, s := range batch {
			c.register(s)
		}
	}
}

// disjointPairs lists every ordered pair of registry segments whose masks
// do not overlap, in registry order. The overlap test also rules out
// pairing a segment with itself, since masks are never empty.
func (c *Calculator) disjointPairs() []pair {
	var pairs []pair
	for _, a := range c.segments {
		for _, b := range c.segments {
			if !a.SharesDigits(b) {
				pairs = append(pairs, pair{a, b})
			}
		}
	}
	return pairs
}

// buildCandidates constructs an addition and a subtraction per pair and
// keeps the valid ones, in pair order.
func (c *Calculator) buildCandidates(pairs []pair) []*arith.Segment {
	if c.Workers > 1 && len(pairs) >= 2*c.Workers {
		return buildParallel(pairs, c.Workers)
	}
	out := make([]*arith.Segment, 0, 2*len(pairs))
	for _, p := range pairs {
		out = appendOps(out, p)
	}
	return out
}

func appendOps(out []*arith.Segment, p pair) []*arith.Segment {
	if add := arith.NewAddition(p.a, p.b); add.Valid() {
		out = append(out, add)
	}
	if sub := arith.NewSubtraction(p.a, p.b); sub.Valid() {
		out = append(out, sub)
	}
	return out
}

// buildParallel splits the pair list into contiguous chunks and constructs
// candidates concurrently. Construction is pure, and the chunks are
// flattened back in order, so the candidate sequence is identical to the
// serial one and the whole search stays deterministic.
func buildParallel(pairs []pair, workers int) []*arith.Segment {
	chunks := make([][]*arith.Segment, workers)
	size := (len(pairs) + workers - 1) / workers
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * size
		hi := lo + size
		if hi > len(pairs) {
			hi = len(pairs)
		}
		if lo >= hi {
			break
		}
		wg.Add(1)
		go func(w int, part []pair) {
			defer wg.Done()
			out := make([]*arith.Segment, 0, 2*len(part))
			for _, p := range part {
				out = appendOps(out, p)
			}
			chunks[w] = out
		}(w, pairs[lo:hi])
	}
	wg.Wait()
	var out []*arith.Segment
	for _, chunk := range chunks {
		out = append(out, chunk...)
	}
	return out
}

// accept filters a round's candidates: a candidate enters the batch only if
// no equal segment exists in the batch or in the permanent registry.
// Solutions are recorded as candidates are accepted, so the strings under
// each value keep discovery order.
func (c *Calculator) accept(candidates []*arith.Segment) []*arith.Segment {
	var batch []*arith.Segment
	batchByValue := make(map[int][]*arith.Segment)
	for _, cand := range candidates {
		v := cand.Value()
		if containsEqual(batchByValue[v], cand) || containsEqual(c.byValue[v], cand) {
			c.Stats.NbDuplicates++
			continue
		}
		batch = append(batch, cand)
		batchByValue[v] = append(batchByValue[v], cand)
		if cand.IsSolution() {
			c.solutions[v] = append(c.solutions[v], cand.PrimaryExpression())
		}
	}
	return batch
}

// containsEqual scans a value bucket for a segment equal to cand. Buckets
// hold only segments of one value, so Equal reduces to the text
// intersection test.
func containsEqual(bucket []*arith.Segment, cand *arith.Segment) bool {
	for _, s := range bucket {
		if s.Equal(cand) {
			return true
		}
	}
	return false
}
