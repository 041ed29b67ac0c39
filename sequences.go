package differ

import (
	"sort"

	"github.com/apex/log"
)

// pair is a scored (left index, right index) candidate match
type pair struct {
	left, right int
	diff        *Diff
}

// compareSequences aligns two sequences by greedy, distance-ordered matching:
//
//  1. score every (left, right) element pair, in left-then-right order
//  2. stable sort pairs by distance, so ties keep that order
//  3. walk the sorted pairs, committing any pair whose elements are both
//     still unmatched. this yields exactly min(len(left), len(right))
//     matches, each the closest available at the time it's committed. it is
//     not an optimal assignment
//  4. classify matches: identical & in place is equal, anything closer than
//     1.0 is changed (moved, altered or both), and a match at distance 1.0
//     carries no similarity, so it's split back into a removal & an addition
func (c *comparer) compareSequences(left, right Value, depth int) (*Diff, error) {
	l, r := left.items, right.items

	if n := len(l) * len(r); c.cfg.LargeSequence > 0 && n > c.cfg.LargeSequence {
		c.log.WithFields(log.Fields{
			"left":  len(l),
			"right": len(r),
			"pairs": n,
		}).Warn("comparing large sequences")
	}

	pairs := make([]pair, 0, len(l)*len(r))
	for i, le := range l {
		if err := c.ctx.Err(); err != nil {
			return nil, err
		}
		for j, re := range r {
			d, err := c.compare(le, re, depth+1)
			if err != nil {
				return nil, err
			}
			pairs = append(pairs, pair{left: i, right: j, diff: d})
		}
	}
	c.stats.Pairs += len(pairs)

	sort.SliceStable(pairs, func(a, b int) bool {
		return pairs[a].diff.Distance < pairs[b].diff.Distance
	})

	var (
		want         = minInt(len(l), len(r))
		matchedLeft  = make([]bool, len(l))
		matchedRight = make([]bool, len(r))
		matches      = make([]pair, 0, want)
	)
	for _, p := range pairs {
		if matchedLeft[p.left] || matchedRight[p.right] {
			continue
		}
		matchedLeft[p.left] = true
		matchedRight[p.right] = true
		matches = append(matches, p)
		if len(matches) == want {
			break
		}
	}
	c.stats.Matches += len(matches)

	sd := &SequenceDiff{
		Added:   []int{},
		Removed: []int{},
		Changed: []int{},
		Equal:   []int{},
		Changes: map[int]*ElementChange{},
	}
	for i, matched := range matchedLeft {
		if !matched {
			sd.Removed = append(sd.Removed, i)
		}
	}
	for j, matched := range matchedRight {
		if !matched {
			sd.Added = append(sd.Added, j)
		}
	}

	for _, m := range matches {
		dist := m.diff.Distance
		switch {
		case dist == 0 && m.left == m.right:
			sd.Equal = append(sd.Equal, m.left)
		case dist < 1.0:
			sd.Changed = append(sd.Changed, m.left)
			sd.Changes[m.left] = &ElementChange{
				Pos:      m.right,
				PrevPos:  m.left,
				Distance: dist,
				Diff:     m.diff,
			}
		default:
			sd.Removed = append(sd.Removed, m.left)
			sd.Added = append(sd.Added, m.right)
			c.stats.Discarded++
		}
	}
	sort.Ints(sd.Changed)
	sort.Ints(sd.Equal)

	diffCount := len(sd.Removed) + len(sd.Added) + len(sd.Changed)
	sd.Total = diffCount + len(sd.Equal)

	return &Diff{
		Kind:     KindSequence,
		Distance: ratio(diffCount, sd.Total),
		Sequence: sd,
	}, nil
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
