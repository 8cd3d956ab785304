package nudge

import "sort"

// GroupRegions partitions segs into maximal groups connected by transitive
// overlap in the alternate (varying) dimension (spec §4.8.3): two segments
// belong to the same region if their varying-axis ranges overlap, directly
// or through a chain of other segments. It is the []NudgingShiftSegment
// counterpart of groupRefRegions in nudge.go (used internally so write-back
// can still find each segment's owning route); both share groupIndices so
// the partitioning rule lives in exactly one place.
func GroupRegions(segs []NudgingShiftSegment) [][]NudgingShiftSegment {
	groups := groupIndices(len(segs),
		func(i int) float64 { return segs[i].varLo },
		func(i int) float64 { return segs[i].varHi })
	if groups == nil {
		return nil
	}
	out := make([][]NudgingShiftSegment, len(groups))
	for gi, idxs := range groups {
		g := make([]NudgingShiftSegment, len(idxs))
		for k, idx := range idxs {
			g[k] = segs[idx]
		}
		out[gi] = g
	}
	return out
}

// groupIndices partitions n items into maximal groups connected by
// transitive overlap of each item's [lo, hi) range, scanning once in lo
// order and extending each group's high-water mark as overlapping items are
// folded in.
func groupIndices(n int, lo, hi func(i int) float64) [][]int {
	if n == 0 {
		return nil
	}
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return lo(order[a]) < lo(order[b]) })

	var groups [][]int
	used := make([]bool, n)
	for oi := range order {
		i := order[oi]
		if used[i] {
			continue
		}
		group := []int{i}
		used[i] = true
		groupMax := hi(i)
		for oj := oi + 1; oj < len(order); oj++ {
			j := order[oj]
			if used[j] {
				continue
			}
			if lo(j) < groupMax {
				group = append(group, j)
				used[j] = true
				if hi(j) > groupMax {
					groupMax = hi(j)
				}
			}
		}
		groups = append(groups, group)
	}
	return groups
}
