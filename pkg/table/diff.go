package table

import "sort"

// Patch is the keyed difference between two render passes.
type Patch struct {
	Removed  []Removal
	Inserted []Insertion
	Moved    []Move
}

// Removal is a row of the previous pass with no counterpart in the next.
type Removal struct {
	Key   Key
	Index int
}

// Insertion is a row of the next pass with no counterpart in the previous.
type Insertion struct {
	Key   Key
	Index int
}

// Move is a kept row whose relative order changed.
type Move struct {
	Key      Key
	From, To int
}

// Empty reports whether the passes render the same rows in the same order.
func (p Patch) Empty() bool {
	return len(p.Removed) == 0 && len(p.Inserted) == 0 && len(p.Moved) == 0
}

// Diff compares the keys of two render passes. Rows present in both are
// kept; only those outside the longest run already in order are reported
// as moved. Row content is not compared: a kept row is re-rendered under
// the same key.
func Diff(prev, next []Key) Patch {
	var p Patch

	positions := make(map[Key][]int, len(prev))
	for i, k := range prev {
		positions[k] = append(positions[k], i)
	}

	// from[j] is the previous index of next[j], or -1 for an insertion.
	from := make([]int, len(next))
	for j, k := range next {
		if queue := positions[k]; len(queue) > 0 {
			from[j] = queue[0]
			positions[k] = queue[1:]
			continue
		}
		from[j] = -1
		p.Inserted = append(p.Inserted, Insertion{Key: k, Index: j})
	}

	for k, rest := range positions {
		for _, i := range rest {
			p.Removed = append(p.Removed, Removal{Key: k, Index: i})
		}
	}
	sort.Slice(p.Removed, func(a, b int) bool { return p.Removed[a].Index < p.Removed[b].Index })

	stable := increasingRun(from)
	for j, i := range from {
		if i >= 0 && !stable[j] {
			p.Moved = append(p.Moved, Move{Key: next[j], From: i, To: j})
		}
	}
	return p
}

// increasingRun marks the positions of a longest strictly increasing
// subsequence of the non-negative values of seq.
func increasingRun(seq []int) []bool {
	// tails[l] is the position in seq ending the best run of length l+1.
	var tails []int
	parent := make([]int, len(seq))
	for j, v := range seq {
		if v < 0 {
			continue
		}
		l := sort.Search(len(tails), func(n int) bool { return seq[tails[n]] >= v })
		if l > 0 {
			parent[j] = tails[l-1]
		} else {
			parent[j] = -1
		}
		if l == len(tails) {
			tails = append(tails, j)
		} else {
			tails[l] = j
		}
	}

	marked := make([]bool, len(seq))
	if len(tails) == 0 {
		return marked
	}
	for j := tails[len(tails)-1]; j >= 0; j = parent[j] {
		marked[j] = true
	}
	return marked
}
