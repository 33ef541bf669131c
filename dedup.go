package statewalk

import (
	"sort"
	"strings"
)

// Deduplicate removes every path wholly subsumed by a longer one: a path is
// redundant when its description occurs verbatim inside another kept path's
// description. Candidates are scanned longest-first with stable ties, and
// the kept set is reversed on output so relative ordering of survivors is
// preserved. Quadratic in the number of paths, which stays small in this
// domain; descriptions are memoized so the scan never recomputes them.
func Deduplicate(paths []*Path) []*Path {
	if len(paths) < 2 {
		return paths
	}

	ordered := make([]*Path, len(paths))
	copy(ordered, paths)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Len() > ordered[j].Len()
	})

	kept := make([]*Path, 0, len(ordered))
	for _, candidate := range ordered {
		redundant := false
		for _, keeper := range kept {
			if strings.Contains(keeper.Description(), candidate.Description()) {
				redundant = true
				break
			}
		}
		if !redundant {
			kept = append(kept, candidate)
		}
	}

	for i, j := 0, len(kept)-1; i < j; i, j = i+1, j-1 {
		kept[i], kept[j] = kept[j], kept[i]
	}
	return kept
}
