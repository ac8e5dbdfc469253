package sourcedoc

import (
	"sort"

	"github.com/arturoeanton/go-svgxml/fileoffset"
)

// PlannedReplacement is one entry a ReplaceSpanPlanner has decided to
// commit, tracking whether it ended up using the fallback span instead of
// the primary one (useful for diagnostics / tests).
type PlannedReplacement struct {
	Replacement  Replacement
	UsedFallback bool
}

// Entry is a candidate replacement with an optional, coarser fallback span
// to use when the primary span is missing or cannot be reconciled with a
// neighboring edit. An entry whose primary span is unresolved
// (EndOfString) relies entirely on its fallback.
type Entry struct {
	Primary  Replacement
	Fallback *Replacement
}

func hasConcreteOffsets(r fileoffset.FileOffsetRange) bool {
	return !r.Start.IsEndOfString() && !r.End.IsEndOfString()
}

// overlaps reports whether two ranges intersect, using a half-open
// interval test.
func overlaps(a, b fileoffset.FileOffsetRange) bool {
	return startOf(a) < endOf(b) && startOf(b) < endOf(a)
}

func startOf(r fileoffset.FileOffsetRange) uint64 {
	if r.Start.Offset != nil {
		return *r.Start.Offset
	}
	return 0
}

func endOf(r fileoffset.FileOffsetRange) uint64 {
	if r.End.Offset != nil {
		return *r.End.Offset
	}
	return 0
}

// candidate is an Entry after the "promote fallback if primary is
// unresolved" step, retaining a reference to the original fallback (even
// when unused) so the overlap-repair step below can still reach it.
type candidate struct {
	replacement  Replacement
	usedFallback bool
	fallback     *Replacement
}

// Plan turns entries into the sorted, non-overlapping replacement list
// ApplyReplacements requires, promoting fallbacks where necessary.
//
// Policy:
//  1. Any entry whose primary lacks concrete offsets is replaced by its
//     fallback, if the fallback has concrete offsets; otherwise Plan fails
//     with ErrMissingOffsets.
//  2. The (now all-concrete) entries are stable-sorted by start offset.
//  3. Walking in order, an entry that overlaps the last committed
//     replacement is resolved only if its fallback fully covers both the
//     last committed range and the entry's own range, AND does not reach
//     back far enough to also overlap the replacement two-before-last.
//     Otherwise Plan fails with an overlap error.
func Plan(entries []Entry) ([]PlannedReplacement, error) {
	promoted := make([]candidate, 0, len(entries))
	for _, e := range entries {
		if hasConcreteOffsets(e.Primary.Range) {
			promoted = append(promoted, candidate{replacement: e.Primary, fallback: e.Fallback})
			continue
		}
		if e.Fallback != nil && hasConcreteOffsets(e.Fallback.Range) {
			// The fallback is now spent as the replacement itself; it must
			// not also be offered as this entry's fallback for the
			// overlap-repair step below, or an already-exhausted span
			// could trivially "cover" itself and mask a real overlap.
			promoted = append(promoted, candidate{replacement: *e.Fallback, usedFallback: true, fallback: nil})
			continue
		}
		return nil, ErrMissingOffsets
	}

	sort.SliceStable(promoted, func(i, j int) bool {
		return startOf(promoted[i].replacement.Range) < startOf(promoted[j].replacement.Range)
	})

	ordered := make([]PlannedReplacement, 0, len(promoted))
	for _, c := range promoted {
		if len(ordered) == 0 {
			ordered = append(ordered, PlannedReplacement{Replacement: c.replacement, UsedFallback: c.usedFallback})
			continue
		}

		last := ordered[len(ordered)-1]
		if !overlaps(c.replacement.Range, last.Replacement.Range) {
			ordered = append(ordered, PlannedReplacement{Replacement: c.replacement, UsedFallback: c.usedFallback})
			continue
		}

		if c.fallback == nil || !hasConcreteOffsets(c.fallback.Range) {
			return nil, errOverlap
		}

		fb := c.fallback.Range
		coversLastAndEntry := startOf(fb) <= startOf(last.Replacement.Range) &&
			endOf(fb) >= endOf(last.Replacement.Range) &&
			endOf(fb) >= endOf(c.replacement.Range)
		if !coversLastAndEntry {
			return nil, errOverlap
		}

		if len(ordered) >= 2 {
			twoBeforeLast := ordered[len(ordered)-2]
			if endOf(twoBeforeLast.Replacement.Range) > startOf(fb) {
				return nil, errOverlap
			}
		}

		ordered[len(ordered)-1] = PlannedReplacement{Replacement: *c.fallback, UsedFallback: true}
	}

	return ordered, nil
}

var errOverlap = errOverlapType{}

type errOverlapType struct{}

func (errOverlapType) Error() string {
	return "sourcedoc: overlapping replacements with no compatible fallback"
}
