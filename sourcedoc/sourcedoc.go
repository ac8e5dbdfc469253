// Package sourcedoc implements the span-preserving edit/save pipeline:
// SourceDocument applies an ordered, non-overlapping list of replacements
// to an immutable source buffer and returns both the updated text and an
// OffsetMap translating old offsets into new ones; ReplaceSpanPlanner turns
// an unordered, possibly-overlapping edit list into the form
// SourceDocument requires; LocalizedEditBuilder synthesizes replacements
// for DOM nodes that have no recorded source span; SaveDocument ties the
// three together.
package sourcedoc

import (
	"errors"
	"strings"

	"github.com/arturoeanton/go-svgxml/fileoffset"
	"github.com/arturoeanton/go-svgxml/rcstring"
)

// Replacement describes a substitution of the source: the bytes in Range
// are replaced verbatim by Text.
type Replacement struct {
	Range fileoffset.FileOffsetRange
	Text  rcstring.RcString
}

// resolvedReplacement is a Replacement with both endpoints resolved to
// concrete byte offsets, plus the delta bookkeeping OffsetMap needs.
type resolvedReplacement struct {
	start           uint64
	end             uint64
	replacementSize uint64
	deltaBefore     int64
	deltaAfter      int64
}

// OffsetMap translates byte offsets in the original source into offsets in
// the text produced by SourceDocument.ApplyReplacements.
type OffsetMap struct {
	originalLen  int
	replacements []resolvedReplacement
	lines        *fileoffset.LineOffsets
}

// MapOffset translates offset o in the original source to its position in
// the updated text. Offsets that land inside a replaced range are clamped
// to the nearest surviving anchor: the start of the replacement's output
// plus however far into the replacement text o reached (capped at the
// replacement's length).
func (m *OffsetMap) MapOffset(o uint64) uint64 {
	delta := int64(0)
	for _, r := range m.replacements {
		if o < r.start {
			return uint64(int64(o) + r.deltaBefore)
		}
		if o < r.end {
			relative := o - r.start
			clamped := relative
			if clamped > r.replacementSize {
				clamped = r.replacementSize
			}
			return r.start + uint64(r.deltaBefore) + clamped
		}
		delta = r.deltaAfter
	}
	return uint64(int64(o) + delta)
}

// TranslateOffset is an alias for MapOffset using the naming convention
// at the SourceDocument layer.
func (m *OffsetMap) TranslateOffset(o uint64) uint64 { return m.MapOffset(o) }

// TranslateRange maps both endpoints of r independently.
func (m *OffsetMap) TranslateRange(r fileoffset.FileOffsetRange) fileoffset.FileOffsetRange {
	start := m.MapOffset(r.Start.ResolveOffset(m.originalLen))
	end := m.MapOffset(r.End.ResolveOffset(m.originalLen))
	return fileoffset.Range(start, end)
}

// Lines returns the LineOffsets computed over the updated text, so callers
// can resolve line/column for offsets returned by MapOffset.
func (m *OffsetMap) Lines() *fileoffset.LineOffsets { return m.lines }

// SourceDocument wraps an immutable source buffer.
type SourceDocument struct {
	source string
}

// New wraps source. The buffer is never mutated; ApplyReplacements returns
// a new string.
func New(source string) *SourceDocument {
	return &SourceDocument{source: source}
}

// Source returns the original buffer.
func (d *SourceDocument) Source() string { return d.source }

var (
	// ErrMissingOffsets is returned when a replacement has an unresolved
	// endpoint that ReplaceSpanPlanner did not (or could not) promote a
	// fallback for.
	ErrMissingOffsets = errors.New("sourcedoc: replacement is missing resolved offsets")
	// ErrOutOfBounds is returned when a replacement's range falls outside
	// the source buffer, or start > end.
	ErrOutOfBounds = errors.New("sourcedoc: replacement range is out of bounds")
	// ErrNotOrdered is returned when replacements are not sorted and
	// non-overlapping by the time ApplyReplacements sees them — the
	// ReplaceSpanPlanner's job is to guarantee this before calling in.
	ErrNotOrdered = errors.New("sourcedoc: replacements must be non-overlapping and ordered")
)

// ApplyReplacements builds the updated text by splicing replacements, in
// order, into the source, and returns an OffsetMap translating original
// offsets into positions in that text.
//
// replacements must already be sorted by start offset and non-overlapping
// — exactly the postcondition ReplaceSpanPlanner.Plan guarantees. Unchanged
// spans and replacement text are assembled into a rope sized once to the
// final length, rather than repeated string concatenation.
func (d *SourceDocument) ApplyReplacements(replacements []Replacement) (string, *OffsetMap, error) {
	sourceLen := len(d.source)

	// First pass: resolve every endpoint and validate, computing the
	// final buffer size up front so the rope is allocated exactly once.
	starts := make([]uint64, len(replacements))
	ends := make([]uint64, len(replacements))
	totalSize := sourceLen
	previousEnd := uint64(0)

	for i, rep := range replacements {
		start := rep.Range.Start.ResolveOffset(sourceLen)
		end := rep.Range.End.ResolveOffset(sourceLen)

		if start > end || end > uint64(sourceLen) {
			return "", nil, ErrOutOfBounds
		}
		if start < previousEnd {
			return "", nil, ErrNotOrdered
		}

		starts[i] = start
		ends[i] = end
		totalSize += rep.Text.Size() - int(end-start)
		previousEnd = end
	}

	var rope strings.Builder
	rope.Grow(totalSize)

	resolved := make([]resolvedReplacement, 0, len(replacements))
	cursor := uint64(0)
	delta := int64(0)

	for i, rep := range replacements {
		start, end := starts[i], ends[i]

		rope.WriteString(d.source[cursor:start])
		deltaBefore := delta

		rope.WriteString(rep.Text.String())
		delta += int64(rep.Text.Size()) - int64(end-start)

		resolved = append(resolved, resolvedReplacement{
			start:           start,
			end:             end,
			replacementSize: uint64(rep.Text.Size()),
			deltaBefore:     deltaBefore,
			deltaAfter:      delta,
		})

		cursor = end
	}
	rope.WriteString(d.source[cursor:])

	updated := rope.String()
	return updated, &OffsetMap{
		originalLen:  sourceLen,
		replacements: resolved,
		lines:        fileoffset.NewLineOffsets(updated),
	}, nil
}
