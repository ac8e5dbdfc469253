// Package fileoffset locates bytes in a source buffer, and results-or-errors
// that carry those locations.
//
// === 1. BACKGROUND ===
// Every node, attribute, and value the parser produces needs to point back
// at where it came from, down to the line and column, so that diagnostics
// and round-tripping edits both work. FileOffset pairs an absolute byte
// offset with an optional (line, column) pair; the byte offset is the
// source of truth and the line/column is a courtesy computed from it via
// LineOffsets.
package fileoffset

import "sort"

// LineInfo is a 1-based line number paired with a 0-based column, both
// counted in bytes (not runes) to stay consistent with the byte offsets
// they annotate.
type LineInfo struct {
	Line   uint64
	Column uint64
}

// FileOffset is an absolute byte offset into a source buffer, with an
// optional line/column annotation. A nil Offset represents "end of
// string", a sentinel with no byte offset set.
type FileOffset struct {
	Offset   *uint64
	LineInfo *LineInfo
}

// Offset constructs a FileOffset with a concrete byte offset and no line
// info.
func Offset(offset uint64) FileOffset {
	o := offset
	return FileOffset{Offset: &o}
}

// OffsetWithLineInfo constructs a FileOffset carrying both a byte offset and
// its precomputed line/column.
func OffsetWithLineInfo(offset uint64, line, column uint64) FileOffset {
	o := offset
	return FileOffset{Offset: &o, LineInfo: &LineInfo{Line: line, Column: column}}
}

// EndOfString returns the sentinel offset meaning "resolve against the
// source length when needed".
func EndOfString() FileOffset {
	return FileOffset{}
}

// IsEndOfString reports whether this offset is the unresolved end-of-string
// sentinel.
func (f FileOffset) IsEndOfString() bool {
	return f.Offset == nil
}

// ResolveOffset returns the concrete byte offset, substituting
// len(source) for the end-of-string sentinel.
func (f FileOffset) ResolveOffset(sourceLen int) uint64 {
	if f.Offset != nil {
		return *f.Offset
	}
	return uint64(sourceLen)
}

// AddParentOffset rebases a subparser-relative offset into the parent's
// coordinate system. If the parent has no line info, only the byte offset
// is shifted. If the parent does carry line info:
//   - a single-line child (Line == 1) is entirely on the parent's starting
//     line, so its column is added to the parent's starting column;
//   - a multi-line child instead extends the line count: the parent's line
//     plus (child.Line - 1), and the column is the child's own column
//     (since the child started a fresh line past the parent's start);
//   - a child with no line info of its own is treated as a single-line
//     child whose column is its raw byte offset, so the parent's column
//     plus that offset lands on the parent's line.
func (f FileOffset) AddParentOffset(parent FileOffset) FileOffset {
	var rebasedOffset *uint64
	if f.Offset != nil && parent.Offset != nil {
		sum := *parent.Offset + *f.Offset
		rebasedOffset = &sum
	}

	result := FileOffset{Offset: rebasedOffset}
	if parent.LineInfo == nil {
		return result
	}

	selfOffset := uint64(0)
	if f.Offset != nil {
		selfOffset = *f.Offset
	}

	switch {
	case f.LineInfo == nil:
		result.LineInfo = &LineInfo{
			Line:   parent.LineInfo.Line,
			Column: parent.LineInfo.Column + selfOffset,
		}
	case f.LineInfo.Line == 1:
		result.LineInfo = &LineInfo{
			Line:   parent.LineInfo.Line,
			Column: parent.LineInfo.Column + f.LineInfo.Column,
		}
	default:
		result.LineInfo = &LineInfo{
			Line:   parent.LineInfo.Line + (f.LineInfo.Line - 1),
			Column: f.LineInfo.Column,
		}
	}
	return result
}

// FileOffsetRange is a closed-open [Start, End) range over source bytes.
type FileOffsetRange struct {
	Start FileOffset
	End   FileOffset
}

// Range constructs a FileOffsetRange from two concrete byte offsets.
func Range(start, end uint64) FileOffsetRange {
	return FileOffsetRange{Start: Offset(start), End: Offset(end)}
}

// LineOffsets precomputes the byte offset of each line start in a source
// buffer so offset-to-line lookups run in O(log n) via binary search,
// rather than rescanning the buffer for every diagnostic.
type LineOffsets struct {
	starts []uint64
}

// NewLineOffsets scans source once, recording the byte offset immediately
// following every '\n'.
func NewLineOffsets(source string) *LineOffsets {
	starts := []uint64{0}
	for i := 0; i < len(source); i++ {
		if source[i] == '\n' {
			starts = append(starts, uint64(i+1))
		}
	}
	return &LineOffsets{starts: starts}
}

// Resolve returns the (1-based line, 0-based column) for a byte offset.
func (l *LineOffsets) Resolve(offset uint64) LineInfo {
	// sort.Search finds the first line start strictly greater than offset;
	// the line containing offset is the one before it.
	idx := sort.Search(len(l.starts), func(i int) bool {
		return l.starts[i] > offset
	})
	lineIdx := idx - 1
	if lineIdx < 0 {
		lineIdx = 0
	}
	return LineInfo{
		Line:   uint64(lineIdx) + 1,
		Column: offset - l.starts[lineIdx],
	}
}

// ResolveFileOffset fills in LineInfo on a FileOffset that only carries a
// byte offset, returning EndOfString untouched.
func (l *LineOffsets) ResolveFileOffset(f FileOffset) FileOffset {
	if f.Offset == nil {
		return f
	}
	info := l.Resolve(*f.Offset)
	return FileOffset{Offset: f.Offset, LineInfo: &info}
}
