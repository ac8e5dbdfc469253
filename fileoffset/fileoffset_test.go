package fileoffset

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// ============================================================================
// 1. LINEOFFSETS
// ============================================================================

func TestLineOffsets_Resolve(t *testing.T) {
	source := "abc\ndef\nghi"
	lo := NewLineOffsets(source)

	got := lo.Resolve(0)
	require.Equal(t, LineInfo{Line: 1, Column: 0}, got)

	got = lo.Resolve(5) // 'e' on line 2
	require.Equal(t, LineInfo{Line: 2, Column: 1}, got)

	got = lo.Resolve(10) // 'i' on line 3
	require.Equal(t, LineInfo{Line: 3, Column: 2}, got)
}

func TestLineOffsets_ResolveFileOffsetSkipsEndOfString(t *testing.T) {
	lo := NewLineOffsets("abc")
	resolved := lo.ResolveFileOffset(EndOfString())
	require.True(t, resolved.IsEndOfString())
}

// ============================================================================
// 2. ADDPARENTOFFSET
// ============================================================================

func TestAddParentOffset_SingleLineChildAddsColumn(t *testing.T) {
	parent := OffsetWithLineInfo(100, 5, 10)
	child := OffsetWithLineInfo(7, 1, 3)

	result := child.AddParentOffset(parent)
	require.Equal(t, uint64(107), *result.Offset)
	require.Equal(t, LineInfo{Line: 5, Column: 13}, *result.LineInfo)
}

func TestAddParentOffset_MultiLineChildExtendsLineCount(t *testing.T) {
	parent := OffsetWithLineInfo(100, 5, 10)
	child := OffsetWithLineInfo(20, 3, 2)

	result := child.AddParentOffset(parent)
	require.Equal(t, uint64(120), *result.Offset)
	require.Equal(t, LineInfo{Line: 7, Column: 2}, *result.LineInfo)
}

func TestAddParentOffset_NoLineInfoOnlyShiftsByteOffset(t *testing.T) {
	parent := Offset(50)
	child := Offset(5)

	result := child.AddParentOffset(parent)
	require.Equal(t, uint64(55), *result.Offset)
	require.Nil(t, result.LineInfo)
}

// ============================================================================
// 3. RESOLVEOFFSET
// ============================================================================

func TestResolveOffset_EndOfStringUsesSourceLength(t *testing.T) {
	require.Equal(t, uint64(42), EndOfString().ResolveOffset(42))
	require.Equal(t, uint64(7), Offset(7).ResolveOffset(1000))
}

// ============================================================================
// 4. PARSERESULT / PARSEERROR
// ============================================================================

func TestParseResult_OkAndErr(t *testing.T) {
	ok := Ok(42)
	require.False(t, ok.HasError())
	require.Equal(t, 42, ok.Result())

	failed := Err[int](NewParseError("bad", Offset(3)))
	require.True(t, failed.HasError())
	require.Contains(t, failed.Error().Error(), "bad")
}

func TestParseError_RebaseShiftsLocation(t *testing.T) {
	err := NewParseError("oops", Offset(5))
	rebased := err.Rebase(Offset(100))
	require.Equal(t, uint64(105), *rebased.Location.Offset)
}

func TestNewLimitError_MessageContainsStableCode(t *testing.T) {
	err := NewLimitError("HIT_DEPTH_CAP", "exceeded depth 10", Offset(0))
	require.Contains(t, err.Error(), "HIT_DEPTH_CAP")
}
