package sourcedoc

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arturoeanton/go-svgxml/fileoffset"
	"github.com/arturoeanton/go-svgxml/rcstring"
	"github.com/arturoeanton/go-svgxml/xmldom"
)

// ============================================================================
// 1. APPLYREPLACEMENTS
// ============================================================================

func TestApplyReplacements_SingleReplacementScenario(t *testing.T) {
	doc := New("alpha beta gamma")

	updated, offsets, err := doc.ApplyReplacements([]Replacement{
		{Range: fileoffset.Range(6, 10), Text: rcstring.New("BETA")},
	})
	require.NoError(t, err)
	require.Equal(t, "alpha BETA gamma", updated)

	require.Equal(t, uint64(12), offsets.TranslateOffset(12))
	require.Equal(t, uint64(8), offsets.TranslateOffset(8))
}

func TestApplyReplacements_OutOfBounds(t *testing.T) {
	doc := New("short")
	_, _, err := doc.ApplyReplacements([]Replacement{
		{Range: fileoffset.Range(2, 100), Text: rcstring.New("x")},
	})
	require.ErrorIs(t, err, ErrOutOfBounds)
}

func TestApplyReplacements_NotOrdered(t *testing.T) {
	doc := New("0123456789")
	_, _, err := doc.ApplyReplacements([]Replacement{
		{Range: fileoffset.Range(5, 8), Text: rcstring.New("x")},
		{Range: fileoffset.Range(4, 6), Text: rcstring.New("y")},
	})
	require.ErrorIs(t, err, ErrNotOrdered)
}

// ============================================================================
// 2. OFFSET-MAP LAW
// ============================================================================

func TestOffsetMap_UnaffectedBytesPreserved(t *testing.T) {
	source := "0123456789"
	doc := New(source)

	updated, offsets, err := doc.ApplyReplacements([]Replacement{
		{Range: fileoffset.Range(3, 5), Text: rcstring.New("XY")},
	})
	require.NoError(t, err)

	for o := 0; o < len(source); o++ {
		if o >= 3 && o < 5 {
			continue
		}
		mapped := offsets.MapOffset(uint64(o))
		require.Equal(t, source[o], updated[mapped], "offset %d", o)
	}
}

func TestOffsetMap_InsideReplacementClampsToAnchor(t *testing.T) {
	doc := New("0123456789")
	_, offsets, err := doc.ApplyReplacements([]Replacement{
		{Range: fileoffset.Range(2, 6), Text: rcstring.New("Z")},
	})
	require.NoError(t, err)

	// Offsets 2..5 are inside the replaced range [2,6). Each maps to the
	// replacement start plus its distance into the range, capped at the
	// 1-byte replacement length: 2 -> 2, and 3..5 all clamp to 3.
	require.Equal(t, uint64(2), offsets.MapOffset(2))
	require.Equal(t, uint64(3), offsets.MapOffset(3))
}

// ============================================================================
// 3. REPLACESPANPLANNER
// ============================================================================

func TestPlan_SortsByStartOffset(t *testing.T) {
	entries := []Entry{
		{Primary: Replacement{Range: fileoffset.Range(10, 12), Text: rcstring.New("b")}},
		{Primary: Replacement{Range: fileoffset.Range(0, 2), Text: rcstring.New("a")}},
	}
	planned, err := Plan(entries)
	require.NoError(t, err)
	require.Equal(t, uint64(0), *planned[0].Replacement.Range.Start.Offset)
	require.Equal(t, uint64(10), *planned[1].Replacement.Range.Start.Offset)
}

func TestPlan_PromotesFallbackWhenPrimaryUnresolved(t *testing.T) {
	fallback := Replacement{Range: fileoffset.Range(5, 5), Text: rcstring.New("x")}
	entries := []Entry{
		{Primary: Replacement{Range: fileoffset.FileOffsetRange{Start: fileoffset.EndOfString(), End: fileoffset.EndOfString()}}, Fallback: &fallback},
	}
	planned, err := Plan(entries)
	require.NoError(t, err)
	require.True(t, planned[0].UsedFallback)
	require.Equal(t, uint64(5), *planned[0].Replacement.Range.Start.Offset)
}

func TestPlan_FailsMissingOffsetsWithNoFallback(t *testing.T) {
	entries := []Entry{
		{Primary: Replacement{Range: fileoffset.FileOffsetRange{Start: fileoffset.EndOfString(), End: fileoffset.EndOfString()}}},
	}
	_, err := Plan(entries)
	require.ErrorIs(t, err, ErrMissingOffsets)
}

func TestPlan_OverlapWithoutCompatibleFallbackFails(t *testing.T) {
	entries := []Entry{
		{Primary: Replacement{Range: fileoffset.Range(0, 10), Text: rcstring.New("a")}},
		{Primary: Replacement{Range: fileoffset.Range(5, 15), Text: rcstring.New("b")}},
	}
	_, err := Plan(entries)
	require.Error(t, err)
}

func TestPlan_AlreadyPromotedFallbackCannotResolveOverlap(t *testing.T) {
	// X is committed normally. Y has no concrete primary, so its own
	// fallback F is promoted into Y's replacement and is now spent. F
	// happens to fully cover both Y's own range and X's range, but it must
	// not be reusable a second time to silently resolve the overlap
	// between Y and X: that reuse should fail with errOverlap instead.
	fallback := Replacement{Range: fileoffset.Range(0, 10), Text: rcstring.New("y")}
	entries := []Entry{
		{Primary: Replacement{Range: fileoffset.Range(0, 4), Text: rcstring.New("x")}},
		{Primary: Replacement{Range: fileoffset.FileOffsetRange{Start: fileoffset.EndOfString(), End: fileoffset.EndOfString()}}, Fallback: &fallback},
	}
	_, err := Plan(entries)
	require.Error(t, err)
}

func TestPlan_OverlapResolvedByFallbackCoveringBoth(t *testing.T) {
	fallback := Replacement{Range: fileoffset.Range(0, 15), Text: rcstring.New("merged")}
	entries := []Entry{
		{Primary: Replacement{Range: fileoffset.Range(0, 10), Text: rcstring.New("a")}},
		{Primary: Replacement{Range: fileoffset.Range(5, 15), Text: rcstring.New("b")}, Fallback: &fallback},
	}
	planned, err := Plan(entries)
	require.NoError(t, err)
	require.Len(t, planned, 1)
	require.True(t, planned[0].UsedFallback)
}

// ============================================================================
// 4. LOCALIZEDEDITBUILDER + SAVEDOCUMENT
// ============================================================================

func TestLocalizedEditBuilder_RemoveNodeScenario(t *testing.T) {
	source := "<svg><rect id='a'/></svg>"
	doc := xmldom.NewDocument()
	// Simulate what the parser would have recorded: a <rect> node whose
	// span is [5, 19) within the source above.
	svg := doc.CreateElement(xmldom.NewName("svg"))
	rect := doc.CreateElement(xmldom.NewName("rect"))
	doc.Root().AppendChild(svg)
	svg.AppendChild(rect)
	rect.SetNodeLocation(fileoffset.Range(5, 19))

	builder := NewLocalizedEditBuilder(source, "  ")
	repl, ok := builder.RemoveNode(rect)
	require.True(t, ok)

	srcDoc := New(source)
	result, err := SaveDocument(srcDoc, []Entry{{Primary: repl}}, nil)
	require.NoError(t, err)
	require.Equal(t, "<svg></svg>", result.UpdatedText)
}

func TestLocalizedEditBuilder_AppendChildAnchorsAtClosingTag(t *testing.T) {
	source := "<svg></svg>"
	doc := xmldom.NewDocument()
	svg := doc.CreateElement(xmldom.NewName("svg"))
	doc.Root().AppendChild(svg)
	svg.SetNodeLocation(fileoffset.Range(0, len32(source)))

	newChild := doc.CreateElement(xmldom.NewName("rect"))

	builder := NewLocalizedEditBuilder(source, "  ")
	repl, ok := builder.AppendChild(newChild, svg)
	require.True(t, ok)
	require.Contains(t, repl.Text.String(), "<rect/>")
}

func len32(s string) uint64 { return uint64(len(s)) }
