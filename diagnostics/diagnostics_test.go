package diagnostics

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arturoeanton/go-svgxml/fileoffset"
)

func TestCollector_AddAccumulatesInOrder(t *testing.T) {
	c := NewCollector()
	c.Add("first", fileoffset.Offset(1))
	c.Add("second", fileoffset.Offset(2))

	require.Len(t, c.Warnings(), 2)
	require.Equal(t, "first", c.Warnings()[0].Reason)
	require.Equal(t, "second", c.Warnings()[1].Reason)
}

func TestWarning_RebaseShiftsLocation(t *testing.T) {
	w := Warning{Reason: "x", Location: fileoffset.Offset(5)}
	rebased := w.Rebase(fileoffset.Offset(100))
	require.Equal(t, uint64(105), *rebased.Location.Offset)
}

func TestSink_LogLimitHitWritesStableCode(t *testing.T) {
	var buf bytes.Buffer
	sink := NewSink(&buf)
	sink.LogLimitHit(CodeHitDepthCap, "exceeded depth", fileoffset.Offset(3), false)

	require.Contains(t, buf.String(), CodeHitDepthCap)
}
