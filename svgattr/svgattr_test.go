package svgattr

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arturoeanton/go-svgxml/svg"
	"github.com/arturoeanton/go-svgxml/xmldom"
)

func newHandle(t *testing.T, tag string) svg.SVGElement {
	t.Helper()
	doc := xmldom.NewDocument()
	node := doc.CreateElement(xmldom.NewName(tag))
	doc.Root().AppendChild(node)
	return svg.NewSVGElement(node)
}

// ============================================================================
// 1. LENGTH / NUMBER PARSING
// ============================================================================

func TestParseLength_UnitsAndBareNumbers(t *testing.T) {
	cases := map[string]svg.Length{
		"10":     {Value: 10, Unit: svg.UnitNumber},
		"10px":   {Value: 10, Unit: svg.UnitPx},
		"50%":    {Value: 50, Unit: svg.UnitPercent},
		"-3.5em": {Value: -3.5, Unit: svg.UnitEm},
		"1e2":    {Value: 100, Unit: svg.UnitNumber},
	}
	for raw, want := range cases {
		got, err := ParseLengthAttribute(raw)
		require.NoError(t, err, raw)
		require.Equal(t, want, got, raw)
	}
}

func TestParseLength_RejectsGarbage(t *testing.T) {
	_, err := ParseLengthAttribute("abc")
	require.Error(t, err)

	_, err = ParseLengthAttribute("10xyz")
	require.Error(t, err)
}

// ============================================================================
// 2. COMPOUND VALUE PARSERS
// ============================================================================

func TestParseViewBox(t *testing.T) {
	vb, err := ParseViewBox("0 0 100 50")
	require.NoError(t, err)
	require.Equal(t, svg.ViewBox{MinX: 0, MinY: 0, Width: 100, Height: 50}, vb)

	vb, err = ParseViewBox("0,0,100,50")
	require.NoError(t, err)
	require.Equal(t, svg.ViewBox{MinX: 0, MinY: 0, Width: 100, Height: 50}, vb)

	_, err = ParseViewBox("0 0 100")
	require.Error(t, err)
}

func TestParsePreserveAspectRatio(t *testing.T) {
	par, err := ParsePreserveAspectRatio("xMinYMax slice")
	require.NoError(t, err)
	require.Equal(t, svg.PreserveAspectRatio{Align: svg.AlignXMinYMax, MeetOrSlice: svg.Slice}, par)

	par, err = ParsePreserveAspectRatio("none")
	require.NoError(t, err)
	require.Equal(t, svg.Meet, par.MeetOrSlice)
}

func TestParsePoints_PartialParseIsNonFatal(t *testing.T) {
	pts, ok := ParsePoints("0,0 10,10 20,20")
	require.True(t, ok)
	require.Len(t, pts, 3)

	pts, ok = ParsePoints("0,0 10,10 bogus")
	require.False(t, ok)
	require.Len(t, pts, 2)
}

func TestParseSpreadMethod(t *testing.T) {
	s, err := ParseSpreadMethod("reflect")
	require.NoError(t, err)
	require.Equal(t, svg.SpreadReflect, s)

	_, err = ParseSpreadMethod("bogus")
	require.Error(t, err)
}

func TestParseOrient(t *testing.T) {
	o, err := ParseOrient("auto")
	require.NoError(t, err)
	require.Equal(t, svg.OrientAuto, o.Kind)

	o, err = ParseOrient("45")
	require.NoError(t, err)
	require.Equal(t, svg.OrientAngle, o.Kind)
	require.InDelta(t, 45.0, o.AngleDegrees, 1e-9)

	o, err = ParseOrient("90deg")
	require.NoError(t, err)
	require.InDelta(t, 90.0, o.AngleDegrees, 1e-9)
}

func TestParseStdDeviation(t *testing.T) {
	x, y, err := ParseStdDeviation("3")
	require.NoError(t, err)
	require.InDelta(t, 3.0, x, 1e-9)
	require.InDelta(t, 3.0, y, 1e-9)

	x, y, err = ParseStdDeviation("3 5")
	require.NoError(t, err)
	require.InDelta(t, 3.0, x, 1e-9)
	require.InDelta(t, 5.0, y, 1e-9)
}

func TestParseOffset_ClampsToUnitInterval(t *testing.T) {
	v, err := ParseOffset("150%")
	require.NoError(t, err)
	require.InDelta(t, 1.0, v, 1e-9)

	v, err = ParseOffset("-0.5")
	require.NoError(t, err)
	require.InDelta(t, 0.0, v, 1e-9)
}

// ============================================================================
// 3. DISPATCH
// ============================================================================

func TestDispatch_UniversalAttributesNeverWarn(t *testing.T) {
	e := newHandle(t, "rect")
	svg.NewRect(e)
	result := Dispatch(e, "id", "shape-1")
	require.True(t, result.Handled)
	require.NoError(t, result.Warning)
	require.Equal(t, "shape-1", e.ID())
}

func TestDispatch_PresentationAttributeFailureIsWarningNotFatal(t *testing.T) {
	e := newHandle(t, "rect")
	r := svg.NewRect(e)
	result := Dispatch(e, "width", "not-a-length")
	require.True(t, result.Handled)
	require.Error(t, result.Warning)

	raw, ok := e.RawAttribute("width")
	require.True(t, ok)
	require.Equal(t, "not-a-length", raw)
	// Failed setter leaves the typed component at its zero value.
	require.Equal(t, svg.Length{}, r.Width())
}

func TestDispatch_UnknownAttributeIsUnhandled(t *testing.T) {
	e := newHandle(t, "rect")
	svg.NewRect(e)
	result := Dispatch(e, "frobnicate", "1")
	require.False(t, result.Handled)
}

func TestDispatch_Gradient(t *testing.T) {
	e := newHandle(t, "linearGradient")
	g := svg.NewLinearGradient(e)
	Dispatch(e, "spreadMethod", "repeat")
	require.Equal(t, svg.SpreadRepeat, g.SpreadMethod())

	Dispatch(e, "gradientUnits", "userSpaceOnUse")
	require.Equal(t, svg.UnitsUserSpaceOnUse, g.GradientUnits())
}

func TestDispatch_Stop(t *testing.T) {
	e := newHandle(t, "stop")
	s := svg.NewStop(e)
	Dispatch(e, "offset", "50%")
	require.InDelta(t, 0.5, s.Offset(), 1e-9)
}
