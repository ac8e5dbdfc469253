package svg

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arturoeanton/go-svgxml/xmldom"
)

func newHandle(t *testing.T, tag string) SVGElement {
	t.Helper()
	doc := xmldom.NewDocument()
	node := doc.CreateElement(xmldom.NewName(tag))
	doc.Root().AppendChild(node)
	return NewSVGElement(node)
}

// ============================================================================
// 1. DISCRIMINANT + CAST
// ============================================================================

func TestSVGElement_UnattachedTypeIsUnknown(t *testing.T) {
	e := newHandle(t, "rect")
	require.Equal(t, TypeUnknown, e.Type())
}

func TestRect_CastRequiresIsa(t *testing.T) {
	e := newHandle(t, "rect")
	_, ok := AsRect(e)
	require.False(t, ok)

	rect := NewRect(e)
	require.True(t, e.Isa(TypeRect))
	rect.SetX(Length{Value: 1})
	rect.SetWidth(Length{Value: 10, Unit: UnitPercent})

	again, ok := AsRect(e)
	require.True(t, ok)
	require.Equal(t, Length{Value: 1}, again.X())
	require.Equal(t, Length{Value: 10, Unit: UnitPercent}, again.Width())

	_, isCircle := AsCircle(e)
	require.False(t, isCircle)
}

func TestRect_OptionalRadii(t *testing.T) {
	e := newHandle(t, "rect")
	rect := NewRect(e)
	_, ok := rect.Rx()
	require.False(t, ok)

	rect.SetRx(Length{Value: 2})
	v, ok := rect.Rx()
	require.True(t, ok)
	require.Equal(t, Length{Value: 2}, v)
}

func TestCircle_Setters(t *testing.T) {
	e := newHandle(t, "circle")
	c := NewCircle(e)
	c.SetCx(Length{Value: 5})
	c.SetCy(Length{Value: 6})
	c.SetR(Length{Value: 7})
	require.Equal(t, Length{Value: 5}, c.Cx())
	require.Equal(t, Length{Value: 6}, c.Cy())
	require.Equal(t, Length{Value: 7}, c.R())
}

func TestPolygon_PointsRoundTrip(t *testing.T) {
	e := newHandle(t, "polygon")
	p := NewPolygon(e)
	pts := []Point{{X: 0, Y: 0}, {X: 1, Y: 1}}
	p.SetPoints(pts)
	require.Equal(t, pts, p.Points())
}

// ============================================================================
// 2. UNIVERSAL ATTRIBUTES
// ============================================================================

func TestSVGElement_UniversalAttributesApplyToAnyType(t *testing.T) {
	e := newHandle(t, "rect")
	NewRect(e)
	e.SetID("shape-1")
	e.SetClassList([]string{"a", "b"})
	e.SetStyleAttr("fill:red")

	require.Equal(t, "shape-1", e.ID())
	require.Equal(t, []string{"a", "b"}, e.ClassList())
	require.Equal(t, "fill:red", e.StyleAttr())
}

func TestSVGElement_RawAttributeStorage(t *testing.T) {
	e := newHandle(t, "rect")
	NewRect(e)
	_, ok := e.RawAttribute("data-foo")
	require.False(t, ok)

	e.SetRawAttribute("data-foo", "bar")
	v, ok := e.RawAttribute("data-foo")
	require.True(t, ok)
	require.Equal(t, "bar", v)
}

// ============================================================================
// 3. GRADIENT / STOP / PATTERN
// ============================================================================

func TestLinearGradient_Defaults(t *testing.T) {
	e := newHandle(t, "linearGradient")
	g := NewLinearGradient(e)
	require.Equal(t, UnitsObjectBoundingBox, g.GradientUnits())
	require.Equal(t, SpreadPad, g.SpreadMethod())

	g.SetSpreadMethod(SpreadReflect)
	require.Equal(t, SpreadReflect, g.SpreadMethod())
}

func TestStop_OffsetAndColor(t *testing.T) {
	e := newHandle(t, "stop")
	s := NewStop(e)
	s.SetOffset(0.5)
	s.SetStopColor("#fff")
	require.InDelta(t, 0.5, s.Offset(), 1e-9)
	color, ok := s.StopColor()
	require.True(t, ok)
	require.Equal(t, "#fff", color)
}

// ============================================================================
// 4. STYLE ELEMENT
// ============================================================================

func TestStyle_AcceptsEmptyOrCSSType(t *testing.T) {
	e := newHandle(t, "style")
	s := NewStyle(e)
	s.SetCSS("rect { fill: red; }")
	css, ok := s.CSS()
	require.True(t, ok)
	require.Equal(t, "rect { fill: red; }", css)

	s.SetTypeAttr("text/javascript")
	_, ok = s.CSS()
	require.False(t, ok)
}

// ============================================================================
// 5. SVG ROOT VIEWPORT
// ============================================================================

func TestSVG_DefaultPreserveAspectRatio(t *testing.T) {
	e := newHandle(t, "svg")
	root := NewSVG(e)
	require.Equal(t, DefaultPreserveAspectRatio(), root.PreserveAspectRatio())

	root.SetViewBox(ViewBox{MinX: 0, MinY: 0, Width: 100, Height: 50})
	vb, ok := root.ViewBox()
	require.True(t, ok)
	require.Equal(t, 100.0, vb.Width)
}
