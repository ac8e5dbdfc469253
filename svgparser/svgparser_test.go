package svgparser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arturoeanton/go-svgxml/diagnostics"
	"github.com/arturoeanton/go-svgxml/svg"
	"github.com/arturoeanton/go-svgxml/xmlparser"
)

// ============================================================================
// 1. ROOT VALIDATION
// ============================================================================

func TestParse_AcceptsSVGRootInNamespace(t *testing.T) {
	src := `<svg id='x' xmlns='http://www.w3.org/2000/svg'><rect/></svg>`
	res := xmlparser.Parse(src, nil, nil)
	require.False(t, res.HasError())

	warnings := diagnostics.NewCollector()
	root, err := Parse(res.Result(), warnings, nil)
	require.NoError(t, err)
	require.Equal(t, svg.TypeSVG, root.Type())
	require.Equal(t, "x", root.ID())
	require.Empty(t, warnings.Warnings())
}

func TestParse_RejectsNonSVGRootTag(t *testing.T) {
	src := `<notsvg xmlns='http://www.w3.org/2000/svg'/>`
	res := xmlparser.Parse(src, nil, nil)
	require.False(t, res.HasError())

	_, err := Parse(res.Result(), nil, nil)
	require.Error(t, err)
}

func TestParse_RejectsWrongNamespace(t *testing.T) {
	src := `<svg xmlns='http://example.com/not-svg'/>`
	res := xmlparser.Parse(src, nil, nil)
	require.False(t, res.HasError())

	_, err := Parse(res.Result(), nil, nil)
	require.Error(t, err)
}

func TestParse_InlineSVGAllowsMissingNamespace(t *testing.T) {
	const src = `<svg><rect/></svg>`

	inline := xmlparser.Parse(src, nil, nil)
	require.False(t, inline.HasError())
	root, err := Parse(inline.Result(), nil, nil, WithInlineSVG(true))
	require.NoError(t, err)
	require.Equal(t, svg.TypeSVG, root.Type())

	strict := xmlparser.Parse(src, nil, nil)
	require.False(t, strict.HasError())
	_, err = Parse(strict.Result(), nil, nil)
	require.Error(t, err, "without ParseAsInlineSVG a fresh copy of the same document must be rejected")
}

// ============================================================================
// 2. ELEMENT CONSTRUCTION + ATTRIBUTE DISPATCH
// ============================================================================

func TestParse_BuildsTypedShapeTree(t *testing.T) {
	src := `<svg xmlns='http://www.w3.org/2000/svg'>
		<rect x='1' y='2' width='3' height='4'/>
		<circle cx='5' cy='6' r='7'/>
	</svg>`
	res := xmlparser.Parse(src, nil, nil)
	require.False(t, res.HasError())

	root, err := Parse(res.Result(), nil, nil)
	require.NoError(t, err)

	rootNode := root.Node
	child, ok := rootNode.FirstChild()
	require.True(t, ok)

	rectEl := svg.NewSVGElement(child)
	rect, ok := svg.AsRect(rectEl)
	require.True(t, ok)
	require.Equal(t, svg.Length{Value: 1}, rect.X())
	require.Equal(t, svg.Length{Value: 4}, rect.Height())

	sibling, ok := child.NextSibling()
	require.True(t, ok)
	circleEl := svg.NewSVGElement(sibling)
	circle, ok := svg.AsCircle(circleEl)
	require.True(t, ok)
	require.Equal(t, svg.Length{Value: 7}, circle.R())
}

func TestParse_DropsNonSVGNamespaceElementWithWarning(t *testing.T) {
	src := `<svg xmlns='http://www.w3.org/2000/svg' xmlns:html='http://www.w3.org/1999/xhtml'>
		<html:div/>
	</svg>`
	res := xmlparser.Parse(src, nil, nil)
	require.False(t, res.HasError())

	warnings := diagnostics.NewCollector()
	_, err := Parse(res.Result(), warnings, nil)
	require.NoError(t, err)
	require.NotEmpty(t, warnings.Warnings())
}

func TestParse_InvalidPresentationAttributeValueIsWarningNotFatal(t *testing.T) {
	src := `<svg xmlns='http://www.w3.org/2000/svg'><rect width='bogus'/></svg>`
	res := xmlparser.Parse(src, nil, nil)
	require.False(t, res.HasError())

	warnings := diagnostics.NewCollector()
	root, err := Parse(res.Result(), warnings, nil)
	require.NoError(t, err)
	require.NotEmpty(t, warnings.Warnings())

	child, _ := root.Node.FirstChild()
	rect, _ := svg.AsRect(svg.NewSVGElement(child))
	raw, ok := rect.RawAttribute("width")
	require.True(t, ok)
	require.Equal(t, "bogus", raw)
}

func TestParse_UnknownAttributeDroppedWhenUserAttributesDisabled(t *testing.T) {
	src := `<svg xmlns='http://www.w3.org/2000/svg'><rect data-foo='bar'/></svg>`
	res := xmlparser.Parse(src, nil, nil)
	require.False(t, res.HasError())

	warnings := diagnostics.NewCollector()
	root, err := Parse(res.Result(), warnings, nil, WithUserAttributesDisabled(true))
	require.NoError(t, err)
	require.NotEmpty(t, warnings.Warnings())

	child, _ := root.Node.FirstChild()
	rect := svg.NewSVGElement(child)
	_, ok := rect.RawAttribute("data-foo")
	require.False(t, ok)
}

func TestParse_UnknownAttributeKeptWhenUserAttributesEnabled(t *testing.T) {
	src := `<svg xmlns='http://www.w3.org/2000/svg'><rect data-foo='bar'/></svg>`
	res := xmlparser.Parse(src, nil, nil)
	require.False(t, res.HasError())

	root, err := Parse(res.Result(), nil, nil, WithUserAttributesDisabled(false))
	require.NoError(t, err)

	child, _ := root.Node.FirstChild()
	rect := svg.NewSVGElement(child)
	raw, ok := rect.RawAttribute("data-foo")
	require.True(t, ok)
	require.Equal(t, "bar", raw)
}

// ============================================================================
// 3. STYLE ELEMENT
// ============================================================================

func TestParse_StyleElementCapturesCSSVerbatim(t *testing.T) {
	src := `<svg xmlns='http://www.w3.org/2000/svg'><style>rect { fill: red; }</style></svg>`
	res := xmlparser.Parse(src, nil, nil)
	require.False(t, res.HasError())

	root, err := Parse(res.Result(), nil, nil)
	require.NoError(t, err)

	child, ok := root.Node.FirstChild()
	require.True(t, ok)
	style, ok := svg.AsStyle(svg.NewSVGElement(child))
	require.True(t, ok)
	css, accepted := style.CSS()
	require.True(t, accepted)
	require.Equal(t, "rect { fill: red; }", css)
}

func TestParse_StyleElementWarnsOnUnsupportedType(t *testing.T) {
	src := `<svg xmlns='http://www.w3.org/2000/svg'><style type='text/javascript'>x</style></svg>`
	res := xmlparser.Parse(src, nil, nil)
	require.False(t, res.HasError())

	warnings := diagnostics.NewCollector()
	_, err := Parse(res.Result(), warnings, nil)
	require.NoError(t, err)
	require.NotEmpty(t, warnings.Warnings())
}

// ============================================================================
// 4. EXPERIMENTAL ELEMENTS
// ============================================================================

func TestParse_TextRequiresExperimentalFlag(t *testing.T) {
	src := `<svg xmlns='http://www.w3.org/2000/svg'><text x='1' y='2'/></svg>`
	res := xmlparser.Parse(src, nil, nil)
	require.False(t, res.HasError())

	warnings := diagnostics.NewCollector()
	root, err := Parse(res.Result(), warnings, nil)
	require.NoError(t, err)
	child, _ := root.Node.FirstChild()
	require.Equal(t, svg.TypeUnknown, svg.NewSVGElement(child).Type())
	require.NotEmpty(t, warnings.Warnings())

	root, err = Parse(res.Result(), nil, nil, WithExperimental(true))
	require.NoError(t, err)
	child, _ = root.Node.FirstChild()
	require.Equal(t, svg.TypeText, svg.NewSVGElement(child).Type())
}
