package xmldom

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// ============================================================================
// 1. TREE MUTATION
// ============================================================================

func TestXMLNode_AppendChildLinksSiblingsSymmetrically(t *testing.T) {
	doc := NewDocument()
	root := doc.Root()
	a := doc.CreateElement(NewName("a"))
	b := doc.CreateElement(NewName("b"))

	root.AppendChild(a)
	root.AppendChild(b)

	first, ok := root.FirstChild()
	require.True(t, ok)
	require.Equal(t, a.Entity(), first.Entity())

	last, ok := root.LastChild()
	require.True(t, ok)
	require.Equal(t, b.Entity(), last.Entity())

	next, ok := a.NextSibling()
	require.True(t, ok)
	require.Equal(t, b.Entity(), next.Entity())

	prev, ok := b.PreviousSibling()
	require.True(t, ok)
	require.Equal(t, a.Entity(), prev.Entity())

	_, hasPrev := a.PreviousSibling()
	require.False(t, hasPrev)
	_, hasNext := b.NextSibling()
	require.False(t, hasNext)

	parent, ok := a.Parent()
	require.True(t, ok)
	require.Equal(t, root.Entity(), parent.Entity())
}

func TestXMLNode_InsertBeforeSplicesInMiddle(t *testing.T) {
	doc := NewDocument()
	root := doc.Root()
	a := doc.CreateElement(NewName("a"))
	c := doc.CreateElement(NewName("c"))
	b := doc.CreateElement(NewName("b"))

	root.AppendChild(a)
	root.AppendChild(c)
	root.InsertBefore(b, c)

	first, _ := root.FirstChild()
	mid, _ := first.NextSibling()
	last, _ := mid.NextSibling()

	require.Equal(t, a.Entity(), first.Entity())
	require.Equal(t, b.Entity(), mid.Entity())
	require.Equal(t, c.Entity(), last.Entity())
}

func TestXMLNode_InsertBeforeDetachesFromPreviousParent(t *testing.T) {
	doc := NewDocument()
	root := doc.Root()
	p1 := doc.CreateElement(NewName("p1"))
	p2 := doc.CreateElement(NewName("p2"))
	child := doc.CreateElement(NewName("child"))

	root.AppendChild(p1)
	root.AppendChild(p2)
	p1.AppendChild(child)

	p2.AppendChild(child)

	_, stillInP1 := p1.FirstChild()
	require.False(t, stillInP1)

	inP2, ok := p2.FirstChild()
	require.True(t, ok)
	require.Equal(t, child.Entity(), inP2.Entity())
}

func TestXMLNode_RemoveNodeDetachesFromParent(t *testing.T) {
	doc := NewDocument()
	root := doc.Root()
	a := doc.CreateElement(NewName("a"))
	b := doc.CreateElement(NewName("b"))
	root.AppendChild(a)
	root.AppendChild(b)

	a.Remove()

	first, ok := root.FirstChild()
	require.True(t, ok)
	require.Equal(t, b.Entity(), first.Entity())
	_, hasParent := a.Parent()
	require.False(t, hasParent)
}

func TestXMLNode_ReplaceChild(t *testing.T) {
	doc := NewDocument()
	root := doc.Root()
	old := doc.CreateElement(NewName("old"))
	replacement := doc.CreateElement(NewName("new"))
	root.AppendChild(old)

	root.ReplaceChild(replacement, old)

	first, ok := root.FirstChild()
	require.True(t, ok)
	require.Equal(t, replacement.Entity(), first.Entity())
	_, hasParent := old.Parent()
	require.False(t, hasParent)
}

// ============================================================================
// 2. ATTRIBUTES
// ============================================================================

func TestXMLNode_SetGetRemoveAttribute(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement(NewName("rect"))
	el.SetAttribute(NewName("id"), "x")

	v, ok := el.GetAttribute(NewName("id"))
	require.True(t, ok)
	require.Equal(t, "x", v)

	el.RemoveAttribute(NewName("id"))
	require.False(t, el.HasAttribute(NewName("id")))
}

func TestXMLNode_FindMatchingAttributesWildcardNamespace(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement(NewName("rect"))
	el.SetAttribute(NewPrefixedName("xlink", "href"), "#a")
	el.SetAttribute(NewName("href"), "#b")

	matches := el.FindMatchingAttributes(NewPrefixedName("*", "href"))
	require.Len(t, matches, 2)
}

// ============================================================================
// 3. NAMESPACE SCOPE RESOLUTION
// ============================================================================

func TestNamespace_ResolvesFromNearestAncestor(t *testing.T) {
	doc := NewDocument()
	root := doc.Root()
	svg := doc.CreateElement(NewName("svg"))
	rect := doc.CreateElement(NewName("rect"))

	root.AppendChild(svg)
	svg.AppendChild(rect)
	svg.SetAttribute(NewName("xmlns"), "http://www.w3.org/2000/svg")

	uri, ok := rect.GetNamespaceUri("")
	require.True(t, ok)
	require.Equal(t, "http://www.w3.org/2000/svg", uri)
}

func TestNamespace_UnboundPrefixReturnsFalse(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement(NewName("rect"))
	_, ok := el.GetNamespaceUri("nope")
	require.False(t, ok)
}

func TestNamespace_NearestAncestorWins(t *testing.T) {
	doc := NewDocument()
	root := doc.Root()
	outer := doc.CreateElement(NewName("outer"))
	inner := doc.CreateElement(NewName("inner"))
	leaf := doc.CreateElement(NewName("leaf"))

	root.AppendChild(outer)
	outer.AppendChild(inner)
	inner.AppendChild(leaf)

	outer.SetAttribute(NewName("xmlns"), "urn:outer")
	inner.SetAttribute(NewName("xmlns"), "urn:inner")

	uri, ok := leaf.GetNamespaceUri("")
	require.True(t, ok)
	require.Equal(t, "urn:inner", uri)
}

func TestNamespace_RemoveAttributeDropsBinding(t *testing.T) {
	doc := NewDocument()
	root := doc.Root()
	svg := doc.CreateElement(NewName("svg"))
	root.AppendChild(svg)
	svg.SetAttribute(NewName("xmlns"), "http://www.w3.org/2000/svg")

	svg.RemoveAttribute(NewName("xmlns"))

	_, ok := svg.GetNamespaceUri("")
	require.False(t, ok)
}

// ============================================================================
// 4. VALUE AND SPANS
// ============================================================================

func TestXMLNode_ValueRoundTrips(t *testing.T) {
	doc := NewDocument()
	text := doc.CreateTextNode("hello")

	v, ok := text.Value()
	require.True(t, ok)
	require.Equal(t, "hello", v)
}

func TestXMLNode_NodeLocationAbsentByDefault(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement(NewName("rect"))
	_, ok := el.GetNodeLocation()
	require.False(t, ok)
}
