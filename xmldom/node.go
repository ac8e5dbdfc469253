package xmldom

import (
	"github.com/arturoeanton/go-svgxml/fileoffset"
	"github.com/arturoeanton/go-svgxml/registry"
)

// XMLNode is a thin handle over an Entity: all actual state — tree edges,
// attributes, value, spans — lives in components keyed by Entity in the
// owning Document's Registry. Copying an XMLNode copies the handle, not
// the node; two XMLNode values with the same Entity refer to the same
// node.
type XMLNode struct {
	doc    *XMLDocument
	entity registry.Entity
}

// Entity returns the underlying entity id, used by the SVG layer to attach
// its own typed components to the same node.
func (n XMLNode) Entity() registry.Entity { return n.entity }

// Registry returns the owning document's registry, used by the SVG layer
// for direct component access.
func (n XMLNode) Registry() *registry.Registry { return n.doc.registry }

// Document returns the owning XMLDocument.
func (n XMLNode) Document() *XMLDocument { return n.doc }

// Valid reports whether this handle refers to a live node.
func (n XMLNode) Valid() bool {
	return n.doc != nil && n.entity != 0 && n.doc.registry.Alive(n.entity)
}

func (n XMLNode) tree() *treeComponent {
	return registry.Get[*treeComponent](n.doc.registry, n.entity)
}

// Type returns the node's kind discriminant.
func (n XMLNode) Type() NodeKind {
	return n.tree().kind
}

// TagName returns the element's (or processing instruction's target's)
// qualified name. Empty for Data/CData/Comment/DocType nodes.
func (n XMLNode) TagName() QualifiedName {
	return n.tree().name
}

func (n XMLNode) wrap(e registry.Entity) (XMLNode, bool) {
	if e == 0 {
		return XMLNode{}, false
	}
	return XMLNode{doc: n.doc, entity: e}, true
}

// Parent returns this node's parent, if any.
func (n XMLNode) Parent() (XMLNode, bool) { return n.wrap(n.tree().parent) }

// FirstChild returns this node's first child, if any.
func (n XMLNode) FirstChild() (XMLNode, bool) { return n.wrap(n.tree().firstChild) }

// LastChild returns this node's last child, if any.
func (n XMLNode) LastChild() (XMLNode, bool) { return n.wrap(n.tree().lastChild) }

// PreviousSibling returns this node's previous sibling, if any.
func (n XMLNode) PreviousSibling() (XMLNode, bool) { return n.wrap(n.tree().previousSibling) }

// NextSibling returns this node's next sibling, if any.
func (n XMLNode) NextSibling() (XMLNode, bool) { return n.wrap(n.tree().nextSibling) }

func (n XMLNode) valueComp() *valueComponent {
	v, ok := registry.TryGet[*valueComponent](n.doc.registry, n.entity)
	if !ok {
		return nil
	}
	return v
}

// Value returns the node's text payload (Data/CData/Comment/DocType/PI
// body), if any.
func (n XMLNode) Value() (string, bool) {
	v := n.valueComp()
	if v == nil || !v.hasValue {
		return "", false
	}
	return v.value, true
}

// SetValue sets the node's text payload explicitly. On an element node the
// value is stored as given; it is not derived from or kept in sync with
// the element's data children.
func (n XMLNode) SetValue(value string) {
	v := n.valueComp()
	if v == nil {
		v = &valueComponent{}
		registry.Emplace(n.doc.registry, n.entity, v)
	}
	v.value = value
	v.hasValue = true
}

// GetNodeLocation returns the node's recorded source span, if the parser
// stored one (programmatically constructed nodes have none).
func (n XMLNode) GetNodeLocation() (fileoffset.FileOffsetRange, bool) {
	v := n.valueComp()
	if v == nil || v.nodeRange == nil {
		return fileoffset.FileOffsetRange{}, false
	}
	return *v.nodeRange, true
}

// SetNodeLocation records the node's source span; called by the parser
// while building the tree.
func (n XMLNode) SetNodeLocation(r fileoffset.FileOffsetRange) {
	v := n.valueComp()
	if v == nil {
		v = &valueComponent{}
		registry.Emplace(n.doc.registry, n.entity, v)
	}
	v.nodeRange = &r
}

// GetValueLocation returns the source span of the node's value text,
// excluding any surrounding delimiters (quotes, CDATA markers, etc.).
func (n XMLNode) GetValueLocation() (fileoffset.FileOffsetRange, bool) {
	v := n.valueComp()
	if v == nil || v.valueRange == nil {
		return fileoffset.FileOffsetRange{}, false
	}
	return *v.valueRange, true
}

// SetValueLocation records the value's source span.
func (n XMLNode) SetValueLocation(r fileoffset.FileOffsetRange) {
	v := n.valueComp()
	if v == nil {
		v = &valueComponent{}
		registry.Emplace(n.doc.registry, n.entity, v)
	}
	v.valueRange = &r
}

func (n XMLNode) attrs() *attributesComponent {
	a, ok := registry.TryGet[*attributesComponent](n.doc.registry, n.entity)
	if !ok {
		a = newAttributesComponent()
		registry.Emplace(n.doc.registry, n.entity, a)
	}
	return a
}

// HasAttribute reports whether name is set on this element.
func (n XMLNode) HasAttribute(name QualifiedName) bool {
	return n.attrs().hasAttribute(name)
}

// GetAttribute returns the value of name, if set.
func (n XMLNode) GetAttribute(name QualifiedName) (string, bool) {
	return n.attrs().getAttribute(name)
}

// Attributes returns every attribute's qualified name, in declaration
// order.
func (n XMLNode) Attributes() []QualifiedName {
	a := n.attrs()
	result := make([]QualifiedName, len(a.order))
	copy(result, a.order)
	return result
}

// FindMatchingAttributes returns every attribute name satisfying matcher,
// honoring the "*" namespace wildcard.
func (n XMLNode) FindMatchingAttributes(matcher QualifiedName) []QualifiedName {
	return n.attrs().findMatching(matcher)
}

// SetAttribute inserts or updates an attribute. If name declares an xmlns
// binding, the document's namespace context is updated to reflect the
// new URI.
func (n XMLNode) SetAttribute(name QualifiedName, value string) {
	n.attrs().setAttribute(name, value)
	if _, ok := prefixFor(name); ok {
		n.doc.namespaceCtx().addOverride(n.entity, name, value)
	}
}

// SetAttributeSpanned is the parser-facing variant of SetAttribute that
// additionally records the attribute's and value's source spans.
func (n XMLNode) SetAttributeSpanned(name QualifiedName, value string, attrSpan, valueSpan fileoffset.FileOffsetRange) {
	n.attrs().setAttributeSpanned(name, value, &attrSpan, &valueSpan)
	if _, ok := prefixFor(name); ok {
		n.doc.namespaceCtx().addOverride(n.entity, name, value)
	}
}

// GetAttributeSpan returns the recorded span of name's full token
// ("name=\"value\""), if the parser stored one.
func (n XMLNode) GetAttributeSpan(name QualifiedName) (fileoffset.FileOffsetRange, bool) {
	e, ok := n.attrs().byName[name]
	if !ok || e.attrSpan == nil {
		return fileoffset.FileOffsetRange{}, false
	}
	return *e.attrSpan, true
}

// GetAttributeValueSpan returns the recorded span of name's value text
// (excluding quotes), if the parser stored one.
func (n XMLNode) GetAttributeValueSpan(name QualifiedName) (fileoffset.FileOffsetRange, bool) {
	e, ok := n.attrs().byName[name]
	if !ok || e.valueSpan == nil {
		return fileoffset.FileOffsetRange{}, false
	}
	return *e.valueSpan, true
}

// RemoveAttribute removes name and any namespace binding it implied.
func (n XMLNode) RemoveAttribute(name QualifiedName) {
	if n.attrs().removeAttribute(name) {
		if _, ok := prefixFor(name); ok {
			n.doc.namespaceCtx().removeOverride(n.entity, name)
		}
	}
}

// GetNamespaceUri resolves prefix by walking ancestors (including this
// node) for the nearest xmlns binding.
func (n XMLNode) GetNamespaceUri(prefix string) (string, bool) {
	return n.doc.namespaceCtx().getNamespaceUri(n.doc.registry, n.entity, prefix)
}

// InsertBefore splices newNode into this node's children immediately
// before ref. ref's zero value means append.
func (n XMLNode) InsertBefore(newNode, ref XMLNode) {
	treeInsertBefore(n.doc.registry, n.entity, newNode.entity, ref.entity)
}

// AppendChild appends child to this node's children.
func (n XMLNode) AppendChild(child XMLNode) {
	treeAppendChild(n.doc.registry, n.entity, child.entity)
}

// ReplaceChild replaces oldChild with newChild among this node's children.
func (n XMLNode) ReplaceChild(newChild, oldChild XMLNode) {
	treeReplaceChild(n.doc.registry, n.entity, newChild.entity, oldChild.entity)
}

// RemoveChild detaches child from this node's children.
func (n XMLNode) RemoveChild(child XMLNode) {
	treeRemoveChild(n.doc.registry, n.entity, child.entity)
}

// Remove detaches this node from its parent, if any.
func (n XMLNode) Remove() {
	treeDetach(n.doc.registry, n.entity)
}
