package xmldom

import "github.com/arturoeanton/go-svgxml/registry"

// XMLDocument owns the Registry shared by every XMLNode it hands out.
// Destroying the document (by letting it become unreachable; there is no
// explicit destructor in Go) drops the entire tree, since nothing outside
// the document retains the Registry.
type XMLDocument struct {
	registry *registry.Registry
	root     registry.Entity
}

// NewDocument creates an empty document with a single root Document node.
func NewDocument() *XMLDocument {
	r := registry.NewRegistry()
	registry.CtxEmplace(r, newNamespaceContext())
	registry.CtxEmplace(r, newEntityDeclarationsContext())

	doc := &XMLDocument{registry: r}
	root := r.Create()
	registry.Emplace(r, root, &treeComponent{kind: KindDocument})
	doc.root = root
	return doc
}

// Root returns the document's root node.
func (d *XMLDocument) Root() XMLNode {
	return XMLNode{doc: d, entity: d.root}
}

// Registry exposes the underlying registry, used by the xmlparser and
// svgparser packages to attach their own components directly.
func (d *XMLDocument) Registry() *registry.Registry { return d.registry }

func (d *XMLDocument) namespaceCtx() *namespaceContext {
	return registry.CtxGet[*namespaceContext](d.registry)
}

func (d *XMLDocument) entityDecls() *entityDeclarationsContext {
	return registry.CtxGet[*entityDeclarationsContext](d.registry)
}

// DeclareGeneralEntity records a DOCTYPE internal-subset general entity
// declaration (<!ENTITY name "value">), used by the parser when
// parseCustomEntities is enabled.
func (d *XMLDocument) DeclareGeneralEntity(name, replacement string, isExternal bool) {
	d.entityDecls().general[name] = entityDeclaration{replacementText: replacement, isExternal: isExternal}
}

// DeclareParameterEntity records a DTD parameter entity declaration
// (<!ENTITY % name "value">).
func (d *XMLDocument) DeclareParameterEntity(name, replacement string, isExternal bool) {
	d.entityDecls().parameter[name] = entityDeclaration{replacementText: replacement, isExternal: isExternal}
}

// LookupGeneralEntity returns a previously declared general entity's
// replacement text and external flag.
func (d *XMLDocument) LookupGeneralEntity(name string) (replacement string, isExternal bool, ok bool) {
	decl, ok := d.entityDecls().general[name]
	return decl.replacementText, decl.isExternal, ok
}

// LookupParameterEntity returns a previously declared parameter entity's
// replacement text and external flag.
func (d *XMLDocument) LookupParameterEntity(name string) (replacement string, isExternal bool, ok bool) {
	decl, ok := d.entityDecls().parameter[name]
	return decl.replacementText, decl.isExternal, ok
}

// CreateElement creates a detached element node with the given tag name.
func (d *XMLDocument) CreateElement(tagName QualifiedName) XMLNode {
	e := d.registry.Create()
	registry.Emplace(d.registry, e, &treeComponent{kind: KindElement, name: tagName})
	registry.Emplace(d.registry, e, newAttributesComponent())
	return XMLNode{doc: d, entity: e}
}

// CreateTextNode creates a detached Data node.
func (d *XMLDocument) CreateTextNode(value string) XMLNode {
	return d.createLeaf(KindData, value)
}

// CreateCDataNode creates a detached CData node.
func (d *XMLDocument) CreateCDataNode(value string) XMLNode {
	return d.createLeaf(KindCData, value)
}

// CreateCommentNode creates a detached Comment node.
func (d *XMLDocument) CreateCommentNode(value string) XMLNode {
	return d.createLeaf(KindComment, value)
}

// CreateDocTypeNode creates a detached DocType node.
func (d *XMLDocument) CreateDocTypeNode(value string) XMLNode {
	return d.createLeaf(KindDocType, value)
}

// CreateProcessingInstructionNode creates a detached PI node with target
// and body.
func (d *XMLDocument) CreateProcessingInstructionNode(target, value string) XMLNode {
	e := d.registry.Create()
	registry.Emplace(d.registry, e, &treeComponent{kind: KindProcessingInstruction, name: NewName(target)})
	registry.Emplace(d.registry, e, &valueComponent{value: value, hasValue: true})
	return XMLNode{doc: d, entity: e}
}

func (d *XMLDocument) createLeaf(kind NodeKind, value string) XMLNode {
	e := d.registry.Create()
	registry.Emplace(d.registry, e, &treeComponent{kind: kind})
	registry.Emplace(d.registry, e, &valueComponent{value: value, hasValue: true})
	return XMLNode{doc: d, entity: e}
}
