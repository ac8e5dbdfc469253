package xmldom

import (
	"github.com/arturoeanton/go-svgxml/fileoffset"
	"github.com/arturoeanton/go-svgxml/registry"
)

// NodeKind discriminates the XMLNode variants. Which fields of the node's
// components are meaningful depends on the kind.
type NodeKind int

const (
	KindDocument NodeKind = iota
	KindElement
	KindData
	KindCData
	KindComment
	KindDocType
	KindProcessingInstruction
	KindXMLDeclaration
)

// treeComponent stores the tree structure of one node: parent/sibling/child
// edges as Entity ids rather than pointers, plus the node's kind and
// (for elements, PIs) its tag/target name.
type treeComponent struct {
	kind NodeKind
	name QualifiedName

	parent          registry.Entity
	firstChild      registry.Entity
	lastChild       registry.Entity
	previousSibling registry.Entity
	nextSibling     registry.Entity
}

// valueComponent stores the text payload for Data/CData/Comment/DocType/PI
// nodes, and the source spans every node kind records.
type valueComponent struct {
	value       string
	hasValue    bool
	nodeRange   *fileoffset.FileOffsetRange
	valueRange  *fileoffset.FileOffsetRange
}

// attrEntry is one stored attribute: its full qualified name (so reverse
// lookups and iteration can recover the declared form), its value, and the
// optional spans the parser recorded for it.
type attrEntry struct {
	name       QualifiedName
	value      string
	attrSpan   *fileoffset.FileOffsetRange
	valueSpan  *fileoffset.FileOffsetRange
}

// attributesComponent is an order-preserving collection of attributes plus
// a namespace-override counter so namespace resolution can skip entities
// with no xmlns attributes at all.
type attributesComponent struct {
	order                []QualifiedName
	byName               map[QualifiedName]*attrEntry
	numNamespaceOverrides int
}

func newAttributesComponent() *attributesComponent {
	return &attributesComponent{byName: make(map[QualifiedName]*attrEntry)}
}

func (a *attributesComponent) hasAttribute(name QualifiedName) bool {
	_, ok := a.byName[name]
	return ok
}

func (a *attributesComponent) getAttribute(name QualifiedName) (string, bool) {
	e, ok := a.byName[name]
	if !ok {
		return "", false
	}
	return e.value, true
}

func isNamespaceOverrideName(name QualifiedName) bool {
	return name.NamespacePrefix == "xmlns" || (name.NamespacePrefix == "" && name.Name == "xmlns")
}

func (a *attributesComponent) setAttribute(name QualifiedName, value string) {
	if existing, ok := a.byName[name]; ok {
		existing.value = value
		existing.attrSpan = nil
		existing.valueSpan = nil
		return
	}
	entry := &attrEntry{name: name, value: value}
	a.byName[name] = entry
	a.order = append(a.order, name)
	if isNamespaceOverrideName(name) {
		a.numNamespaceOverrides++
	}
}

func (a *attributesComponent) setAttributeSpanned(name QualifiedName, value string, attrSpan, valueSpan *fileoffset.FileOffsetRange) {
	a.setAttribute(name, value)
	entry := a.byName[name]
	entry.attrSpan = attrSpan
	entry.valueSpan = valueSpan
}

func (a *attributesComponent) removeAttribute(name QualifiedName) bool {
	if _, ok := a.byName[name]; !ok {
		return false
	}
	delete(a.byName, name)
	for i, n := range a.order {
		if n == name {
			a.order = append(a.order[:i], a.order[i+1:]...)
			break
		}
	}
	if isNamespaceOverrideName(name) {
		a.numNamespaceOverrides--
	}
	return true
}

func (a *attributesComponent) hasNamespaceOverrides() bool {
	return a.numNamespaceOverrides > 0
}

func (a *attributesComponent) findMatching(matcher QualifiedName) []QualifiedName {
	var result []QualifiedName
	for _, name := range a.order {
		if matcher.Matches(name) {
			result = append(result, name)
		}
	}
	return result
}

// namespaceEntry is one (entity, uri) binding for a prefix.
type namespaceEntry struct {
	entity registry.Entity
	uri    string
}

// namespaceContext resolves xmlns scope by ancestor walk. It is stored
// once per Registry via registry.CtxEmplace and reached through
// registry.CtxGet.
type namespaceContext struct {
	entries map[string][]namespaceEntry
}

func newNamespaceContext() *namespaceContext {
	return &namespaceContext{entries: make(map[string][]namespaceEntry)}
}

// prefixFor maps a namespace-declaration attribute name to the prefix it
// declares ("" for the bare "xmlns" attribute, the suffix for
// "xmlns:prefix").
func prefixFor(name QualifiedName) (string, bool) {
	if name.NamespacePrefix == "" && name.Name == "xmlns" {
		return "", true
	}
	if name.NamespacePrefix == "xmlns" {
		return name.Name, true
	}
	return "", false
}

func (c *namespaceContext) addOverride(entity registry.Entity, name QualifiedName, uri string) {
	prefix, ok := prefixFor(name)
	if !ok {
		return
	}
	c.removeEntityFromPrefix(prefix, entity)
	c.entries[prefix] = append(c.entries[prefix], namespaceEntry{entity: entity, uri: uri})
}

func (c *namespaceContext) removeOverride(entity registry.Entity, name QualifiedName) {
	prefix, ok := prefixFor(name)
	if !ok {
		return
	}
	c.removeEntityFromPrefix(prefix, entity)
}

func (c *namespaceContext) removeEntityFromPrefix(prefix string, entity registry.Entity) {
	list := c.entries[prefix]
	filtered := list[:0]
	for _, e := range list {
		if e.entity != entity {
			filtered = append(filtered, e)
		}
	}
	c.entries[prefix] = filtered
}

func (c *namespaceContext) removeEntity(entity registry.Entity) {
	for prefix := range c.entries {
		c.removeEntityFromPrefix(prefix, entity)
	}
}

// getNamespaceUri walks entity's ancestors (nearest first) looking for a
// binding of prefix, consulting only ancestors whose attributesComponent
// reports namespace overrides.
func (c *namespaceContext) getNamespaceUri(r *registry.Registry, entity registry.Entity, prefix string) (string, bool) {
	entries, ok := c.entries[prefix]
	if !ok || len(entries) == 0 {
		return "", false
	}

	for _, parent := range ancestorsIncludingSelf(r, entity) {
		attrs, ok := registry.TryGet[*attributesComponent](r, parent)
		if !ok || attrs == nil || !attrs.hasNamespaceOverrides() {
			continue
		}
		for _, e := range entries {
			if e.entity == parent {
				return e.uri, true
			}
		}
	}
	return "", false
}

func ancestorsIncludingSelf(r *registry.Registry, entity registry.Entity) []registry.Entity {
	var result []registry.Entity
	for entity != 0 {
		result = append(result, entity)
		tree, ok := registry.TryGet[*treeComponent](r, entity)
		if !ok {
			break
		}
		entity = tree.parent
	}
	return result
}

// entityDeclaration is one <!ENTITY> declaration: its replacement text and
// whether it referenced an external (SYSTEM/PUBLIC) identifier, which is
// never fetched.
type entityDeclaration struct {
	replacementText string
	isExternal      bool
}

// entityDeclarationsContext holds the general and parameter entity tables
// parsed from a DOCTYPE internal subset.
type entityDeclarationsContext struct {
	general   map[string]entityDeclaration
	parameter map[string]entityDeclaration
}

func newEntityDeclarationsContext() *entityDeclarationsContext {
	return &entityDeclarationsContext{
		general:   make(map[string]entityDeclaration),
		parameter: make(map[string]entityDeclaration),
	}
}
