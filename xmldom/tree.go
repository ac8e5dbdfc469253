package xmldom

import "github.com/arturoeanton/go-svgxml/registry"

// treeInsertBefore splices newNode into parent's child list immediately
// before referenceNode (referenceNode == 0 means "append"). If newNode
// already has a parent, it is detached first. Inserting newNode as an
// ancestor of itself is undefined behavior: this implementation does not
// detect cycles, callers are responsible for not creating them.
func treeInsertBefore(r *registry.Registry, parent, newNode, referenceNode registry.Entity) {
	treeDetach(r, newNode)

	parentTree := registry.Get[*treeComponent](r, parent)
	newTree := registry.Get[*treeComponent](r, newNode)
	newTree.parent = parent

	if referenceNode == 0 {
		// Append: splice after the current last child.
		prev := parentTree.lastChild
		newTree.previousSibling = prev
		newTree.nextSibling = 0
		if prev != 0 {
			registry.Get[*treeComponent](r, prev).nextSibling = newNode
		} else {
			parentTree.firstChild = newNode
		}
		parentTree.lastChild = newNode
		return
	}

	refTree := registry.Get[*treeComponent](r, referenceNode)
	prev := refTree.previousSibling
	newTree.previousSibling = prev
	newTree.nextSibling = referenceNode
	refTree.previousSibling = newNode
	if prev != 0 {
		registry.Get[*treeComponent](r, prev).nextSibling = newNode
	} else {
		parentTree.firstChild = newNode
	}
}

// treeAppendChild appends child to parent's child list.
func treeAppendChild(r *registry.Registry, parent, child registry.Entity) {
	treeInsertBefore(r, parent, child, 0)
}

// treeReplaceChild replaces oldChild with newChild in parent's child list.
func treeReplaceChild(r *registry.Registry, parent, newChild, oldChild registry.Entity) {
	treeInsertBefore(r, parent, newChild, oldChild)
	treeRemoveChild(r, parent, oldChild)
}

// treeRemoveChild detaches child from parent's child list.
func treeRemoveChild(r *registry.Registry, parent, child registry.Entity) {
	childTree := registry.Get[*treeComponent](r, child)
	parentTree := registry.Get[*treeComponent](r, parent)

	prev := childTree.previousSibling
	next := childTree.nextSibling

	if prev != 0 {
		registry.Get[*treeComponent](r, prev).nextSibling = next
	} else {
		parentTree.firstChild = next
	}
	if next != 0 {
		registry.Get[*treeComponent](r, next).previousSibling = prev
	} else {
		parentTree.lastChild = prev
	}

	childTree.parent = 0
	childTree.previousSibling = 0
	childTree.nextSibling = 0
}

// treeDetach removes node from its parent's child list, if it has one.
func treeDetach(r *registry.Registry, node registry.Entity) {
	nodeTree := registry.Get[*treeComponent](r, node)
	if nodeTree.parent == 0 {
		return
	}
	treeRemoveChild(r, nodeTree.parent, node)
}
