// Package xmldom implements the DOM facade layered over the registry
// package's entity-component store: XMLNode is a thin handle
// (registry, entity) pair, and tree/attribute/namespace state lives in
// per-entity components rather than in XMLNode itself.
//
// === Concurrency ===
// Exactly like the registry it sits on, this package is single-threaded.
// No method here takes a lock; callers sharing a Document across
// goroutines must synchronize externally.
package xmldom

import "strings"

// QualifiedName is an XML attribute/element name with an optional
// namespace prefix. The zero value is the unprefixed empty name.
type QualifiedName struct {
	NamespacePrefix string
	Name            string
}

// NewName builds an unprefixed qualified name.
func NewName(name string) QualifiedName {
	return QualifiedName{Name: name}
}

// NewPrefixedName builds a qualified name with an explicit namespace
// prefix.
func NewPrefixedName(prefix, name string) QualifiedName {
	return QualifiedName{NamespacePrefix: prefix, Name: name}
}

// String renders the name in XML syntax ("ns:name").
func (q QualifiedName) String() string {
	if q.NamespacePrefix == "" {
		return q.Name
	}
	return q.NamespacePrefix + ":" + q.Name
}

// CssSyntax renders the name in CSS selector syntax ("ns|name").
func (q QualifiedName) CssSyntax() string {
	if q.NamespacePrefix == "" {
		return q.Name
	}
	return q.NamespacePrefix + "|" + q.Name
}

// Matches reports whether q satisfies the matcher, honoring the "*"
// namespace wildcard documented for findMatchingAttributes: a matcher
// whose NamespacePrefix is "*" matches q regardless of q's namespace, as
// long as the local names are equal.
func (matcher QualifiedName) Matches(q QualifiedName) bool {
	if matcher.Name != q.Name {
		return false
	}
	if matcher.NamespacePrefix == "*" {
		return true
	}
	return matcher.NamespacePrefix == q.NamespacePrefix
}

// ParseQName splits a raw "prefix:local" token into a QualifiedName. A
// name with no colon has an empty prefix (the default namespace).
func ParseQName(raw string) QualifiedName {
	if idx := strings.IndexByte(raw, ':'); idx >= 0 {
		return QualifiedName{NamespacePrefix: raw[:idx], Name: raw[idx+1:]}
	}
	return QualifiedName{Name: raw}
}
