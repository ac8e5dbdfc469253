package svg

import (
	"github.com/arturoeanton/go-svgxml/registry"
	"github.com/arturoeanton/go-svgxml/xmldom"
)

// SVGElement is a thin handle over an xmldom.XMLNode: the registry/entity
// pair the node already carries, plus the ElementType discriminant the
// svgparser facade attaches when it constructs the element. Subtype
// methods live on the typed views (Rect, Circle, ...) returned by the
// Cast-family constructors below: casting to one requires first checking
// Isa against the same discriminant.
type SVGElement struct {
	Node xmldom.XMLNode
}

// NewSVGElement wraps an already-constructed xmldom node as an SVG
// element handle. The caller is responsible for having attached (or not
// yet attached) the ElementType component.
func NewSVGElement(node xmldom.XMLNode) SVGElement {
	return SVGElement{Node: node}
}

// Entity returns the underlying entity id.
func (e SVGElement) Entity() registry.Entity { return e.Node.Entity() }

// Registry returns the owning document's registry.
func (e SVGElement) Registry() *registry.Registry { return e.Node.Registry() }

// Type returns the element's discriminant, or TypeUnknown if the parser
// never attached one (e.g. a non-SVG node wrapped by mistake).
func (e SVGElement) Type() ElementType {
	t, ok := registry.TryGet[ElementType](e.Registry(), e.Entity())
	if !ok {
		return TypeUnknown
	}
	return t
}

// Isa reports whether e was constructed as kind t.
func (e SVGElement) Isa(t ElementType) bool { return e.Type() == t }

// SetType attaches or overwrites the element's discriminant, called once
// by svgparser when it constructs the typed element.
func (e SVGElement) SetType(t ElementType) {
	registry.Emplace(e.Registry(), e.Entity(), t)
}

// base returns (creating if absent) the universal-attribute component
// every SVG element carries regardless of its ElementType.
func (e SVGElement) base() *baseComponent {
	b, ok := registry.TryGet[*baseComponent](e.Registry(), e.Entity())
	if !ok {
		b = &baseComponent{}
		registry.Emplace(e.Registry(), e.Entity(), b)
	}
	return b
}

// baseComponent stores the three universal attributes that always apply
// and never produce a presentation-attribute error — id, class, and the
// raw style attribute text (the CSS cascade that consumes
// it is an external collaborator) — plus verbatim storage for unknown
// attributes so CSS presentation-attribute matchers can still see them
// even when they failed typed parsing.
type baseComponent struct {
	id         string
	classList  []string
	styleAttr  string
	rawAttrs   map[string]string
}

// SetID sets the id attribute.
func (e SVGElement) SetID(id string) { e.base().id = id }

// ID returns the id attribute.
func (e SVGElement) ID() string { return e.base().id }

// SetClassList sets the parsed class attribute (whitespace-separated
// tokens).
func (e SVGElement) SetClassList(classes []string) { e.base().classList = classes }

// ClassList returns the parsed class attribute tokens.
func (e SVGElement) ClassList() []string { return e.base().classList }

// SetStyleAttr sets the raw (unparsed) style attribute text; the CSS
// subsystem that turns it into declarations is an external collaborator.
func (e SVGElement) SetStyleAttr(style string) { e.base().styleAttr = style }

// StyleAttr returns the raw style attribute text.
func (e SVGElement) StyleAttr() string { return e.base().styleAttr }

// SetRawAttribute stores an attribute's value verbatim without typed
// parsing, used for unknown presentation-style attributes and (when
// disableUserAttributes is false) unknown non-presentation attributes.
func (e SVGElement) SetRawAttribute(name, value string) {
	b := e.base()
	if b.rawAttrs == nil {
		b.rawAttrs = make(map[string]string)
	}
	b.rawAttrs[name] = value
}

// RawAttribute returns a verbatim-stored attribute value.
func (e SVGElement) RawAttribute(name string) (string, bool) {
	b := e.base()
	if b.rawAttrs == nil {
		return "", false
	}
	v, ok := b.rawAttrs[name]
	return v, ok
}

// StyleProvider is the minimal contract svgparser and SVGElement need from
// an external CSS/style subsystem: resolving an element's computed style
// after the cascade has run.
type StyleProvider interface {
	ComputedStyle(e SVGElement) (any, bool)
}

// SelectorMatcher is the minimal contract needed from an external CSS
// selector engine to answer querySelector.
type SelectorMatcher interface {
	Matches(e SVGElement, selector string) bool
	FirstMatch(root SVGElement, selector string) (SVGElement, bool)
}

// QuerySelector returns the first element in the subtree rooted at e that
// satisfies selector, as reported by matcher.FirstMatch. Both the subtree
// walk and the CSS matching are done by matcher; this method only
// delegates.
func (e SVGElement) QuerySelector(matcher SelectorMatcher, selector string) (SVGElement, bool) {
	if matcher == nil {
		return SVGElement{}, false
	}
	return matcher.FirstMatch(e, selector)
}

// GetComputedStyle delegates to provider, an external collaborator
// representing the style cascade this module does not implement.
func (e SVGElement) GetComputedStyle(provider StyleProvider) (any, bool) {
	if provider == nil {
		return nil, false
	}
	return provider.ComputedStyle(e)
}

// Cast returns the typed component of type T attached to e, and whether
// it was present. It does not check the discriminant; the typed view
// constructors (AsRect, AsCircle, ...) check e.Isa(expected kind) instead
// and do not go through Cast.
func Cast[T any](e SVGElement) (T, bool) {
	return registry.TryGet[T](e.Registry(), e.Entity())
}

// emplace attaches component value of type T to e, used by the typed
// constructors below when building a new element of that kind.
func emplace[T any](e SVGElement, value T) {
	registry.Emplace(e.Registry(), e.Entity(), value)
}

// mustComponent fetches the component of type T on e, panicking if it is
// missing. Typed views only call this after their AsXxx constructor has
// already verified e.Isa(kind) and attached the component, so absence
// indicates a constructor bug rather than caller error.
func mustComponent[T any](e SVGElement) T {
	return registry.Get[T](e.Registry(), e.Entity())
}
