// Package svgparser implements the SVGParser facade: a depth-first,
// pre-order walk of an xmldom.XMLDocument that enforces the SVG
// namespace, instantiates typed svg.SVGElement views keyed by tag name,
// and dispatches every attribute through svgattr.Dispatch, collecting
// per-attribute warnings rather than aborting on a bad value.
package svgparser

// Options controls the SVG-layer walk. Built via the functional-options
// idiom shared with xmlparser.Options.
type Options struct {
	// DisableUserAttributes warns and drops non-presentation attributes
	// instead of storing them verbatim. Default true.
	DisableUserAttributes bool
	// ParseAsInlineSVG relaxes the root namespace check: a root element
	// with no namespace URI is treated as the SVG namespace. Descendants
	// still require the SVG namespace; only the root gets this relaxation.
	ParseAsInlineSVG bool
	// EnableExperimental exposes elements marked experimental (text).
	EnableExperimental bool
	// Source is the document's full source buffer, used only as a
	// fallback so warnAttr can recover an attribute's span on demand
	// (via xmlparser.ResolveAttributeSpan) when the parser did not record
	// it eagerly. Leaving it empty just widens warning locations to the
	// owning element's span instead of the attribute's own.
	Source string
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		DisableUserAttributes: true,
		ParseAsInlineSVG:      false,
		EnableExperimental:    false,
	}
}

// Option mutates an in-progress Options value.
type Option func(*Options)

// WithUserAttributesDisabled toggles whether unknown non-presentation
// attributes are warned-and-dropped (true) or stored verbatim (false).
func WithUserAttributesDisabled(disabled bool) Option {
	return func(o *Options) { o.DisableUserAttributes = disabled }
}

// WithInlineSVG toggles the relaxed root-namespace check.
func WithInlineSVG(enabled bool) Option {
	return func(o *Options) { o.ParseAsInlineSVG = enabled }
}

// WithExperimental toggles exposure of experimental element types.
func WithExperimental(enabled bool) Option {
	return func(o *Options) { o.EnableExperimental = enabled }
}

// WithSource attaches the document's source buffer, enabling the
// on-demand attribute-span re-parse fallback in warnAttr.
func WithSource(source string) Option {
	return func(o *Options) { o.Source = source }
}

func resolveOptions(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// SVGNamespaceURI is the namespace every SVG element must resolve to
// (except the root under ParseAsInlineSVG).
const SVGNamespaceURI = "http://www.w3.org/2000/svg"

// XLinkNamespaceURI is tolerated on attributes without producing a
// namespace warning.
const XLinkNamespaceURI = "http://www.w3.org/1999/xlink"
