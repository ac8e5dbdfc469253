// Package xmlparser implements the streaming XML tokenizer/parser that
// builds an xmldom.XMLDocument from a source buffer: entity expansion
// (built-in, numeric, and DOCTYPE-declared), billion-laughs mitigation,
// and precise source-span capture for every node and attribute.
package xmlparser

// Options controls parsing behavior, exactly the recognized set from the
// external interface: which optional node kinds are emitted, whether
// custom entities are parsed, and the two abuse-mitigation caps.
//
// Following the functional-options idiom used elsewhere in this module,
// Options is built via an Option func(*Options) chain rather than a
// struct literal with many fields, so call sites read as a short list of
// the non-default knobs they care about.
type Options struct {
	ParseComments                bool
	ParseDoctype                 bool
	ParseProcessingInstructions  bool
	ParseCustomEntities          bool
	DisableEntityTranslation     bool
	MaxEntityDepth               uint32
	MaxEntitySubstitutions       uint64
}

// DefaultOptions returns the documented defaults: doctype nodes on,
// everything else conservative.
func DefaultOptions() Options {
	return Options{
		ParseComments:               false,
		ParseDoctype:                true,
		ParseProcessingInstructions: false,
		ParseCustomEntities:         false,
		DisableEntityTranslation:    false,
		MaxEntityDepth:              10,
		MaxEntitySubstitutions:      4096,
	}
}

// Option mutates an in-progress Options value.
type Option func(*Options)

// ParseAll enables comments and processing instructions in one call.
func ParseAll() Option {
	return func(o *Options) {
		o.ParseComments = true
		o.ParseProcessingInstructions = true
	}
}

// WithComments toggles comment-node emission.
func WithComments(enabled bool) Option {
	return func(o *Options) { o.ParseComments = enabled }
}

// WithDoctype toggles doctype-node emission.
func WithDoctype(enabled bool) Option {
	return func(o *Options) { o.ParseDoctype = enabled }
}

// WithProcessingInstructions toggles PI-node emission.
func WithProcessingInstructions(enabled bool) Option {
	return func(o *Options) { o.ParseProcessingInstructions = enabled }
}

// WithCustomEntities toggles parsing <!ENTITY> declarations in the DOCTYPE
// internal subset into the document's entity-declarations context.
func WithCustomEntities(enabled bool) Option {
	return func(o *Options) { o.ParseCustomEntities = enabled }
}

// WithEntityTranslationDisabled passes "&...;" references through
// literally instead of expanding them.
func WithEntityTranslationDisabled(disabled bool) Option {
	return func(o *Options) { o.DisableEntityTranslation = disabled }
}

// WithMaxEntityDepth overrides the nested-expansion depth cap.
func WithMaxEntityDepth(depth uint32) Option {
	return func(o *Options) { o.MaxEntityDepth = depth }
}

// WithMaxEntitySubstitutions overrides the total-substitution cap.
func WithMaxEntitySubstitutions(max uint64) Option {
	return func(o *Options) { o.MaxEntitySubstitutions = max }
}

func resolveOptions(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
