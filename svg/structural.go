package svg

// gComponent marks a <g> container. It carries no attributes of its own
// beyond the universal ones every element has; it exists so AsG can
// verify the discriminant before handing back a typed (if empty) view.
type gComponent struct{}

// G is the typed view over a TypeG element.
type G struct{ SVGElement }

// NewG constructs a g element.
func NewG(e SVGElement) G {
	e.SetType(TypeG)
	emplace(e, &gComponent{})
	return G{e}
}

// AsG casts e, requiring e.Isa(TypeG).
func AsG(e SVGElement) (G, bool) {
	if !e.Isa(TypeG) {
		return G{}, false
	}
	return G{e}, true
}

// useComponent holds a <use>'s placement and reference.
type useComponent struct {
	X, Y, Width, Height Length
	HasWidth, HasHeight bool
	Href                string
}

// Use is the typed view over a TypeUse element.
type Use struct{ SVGElement }

// NewUse constructs a use element.
func NewUse(e SVGElement) Use {
	e.SetType(TypeUse)
	emplace(e, &useComponent{})
	return Use{e}
}

// AsUse casts e, requiring e.Isa(TypeUse).
func AsUse(e SVGElement) (Use, bool) {
	if !e.Isa(TypeUse) {
		return Use{}, false
	}
	return Use{e}, true
}

func (u Use) comp() *useComponent { return mustComponent[*useComponent](u.SVGElement) }

func (u Use) SetX(v Length)    { u.comp().X = v }
func (u Use) SetY(v Length)    { u.comp().Y = v }
func (u Use) SetWidth(v Length) {
	c := u.comp()
	c.Width, c.HasWidth = v, true
}
func (u Use) SetHeight(v Length) {
	c := u.comp()
	c.Height, c.HasHeight = v, true
}
func (u Use) SetHref(href string) { u.comp().Href = href }
func (u Use) X() Length           { return u.comp().X }
func (u Use) Y() Length           { return u.comp().Y }
func (u Use) Width() (Length, bool) {
	c := u.comp()
	return c.Width, c.HasWidth
}
func (u Use) Height() (Length, bool) {
	c := u.comp()
	return c.Height, c.HasHeight
}
func (u Use) Href() string { return u.comp().Href }

// svgRootComponent holds the root <svg> (or nested <svg>) element's
// viewport attributes.
type svgRootComponent struct {
	ViewBox             *ViewBox
	PreserveAspectRatio PreserveAspectRatio
	X, Y, Width, Height Length
}

// SVG is the typed view over a TypeSVG element (the root element, or any
// nested <svg> viewport).
type SVG struct{ SVGElement }

// NewSVG constructs an svg element with the initial preserveAspectRatio
// value ("xMidYMid meet").
func NewSVG(e SVGElement) SVG {
	e.SetType(TypeSVG)
	emplace(e, &svgRootComponent{PreserveAspectRatio: DefaultPreserveAspectRatio()})
	return SVG{e}
}

// AsSVG casts e, requiring e.Isa(TypeSVG).
func AsSVG(e SVGElement) (SVG, bool) {
	if !e.Isa(TypeSVG) {
		return SVG{}, false
	}
	return SVG{e}, true
}

func (s SVG) comp() *svgRootComponent { return mustComponent[*svgRootComponent](s.SVGElement) }

func (s SVG) SetViewBox(v ViewBox)                       { s.comp().ViewBox = &v }
func (s SVG) ViewBox() (ViewBox, bool) {
	c := s.comp()
	if c.ViewBox == nil {
		return ViewBox{}, false
	}
	return *c.ViewBox, true
}
func (s SVG) SetPreserveAspectRatio(v PreserveAspectRatio) { s.comp().PreserveAspectRatio = v }
func (s SVG) PreserveAspectRatio() PreserveAspectRatio     { return s.comp().PreserveAspectRatio }
func (s SVG) SetX(v Length)                                { s.comp().X = v }
func (s SVG) SetY(v Length)                                { s.comp().Y = v }
func (s SVG) SetWidth(v Length)                            { s.comp().Width = v }
func (s SVG) SetHeight(v Length)                            { s.comp().Height = v }
func (s SVG) X() Length                                    { return s.comp().X }
func (s SVG) Y() Length                                    { return s.comp().Y }
func (s SVG) Width() Length                                { return s.comp().Width }
func (s SVG) Height() Length                                { return s.comp().Height }

// styleComponent holds a <style> element's verbatim CSS text, captured
// only when its type attribute is empty or "text/css".
type styleComponent struct {
	Type      string
	CSS       string
	Accepted  bool
}

// Style is the typed view over a TypeStyle element.
type Style struct{ SVGElement }

// NewStyle constructs a style element.
func NewStyle(e SVGElement) Style {
	e.SetType(TypeStyle)
	emplace(e, &styleComponent{Accepted: true})
	return Style{e}
}

// AsStyle casts e, requiring e.Isa(TypeStyle).
func AsStyle(e SVGElement) (Style, bool) {
	if !e.Isa(TypeStyle) {
		return Style{}, false
	}
	return Style{e}, true
}

func (s Style) comp() *styleComponent { return mustComponent[*styleComponent](s.SVGElement) }

// SetTypeAttr records the style element's type attribute and whether its
// content should be accepted as CSS ("" or "text/css"); a rejected type
// still keeps the raw attribute value for the caller to warn on, but CSS()
// reports ok=false.
func (s Style) SetTypeAttr(t string) {
	c := s.comp()
	c.Type = t
	c.Accepted = t == "" || t == "text/css"
}
func (s Style) TypeAttr() string { return s.comp().Type }

// SetCSS stores the style element's verbatim Data/CData content.
func (s Style) SetCSS(css string) { s.comp().CSS = css }

// CSS returns the verbatim content and whether the type attribute
// accepted it as CSS.
func (s Style) CSS() (string, bool) {
	c := s.comp()
	return c.CSS, c.Accepted
}

// textComponent holds the <text> element's anchor point. Full text layout
// (glyph shaping, typography resolution) is an external collaborator;
// text is additionally gated behind svgparser.Options.EnableExperimental
// since its support here is partial.
type textComponent struct {
	X, Y Length
}

// Text is the typed view over the experimental TypeText element.
type Text struct{ SVGElement }

// NewText constructs a text element.
func NewText(e SVGElement) Text {
	e.SetType(TypeText)
	emplace(e, &textComponent{})
	return Text{e}
}

// AsText casts e, requiring e.Isa(TypeText).
func AsText(e SVGElement) (Text, bool) {
	if !e.Isa(TypeText) {
		return Text{}, false
	}
	return Text{e}, true
}

func (t Text) comp() *textComponent { return mustComponent[*textComponent](t.SVGElement) }

func (t Text) SetX(v Length) { t.comp().X = v }
func (t Text) SetY(v Length) { t.comp().Y = v }
func (t Text) X() Length     { return t.comp().X }
func (t Text) Y() Length     { return t.comp().Y }
