package svg

// gradientComponent holds the attributes shared by <linearGradient> and
// <radialGradient>; the two differ only in their geometry attributes
// (x1/y1/x2/y2 vs cx/cy/r/fx/fy), tracked separately below.
type gradientComponent struct {
	GradientUnits Units
	SpreadMethod  SpreadMethod
	Href          string
	HasHref       bool
}

// LinearGradient is the typed view over a TypeLinearGradient element.
type LinearGradient struct{ SVGElement }

type linearGeometryComponent struct {
	X1, Y1, X2, Y2 Length
}

// NewLinearGradient constructs a linearGradient element.
func NewLinearGradient(e SVGElement) LinearGradient {
	e.SetType(TypeLinearGradient)
	emplace(e, &gradientComponent{})
	emplace(e, &linearGeometryComponent{})
	return LinearGradient{e}
}

// AsLinearGradient casts e, requiring e.Isa(TypeLinearGradient).
func AsLinearGradient(e SVGElement) (LinearGradient, bool) {
	if !e.Isa(TypeLinearGradient) {
		return LinearGradient{}, false
	}
	return LinearGradient{e}, true
}

func (g LinearGradient) comp() *gradientComponent { return mustComponent[*gradientComponent](g.SVGElement) }
func (g LinearGradient) geom() *linearGeometryComponent {
	return mustComponent[*linearGeometryComponent](g.SVGElement)
}

func (g LinearGradient) SetGradientUnits(u Units)       { g.comp().GradientUnits = u }
func (g LinearGradient) SetSpreadMethod(s SpreadMethod)  { g.comp().SpreadMethod = s }
func (g LinearGradient) SetHref(href string)             { c := g.comp(); c.Href, c.HasHref = href, true }
func (g LinearGradient) Href() (string, bool)            { c := g.comp(); return c.Href, c.HasHref }
func (g LinearGradient) GradientUnits() Units            { return g.comp().GradientUnits }
func (g LinearGradient) SpreadMethod() SpreadMethod       { return g.comp().SpreadMethod }
func (g LinearGradient) SetX1(v Length)                  { g.geom().X1 = v }
func (g LinearGradient) SetY1(v Length)                  { g.geom().Y1 = v }
func (g LinearGradient) SetX2(v Length)                  { g.geom().X2 = v }
func (g LinearGradient) SetY2(v Length)                  { g.geom().Y2 = v }
func (g LinearGradient) X1() Length                      { return g.geom().X1 }
func (g LinearGradient) Y1() Length                      { return g.geom().Y1 }
func (g LinearGradient) X2() Length                      { return g.geom().X2 }
func (g LinearGradient) Y2() Length                      { return g.geom().Y2 }

// RadialGradient is the typed view over a TypeRadialGradient element.
type RadialGradient struct{ SVGElement }

type radialGeometryComponent struct {
	Cx, Cy, R, Fx, Fy Length
	HasFx, HasFy      bool
}

// NewRadialGradient constructs a radialGradient element.
func NewRadialGradient(e SVGElement) RadialGradient {
	e.SetType(TypeRadialGradient)
	emplace(e, &gradientComponent{})
	emplace(e, &radialGeometryComponent{})
	return RadialGradient{e}
}

// AsRadialGradient casts e, requiring e.Isa(TypeRadialGradient).
func AsRadialGradient(e SVGElement) (RadialGradient, bool) {
	if !e.Isa(TypeRadialGradient) {
		return RadialGradient{}, false
	}
	return RadialGradient{e}, true
}

func (g RadialGradient) comp() *gradientComponent { return mustComponent[*gradientComponent](g.SVGElement) }
func (g RadialGradient) geom() *radialGeometryComponent {
	return mustComponent[*radialGeometryComponent](g.SVGElement)
}

func (g RadialGradient) SetGradientUnits(u Units)      { g.comp().GradientUnits = u }
func (g RadialGradient) SetSpreadMethod(s SpreadMethod) { g.comp().SpreadMethod = s }
func (g RadialGradient) SetHref(href string)            { c := g.comp(); c.Href, c.HasHref = href, true }
func (g RadialGradient) Href() (string, bool)           { c := g.comp(); return c.Href, c.HasHref }
func (g RadialGradient) GradientUnits() Units           { return g.comp().GradientUnits }
func (g RadialGradient) SpreadMethod() SpreadMethod      { return g.comp().SpreadMethod }
func (g RadialGradient) SetCx(v Length)                 { g.geom().Cx = v }
func (g RadialGradient) SetCy(v Length)                 { g.geom().Cy = v }
func (g RadialGradient) SetR(v Length)                  { g.geom().R = v }
func (g RadialGradient) SetFx(v Length)                 { c := g.geom(); c.Fx, c.HasFx = v, true }
func (g RadialGradient) SetFy(v Length)                 { c := g.geom(); c.Fy, c.HasFy = v, true }
func (g RadialGradient) Cx() Length                     { return g.geom().Cx }
func (g RadialGradient) Cy() Length                     { return g.geom().Cy }
func (g RadialGradient) R() Length                      { return g.geom().R }
func (g RadialGradient) Fx() (Length, bool)             { c := g.geom(); return c.Fx, c.HasFx }
func (g RadialGradient) Fy() (Length, bool)             { c := g.geom(); return c.Fy, c.HasFy }

// stopComponent holds a gradient <stop>'s offset and paint.
type stopComponent struct {
	Offset       float64
	StopColor    string
	HasColor     bool
	StopOpacity  float64
	HasOpacity   bool
}

// Stop is the typed view over a TypeStop element.
type Stop struct{ SVGElement }

// NewStop constructs a stop element.
func NewStop(e SVGElement) Stop {
	e.SetType(TypeStop)
	emplace(e, &stopComponent{})
	return Stop{e}
}

// AsStop casts e, requiring e.Isa(TypeStop).
func AsStop(e SVGElement) (Stop, bool) {
	if !e.Isa(TypeStop) {
		return Stop{}, false
	}
	return Stop{e}, true
}

func (s Stop) comp() *stopComponent { return mustComponent[*stopComponent](s.SVGElement) }

// SetOffset sets the stop's offset, already clamped to [0,1] by the
// svgattr setter.
func (s Stop) SetOffset(v float64)    { s.comp().Offset = v }
func (s Stop) Offset() float64        { return s.comp().Offset }
func (s Stop) SetStopColor(c string)  { comp := s.comp(); comp.StopColor, comp.HasColor = c, true }
func (s Stop) StopColor() (string, bool) {
	c := s.comp()
	return c.StopColor, c.HasColor
}
func (s Stop) SetStopOpacity(v float64) {
	c := s.comp()
	c.StopOpacity, c.HasOpacity = v, true
}
func (s Stop) StopOpacity() (float64, bool) {
	c := s.comp()
	return c.StopOpacity, c.HasOpacity
}

// patternComponent holds a <pattern>'s tiling attributes.
type patternComponent struct {
	PatternUnits        Units
	PatternContentUnits Units
	Href                string
	HasHref             bool
	X, Y, Width, Height  Length
}

// Pattern is the typed view over a TypePattern element.
type Pattern struct{ SVGElement }

// NewPattern constructs a pattern element.
func NewPattern(e SVGElement) Pattern {
	e.SetType(TypePattern)
	emplace(e, &patternComponent{PatternContentUnits: UnitsUserSpaceOnUse})
	return Pattern{e}
}

// AsPattern casts e, requiring e.Isa(TypePattern).
func AsPattern(e SVGElement) (Pattern, bool) {
	if !e.Isa(TypePattern) {
		return Pattern{}, false
	}
	return Pattern{e}, true
}

func (p Pattern) comp() *patternComponent { return mustComponent[*patternComponent](p.SVGElement) }

func (p Pattern) SetPatternUnits(u Units)        { p.comp().PatternUnits = u }
func (p Pattern) SetPatternContentUnits(u Units) { p.comp().PatternContentUnits = u }
func (p Pattern) SetHref(href string)            { c := p.comp(); c.Href, c.HasHref = href, true }
func (p Pattern) Href() (string, bool)           { c := p.comp(); return c.Href, c.HasHref }
func (p Pattern) SetX(v Length)                  { p.comp().X = v }
func (p Pattern) SetY(v Length)                  { p.comp().Y = v }
func (p Pattern) SetWidth(v Length)              { p.comp().Width = v }
func (p Pattern) SetHeight(v Length)             { p.comp().Height = v }
func (p Pattern) PatternUnits() Units            { return p.comp().PatternUnits }
func (p Pattern) PatternContentUnits() Units     { return p.comp().PatternContentUnits }
