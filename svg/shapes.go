package svg

// rectComponent holds a <rect>'s geometry attributes.
type rectComponent struct {
	X, Y, Width, Height Length
	Rx, Ry              Length
	HasRx, HasRy        bool
}

// Rect is the typed view over a TypeRect element.
type Rect struct{ SVGElement }

// NewRect constructs a rect element on an existing (detached or attached)
// node handle, attaching both the ElementType discriminant and the
// geometry component so callers can immediately use the typed setters.
func NewRect(e SVGElement) Rect {
	e.SetType(TypeRect)
	emplace(e, &rectComponent{})
	return Rect{e}
}

// AsRect casts e to Rect, requiring e.Isa(TypeRect).
func AsRect(e SVGElement) (Rect, bool) {
	if !e.Isa(TypeRect) {
		return Rect{}, false
	}
	return Rect{e}, true
}

func (r Rect) comp() *rectComponent { return mustComponent[*rectComponent](r.SVGElement) }

func (r Rect) SetX(v Length)      { r.comp().X = v }
func (r Rect) SetY(v Length)      { r.comp().Y = v }
func (r Rect) SetWidth(v Length)  { r.comp().Width = v }
func (r Rect) SetHeight(v Length) { r.comp().Height = v }
func (r Rect) SetRx(v Length)     { c := r.comp(); c.Rx, c.HasRx = v, true }
func (r Rect) SetRy(v Length)     { c := r.comp(); c.Ry, c.HasRy = v, true }

func (r Rect) X() Length      { return r.comp().X }
func (r Rect) Y() Length      { return r.comp().Y }
func (r Rect) Width() Length  { return r.comp().Width }
func (r Rect) Height() Length { return r.comp().Height }
func (r Rect) Rx() (Length, bool) {
	c := r.comp()
	return c.Rx, c.HasRx
}
func (r Rect) Ry() (Length, bool) {
	c := r.comp()
	return c.Ry, c.HasRy
}

// circleComponent holds a <circle>'s geometry attributes.
type circleComponent struct {
	Cx, Cy, R Length
}

// Circle is the typed view over a TypeCircle element.
type Circle struct{ SVGElement }

// NewCircle constructs a circle element, per Rect's contract.
func NewCircle(e SVGElement) Circle {
	e.SetType(TypeCircle)
	emplace(e, &circleComponent{})
	return Circle{e}
}

// AsCircle casts e to Circle, requiring e.Isa(TypeCircle).
func AsCircle(e SVGElement) (Circle, bool) {
	if !e.Isa(TypeCircle) {
		return Circle{}, false
	}
	return Circle{e}, true
}

func (c Circle) comp() *circleComponent { return mustComponent[*circleComponent](c.SVGElement) }

func (c Circle) SetCx(v Length) { c.comp().Cx = v }
func (c Circle) SetCy(v Length) { c.comp().Cy = v }
func (c Circle) SetR(v Length)  { c.comp().R = v }
func (c Circle) Cx() Length     { return c.comp().Cx }
func (c Circle) Cy() Length     { return c.comp().Cy }
func (c Circle) R() Length      { return c.comp().R }

// ellipseComponent holds an <ellipse>'s geometry attributes.
type ellipseComponent struct {
	Cx, Cy, Rx, Ry Length
}

// Ellipse is the typed view over a TypeEllipse element.
type Ellipse struct{ SVGElement }

// NewEllipse constructs an ellipse element, per Rect's contract.
func NewEllipse(e SVGElement) Ellipse {
	e.SetType(TypeEllipse)
	emplace(e, &ellipseComponent{})
	return Ellipse{e}
}

// AsEllipse casts e to Ellipse, requiring e.Isa(TypeEllipse).
func AsEllipse(e SVGElement) (Ellipse, bool) {
	if !e.Isa(TypeEllipse) {
		return Ellipse{}, false
	}
	return Ellipse{e}, true
}

func (el Ellipse) comp() *ellipseComponent { return mustComponent[*ellipseComponent](el.SVGElement) }

func (el Ellipse) SetCx(v Length) { el.comp().Cx = v }
func (el Ellipse) SetCy(v Length) { el.comp().Cy = v }
func (el Ellipse) SetRx(v Length) { el.comp().Rx = v }
func (el Ellipse) SetRy(v Length) { el.comp().Ry = v }
func (el Ellipse) Cx() Length     { return el.comp().Cx }
func (el Ellipse) Cy() Length     { return el.comp().Cy }
func (el Ellipse) Rx() Length     { return el.comp().Rx }
func (el Ellipse) Ry() Length     { return el.comp().Ry }

// lineComponent holds a <line>'s endpoints.
type lineComponent struct {
	X1, Y1, X2, Y2 Length
}

// Line is the typed view over a TypeLine element.
type Line struct{ SVGElement }

// NewLine constructs a line element, per Rect's contract.
func NewLine(e SVGElement) Line {
	e.SetType(TypeLine)
	emplace(e, &lineComponent{})
	return Line{e}
}

// AsLine casts e to Line, requiring e.Isa(TypeLine).
func AsLine(e SVGElement) (Line, bool) {
	if !e.Isa(TypeLine) {
		return Line{}, false
	}
	return Line{e}, true
}

func (l Line) comp() *lineComponent { return mustComponent[*lineComponent](l.SVGElement) }

func (l Line) SetX1(v Length) { l.comp().X1 = v }
func (l Line) SetY1(v Length) { l.comp().Y1 = v }
func (l Line) SetX2(v Length) { l.comp().X2 = v }
func (l Line) SetY2(v Length) { l.comp().Y2 = v }
func (l Line) X1() Length     { return l.comp().X1 }
func (l Line) Y1() Length     { return l.comp().Y1 }
func (l Line) X2() Length     { return l.comp().X2 }
func (l Line) Y2() Length     { return l.comp().Y2 }

// polyComponent holds the shared points-list geometry of polygon and
// polyline, which differ only in whether the renderer closes the path —
// a rendering concern outside this module's scope.
type polyComponent struct {
	Points []Point
}

// Polygon is the typed view over a TypePolygon element.
type Polygon struct{ SVGElement }

// NewPolygon constructs a polygon element, per Rect's contract.
func NewPolygon(e SVGElement) Polygon {
	e.SetType(TypePolygon)
	emplace(e, &polyComponent{})
	return Polygon{e}
}

// AsPolygon casts e to Polygon, requiring e.Isa(TypePolygon).
func AsPolygon(e SVGElement) (Polygon, bool) {
	if !e.Isa(TypePolygon) {
		return Polygon{}, false
	}
	return Polygon{e}, true
}

func (p Polygon) comp() *polyComponent { return mustComponent[*polyComponent](p.SVGElement) }

// SetPoints replaces the points list. Partial parses are non-fatal: the
// caller passes whatever prefix of the attribute value parsed
// successfully.
func (p Polygon) SetPoints(pts []Point) { p.comp().Points = pts }
func (p Polygon) Points() []Point       { return p.comp().Points }

// Polyline is the typed view over a TypePolyline element.
type Polyline struct{ SVGElement }

// NewPolyline constructs a polyline element, per Rect's contract.
func NewPolyline(e SVGElement) Polyline {
	e.SetType(TypePolyline)
	emplace(e, &polyComponent{})
	return Polyline{e}
}

// AsPolyline casts e to Polyline, requiring e.Isa(TypePolyline).
func AsPolyline(e SVGElement) (Polyline, bool) {
	if !e.Isa(TypePolyline) {
		return Polyline{}, false
	}
	return Polyline{e}, true
}

func (p Polyline) comp() *polyComponent { return mustComponent[*polyComponent](p.SVGElement) }

func (p Polyline) SetPoints(pts []Point) { p.comp().Points = pts }
func (p Polyline) Points() []Point       { return p.comp().Points }

// pathComponent holds a <path>'s raw data string. Path data grammar
// itself (moveto/lineto/curveto commands) is SVG geometry parsing beyond
// the attribute-dispatcher contract, explicitly out of scope
// — the dispatcher stores the verbatim "d" string for the external
// geometry parser to consume.
type pathComponent struct {
	D            string
	PathLength   float64
	HasPathLength bool
}

// Path is the typed view over a TypePath element.
type Path struct{ SVGElement }

// NewPath constructs a path element, per Rect's contract.
func NewPath(e SVGElement) Path {
	e.SetType(TypePath)
	emplace(e, &pathComponent{})
	return Path{e}
}

// AsPath casts e to Path, requiring e.Isa(TypePath).
func AsPath(e SVGElement) (Path, bool) {
	if !e.Isa(TypePath) {
		return Path{}, false
	}
	return Path{e}, true
}

func (p Path) comp() *pathComponent { return mustComponent[*pathComponent](p.SVGElement) }

func (p Path) SetD(d string) { p.comp().D = d }
func (p Path) D() string     { return p.comp().D }
func (p Path) SetPathLength(v float64) {
	c := p.comp()
	c.PathLength, c.HasPathLength = v, true
}
func (p Path) PathLength() (float64, bool) {
	c := p.comp()
	return c.PathLength, c.HasPathLength
}
