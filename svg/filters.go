package svg

// maskComponent holds a <mask>'s unit and region attributes.
type maskComponent struct {
	MaskUnits        Units
	MaskContentUnits Units
	X, Y, Width, Height Length
	HasX, HasY, HasWidth, HasHeight bool
}

// Mask is the typed view over a TypeMask element.
type Mask struct{ SVGElement }

// NewMask constructs a mask element with the initial units
// ("maskUnits=objectBoundingBox", "maskContentUnits=userSpaceOnUse").
func NewMask(e SVGElement) Mask {
	e.SetType(TypeMask)
	emplace(e, &maskComponent{MaskContentUnits: UnitsUserSpaceOnUse})
	return Mask{e}
}

// AsMask casts e, requiring e.Isa(TypeMask).
func AsMask(e SVGElement) (Mask, bool) {
	if !e.Isa(TypeMask) {
		return Mask{}, false
	}
	return Mask{e}, true
}

func (m Mask) comp() *maskComponent { return mustComponent[*maskComponent](m.SVGElement) }

func (m Mask) SetMaskUnits(u Units)        { m.comp().MaskUnits = u }
func (m Mask) SetMaskContentUnits(u Units) { m.comp().MaskContentUnits = u }
func (m Mask) MaskUnits() Units            { return m.comp().MaskUnits }
func (m Mask) MaskContentUnits() Units     { return m.comp().MaskContentUnits }
func (m Mask) SetX(v Length)               { c := m.comp(); c.X, c.HasX = v, true }
func (m Mask) SetY(v Length)               { c := m.comp(); c.Y, c.HasY = v, true }
func (m Mask) SetWidth(v Length)           { c := m.comp(); c.Width, c.HasWidth = v, true }
func (m Mask) SetHeight(v Length)          { c := m.comp(); c.Height, c.HasHeight = v, true }

// filterComponent holds a <filter>'s unit and region attributes.
type filterComponent struct {
	FilterUnits    Units
	PrimitiveUnits Units
	X, Y, Width, Height Length
	HasX, HasY, HasWidth, HasHeight bool
}

// Filter is the typed view over a TypeFilter element.
type Filter struct{ SVGElement }

// NewFilter constructs a filter element with the initial units
// ("filterUnits=objectBoundingBox", "primitiveUnits=userSpaceOnUse").
func NewFilter(e SVGElement) Filter {
	e.SetType(TypeFilter)
	emplace(e, &filterComponent{PrimitiveUnits: UnitsUserSpaceOnUse})
	return Filter{e}
}

// AsFilter casts e, requiring e.Isa(TypeFilter).
func AsFilter(e SVGElement) (Filter, bool) {
	if !e.Isa(TypeFilter) {
		return Filter{}, false
	}
	return Filter{e}, true
}

func (f Filter) comp() *filterComponent { return mustComponent[*filterComponent](f.SVGElement) }

func (f Filter) SetFilterUnits(u Units)    { f.comp().FilterUnits = u }
func (f Filter) SetPrimitiveUnits(u Units) { f.comp().PrimitiveUnits = u }
func (f Filter) FilterUnits() Units        { return f.comp().FilterUnits }
func (f Filter) PrimitiveUnits() Units     { return f.comp().PrimitiveUnits }
func (f Filter) SetX(v Length)             { c := f.comp(); c.X, c.HasX = v, true }
func (f Filter) SetY(v Length)             { c := f.comp(); c.Y, c.HasY = v, true }
func (f Filter) SetWidth(v Length)         { c := f.comp(); c.Width, c.HasWidth = v, true }
func (f Filter) SetHeight(v Length)        { c := f.comp(); c.Height, c.HasHeight = v, true }

// feGaussianBlurComponent holds the one-or-two-number stdDeviation value.
type feGaussianBlurComponent struct {
	StdDeviationX, StdDeviationY float64
	HasStdDeviation              bool
}

// FeGaussianBlur is the typed view over a TypeFeGaussianBlur element.
type FeGaussianBlur struct{ SVGElement }

// NewFeGaussianBlur constructs a feGaussianBlur element.
func NewFeGaussianBlur(e SVGElement) FeGaussianBlur {
	e.SetType(TypeFeGaussianBlur)
	emplace(e, &feGaussianBlurComponent{})
	return FeGaussianBlur{e}
}

// AsFeGaussianBlur casts e, requiring e.Isa(TypeFeGaussianBlur).
func AsFeGaussianBlur(e SVGElement) (FeGaussianBlur, bool) {
	if !e.Isa(TypeFeGaussianBlur) {
		return FeGaussianBlur{}, false
	}
	return FeGaussianBlur{e}, true
}

func (f FeGaussianBlur) comp() *feGaussianBlurComponent {
	return mustComponent[*feGaussianBlurComponent](f.SVGElement)
}

// SetStdDeviation records one number (x == y) or two (x, y).
func (f FeGaussianBlur) SetStdDeviation(x, y float64) {
	c := f.comp()
	c.StdDeviationX, c.StdDeviationY, c.HasStdDeviation = x, y, true
}
func (f FeGaussianBlur) StdDeviation() (x, y float64, ok bool) {
	c := f.comp()
	return c.StdDeviationX, c.StdDeviationY, c.HasStdDeviation
}

// markerComponent holds a <marker>'s orientation and viewport attributes.
type markerComponent struct {
	MarkerUnits                Units
	Orient                     Orient
	RefX, RefY                 Length
	MarkerWidth, MarkerHeight  Length
	HasMarkerWidth, HasMarkerHeight bool
}

// Marker is the typed view over a TypeMarker element.
type Marker struct{ SVGElement }

// NewMarker constructs a marker element with the initial orient value
// (an angle of 0 degrees, used when orient is omitted).
func NewMarker(e SVGElement) Marker {
	e.SetType(TypeMarker)
	emplace(e, &markerComponent{Orient: Orient{Kind: OrientAngle, AngleDegrees: 0}})
	return Marker{e}
}

// AsMarker casts e, requiring e.Isa(TypeMarker).
func AsMarker(e SVGElement) (Marker, bool) {
	if !e.Isa(TypeMarker) {
		return Marker{}, false
	}
	return Marker{e}, true
}

func (m Marker) comp() *markerComponent { return mustComponent[*markerComponent](m.SVGElement) }

func (m Marker) SetMarkerUnits(u Units) { m.comp().MarkerUnits = u }
func (m Marker) MarkerUnits() Units     { return m.comp().MarkerUnits }
func (m Marker) SetOrient(o Orient)     { m.comp().Orient = o }
func (m Marker) Orient() Orient         { return m.comp().Orient }
func (m Marker) SetRefX(v Length)       { m.comp().RefX = v }
func (m Marker) SetRefY(v Length)       { m.comp().RefY = v }
func (m Marker) RefX() Length           { return m.comp().RefX }
func (m Marker) RefY() Length           { return m.comp().RefY }
func (m Marker) SetMarkerWidth(v Length) {
	c := m.comp()
	c.MarkerWidth, c.HasMarkerWidth = v, true
}
func (m Marker) SetMarkerHeight(v Length) {
	c := m.comp()
	c.MarkerHeight, c.HasMarkerHeight = v, true
}
func (m Marker) MarkerWidth() (Length, bool) {
	c := m.comp()
	return c.MarkerWidth, c.HasMarkerWidth
}
func (m Marker) MarkerHeight() (Length, bool) {
	c := m.comp()
	return c.MarkerHeight, c.HasMarkerHeight
}

// clipPathComponent holds a <clipPath>'s unit attribute.
type clipPathComponent struct {
	ClipPathUnits Units
}

// ClipPath is the typed view over a TypeClipPath element.
type ClipPath struct{ SVGElement }

// NewClipPath constructs a clipPath element.
func NewClipPath(e SVGElement) ClipPath {
	e.SetType(TypeClipPath)
	emplace(e, &clipPathComponent{})
	return ClipPath{e}
}

// AsClipPath casts e, requiring e.Isa(TypeClipPath).
func AsClipPath(e SVGElement) (ClipPath, bool) {
	if !e.Isa(TypeClipPath) {
		return ClipPath{}, false
	}
	return ClipPath{e}, true
}

func (c ClipPath) comp() *clipPathComponent { return mustComponent[*clipPathComponent](c.SVGElement) }

func (c ClipPath) SetClipPathUnits(u Units) { c.comp().ClipPathUnits = u }
func (c ClipPath) ClipPathUnits() Units     { return c.comp().ClipPathUnits }

// imageComponent holds an <image>'s placement and reference.
type imageComponent struct {
	X, Y, Width, Height Length
	Href                string
}

// Image is the typed view over a TypeImage element.
type Image struct{ SVGElement }

// NewImage constructs an image element.
func NewImage(e SVGElement) Image {
	e.SetType(TypeImage)
	emplace(e, &imageComponent{})
	return Image{e}
}

// AsImage casts e, requiring e.Isa(TypeImage).
func AsImage(e SVGElement) (Image, bool) {
	if !e.Isa(TypeImage) {
		return Image{}, false
	}
	return Image{e}, true
}

func (i Image) comp() *imageComponent { return mustComponent[*imageComponent](i.SVGElement) }

func (i Image) SetX(v Length)      { i.comp().X = v }
func (i Image) SetY(v Length)      { i.comp().Y = v }
func (i Image) SetWidth(v Length)  { i.comp().Width = v }
func (i Image) SetHeight(v Length) { i.comp().Height = v }
func (i Image) SetHref(href string) { i.comp().Href = href }
func (i Image) X() Length          { return i.comp().X }
func (i Image) Y() Length          { return i.comp().Y }
func (i Image) Width() Length      { return i.comp().Width }
func (i Image) Height() Length     { return i.comp().Height }
func (i Image) Href() string       { return i.comp().Href }
