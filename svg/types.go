// Package svg implements the typed SVG element layer the svgparser facade
// builds on: an ElementType discriminant plus per-kind components keyed on
// the same registry.Entity ids the xmldom tree uses, and the small value
// types (Length, ViewBox, PreserveAspectRatio, ...) the svgattr setters
// populate.
//
// Like xmldom and registry, this package is single-threaded: no method
// here synchronizes access.
package svg

// ElementType discriminates the constructed SVG element kinds. An element
// in the SVG namespace whose tag name matches none of these becomes
// TypeUnknown rather than failing the parse
type ElementType int

const (
	TypeUnknown ElementType = iota
	TypeSVG
	TypeG
	TypeRect
	TypeCircle
	TypeEllipse
	TypeLine
	TypePolyline
	TypePolygon
	TypePath
	TypeLinearGradient
	TypeRadialGradient
	TypePattern
	TypeStop
	TypeUse
	TypeMask
	TypeFilter
	TypeFeGaussianBlur
	TypeMarker
	TypeClipPath
	TypeImage
	TypeStyle
	// TypeText is gated behind svgparser.Options.EnableExperimental.
	TypeText
)

// String names the element type by its SVG tag, used in warnings.
func (t ElementType) String() string {
	switch t {
	case TypeSVG:
		return "svg"
	case TypeG:
		return "g"
	case TypeRect:
		return "rect"
	case TypeCircle:
		return "circle"
	case TypeEllipse:
		return "ellipse"
	case TypeLine:
		return "line"
	case TypePolyline:
		return "polyline"
	case TypePolygon:
		return "polygon"
	case TypePath:
		return "path"
	case TypeLinearGradient:
		return "linearGradient"
	case TypeRadialGradient:
		return "radialGradient"
	case TypePattern:
		return "pattern"
	case TypeStop:
		return "stop"
	case TypeUse:
		return "use"
	case TypeMask:
		return "mask"
	case TypeFilter:
		return "filter"
	case TypeFeGaussianBlur:
		return "feGaussianBlur"
	case TypeMarker:
		return "marker"
	case TypeClipPath:
		return "clipPath"
	case TypeImage:
		return "image"
	case TypeStyle:
		return "style"
	case TypeText:
		return "text"
	default:
		return "unknown"
	}
}

// LengthUnit is the unit suffix on a <length-percentage> attribute value.
type LengthUnit int

const (
	UnitNumber LengthUnit = iota // unitless number
	UnitPercent
	UnitPx
	UnitEm
	UnitEx
	UnitCm
	UnitMm
	UnitIn
	UnitPt
	UnitPc
)

// Length is a parsed <length-percentage> | <number> attribute value,
// shared by every length-valued attribute (x, y, width, height, cx, cy,
// r, ...).
type Length struct {
	Value float64
	Unit  LengthUnit
}

// Align is the <align> token of preserveAspectRatio.
type Align int

const (
	AlignNone Align = iota
	AlignXMinYMin
	AlignXMidYMin
	AlignXMaxYMin
	AlignXMinYMid
	AlignXMidYMid
	AlignXMaxYMid
	AlignXMinYMax
	AlignXMidYMax
	AlignXMaxYMax
)

// MeetOrSlice is the second token of preserveAspectRatio.
type MeetOrSlice int

const (
	Meet MeetOrSlice = iota
	Slice
)

// PreserveAspectRatio is the parsed value of the preserveAspectRatio
// attribute: an alignment plus a meet-or-slice policy.
type PreserveAspectRatio struct {
	Align       Align
	MeetOrSlice MeetOrSlice
}

// DefaultPreserveAspectRatio is "xMidYMid meet", the SVG initial value.
func DefaultPreserveAspectRatio() PreserveAspectRatio {
	return PreserveAspectRatio{Align: AlignXMidYMid, MeetOrSlice: Meet}
}

// ViewBox is the parsed four-number viewBox attribute value.
type ViewBox struct {
	MinX, MinY, Width, Height float64
}

// Units is the shared enum behind gradientUnits, patternUnits,
// clipPathUnits, maskUnits, maskContentUnits, filterUnits,
// primitiveUnits (all choosing between objectBoundingBox and
// userSpaceOnUse), and markerUnits, whose strokeWidth token is stored as
// UnitsObjectBoundingBox.
type Units int

const (
	UnitsObjectBoundingBox Units = iota
	UnitsUserSpaceOnUse
)

// SpreadMethod is the parsed spreadMethod attribute value.
type SpreadMethod int

const (
	SpreadPad SpreadMethod = iota
	SpreadReflect
	SpreadRepeat
)

// OrientKind discriminates marker's orient attribute: a fixed keyword or
// an explicit angle.
type OrientKind int

const (
	OrientAuto OrientKind = iota
	OrientAutoStartReverse
	OrientAngle
)

// Orient is the parsed marker orient attribute value. AngleDegrees is only
// meaningful when Kind == OrientAngle.
type Orient struct {
	Kind         OrientKind
	AngleDegrees float64
}

// Point is one coordinate pair in a polygon/polyline points list.
type Point struct {
	X, Y float64
}
