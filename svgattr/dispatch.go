package svgattr

import (
	"strings"

	"github.com/arturoeanton/go-svgxml/svg"
)

// Result is what Dispatch reports for one (element, attribute) pair.
type Result struct {
	// Handled reports whether name is a recognized attribute for the
	// element's type (universal attributes are always Handled).
	Handled bool
	// Warning is non-nil when name was recognized but its value failed to
	// parse. A presentation-attribute parse failure is a warning, never
	// fatal, and the raw value has already been stored on the element via
	// SVGElement.SetRawAttribute before Dispatch returns.
	Warning error
}

// setter parses raw and writes it into e's typed component, returning an
// error on a malformed value (never itself fatal; the caller wraps it
// into a Result.Warning).
type setter func(e svg.SVGElement, raw string) error

// universalAttr reports whether name is one of the attributes that always
// apply and never produce a presentation-attribute error.
func universalAttr(name string) bool {
	switch name {
	case "id", "class", "style":
		return true
	default:
		return false
	}
}

func applyUniversal(e svg.SVGElement, name, raw string) {
	switch name {
	case "id":
		e.SetID(raw)
	case "class":
		e.SetClassList(strings.Fields(raw))
	case "style":
		e.SetStyleAttr(raw)
	}
}

// Dispatch routes one attribute (name, raw) to e's typed setter via a
// two-level (ElementType, attribute name) table. For an attribute found in
// that table, the raw value is retained on the element (via
// SetRawAttribute) before the typed setter runs, so a failed parse still
// leaves the value visible to an external CSS presentation-attribute
// matcher. Universal attributes and attributes not in the table are not
// stored raw here.
func Dispatch(e svg.SVGElement, name, raw string) Result {
	if universalAttr(name) {
		applyUniversal(e, name, raw)
		return Result{Handled: true}
	}

	byName, ok := table[e.Type()]
	if !ok {
		return Result{Handled: false}
	}
	fn, ok := byName[name]
	if !ok {
		return Result{Handled: false}
	}

	e.SetRawAttribute(name, raw)
	if err := fn(e, raw); err != nil {
		return Result{Handled: true, Warning: err}
	}
	return Result{Handled: true}
}

// lengthSetter adapts a Length-accepting typed setter into the common
// setter shape.
func lengthSetter(set func(svg.SVGElement, svg.Length)) setter {
	return func(e svg.SVGElement, raw string) error {
		v, err := ParseLengthAttribute(raw)
		if err != nil {
			return err
		}
		set(e, v)
		return nil
	}
}

var table map[svg.ElementType]map[string]setter

func init() {
	table = map[svg.ElementType]map[string]setter{
		svg.TypeRect:           rectAttrs(),
		svg.TypeCircle:         circleAttrs(),
		svg.TypeEllipse:        ellipseAttrs(),
		svg.TypeLine:           lineAttrs(),
		svg.TypePolygon:        pointsAttrs(func(e svg.SVGElement, pts []svg.Point) {
			p, _ := svg.AsPolygon(e)
			p.SetPoints(pts)
		}),
		svg.TypePolyline: pointsAttrs(func(e svg.SVGElement, pts []svg.Point) {
			p, _ := svg.AsPolyline(e)
			p.SetPoints(pts)
		}),
		svg.TypePath:           pathAttrs(),
		svg.TypeLinearGradient: linearGradientAttrs(),
		svg.TypeRadialGradient: radialGradientAttrs(),
		svg.TypePattern:        patternAttrs(),
		svg.TypeStop:           stopAttrs(),
		svg.TypeUse:            useAttrs(),
		svg.TypeMask:           maskAttrs(),
		svg.TypeFilter:         filterAttrs(),
		svg.TypeFeGaussianBlur: feGaussianBlurAttrs(),
		svg.TypeMarker:         markerAttrs(),
		svg.TypeClipPath:       clipPathAttrs(),
		svg.TypeImage:          imageAttrs(),
		svg.TypeSVG:            svgRootAttrs(),
		svg.TypeStyle:          styleAttrs(),
		svg.TypeText:           textAttrs(),
	}
}

func rectSetter(e svg.SVGElement) (svg.Rect, bool) { return svg.AsRect(e) }

func rectAttrs() map[string]setter {
	return map[string]setter{
		"x":      lengthSetter(func(e svg.SVGElement, v svg.Length) { r, _ := rectSetter(e); r.SetX(v) }),
		"y":      lengthSetter(func(e svg.SVGElement, v svg.Length) { r, _ := rectSetter(e); r.SetY(v) }),
		"width":  lengthSetter(func(e svg.SVGElement, v svg.Length) { r, _ := rectSetter(e); r.SetWidth(v) }),
		"height": lengthSetter(func(e svg.SVGElement, v svg.Length) { r, _ := rectSetter(e); r.SetHeight(v) }),
		"rx":     lengthSetter(func(e svg.SVGElement, v svg.Length) { r, _ := rectSetter(e); r.SetRx(v) }),
		"ry":     lengthSetter(func(e svg.SVGElement, v svg.Length) { r, _ := rectSetter(e); r.SetRy(v) }),
	}
}

func circleAttrs() map[string]setter {
	return map[string]setter{
		"cx": lengthSetter(func(e svg.SVGElement, v svg.Length) { c, _ := svg.AsCircle(e); c.SetCx(v) }),
		"cy": lengthSetter(func(e svg.SVGElement, v svg.Length) { c, _ := svg.AsCircle(e); c.SetCy(v) }),
		"r":  lengthSetter(func(e svg.SVGElement, v svg.Length) { c, _ := svg.AsCircle(e); c.SetR(v) }),
	}
}

func ellipseAttrs() map[string]setter {
	return map[string]setter{
		"cx": lengthSetter(func(e svg.SVGElement, v svg.Length) { c, _ := svg.AsEllipse(e); c.SetCx(v) }),
		"cy": lengthSetter(func(e svg.SVGElement, v svg.Length) { c, _ := svg.AsEllipse(e); c.SetCy(v) }),
		"rx": lengthSetter(func(e svg.SVGElement, v svg.Length) { c, _ := svg.AsEllipse(e); c.SetRx(v) }),
		"ry": lengthSetter(func(e svg.SVGElement, v svg.Length) { c, _ := svg.AsEllipse(e); c.SetRy(v) }),
	}
}

func lineAttrs() map[string]setter {
	return map[string]setter{
		"x1": lengthSetter(func(e svg.SVGElement, v svg.Length) { l, _ := svg.AsLine(e); l.SetX1(v) }),
		"y1": lengthSetter(func(e svg.SVGElement, v svg.Length) { l, _ := svg.AsLine(e); l.SetY1(v) }),
		"x2": lengthSetter(func(e svg.SVGElement, v svg.Length) { l, _ := svg.AsLine(e); l.SetX2(v) }),
		"y2": lengthSetter(func(e svg.SVGElement, v svg.Length) { l, _ := svg.AsLine(e); l.SetY2(v) }),
	}
}

// pointsAttrs builds the single "points" entry shared by polygon and
// polyline; set is the type-specific SetPoints call.
func pointsAttrs(set func(svg.SVGElement, []svg.Point)) map[string]setter {
	return map[string]setter{
		"points": func(e svg.SVGElement, raw string) error {
			pts, ok := ParsePoints(raw)
			set(e, pts)
			if !ok {
				return errInvalidToken("points", raw)
			}
			return nil
		},
	}
}

func pathAttrs() map[string]setter {
	return map[string]setter{
		"d": func(e svg.SVGElement, raw string) error {
			p, _ := svg.AsPath(e)
			p.SetD(raw)
			return nil
		},
		"pathLength": func(e svg.SVGElement, raw string) error {
			f, consumed, err := ParseNumber(raw)
			if err != nil || consumed != len(raw) {
				return errInvalidToken("pathLength", raw)
			}
			p, _ := svg.AsPath(e)
			p.SetPathLength(f)
			return nil
		},
	}
}

func hrefSetter(set func(svg.SVGElement, string)) setter {
	return func(e svg.SVGElement, raw string) error {
		set(e, raw)
		return nil
	}
}

func linearGradientAttrs() map[string]setter {
	return map[string]setter{
		"x1": lengthSetter(func(e svg.SVGElement, v svg.Length) { g, _ := svg.AsLinearGradient(e); g.SetX1(v) }),
		"y1": lengthSetter(func(e svg.SVGElement, v svg.Length) { g, _ := svg.AsLinearGradient(e); g.SetY1(v) }),
		"x2": lengthSetter(func(e svg.SVGElement, v svg.Length) { g, _ := svg.AsLinearGradient(e); g.SetX2(v) }),
		"y2": lengthSetter(func(e svg.SVGElement, v svg.Length) { g, _ := svg.AsLinearGradient(e); g.SetY2(v) }),
		"gradientUnits": unitsSetter(func(e svg.SVGElement, u svg.Units) {
			g, _ := svg.AsLinearGradient(e)
			g.SetGradientUnits(u)
		}),
		"spreadMethod": spreadMethodSetter(func(e svg.SVGElement, s svg.SpreadMethod) {
			g, _ := svg.AsLinearGradient(e)
			g.SetSpreadMethod(s)
		}),
		"href": hrefSetter(func(e svg.SVGElement, v string) { g, _ := svg.AsLinearGradient(e); g.SetHref(v) }),
	}
}

func radialGradientAttrs() map[string]setter {
	return map[string]setter{
		"cx": lengthSetter(func(e svg.SVGElement, v svg.Length) { g, _ := svg.AsRadialGradient(e); g.SetCx(v) }),
		"cy": lengthSetter(func(e svg.SVGElement, v svg.Length) { g, _ := svg.AsRadialGradient(e); g.SetCy(v) }),
		"r":  lengthSetter(func(e svg.SVGElement, v svg.Length) { g, _ := svg.AsRadialGradient(e); g.SetR(v) }),
		"fx": lengthSetter(func(e svg.SVGElement, v svg.Length) { g, _ := svg.AsRadialGradient(e); g.SetFx(v) }),
		"fy": lengthSetter(func(e svg.SVGElement, v svg.Length) { g, _ := svg.AsRadialGradient(e); g.SetFy(v) }),
		"gradientUnits": unitsSetter(func(e svg.SVGElement, u svg.Units) {
			g, _ := svg.AsRadialGradient(e)
			g.SetGradientUnits(u)
		}),
		"spreadMethod": spreadMethodSetter(func(e svg.SVGElement, s svg.SpreadMethod) {
			g, _ := svg.AsRadialGradient(e)
			g.SetSpreadMethod(s)
		}),
		"href": hrefSetter(func(e svg.SVGElement, v string) { g, _ := svg.AsRadialGradient(e); g.SetHref(v) }),
	}
}

func patternAttrs() map[string]setter {
	return map[string]setter{
		"x":      lengthSetter(func(e svg.SVGElement, v svg.Length) { p, _ := svg.AsPattern(e); p.SetX(v) }),
		"y":      lengthSetter(func(e svg.SVGElement, v svg.Length) { p, _ := svg.AsPattern(e); p.SetY(v) }),
		"width":  lengthSetter(func(e svg.SVGElement, v svg.Length) { p, _ := svg.AsPattern(e); p.SetWidth(v) }),
		"height": lengthSetter(func(e svg.SVGElement, v svg.Length) { p, _ := svg.AsPattern(e); p.SetHeight(v) }),
		"patternUnits": unitsSetter(func(e svg.SVGElement, u svg.Units) {
			p, _ := svg.AsPattern(e)
			p.SetPatternUnits(u)
		}),
		"patternContentUnits": unitsSetter(func(e svg.SVGElement, u svg.Units) {
			p, _ := svg.AsPattern(e)
			p.SetPatternContentUnits(u)
		}),
		"href": hrefSetter(func(e svg.SVGElement, v string) { p, _ := svg.AsPattern(e); p.SetHref(v) }),
	}
}

func stopAttrs() map[string]setter {
	return map[string]setter{
		"offset": func(e svg.SVGElement, raw string) error {
			f, err := ParseOffset(raw)
			s, _ := svg.AsStop(e)
			s.SetOffset(f)
			return err
		},
		"stop-color": func(e svg.SVGElement, raw string) error {
			s, _ := svg.AsStop(e)
			s.SetStopColor(raw)
			return nil
		},
		"stop-opacity": func(e svg.SVGElement, raw string) error {
			f, consumed, err := ParseNumber(raw)
			if err != nil || consumed != len(raw) {
				return errInvalidToken("stop-opacity", raw)
			}
			s, _ := svg.AsStop(e)
			s.SetStopOpacity(clamp01(f))
			return nil
		},
	}
}

func useAttrs() map[string]setter {
	return map[string]setter{
		"x":      lengthSetter(func(e svg.SVGElement, v svg.Length) { u, _ := svg.AsUse(e); u.SetX(v) }),
		"y":      lengthSetter(func(e svg.SVGElement, v svg.Length) { u, _ := svg.AsUse(e); u.SetY(v) }),
		"width":  lengthSetter(func(e svg.SVGElement, v svg.Length) { u, _ := svg.AsUse(e); u.SetWidth(v) }),
		"height": lengthSetter(func(e svg.SVGElement, v svg.Length) { u, _ := svg.AsUse(e); u.SetHeight(v) }),
		"href":   hrefSetter(func(e svg.SVGElement, v string) { u, _ := svg.AsUse(e); u.SetHref(v) }),
	}
}

func maskAttrs() map[string]setter {
	return map[string]setter{
		"x":      lengthSetter(func(e svg.SVGElement, v svg.Length) { m, _ := svg.AsMask(e); m.SetX(v) }),
		"y":      lengthSetter(func(e svg.SVGElement, v svg.Length) { m, _ := svg.AsMask(e); m.SetY(v) }),
		"width":  lengthSetter(func(e svg.SVGElement, v svg.Length) { m, _ := svg.AsMask(e); m.SetWidth(v) }),
		"height": lengthSetter(func(e svg.SVGElement, v svg.Length) { m, _ := svg.AsMask(e); m.SetHeight(v) }),
		"maskUnits": unitsSetter(func(e svg.SVGElement, u svg.Units) {
			m, _ := svg.AsMask(e)
			m.SetMaskUnits(u)
		}),
		"maskContentUnits": unitsSetter(func(e svg.SVGElement, u svg.Units) {
			m, _ := svg.AsMask(e)
			m.SetMaskContentUnits(u)
		}),
	}
}

func filterAttrs() map[string]setter {
	return map[string]setter{
		"x":      lengthSetter(func(e svg.SVGElement, v svg.Length) { f, _ := svg.AsFilter(e); f.SetX(v) }),
		"y":      lengthSetter(func(e svg.SVGElement, v svg.Length) { f, _ := svg.AsFilter(e); f.SetY(v) }),
		"width":  lengthSetter(func(e svg.SVGElement, v svg.Length) { f, _ := svg.AsFilter(e); f.SetWidth(v) }),
		"height": lengthSetter(func(e svg.SVGElement, v svg.Length) { f, _ := svg.AsFilter(e); f.SetHeight(v) }),
		"filterUnits": unitsSetter(func(e svg.SVGElement, u svg.Units) {
			f, _ := svg.AsFilter(e)
			f.SetFilterUnits(u)
		}),
		"primitiveUnits": unitsSetter(func(e svg.SVGElement, u svg.Units) {
			f, _ := svg.AsFilter(e)
			f.SetPrimitiveUnits(u)
		}),
	}
}

func feGaussianBlurAttrs() map[string]setter {
	return map[string]setter{
		"stdDeviation": func(e svg.SVGElement, raw string) error {
			x, y, err := ParseStdDeviation(raw)
			if err != nil {
				return err
			}
			f, _ := svg.AsFeGaussianBlur(e)
			f.SetStdDeviation(x, y)
			return nil
		},
	}
}

func markerAttrs() map[string]setter {
	return map[string]setter{
		"markerUnits": func(e svg.SVGElement, raw string) error {
			u, err := ParseMarkerUnits(raw)
			if err != nil {
				return err
			}
			m, _ := svg.AsMarker(e)
			m.SetMarkerUnits(u)
			return nil
		},
		"orient": func(e svg.SVGElement, raw string) error {
			o, err := ParseOrient(raw)
			if err != nil {
				return err
			}
			m, _ := svg.AsMarker(e)
			m.SetOrient(o)
			return nil
		},
		"refX":          lengthSetter(func(e svg.SVGElement, v svg.Length) { m, _ := svg.AsMarker(e); m.SetRefX(v) }),
		"refY":          lengthSetter(func(e svg.SVGElement, v svg.Length) { m, _ := svg.AsMarker(e); m.SetRefY(v) }),
		"markerWidth":   lengthSetter(func(e svg.SVGElement, v svg.Length) { m, _ := svg.AsMarker(e); m.SetMarkerWidth(v) }),
		"markerHeight":  lengthSetter(func(e svg.SVGElement, v svg.Length) { m, _ := svg.AsMarker(e); m.SetMarkerHeight(v) }),
	}
}

func clipPathAttrs() map[string]setter {
	return map[string]setter{
		"clipPathUnits": unitsSetter(func(e svg.SVGElement, u svg.Units) {
			c, _ := svg.AsClipPath(e)
			c.SetClipPathUnits(u)
		}),
	}
}

func imageAttrs() map[string]setter {
	return map[string]setter{
		"x":      lengthSetter(func(e svg.SVGElement, v svg.Length) { i, _ := svg.AsImage(e); i.SetX(v) }),
		"y":      lengthSetter(func(e svg.SVGElement, v svg.Length) { i, _ := svg.AsImage(e); i.SetY(v) }),
		"width":  lengthSetter(func(e svg.SVGElement, v svg.Length) { i, _ := svg.AsImage(e); i.SetWidth(v) }),
		"height": lengthSetter(func(e svg.SVGElement, v svg.Length) { i, _ := svg.AsImage(e); i.SetHeight(v) }),
		"href":   hrefSetter(func(e svg.SVGElement, v string) { i, _ := svg.AsImage(e); i.SetHref(v) }),
	}
}

func svgRootAttrs() map[string]setter {
	return map[string]setter{
		"x":      lengthSetter(func(e svg.SVGElement, v svg.Length) { s, _ := svg.AsSVG(e); s.SetX(v) }),
		"y":      lengthSetter(func(e svg.SVGElement, v svg.Length) { s, _ := svg.AsSVG(e); s.SetY(v) }),
		"width":  lengthSetter(func(e svg.SVGElement, v svg.Length) { s, _ := svg.AsSVG(e); s.SetWidth(v) }),
		"height": lengthSetter(func(e svg.SVGElement, v svg.Length) { s, _ := svg.AsSVG(e); s.SetHeight(v) }),
		"viewBox": func(e svg.SVGElement, raw string) error {
			vb, err := ParseViewBox(raw)
			if err != nil {
				return err
			}
			s, _ := svg.AsSVG(e)
			s.SetViewBox(vb)
			return nil
		},
		"preserveAspectRatio": func(e svg.SVGElement, raw string) error {
			par, err := ParsePreserveAspectRatio(raw)
			if err != nil {
				return err
			}
			s, _ := svg.AsSVG(e)
			s.SetPreserveAspectRatio(par)
			return nil
		},
	}
}

func styleAttrs() map[string]setter {
	return map[string]setter{
		"type": func(e svg.SVGElement, raw string) error {
			s, _ := svg.AsStyle(e)
			s.SetTypeAttr(raw)
			return nil
		},
	}
}

func textAttrs() map[string]setter {
	return map[string]setter{
		"x": lengthSetter(func(e svg.SVGElement, v svg.Length) { t, _ := svg.AsText(e); t.SetX(v) }),
		"y": lengthSetter(func(e svg.SVGElement, v svg.Length) { t, _ := svg.AsText(e); t.SetY(v) }),
	}
}

func unitsSetter(set func(svg.SVGElement, svg.Units)) setter {
	return func(e svg.SVGElement, raw string) error {
		u, err := ParseUnits(raw)
		if err != nil {
			return err
		}
		set(e, u)
		return nil
	}
}

func spreadMethodSetter(set func(svg.SVGElement, svg.SpreadMethod)) setter {
	return func(e svg.SVGElement, raw string) error {
		s, err := ParseSpreadMethod(raw)
		if err != nil {
			return err
		}
		set(e, s)
		return nil
	}
}
