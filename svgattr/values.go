package svgattr

import (
	"strconv"
	"strings"

	"github.com/arturoeanton/go-svgxml/svg"
)

// splitListTokens splits a whitespace-and-optional-comma separated list,
// the delimiter grammar shared by viewBox, points, and stdDeviation.
func splitListTokens(raw string) []string {
	return strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
}

// ParseViewBox parses the four-number viewBox attribute value
// ("min-x min-y width height").
func ParseViewBox(raw string) (svg.ViewBox, error) {
	tokens := splitListTokens(raw)
	if len(tokens) != 4 {
		return svg.ViewBox{}, errWrongTokenCount("viewBox", 4, len(tokens))
	}
	nums := make([]float64, 4)
	for i, tok := range tokens {
		f, consumed, err := ParseNumber(tok)
		if err != nil || consumed != len(tok) {
			return svg.ViewBox{}, errInvalidToken("viewBox", tok)
		}
		nums[i] = f
	}
	return svg.ViewBox{MinX: nums[0], MinY: nums[1], Width: nums[2], Height: nums[3]}, nil
}

// ParsePreserveAspectRatio parses "[defer] <align> [meet|slice]". The
// optional leading "defer" keyword (meaningful only for <image> external
// resource loading, an external collaborator) is accepted and discarded.
func ParsePreserveAspectRatio(raw string) (svg.PreserveAspectRatio, error) {
	tokens := strings.Fields(raw)
	if len(tokens) > 0 && tokens[0] == "defer" {
		tokens = tokens[1:]
	}
	if len(tokens) == 0 {
		return svg.PreserveAspectRatio{}, errInvalidToken("preserveAspectRatio", raw)
	}

	align, ok := alignFromToken(tokens[0])
	if !ok {
		return svg.PreserveAspectRatio{}, errInvalidToken("preserveAspectRatio", tokens[0])
	}

	result := svg.PreserveAspectRatio{Align: align, MeetOrSlice: svg.Meet}
	if len(tokens) > 1 {
		switch tokens[1] {
		case "meet":
			result.MeetOrSlice = svg.Meet
		case "slice":
			result.MeetOrSlice = svg.Slice
		default:
			return svg.PreserveAspectRatio{}, errInvalidToken("preserveAspectRatio", tokens[1])
		}
	}
	return result, nil
}

func alignFromToken(tok string) (svg.Align, bool) {
	switch tok {
	case "none":
		return svg.AlignNone, true
	case "xMinYMin":
		return svg.AlignXMinYMin, true
	case "xMidYMin":
		return svg.AlignXMidYMin, true
	case "xMaxYMin":
		return svg.AlignXMaxYMin, true
	case "xMinYMid":
		return svg.AlignXMinYMid, true
	case "xMidYMid":
		return svg.AlignXMidYMid, true
	case "xMaxYMid":
		return svg.AlignXMaxYMid, true
	case "xMinYMax":
		return svg.AlignXMinYMax, true
	case "xMidYMax":
		return svg.AlignXMidYMax, true
	case "xMaxYMax":
		return svg.AlignXMaxYMax, true
	default:
		return svg.AlignNone, false
	}
}

// ParsePoints parses a polygon/polyline points attribute into coordinate
// pairs. Partial parses are non-fatal: a trailing unpaired or malformed
// number stops parsing and returns the points collected so far, with
// ok=false signaling that the value was not fully consumed (the caller
// still gets a usable, if partial, point list).
func ParsePoints(raw string) (points []svg.Point, ok bool) {
	tokens := splitListTokens(raw)
	ok = true
	for i := 0; i+1 < len(tokens); i += 2 {
		x, xConsumed, xErr := ParseNumber(tokens[i])
		y, yConsumed, yErr := ParseNumber(tokens[i+1])
		if xErr != nil || yErr != nil || xConsumed != len(tokens[i]) || yConsumed != len(tokens[i+1]) {
			ok = false
			break
		}
		points = append(points, svg.Point{X: x, Y: y})
	}
	if len(tokens)%2 != 0 {
		ok = false
	}
	return points, ok
}

// ParseUnits parses the shared "objectBoundingBox | userSpaceOnUse" enum
// behind gradientUnits, patternUnits, clipPathUnits, maskUnits,
// maskContentUnits, filterUnits, and primitiveUnits. markerUnits has a
// different token set and is parsed by ParseMarkerUnits instead.
func ParseUnits(raw string) (svg.Units, error) {
	switch raw {
	case "objectBoundingBox":
		return svg.UnitsObjectBoundingBox, nil
	case "userSpaceOnUse":
		return svg.UnitsUserSpaceOnUse, nil
	default:
		return 0, errInvalidToken("units", raw)
	}
}

// ParseMarkerUnits parses markerUnits' "strokeWidth | userSpaceOnUse"
// enum, folded onto the shared svg.Units type (strokeWidth maps to
// UnitsObjectBoundingBox, the "scales with the referencing shape" side of
// the enum, mirroring how gradientUnits' objectBoundingBox plays the same
// role for fractional coordinates).
func ParseMarkerUnits(raw string) (svg.Units, error) {
	switch raw {
	case "strokeWidth":
		return svg.UnitsObjectBoundingBox, nil
	case "userSpaceOnUse":
		return svg.UnitsUserSpaceOnUse, nil
	default:
		return 0, errInvalidToken("markerUnits", raw)
	}
}

// ParseSpreadMethod parses the gradient spreadMethod attribute.
func ParseSpreadMethod(raw string) (svg.SpreadMethod, error) {
	switch raw {
	case "pad":
		return svg.SpreadPad, nil
	case "reflect":
		return svg.SpreadReflect, nil
	case "repeat":
		return svg.SpreadRepeat, nil
	default:
		return 0, errInvalidToken("spreadMethod", raw)
	}
}

// ParseOrient parses marker's orient attribute: "auto",
// "auto-start-reverse", or a bare/angle-suffixed number (degrees default
// when the unit is omitted).
func ParseOrient(raw string) (svg.Orient, error) {
	switch raw {
	case "auto":
		return svg.Orient{Kind: svg.OrientAuto}, nil
	case "auto-start-reverse":
		return svg.Orient{Kind: svg.OrientAutoStartReverse}, nil
	}

	raw = strings.TrimSpace(raw)
	degrees, err := parseAngle(raw)
	if err != nil {
		return svg.Orient{}, errInvalidToken("orient", raw)
	}
	return svg.Orient{Kind: svg.OrientAngle, AngleDegrees: degrees}, nil
}

func parseAngle(raw string) (float64, error) {
	switch {
	case strings.HasSuffix(raw, "deg"):
		return strconv.ParseFloat(strings.TrimSuffix(raw, "deg"), 64)
	case strings.HasSuffix(raw, "grad"):
		v, err := strconv.ParseFloat(strings.TrimSuffix(raw, "grad"), 64)
		return v * 0.9, err
	case strings.HasSuffix(raw, "rad"):
		v, err := strconv.ParseFloat(strings.TrimSuffix(raw, "rad"), 64)
		return v * 180 / 3.14159265358979323846, err
	default:
		// Bare number: degrees is the default unit
		return strconv.ParseFloat(raw, 64)
	}
}

// ParseStdDeviation parses feGaussianBlur's stdDeviation: one number
// (applied to both axes) or two space/comma-separated numbers.
func ParseStdDeviation(raw string) (x, y float64, err error) {
	tokens := splitListTokens(raw)
	switch len(tokens) {
	case 1:
		f, consumed, numErr := ParseNumber(tokens[0])
		if numErr != nil || consumed != len(tokens[0]) {
			return 0, 0, errInvalidToken("stdDeviation", raw)
		}
		return f, f, nil
	case 2:
		fx, cx, errX := ParseNumber(tokens[0])
		fy, cy, errY := ParseNumber(tokens[1])
		if errX != nil || errY != nil || cx != len(tokens[0]) || cy != len(tokens[1]) {
			return 0, 0, errInvalidToken("stdDeviation", raw)
		}
		return fx, fy, nil
	default:
		return 0, 0, errWrongTokenCount("stdDeviation", 1, len(tokens))
	}
}

// ParseOffset parses a gradient stop's offset: a bare number or a
// percentage, clamped to [0,1]
func ParseOffset(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if strings.HasSuffix(raw, "%") {
		f, err := strconv.ParseFloat(strings.TrimSuffix(raw, "%"), 64)
		if err != nil {
			return 0, errInvalidToken("offset", raw)
		}
		return clamp01(f / 100), nil
	}
	f, consumed, err := ParseNumber(raw)
	if err != nil || consumed != len(raw) {
		return 0, errInvalidToken("offset", raw)
	}
	return clamp01(f), nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

type wrongTokenCountError struct {
	attr     string
	expected int
	got      int
}

func errWrongTokenCount(attr string, expected, got int) error {
	return wrongTokenCountError{attr: attr, expected: expected, got: got}
}
func (e wrongTokenCountError) Error() string {
	return "svgattr: " + e.attr + " expects " + strconv.Itoa(e.expected) +
		" numbers, got " + strconv.Itoa(e.got)
}

type invalidTokenError struct {
	attr, token string
}

func errInvalidToken(attr, token string) error {
	return invalidTokenError{attr: attr, token: token}
}
func (e invalidTokenError) Error() string {
	return "svgattr: invalid " + e.attr + " token \"" + e.token + "\""
}
