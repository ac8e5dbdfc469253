package xmlparser

import (
	"strconv"
	"strings"

	"github.com/arturoeanton/go-svgxml/fileoffset"
)

// builtinEntities are the five entities every XML processor must recognize
// regardless of any DOCTYPE declaration.
var builtinEntities = map[string]rune{
	"amp":  '&',
	"apos": '\'',
	"quot": '"',
	"lt":   '<',
	"gt":   '>',
}

// expandEntities walks raw (already unescaped from the byte stream, but
// still containing literal "&...;" references) and returns the fully
// expanded text. insideAttribute additionally forbids a literal '<'
// appearing in expanded replacement text, matching the well-formedness
// rule that entity expansion must never introduce markup into an attribute
// value.
//
// If DisableEntityTranslation is set, raw is returned unmodified: this is
// the "treat content as opaque text" escape hatch for callers that want
// the original bytes preserved verbatim (e.g. round-tripping foreign
// markup islands).
func (p *parser) expandEntities(raw string, insideAttribute bool) (string, *fileoffset.ParseError) {
	if p.opts.DisableEntityTranslation || strings.IndexByte(raw, '&') < 0 {
		return raw, nil
	}
	return p.expandEntitiesAt(raw, insideAttribute, 0)
}

// expandEntitiesAt is the recursive worker: depth counts levels of nested
// custom-entity expansion so MaxEntityDepth can cap it, and
// p.substitutions counts every individual reference expanded (built-in,
// numeric, or custom) across the whole document so MaxEntitySubstitutions
// can cap runaway fan-out (the "billion laughs" shape).
func (p *parser) expandEntitiesAt(raw string, insideAttribute bool, depth uint32) (string, *fileoffset.ParseError) {
	var out strings.Builder
	out.Grow(len(raw))

	i := 0
	for i < len(raw) {
		amp := strings.IndexByte(raw[i:], '&')
		if amp < 0 {
			out.WriteString(raw[i:])
			break
		}
		out.WriteString(raw[i : i+amp])
		i += amp

		semi := strings.IndexByte(raw[i:], ';')
		if semi < 0 {
			// No terminating ';': the '&' is passed through literally,
			// matching lenient behavior for a bare ampersand in text.
			out.WriteByte('&')
			i++
			continue
		}
		ref := raw[i+1 : i+semi]
		fullLen := semi + 1

		replacement, isNumeric, perr := p.resolveReference(ref)
		if perr != nil {
			return "", perr
		}
		if replacement == nil {
			// Unknown entity name with custom entities disabled (or not
			// found among declared entities): pass through literally.
			out.WriteString(raw[i : i+fullLen])
			i += fullLen
			continue
		}

		p.substitutions++
		if p.opts.MaxEntitySubstitutions > 0 && p.substitutions > p.opts.MaxEntitySubstitutions {
			err := fileoffset.NewLimitError(entityLimitCodeSubs, "entity substitution count exceeds configured maximum", p.currentOffset())
			if p.sink != nil {
				p.sink.LogLimitHit(entityLimitCodeSubs, "entity substitution count exceeds configured maximum", p.currentOffset(), true)
			}
			return "", err
		}

		expanded := *replacement
		if !isNumeric {
			if depth+1 > p.opts.MaxEntityDepth {
				if p.sink != nil {
					p.sink.LogLimitHit(entityLimitCodeDepth, "nested entity expansion exceeds configured depth, leaving reference unexpanded", p.currentOffset(), false)
				}
				out.WriteString(raw[i : i+fullLen])
				i += fullLen
				continue
			}
			var perr2 *fileoffset.ParseError
			expanded, perr2 = p.expandEntitiesAt(expanded, insideAttribute, depth+1)
			if perr2 != nil {
				return "", perr2
			}
		}

		if insideAttribute && strings.IndexByte(expanded, '<') >= 0 {
			return "", p.createParseError("Entity replacement text introduces '<' into an attribute value")
		}

		out.WriteString(expanded)
		i += fullLen
	}

	return out.String(), nil
}

const (
	entityLimitCodeDepth = "HIT_DEPTH_CAP"
	entityLimitCodeSubs  = "HIT_SUBS_CAP"
)

// resolveReference looks up a bare entity reference body (the text between
// '&' and ';') and returns its replacement text. isNumeric is true for
// character references, which are never subject to the recursive-depth
// cap since they cannot nest.
func (p *parser) resolveReference(ref string) (replacement *string, isNumeric bool, err *fileoffset.ParseError) {
	if strings.HasPrefix(ref, "#") {
		r, perr := p.decodeCharRef(ref[1:])
		if perr != nil {
			return nil, true, perr
		}
		s := string(r)
		return &s, true, nil
	}

	if r, ok := builtinEntities[ref]; ok {
		s := string(r)
		return &s, false, nil
	}

	if !p.opts.ParseCustomEntities {
		return nil, false, nil
	}
	if text, _, ok := p.doc.LookupGeneralEntity(ref); ok {
		return &text, false, nil
	}
	return nil, false, nil
}

// decodeCharRef decodes the digits of a numeric character reference
// ("#nn" => decimal, "#xHH" => hex, the '#' already stripped), rejecting
// UTF-16 surrogates, codepoints past U+10FFFF, and the two noncharacters
// U+FFFE/U+FFFF, matching the well-formedness constraints on Char.
func (p *parser) decodeCharRef(digits string) (rune, *fileoffset.ParseError) {
	var value uint64
	var perr error
	if strings.HasPrefix(digits, "x") || strings.HasPrefix(digits, "X") {
		value, perr = strconv.ParseUint(digits[1:], 16, 32)
	} else {
		value, perr = strconv.ParseUint(digits, 10, 32)
	}
	if perr != nil {
		return 0, p.createParseError("Invalid numeric character reference")
	}

	if value >= 0xD800 && value <= 0xDFFF {
		return 0, p.createParseError("Numeric character reference refers to a UTF-16 surrogate")
	}
	if value > 0x10FFFF {
		return 0, p.createParseError("Numeric character reference exceeds the Unicode codepoint range")
	}
	if value == 0xFFFE || value == 0xFFFF {
		return 0, p.createParseError("Numeric character reference refers to a noncharacter")
	}

	return rune(value), nil
}
