package xmlparser

import (
	"strings"

	"github.com/arturoeanton/go-svgxml/fileoffset"
	"github.com/arturoeanton/go-svgxml/xmldom"
)

// parseDoctype consumes the remainder of a "<!DOCTYPE" production: the
// root element name, an optional external id (SYSTEM/PUBLIC, recorded but
// never fetched), and an optional internal subset in '[' ']'
// holding <!ENTITY> declarations. The whole construct, verbatim, becomes a
// DocType node's value when ParseDoctype is enabled.
func (p *parser) parseDoctype(parent xmldom.XMLNode, startPos int) *fileoffset.ParseError {
	p.skipWhitespace()
	_ = p.consumeName() // root element name; not otherwise validated here

	p.skipWhitespace()
	p.skipExternalID()

	p.skipWhitespace()
	if !p.eof() && p.src[p.pos] == '[' {
		p.pos++
		if err := p.parseInternalSubset(); err != nil {
			return err
		}
	}

	p.skipWhitespace()
	if !p.tryConsume(">") {
		return p.createParseError("Node not closed with '>' or '/>'")
	}

	if p.opts.ParseDoctype {
		value := p.src[startPos:p.pos]
		node := p.doc.CreateDocTypeNode(value)
		node.SetNodeLocation(fileoffset.Range(uint64(startPos), uint64(p.pos)))
		parent.AppendChild(node)
	}
	return nil
}

// skipExternalID consumes an optional "SYSTEM SystemLiteral" or "PUBLIC
// PubidLiteral SystemLiteral" clause. The identifiers are intentionally
// discarded: external DTD subsets are never fetched.
func (p *parser) skipExternalID() {
	switch {
	case p.tryConsume("SYSTEM"):
		p.skipWhitespace()
		p.skipQuotedLiteral()
	case p.tryConsume("PUBLIC"):
		p.skipWhitespace()
		p.skipQuotedLiteral()
		p.skipWhitespace()
		p.skipQuotedLiteral()
	}
}

func (p *parser) skipQuotedLiteral() {
	if p.eof() || (p.src[p.pos] != '"' && p.src[p.pos] != '\'') {
		return
	}
	quote := p.src[p.pos]
	p.pos++
	if idx := strings.IndexByte(p.src[p.pos:], quote); idx >= 0 {
		p.pos += idx + 1
	} else {
		p.pos = len(p.src)
	}
}

// parseInternalSubset consumes declarations up to the matching ']',
// recognizing only <!ENTITY ...> (general and parameter); any other
// markup declaration is skipped to its closing '>' unexamined.
func (p *parser) parseInternalSubset() *fileoffset.ParseError {
	for {
		p.skipWhitespace()
		if p.eof() {
			return p.createParseError("Unterminated DOCTYPE internal subset")
		}
		if p.src[p.pos] == ']' {
			p.pos++
			return nil
		}
		if p.tryConsume("<!ENTITY") {
			if err := p.parseEntityDecl(); err != nil {
				return err
			}
			continue
		}
		if p.src[p.pos] == '<' {
			idx := strings.IndexByte(p.src[p.pos:], '>')
			if idx < 0 {
				return p.createParseError("Unterminated markup declaration in DOCTYPE internal subset")
			}
			p.pos += idx + 1
			continue
		}
		return p.createParseError("Unexpected content in DOCTYPE internal subset")
	}
}

// parseEntityDecl consumes "S? '%'? S? Name S (EntityValue | ExternalID)
// S? '>'" for a single <!ENTITY declaration, already past the "<!ENTITY"
// keyword, and records the declaration on the document if
// ParseCustomEntities is enabled.
func (p *parser) parseEntityDecl() *fileoffset.ParseError {
	p.skipWhitespace()
	isParameter := p.tryConsume("%")
	if isParameter {
		p.skipWhitespace()
	}

	name := p.consumeName()
	if name == "" {
		return p.createParseError("Expected entity name in <!ENTITY declaration")
	}
	p.skipWhitespace()

	var value string
	var isExternal bool

	if !p.eof() && (p.src[p.pos] == '"' || p.src[p.pos] == '\'') {
		quote := p.src[p.pos]
		p.pos++
		start := p.pos
		idx := strings.IndexByte(p.src[p.pos:], quote)
		if idx < 0 {
			return p.createParseError("Unterminated entity value literal")
		}
		value = p.src[start : start+idx]
		p.pos = start + idx + 1
	} else {
		p.skipExternalID()
		isExternal = true
	}

	p.skipWhitespace()
	// An internal subset entity declaration may carry NDATA for unparsed
	// external entities; skip a trailing "NDATA Name" clause if present.
	if p.tryConsume("NDATA") {
		p.skipWhitespace()
		p.consumeName()
		p.skipWhitespace()
	}

	if !p.tryConsume(">") {
		return p.createParseError("Expected '>' to close <!ENTITY declaration")
	}

	if p.opts.ParseCustomEntities {
		if isParameter {
			p.doc.DeclareParameterEntity(name, value, isExternal)
		} else {
			p.doc.DeclareGeneralEntity(name, value, isExternal)
		}
	}
	return nil
}
