package xmlparser

import (
	"strings"

	"github.com/arturoeanton/go-svgxml/diagnostics"
	"github.com/arturoeanton/go-svgxml/fileoffset"
	"github.com/arturoeanton/go-svgxml/xmldom"
)

// parser holds the mutable cursor state for one parse of one source
// buffer. It is not reentrant and not safe for concurrent use, matching
// the rest of this module's single-threaded design.
type parser struct {
	src  string
	pos  int
	opts Options

	doc *xmldom.XMLDocument

	lineOffsets *fileoffset.LineOffsets

	warnings *diagnostics.Collector
	sink     *diagnostics.Sink

	substitutions uint64
}

// Parse runs the full grammar over source and returns the resulting
// document, or a fatal ParseError. Warnings (semantic issues that do not
// abort parsing) are appended to warnings if it is non-nil; sink, if
// non-nil, additionally logs the two stable limit codes through zerolog as
// they fire.
func Parse(source string, warnings *diagnostics.Collector, sink *diagnostics.Sink, opts ...Option) fileoffset.ParseResult[*xmldom.XMLDocument] {
	p := &parser{
		src:         source,
		opts:        resolveOptions(opts),
		doc:         xmldom.NewDocument(),
		lineOffsets: fileoffset.NewLineOffsets(source),
		warnings:    warnings,
		sink:        sink,
	}

	p.parseBOM()

	root := p.doc.Root()
	if err := p.parseNodes(root, ""); err != nil {
		return fileoffset.Err[*xmldom.XMLDocument](err)
	}

	return fileoffset.Ok(p.doc)
}

// currentOffset returns a FileOffset for the current cursor position,
// resolved to line/column via the precomputed LineOffsets.
func (p *parser) currentOffset() fileoffset.FileOffset {
	return p.offsetAt(p.pos)
}

func (p *parser) offsetAt(pos int) fileoffset.FileOffset {
	info := p.lineOffsets.Resolve(uint64(pos))
	return fileoffset.OffsetWithLineInfo(uint64(pos), info.Line, info.Column)
}

func (p *parser) createParseError(reason string) *fileoffset.ParseError {
	return fileoffset.NewParseError(reason, p.currentOffset())
}

func (p *parser) addWarning(reason string, at fileoffset.FileOffset) {
	if p.warnings != nil {
		p.warnings.Add(reason, at)
	}
	if p.sink != nil {
		p.sink.Warn(diagnostics.Warning{Reason: reason, Location: at})
	}
}

func (p *parser) eof() bool { return p.pos >= len(p.src) }

func (p *parser) peekByte() (byte, bool) {
	if p.eof() {
		return 0, false
	}
	return p.src[p.pos], true
}

func (p *parser) tryConsume(s string) bool {
	if strings.HasPrefix(p.src[p.pos:], s) {
		p.pos += len(s)
		return true
	}
	return false
}

func (p *parser) parseBOM() {
	p.tryConsume("\xEF\xBB\xBF")
}

func (p *parser) skipWhitespace() {
	for !p.eof() && isWhitespace(p.src[p.pos]) {
		p.pos++
	}
}

// parseNodes consumes a sequence of nodes (text, elements, comments, PIs,
// CDATA) until either EOF (at the document root) or the closing tag of
// currentTag is encountered (inside an element).
func (p *parser) parseNodes(parent xmldom.XMLNode, currentTag string) *fileoffset.ParseError {
	for {
		p.skipWhitespace()
		if p.eof() {
			if currentTag != "" {
				return p.createParseError("Node not closed with '>' or '/>'")
			}
			return nil
		}

		if strings.HasPrefix(p.src[p.pos:], "</") {
			if currentTag == "" {
				return p.createParseError("Unexpected closing tag at document root")
			}
			return p.parseClosingTag(currentTag)
		}

		b, _ := p.peekByte()
		if b != '<' {
			if err := p.parseText(parent); err != nil {
				return err
			}
			continue
		}

		if err := p.parseNodeStart(parent); err != nil {
			return err
		}
	}
}

// parseClosingTag consumes "</QName S? '>'" and validates it matches
// currentTag, rewinding to the start of the closing tag for a precise
// error on mismatch.
func (p *parser) parseClosingTag(currentTag string) *fileoffset.ParseError {
	startPos := p.pos
	p.pos += len("</")

	name := p.consumeName()
	p.skipWhitespace()
	if !p.tryConsume(">") {
		p.pos = startPos
		return p.createParseError("Expected '>' to close tag")
	}
	if name != currentTag {
		p.pos = startPos
		return p.createParseError("Mismatched closing tag")
	}
	return nil
}

func (p *parser) consumeName() string {
	start := p.pos
	if p.eof() || !isNameStartByte(p.src[p.pos]) {
		return ""
	}
	for !p.eof() && isNameByte(p.src[p.pos]) {
		p.pos++
	}
	return p.src[start:p.pos]
}

// parseNodeStart dispatches on the byte following '<': '?' for PI/XML
// declaration, '!' for comment/CDATA/DOCTYPE, otherwise an element.
func (p *parser) parseNodeStart(parent xmldom.XMLNode) *fileoffset.ParseError {
	startPos := p.pos
	p.pos++ // consume '<'

	if p.eof() {
		return p.createParseError("Unexpected end of input after '<'")
	}

	switch p.src[p.pos] {
	case '?':
		return p.parseProcessingInstructionOrDecl(parent, startPos)
	case '!':
		return p.parseBangNode(parent, startPos)
	default:
		return p.parseElement(parent, startPos)
	}
}

func (p *parser) parseBangNode(parent xmldom.XMLNode, startPos int) *fileoffset.ParseError {
	switch {
	case p.tryConsume("!--"):
		return p.parseComment(parent, startPos)
	case p.tryConsume("![CDATA["):
		return p.parseCData(parent, startPos)
	case strings.HasPrefix(p.src[p.pos:], "!DOCTYPE"):
		p.pos += len("!DOCTYPE")
		return p.parseDoctype(parent, startPos)
	default:
		return p.createParseError("Unknown '<!' construct")
	}
}

func (p *parser) parseComment(parent xmldom.XMLNode, startPos int) *fileoffset.ParseError {
	end := strings.Index(p.src[p.pos:], "-->")
	if end < 0 {
		return p.createParseError("Unterminated comment")
	}
	value := p.src[p.pos : p.pos+end]
	p.pos += end + len("-->")

	if p.opts.ParseComments {
		node := p.doc.CreateCommentNode(value)
		node.SetNodeLocation(fileoffset.Range(uint64(startPos), uint64(p.pos)))
		parent.AppendChild(node)
	}
	return nil
}

func (p *parser) parseCData(parent xmldom.XMLNode, startPos int) *fileoffset.ParseError {
	end := strings.Index(p.src[p.pos:], "]]>")
	if end < 0 {
		return p.createParseError("Unterminated CDATA section")
	}
	value := p.src[p.pos : p.pos+end]
	p.pos += end + len("]]>")

	node := p.doc.CreateCDataNode(value)
	node.SetNodeLocation(fileoffset.Range(uint64(startPos), uint64(p.pos)))
	parent.AppendChild(node)
	return nil
}

func (p *parser) parseProcessingInstructionOrDecl(parent xmldom.XMLNode, startPos int) *fileoffset.ParseError {
	p.pos++ // consume '?'
	target := p.consumeName()
	if target == "" {
		return p.createParseError("Expected target name after '<?'")
	}
	p.skipWhitespace()

	bodyStart := p.pos
	end := strings.Index(p.src[p.pos:], "?>")
	if end < 0 {
		return p.createParseError("Node not closed with '>' or '/>'")
	}
	body := p.src[bodyStart : bodyStart+end]
	p.pos = bodyStart + end + len("?>")

	isDecl := target == "xml"
	if isDecl || p.opts.ParseProcessingInstructions {
		var node xmldom.XMLNode
		if isDecl {
			node = p.doc.CreateProcessingInstructionNode(target, body)
		} else {
			node = p.doc.CreateProcessingInstructionNode(target, body)
		}
		node.SetNodeLocation(fileoffset.Range(uint64(startPos), uint64(p.pos)))
		parent.AppendChild(node)
	}
	return nil
}

// parseText accumulates a text run up to the next '<' (or EOF), expanding
// entities unless disabled, and appends a Data node for the result. A NUL
// byte before the next '<' is rejected rather than silently carried into
// the node's value.
func (p *parser) parseText(parent xmldom.XMLNode) *fileoffset.ParseError {
	startPos := p.pos
	for !p.eof() && isTextByte(p.src[p.pos]) {
		p.pos++
	}
	if !p.eof() && p.src[p.pos] == 0 {
		return p.createParseError("Null character is not allowed in content")
	}
	raw := p.src[startPos:p.pos]

	expanded, perr := p.expandEntities(raw, false)
	if perr != nil {
		return perr
	}

	node := p.doc.CreateTextNode(expanded)
	node.SetNodeLocation(fileoffset.Range(uint64(startPos), uint64(p.pos)))
	node.SetValueLocation(fileoffset.Range(uint64(startPos), uint64(p.pos)))
	parent.AppendChild(node)
	return nil
}

// parseElement consumes "QName (S attribute)* S? ('/>' | '>' children
// '</' QName S? '>')" and appends the resulting Element node (with its
// attributes and children) to parent.
func (p *parser) parseElement(parent xmldom.XMLNode, startPos int) *fileoffset.ParseError {
	rawName := p.consumeName()
	if rawName == "" {
		return p.createParseError("Expected qualified name, found invalid character")
	}
	if err := validateQName(rawName); err != nil {
		return p.createParseError(err.Error())
	}

	node := p.doc.CreateElement(xmldom.ParseQName(rawName))

	if err := p.parseAttributeList(node); err != nil {
		return err
	}

	p.skipWhitespace()
	switch {
	case p.tryConsume("/>"):
		node.SetNodeLocation(fileoffset.Range(uint64(startPos), uint64(p.pos)))
		parent.AppendChild(node)
		return nil
	case p.tryConsume(">"):
		if err := p.parseNodes(node, rawName); err != nil {
			return err
		}
		node.SetNodeLocation(fileoffset.Range(uint64(startPos), uint64(p.pos)))
		parent.AppendChild(node)
		return nil
	default:
		return p.createParseError("Node not closed with '>' or '/>'")
	}
}

func validateQName(raw string) error {
	if idx := strings.IndexByte(raw, ':'); idx == 0 || idx == len(raw)-1 {
		return errInvalidQName
	}
	if strings.Count(raw, ":") > 1 {
		return errInvalidQName
	}
	return nil
}

var errInvalidQName = qnameError{}

type qnameError struct{}

func (qnameError) Error() string { return "Invalid colon placement in qualified name" }

// parseAttributeList consumes zero or more "S attribute" productions.
func (p *parser) parseAttributeList(node xmldom.XMLNode) *fileoffset.ParseError {
	for {
		save := p.pos
		p.skipWhitespace()
		if p.eof() {
			return p.createParseError("Node not closed with '>' or '/>'")
		}
		b := p.src[p.pos]
		if b == '>' || b == '/' {
			p.pos = save
			p.skipWhitespace()
			return nil
		}
		if !isNameStartByte(b) {
			p.pos = save
			p.skipWhitespace()
			return nil
		}

		if err := p.parseAttribute(node); err != nil {
			return err
		}
	}
}

func (p *parser) parseAttribute(node xmldom.XMLNode) *fileoffset.ParseError {
	attrStart := p.pos
	name := p.consumeName()
	if name == "" {
		return p.createParseError("Expected qualified name, found invalid character")
	}
	if err := validateQName(name); err != nil {
		return p.createParseError(err.Error())
	}

	p.skipWhitespace()
	if !p.tryConsume("=") {
		return p.createParseError("Expected '=' after attribute name")
	}
	p.skipWhitespace()

	if p.eof() || (p.src[p.pos] != '"' && p.src[p.pos] != '\'') {
		return p.createParseError("Expected quoted attribute value")
	}
	quote := p.src[p.pos]
	p.pos++
	valueStart := p.pos
	for p.pos < len(p.src) && quotedStringByte(p.src[p.pos], quote) {
		p.pos++
	}
	if p.pos >= len(p.src) {
		return p.createParseError("Unterminated attribute value")
	}
	if p.src[p.pos] != quote {
		return p.createParseError("Null character is not allowed in attribute value")
	}
	valueEnd := p.pos
	rawValue := p.src[valueStart:valueEnd]
	p.pos++

	expanded, perr := p.expandEntities(rawValue, true)
	if perr != nil {
		return perr
	}

	node.SetAttributeSpanned(
		xmldom.ParseQName(name),
		expanded,
		fileoffset.Range(uint64(attrStart), uint64(p.pos)),
		fileoffset.Range(uint64(valueStart), uint64(valueEnd)),
	)
	return nil
}
