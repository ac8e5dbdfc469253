package sourcedoc

import (
	"strings"

	"github.com/arturoeanton/go-svgxml/fileoffset"
	"github.com/arturoeanton/go-svgxml/rcstring"
	"github.com/arturoeanton/go-svgxml/xmldom"
)

// LocalizedEditBuilder synthesizes a Replacement for a DOM node that has
// no recorded source span — typically a node constructed programmatically
// after parsing — anchored to a neighboring node whose span is known.
type LocalizedEditBuilder struct {
	source     string
	indentUnit string
}

// NewLocalizedEditBuilder builds an editor over source, indenting
// synthesized children by indentUnit per nesting level (e.g. "  " or "\t").
func NewLocalizedEditBuilder(source, indentUnit string) *LocalizedEditBuilder {
	return &LocalizedEditBuilder{source: source, indentUnit: indentUnit}
}

func nodeRange(n xmldom.XMLNode) (fileoffset.FileOffsetRange, bool) {
	return n.GetNodeLocation()
}

// InsertBeforeSibling anchors the insertion at sibling's start offset,
// inferring indentation from the source line the sibling begins on. If
// only spaces/tabs separate the anchor from a preceding newline, a matching
// newline + indent is appended after the serialized node so it lands on
// its own line.
func (b *LocalizedEditBuilder) InsertBeforeSibling(node, sibling xmldom.XMLNode) (Replacement, bool) {
	siblingRange, ok := nodeRange(sibling)
	if !ok || siblingRange.Start.Offset == nil {
		return Replacement{}, false
	}

	anchor := *siblingRange.Start.Offset
	indent := b.inferIndentation(anchor)
	serialized := b.serializeNode(node, indent)

	if b.isLineBreakBefore(anchor) {
		serialized = strings.TrimPrefix(serialized, indent)
		serialized += "\n" + indent
	}

	return Replacement{
		Range: fileoffset.Range(anchor, anchor),
		Text:  rcstring.New(serialized),
	}, true
}

// AppendChild anchors the insertion at the start of parent's closing tag
// (the last "</" in its recorded span, or "/>" if self-closing).
func (b *LocalizedEditBuilder) AppendChild(node, parent xmldom.XMLNode) (Replacement, bool) {
	closingStart, ok := b.closingTagStart(parent)
	if !ok || closingStart.Offset == nil {
		return Replacement{}, false
	}

	anchor := *closingStart.Offset
	indent := b.inferIndentation(anchor)
	serialized := b.serializeNode(node, indent)
	if !strings.HasSuffix(serialized, "\n") {
		serialized += "\n"
	}
	serialized += indent

	return Replacement{
		Range: fileoffset.Range(anchor, anchor),
		Text:  rcstring.New(serialized),
	}, true
}

// RemoveNode replaces node's entire recorded span with the empty string.
func (b *LocalizedEditBuilder) RemoveNode(node xmldom.XMLNode) (Replacement, bool) {
	r, ok := nodeRange(node)
	if !ok {
		return Replacement{}, false
	}
	return Replacement{Range: r, Text: rcstring.New("")}, true
}

// inferIndentation scans backward from the nearest preceding newline to
// anchorOffset, collecting the run of spaces/tabs that precedes it: the
// line prefix up to the anchor.
func (b *LocalizedEditBuilder) inferIndentation(anchorOffset uint64) string {
	if len(b.source) == 0 {
		return ""
	}
	cappedOffset := anchorOffset
	if int(cappedOffset) >= len(b.source) {
		cappedOffset = uint64(len(b.source) - 1)
	}

	newlinePos := strings.LastIndexByte(b.source[:cappedOffset+1], '\n')
	indentStart := 0
	if newlinePos >= 0 {
		indentStart = newlinePos + 1
	}
	indentEnd := indentStart
	for uint64(indentEnd) < anchorOffset && (b.source[indentEnd] == ' ' || b.source[indentEnd] == '\t') {
		indentEnd++
	}
	return b.source[indentStart:indentEnd]
}

// isLineBreakBefore reports whether, scanning backward over spaces/tabs
// from anchorOffset, the next preceding character is a newline.
func (b *LocalizedEditBuilder) isLineBreakBefore(anchorOffset uint64) bool {
	if len(b.source) == 0 {
		return false
	}
	scan := anchorOffset
	for scan > 0 && (b.source[scan-1] == ' ' || b.source[scan-1] == '\t') {
		scan--
	}
	if scan == 0 {
		return false
	}
	return b.source[scan-1] == '\n'
}

// closingTagStart finds the start of node's closing delimiter within its
// own recorded span: the last "</" if present, else the last "/>".
func (b *LocalizedEditBuilder) closingTagStart(node xmldom.XMLNode) (fileoffset.FileOffset, bool) {
	r, ok := nodeRange(node)
	if !ok || r.Start.Offset == nil || r.End.Offset == nil {
		return fileoffset.FileOffset{}, false
	}
	start, end := *r.Start.Offset, *r.End.Offset
	if start >= uint64(len(b.source)) || end > uint64(len(b.source)) || start >= end {
		return fileoffset.FileOffset{}, false
	}

	window := b.source[start:end]
	if pos := strings.LastIndex(window, "</"); pos >= 0 {
		return fileoffset.Offset(start + uint64(pos)), true
	}
	if pos := strings.LastIndex(window, "/>"); pos >= 0 {
		return fileoffset.Offset(start + uint64(pos)), true
	}
	return fileoffset.FileOffset{}, false
}

// xmlEscaper escapes the characters that would otherwise end or corrupt a
// double-quoted attribute value or a run of text content.
var xmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")

func serializeAttributes(node xmldom.XMLNode) string {
	var b strings.Builder
	for _, name := range node.Attributes() {
		value, _ := node.GetAttribute(name)
		b.WriteByte(' ')
		b.WriteString(name.String())
		b.WriteString(`="`)
		b.WriteString(xmlEscaper.Replace(value))
		b.WriteByte('"')
	}
	return b.String()
}

// serializeNode renders node and, for elements, its children, as XML text
// indented at the given level. This is the small local printer the
// original documents rather than a general-purpose serializer: it only
// needs to produce output plausible enough to round-trip through another
// parse, not to match any particular formatting convention.
func (b *LocalizedEditBuilder) serializeNode(node xmldom.XMLNode, indent string) string {
	switch node.Type() {
	case xmldom.KindDocument:
		return ""
	case xmldom.KindData:
		value, _ := node.Value()
		return indent + xmlEscaper.Replace(value)
	case xmldom.KindCData:
		value, _ := node.Value()
		return indent + "<![CDATA[" + value + "]]>"
	case xmldom.KindComment:
		value, _ := node.Value()
		return indent + "<!--" + value + "-->"
	case xmldom.KindDocType:
		value, _ := node.Value()
		return indent + "<!DOCTYPE " + value + ">"
	case xmldom.KindProcessingInstruction, xmldom.KindXMLDeclaration:
		value, hasValue := node.Value()
		target := node.TagName().String()
		s := indent + "<?" + target
		if hasValue && value != "" {
			s += " " + value
		}
		return s + "?>"
	case xmldom.KindElement:
		tag := node.TagName().String()
		attrs := serializeAttributes(node)
		value, hasValue := node.Value()
		_, hasChildren := node.FirstChild()

		var buf strings.Builder
		buf.WriteString(indent)
		buf.WriteByte('<')
		buf.WriteString(tag)
		buf.WriteString(attrs)

		if !hasValue && !hasChildren {
			buf.WriteString("/>")
			return buf.String()
		}

		buf.WriteByte('>')
		if hasValue {
			buf.WriteString(value)
		}

		if hasChildren {
			buf.WriteByte('\n')
			childIndent := indent + b.indentUnit
			for child, ok := node.FirstChild(); ok; child, ok = child.NextSibling() {
				buf.WriteString(b.serializeNode(child, childIndent))
				buf.WriteByte('\n')
			}
			buf.WriteString(indent)
		}

		buf.WriteString("</")
		buf.WriteString(tag)
		buf.WriteByte('>')
		return buf.String()
	}
	return ""
}
