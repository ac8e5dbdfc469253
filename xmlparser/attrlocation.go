package xmlparser

import (
	"strings"

	"github.com/arturoeanton/go-svgxml/fileoffset"
	"github.com/arturoeanton/go-svgxml/xmldom"
)

// AttributeLocation is the span of an attribute's name and of its value
// (excluding quotes) within the original source, as recovered by
// GetAttributeLocation.
type AttributeLocation struct {
	NameStart, NameEnd   uint64
	ValueStart, ValueEnd uint64
	Found                bool
}

// Span returns the full attribute token's range ("name=\"value\""),
// including the surrounding quotes.
func (l AttributeLocation) Span() fileoffset.FileOffsetRange {
	return fileoffset.Range(l.NameStart, l.ValueEnd+1)
}

// ValueSpan returns the attribute value's range, excluding quotes.
func (l AttributeLocation) ValueSpan() fileoffset.FileOffsetRange {
	return fileoffset.Range(l.ValueStart, l.ValueEnd)
}

// GetAttributeLocation re-parses the element's own attribute list,
// starting from nodeSource (the element's full source span, "<tag ...>"
// or "<tag .../>" ), to recover the precise span of a single named
// attribute. It exists as a cheap on-demand alternative to recording every
// attribute's span eagerly for documents that never need it.
//
// offset is nodeSource's own absolute start offset within the document, so
// returned spans are absolute.
func GetAttributeLocation(nodeSource string, offset uint64, attrName string) AttributeLocation {
	i := 0
	if i < len(nodeSource) && nodeSource[i] == '<' {
		i++
	}
	for i < len(nodeSource) && isNameByte(nodeSource[i]) {
		i++
	}

	for i < len(nodeSource) {
		for i < len(nodeSource) && isWhitespace(nodeSource[i]) {
			i++
		}
		if i >= len(nodeSource) || !isNameStartByte(nodeSource[i]) {
			break
		}

		nameStart := i
		for i < len(nodeSource) && isNameByte(nodeSource[i]) {
			i++
		}
		name := nodeSource[nameStart:i]
		nameEnd := i

		for i < len(nodeSource) && isWhitespace(nodeSource[i]) {
			i++
		}
		if i >= len(nodeSource) || nodeSource[i] != '=' {
			break
		}
		i++
		for i < len(nodeSource) && isWhitespace(nodeSource[i]) {
			i++
		}
		if i >= len(nodeSource) || (nodeSource[i] != '"' && nodeSource[i] != '\'') {
			break
		}
		quote := nodeSource[i]
		i++
		valueStart := i
		idx := strings.IndexByte(nodeSource[i:], quote)
		if idx < 0 {
			break
		}
		valueEnd := i + idx
		i = valueEnd + 1

		if name == attrName {
			return AttributeLocation{
				NameStart:  offset + uint64(nameStart),
				NameEnd:    offset + uint64(nameEnd),
				ValueStart: offset + uint64(valueStart),
				ValueEnd:   offset + uint64(valueEnd),
				Found:      true,
			}
		}
	}

	return AttributeLocation{}
}

// ResolveAttributeSpan returns name's full attribute-token span on node:
// the span the parser recorded eagerly if one is present, otherwise an
// on-demand re-parse of node's own recorded source text via
// GetAttributeLocation. source is the document's full source buffer that
// node's recorded span is an offset into.
func ResolveAttributeSpan(source string, node xmldom.XMLNode, name xmldom.QualifiedName) (fileoffset.FileOffsetRange, bool) {
	if span, ok := node.GetAttributeSpan(name); ok {
		return span, true
	}

	nodeLoc, ok := node.GetNodeLocation()
	if !ok || nodeLoc.Start.Offset == nil || nodeLoc.End.Offset == nil {
		return fileoffset.FileOffsetRange{}, false
	}
	start, end := *nodeLoc.Start.Offset, *nodeLoc.End.Offset
	if end > uint64(len(source)) || start > end {
		return fileoffset.FileOffsetRange{}, false
	}

	loc := GetAttributeLocation(source[start:end], start, name.String())
	if !loc.Found {
		return fileoffset.FileOffsetRange{}, false
	}
	return loc.Span(), true
}
