package svgparser

import (
	"fmt"
	"strings"

	"github.com/arturoeanton/go-svgxml/diagnostics"
	"github.com/arturoeanton/go-svgxml/fileoffset"
	"github.com/arturoeanton/go-svgxml/svg"
	"github.com/arturoeanton/go-svgxml/svgattr"
	"github.com/arturoeanton/go-svgxml/xmldom"
	"github.com/arturoeanton/go-svgxml/xmlparser"
)

// constructors maps an SVG tag's local name to the typed constructor that
// attaches both the ElementType discriminant and the per-kind component.
var constructors = map[string]func(svg.SVGElement) svg.SVGElement{
	"svg":            func(e svg.SVGElement) svg.SVGElement { return svg.NewSVG(e).SVGElement },
	"g":              func(e svg.SVGElement) svg.SVGElement { return svg.NewG(e).SVGElement },
	"rect":           func(e svg.SVGElement) svg.SVGElement { return svg.NewRect(e).SVGElement },
	"circle":         func(e svg.SVGElement) svg.SVGElement { return svg.NewCircle(e).SVGElement },
	"ellipse":        func(e svg.SVGElement) svg.SVGElement { return svg.NewEllipse(e).SVGElement },
	"line":           func(e svg.SVGElement) svg.SVGElement { return svg.NewLine(e).SVGElement },
	"polygon":        func(e svg.SVGElement) svg.SVGElement { return svg.NewPolygon(e).SVGElement },
	"polyline":       func(e svg.SVGElement) svg.SVGElement { return svg.NewPolyline(e).SVGElement },
	"path":           func(e svg.SVGElement) svg.SVGElement { return svg.NewPath(e).SVGElement },
	"linearGradient": func(e svg.SVGElement) svg.SVGElement { return svg.NewLinearGradient(e).SVGElement },
	"radialGradient": func(e svg.SVGElement) svg.SVGElement { return svg.NewRadialGradient(e).SVGElement },
	"pattern":        func(e svg.SVGElement) svg.SVGElement { return svg.NewPattern(e).SVGElement },
	"stop":           func(e svg.SVGElement) svg.SVGElement { return svg.NewStop(e).SVGElement },
	"use":            func(e svg.SVGElement) svg.SVGElement { return svg.NewUse(e).SVGElement },
	"mask":           func(e svg.SVGElement) svg.SVGElement { return svg.NewMask(e).SVGElement },
	"filter":         func(e svg.SVGElement) svg.SVGElement { return svg.NewFilter(e).SVGElement },
	"feGaussianBlur": func(e svg.SVGElement) svg.SVGElement { return svg.NewFeGaussianBlur(e).SVGElement },
	"marker":         func(e svg.SVGElement) svg.SVGElement { return svg.NewMarker(e).SVGElement },
	"clipPath":       func(e svg.SVGElement) svg.SVGElement { return svg.NewClipPath(e).SVGElement },
	"image":          func(e svg.SVGElement) svg.SVGElement { return svg.NewImage(e).SVGElement },
	"style":          func(e svg.SVGElement) svg.SVGElement { return svg.NewStyle(e).SVGElement },
}

// presentationAttrNames is the heuristic set used to decide whether an
// attribute in an unrecognized namespace "appears to belong to SVG" and
// therefore deserves a warning.
var presentationAttrNames = map[string]bool{
	"fill": true, "stroke": true, "stroke-width": true, "opacity": true,
	"fill-opacity": true, "stroke-opacity": true, "transform": true,
	"x": true, "y": true, "width": true, "height": true,
	"viewBox": true, "d": true, "points": true,
}

// walker holds the mutable state of one Parse call.
type walker struct {
	cfg      Options
	warnings *diagnostics.Collector
	sink     *diagnostics.Sink
}

// Parse walks doc's XML tree and returns the typed SVG root element.
// Warnings (unknown elements, dropped non-SVG-namespace nodes,
// presentation-attribute parse failures, unknown attributes) are
// appended to warnings if non-nil; sink, if non-nil, additionally logs
// through zerolog. A malformed root (missing, not named "svg", or wrong
// namespace) is a fatal error — parsing does not continue without a
// valid SVG root: the first element encountered must be <svg>.
// Under ParseAsInlineSVG a root with no namespace URI gets an xmlns
// attribute set on it, so doc is modified in place.
func Parse(doc *xmldom.XMLDocument, warnings *diagnostics.Collector, sink *diagnostics.Sink, opts ...Option) (svg.SVGElement, error) {
	cfg := resolveOptions(opts)

	rootNode, ok := firstElement(doc.Root())
	if !ok {
		return svg.SVGElement{}, fmt.Errorf("svgparser: document has no root element")
	}
	if rootNode.TagName().Name != "svg" {
		return svg.SVGElement{}, fmt.Errorf("svgparser: root element must be <svg>, found <%s>", rootNode.TagName().String())
	}

	prefix := rootNode.TagName().NamespacePrefix
	ns, hasNS := rootNode.GetNamespaceUri(prefix)
	switch {
	case hasNS && ns == SVGNamespaceURI:
		// Root already properly namespaced.
	case !hasNS && cfg.ParseAsInlineSVG:
		// Root without a namespace URI: treat it as SVG by injecting one.
		rootNode.SetAttribute(xmldom.NewName("xmlns"), SVGNamespaceURI)
	default:
		return svg.SVGElement{}, fmt.Errorf("svgparser: root <svg> element namespace %q does not match %q", ns, SVGNamespaceURI)
	}

	w := &walker{cfg: cfg, warnings: warnings, sink: sink}
	root := w.buildElement(rootNode)
	w.applyAttributes(rootNode, root)
	w.walkChildren(rootNode)
	return root, nil
}

// firstElement returns the first Element-kind child of parent (the
// recorded XML declaration, doctype, comments, and PIs that may precede
// the root tag are not Element nodes).
func firstElement(parent xmldom.XMLNode) (xmldom.XMLNode, bool) {
	child, ok := parent.FirstChild()
	for ok {
		if child.Type() == xmldom.KindElement {
			return child, true
		}
		child, ok = child.NextSibling()
	}
	return xmldom.XMLNode{}, false
}

// walkChildren visits every child of node in document order, recursing
// depth-first pre-order into each accepted SVG-namespace element.
func (w *walker) walkChildren(node xmldom.XMLNode) {
	child, ok := node.FirstChild()
	for ok {
		w.visit(child)
		child, ok = child.NextSibling()
	}
}

// visit builds and attributes one candidate element node, dropping it
// with a warning if it is not in the SVG namespace.
func (w *walker) visit(node xmldom.XMLNode) {
	if node.Type() != xmldom.KindElement {
		return
	}

	name := node.TagName()
	ns, hasNS := node.GetNamespaceUri(name.NamespacePrefix)
	if !hasNS || ns != SVGNamespaceURI {
		w.warn(node, fmt.Sprintf("element <%s> is outside the SVG namespace; dropped", name.String()))
		return
	}

	e := w.buildElement(node)
	w.applyAttributes(node, e)

	if style, ok := svg.AsStyle(e); ok {
		w.captureStyleContent(node, style)
		return
	}
	w.walkChildren(node)
}

// buildElement dispatches on node's local tag name to the typed
// constructor table, falling back to an untyped (TypeUnknown) handle for
// an SVG-namespace element this facade does not recognize.
func (w *walker) buildElement(node xmldom.XMLNode) svg.SVGElement {
	e := svg.NewSVGElement(node)
	tag := node.TagName().Name

	if tag == "text" {
		if !w.cfg.EnableExperimental {
			w.warn(node, "element <text> is experimental and requires EnableExperimental")
			return e
		}
		return svg.NewText(e).SVGElement
	}

	ctor, ok := constructors[tag]
	if !ok {
		w.warn(node, fmt.Sprintf("unknown SVG element <%s>", tag))
		return e
	}
	return ctor(e)
}

// applyAttributes dispatches every attribute on node through
// svgattr.Dispatch, honoring xmlns/xlink namespace tolerance and
// DisableUserAttributes for unrecognized non-presentation attributes.
func (w *walker) applyAttributes(node xmldom.XMLNode, e svg.SVGElement) {
	for _, name := range node.Attributes() {
		value, _ := node.GetAttribute(name)

		if name.NamespacePrefix == "xmlns" || (name.NamespacePrefix == "" && name.Name == "xmlns") {
			continue // namespace declarations are not presentation attributes
		}

		local := name.Name
		if name.NamespacePrefix != "" {
			attrNS, hasAttrNS := node.GetNamespaceUri(name.NamespacePrefix)
			switch {
			case hasAttrNS && attrNS == SVGNamespaceURI:
				// Explicitly re-bound to the SVG namespace: dispatch as if
				// unprefixed.
			case hasAttrNS && attrNS == XLinkNamespaceURI:
				// Tolerated: xlink-namespaced attributes are dispatched by
				// local name without a namespace warning.
			default:
				if presentationAttrNames[local] {
					w.warnAttr(node, name, fmt.Sprintf("attribute %q is in an unrecognized namespace", name.String()))
				}
				continue
			}
		}

		result := svgattr.Dispatch(e, local, value)
		if result.Handled {
			if result.Warning != nil {
				w.warnAttr(node, name, fmt.Sprintf("attribute %q: %v", name.String(), result.Warning))
			}
			continue
		}

		if w.cfg.DisableUserAttributes {
			w.warnAttr(node, name, fmt.Sprintf("unknown attribute %q on <%s>", name.String(), node.TagName().String()))
		} else {
			e.SetRawAttribute(local, value)
		}
	}
}

// captureStyleContent concatenates a <style> element's Data/CData
// children verbatim. The content is accepted as CSS when the element's
// type attribute is empty or "text/css"; otherwise a warning is emitted.
func (w *walker) captureStyleContent(node xmldom.XMLNode, style svg.Style) {
	var sb strings.Builder
	child, ok := node.FirstChild()
	for ok {
		if child.Type() == xmldom.KindData || child.Type() == xmldom.KindCData {
			if v, hasV := child.Value(); hasV {
				sb.WriteString(v)
			}
		}
		child, ok = child.NextSibling()
	}
	style.SetCSS(sb.String())

	if _, accepted := style.CSS(); !accepted {
		w.warn(node, fmt.Sprintf("style element has unsupported type %q", style.TypeAttr()))
	}
}

// warn appends a warning located at node's recorded start offset.
func (w *walker) warn(node xmldom.XMLNode, reason string) {
	w.warnAt(reason, w.nodeOffset(node))
}

// warnAttr appends a warning located at name's recorded attribute span on
// node. If the parser did not retain that span eagerly, and cfg.Source was
// supplied, it re-parses node's own source text on demand via
// xmlparser.ResolveAttributeSpan; failing that, it falls back to node's
// own location.
func (w *walker) warnAttr(node xmldom.XMLNode, name xmldom.QualifiedName, reason string) {
	if w.cfg.Source != "" {
		if span, ok := xmlparser.ResolveAttributeSpan(w.cfg.Source, node, name); ok {
			w.warnAt(reason, span.Start)
			return
		}
	}
	if span, ok := node.GetAttributeSpan(name); ok {
		w.warnAt(reason, span.Start)
		return
	}
	w.warnAt(reason, w.nodeOffset(node))
}

func (w *walker) nodeOffset(node xmldom.XMLNode) fileoffset.FileOffset {
	if r, ok := node.GetNodeLocation(); ok {
		return r.Start
	}
	return fileoffset.EndOfString()
}

func (w *walker) warnAt(reason string, at fileoffset.FileOffset) {
	if w.warnings != nil {
		w.warnings.Add(reason, at)
	}
	if w.sink != nil {
		w.sink.Warn(diagnostics.Warning{Reason: reason, Location: at})
	}
}
