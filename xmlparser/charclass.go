package xmlparser

// Character predicates are 256-entry lookup tables keyed by byte: a
// branch per byte at table-build time instead of per scanned character.

var nameTable [256]bool // Name: qualified name including ':'
var textTable [256]bool // Text: node content terminators ('<', NUL)

func init() {
	isNameStart := func(b byte) bool {
		return b == '_' || b == ':' ||
			(b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b >= 0x80
	}
	isNameChar := func(b byte) bool {
		return isNameStart(b) || b == '-' || b == '.' || (b >= '0' && b <= '9')
	}

	for i := 0; i < 256; i++ {
		b := byte(i)
		nameTable[i] = isNameChar(b)
		textTable[i] = b != '<' && b != 0
	}
}

func isNameStartByte(b byte) bool {
	return b == '_' || b == ':' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b >= 0x80
}

func isNameByte(b byte) bool { return nameTable[b] }

func isTextByte(b byte) bool { return textTable[b] }

func isWhitespace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}

// quotedStringByte is the "text up to the matching quote" predicate for
// a given quote byte: anything except the quote itself and NUL.
func quotedStringByte(b, quote byte) bool {
	return b != quote && b != 0
}
