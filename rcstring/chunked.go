package rcstring

import "strings"

// ChunkedString is an ordered sequence of fragments presenting a single
// logical string, with O(1) Append/Prepend and a lazily-materialized flat
// form. It backs the entity-expansion accumulator in the xmlparser package:
// rather than repeatedly concatenating growing strings while expanding
// entities, fragments (literal runs, expanded entity text) are appended and
// only flattened into one buffer when the caller needs contiguous bytes.
type ChunkedString struct {
	fragments []RcString
	total     int
}

// NewChunkedString returns an empty chunked string.
func NewChunkedString() *ChunkedString {
	return &ChunkedString{}
}

// Len returns the total length in bytes, kept in sync with the fragment
// list on every mutation: total always equals the sum of each fragment's
// size.
func (c *ChunkedString) Len() int { return c.total }

// NumFragments reports how many discontiguous fragments make up the string.
func (c *ChunkedString) NumFragments() int { return len(c.fragments) }

// Append adds s as a new trailing fragment. O(1) amortized; no bytes are
// copied.
func (c *ChunkedString) Append(s RcString) {
	if s.Empty() {
		return
	}
	c.fragments = append(c.fragments, s)
	c.total += s.Size()
}

// AppendString is a convenience wrapper over Append for callers holding a
// plain Go string.
func (c *ChunkedString) AppendString(s string) {
	if s == "" {
		return
	}
	c.Append(New(s))
}

// Prepend inserts s as the new first fragment. The original documents this
// as "O(k) for k existing fragments in the list-splice sense" and suggests
// callers batch prepends; the Go slice-based implementation here has the
// same shape (shifting the backing array), so the same caller guidance
// applies.
func (c *ChunkedString) Prepend(s RcString) {
	if s.Empty() {
		return
	}
	c.fragments = append([]RcString{s}, c.fragments...)
	c.total += s.Size()
}

// RemovePrefix drops n bytes from the logical start of the string, removing
// or shrinking leading fragments as needed.
func (c *ChunkedString) RemovePrefix(n int) {
	if n <= 0 {
		return
	}
	if n > c.total {
		panic("rcstring: RemovePrefix exceeds length")
	}
	remaining := n
	idx := 0
	for remaining > 0 {
		frag := c.fragments[idx]
		if frag.Size() <= remaining {
			remaining -= frag.Size()
			idx++
			continue
		}
		c.fragments[idx] = frag.Substr(remaining, frag.Size()-remaining)
		remaining = 0
	}
	c.fragments = c.fragments[idx:]
	c.total -= n
}

// At returns the byte at logical index i. Linear in the number of
// chunks.
func (c *ChunkedString) At(i int) byte {
	if i < 0 || i >= c.total {
		panic("rcstring: index out of range")
	}
	offset := 0
	for _, frag := range c.fragments {
		if i < offset+frag.Size() {
			return frag.String()[i-offset]
		}
		offset += frag.Size()
	}
	panic("rcstring: unreachable")
}

// Substr returns a new ChunkedString covering the logical range
// [pos, pos+n), reusing fragments (or slices of fragments) with no copying
// beyond what RcString.Substr itself performs.
func (c *ChunkedString) Substr(pos, n int) *ChunkedString {
	end := pos + n
	if pos < 0 || n < 0 || end > c.total {
		panic("rcstring: Substr out of range")
	}
	result := NewChunkedString()
	offset := 0
	for _, frag := range c.fragments {
		fragStart := offset
		fragEnd := offset + frag.Size()
		offset = fragEnd
		if fragEnd <= pos || fragStart >= end {
			continue
		}
		lo := max(pos, fragStart) - fragStart
		hi := min(end, fragEnd) - fragStart
		result.Append(frag.Substr(lo, hi-lo))
	}
	return result
}

// Find returns the logical byte offset of the first occurrence of needle,
// or -1 if absent. Implemented by flattening, which is acceptable here
// since Find is a cold path relative to Append during parsing.
func (c *ChunkedString) Find(needle string) int {
	return strings.Index(c.ToSingleRcString().String(), needle)
}

// StartsWith reports whether the logical string begins with prefix.
func (c *ChunkedString) StartsWith(prefix string) bool {
	if len(prefix) > c.total {
		return false
	}
	return c.Substr(0, len(prefix)).ToSingleRcString().String() == prefix
}

// EndsWith reports whether the logical string ends with suffix.
func (c *ChunkedString) EndsWith(suffix string) bool {
	if len(suffix) > c.total {
		return false
	}
	return c.Substr(c.total-len(suffix), len(suffix)).ToSingleRcString().String() == suffix
}

// ToSingleRcString materializes the chunked string into one contiguous
// RcString. If there is exactly one fragment it is returned directly (no
// allocation); otherwise exactly total bytes are allocated once and every
// fragment is appended into it.
func (c *ChunkedString) ToSingleRcString() RcString {
	switch len(c.fragments) {
	case 0:
		return New("")
	case 1:
		return c.fragments[0]
	}
	var b strings.Builder
	b.Grow(c.total)
	for _, frag := range c.fragments {
		b.WriteString(frag.String())
	}
	return New(b.String())
}
