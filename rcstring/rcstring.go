// Package rcstring provides the string layer the rest of the ingestion
// pipeline is built on: a reference-counted-in-spirit string value that
// avoids copying source bytes as the DOM is built. Short strings are always
// materialized as independent copies; long ones alias their parent's
// backing array as a zero-copy view.
//
// A Go string header is already a (pointer, length) pair over an immutable
// backing array, so slicing a string is already zero-copy, and the garbage
// collector already keeps a backing array alive for as long as any slice
// of it is reachable. RcString is therefore a thin value type over the
// native string, whose only real job is bounding how long a large buffer
// is pinned alive by a tiny slice of it: `Substr` clones short results via
// strings.Clone so a one-byte slice of a 10MB document doesn't keep the
// whole 10MB alive.
package rcstring

import (
	"strings"
)

// InlineThreshold is the small-string cutoff (2*sizeof(void*)-1 on a
// typical 64-bit build). At or below this length, Substr always
// materializes an independent copy instead of aliasing the parent's
// backing array.
const InlineThreshold = 15

// RcString is an immutable, comparable string value.
//
// It never allocates on construction from an existing Go string (Go strings
// are already immutable), so New is just a type conversion. The interesting
// operation is Substr, which decides whether to alias or copy.
type RcString string

// New wraps s. Go's runtime already owns s's backing array, so this is an
// "adopt, don't copy" conversion rather than an allocation.
func New(s string) RcString { return RcString(s) }

// FromBytes adopts b as the string's storage. Callers must not mutate b
// afterwards.
func FromBytes(b []byte) RcString { return RcString(string(b)) }

// Empty reports whether the string has zero length.
func (s RcString) Empty() bool { return len(s) == 0 }

// Size returns the length in bytes.
func (s RcString) Size() int { return len(s) }

// String returns the underlying Go string. O(1), no copy.
func (s RcString) String() string { return string(s) }

// Bytes returns the content as a byte slice. Like any []byte(string)
// conversion this copies (Go requires it for safety); callers needing
// zero-copy access should use String() and range over it.
func (s RcString) Bytes() []byte { return []byte(s) }

// Substr returns the substring [pos, pos+n). If the requested slice is
// short (<= InlineThreshold) or s is already short, the result is an
// independent copy via strings.Clone so the small result does not pin a
// large backing array alive. Otherwise the result aliases s's storage as
// a shared view, the Go string header standing in for a refcount bump.
func (s RcString) Substr(pos, n int) RcString {
	end := pos + n
	if pos < 0 || n < 0 || end > len(s) {
		panic("rcstring: Substr out of range")
	}
	sliced := string(s)[pos:end]
	if n <= InlineThreshold {
		return RcString(strings.Clone(sliced))
	}
	return RcString(sliced)
}

// EqualsIgnoreCase performs ASCII-only case-insensitive comparison; it
// deliberately does no locale-aware folding.
func (s RcString) EqualsIgnoreCase(other RcString) bool {
	if len(s) != len(other) {
		return false
	}
	for i := 0; i < len(s); i++ {
		if asciiLower(s[i]) != asciiLower(other[i]) {
			return false
		}
	}
	return true
}

// EqualsLowercase reports whether s, case-folded, equals the already-lower
// string other. Useful for matching against static lowercase literals
// without allocating.
func (s RcString) EqualsLowercase(other string) bool {
	if len(s) != len(other) {
		return false
	}
	for i := 0; i < len(s); i++ {
		if asciiLower(s[i]) != other[i] {
			return false
		}
	}
	return true
}

func asciiLower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

// Compare gives a strong total order over bytes, matching operator<=>.
func (s RcString) Compare(other RcString) int {
	return strings.Compare(string(s), string(other))
}

// RcStringOrRef is a tagged union of a borrowed string view and an owning
// RcString. The zero value holds an empty borrowed view.
//
// Using the borrowed variant as a map key (or storing it past the
// lifetime of the referent) is only sound if the referent outlives the
// map; the owning variant is always safe. Go has no borrow checker to
// enforce that, so callers that need long-lived keys should call Owned()
// first.
type RcStringOrRef struct {
	borrowed string
	owned    RcString
	isOwned  bool
}

// Borrowed constructs a non-owning view over s.
func Borrowed(s string) RcStringOrRef { return RcStringOrRef{borrowed: s} }

// Owning constructs an owning reference.
func Owning(s RcString) RcStringOrRef { return RcStringOrRef{owned: s, isOwned: true} }

// Value returns the string content regardless of variant.
func (r RcStringOrRef) Value() string {
	if r.isOwned {
		return string(r.owned)
	}
	return r.borrowed
}

// IsOwned reports whether this reference owns its storage.
func (r RcStringOrRef) IsOwned() bool { return r.isOwned }

// Owned returns an owning copy, cloning the borrowed view if necessary so
// the result is safe to retain past the referent's lifetime.
func (r RcStringOrRef) Owned() RcString {
	if r.isOwned {
		return r.owned
	}
	return RcString(strings.Clone(r.borrowed))
}
