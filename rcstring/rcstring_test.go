package rcstring

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// ============================================================================
// 1. RCSTRING INVARIANTS
// ============================================================================

func TestRcString_SizeMatchesBytes(t *testing.T) {
	s := New("hello, world")
	if s.Size() != len(s.Bytes()) {
		t.Errorf("Size() = %d, len(Bytes()) = %d", s.Size(), len(s.Bytes()))
	}
}

func TestRcString_SubstrFullRangeEqualsSelf(t *testing.T) {
	s := New("the quick brown fox jumps over the lazy dog")
	if s.Substr(0, s.Size()) != s {
		t.Errorf("Substr(0, size) did not round-trip to the original string")
	}
}

func TestRcString_SubstrShortCopyAndLongAlias(t *testing.T) {
	long := New("0123456789abcdefghijklmnopqrstuvwxyz")

	short := long.Substr(0, 4)
	require.Equal(t, "0123", short.String())

	shared := long.Substr(5, long.Size()-5)
	require.Equal(t, "56789abcdefghijklmnopqrstuvwxyz", shared.String())
}

func TestRcString_EqualsIgnoreCase(t *testing.T) {
	a := New("Content-Type")
	b := New("content-type")
	if !a.EqualsIgnoreCase(b) {
		t.Errorf("expected ASCII case-insensitive match")
	}
	if a.EqualsIgnoreCase(New("content-type-x")) {
		t.Errorf("length mismatch should never match")
	}
}

func TestRcString_Compare(t *testing.T) {
	if New("a").Compare(New("b")) >= 0 {
		t.Errorf("expected 'a' < 'b'")
	}
	if New("b").Compare(New("a")) <= 0 {
		t.Errorf("expected 'b' > 'a'")
	}
	if New("x").Compare(New("x")) != 0 {
		t.Errorf("expected equal strings to compare as 0")
	}
}

// ============================================================================
// 2. RCSTRINGORREF
// ============================================================================

func TestRcStringOrRef_BorrowedVsOwned(t *testing.T) {
	ref := Borrowed("view")
	require.False(t, ref.IsOwned())
	require.Equal(t, "view", ref.Value())

	owned := Owning(New("owned"))
	require.True(t, owned.IsOwned())
	require.Equal(t, "owned", owned.Owned().String())

	// Owned() on a borrowed ref must produce an independent copy.
	clone := ref.Owned()
	require.Equal(t, "view", clone.String())
}
