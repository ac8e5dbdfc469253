package rcstring

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChunkedString_LengthIsSumOfFragments(t *testing.T) {
	c := NewChunkedString()
	c.AppendString("abc")
	c.AppendString("defgh")
	c.AppendString("ij")

	require.Equal(t, 10, c.Len())
	require.Equal(t, 3, c.NumFragments())
}

func TestChunkedString_ToSingleRcStringConcatenates(t *testing.T) {
	c := NewChunkedString()
	c.AppendString("foo")
	c.AppendString("bar")
	c.AppendString("baz")

	require.Equal(t, "foobarbaz", c.ToSingleRcString().String())
}

func TestChunkedString_ToSingleRcStringSingleFragmentNoCopy(t *testing.T) {
	c := NewChunkedString()
	frag := New("only-fragment")
	c.Append(frag)

	require.Equal(t, frag, c.ToSingleRcString())
}

func TestChunkedString_SubstrFullRangeEqualsSelf(t *testing.T) {
	c := NewChunkedString()
	c.AppendString("hello, ")
	c.AppendString("world")

	sub := c.Substr(0, c.Len())
	require.Equal(t, c.ToSingleRcString(), sub.ToSingleRcString())
}

func TestChunkedString_SubstrSpansFragmentBoundary(t *testing.T) {
	c := NewChunkedString()
	c.AppendString("aaa")
	c.AppendString("bbb")
	c.AppendString("ccc")

	// Spans across all three fragments: "aabbbcc"
	sub := c.Substr(1, 7)
	require.Equal(t, "aabbbcc", sub.ToSingleRcString().String())
}

func TestChunkedString_PrependAndRemovePrefix(t *testing.T) {
	c := NewChunkedString()
	c.AppendString("world")
	c.Prepend(New("hello "))
	require.Equal(t, "hello world", c.ToSingleRcString().String())

	c.RemovePrefix(6)
	require.Equal(t, "world", c.ToSingleRcString().String())
}

func TestChunkedString_FindStartsWithEndsWith(t *testing.T) {
	c := NewChunkedString()
	c.AppendString("the ")
	c.AppendString("quick ")
	c.AppendString("fox")

	require.True(t, c.StartsWith("the quick"))
	require.True(t, c.EndsWith("fox"))
	require.Equal(t, len("the quick "), c.Find("fox"))
}

func TestChunkedString_AtIndexesAcrossFragments(t *testing.T) {
	c := NewChunkedString()
	c.AppendString("ab")
	c.AppendString("cd")

	require.Equal(t, byte('a'), c.At(0))
	require.Equal(t, byte('c'), c.At(2))
	require.Equal(t, byte('d'), c.At(3))
}
