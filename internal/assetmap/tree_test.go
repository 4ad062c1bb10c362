package assetmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBranch_SetKeepsFirstPosition(t *testing.T) {
	b := NewBranch()
	assert.False(t, b.Set("A", &Leaf{Ref: "/a1"}))
	assert.False(t, b.Set("B", &Leaf{Ref: "/b"}))
	assert.True(t, b.Set("A", &Leaf{Ref: "/a2"}))

	assert.Equal(t, []string{"A", "B"}, b.Keys())
	n, ok := b.Get("A")
	assert.True(t, ok)
	assert.Equal(t, "/a2", n.(*Leaf).Ref)
}

func TestBranch_KeysIsACopy(t *testing.T) {
	b := NewBranch()
	b.Set("A", &Leaf{})
	keys := b.Keys()
	keys[0] = "Z"

	assert.Equal(t, []string{"A"}, b.Keys())
}

func TestBranch_CountLeaves(t *testing.T) {
	inner := NewBranch()
	inner.Set("X", &Leaf{})
	inner.Set("Y", &Leaf{})
	b := NewBranch()
	b.Set("Top", &Leaf{})
	b.Set("dir", inner)
	b.Set("empty", NewBranch())

	assert.Equal(t, 3, b.CountLeaves())
	assert.Equal(t, 3, b.Len())
}
