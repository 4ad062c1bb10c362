// Package assetmap turns an asset directory into a nested, ordered key map.
//
// Files are keyed by a normalized form of their name (see ToKey) and
// directories by their verbatim name.
package assetmap

// Node is one value of an asset tree: either a *Leaf (a matched file) or a
// *Branch (a directory).
type Node interface {
	isNode()
}

// Leaf references a single matched asset file.
type Leaf struct {
	// Ref is the root-relative path of the file, always slash-separated and
	// starting with "/", e.g. "/src/assets/icons/logo.svg".
	Ref string
}

// Branch is an insertion-ordered mapping from key to Node.
type Branch struct {
	keys     []string
	children map[string]Node
}

func (*Leaf) isNode()   {}
func (*Branch) isNode() {}

// NewBranch returns an empty Branch.
func NewBranch() *Branch {
	return &Branch{children: make(map[string]Node)}
}

// Set stores n under key. Replacing an existing key keeps the key at its
// original position and reports replaced == true.
func (b *Branch) Set(key string, n Node) (replaced bool) {
	if _, ok := b.children[key]; ok {
		b.children[key] = n
		return true
	}
	b.keys = append(b.keys, key)
	b.children[key] = n
	return false
}

// Get returns the node stored under key.
func (b *Branch) Get(key string) (Node, bool) {
	n, ok := b.children[key]
	return n, ok
}

// Keys returns the keys in insertion order.
func (b *Branch) Keys() []string {
	out := make([]string, len(b.keys))
	copy(out, b.keys)
	return out
}

// Len returns the number of direct children.
func (b *Branch) Len() int {
	return len(b.keys)
}

// Each calls fn for every child in insertion order.
func (b *Branch) Each(fn func(key string, n Node)) {
	for _, k := range b.keys {
		fn(k, b.children[k])
	}
}

// CountLeaves returns the number of leaves reachable from b.
func (b *Branch) CountLeaves() int {
	total := 0
	b.Each(func(_ string, n Node) {
		switch v := n.(type) {
		case *Leaf:
			total++
		case *Branch:
			total += v.CountLeaves()
		}
	})
	return total
}
