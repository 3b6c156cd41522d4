package tst

import "github.com/hideo55/go-popcount"

// Stats describes the shape of a trie.
type Stats struct {
	Nodes  int    // allocated nodes
	Keys   int    // nodes holding a value
	Vacant int    // nodes without a value
	Depth  int    // the longest root-to-node path, in nodes
	Fanout [4]int // number of nodes by count of children
}

// kids returns a 3-bit mask of the present children: lo, mid, hi.
func (n *node[V]) kids() uint64 {
	var mask uint64

	if n.lo != nil {
		mask |= 1
	}
	if n.mid != nil {
		mask |= 2
	}
	if n.hi != nil {
		mask |= 4
	}

	return mask
}

// Stats walks the whole trie and collects its Stats.
func (t *Trie[V]) Stats() Stats {
	var st Stats

	t.root.stats(&st, 1)

	return st
}

func (n *node[V]) stats(st *Stats, depth int) {
	if n == nil {
		return
	}

	st.Nodes++

	if n.ok {
		st.Keys++
	} else {
		st.Vacant++
	}
	if depth > st.Depth {
		st.Depth = depth
	}

	st.Fanout[popcount.Count(n.kids())]++

	n.lo.stats(st, depth+1)
	n.mid.stats(st, depth+1)
	n.hi.stats(st, depth+1)
}

// Prune excises vacant nodes that do not lead to any value and returns the
// number of freed nodes. Keys and their order are not affected.
//
// A vacant node with no children is dropped. A vacant node with no mid
// child and a single lo or hi child is replaced by that child.
func (t *Trie[V]) Prune() int {
	var freed int

	t.root = t.root.prune(&freed)

	return freed
}

func (n *node[V]) prune(freed *int) *node[V] {
	if n == nil {
		return nil
	}

	n.lo = n.lo.prune(freed)
	n.mid = n.mid.prune(freed)
	n.hi = n.hi.prune(freed)

	if n.ok || n.mid != nil {
		return n
	}

	switch {
	case n.lo == nil:
		*freed++
		return n.hi // may be nil too
	case n.hi == nil:
		*freed++
		return n.lo
	}

	return n
}
