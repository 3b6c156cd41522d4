package tst

import "iter"

// All returns an iterator over all key-value pairs in ascending key order.
//
// Example:
//
//	for key, val := range trie.All() {
//	    fmt.Println(key, val)
//	}
func (t *Trie[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		_ = t.root.each(make([]byte, 0, 32), yield)
	}
}

// Keys returns an iterator over all keys in ascending order.
func (t *Trie[V]) Keys() iter.Seq[string] {
	return func(yield func(string) bool) {
		for key := range t.All() {
			if !yield(key) {
				return
			}
		}
	}
}

// WithPrefix returns an iterator over the pairs whose keys start with
// prefix, in ascending key order. An empty prefix matches every key.
func (t *Trie[V]) WithPrefix(prefix string) iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		var pfx = t.key(prefix)

		if pfx == "" {
			_ = t.root.each(make([]byte, 0, 32), yield)
			return
		}

		var n = t.find(pfx)

		if n == nil {
			return
		}
		if n.ok && !yield(pfx, n.val) {
			return
		}

		_ = n.mid.each([]byte(pfx), yield)
	}
}

// each walks the subtree in order (lo, self, mid, hi); buf holds the key
// bytes collected above n. It returns false once yield asks to stop.
func (n *node[V]) each(buf []byte, yield func(string, V) bool) bool {
	if n == nil {
		return true
	}

	if !n.lo.each(buf, yield) {
		return false
	}

	var key = append(buf, n.sym)

	if n.ok && !yield(string(key), n.val) {
		return false
	}
	if !n.mid.each(key, yield) {
		return false
	}

	return n.hi.each(buf, yield)
}
