package tst

import "errors"

var (
	// ErrEmptyKey is returned when a zero-length key is inserted.
	ErrEmptyKey = errors.New("tst: empty key")
	// ErrDuplicateKey is returned when the key already has a value.
	ErrDuplicateKey = errors.New("tst: duplicate key")
)

type node[V any] struct {
	sym         byte
	ok          bool // the value slot is present
	val         V
	lo, mid, hi *node[V]
}

// Trie is a ternary search trie with payload V.
// The zero value is an empty trie ready to use.
type Trie[V any] struct {
	root  *node[V]
	size  int
	canon func(string) string
}

func New[V any](opts ...Option) *Trie[V] {
	var t = &Trie[V]{}

	t.canon = newOptions(opts).canonicalizer()

	return t
}

// MakeEmpty drops all the nodes and resets the size.
func (t *Trie[V]) MakeEmpty() {
	t.root = nil
	t.size = 0
}

// Empty reports whether the trie has no nodes.
func (t *Trie[V]) Empty() bool {
	return t.root == nil
}

// Size returns the number of keys having a value.
func (t *Trie[V]) Size() int {
	return t.size
}

// Insert associates val with key. It returns false if the key is empty or
// already has a value; an existing value is never overwritten.
func (t *Trie[V]) Insert(key string, val V) bool {
	return t.Add(key, val) == nil
}

// Add is like Insert but tells why the pair was rejected.
func (t *Trie[V]) Add(key string, val V) error {
	key = t.key(key)

	if key == "" {
		return ErrEmptyKey
	}

	var err error

	t.root, err = t.insert(t.root, key, 0, val)

	return err
}

// insert returns the (possibly new) subtree to be stored in the parent slot.
func (t *Trie[V]) insert(n *node[V], key string, i int, val V) (*node[V], error) {
	var (
		c   = key[i]
		err error
	)

	if n == nil {
		n = &node[V]{sym: c}
	}

	switch {
	case c < n.sym:
		n.lo, err = t.insert(n.lo, key, i, val)
	case c > n.sym:
		n.hi, err = t.insert(n.hi, key, i, val)
	case i+1 < len(key):
		n.mid, err = t.insert(n.mid, key, i+1, val)
	case n.ok:
		err = ErrDuplicateKey
	default:
		n.val, n.ok = val, true
		t.size++
	}

	return n, err
}

// Value returns the value of the key and whether it is present.
func (t *Trie[V]) Value(key string) (V, bool) {
	var n = t.find(t.key(key))

	if n == nil || !n.ok {
		var zero V
		return zero, false
	}

	return n.val, true
}

// Contains reports whether the key has a value.
func (t *Trie[V]) Contains(key string) bool {
	_, ok := t.Value(key)
	return ok
}

// Remove clears the value of the key. It returns false if there was no value.
// The node itself stays in the trie as a vacant branch point (see Prune).
func (t *Trie[V]) Remove(key string) bool {
	var n = t.find(t.key(key))

	if n == nil || !n.ok {
		return false
	}

	var zero V

	n.val, n.ok = zero, false
	t.size--

	return true
}

// find returns the node matching the last byte of the key or nil.
func (t *Trie[V]) find(key string) *node[V] {
	if key == "" {
		return nil
	}

	var (
		n = t.root
		i int
	)

	for n != nil {
		switch c := key[i]; {
		case c < n.sym:
			n = n.lo
		case c > n.sym:
			n = n.hi
		default:
			if i++; i == len(key) {
				return n
			}
			n = n.mid
		}
	}

	return nil
}

func (t *Trie[V]) key(key string) string {
	if t.canon == nil || key == "" {
		return key
	}
	return t.canon(key)
}
