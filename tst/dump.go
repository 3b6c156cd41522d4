package tst

import (
	"fmt"
	"io"
)

// Dump writes the node structure of the trie to w, one node per line:
//
//	T: 'b'
//	  L: 'a'
//	    M: 'b'
//	      M: 'c' val=60
//
// Tags are T (root), L (lo), M (mid) and H (hi).
func (t *Trie[V]) Dump(w io.Writer) error {
	return t.root.dump(w, "T:", "")
}

func (n *node[V]) dump(w io.Writer, tag string, indent string) error {
	if n == nil {
		return nil
	}

	var err error

	if n.ok {
		_, err = fmt.Fprintf(w, "%s%s %q val=%v\n", indent, tag, n.sym, n.val)
	} else {
		_, err = fmt.Fprintf(w, "%s%s %q\n", indent, tag, n.sym)
	}
	if err != nil {
		return fmt.Errorf("tst: dump: %w", err)
	}

	indent += "  "

	if err = n.lo.dump(w, "L:", indent); err != nil {
		return err
	}
	if err = n.mid.dump(w, "M:", indent); err != nil {
		return err
	}

	return n.hi.dump(w, "H:", indent)
}
