// Package tst defines an implementation of a ternary search trie: an ordered
// map from non-empty string keys to values.
//
// Every node holds a single key byte (its symbol) and three children:
//
//   - lo  - keys whose byte at this depth is less than the symbol;
//   - mid - keys that match the symbol and continue with the next byte;
//   - hi  - keys whose byte at this depth is greater than the symbol.
//
// A node also has a value slot which is either present or vacant. Vacant
// nodes are branch points for longer keys or leftovers of removed keys.
//
// Example trie:
// ------------
//
//	[b] --lo--> [a] -> [b] -> [c]=60
//	 |  --hi--> [c] -> [a] -> [b]=70
//	 |
//	 `-> [a] --hi--> [e] -> [e] -> [t]=40
//	      |
//	      `-> [g]=10 --hi--> [t]=20
//	           |
//	           `-> [e] -> [l]=30
//
// Here "->" is a mid link. The trie above contains the keys "abc", "bag",
// "bagel", "bat", "beet" and "cab" inserted in the order bag, bat, cab,
// bagel, beet, abc. Its shape depends on the insertion order only; no
// balancing is done.
//
// Keys are ordered by their bytes, which for valid UTF-8 is the same as the
// order of code points.
package tst
