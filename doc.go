// Package zjson is a zero-allocation JSON tokenizer and path-query engine.
//
// A document is tokenized into a flat, caller-supplied []Token slice; each
// Token references a byte range of the caller's own buffer by offset and
// length rather than copying it, and carries a direct-child count and a
// total-descendant count instead of parent or child pointers. A dotted,
// bracket-indexed path (Query and friends) walks that flat slice using
// only those two counts to skip whole subtrees in O(depth × fan-out).
//
// The grammar accepted is deliberately looser than strict JSON: see Read
// and the tables built in tables.go for the specific permissions
// (':'/'=' as the pair separator, ','-or-whitespace as the item
// separator, unchecked literal spelling for true/false/null).
package zjson
