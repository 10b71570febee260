// Package sortgo provides sorted collection types for Go.
//
// The central type is KeyList, a mutable sequence that keeps its values
// sorted by a derived key at all times, with logarithmic search and
// sub-linear amortized inserts and deletes at scale. It is the index
// structure that underlies priority queues, range-query indexes and
// ordered-set abstractions inside larger storage or query systems.
//
// # Quick Start
//
//	kl := sortgo.New(func(s string) int { return len(s) })
//	kl.Update("banana", "fig", "apple")
//
//	for v := range kl.All() {
//	    fmt.Println(v) // fig, apple, banana
//	}
//
// Values are ordered by their derived key. When the values themselves
// carry a total order, configure it for a faster search path:
//
//	kl := sortgo.New(keyFn, func(o *sortgo.Options[string]) {
//	    o.ValueLess = func(a, b string) bool { return a < b }
//	})
//
// Without a value order, equal-key values are order-equivalent and
// value-based operations (Contains, Remove, Count, Index) locate the
// exact value by scanning only the run of entries sharing the queried
// key, never the whole collection.
//
// # Layering
//
// KeyList stores (key, value) entries in a seqlist.List, a segmented
// ordered sequence with a per-chunk maximum index. The seqlist package
// is usable on its own for directly comparable elements.
//
// Neither type is safe for concurrent use; callers sharing a collection
// across goroutines must serialize access externally.
package sortgo
