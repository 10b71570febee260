package sortgo

// Options holds configuration for a KeyList.
type Options[V comparable] struct {
	// Load is the chunk-size target forwarded to the underlying engine.
	// See seqlist.Options.
	Load int

	// ValueLess, when set, declares that values carry a total order of
	// their own. Entries are then ordered by key first with ValueLess as
	// the tie-break, every entry gets a unique rank, and value-based
	// operations resolve in the engine's native logarithmic time even
	// under duplicate keys.
	//
	// When nil, values are only required to be equality-comparable and
	// equal-key entries are order-equivalent; value-based operations pay
	// proportional to the length of the equal-key run instead.
	//
	// The choice is fixed for the lifetime of the collection. Derived
	// collections (Copy, Concat, Repeat) inherit it.
	ValueLess func(a, b V) bool

	// Logger used for debug output and self-check reporting.
	// Defaults to a no-op logger.
	Logger *Logger
}

func defaultOptions[V comparable]() Options[V] {
	return Options[V]{
		Load:   1000,
		Logger: NoopLogger(),
	}
}
