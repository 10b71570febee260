package sortgo

import (
	"cmp"
	"fmt"
	"iter"
	"slices"

	"github.com/hupe1980/sortgo/seqlist"
)

// entry is the stored (key, value) unit. The key is always derived from
// the value by the collection's key function at construction of the entry,
// never cached across mutations.
type entry[K cmp.Ordered, V comparable] struct {
	key   K
	value V
}

// keyLess orders entries by key alone. Two entries with equal keys are
// order-equivalent even if their values differ.
func keyLess[K cmp.Ordered, V comparable](a, b entry[K, V]) bool {
	return a.key < b.key
}

// pairLess orders entries by key with valueLess as the tie-break, giving
// every entry a unique rank even under duplicate keys.
func pairLess[K cmp.Ordered, V comparable](valueLess func(a, b V) bool) func(a, b entry[K, V]) bool {
	return func(a, b entry[K, V]) bool {
		if a.key != b.key {
			return a.key < b.key
		}
		return valueLess(a.value, b.value)
	}
}

// KeyList is a sequence of values kept sorted by a derived key at all
// times. Most operations mirror their slice counterparts but rely on the
// sort order for speed: lookups are logarithmic and inserts and deletes
// are sub-linear amortized.
//
// KeyList is not safe for concurrent use.
type KeyList[K cmp.Ordered, V comparable] struct {
	keyFn     func(V) K
	ordered   bool
	less      func(a, b entry[K, V]) bool
	valueLess func(a, b V) bool
	load      int
	logger    *Logger
	list      *seqlist.List[entry[K, V]]
}

// New creates an empty KeyList ordered by the keys that keyFn derives.
//
// keyFn must be deterministic and pure: calling it twice on the same value
// must yield equal keys, or the collection's invariants silently break.
func New[K cmp.Ordered, V comparable](keyFn func(V) K, optFns ...func(o *Options[V])) *KeyList[K, V] {
	if keyFn == nil {
		panic("sortgo: nil key function")
	}

	opts := defaultOptions[V]()

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.Logger == nil {
		opts.Logger = NoopLogger()
	}

	var less func(a, b entry[K, V]) bool
	if opts.ValueLess != nil {
		less = pairLess[K](opts.ValueLess)
	} else {
		less = keyLess[K, V]
	}

	kl := &KeyList[K, V]{
		keyFn:     keyFn,
		ordered:   opts.ValueLess != nil,
		less:      less,
		valueLess: opts.ValueLess,
		load:      opts.Load,
		logger:    opts.Logger,
	}
	kl.list = kl.newEngine()

	kl.logger.Debug("keylist created", "load", opts.Load, "value_ordered", kl.ordered)

	return kl
}

// pair derives the entry for a value.
func (l *KeyList[K, V]) pair(v V) entry[K, V] {
	return entry[K, V]{key: l.keyFn(v), value: v}
}

// entries lazily projects a value sequence into an entry sequence.
func (l *KeyList[K, V]) entries(seq iter.Seq[V]) iter.Seq[entry[K, V]] {
	return func(yield func(entry[K, V]) bool) {
		for v := range seq {
			if !yield(l.pair(v)) {
				return
			}
		}
	}
}

// newEngine constructs an engine matching the collection's ordering and
// chunk-size target.
func (l *KeyList[K, V]) newEngine() *seqlist.List[entry[K, V]] {
	return seqlist.New(l.less, func(o *seqlist.Options) { o.Load = l.load })
}

// derived creates a collection around list with the same key function,
// representation and chunk-size target.
func (l *KeyList[K, V]) derived(list *seqlist.List[entry[K, V]]) *KeyList[K, V] {
	return &KeyList[K, V]{
		keyFn:     l.keyFn,
		ordered:   l.ordered,
		less:      l.less,
		valueLess: l.valueLess,
		load:      l.load,
		logger:    l.logger,
		list:      list,
	}
}

// Len returns the number of values in the collection.
func (l *KeyList[K, V]) Len() int { return l.list.Len() }

// Load returns the configured chunk-size target.
func (l *KeyList[K, V]) Load() int { return l.load }

// Clear removes all values from the collection.
func (l *KeyList[K, V]) Clear() { l.list.Clear() }

// Add inserts v at its sorted position.
func (l *KeyList[K, V]) Add(v V) {
	l.list.Add(l.pair(v))
}

// Update inserts every given value at its sorted position. The values need
// not be ordered among themselves or relative to the collection.
func (l *KeyList[K, V]) Update(vs ...V) {
	l.UpdateSeq(slices.Values(vs))
}

// UpdateSeq inserts every value produced by seq at its sorted position,
// streaming entries to the engine's batch insert.
func (l *KeyList[K, V]) UpdateSeq(seq iter.Seq[V]) {
	l.list.Update(l.entries(seq))
}

// Get returns the value at index i. Negative indices count from the end.
func (l *KeyList[K, V]) Get(i int) (V, error) {
	ent, err := l.list.Get(i)
	if err != nil {
		var zero V
		return zero, err
	}
	return ent.value, nil
}

// Slice returns the values in the half-open range [start, stop). Negative
// endpoints count from the end; out-of-range endpoints clamp.
func (l *KeyList[K, V]) Slice(start, stop int) []V {
	ents := l.list.Slice(start, stop)
	out := make([]V, len(ents))
	for i, ent := range ents {
		out[i] = ent.value
	}
	return out
}

// Set replaces the value at index i with v. The key is recomputed and the
// replacement rejected with seqlist.ErrOrderViolation if it would break
// the sort order.
func (l *KeyList[K, V]) Set(i int, v V) error {
	return l.list.Set(i, l.pair(v))
}

// ReplaceRange replaces the values in [start, stop) with vs. Keys are
// recomputed for every value; the batch must preserve the sort order or
// seqlist.ErrOrderViolation is returned and the collection is unchanged.
func (l *KeyList[K, V]) ReplaceRange(start, stop int, vs []V) error {
	ents := make([]entry[K, V], len(vs))
	for i, v := range vs {
		ents[i] = l.pair(v)
	}
	return l.list.ReplaceRange(start, stop, ents)
}

// Delete removes the value at index i.
func (l *KeyList[K, V]) Delete(i int) error {
	return l.list.Delete(i)
}

// DeleteRange removes the values in the half-open range [start, stop).
// Endpoints clamp like Slice; an empty range is a no-op.
func (l *KeyList[K, V]) DeleteRange(start, stop int) {
	l.list.DeleteRange(start, stop)
}

// Pop removes and returns the last value.
func (l *KeyList[K, V]) Pop() (V, error) {
	return l.PopAt(-1)
}

// PopAt removes and returns the value at index i. Negative indices count
// from the end.
func (l *KeyList[K, V]) PopAt(i int) (V, error) {
	ent, err := l.list.PopAt(i)
	if err != nil {
		var zero V
		return zero, err
	}
	return ent.value, nil
}

// Insert places v at index i, failing with seqlist.ErrOrderViolation if it
// does not belong between its prospective neighbors.
func (l *KeyList[K, V]) Insert(i int, v V) error {
	return l.list.Insert(i, l.pair(v))
}

// Append places v after the current last value, failing with
// seqlist.ErrOrderViolation if it sorts before it.
func (l *KeyList[K, V]) Append(v V) error {
	return l.list.Append(l.pair(v))
}

// Extend appends the given values, failing with seqlist.ErrOrderViolation
// if the batch is not sorted or sorts before the current last value. On
// failure the collection is unchanged.
func (l *KeyList[K, V]) Extend(vs ...V) error {
	return l.list.Extend(l.entries(slices.Values(vs)))
}

// BisectLeft returns the leftmost index at which v could be inserted while
// keeping the collection sorted.
func (l *KeyList[K, V]) BisectLeft(v V) int {
	return l.list.BisectLeft(l.pair(v))
}

// Bisect is an alias for BisectRight.
func (l *KeyList[K, V]) Bisect(v V) int {
	return l.list.Bisect(l.pair(v))
}

// BisectRight returns the rightmost index at which v could be inserted
// while keeping the collection sorted.
func (l *KeyList[K, V]) BisectRight(v V) int {
	return l.list.BisectRight(l.pair(v))
}

// All returns a forward iterator over the values in sorted order. The
// returned sequence is restartable; the collection must not be mutated
// during iteration.
func (l *KeyList[K, V]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		for ent := range l.list.All() {
			if !yield(ent.value) {
				return
			}
		}
	}
}

// Backward returns an iterator over the values in reverse sorted order.
func (l *KeyList[K, V]) Backward() iter.Seq[V] {
	return func(yield func(V) bool) {
		for ent := range l.list.Backward() {
			if !yield(ent.value) {
				return
			}
		}
	}
}

// Values materializes the collection into a flat sorted slice.
func (l *KeyList[K, V]) Values() []V {
	out := make([]V, 0, l.Len())
	for ent := range l.list.All() {
		out = append(out, ent.value)
	}
	return out
}

// Copy returns a shallow copy of the collection.
func (l *KeyList[K, V]) Copy() *KeyList[K, V] {
	return l.derived(l.list.Copy())
}

// Concat returns a new collection containing all values of l and that.
// The operands need not be ordered relative to each other.
func (l *KeyList[K, V]) Concat(that *KeyList[K, V]) *KeyList[K, V] {
	out := l.derived(l.newEngine())
	out.UpdateSeq(l.All())
	out.UpdateSeq(that.All())
	return out
}

// Repeat returns a new collection containing n shallow copies of every
// value. A non-positive n yields an empty collection.
func (l *KeyList[K, V]) Repeat(n int) *KeyList[K, V] {
	out := l.derived(l.newEngine())
	values := l.Values()
	out.UpdateSeq(func(yield func(V) bool) {
		for i := 0; i < n; i++ {
			for _, v := range values {
				if !yield(v) {
					return
				}
			}
		}
	})
	return out
}

// RepeatInPlace grows the collection to n shallow copies of every value.
// A non-positive n clears it.
func (l *KeyList[K, V]) RepeatInPlace(n int) {
	values := l.Values()
	l.Clear()
	l.UpdateSeq(func(yield func(V) bool) {
		for i := 0; i < n; i++ {
			for _, v := range values {
				if !yield(v) {
					return
				}
			}
		}
	})
}

// String returns a string representation of the collection.
func (l *KeyList[K, V]) String() string {
	return fmt.Sprintf("KeyList(%v)", l.Values())
}

// Check verifies that every stored entry's key still equals the key
// derived from its value, then runs the engine's own consistency check.
// Intended for tests and debugging, not the hot path.
func (l *KeyList[K, V]) Check() error {
	if err := l.list.Check(); err != nil {
		l.logger.Error("engine consistency check failed", "err", err)
		return err
	}

	rank := 0
	for ent := range l.list.All() {
		if ent.key != l.keyFn(ent.value) {
			l.logger.Error("stale key", "rank", rank, "key", ent.key, "value", ent.value)
			return fmt.Errorf("sortgo: stale key at rank %d: the key function is not deterministic", rank)
		}
		rank++
	}

	return nil
}
