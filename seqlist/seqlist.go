// Package seqlist implements a segmented ordered sequence: a sorted list
// stored as bounded-size chunks with a parallel per-chunk maximum index.
//
// Searches bisect twice, first over the maximum index to pick a chunk and
// then inside the chunk, giving O(log n) lookups. Structural updates touch
// a single chunk plus the two parallel top-level slices, giving O(sqrt n)
// amortized inserts and deletes at the default load factor.
package seqlist

import (
	"cmp"
	"fmt"
	"iter"
	"slices"

	"github.com/hupe1980/sortgo/internal/bisect"
)

// Options holds configuration for a List.
type Options struct {
	// Load is the chunk-size target. Chunks split when they grow past
	// twice this value and merge with a neighbor when they shrink below
	// half of it. Good practice is the square or cube root of the
	// expected list size.
	Load int
}

// DefaultOptions is the default configuration, tuned for lists from tens
// to tens of millions of elements.
var DefaultOptions = Options{
	Load: 1000,
}

// List is a sorted sequence of elements ordered by a caller-supplied
// comparison. The zero value is not usable; construct with New.
//
// List is not safe for concurrent use.
type List[E any] struct {
	less   func(a, b E) bool
	load   int
	chunks [][]E
	maxes  []E
	size   int
}

// New creates an empty List ordered by less.
func New[E any](less func(a, b E) bool, optFns ...func(o *Options)) *List[E] {
	opts := DefaultOptions

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.Load < 1 {
		opts.Load = DefaultOptions.Load
	}

	return &List[E]{
		less: less,
		load: opts.Load,
	}
}

// NewOrdered creates an empty List of a naturally ordered element type.
func NewOrdered[E cmp.Ordered](optFns ...func(o *Options)) *List[E] {
	return New(func(a, b E) bool { return a < b }, optFns...)
}

// Len returns the number of elements in the list.
func (l *List[E]) Len() int { return l.size }

// Load returns the configured chunk-size target.
func (l *List[E]) Load() int { return l.load }

// Clear removes all elements from the list.
func (l *List[E]) Clear() {
	l.chunks = nil
	l.maxes = nil
	l.size = 0
}

// Add inserts e at its sorted position. Equal elements are kept in
// insertion order.
func (l *List[E]) Add(e E) {
	if len(l.maxes) == 0 {
		l.chunks = append(l.chunks, []E{e})
		l.maxes = append(l.maxes, e)
		l.size = 1
		return
	}

	pos := bisect.Right(l.maxes, e, l.less)
	if pos == len(l.maxes) {
		// Greater than every chunk maximum: append to the last chunk.
		pos--
		l.chunks[pos] = append(l.chunks[pos], e)
		l.maxes[pos] = e
		l.size++
		l.expand(pos)
		return
	}

	idx := bisect.Right(l.chunks[pos], e, l.less)
	l.insertAt(pos, idx, e)
}

// Update inserts every element produced by seq at its sorted position.
// When the list is empty the batch is sorted and loaded directly into
// fresh chunks, which is much faster than element-wise insertion.
func (l *List[E]) Update(seq iter.Seq[E]) {
	if l.size > 0 {
		for e := range seq {
			l.Add(e)
		}
		return
	}

	var values []E
	for e := range seq {
		values = append(values, e)
	}
	if len(values) == 0 {
		return
	}

	slices.SortStableFunc(values, func(a, b E) int {
		switch {
		case l.less(a, b):
			return -1
		case l.less(b, a):
			return 1
		default:
			return 0
		}
	})
	l.rebuild(values)
}

// Get returns the element at index i. Negative indices count from the end.
func (l *List[E]) Get(i int) (E, error) {
	n, err := l.normIndex(i)
	if err != nil {
		var zero E
		return zero, err
	}
	return l.at(n), nil
}

// Slice returns the elements in the half-open range [start, stop).
// Negative endpoints count from the end; out-of-range endpoints clamp.
func (l *List[E]) Slice(start, stop int) []E {
	start, stop = l.clampRange(start, stop)
	if start >= stop {
		return nil
	}

	out := make([]E, 0, stop-start)
	pos, idx := l.locate(start)
	for n := stop - start; n > 0; {
		chunk := l.chunks[pos]
		take := min(n, len(chunk)-idx)
		out = append(out, chunk[idx:idx+take]...)
		n -= take
		pos++
		idx = 0
	}

	return out
}

// Set replaces the element at index i with e. The replacement is validated
// against both neighbors and rejected with ErrOrderViolation if it would
// break the sort order.
func (l *List[E]) Set(i int, e E) error {
	n, err := l.normIndex(i)
	if err != nil {
		return err
	}

	if n > 0 && l.less(e, l.at(n-1)) {
		return &ErrOrderViolation{Index: n}
	}
	if n < l.size-1 && l.less(l.at(n+1), e) {
		return &ErrOrderViolation{Index: n}
	}

	pos, idx := l.locate(n)
	l.chunks[pos][idx] = e
	if idx == len(l.chunks[pos])-1 {
		l.maxes[pos] = e
	}

	return nil
}

// ReplaceRange replaces the elements in [start, stop) with es. The
// replacement batch must be sorted and must fit between the elements
// bordering the range; otherwise ErrOrderViolation is returned and the
// list is left unchanged.
func (l *List[E]) ReplaceRange(start, stop int, es []E) error {
	start, stop = l.clampRange(start, stop)

	for i := 1; i < len(es); i++ {
		if l.less(es[i], es[i-1]) {
			return &ErrOrderViolation{Index: start + i}
		}
	}
	if len(es) > 0 {
		if start > 0 && l.less(es[0], l.at(start-1)) {
			return &ErrOrderViolation{Index: start}
		}
		if stop < l.size && l.less(l.at(stop), es[len(es)-1]) {
			return &ErrOrderViolation{Index: start + len(es) - 1}
		}
	}

	values := l.Values()
	next := make([]E, 0, len(values)-(stop-start)+len(es))
	next = append(next, values[:start]...)
	next = append(next, es...)
	next = append(next, values[stop:]...)
	l.rebuild(next)

	return nil
}

// Delete removes the element at index i.
func (l *List[E]) Delete(i int) error {
	n, err := l.normIndex(i)
	if err != nil {
		return err
	}
	pos, idx := l.locate(n)
	l.deleteAt(pos, idx)
	return nil
}

// DeleteRange removes the elements in the half-open range [start, stop).
// Endpoints clamp like Slice; an empty range is a no-op.
func (l *List[E]) DeleteRange(start, stop int) {
	start, stop = l.clampRange(start, stop)
	for i := stop - 1; i >= start; i-- {
		pos, idx := l.locate(i)
		l.deleteAt(pos, idx)
	}
}

// Pop removes and returns the last element.
func (l *List[E]) Pop() (E, error) {
	return l.PopAt(-1)
}

// PopAt removes and returns the element at index i. Negative indices count
// from the end.
func (l *List[E]) PopAt(i int) (E, error) {
	n, err := l.normIndex(i)
	if err != nil {
		var zero E
		return zero, err
	}
	pos, idx := l.locate(n)
	e := l.chunks[pos][idx]
	l.deleteAt(pos, idx)
	return e, nil
}

// Insert places e at index i, failing with ErrOrderViolation if e does not
// belong between its prospective neighbors. The index clamps into [0, Len]
// after negative normalization.
func (l *List[E]) Insert(i int, e E) error {
	n := i
	if n < 0 {
		n += l.size
		if n < 0 {
			n = 0
		}
	}
	if n > l.size {
		n = l.size
	}

	if l.size == 0 {
		l.chunks = append(l.chunks, []E{e})
		l.maxes = append(l.maxes, e)
		l.size = 1
		return nil
	}

	switch {
	case n == 0:
		if l.less(l.at(0), e) {
			return &ErrOrderViolation{Index: 0}
		}
	case n == l.size:
		if l.less(e, l.at(l.size-1)) {
			return &ErrOrderViolation{Index: n}
		}
	default:
		if l.less(e, l.at(n-1)) || l.less(l.at(n), e) {
			return &ErrOrderViolation{Index: n}
		}
	}

	var pos, idx int
	if n == l.size {
		pos = len(l.chunks) - 1
		idx = len(l.chunks[pos])
	} else {
		pos, idx = l.locate(n)
	}
	l.insertAt(pos, idx, e)

	return nil
}

// Append places e after the current last element, failing with
// ErrOrderViolation if e sorts before it.
func (l *List[E]) Append(e E) error {
	if l.size == 0 {
		l.Add(e)
		return nil
	}
	if l.less(e, l.at(l.size-1)) {
		return &ErrOrderViolation{Index: l.size}
	}
	l.appendLast(e)
	return nil
}

// Extend appends every element produced by seq, failing with
// ErrOrderViolation if the batch is internally unsorted or sorts before
// the current last element. On failure the list is left unchanged.
func (l *List[E]) Extend(seq iter.Seq[E]) error {
	var values []E
	for e := range seq {
		values = append(values, e)
	}
	if len(values) == 0 {
		return nil
	}

	for i := 1; i < len(values); i++ {
		if l.less(values[i], values[i-1]) {
			return &ErrOrderViolation{Index: l.size + i}
		}
	}
	if l.size > 0 && l.less(values[0], l.at(l.size-1)) {
		return &ErrOrderViolation{Index: l.size}
	}

	for _, e := range values {
		if l.size == 0 {
			l.chunks = append(l.chunks, []E{e})
			l.maxes = append(l.maxes, e)
			l.size = 1
			continue
		}
		l.appendLast(e)
	}

	return nil
}

// BisectLeft returns the leftmost index at which e could be inserted while
// keeping the list sorted.
func (l *List[E]) BisectLeft(e E) int {
	if len(l.maxes) == 0 {
		return 0
	}
	pos := bisect.Left(l.maxes, e, l.less)
	if pos == len(l.maxes) {
		return l.size
	}
	idx := bisect.Left(l.chunks[pos], e, l.less)
	return l.rank(pos, idx)
}

// Bisect is an alias for BisectRight.
func (l *List[E]) Bisect(e E) int {
	return l.BisectRight(e)
}

// BisectRight returns the rightmost index at which e could be inserted
// while keeping the list sorted.
func (l *List[E]) BisectRight(e E) int {
	if len(l.maxes) == 0 {
		return 0
	}
	pos := bisect.Right(l.maxes, e, l.less)
	if pos == len(l.maxes) {
		return l.size
	}
	idx := bisect.Right(l.chunks[pos], e, l.less)
	return l.rank(pos, idx)
}

// Contains reports whether an element equal to e (under the list ordering)
// is present.
func (l *List[E]) Contains(e E) bool {
	if len(l.maxes) == 0 {
		return false
	}
	pos := bisect.Left(l.maxes, e, l.less)
	if pos == len(l.maxes) {
		return false
	}
	idx := bisect.Left(l.chunks[pos], e, l.less)
	// chunks[pos][idx] is the first element >= e, so equality reduces to
	// e not sorting before it.
	return !l.less(e, l.chunks[pos][idx])
}

// Count returns the number of elements equal to e under the list ordering.
func (l *List[E]) Count(e E) int {
	return l.BisectRight(e) - l.BisectLeft(e)
}

// Index returns the smallest index k in [start, stop) whose element is
// equal to e under the list ordering. Negative endpoints count from the
// end. Returns ErrNotFound if the window is empty after clamping or no
// in-window element matches.
func (l *List[E]) Index(e E, start, stop int) (int, error) {
	start, stop = l.clampRange(start, stop)
	if stop <= start {
		return 0, ErrNotFound
	}

	left := l.BisectLeft(e)
	if left == l.size || l.less(e, l.at(left)) {
		return 0, ErrNotFound
	}

	right := l.BisectRight(e)
	if k := max(left, start); k < min(right, stop) {
		return k, nil
	}

	return 0, ErrNotFound
}

// Remove deletes the first element equal to e under the list ordering.
// Returns ErrNotFound if no such element is present.
func (l *List[E]) Remove(e E) error {
	if len(l.maxes) == 0 {
		return ErrNotFound
	}
	pos := bisect.Left(l.maxes, e, l.less)
	if pos == len(l.maxes) {
		return ErrNotFound
	}
	idx := bisect.Left(l.chunks[pos], e, l.less)
	if l.less(e, l.chunks[pos][idx]) {
		return ErrNotFound
	}
	l.deleteAt(pos, idx)
	return nil
}

// Discard deletes the first element equal to e under the list ordering.
// Unlike Remove it is a no-op when no such element is present.
func (l *List[E]) Discard(e E) {
	_ = l.Remove(e)
}

// All returns a forward iterator over the elements in sorted order. The
// returned sequence is restartable; the list must not be mutated during
// iteration.
func (l *List[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for _, chunk := range l.chunks {
			for _, e := range chunk {
				if !yield(e) {
					return
				}
			}
		}
	}
}

// Backward returns an iterator over the elements in reverse sorted order.
func (l *List[E]) Backward() iter.Seq[E] {
	return func(yield func(E) bool) {
		for pos := len(l.chunks) - 1; pos >= 0; pos-- {
			chunk := l.chunks[pos]
			for idx := len(chunk) - 1; idx >= 0; idx-- {
				if !yield(chunk[idx]) {
					return
				}
			}
		}
	}
}

// Values materializes the list into a flat sorted slice.
func (l *List[E]) Values() []E {
	out := make([]E, 0, l.size)
	for _, chunk := range l.chunks {
		out = append(out, chunk...)
	}
	return out
}

// Copy returns a shallow copy of the list. Elements are shared; chunk
// storage is not.
func (l *List[E]) Copy() *List[E] {
	c := &List[E]{
		less:   l.less,
		load:   l.load,
		size:   l.size,
		chunks: make([][]E, len(l.chunks)),
		maxes:  slices.Clone(l.maxes),
	}
	for i, chunk := range l.chunks {
		c.chunks[i] = slices.Clone(chunk)
	}
	return c
}

// String returns a string representation of the list.
func (l *List[E]) String() string {
	return fmt.Sprintf("List(%v)", l.Values())
}

// Check verifies the internal invariants: chunks non-empty, sorted and
// within the load bound, the maximum index consistent with chunk contents,
// and the size cache accurate. Intended for tests and debugging.
func (l *List[E]) Check() error {
	if len(l.chunks) != len(l.maxes) {
		return fmt.Errorf("seqlist: %d chunks but %d maxes", len(l.chunks), len(l.maxes))
	}

	total := 0
	for pos, chunk := range l.chunks {
		if len(chunk) == 0 {
			return fmt.Errorf("seqlist: empty chunk at %d", pos)
		}
		if len(chunk) > 2*l.load {
			return fmt.Errorf("seqlist: chunk %d has %d elements, load bound is %d", pos, len(chunk), 2*l.load)
		}
		for i := 1; i < len(chunk); i++ {
			if l.less(chunk[i], chunk[i-1]) {
				return fmt.Errorf("seqlist: chunk %d unsorted at offset %d", pos, i)
			}
		}
		last := chunk[len(chunk)-1]
		if l.less(l.maxes[pos], last) || l.less(last, l.maxes[pos]) {
			return fmt.Errorf("seqlist: stale maximum for chunk %d", pos)
		}
		if pos > 0 {
			prev := l.chunks[pos-1]
			if l.less(chunk[0], prev[len(prev)-1]) {
				return fmt.Errorf("seqlist: chunks %d and %d out of order", pos-1, pos)
			}
		}
		total += len(chunk)
	}

	if total != l.size {
		return fmt.Errorf("seqlist: size cache %d but %d elements stored", l.size, total)
	}

	return nil
}

// normIndex maps a possibly negative element index into [0, size).
func (l *List[E]) normIndex(i int) (int, error) {
	n := i
	if n < 0 {
		n += l.size
	}
	if n < 0 || n >= l.size {
		return 0, &ErrIndexOutOfRange{Index: i, Len: l.size}
	}
	return n, nil
}

// clampRange maps possibly negative range endpoints into [0, size],
// clamping rather than failing, with stop >= start.
func (l *List[E]) clampRange(start, stop int) (int, int) {
	if start < 0 {
		start += l.size
		if start < 0 {
			start = 0
		}
	}
	if start > l.size {
		start = l.size
	}
	if stop < 0 {
		stop += l.size
		if stop < 0 {
			stop = 0
		}
	}
	if stop > l.size {
		stop = l.size
	}
	if stop < start {
		stop = start
	}
	return start, stop
}

// locate converts a global rank into a (chunk, offset) pair.
// The rank must be within [0, size).
func (l *List[E]) locate(rank int) (int, int) {
	pos := 0
	for rank >= len(l.chunks[pos]) {
		rank -= len(l.chunks[pos])
		pos++
	}
	return pos, rank
}

// rank converts a (chunk, offset) pair into a global rank.
func (l *List[E]) rank(pos, idx int) int {
	for p := 0; p < pos; p++ {
		idx += len(l.chunks[p])
	}
	return idx
}

// at returns the element at the given global rank, which must be valid.
func (l *List[E]) at(rank int) E {
	pos, idx := l.locate(rank)
	return l.chunks[pos][idx]
}

// insertAt places e at (pos, idx) and restores the chunk invariants.
func (l *List[E]) insertAt(pos, idx int, e E) {
	l.chunks[pos] = slices.Insert(l.chunks[pos], idx, e)
	if idx == len(l.chunks[pos])-1 {
		l.maxes[pos] = e
	}
	l.size++
	l.expand(pos)
}

// appendLast places e after the current last element without order checks.
func (l *List[E]) appendLast(e E) {
	pos := len(l.chunks) - 1
	l.chunks[pos] = append(l.chunks[pos], e)
	l.maxes[pos] = e
	l.size++
	l.expand(pos)
}

// deleteAt removes the element at (pos, idx), dropping or merging chunks
// that fall below the load threshold.
func (l *List[E]) deleteAt(pos, idx int) {
	l.chunks[pos] = slices.Delete(l.chunks[pos], idx, idx+1)
	l.size--

	chunk := l.chunks[pos]
	if len(chunk) == 0 {
		l.chunks = slices.Delete(l.chunks, pos, pos+1)
		l.maxes = slices.Delete(l.maxes, pos, pos+1)
		return
	}

	l.maxes[pos] = chunk[len(chunk)-1]
	if len(chunk) >= l.load/2 || len(l.chunks) == 1 {
		return
	}

	// Undersized chunk: fold it into a neighbor and re-split if the
	// merge overflows.
	if pos > 0 {
		merged := append(l.chunks[pos-1], chunk...)
		l.chunks[pos-1] = merged
		l.maxes[pos-1] = merged[len(merged)-1]
		l.chunks = slices.Delete(l.chunks, pos, pos+1)
		l.maxes = slices.Delete(l.maxes, pos, pos+1)
		l.expand(pos - 1)
		return
	}

	merged := append(chunk, l.chunks[1]...)
	l.chunks[0] = merged
	l.maxes[0] = merged[len(merged)-1]
	l.chunks = slices.Delete(l.chunks, 1, 2)
	l.maxes = slices.Delete(l.maxes, 1, 2)
	l.expand(0)
}

// expand splits the chunk at pos in half once it exceeds twice the load
// target.
func (l *List[E]) expand(pos int) {
	chunk := l.chunks[pos]
	if len(chunk) <= 2*l.load {
		return
	}

	half := len(chunk) / 2
	left := chunk[:half:half]
	right := append([]E(nil), chunk[half:]...)

	l.chunks[pos] = left
	l.chunks = slices.Insert(l.chunks, pos+1, right)
	l.maxes = slices.Insert(l.maxes, pos+1, right[len(right)-1])
	l.maxes[pos] = left[len(left)-1]
}

// rebuild replaces the list contents with the given pre-sorted values.
func (l *List[E]) rebuild(values []E) {
	l.chunks = l.chunks[:0]
	l.maxes = l.maxes[:0]
	l.size = len(values)

	for chunk := range slices.Chunk(values, l.load) {
		c := slices.Clone(chunk)
		l.chunks = append(l.chunks, c)
		l.maxes = append(l.maxes, c[len(c)-1])
	}
}
