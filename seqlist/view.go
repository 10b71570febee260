package seqlist

// View grants privileged read access to the physical layout of a List:
// its chunks, the per-chunk maximum index, and the mapping between
// (chunk, offset) pairs and global ranks. It exists so that trusted
// callers can run restricted searches directly against the layout without
// reaching into unexported state.
//
// The slices returned by Chunks and Maxes alias live storage and become
// stale after any mutation; callers must treat them as read-only.
type View[E any] struct {
	list *List[E]
}

// View returns the internal view of the list.
func (l *List[E]) View() View[E] {
	return View[E]{list: l}
}

// Chunks returns the ordered sequence of chunks. Each chunk is sorted and
// non-empty.
func (v View[E]) Chunks() [][]E {
	return v.list.chunks
}

// Maxes returns the per-chunk maximum index, parallel to Chunks.
func (v View[E]) Maxes() []E {
	return v.list.maxes
}

// Rank converts a (chunk, offset) pair into a global rank.
func (v View[E]) Rank(pos, idx int) int {
	return v.list.rank(pos, idx)
}

// DeleteAt removes the element at (chunk, offset), restoring the chunk and
// boundary invariants. The pair must be valid.
func (v View[E]) DeleteAt(pos, idx int) {
	v.list.deleteAt(pos, idx)
}
