package sortgo

import (
	"github.com/hupe1980/sortgo/internal/bisect"
)

// The operations in this file locate one specific value among a possibly
// long run of entries sharing the same key. Without a value order the
// engine cannot tell equal-key entries apart, so a naive search degrades
// to a linear scan of the whole collection. Instead they bisect the
// engine's chunk-maximum index to the first chunk that could hold the
// key, bisect inside that chunk, then walk only the equal-key run,
// comparing values with ==. Cost is proportional to the run length, not
// the collection size.
//
// When a value order is configured every entry has a unique rank and all
// five operations delegate to the engine's own logarithmic search.

// scanRun walks the run of entries whose key equals k, calling visit for
// each one with its (chunk, offset) location and value. visit returns
// false to stop early. The walk advances across chunk boundaries and ends
// as soon as a key differs from k, relying on the global sort order.
func (l *KeyList[K, V]) scanRun(k K, visit func(pos, idx int, v V) bool) {
	view := l.list.View()

	maxes := view.Maxes()
	if len(maxes) == 0 {
		return
	}

	probe := entry[K, V]{key: k}
	pos := bisect.Left(maxes, probe, keyLess[K, V])
	if pos == len(maxes) {
		// Greater than every chunk maximum: absent.
		return
	}

	chunks := view.Chunks()
	idx := bisect.Left(chunks[pos], probe, keyLess[K, V])

	for {
		chunk := chunks[pos]
		if idx == len(chunk) {
			pos++
			if pos == len(chunks) {
				return
			}
			idx = 0
			continue
		}

		ent := chunk[idx]
		if ent.key != k {
			return
		}
		if !visit(pos, idx, ent.value) {
			return
		}
		idx++
	}
}

// Contains reports whether v is present in the collection.
func (l *KeyList[K, V]) Contains(v V) bool {
	if l.ordered {
		return l.list.Contains(l.pair(v))
	}

	found := false
	l.scanRun(l.keyFn(v), func(_, _ int, cand V) bool {
		if cand == v {
			found = true
			return false
		}
		return true
	})

	return found
}

// Discard removes the first occurrence of v. If v is not present, Discard
// is a no-op.
func (l *KeyList[K, V]) Discard(v V) {
	if l.ordered {
		l.list.Discard(l.pair(v))
		return
	}

	var dpos, didx int
	found := false
	l.scanRun(l.keyFn(v), func(pos, idx int, cand V) bool {
		if cand == v {
			dpos, didx = pos, idx
			found = true
			return false
		}
		return true
	})

	if found {
		l.list.View().DeleteAt(dpos, didx)
	}
}

// Remove removes the first occurrence of v. Returns ErrNotFound if v is
// not present.
func (l *KeyList[K, V]) Remove(v V) error {
	if l.ordered {
		return translateError(l.list.Remove(l.pair(v)))
	}

	var dpos, didx int
	found := false
	l.scanRun(l.keyFn(v), func(pos, idx int, cand V) bool {
		if cand == v {
			dpos, didx = pos, idx
			found = true
			return false
		}
		return true
	})

	if !found {
		return ErrNotFound
	}

	l.list.View().DeleteAt(dpos, didx)

	return nil
}

// Count returns the number of occurrences of v in the collection.
func (l *KeyList[K, V]) Count(v V) int {
	if l.ordered {
		return l.list.Count(l.pair(v))
	}

	total := 0
	l.scanRun(l.keyFn(v), func(_, _ int, cand V) bool {
		if cand == v {
			total++
		}
		return true
	})

	return total
}

// Index returns the smallest index k such that the value at k equals v.
// Returns ErrNotFound if v is not present.
func (l *KeyList[K, V]) Index(v V) (int, error) {
	return l.IndexRange(v, 0, l.Len())
}

// IndexRange returns the smallest index k in the half-open window
// [start, stop) such that the value at k equals v. Negative endpoints
// count from the end and clamp into range. Returns ErrNotFound if the
// window is empty after clamping or v has no in-window occurrence.
func (l *KeyList[K, V]) IndexRange(v V, start, stop int) (int, error) {
	if l.ordered {
		k, err := l.list.Index(l.pair(v), start, stop)
		return k, translateError(err)
	}

	n := l.Len()
	if start < 0 {
		start += n
		if start < 0 {
			start = 0
		}
	}
	if stop < 0 {
		stop += n
	}
	if stop > n {
		stop = n
	}
	if stop <= start {
		return 0, ErrNotFound
	}

	view := l.list.View()
	rank := 0
	found := false
	l.scanRun(l.keyFn(v), func(pos, idx int, cand V) bool {
		if cand != v {
			return true
		}
		if loc := view.Rank(pos, idx); loc >= start && loc < stop {
			rank = loc
			found = true
			return false
		}
		return true
	})

	if !found {
		return 0, ErrNotFound
	}

	return rank, nil
}
