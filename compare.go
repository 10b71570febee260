package sortgo

import "iter"

// Whole-collection comparisons are defined structurally over the value
// sequences: values are compared pairwise up to the shorter length, with
// the length relation as a precondition for the strict and non-strict
// orderings. This is deliberately NOT a lexicographic order: when all
// paired values are equal but the lengths differ, the non-strict
// relations do not fall back to comparing lengths, and the strict
// relations require every pair to be strictly related. Callers depend on
// these exact semantics; see the compare tests before changing them.
//
// Pairwise ordering is over the unwrapped values themselves: ValueLess
// when a value order is configured, regardless of how the derived keys
// would sort the pair. Without a value order the values cannot be
// ordered, so the derived keys stand in for them.

// zip walks both collections' value sequences in parallel up to the
// shorter length, calling rel for each pair. It returns false as soon as
// rel does.
func (l *KeyList[K, V]) zip(that *KeyList[K, V], rel func(a, b V) bool) bool {
	next, stop := iter.Pull(that.All())
	defer stop()

	for a := range l.All() {
		b, ok := next()
		if !ok {
			return true
		}
		if !rel(a, b) {
			return false
		}
	}

	return true
}

func (l *KeyList[K, V]) pairwiseLess(a, b V) bool {
	if l.valueLess != nil {
		return l.valueLess(a, b)
	}
	return l.keyFn(a) < l.keyFn(b)
}

// Equal reports whether both collections have the same length and
// pairwise equal values.
func (l *KeyList[K, V]) Equal(that *KeyList[K, V]) bool {
	if l.Len() != that.Len() {
		return false
	}
	return l.zip(that, func(a, b V) bool { return a == b })
}

// NotEqual is the negation of Equal.
func (l *KeyList[K, V]) NotEqual(that *KeyList[K, V]) bool {
	return !l.Equal(that)
}

// Less reports whether l is not longer than that and every paired value
// sorts strictly before its counterpart.
func (l *KeyList[K, V]) Less(that *KeyList[K, V]) bool {
	if l.Len() > that.Len() {
		return false
	}
	return l.zip(that, l.pairwiseLess)
}

// LessOrEqual reports whether l is not longer than that and no paired
// value sorts after its counterpart.
func (l *KeyList[K, V]) LessOrEqual(that *KeyList[K, V]) bool {
	if l.Len() > that.Len() {
		return false
	}
	return l.zip(that, func(a, b V) bool { return !l.pairwiseLess(b, a) })
}

// Greater reports whether l is not shorter than that and every paired
// value sorts strictly after its counterpart.
func (l *KeyList[K, V]) Greater(that *KeyList[K, V]) bool {
	if l.Len() < that.Len() {
		return false
	}
	return l.zip(that, func(a, b V) bool { return l.pairwiseLess(b, a) })
}

// GreaterOrEqual reports whether l is not shorter than that and no paired
// value sorts before its counterpart.
func (l *KeyList[K, V]) GreaterOrEqual(that *KeyList[K, V]) bool {
	if l.Len() < that.Len() {
		return false
	}
	return l.zip(that, func(a, b V) bool { return !l.pairwiseLess(a, b) })
}
