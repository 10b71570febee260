package seqlist

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// small load so even modest tests exercise chunk splits and merges
func newSmall() *List[int] {
	return NewOrdered[int](func(o *Options) {
		o.Load = 4
	})
}

func TestList_AddSorted(t *testing.T) {
	l := newSmall()
	rng := rand.New(rand.NewSource(1))

	want := make([]int, 0, 500)
	for i := 0; i < 500; i++ {
		v := rng.Intn(100)
		l.Add(v)
		want = append(want, v)
	}
	slices.Sort(want)

	assert.Equal(t, 500, l.Len())
	assert.Equal(t, want, l.Values())
	require.NoError(t, l.Check())
}

func TestList_Update(t *testing.T) {
	l := newSmall()

	// Bulk path on an empty list.
	l.Update(slices.Values([]int{5, 3, 9, 1, 7}))
	assert.Equal(t, []int{1, 3, 5, 7, 9}, l.Values())

	// Element-wise path on a non-empty list.
	l.Update(slices.Values([]int{4, 8, 0}))
	assert.Equal(t, []int{0, 1, 3, 4, 5, 7, 8, 9}, l.Values())
	require.NoError(t, l.Check())
}

func TestList_Get(t *testing.T) {
	l := newSmall()
	l.Update(slices.Values([]int{10, 20, 30}))

	v, err := l.Get(0)
	require.NoError(t, err)
	assert.Equal(t, 10, v)

	v, err = l.Get(-1)
	require.NoError(t, err)
	assert.Equal(t, 30, v)

	_, err = l.Get(3)
	var oor *ErrIndexOutOfRange
	require.ErrorAs(t, err, &oor)
	assert.Equal(t, 3, oor.Index)
	assert.Equal(t, 3, oor.Len)

	_, err = l.Get(-4)
	require.Error(t, err)
}

func TestList_Slice(t *testing.T) {
	l := newSmall()
	l.Update(slices.Values([]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}))

	assert.Equal(t, []int{2, 3, 4}, l.Slice(2, 5))
	assert.Equal(t, []int{8, 9}, l.Slice(-2, 100))
	assert.Nil(t, l.Slice(5, 2))
	assert.Equal(t, l.Values(), l.Slice(0, l.Len()))
}

func TestList_Set(t *testing.T) {
	l := newSmall()
	l.Update(slices.Values([]int{1, 3, 5, 7}))

	require.NoError(t, l.Set(1, 4))
	assert.Equal(t, []int{1, 4, 5, 7}, l.Values())

	var ov *ErrOrderViolation
	err := l.Set(1, 6)
	require.ErrorAs(t, err, &ov)
	assert.Equal(t, []int{1, 4, 5, 7}, l.Values())

	err = l.Set(1, 0)
	require.ErrorAs(t, err, &ov)
	require.NoError(t, l.Check())
}

func TestList_ReplaceRange(t *testing.T) {
	l := newSmall()
	l.Update(slices.Values([]int{0, 2, 4, 6, 8}))

	require.NoError(t, l.ReplaceRange(1, 3, []int{1, 2, 3}))
	assert.Equal(t, []int{0, 1, 2, 3, 6, 8}, l.Values())

	// Unsorted batch is rejected without mutation.
	var ov *ErrOrderViolation
	err := l.ReplaceRange(0, 2, []int{5, 1})
	require.ErrorAs(t, err, &ov)
	assert.Equal(t, []int{0, 1, 2, 3, 6, 8}, l.Values())

	// Batch that does not fit between its borders is rejected.
	err = l.ReplaceRange(1, 3, []int{9, 10})
	require.ErrorAs(t, err, &ov)
	assert.Equal(t, []int{0, 1, 2, 3, 6, 8}, l.Values())

	// Empty batch acts as a range delete.
	require.NoError(t, l.ReplaceRange(1, 3, nil))
	assert.Equal(t, []int{0, 3, 6, 8}, l.Values())
	require.NoError(t, l.Check())
}

func TestList_DeleteAndPop(t *testing.T) {
	l := newSmall()
	l.Update(slices.Values([]int{0, 1, 2, 3, 4, 5}))

	require.NoError(t, l.Delete(0))
	assert.Equal(t, []int{1, 2, 3, 4, 5}, l.Values())

	v, err := l.Pop()
	require.NoError(t, err)
	assert.Equal(t, 5, v)

	v, err = l.PopAt(1)
	require.NoError(t, err)
	assert.Equal(t, 2, v)
	assert.Equal(t, []int{1, 3, 4}, l.Values())

	l.DeleteRange(0, 2)
	assert.Equal(t, []int{4}, l.Values())

	_, err = l.PopAt(5)
	require.Error(t, err)
	require.NoError(t, l.Check())
}

func TestList_DeleteRange_Clamps(t *testing.T) {
	l := newSmall()
	l.Update(slices.Values([]int{0, 1, 2, 3, 4}))

	l.DeleteRange(-2, 100)
	assert.Equal(t, []int{0, 1, 2}, l.Values())

	l.DeleteRange(2, 1)
	assert.Equal(t, []int{0, 1, 2}, l.Values())
}

func TestList_Insert(t *testing.T) {
	l := newSmall()

	require.NoError(t, l.Insert(0, 5))
	require.NoError(t, l.Insert(0, 3))
	require.NoError(t, l.Insert(2, 7))
	require.NoError(t, l.Insert(1, 4))
	assert.Equal(t, []int{3, 4, 5, 7}, l.Values())

	var ov *ErrOrderViolation
	err := l.Insert(0, 9)
	require.ErrorAs(t, err, &ov)
	err = l.Insert(4, 0)
	require.ErrorAs(t, err, &ov)
	err = l.Insert(2, 1)
	require.ErrorAs(t, err, &ov)
	assert.Equal(t, []int{3, 4, 5, 7}, l.Values())
	require.NoError(t, l.Check())
}

func TestList_AppendExtend(t *testing.T) {
	l := newSmall()

	require.NoError(t, l.Append(1))
	require.NoError(t, l.Append(1))
	require.NoError(t, l.Append(3))

	var ov *ErrOrderViolation
	err := l.Append(2)
	require.ErrorAs(t, err, &ov)

	require.NoError(t, l.Extend(slices.Values([]int{3, 4, 9})))
	assert.Equal(t, []int{1, 1, 3, 3, 4, 9}, l.Values())

	err = l.Extend(slices.Values([]int{10, 8}))
	require.ErrorAs(t, err, &ov)
	err = l.Extend(slices.Values([]int{5}))
	require.ErrorAs(t, err, &ov)
	assert.Equal(t, []int{1, 1, 3, 3, 4, 9}, l.Values())
	require.NoError(t, l.Check())
}

func TestList_Bisect(t *testing.T) {
	l := newSmall()
	l.Update(slices.Values([]int{1, 2, 2, 2, 3}))

	assert.Equal(t, 1, l.BisectLeft(2))
	assert.Equal(t, 4, l.BisectRight(2))
	assert.Equal(t, 4, l.Bisect(2))
	assert.Equal(t, 0, l.BisectLeft(0))
	assert.Equal(t, 5, l.BisectRight(9))

	empty := newSmall()
	assert.Equal(t, 0, empty.BisectLeft(1))
	assert.Equal(t, 0, empty.BisectRight(1))
}

func TestList_ContainsCount(t *testing.T) {
	l := newSmall()
	l.Update(slices.Values([]int{1, 2, 2, 2, 3}))

	assert.True(t, l.Contains(2))
	assert.False(t, l.Contains(4))
	assert.False(t, l.Contains(0))
	assert.Equal(t, 3, l.Count(2))
	assert.Equal(t, 0, l.Count(7))
}

func TestList_Index(t *testing.T) {
	l := newSmall()
	l.Update(slices.Values([]int{1, 1, 2, 2, 3}))

	k, err := l.Index(2, 0, 5)
	require.NoError(t, err)
	assert.Equal(t, 2, k)

	k, err = l.Index(2, 3, 5)
	require.NoError(t, err)
	assert.Equal(t, 3, k)

	_, err = l.Index(2, 4, 5)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = l.Index(9, 0, 5)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = l.Index(2, 3, 3)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestList_RemoveDiscard(t *testing.T) {
	l := newSmall()
	l.Update(slices.Values([]int{1, 2, 2, 3}))

	require.NoError(t, l.Remove(2))
	assert.Equal(t, []int{1, 2, 3}, l.Values())

	assert.ErrorIs(t, l.Remove(9), ErrNotFound)
	assert.ErrorIs(t, l.Remove(0), ErrNotFound)

	l.Discard(9)
	l.Discard(1)
	assert.Equal(t, []int{2, 3}, l.Values())
	require.NoError(t, l.Check())
}

func TestList_Iteration(t *testing.T) {
	l := newSmall()
	l.Update(slices.Values([]int{4, 1, 3, 2}))

	assert.Equal(t, []int{1, 2, 3, 4}, slices.Collect(l.All()))
	assert.Equal(t, []int{4, 3, 2, 1}, slices.Collect(l.Backward()))

	// Restartable.
	assert.Equal(t, []int{1, 2, 3, 4}, slices.Collect(l.All()))

	// Early break.
	var got []int
	for v := range l.All() {
		got = append(got, v)
		if len(got) == 2 {
			break
		}
	}
	assert.Equal(t, []int{1, 2}, got)
}

func TestList_Copy(t *testing.T) {
	l := newSmall()
	l.Update(slices.Values([]int{1, 2, 3}))

	c := l.Copy()
	c.Add(4)
	require.NoError(t, l.Delete(0))

	assert.Equal(t, []int{2, 3}, l.Values())
	assert.Equal(t, []int{1, 2, 3, 4}, c.Values())
	require.NoError(t, c.Check())
}

func TestList_Clear(t *testing.T) {
	l := newSmall()
	l.Update(slices.Values([]int{1, 2, 3}))

	l.Clear()
	assert.Equal(t, 0, l.Len())
	assert.Empty(t, l.Values())

	l.Add(5)
	assert.Equal(t, []int{5}, l.Values())
}

func TestList_View(t *testing.T) {
	l := newSmall()
	for i := 0; i < 40; i++ {
		l.Add(i)
	}

	view := l.View()
	chunks := view.Chunks()
	maxes := view.Maxes()
	require.Greater(t, len(chunks), 1)
	require.Len(t, maxes, len(chunks))

	for pos, chunk := range chunks {
		assert.Equal(t, chunk[len(chunk)-1], maxes[pos])
	}

	// Rank round-trips through the layout.
	rank := 0
	for pos, chunk := range chunks {
		for idx := range chunk {
			assert.Equal(t, rank, view.Rank(pos, idx))
			rank++
		}
	}

	view.DeleteAt(0, 0)
	assert.Equal(t, 39, l.Len())
	v, err := l.Get(0)
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	require.NoError(t, l.Check())
}

func TestList_Churn(t *testing.T) {
	l := newSmall()
	rng := rand.New(rand.NewSource(7))

	live := map[int]int{}
	for i := 0; i < 2000; i++ {
		v := rng.Intn(50)
		if rng.Intn(3) == 0 {
			if err := l.Remove(v); err == nil {
				live[v]--
			}
		} else {
			l.Add(v)
			live[v]++
		}
	}

	require.NoError(t, l.Check())
	for v, n := range live {
		assert.Equal(t, n, l.Count(v), "count for %d", v)
	}
	assert.True(t, slices.IsSorted(l.Values()))
}

func TestList_DefaultLoad(t *testing.T) {
	l := NewOrdered[int]()
	assert.Equal(t, DefaultOptions.Load, l.Load())

	l = NewOrdered[int](func(o *Options) { o.Load = -1 })
	assert.Equal(t, DefaultOptions.Load, l.Load())
}
