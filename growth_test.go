package dynlist

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/dynlist/alloc"
)

// failRealloc allocates normally but refuses every reallocation, for
// exercising the growth failure path.
type failRealloc struct {
	alloc.Heap
	reallocCalls int
}

func (f *failRealloc) Reallocate(size int, buf []byte) ([]byte, error) {
	f.reallocCalls++
	return nil, alloc.ErrLimit
}

func TestGrowth_SeventeenAppendsDoubleOnce(t *testing.T) {
	// stride 4, capacity 16, 17 sequential appends: exactly one growth,
	// straight to capacity 32.
	l, err := New[int32](WithCapacity(16))
	require.NoError(t, err)
	defer l.Release()

	for i := int32(0); i < 16; i++ {
		_, err := l.Append(i)
		require.NoError(t, err)
		require.Equal(t, 16, l.Cap())
	}

	_, err = l.Append(16)
	require.NoError(t, err)
	require.Equal(t, 32, l.Cap())
	require.Equal(t, 17, l.Len())

	got, err := l.At(16)
	require.NoError(t, err)
	require.Equal(t, int32(16), got)
}

func TestGrowth_NoOpWhenCapacitySuffices(t *testing.T) {
	l, err := New[int](WithCapacity(8))
	require.NoError(t, err)
	defer l.Release()

	_, err = l.Append(1)
	require.NoError(t, err)
	base := &l.Slice()[0]

	require.NoError(t, l.Reserve(7))
	require.Equal(t, 8, l.Cap())
	// No reallocation happened, so the buffer did not move.
	require.Same(t, base, &l.Slice()[0])
}

func TestGrowth_DoublesUntilNeedCovered(t *testing.T) {
	l, err := New[byte](WithCapacity(3))
	require.NoError(t, err)
	defer l.Release()

	// Need 100 slots from capacity 3: 3 -> 6 -> 12 -> 24 -> 48 -> 96 -> 192.
	require.NoError(t, l.Reserve(100))
	require.Equal(t, 192, l.Cap())
	require.Equal(t, 0, l.Len())
	t.Logf("capacity after Reserve(100) from 3: %d", l.Cap())
}

func TestGrowth_ZeroCapacityJumpsToNeed(t *testing.T) {
	l, err := New[int64](WithCapacity(0))
	require.NoError(t, err)
	defer l.Release()
	require.Equal(t, 0, l.Cap())

	require.NoError(t, l.Reserve(5))
	require.Equal(t, 5, l.Cap())

	// From here on the usual doubling applies: 5 -> 10.
	region, err := l.Resize(6)
	require.NoError(t, err)
	require.Len(t, region, 6)
	require.Equal(t, 10, l.Cap())
}

func TestGrowth_ZeroCapacityAppend(t *testing.T) {
	l, err := New[int](WithCapacity(0))
	require.NoError(t, err)
	defer l.Release()

	_, err = l.Append(9)
	require.NoError(t, err)
	require.Equal(t, 1, l.Len())
	require.Equal(t, 1, l.Cap())
}

func TestGrowth_MonotonicCapacity(t *testing.T) {
	l, err := New[uint32](WithCapacity(1))
	require.NoError(t, err)
	defer l.Release()

	prev := l.Cap()
	for i := 0; i < 500; i++ {
		_, err := l.Append(uint32(i))
		require.NoError(t, err)
		require.GreaterOrEqual(t, l.Cap(), prev)
		prev = l.Cap()

		if i%7 == 0 && l.Len() > 1 {
			require.NoError(t, l.RemoveAt(0))
			require.Equal(t, prev, l.Cap(), "removal must not shrink capacity")
		}
	}
}

func TestGrowth_ReallocFailureLeavesListIntact(t *testing.T) {
	fa := &failRealloc{}
	l, err := New[int](WithAllocator(fa), WithCapacity(4))
	require.NoError(t, err)

	for i := 0; i < 4; i++ {
		_, err := l.Append(i * 11)
		require.NoError(t, err)
	}

	// The next append needs growth, which the allocator refuses.
	_, err = l.Append(99)
	require.ErrorIs(t, err, ErrAllocFailed)
	require.ErrorIs(t, err, alloc.ErrLimit)
	require.Equal(t, 1, fa.reallocCalls)

	// Prior state is fully intact and usable.
	require.Equal(t, 4, l.Len())
	require.Equal(t, 4, l.Cap())
	for i := 0; i < 4; i++ {
		got, err := l.At(i)
		require.NoError(t, err)
		require.Equal(t, i*11, got)
	}

	// Non-growing operations still work after the failure.
	require.NoError(t, l.RemoveAt(0))
	require.Equal(t, 3, l.Len())
}

func TestGrowth_LimitAllocatorBudget(t *testing.T) {
	// Budget covers the initial block but not a doubling.
	budget := alloc.NewLimit(128, nil)
	l, err := New[int64](WithAllocator(budget), WithCapacity(8))
	require.NoError(t, err)

	for i := int64(0); i < 8; i++ {
		_, err := l.Append(i)
		require.NoError(t, err)
	}

	_, err = l.Append(8)
	require.ErrorIs(t, err, ErrAllocFailed)
	require.ErrorIs(t, err, alloc.ErrLimit)
	require.Equal(t, 8, l.Len())
	require.Equal(t, 8, l.Cap())
	for i := int64(0); i < 8; i++ {
		got, err := l.At(int(i))
		require.NoError(t, err)
		require.Equal(t, i, got)
	}

	l.Release()
	require.Zero(t, budget.Live())
}

func TestGrowth_CreateFailure(t *testing.T) {
	budget := alloc.NewLimit(8, nil) // too small even for the header
	_, err := New[int](WithAllocator(budget))
	require.ErrorIs(t, err, ErrAllocFailed)
	require.Zero(t, budget.Live())
}
