package alloc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLimit_EnforcesBudget(t *testing.T) {
	l := NewLimit(100, nil)

	buf, err := l.Allocate(60)
	require.NoError(t, err)
	require.Equal(t, int64(60), l.Live())

	_, err = l.Allocate(50)
	require.ErrorIs(t, err, ErrLimit)
	require.Equal(t, int64(60), l.Live(), "failed request must not be charged")

	buf2, err := l.Allocate(40)
	require.NoError(t, err)
	require.Equal(t, int64(100), l.Live())

	l.Release(buf)
	require.Equal(t, int64(40), l.Live())
	l.Release(buf2)
	require.Zero(t, l.Live())
}

func TestLimit_ReallocateChargesDelta(t *testing.T) {
	l := NewLimit(100, nil)

	buf, err := l.Allocate(40)
	require.NoError(t, err)

	// Growing by 40 fits (80 <= 100).
	buf, err = l.Reallocate(80, buf)
	require.NoError(t, err)
	require.Equal(t, int64(80), l.Live())

	// Growing by another 40 does not (120 > 100); block stays usable.
	_, err = l.Reallocate(120, buf)
	require.ErrorIs(t, err, ErrLimit)
	require.Equal(t, int64(80), l.Live())
	require.Len(t, buf, 80)

	// Shrinking always fits and returns budget.
	buf, err = l.Reallocate(20, buf)
	require.NoError(t, err)
	require.Equal(t, int64(20), l.Live())
	l.Release(buf)
	require.Zero(t, l.Live())
}

func TestLimit_Validation(t *testing.T) {
	l := NewLimit(10, nil)
	_, err := l.Allocate(-1)
	require.ErrorIs(t, err, ErrSize)
	_, err = l.Reallocate(-1, nil)
	require.ErrorIs(t, err, ErrSize)
}
