package factorial

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOf_ClosedForm(t *testing.T) {
	want := []int64{1, 1, 2, 6, 24, 120, 720, 5040, 40320, 362880}

	for n, expected := range want {
		got, err := Of(n)
		require.NoError(t, err)
		assert.Equal(t, expected, got, "%d!", n)
	}
}

func TestOf_BaseCases(t *testing.T) {
	zero, err := Of(0)
	require.NoError(t, err)
	one, err := Of(1)
	require.NoError(t, err)

	assert.Equal(t, int64(1), zero)
	assert.Equal(t, zero, one)
}

func TestOf_LargestRepresentable(t *testing.T) {
	got, err := Of(MaxN)
	require.NoError(t, err)
	assert.Equal(t, int64(2432902008176640000), got)
}

func TestOf_Negative(t *testing.T) {
	for _, n := range []int{-1, -2, -1000} {
		_, err := Of(n)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidArgument)
		assert.NotErrorIs(t, err, ErrOverflow)

		var ferr *Error
		require.True(t, errors.As(err, &ferr))
		assert.Equal(t, CodeInvalidArgument, ferr.Code)
		assert.Equal(t, n, ferr.N)
	}
}

func TestOf_Overflow(t *testing.T) {
	_, err := Of(MaxN + 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOverflow)
	assert.Contains(t, err.Error(), "OVERFLOW")
}

func TestEntryString(t *testing.T) {
	assert.Equal(t, "9! = 362880", Entry{N: 9, Value: 362880}.String())
	assert.Equal(t, "0! = 1", Entry{N: 0, Value: 1}.String())
}

func TestTable(t *testing.T) {
	entries, err := Table(10)
	require.NoError(t, err)
	require.Len(t, entries, 10)

	for i, e := range entries {
		assert.Equal(t, i, e.N, "ascending order")
	}
	assert.Equal(t, "9! = 362880", entries[9].String())
}

func TestTable_Empty(t *testing.T) {
	entries, err := Table(0)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestTable_Errors(t *testing.T) {
	_, err := Table(-1)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = Table(MaxN + 2)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOverflow)
	assert.Contains(t, err.Error(), "table entry 21")
}
