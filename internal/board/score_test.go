package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreSentinelEquality(t *testing.T) {
	assert.True(t, Invalid.Eq(Invalid))
	assert.True(t, RedWon.Eq(RedWon))
	assert.True(t, BlackWon.Eq(BlackWon))
	assert.False(t, RedWon.Eq(BlackWon))
	assert.False(t, RedWon.Eq(Invalid))
}

func TestScoreOrderingFiniteBounds(t *testing.T) {
	values := []float32{-100, -1.5, 0, 0.125, 9, 42.75}
	for _, v := range values {
		s := NewScore(v)
		ord, ok := BlackWon.Cmp(s)
		require.True(t, ok)
		assert.Equal(t, Less, ord)

		ord, ok = s.Cmp(RedWon)
		require.True(t, ok)
		assert.Equal(t, Less, ord)
	}
}

func TestScoreOrderingInvalidIsUnordered(t *testing.T) {
	_, ok := Invalid.Cmp(NewScore(1))
	assert.False(t, ok)
	_, ok = NewScore(1).Cmp(Invalid)
	assert.False(t, ok)
	_, ok = Invalid.Cmp(Invalid)
	assert.False(t, ok)
}

func TestScoreLessHonorsInvalid(t *testing.T) {
	assert.False(t, Invalid.Less(NewScore(5)))
	assert.False(t, NewScore(5).Less(Invalid))
	assert.True(t, NewScore(-5).Less(NewScore(5)))
	assert.True(t, BlackWon.Less(RedWon))
}

func TestScoreDisplay(t *testing.T) {
	assert.Equal(t, "Red Wins", RedWon.String())
	assert.Equal(t, "Black Wins", BlackWon.String())
	assert.Equal(t, "Invalid position", Invalid.String())
	assert.Equal(t, "0.125", NewScore(0.125).String())
}

func TestScoreBinaryIsDistinctPerSentinel(t *testing.T) {
	assert.NotEqual(t, RedWon.Binary(), BlackWon.Binary())
	assert.NotEqual(t, RedWon.Binary(), Invalid.Binary())
	assert.Len(t, RedWon.Binary(), 32)
}

func TestScoreIsFinite(t *testing.T) {
	assert.True(t, NewScore(0).IsFinite())
	assert.False(t, RedWon.IsFinite())
	assert.False(t, BlackWon.IsFinite())
	assert.False(t, Invalid.IsFinite())
}
