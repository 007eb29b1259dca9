//go:build unit

package user_test

import (
	"testing"

	"gymgain/internal/domain/user"

	"github.com/stretchr/testify/assert"
)

func TestTierOrdinal(t *testing.T) {
	assert.EqualValues(t, 1, user.TierBase.Ordinal())
	assert.EqualValues(t, 2, user.TierSilver.Ordinal())
	assert.EqualValues(t, 3, user.TierGold.Ordinal())
}

func TestTierAtLeast(t *testing.T) {
	assert.True(t, user.TierGold.AtLeast(2))
	assert.True(t, user.TierSilver.AtLeast(2))
	assert.False(t, user.TierBase.AtLeast(2))
}

func TestNewTier(t *testing.T) {
	for _, valid := range []string{"base", "silver", "gold"} {
		tier, err := user.NewTier(valid)
		assert.NoError(t, err)
		assert.Equal(t, valid, tier.String())
	}

	_, err := user.NewTier("platinum")
	assert.ErrorIs(t, err, user.ErrInvalidTier)
	_, err = user.NewTier("")
	assert.ErrorIs(t, err, user.ErrInvalidTier)
}
