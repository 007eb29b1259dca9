package user

import "errors"

var ErrInvalidTier = errors.New("invalid membership tier")

// Tier is the membership level controlling which classes a member may book.
type Tier string

const (
	TierBase   Tier = "base"
	TierSilver Tier = "silver"
	TierGold   Tier = "gold"
)

func NewTier(s string) (Tier, error) {
	switch Tier(s) {
	case TierBase, TierSilver, TierGold:
		return Tier(s), nil
	default:
		return "", ErrInvalidTier
	}
}

func (t Tier) String() string {
	return string(t)
}

// Ordinal maps tiers onto a comparable scale: base=1, silver=2, gold=3.
// Activities store their requirement as this ordinal.
func (t Tier) Ordinal() int16 {
	switch t {
	case TierGold:
		return 3
	case TierSilver:
		return 2
	default:
		return 1
	}
}

func (t Tier) AtLeast(required int16) bool {
	return t.Ordinal() >= required
}
