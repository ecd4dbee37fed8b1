package services

// TokenGrant is what a top-up amount buys. Tokens includes Bonus.
type TokenGrant struct {
	Tokens int
	Bonus  int
}

// Canonical top-up packs. Any other amount falls back to GrantFor's formula.
var grantTiers = map[int64]TokenGrant{
	500:  {Tokens: 50, Bonus: 0},
	1000: {Tokens: 110, Bonus: 10},
	2000: {Tokens: 240, Bonus: 40},
	5000: {Tokens: 650, Bonus: 150},
}

const (
	// MaxTopUpAmount caps a single purchase; request bindings repeat it.
	MaxTopUpAmount int64 = 1_000_000
	// MaxTokenBalance caps any account balance.
	MaxTokenBalance = 1_000_000_000
)

// creditFits reports whether delta more tokens keep balance within MaxTokenBalance.
func creditFits(balance, delta int) bool {
	return delta <= MaxTokenBalance-balance
}

const (
	tokenPrice     = 10
	bonusThreshold = 1000
	bonusDivisor   = 50
)

// GrantFor returns the tokens bought by amount: the canonical pack if amount
// matches one, else amount/10 plus amount/50 bonus from 1000 upwards.
func GrantFor(amount int64) TokenGrant {
	if tier, ok := grantTiers[amount]; ok {
		return tier
	}

	base := int(amount / tokenPrice)
	bonus := 0
	if amount >= bonusThreshold {
		bonus = int(amount / bonusDivisor)
	}
	return TokenGrant{Tokens: base + bonus, Bonus: bonus}
}
