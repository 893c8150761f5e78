// README: User ledger models; profiles, reward entries, premium passes.
package user

import (
	"errors"
	"time"

	"tripmate/internal/types"
)

// WelcomeCoins is granted once, when a profile is first created.
const WelcomeCoins = 10

var (
	ErrNotFound          = errors.New("profile not found")
	ErrInsufficientCoins = errors.New("not enough coins")
	ErrUnknownDuration   = errors.New("unknown duration class")
)

// DurationClass is a redemption tier; it maps to both a coin price and a pass
// validity period.
type DurationClass string

const (
	DurationShort  DurationClass = "short"
	DurationMedium DurationClass = "medium"
	DurationLong   DurationClass = "long"
)

var passPrices = map[DurationClass]int{
	DurationShort:  10,
	DurationMedium: 50,
	DurationLong:   150,
}

var passValidity = map[DurationClass]time.Duration{
	DurationShort:  24 * time.Hour,
	DurationMedium: 7 * 24 * time.Hour,
	DurationLong:   30 * 24 * time.Hour,
}

// ParseDurationClass accepts the canonical class names plus the day-count
// aliases the original mobile clients send.
func ParseDurationClass(v string) (DurationClass, error) {
	switch v {
	case "short", "1d":
		return DurationShort, nil
	case "medium", "7d":
		return DurationMedium, nil
	case "long", "30d":
		return DurationLong, nil
	default:
		return "", ErrUnknownDuration
	}
}

// Price returns the coin cost of a pass in this duration class.
func (d DurationClass) Price() int {
	return passPrices[d]
}

// Validity returns how long a pass in this duration class stays valid.
func (d DurationClass) Validity() time.Duration {
	return passValidity[d]
}

type Profile struct {
	UserID    types.ID  `json:"user_id"`
	Name      *string   `json:"name,omitempty"`
	Email     *string   `json:"email,omitempty"`
	Language  string    `json:"language"`
	Coins     int       `json:"coins"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RewardEntry is one row of the append-only reward audit trail. Coins holds
// the raw signed delta as supplied by the caller; the applied balance change
// is clamped to non-negative separately.
type RewardEntry struct {
	UserID    types.ID  `json:"user_id"`
	Action    string    `json:"action"`
	Coins     int       `json:"coins"`
	Notes     *string   `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Pass grants a premium feature until ExpiresAt. There is no expiry sweep;
// readers compare timestamps themselves if staleness matters.
type Pass struct {
	UserID    types.ID  `json:"user_id"`
	Feature   string    `json:"feature"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}
