// README: User ledger service; welcome grants, reward credits, pass redemption.
package user

import (
	"context"
	"time"

	"tripmate/internal/types"
)

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

// EnsureUser returns the profile for userID, creating it with the welcome
// balance on first contact. Idempotent.
func (s *Service) EnsureUser(ctx context.Context, userID types.ID) (Profile, error) {
	return s.store.EnsureProfile(ctx, userID)
}

// Credit applies a reward: the balance gains max(coins, 0), then an audit
// entry with the raw signed delta is appended. Balance first, audit second;
// the two writes are not atomic with each other and a crash in between leaves
// the balance updated without its audit row. The balance is authoritative.
// Caller-supplied amounts are trusted and uncapped.
func (s *Service) Credit(ctx context.Context, userID types.ID, action string, coins int, notes *string) (int, error) {
	if _, err := s.store.EnsureProfile(ctx, userID); err != nil {
		return 0, err
	}
	balance, err := s.store.Credit(ctx, userID, coins)
	if err != nil {
		return 0, err
	}
	if err := s.store.AppendReward(ctx, &RewardEntry{
		UserID:    userID,
		Action:    action,
		Coins:     coins,
		Notes:     notes,
		CreatedAt: time.Now().UTC(),
	}); err != nil {
		return 0, err
	}
	return balance, nil
}

// Redeem exchanges coins for a premium pass. The debit is one conditional
// write, so a short balance fails with ErrInsufficientCoins and no state
// change even under concurrent redemptions.
func (s *Service) Redeem(ctx context.Context, userID types.ID, feature string, class DurationClass) (Pass, error) {
	price := class.Price()
	if price == 0 {
		return Pass{}, ErrUnknownDuration
	}
	if _, err := s.store.EnsureProfile(ctx, userID); err != nil {
		return Pass{}, err
	}

	ok, err := s.store.Debit(ctx, userID, price)
	if err != nil {
		return Pass{}, err
	}
	if !ok {
		return Pass{}, ErrInsufficientCoins
	}

	now := time.Now().UTC()
	pass := Pass{
		UserID:    userID,
		Feature:   feature,
		ExpiresAt: now.Add(class.Validity()),
		CreatedAt: now,
	}
	if err := s.store.CreatePass(ctx, &pass); err != nil {
		return Pass{}, err
	}
	return pass, nil
}

func (s *Service) Passes(ctx context.Context, userID types.ID) ([]Pass, error) {
	return s.store.ListPasses(ctx, userID)
}
