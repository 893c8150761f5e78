// README: User ledger store; PostgreSQL rows with a Redis read-through profile cache.
package user

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"tripmate/internal/types"
)

const profileKeyPrefix = "user:profile:%s"

type Store struct {
	db       *pgxpool.Pool
	redis    *redis.Client
	cacheTTL time.Duration
}

// NewStore returns a Store. redis may be nil, in which case every profile
// read goes to Postgres.
func NewStore(db *pgxpool.Pool, redis *redis.Client, cacheTTL time.Duration) *Store {
	return &Store{db: db, redis: redis, cacheTTL: cacheTTL}
}

// EnsureProfile creates the profile with the welcome balance if it does not
// exist yet, then returns it. Safe to call concurrently for the same ID.
func (s *Store) EnsureProfile(ctx context.Context, userID types.ID) (Profile, error) {
	_, err := s.db.Exec(ctx, `
		INSERT INTO userprofile (user_id, language, coins, created_at, updated_at)
		VALUES ($1, 'auto', $2, NOW(), NOW())
		ON CONFLICT (user_id) DO NOTHING`,
		string(userID), WelcomeCoins,
	)
	if err != nil {
		return Profile{}, err
	}
	return s.GetProfile(ctx, userID)
}

func (s *Store) GetProfile(ctx context.Context, userID types.ID) (Profile, error) {
	if p, ok := s.cacheGet(ctx, userID); ok {
		return p, nil
	}

	row := s.db.QueryRow(ctx, `
		SELECT user_id, name, email, language, coins, created_at, updated_at
		FROM userprofile
		WHERE user_id = $1`, string(userID),
	)
	var p Profile
	err := row.Scan(&p.UserID, &p.Name, &p.Email, &p.Language, &p.Coins, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Profile{}, ErrNotFound
	}
	if err != nil {
		return Profile{}, err
	}

	s.cacheSet(ctx, p)
	return p, nil
}

// Credit adds max(amount, 0) to the balance in one atomic write and returns
// the new balance. The clamp lives in SQL so a concurrent credit can never
// observe an intermediate value.
func (s *Store) Credit(ctx context.Context, userID types.ID, amount int) (int, error) {
	row := s.db.QueryRow(ctx, `
		UPDATE userprofile
		SET coins = coins + GREATEST($2, 0), updated_at = NOW()
		WHERE user_id = $1
		RETURNING coins`,
		string(userID), amount,
	)
	var balance int
	err := row.Scan(&balance)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, err
	}

	s.cacheDel(ctx, userID)
	return balance, nil
}

// Debit subtracts price only when the balance covers it. The condition and
// the write are a single statement, so two concurrent redemptions cannot both
// spend the same coins. Returns false without any state change when the
// balance is short.
func (s *Store) Debit(ctx context.Context, userID types.ID, price int) (bool, error) {
	tag, err := s.db.Exec(ctx, `
		UPDATE userprofile
		SET coins = coins - $2, updated_at = NOW()
		WHERE user_id = $1 AND coins >= $2`,
		string(userID), price,
	)
	if err != nil {
		return false, err
	}

	s.cacheDel(ctx, userID)
	return tag.RowsAffected() == 1, nil
}

func (s *Store) AppendReward(ctx context.Context, e *RewardEntry) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO rewardledger (user_id, action, coins, notes, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		string(e.UserID), e.Action, e.Coins, e.Notes, e.CreatedAt,
	)
	return err
}

func (s *Store) CreatePass(ctx context.Context, p *Pass) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO premiumpass (user_id, feature, expires_at, created_at)
		VALUES ($1, $2, $3, $4)`,
		string(p.UserID), p.Feature, p.ExpiresAt, p.CreatedAt,
	)
	return err
}

func (s *Store) ListPasses(ctx context.Context, userID types.ID) ([]Pass, error) {
	rows, err := s.db.Query(ctx, `
		SELECT user_id, feature, expires_at, created_at
		FROM premiumpass
		WHERE user_id = $1
		ORDER BY created_at DESC`, string(userID),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Pass
	for rows.Next() {
		var p Pass
		if err := rows.Scan(&p.UserID, &p.Feature, &p.ExpiresAt, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Cache helpers. Failures are ignored: the cache is an optimization, Postgres
// stays authoritative.

func (s *Store) cacheGet(ctx context.Context, userID types.ID) (Profile, bool) {
	if s.redis == nil {
		return Profile{}, false
	}
	val, err := s.redis.Get(ctx, profileKey(userID)).Result()
	if err != nil {
		return Profile{}, false
	}
	var p Profile
	if err := json.Unmarshal([]byte(val), &p); err != nil {
		return Profile{}, false
	}
	return p, true
}

func (s *Store) cacheSet(ctx context.Context, p Profile) {
	if s.redis == nil {
		return
	}
	buf, err := json.Marshal(p)
	if err != nil {
		return
	}
	_ = s.redis.Set(ctx, profileKey(p.UserID), buf, s.cacheTTL).Err()
}

func (s *Store) cacheDel(ctx context.Context, userID types.ID) {
	if s.redis == nil {
		return
	}
	_ = s.redis.Del(ctx, profileKey(userID)).Err()
}

func profileKey(userID types.ID) string {
	return fmt.Sprintf(profileKeyPrefix, string(userID))
}
