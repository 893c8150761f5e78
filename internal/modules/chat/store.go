// README: Chat message store backed by PostgreSQL.
package chat

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"

	"tripmate/internal/types"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) Append(ctx context.Context, m *Message) error {
	var meta []byte
	if m.Meta != nil {
		var err error
		meta, err = json.Marshal(m.Meta)
		if err != nil {
			return err
		}
	}
	_, err := s.db.Exec(ctx, `
		INSERT INTO chatmessage (user_id, role, content, meta, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		string(m.UserID),
		string(m.Role),
		m.Content,
		meta,
		m.CreatedAt,
	)
	return err
}

// History returns a user's messages in insertion order, oldest first.
func (s *Store) History(ctx context.Context, userID types.ID, limit int) ([]Message, error) {
	rows, err := s.db.Query(ctx, `
		SELECT user_id, role, content, meta, created_at
		FROM chatmessage
		WHERE user_id = $1
		ORDER BY created_at, id
		LIMIT $2`, string(userID), limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Message, 0, limit)
	for rows.Next() {
		var m Message
		var meta []byte
		if err := rows.Scan(&m.UserID, &m.Role, &m.Content, &meta, &m.CreatedAt); err != nil {
			return nil, err
		}
		if len(meta) > 0 {
			if err := json.Unmarshal(meta, &m.Meta); err != nil {
				return nil, err
			}
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
