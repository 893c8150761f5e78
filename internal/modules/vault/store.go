// README: Vault document store backed by PostgreSQL.
package vault

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) CreateDocument(ctx context.Context, d *Document) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO vaultdocument (user_id, filename, filetype, size, storage_path, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		string(d.UserID), d.Filename, d.Filetype, d.Size, d.StoragePath, d.CreatedAt,
	)
	return err
}
