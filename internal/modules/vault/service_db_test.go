// README: Media intake tests against a real database.
package vault

import (
	"bufio"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
)

func TestStoreImageRecordsDocument(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(NewStore(db), NewBlobStorage(t.TempDir()))
	ctx := context.Background()

	payload := []byte("jpeg bytes of a boarding pass")
	note, err := svc.StoreImage(ctx, "u_img", "boarding-pass.jpg", "image/jpeg", payload)
	if err != nil {
		t.Fatalf("store image: %v", err)
	}
	if note != noteTravelDocument {
		t.Errorf("note = %q, want travel document note", note)
	}

	var filetype, storagePath string
	var size int64
	err = db.QueryRow(ctx, `
		SELECT filetype, size, storage_path
		FROM vaultdocument
		WHERE user_id = $1`, "u_img",
	).Scan(&filetype, &size, &storagePath)
	if err != nil {
		t.Fatalf("query document: %v", err)
	}
	if filetype != "image/jpeg" {
		t.Errorf("filetype = %q", filetype)
	}
	// size is measured from the payload, never trusted from the client
	if size != int64(len(payload)) {
		t.Errorf("size = %d, want %d", size, len(payload))
	}
	if _, err := os.Stat(storagePath); err != nil {
		t.Errorf("stored blob missing: %v", err)
	}
}

func TestStoreVoiceRecordsDocument(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(NewStore(db), NewBlobStorage(t.TempDir()))
	ctx := context.Background()

	transcript, err := svc.StoreVoice(ctx, "u_clip", "note.ogg", "", []byte("opus"))
	if err != nil {
		t.Fatalf("store voice: %v", err)
	}
	if transcript != VoiceTranscript {
		t.Errorf("transcript = %q", transcript)
	}

	var filetype string
	err = db.QueryRow(ctx, `
		SELECT filetype FROM vaultdocument WHERE user_id = $1`, "u_clip",
	).Scan(&filetype)
	if err != nil {
		t.Fatalf("query document: %v", err)
	}
	// empty content type is normalized
	if filetype != "unknown" {
		t.Errorf("filetype = %q, want unknown", filetype)
	}
}

func setupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("TRIPMATE_TEST_DSN")
	if dsn == "" {
		t.Skip("TRIPMATE_TEST_DSN not set; skipping DB-backed tests")
	}

	ctx := context.Background()
	db, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := applyMigration(ctx, db); err != nil {
		t.Fatalf("apply migration: %v", err)
	}

	if _, err := db.Exec(ctx, "TRUNCATE TABLE vaultdocument"); err != nil {
		t.Fatalf("truncate tables: %v", err)
	}

	return db
}

func applyMigration(ctx context.Context, db *pgxpool.Pool) error {
	root, err := repoRoot()
	if err != nil {
		return err
	}
	content, err := os.ReadFile(filepath.Join(root, "migrations", "0001_init.sql"))
	if err != nil {
		return err
	}
	for _, stmt := range splitSQL(stripSQLComments(string(content))) {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

func repoRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for i := 0; i < 6; i++ {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", os.ErrNotExist
}

func stripSQLComments(input string) string {
	var b strings.Builder
	scanner := bufio.NewScanner(strings.NewReader(input))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "--") {
			continue
		}
		b.WriteString(scanner.Text())
		b.WriteString("\n")
	}
	return b.String()
}

func splitSQL(input string) []string {
	parts := strings.Split(input, ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		stmt := strings.TrimSpace(p)
		if stmt == "" {
			continue
		}
		out = append(out, stmt)
	}
	return out
}
