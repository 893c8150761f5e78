// README: Ledger tests against a real database (welcome grant, credits, redemption, races).
package user

import (
	"bufio"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func TestEnsureUserIdempotent(t *testing.T) {
	svc := NewService(setupTestStore(t))
	ctx := context.Background()

	first, err := svc.EnsureUser(ctx, "u_ensure")
	if err != nil {
		t.Fatalf("ensure: %v", err)
	}
	if first.Coins != WelcomeCoins {
		t.Errorf("coins = %d, want %d", first.Coins, WelcomeCoins)
	}

	second, err := svc.EnsureUser(ctx, "u_ensure")
	if err != nil {
		t.Fatalf("ensure again: %v", err)
	}
	if second.Coins != WelcomeCoins {
		t.Errorf("coins after re-ensure = %d, want %d", second.Coins, WelcomeCoins)
	}
}

func TestCreditAddsCoins(t *testing.T) {
	svc := NewService(setupTestStore(t))
	ctx := context.Background()

	balance, err := svc.Credit(ctx, "u_credit", "daily_check_in", 15, nil)
	if err != nil {
		t.Fatalf("credit: %v", err)
	}
	if balance != WelcomeCoins+15 {
		t.Errorf("balance = %d, want %d", balance, WelcomeCoins+15)
	}
}

// A negative reward amount is recorded in the audit trail but never debits
// the balance.
func TestCreditClampsNegativeAmounts(t *testing.T) {
	store := setupTestStore(t)
	svc := NewService(store)
	ctx := context.Background()

	balance, err := svc.Credit(ctx, "u_negative", "suspicious", -5, nil)
	if err != nil {
		t.Fatalf("credit: %v", err)
	}
	if balance != WelcomeCoins {
		t.Errorf("balance = %d, want %d", balance, WelcomeCoins)
	}

	p, err := store.GetProfile(ctx, "u_negative")
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}
	if p.Coins != WelcomeCoins {
		t.Errorf("stored coins = %d, want %d", p.Coins, WelcomeCoins)
	}
}

func TestRedeemInsufficientCoins(t *testing.T) {
	store := setupTestStore(t)
	svc := NewService(store)
	ctx := context.Background()

	// welcome balance is 10, a medium pass costs 50
	_, err := svc.Redeem(ctx, "u_poor", "offline_maps", DurationMedium)
	if !errors.Is(err, ErrInsufficientCoins) {
		t.Fatalf("err = %v, want ErrInsufficientCoins", err)
	}

	p, err := store.GetProfile(ctx, "u_poor")
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}
	if p.Coins != WelcomeCoins {
		t.Errorf("balance after failed redeem = %d, want %d", p.Coins, WelcomeCoins)
	}
}

func TestRedeemSuccess(t *testing.T) {
	store := setupTestStore(t)
	svc := NewService(store)
	ctx := context.Background()

	if _, err := svc.Credit(ctx, "u_rich", "bonus", 10, nil); err != nil {
		t.Fatalf("credit: %v", err)
	}

	before := time.Now().UTC()
	pass, err := svc.Redeem(ctx, "u_rich", "offline_maps", DurationShort)
	if err != nil {
		t.Fatalf("redeem: %v", err)
	}
	if pass.Feature != "offline_maps" {
		t.Errorf("feature = %q", pass.Feature)
	}
	wantExpiry := before.Add(24 * time.Hour)
	if pass.ExpiresAt.Before(wantExpiry.Add(-time.Minute)) || pass.ExpiresAt.After(wantExpiry.Add(time.Minute)) {
		t.Errorf("expires_at = %s, want ~%s", pass.ExpiresAt, wantExpiry)
	}

	p, err := store.GetProfile(ctx, "u_rich")
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}
	if p.Coins != 10 {
		t.Errorf("balance = %d, want 10", p.Coins)
	}

	passes, err := svc.Passes(ctx, "u_rich")
	if err != nil {
		t.Fatalf("list passes: %v", err)
	}
	if len(passes) != 1 {
		t.Errorf("passes = %d, want 1", len(passes))
	}
}

// The debit is a single conditional update, so concurrent redemptions can
// never overspend the balance. Run with -race.
func TestConcurrentRedeemNeverOverspends(t *testing.T) {
	store := setupTestStore(t)
	svc := NewService(store)
	ctx := context.Background()

	// 20 coins buys exactly two short passes
	if _, err := svc.Credit(ctx, "u_race", "bonus", 10, nil); err != nil {
		t.Fatalf("credit: %v", err)
	}

	var wg sync.WaitGroup
	errs := make(chan error, 3)
	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Redeem(ctx, "u_race", "offline_maps", DurationShort)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	success, insufficient := 0, 0
	for err := range errs {
		switch {
		case err == nil:
			success++
		case errors.Is(err, ErrInsufficientCoins):
			insufficient++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if success != 2 || insufficient != 1 {
		t.Errorf("success = %d, insufficient = %d; want 2 and 1", success, insufficient)
	}

	p, err := store.GetProfile(ctx, "u_race")
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}
	if p.Coins != 0 {
		t.Errorf("final balance = %d, want 0", p.Coins)
	}
}

func setupTestStore(t *testing.T) *Store {
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

	if _, err := db.Exec(ctx, "TRUNCATE TABLE userprofile, rewardledger, premiumpass"); err != nil {
		t.Fatalf("truncate tables: %v", err)
	}

	return NewStore(db, nil, 0)
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
