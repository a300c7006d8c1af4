package repositories

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/undefined06855/Extra-Icon-Data-Server/internal/shared"
)

// setupTestDB creates an in-memory SQLite database with migrations applied
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := shared.NewDatabase(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if err := shared.RunMigrations(db); err != nil {
		db.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	return db
}

func TestPlayerRepository(t *testing.T) {
	t.Run("Get Missing Account", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewPlayerRepository(db)

		_, err := repo.Get(42)
		if !errors.Is(err, shared.ErrPlayerNotFound) {
			t.Errorf("expected ErrPlayerNotFound, got %v", err)
		}
	})

	t.Run("UpsertToken Creates Row", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewPlayerRepository(db)

		if err := repo.UpsertToken(42, "deadbeef"); err != nil {
			t.Fatalf("failed to upsert token: %v", err)
		}

		player, err := repo.Get(42)
		if err != nil {
			t.Fatalf("failed to get player: %v", err)
		}

		if player.Token != "deadbeef" {
			t.Errorf("expected token deadbeef, got %s", player.Token)
		}
		if string(player.IconData) != "{}" {
			t.Errorf("expected default icon data {}, got %s", player.IconData)
		}
	})

	t.Run("UpsertToken Replaces Prior Token", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewPlayerRepository(db)

		if err := repo.UpsertToken(42, "first"); err != nil {
			t.Fatalf("failed to upsert first token: %v", err)
		}
		if err := repo.UpsertToken(42, "second"); err != nil {
			t.Fatalf("failed to upsert second token: %v", err)
		}

		player, err := repo.Get(42)
		if err != nil {
			t.Fatalf("failed to get player: %v", err)
		}
		if player.Token != "second" {
			t.Errorf("expected token second, got %s", player.Token)
		}
	})

	t.Run("UpsertToken Preserves Icon Data", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewPlayerRepository(db)

		blob := []byte(`{"cube":{"a.b":1}}`)
		if err := repo.UpsertIconData(42, blob); err != nil {
			t.Fatalf("failed to upsert icon data: %v", err)
		}
		if err := repo.UpsertToken(42, "deadbeef"); err != nil {
			t.Fatalf("failed to upsert token: %v", err)
		}

		player, err := repo.Get(42)
		if err != nil {
			t.Fatalf("failed to get player: %v", err)
		}
		if string(player.IconData) != string(blob) {
			t.Errorf("token upsert clobbered icon data: got %s", player.IconData)
		}
		if player.Token != "deadbeef" {
			t.Errorf("expected token deadbeef, got %s", player.Token)
		}
	})

	t.Run("UpsertIconData Preserves Token", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewPlayerRepository(db)

		if err := repo.UpsertToken(42, "deadbeef"); err != nil {
			t.Fatalf("failed to upsert token: %v", err)
		}
		if err := repo.UpsertIconData(42, []byte(`{"ship":{"x.y":5}}`)); err != nil {
			t.Fatalf("failed to upsert icon data: %v", err)
		}

		player, err := repo.Get(42)
		if err != nil {
			t.Fatalf("failed to get player: %v", err)
		}
		if player.Token != "deadbeef" {
			t.Errorf("icon data upsert clobbered token: got %s", player.Token)
		}
	})

	t.Run("UpsertIconData Replaces Wholesale", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewPlayerRepository(db)

		if err := repo.UpsertIconData(42, []byte(`{"cube":{"a.b":1},"ball":{"c.d":2}}`)); err != nil {
			t.Fatalf("failed to upsert first blob: %v", err)
		}
		next := []byte(`{"ship":{"x.y":5}}`)
		if err := repo.UpsertIconData(42, next); err != nil {
			t.Fatalf("failed to upsert second blob: %v", err)
		}

		player, err := repo.Get(42)
		if err != nil {
			t.Fatalf("failed to get player: %v", err)
		}
		if string(player.IconData) != string(next) {
			t.Errorf("expected %s, got %s", next, player.IconData)
		}
	})

	t.Run("Rows Are Independent", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewPlayerRepository(db)

		if err := repo.UpsertToken(1, "one"); err != nil {
			t.Fatalf("failed to upsert: %v", err)
		}
		if err := repo.UpsertToken(2, "two"); err != nil {
			t.Fatalf("failed to upsert: %v", err)
		}

		a, err := repo.Get(1)
		if err != nil {
			t.Fatalf("failed to get player 1: %v", err)
		}
		b, err := repo.Get(2)
		if err != nil {
			t.Fatalf("failed to get player 2: %v", err)
		}

		if a.Token != "one" || b.Token != "two" {
			t.Errorf("rows interfered: %s / %s", a.Token, b.Token)
		}
	})
}
