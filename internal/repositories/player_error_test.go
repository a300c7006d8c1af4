package repositories

import (
	"database/sql"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

// newMockDB creates a sqlmock database with automatic cleanup and expectation checking.
func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unfulfilled expectations: %v", err)
		}
		db.Close()
	})
	return db, mock
}

func TestPlayerRepositoryErrors(t *testing.T) {
	t.Run("Get Query Failure", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPlayerRepository(db)

		mock.ExpectQuery("SELECT token, icon_data").
			WithArgs(int64(42)).
			WillReturnError(fmt.Errorf("disk I/O error"))

		if _, err := repo.Get(42); err == nil {
			t.Error("expected error when query fails")
		}
	})

	t.Run("UpsertToken Exec Failure", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPlayerRepository(db)

		mock.ExpectExec("INSERT INTO players").
			WithArgs(int64(42), "deadbeef").
			WillReturnError(fmt.Errorf("database is locked"))

		if err := repo.UpsertToken(42, "deadbeef"); err == nil {
			t.Error("expected error when exec fails")
		}
	})

	t.Run("UpsertIconData Exec Failure", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPlayerRepository(db)

		mock.ExpectExec("INSERT INTO players").
			WithArgs(int64(42), `{}`).
			WillReturnError(fmt.Errorf("database is locked"))

		if err := repo.UpsertIconData(42, []byte(`{}`)); err == nil {
			t.Error("expected error when exec fails")
		}
	})
}
