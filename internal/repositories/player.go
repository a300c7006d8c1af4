package repositories

import (
	"database/sql"
	"fmt"

	"github.com/undefined06855/Extra-Icon-Data-Server/internal/models"
	"github.com/undefined06855/Extra-Icon-Data-Server/internal/shared"
)

// PlayerRepository handles [models.Player] persistence.
type PlayerRepository struct {
	db *sql.DB
}

// NewPlayerRepository creates a new [PlayerRepository] with the given database connection
func NewPlayerRepository(db *sql.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

// Get retrieves the player row for an account. Returns an error wrapping
// [shared.ErrPlayerNotFound] when no row exists.
func (r *PlayerRepository) Get(accountID int64) (*models.Player, error) {
	query := `
		SELECT token, icon_data
		FROM players
		WHERE account_id = ?
	`

	player := models.Player{AccountID: accountID}
	var iconData string

	err := r.db.QueryRow(query, accountID).Scan(&player.Token, &iconData)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: %d", shared.ErrPlayerNotFound, accountID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query player: %w", err)
	}

	player.IconData = []byte(iconData)
	return &player, nil
}

// UpsertToken stores a freshly issued session token for an account,
// creating the row if needed. Stored icon data is left untouched.
func (r *PlayerRepository) UpsertToken(accountID int64, token string) error {
	query := `
		INSERT INTO players (account_id, token)
		VALUES (?, ?)
		ON CONFLICT(account_id) DO UPDATE SET token = excluded.token
	`

	if _, err := r.db.Exec(query, accountID, token); err != nil {
		return fmt.Errorf("failed to upsert token: %w", err)
	}
	return nil
}

// UpsertIconData replaces the stored icon data blob for an account
// wholesale, creating the row if needed. The session token is left
// untouched.
func (r *PlayerRepository) UpsertIconData(accountID int64, blob []byte) error {
	query := `
		INSERT INTO players (account_id, icon_data)
		VALUES (?, ?)
		ON CONFLICT(account_id) DO UPDATE SET icon_data = excluded.icon_data
	`

	if _, err := r.db.Exec(query, accountID, string(blob)); err != nil {
		return fmt.Errorf("failed to upsert icon data: %w", err)
	}
	return nil
}
