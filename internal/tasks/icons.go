package tasks

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/undefined06855/Extra-Icon-Data-Server/internal/models"
	"github.com/undefined06855/Extra-Icon-Data-Server/internal/shared"
)

// IconEngine reads and writes per-account icon customization data.
type IconEngine struct {
	players PlayerStore
	logger  *log.Logger
}

// NewIconEngine creates a new [IconEngine].
func NewIconEngine(players PlayerStore, logger *log.Logger) *IconEngine {
	return &IconEngine{players: players, logger: logger}
}

// Get computes the effective icon data for a batch of accounts. Each
// account maps to its requested icon types; an empty type list means
// every type the account has stored. Accounts without a record (or with
// nothing stored) yield an empty mapping per requested type. The shared
// pseudo-type never appears as a result key, even when requested.
func (e *IconEngine) Get(ctx context.Context, requests map[int64][]string) (map[int64]map[string]models.ModEntries, error) {
	results := make(map[int64]map[string]models.ModEntries, len(requests))

	for accountID, iconTypes := range requests {
		data, err := e.loadIconData(accountID)
		if err != nil {
			return nil, err
		}

		if len(iconTypes) == 0 {
			iconTypes = data.Types()
		}

		merged := make(map[string]models.ModEntries, len(iconTypes))
		for _, iconType := range iconTypes {
			if iconType == models.SharedType {
				continue
			}
			merged[iconType] = data.Merged(iconType)
		}
		results[accountID] = merged
	}

	return results, nil
}

// Set replaces the stored icon data for an account wholesale. The write
// is refused unless the submitted structure is valid, a session token
// has been issued for the account, and the presented token matches it
// exactly. Every refusal leaves stored data unchanged.
func (e *IconEngine) Set(ctx context.Context, accountID int64, presentedToken string, data models.IconData) error {
	if err := data.Validate(); err != nil {
		return fmt.Errorf("%w: %s", shared.ErrInvalidIconData, err)
	}

	player, err := e.players.Get(accountID)
	if errors.Is(err, shared.ErrPlayerNotFound) {
		return fmt.Errorf("%w: account %d", shared.ErrNoSession, accountID)
	}
	if err != nil {
		return err
	}
	if !player.HasToken() {
		return fmt.Errorf("%w: account %d", shared.ErrNoSession, accountID)
	}

	if subtle.ConstantTimeCompare([]byte(player.Token), []byte(presentedToken)) != 1 {
		return fmt.Errorf("%w: account %d", shared.ErrTokenMismatch, accountID)
	}

	blob, err := data.Encode()
	if err != nil {
		return err
	}

	if err := e.players.UpsertIconData(accountID, blob); err != nil {
		return err
	}

	e.logger.Info("replaced icon data", "account_id", accountID, "types", data.Types())
	return nil
}

// loadIconData fetches and decodes an account's stored blob; a missing
// row is an empty mapping, not an error.
func (e *IconEngine) loadIconData(accountID int64) (models.IconData, error) {
	player, err := e.players.Get(accountID)
	if errors.Is(err, shared.ErrPlayerNotFound) {
		return models.IconData{}, nil
	}
	if err != nil {
		return nil, err
	}

	data, err := models.DecodeIconData(player.IconData)
	if err != nil {
		return nil, fmt.Errorf("stored icon data for account %d is corrupt: %w", accountID, err)
	}
	return data, nil
}
