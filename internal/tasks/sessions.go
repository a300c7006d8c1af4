package tasks

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/undefined06855/Extra-Icon-Data-Server/internal/models"
	"github.com/undefined06855/Extra-Icon-Data-Server/internal/services"
	"github.com/undefined06855/Extra-Icon-Data-Server/internal/shared"
)

// PlayerStore is the storage capability the engines consume.
// Implemented by [repositories.PlayerRepository].
type PlayerStore interface {
	Get(accountID int64) (*models.Player, error)
	UpsertToken(accountID int64, token string) error
	UpsertIconData(accountID int64, blob []byte) error
}

// SessionEngine issues session tokens for validated credentials.
type SessionEngine struct {
	validator services.Validator
	players   PlayerStore
	logger    *log.Logger
}

// NewSessionEngine creates a new [SessionEngine].
func NewSessionEngine(validator services.Validator, players PlayerStore, logger *log.Logger) *SessionEngine {
	return &SessionEngine{
		validator: validator,
		players:   players,
		logger:    logger,
	}
}

// IssueToken validates the presented credential with the external
// provider and, on success, persists and returns a fresh session token.
// The new token replaces any previously issued one; stored icon data is
// preserved. On validation failure storage is never touched.
func (e *SessionEngine) IssueToken(ctx context.Context, accountID int64, credential string) (string, error) {
	if !e.validator.Validate(ctx, accountID, credential) {
		return "", fmt.Errorf("%w: account %d", shared.ErrValidationFailed, accountID)
	}

	token, err := shared.GenerateSessionToken()
	if err != nil {
		return "", err
	}

	if err := e.players.UpsertToken(accountID, token); err != nil {
		return "", err
	}

	e.logger.Info("issued session token", "account_id", accountID)
	return token, nil
}
