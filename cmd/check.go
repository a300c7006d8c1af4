package main

import (
	"context"
	"fmt"

	"github.com/undefined06855/Extra-Icon-Data-Server/internal/services"
	"github.com/undefined06855/Extra-Icon-Data-Server/internal/shared"
	"github.com/urfave/cli/v3"
)

// checkCommand validates a credential against Argon from the command line
func checkCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "check",
		Usage: "Check an account's auth token against the Argon service",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
				Value:   "config.toml",
			},
			&cli.IntFlag{
				Name:     "account",
				Aliases:  []string{"a"},
				Usage:    "Account ID to check",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "token",
				Aliases:  []string{"t"},
				Usage:    "Auth token to check",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print output",
			},
		},
		Action: r.Check,
	}
}

// CheckResult is the verdict printed by the check command.
type CheckResult struct {
	AccountID int64 `json:"accountID"`
	Valid     bool  `json:"valid"`
}

// Check asks the configured Argon instance whether the given account
// and token pair is currently valid and prints the verdict as JSON.
func (r *Runner) Check(ctx context.Context, cmd *cli.Command) error {
	config := r.loadConfig(cmd.String("config"))

	accountID := cmd.Int("account")
	token := cmd.String("token")
	if accountID <= 0 {
		return fmt.Errorf("%w: account must be positive", shared.ErrInvalidArgument)
	}

	validator := services.NewArgonService(config.Argon.BaseURL, r.httpClient, r.logger)
	result := CheckResult{
		AccountID: accountID,
		Valid:     validator.Validate(ctx, accountID, token),
	}

	return r.writeJSON(result, cmd.Bool("pretty"))
}
