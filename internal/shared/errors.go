package shared

import "fmt"

var (
	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Session and token errors
	ErrValidationFailed = fmt.Errorf("credential validation failed")
	ErrNoSession        = fmt.Errorf("no session token issued for account")
	ErrTokenMismatch    = fmt.Errorf("session token mismatch")

	// Icon data errors
	ErrInvalidIconData = fmt.Errorf("invalid icon data")
	ErrUnknownIconType = fmt.Errorf("unknown icon type")
	ErrInvalidModID    = fmt.Errorf("invalid mod identifier")

	// Storage errors
	ErrPlayerNotFound = fmt.Errorf("player not found")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
)
