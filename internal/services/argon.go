package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/charmbracelet/log"
)

// DefaultArgonBaseURL is the public Argon instance.
const DefaultArgonBaseURL = "https://argon.globed.dev/v1"

// Validator reports whether a client-presented credential is currently
// valid for an account. Implementations must fail closed.
type Validator interface {
	Validate(ctx context.Context, accountID int64, token string) bool
}

// ArgonService implements [Validator] against the Argon HTTP API.
type ArgonService struct {
	baseURL    string
	httpClient *http.Client
	logger     *log.Logger
}

// checkResponse is the body of a successful /validation/check call.
type checkResponse struct {
	Valid bool   `json:"valid"`
	Cause string `json:"cause"`
}

// NewArgonService creates a new Argon validation client.
// An empty baseURL selects [DefaultArgonBaseURL]; a nil client selects
// [http.DefaultClient].
func NewArgonService(baseURL string, client *http.Client, logger *log.Logger) *ArgonService {
	if baseURL == "" {
		baseURL = DefaultArgonBaseURL
	}
	if client == nil {
		client = http.DefaultClient
	}

	return &ArgonService{
		baseURL:    baseURL,
		httpClient: client,
		logger:     logger,
	}
}

// Validate performs a single validation check. Every failure mode
// resolves to false; the caller never sees an error.
func (a *ArgonService) Validate(ctx context.Context, accountID int64, token string) bool {
	query := url.Values{}
	query.Set("account_id", strconv.FormatInt(accountID, 10))
	query.Set("authtoken", token)
	fullURL := fmt.Sprintf("%s/validation/check?%s", a.baseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		a.logger.Warn("argon: failed to build request", "error", err)
		return false
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		a.logger.Warn("argon: request failed", "error", err)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		a.logger.Warn("argon: error from server", "status", resp.StatusCode, "body", string(body))
		return false
	}

	var check checkResponse
	if err := json.NewDecoder(resp.Body).Decode(&check); err != nil {
		a.logger.Warn("argon: failed to decode response", "error", err)
		return false
	}

	if !check.Valid {
		a.logger.Warn("argon: invalid token supplied", "account_id", accountID, "cause", check.Cause)
		return false
	}

	return true
}
