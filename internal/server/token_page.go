package server

import (
	"encoding/json"
	"math/rand"
	"net/http"

	"github.com/charmbracelet/log"
)

// tokenSearchURL is the Wikipedia opensearch query behind GET /token.
const tokenSearchURL = "https://en.wikipedia.org/w/api.php?action=opensearch&search=token"

// TokenPageHandler serves GET /token: a redirect to a random Wikipedia
// article about tokens, for people who visit the token endpoint in a
// browser.
type TokenPageHandler struct {
	httpClient *http.Client
	logger     *log.Logger
}

// NewTokenPageHandler creates a new [TokenPageHandler]. A nil client
// selects [http.DefaultClient].
func NewTokenPageHandler(client *http.Client, logger *log.Logger) *TokenPageHandler {
	if client == nil {
		client = http.DefaultClient
	}
	return &TokenPageHandler{httpClient: client, logger: logger}
}

// Routes returns the HTTP routes this handler serves.
func (h *TokenPageHandler) Routes() []string {
	return []string{"/token"}
}

// ServeHTTP picks a random article from the opensearch results and
// redirects to it. Any upstream failure is a 404; nothing here is
// load-bearing.
func (h *TokenPageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	req, err := http.NewRequestWithContext(r.Context(), http.MethodGet, tokenSearchURL, nil)
	if err != nil {
		h.logger.Warn("token page: failed to build request", "error", err)
		http.NotFound(w, r)
		return
	}

	resp, err := h.httpClient.Do(req)
	if err != nil {
		h.logger.Warn("token page: search request failed", "error", err)
		http.NotFound(w, r)
		return
	}
	defer resp.Body.Close()

	// opensearch bodies are [query, titles, descriptions, urls]
	var results []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil || len(results) < 4 {
		h.logger.Warn("token page: unexpected search response", "error", err)
		http.NotFound(w, r)
		return
	}

	var urls []string
	if err := json.Unmarshal(results[3], &urls); err != nil || len(urls) == 0 {
		h.logger.Warn("token page: no search results")
		http.NotFound(w, r)
		return
	}

	http.Redirect(w, r, urls[rand.Intn(len(urls))], http.StatusFound)
}
