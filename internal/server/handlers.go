package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/undefined06855/Extra-Icon-Data-Server/internal/models"
	"github.com/undefined06855/Extra-Icon-Data-Server/internal/shared"
	"github.com/undefined06855/Extra-Icon-Data-Server/internal/tasks"
)

// Soft-failure error codes returned in the JSON body. The transport
// status stays 200 for domain failures; existing clients key off the
// success flag, not the status code.
const (
	codeInvalidRequest   = "INVALID_REQUEST"
	codeValidationFailed = "VALIDATION_FAILED"
	codeNoSession        = "NO_SESSION"
	codeTokenMismatch    = "TOKEN_MISMATCH"
	codeInvalidIconData  = "INVALID_ICON_DATA"
	codeInternalError    = "INTERNAL_ERROR"
)

// TokenGetRequest is the body of POST /token/get. Token carries the
// credential issued by the external provider, not a session token.
type TokenGetRequest struct {
	AccountID int64  `json:"accountID"`
	Token     string `json:"token"`
}

// TokenGetResponse is the body returned by POST /token/get.
type TokenGetResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token,omitempty"`
	Error   string `json:"error,omitempty"`
}

// IconsGetRequest is the body of POST /icons/get: account IDs (JSON
// object keys, so strings on the wire) mapped to requested icon types.
// An empty type list requests every type the account has stored.
type IconsGetRequest struct {
	Players map[string][]string `json:"players"`
}

// IconsSetRequest is the body of POST /icons/set. Token must match the
// session token previously issued via /token/get.
type IconsSetRequest struct {
	AccountID int64           `json:"accountID"`
	Token     string          `json:"token"`
	Data      models.IconData `json:"data"`
}

// SimpleResponse is the generic success/failure body.
type SimpleResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func writeFailure(w http.ResponseWriter, code string) {
	writeJSON(w, SimpleResponse{Success: false, Error: code})
}

// errorCode maps the domain error taxonomy onto wire codes. Anything
// unrecognized is an internal error and must not leak details.
func errorCode(err error) string {
	switch {
	case errors.Is(err, shared.ErrValidationFailed):
		return codeValidationFailed
	case errors.Is(err, shared.ErrNoSession):
		return codeNoSession
	case errors.Is(err, shared.ErrTokenMismatch):
		return codeTokenMismatch
	case errors.Is(err, shared.ErrInvalidIconData):
		return codeInvalidIconData
	default:
		return codeInternalError
	}
}

// TokenHandler serves session token issuance.
type TokenHandler struct {
	sessions *tasks.SessionEngine
	logger   *log.Logger
}

// NewTokenHandler creates a new [TokenHandler].
func NewTokenHandler(sessions *tasks.SessionEngine, logger *log.Logger) *TokenHandler {
	return &TokenHandler{sessions: sessions, logger: logger}
}

// Routes returns the HTTP routes this handler serves.
func (h *TokenHandler) Routes() []string {
	return []string{"/token/get"}
}

// ServeHTTP handles POST /token/get.
func (h *TokenHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var req TokenGetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailure(w, codeInvalidRequest)
		return
	}
	if req.AccountID <= 0 || req.Token == "" {
		writeFailure(w, codeInvalidRequest)
		return
	}

	token, err := h.sessions.IssueToken(r.Context(), req.AccountID, req.Token)
	if err != nil {
		if errorCode(err) == codeInternalError {
			h.logger.Warn("token issuance failed", "error", err)
		}
		writeJSON(w, TokenGetResponse{Success: false, Error: errorCode(err)})
		return
	}

	writeJSON(w, TokenGetResponse{Success: true, Token: token})
}

// IconsHandler serves icon data reads and writes.
type IconsHandler struct {
	icons  *tasks.IconEngine
	logger *log.Logger
}

// NewIconsHandler creates a new [IconsHandler].
func NewIconsHandler(icons *tasks.IconEngine, logger *log.Logger) *IconsHandler {
	return &IconsHandler{icons: icons, logger: logger}
}

// Routes returns the HTTP routes this handler serves.
func (h *IconsHandler) Routes() []string {
	return []string{"/icons/get", "/icons/set"}
}

// ServeHTTP dispatches between the get and set operations.
func (h *IconsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	switch r.URL.Path {
	case "/icons/get":
		h.get(w, r)
	case "/icons/set":
		h.set(w, r)
	default:
		http.NotFound(w, r)
	}
}

// get computes the effective icon data for every requested account.
func (h *IconsHandler) get(w http.ResponseWriter, r *http.Request) {
	var req IconsGetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Players == nil {
		writeFailure(w, codeInvalidRequest)
		return
	}

	requests := make(map[int64][]string, len(req.Players))
	for rawID, iconTypes := range req.Players {
		accountID, err := strconv.ParseInt(rawID, 10, 64)
		if err != nil || accountID <= 0 {
			writeFailure(w, codeInvalidRequest)
			return
		}
		for _, iconType := range iconTypes {
			if !models.IsIconType(iconType) {
				writeFailure(w, codeInvalidRequest)
				return
			}
		}
		requests[accountID] = iconTypes
	}

	results, err := h.icons.Get(r.Context(), requests)
	if err != nil {
		h.logger.Warn("icon data read failed", "error", err)
		writeFailure(w, codeInternalError)
		return
	}

	// The account results sit beside the success flag at the top level.
	response := make(map[string]any, len(results)+1)
	response["success"] = true
	for accountID, merged := range results {
		response[strconv.FormatInt(accountID, 10)] = merged
	}
	writeJSON(w, response)
}

// set replaces an account's stored icon data, gated on its session token.
func (h *IconsHandler) set(w http.ResponseWriter, r *http.Request) {
	var req IconsSetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailure(w, codeInvalidRequest)
		return
	}
	if req.AccountID <= 0 || req.Token == "" || req.Data == nil {
		writeFailure(w, codeInvalidRequest)
		return
	}

	if err := h.icons.Set(r.Context(), req.AccountID, req.Token, req.Data); err != nil {
		if errorCode(err) == codeInternalError {
			h.logger.Warn("icon data write failed", "error", err)
		}
		writeFailure(w, errorCode(err))
		return
	}

	writeJSON(w, SimpleResponse{Success: true})
}

// RedirectHandler serves the informational redirects.
type RedirectHandler struct {
	targets map[string]string
}

// NewRedirectHandler creates the redirect handler for / and /icons.
func NewRedirectHandler() *RedirectHandler {
	return &RedirectHandler{
		targets: map[string]string{
			"/":      "https://undefined0.dev/cat",
			"/icons": "https://geode-sdk.org/mods/undefined0.icon_ninja",
		},
	}
}

// Routes returns the HTTP routes this handler serves.
func (h *RedirectHandler) Routes() []string {
	routes := make([]string, 0, len(h.targets))
	for route := range h.targets {
		routes = append(routes, route)
	}
	return routes
}

// ServeHTTP issues the redirect for known paths. "/" is the ServeMux
// catch-all, so anything unknown lands here and gets a 404.
func (h *RedirectHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	target, ok := h.targets[r.URL.Path]
	if !ok {
		http.NotFound(w, r)
		return
	}
	http.Redirect(w, r, target, http.StatusFound)
}
