package services

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/undefined06855/Extra-Icon-Data-Server/internal/shared"
	itesting "github.com/undefined06855/Extra-Icon-Data-Server/internal/testing"
)

func newArgonWithResponse(t *testing.T, status int, body string, transportErr error) (*ArgonService, *itesting.MockRoundTripper) {
	t.Helper()

	var resp *http.Response
	if transportErr == nil {
		resp = &http.Response{
			StatusCode: status,
			Body:       io.NopCloser(strings.NewReader(body)),
			Header:     make(http.Header),
		}
	}

	rt := itesting.NewMockRoundTripper(resp, transportErr)
	client := &http.Client{Transport: rt}
	return NewArgonService("http://argon.test/v1", client, shared.NewLogger(io.Discard)), rt
}

func TestArgonService(t *testing.T) {
	ctx := context.Background()

	t.Run("Valid Token", func(t *testing.T) {
		argon, rt := newArgonWithResponse(t, http.StatusOK, `{"valid":true}`, nil)

		if !argon.Validate(ctx, 42, "authtoken123") {
			t.Error("expected valid token to pass")
		}

		if !strings.Contains(rt.LastURL, "account_id=42") {
			t.Errorf("request URL missing account id: %s", rt.LastURL)
		}
		if !strings.Contains(rt.LastURL, "authtoken=authtoken123") {
			t.Errorf("request URL missing auth token: %s", rt.LastURL)
		}
		if !strings.Contains(rt.LastURL, "/validation/check") {
			t.Errorf("request URL missing check path: %s", rt.LastURL)
		}
	})

	t.Run("Invalid Token", func(t *testing.T) {
		argon, _ := newArgonWithResponse(t, http.StatusOK, `{"valid":false,"cause":"token expired"}`, nil)

		if argon.Validate(ctx, 42, "stale") {
			t.Error("expected invalid token to fail")
		}
	})

	t.Run("Non-200 Status Fails Closed", func(t *testing.T) {
		argon, _ := newArgonWithResponse(t, http.StatusInternalServerError, "upstream broke", nil)

		if argon.Validate(ctx, 42, "authtoken123") {
			t.Error("expected server error to fail closed")
		}
	})

	t.Run("Transport Error Fails Closed", func(t *testing.T) {
		argon, _ := newArgonWithResponse(t, 0, "", errors.New("connection refused"))

		if argon.Validate(ctx, 42, "authtoken123") {
			t.Error("expected transport error to fail closed")
		}
	})

	t.Run("Malformed Body Fails Closed", func(t *testing.T) {
		argon, _ := newArgonWithResponse(t, http.StatusOK, `{not json`, nil)

		if argon.Validate(ctx, 42, "authtoken123") {
			t.Error("expected malformed body to fail closed")
		}
	})

	t.Run("Unreadable Body Fails Closed", func(t *testing.T) {
		resp := &http.Response{
			StatusCode: http.StatusOK,
			Body:       &itesting.FCloser{},
			Header:     make(http.Header),
		}
		client := &http.Client{Transport: itesting.NewMockRoundTripper(resp, nil)}
		argon := NewArgonService("http://argon.test/v1", client, shared.NewLogger(io.Discard))

		if argon.Validate(ctx, 42, "authtoken123") {
			t.Error("expected unreadable body to fail closed")
		}
	})

	t.Run("Defaults", func(t *testing.T) {
		argon := NewArgonService("", nil, shared.NewLogger(io.Discard))

		if argon.baseURL != DefaultArgonBaseURL {
			t.Errorf("expected default base URL, got %s", argon.baseURL)
		}
		if argon.httpClient != http.DefaultClient {
			t.Error("expected default HTTP client")
		}
	})
}
