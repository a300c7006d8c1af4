// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"net/http"
)

// StaticValidator is a test double for [services.Validator] returning a
// fixed verdict and recording the last pair it was asked about.
type StaticValidator struct {
	Verdict       bool
	LastAccountID int64
	LastToken     string
	Calls         int
}

func (v *StaticValidator) Validate(ctx context.Context, accountID int64, token string) bool {
	v.LastAccountID = accountID
	v.LastToken = token
	v.Calls++
	return v.Verdict
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
	LastURL  string
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	m.LastURL = req.URL.String()
	return m.response, m.err
}

// FCloser simulates a failure when reading a response body
type FCloser struct{}

func (f *FCloser) Read(p []byte) (n int, err error) {
	return 0, errors.New("read failed")
}

func (f *FCloser) Close() error {
	return nil
}
