package shared

import (
	"encoding/hex"
	"testing"
)

func TestGenerateSessionToken(t *testing.T) {
	t.Run("Length And Encoding", func(t *testing.T) {
		token, err := GenerateSessionToken()
		if err != nil {
			t.Fatalf("failed to generate token: %v", err)
		}

		if len(token) != 40 {
			t.Errorf("expected 40 hex characters, got %d", len(token))
		}

		if _, err := hex.DecodeString(token); err != nil {
			t.Errorf("token is not valid hex: %v", err)
		}
	})

	t.Run("Uniqueness", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 100; i++ {
			token, err := GenerateSessionToken()
			if err != nil {
				t.Fatalf("failed to generate token: %v", err)
			}
			if seen[token] {
				t.Fatalf("duplicate token generated: %s", token)
			}
			seen[token] = true
		}
	})
}

func TestGenerateRequestID(t *testing.T) {
	a := GenerateRequestID()
	b := GenerateRequestID()

	if a == "" || b == "" {
		t.Fatal("expected non-empty request IDs")
	}
	if a == b {
		t.Error("expected distinct request IDs")
	}
}
