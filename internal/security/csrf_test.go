package security

import "testing"

func TestCSRFGenerator(t *testing.T) {
	gen := NewCSRFGenerator("test-secret")

	t.Run("round trip", func(t *testing.T) {
		token, err := gen.GenerateToken("session-123")
		if err != nil {
			t.Fatalf("GenerateToken() failed: %v", err)
		}
		if !gen.ValidateToken("session-123", token) {
			t.Error("valid token rejected")
		}
	})

	t.Run("deterministic per session", func(t *testing.T) {
		first, _ := gen.GenerateToken("session-123")
		second, _ := gen.GenerateToken("session-123")
		if first != second {
			t.Error("tokens for the same session differ")
		}
	})

	t.Run("different sessions different tokens", func(t *testing.T) {
		first, _ := gen.GenerateToken("session-123")
		second, _ := gen.GenerateToken("session-456")
		if first == second {
			t.Error("tokens for different sessions are identical")
		}
	})

	t.Run("wrong session rejected", func(t *testing.T) {
		token, _ := gen.GenerateToken("session-123")
		if gen.ValidateToken("session-456", token) {
			t.Error("token validated against the wrong session")
		}
	})

	t.Run("different secret rejected", func(t *testing.T) {
		other := NewCSRFGenerator("other-secret")
		token, _ := gen.GenerateToken("session-123")
		if other.ValidateToken("session-123", token) {
			t.Error("token validated with a different secret")
		}
	})

	t.Run("empty inputs", func(t *testing.T) {
		if _, err := gen.GenerateToken(""); err == nil {
			t.Error("GenerateToken() accepted an empty session ID")
		}
		if gen.ValidateToken("", "token") {
			t.Error("ValidateToken() accepted an empty session ID")
		}
		if gen.ValidateToken("session-123", "") {
			t.Error("ValidateToken() accepted an empty token")
		}
	})
}
