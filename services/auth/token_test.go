package auth

import (
	"strings"
	"testing"
)

func TestTokenRoundTrip(t *testing.T) {
	secret := []byte("test-session-secret")

	token, err := MintToken(secret, "member-123")
	if err != nil {
		t.Fatalf("MintToken() error = %v", err)
	}

	uid, err := ParseToken(secret, token)
	if err != nil {
		t.Fatalf("ParseToken() error = %v", err)
	}
	if uid != "member-123" {
		t.Errorf("ParseToken() uid = %q, want %q", uid, "member-123")
	}
}

func TestParseToken_WrongKey(t *testing.T) {
	token, err := MintToken([]byte("key-one"), "member-123")
	if err != nil {
		t.Fatalf("MintToken() error = %v", err)
	}

	if _, err := ParseToken([]byte("key-two"), token); err == nil {
		t.Error("expected token signed with a different key to be rejected")
	}
}

func TestParseToken_Garbage(t *testing.T) {
	if _, err := ParseToken([]byte("key"), "not-a-token"); err == nil {
		t.Error("expected garbage token to be rejected")
	}
}

func TestParseToken_Tampered(t *testing.T) {
	secret := []byte("test-session-secret")
	token, err := MintToken(secret, "member-123")
	if err != nil {
		t.Fatalf("MintToken() error = %v", err)
	}

	// Flip a character in the payload segment
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("expected a compact JWS, got %d segments", len(parts))
	}
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	if _, err := ParseToken(secret, tampered); err == nil {
		t.Error("expected tampered token to be rejected")
	}
}

func TestBridgeProfileUID(t *testing.T) {
	p := BridgeProfile{ID: 4172}
	if got := p.UID(); got != "external_4172" {
		t.Errorf("UID() = %q, want %q", got, "external_4172")
	}
}

func TestDisplayNameFromEmail(t *testing.T) {
	tests := []struct {
		email string
		want  string
	}{
		{"dusty@example.com", "dusty"},
		{"@example.com", "Anonymous"},
		{"no-at-sign", "Anonymous"},
	}
	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			if got := displayNameFromEmail(tt.email); got != tt.want {
				t.Errorf("displayNameFromEmail(%q) = %q, want %q", tt.email, got, tt.want)
			}
		})
	}
}
