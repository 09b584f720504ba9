package auth

import (
	"fmt"
	"time"

	"github.com/lestrrat-go/jwx/jwa"
	"github.com/lestrrat-go/jwx/jwt"
)

const (
	tokenIssuer = "campCrew"
	sessionTTL  = 30 * 24 * time.Hour
)

// MintToken signs a session token bound to a member uid.
func MintToken(secret []byte, uid string) (string, error) {
	now := time.Now()
	tok := jwt.New()
	if err := tok.Set(jwt.SubjectKey, uid); err != nil {
		return "", err
	}
	if err := tok.Set(jwt.IssuerKey, tokenIssuer); err != nil {
		return "", err
	}
	if err := tok.Set(jwt.IssuedAtKey, now); err != nil {
		return "", err
	}
	if err := tok.Set(jwt.ExpirationKey, now.Add(sessionTTL)); err != nil {
		return "", err
	}

	signed, err := jwt.Sign(tok, jwa.HS256, secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return string(signed), nil
}

// ParseToken verifies a session token and returns the member uid it is bound
// to. Expired tokens and tokens signed with a different key are rejected.
func ParseToken(secret []byte, token string) (string, error) {
	tok, err := jwt.Parse(
		[]byte(token),
		jwt.WithVerify(jwa.HS256, secret),
		jwt.WithValidate(true),
		jwt.WithIssuer(tokenIssuer),
	)
	if err != nil {
		return "", fmt.Errorf("invalid session token: %w", err)
	}
	if tok.Subject() == "" {
		return "", fmt.Errorf("session token has no subject")
	}
	return tok.Subject(), nil
}
