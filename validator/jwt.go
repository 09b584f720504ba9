package validator

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/getkin/kin-openapi/openapi3filter"
	middleware "github.com/oapi-codegen/gin-middleware"
)

type key string

const accessToken key = "access_info"

type Access struct {
	UID         string
	AccessToken string
}

func FromContext(ctx context.Context) (*Access, bool) {
	t, ok := ctx.Value(string(accessToken)).(*Access)
	return t, ok
}

var (
	ErrNoAuthHeader      = errors.New("Authorization header is missing")
	ErrInvalidAuthHeader = errors.New("Authorization header is malformed")
)

// GetJWSFromRequest extracts a JWS string from an Authorization: Bearer <jws> header
func GetJWSFromRequest(req *http.Request) (string, error) {
	authHdr := req.Header.Get("Authorization")
	// Check for the Authorization header.
	if authHdr == "" {
		return "", ErrNoAuthHeader
	}
	// We expect a header value of the form "Bearer <token>", with 1 space after
	// Bearer, per spec.
	prefix := "Bearer "
	if !strings.HasPrefix(authHdr, prefix) {
		return "", ErrInvalidAuthHeader
	}
	return strings.TrimPrefix(authHdr, prefix), nil
}

// NewAuthenticator builds the authentication hook for the OpenAPI request
// validator. parse verifies a session token and returns the member uid it is
// bound to; on success the access info is stashed in the gin context for the
// handlers.
func NewAuthenticator(parse func(token string) (string, error)) openapi3filter.AuthenticationFunc {
	return func(ctx context.Context, input *openapi3filter.AuthenticationInput) error {
		// Our security scheme is named bearerAuth, ensure this is the case
		if input.SecuritySchemeName != "bearerAuth" {
			return fmt.Errorf("security scheme %s != 'bearerAuth'", input.SecuritySchemeName)
		}

		jws, err := GetJWSFromRequest(input.RequestValidationInput.Request)
		if err != nil {
			return fmt.Errorf("getting jws: %w", err)
		}

		uid, err := parse(jws)
		if err != nil {
			return fmt.Errorf("validating jws: %w", err)
		}

		ac := Access{UID: uid, AccessToken: jws}
		// Set the property on the gin context so the handler is able to
		// access the session we verified in here.
		eCtx := middleware.GetGinContext(ctx)
		eCtx.Set(string(accessToken), &ac)

		return nil
	}
}
