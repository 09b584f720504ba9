package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"

	"campCrew/services/user"
)

// ErrInvalidCredentials covers every identity failure the providers report.
// They are deliberately not discriminated further for the caller.
var ErrInvalidCredentials = errors.New("invalid email or password")

// Session is an established sign-in: the minted token plus the member it
// resolves to.
type Session struct {
	Token string    `json:"token"`
	User  user.User `json:"user"`
}

// Service establishes sessions. Registration and password sign-in go through
// the identity provider; hub sign-in goes through the bridge. Either way a
// member profile is created on first sign-in with directory defaults.
type Service interface {
	Register(ctx context.Context, email, password, displayName string) (*Session, error)
	SignIn(ctx context.Context, email, password string) (*Session, error)
	SignInWithBridge(ctx context.Context, email, password string) (*Session, error)
	// ParseToken verifies a bearer token and returns the bound member uid.
	ParseToken(token string) (string, error)
}

type service struct {
	http        *resty.Client
	identityKey string
	secret      []byte
	bridge      BridgeService
	userService user.Service
}

var _ Service = (*service)(nil)

const identityBaseURL = "https://identitytoolkit.googleapis.com/v1"

func NewService(client *resty.Client, identityKey string, secret []byte, bridge BridgeService, userService user.Service) Service {
	return &service{
		http:        client,
		identityKey: identityKey,
		secret:      secret,
		bridge:      bridge,
		userService: userService,
	}
}

type identityRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type identityResponse struct {
	LocalID     string `json:"localId"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
}

type identityError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (s *service) Register(ctx context.Context, email, password, displayName string) (*Session, error) {
	identity, err := s.callIdentity(ctx, "accounts:signUp", email, password)
	if err != nil {
		return nil, err
	}
	if displayName == "" {
		displayName = displayNameFromEmail(email)
	}
	u, err := s.userService.Create(ctx, identity.LocalID, email, displayName, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create member profile: %w", err)
	}
	return s.establish(*u)
}

func (s *service) SignIn(ctx context.Context, email, password string) (*Session, error) {
	identity, err := s.callIdentity(ctx, "accounts:signInWithPassword", email, password)
	if err != nil {
		return nil, err
	}
	u, err := s.resolveMember(ctx, identity.LocalID, identity.Email, identity.DisplayName, nil)
	if err != nil {
		return nil, err
	}
	return s.establish(*u)
}

func (s *service) SignInWithBridge(ctx context.Context, email, password string) (*Session, error) {
	profile, err := s.bridge.Exchange(ctx, email, password)
	if err != nil {
		// Bridge failures are opaque; details go to the log only.
		log.Warn().Err(err).Msg("hub bridge exchange failed")
		return nil, ErrInvalidCredentials
	}
	u, err := s.resolveMember(ctx, profile.UID(), profile.Email, profile.Name, profile.Image)
	if err != nil {
		return nil, err
	}
	return s.establish(*u)
}

func (s *service) ParseToken(token string) (string, error) {
	return ParseToken(s.secret, token)
}

func (s *service) callIdentity(ctx context.Context, endpoint, email, password string) (*identityResponse, error) {
	response := &identityResponse{}
	responseError := &identityError{}

	resp, err := s.http.R().
		SetContext(ctx).
		SetQueryParam("key", s.identityKey).
		SetBody(identityRequest{Email: email, Password: password, ReturnSecureToken: true}).
		SetResult(response).
		SetError(responseError).
		Post(fmt.Sprintf("%s/%s", identityBaseURL, endpoint))
	if err != nil {
		return nil, fmt.Errorf("identity provider unreachable: %w", err)
	}
	if resp.IsError() {
		log.Warn().
			Str("endpoint", endpoint).
			Str("reason", responseError.Error.Message).
			Msg("identity provider rejected credentials")
		return nil, ErrInvalidCredentials
	}
	return response, nil
}

// resolveMember maps a session identity to a member record, creating one on
// first sign-in with defaults.
func (s *service) resolveMember(ctx context.Context, uid, email, displayName string, photoURL *string) (*user.User, error) {
	u, err := s.userService.GetByUID(ctx, uid)
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, user.NotFound) {
		return nil, err
	}
	if displayName == "" {
		displayName = displayNameFromEmail(email)
	}
	created, err := s.userService.Create(ctx, uid, email, displayName, photoURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create member profile: %w", err)
	}
	return created, nil
}

func (s *service) establish(u user.User) (*Session, error) {
	token, err := MintToken(s.secret, u.UID)
	if err != nil {
		return nil, err
	}
	return &Session{Token: token, User: u}, nil
}

func displayNameFromEmail(email string) string {
	if i := strings.Index(email, "@"); i > 0 {
		return email[:i]
	}
	return "Anonymous"
}
