package auth

import (
	"fmt"
	"log/slog"
	"net/url"

	"github.com/go-resty/resty/v2"
	"golang.org/x/net/context"
)

// BridgeService exchanges hub credentials for a hub profile. It is a pure
// pass-through: no state beyond token relay, and every failure is opaque to
// the caller (generic invalid-credentials).
type BridgeService interface {
	Exchange(context context.Context, email, password string) (*BridgeProfile, error)
}

var _ BridgeService = (*BridgeServiceImpl)(nil)

type BridgeServiceImpl struct {
	http       *resty.Client
	baseURL    string
	clientID   string
	privateKey string
	publicKey  string
}

func NewBridgeService(client *resty.Client, baseURL, clientID, privateKey, publicKey string) *BridgeServiceImpl {
	return &BridgeServiceImpl{
		http:       client,
		baseURL:    baseURL,
		clientID:   clientID,
		privateKey: privateKey,
		publicKey:  publicKey,
	}
}

// BridgeProfile is the hub identity a session gets bound to. The uid derived
// from it is "external_<id>" so the directory can reuse one profile per hub
// account.
type BridgeProfile struct {
	ID    int     `json:"id"`
	Email string  `json:"email"`
	Name  string  `json:"name"`
	Image *string `json:"image"`
}

func (p BridgeProfile) UID() string {
	return fmt.Sprintf("external_%d", p.ID)
}

type bridgeTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
}

type bridgeUserResponse struct {
	Data *BridgeProfile `json:"data"`
	BridgeProfile
}

type BridgeError struct {
	ErrorType    string `json:"error"`
	ErrorMessage string `json:"error_description"`
}

func (b BridgeError) Error() string {
	return fmt.Sprintf("%s: %s", b.ErrorType, b.ErrorMessage)
}

func (b *BridgeServiceImpl) Exchange(context context.Context, email, password string) (*BridgeProfile, error) {
	accessToken, err := b.getAccessToken(context, email, password)
	if err != nil {
		return nil, err
	}

	// A refresh token outlives the access token; fall back to the access
	// token when the upgrade is refused.
	token := b.refreshAccessToken(context, accessToken)

	return b.getProfile(context, token)
}

func (b *BridgeServiceImpl) getAccessToken(context context.Context, email, password string) (string, error) {
	response := &bridgeTokenResponse{}
	responseError := &BridgeError{}

	values := url.Values{
		"grant_type": []string{"password"},
		"client_id":  []string{b.clientID},
		"username":   []string{email},
		"password":   []string{password},
	}
	resp, err := b.http.R().
		SetContext(context).
		SetHeader("Private-Key", b.privateKey).
		SetHeader("Public-Key", b.publicKey).
		SetResult(&response).
		SetError(&responseError).
		SetFormDataFromValues(values).
		Post(b.baseURL + "/oauth/access_token")
	if err != nil {
		slog.With("error", err.Error()).Error("Error getting hub access token")
		return "", err
	}
	if resp.IsError() {
		return "", fmt.Errorf("error getting hub access token: %s ", responseError.Error())
	}
	return response.AccessToken, nil
}

func (b *BridgeServiceImpl) refreshAccessToken(context context.Context, accessToken string) string {
	response := &bridgeTokenResponse{}
	values := url.Values{
		"grant_type":   []string{"refresh_token"},
		"client_id":    []string{b.clientID},
		"access_token": []string{accessToken},
	}
	resp, err := b.http.R().
		SetContext(context).
		SetHeader("Private-Key", b.privateKey).
		SetHeader("Public-Key", b.publicKey).
		SetResult(&response).
		SetFormDataFromValues(values).
		Post(b.baseURL + "/oauth/access_token")
	if err != nil || resp.IsError() {
		return accessToken
	}
	if response.RefreshToken != "" {
		return response.RefreshToken
	}
	if response.AccessToken != "" {
		return response.AccessToken
	}
	return accessToken
}

func (b *BridgeServiceImpl) getProfile(context context.Context, token string) (*BridgeProfile, error) {
	response := &bridgeUserResponse{}
	resp, err := b.http.R().
		SetContext(context).
		SetAuthToken(token).
		SetHeader("Private-Key", b.privateKey).
		SetResult(&response).
		Get(b.baseURL + "/user")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("error fetching hub profile: status %d", resp.StatusCode())
	}
	if response.Data != nil {
		return response.Data, nil
	}
	return &response.BridgeProfile, nil
}
