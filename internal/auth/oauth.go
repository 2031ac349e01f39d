package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// GoogleUserInfo is the profile slice of Google's userinfo response the
// service persists: the stable provider ID plus display fields.
type GoogleUserInfo struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// OAuthProvider runs the authorization-code flow for one identity provider.
// Google is the only provider the duel service signs players in with today.
type OAuthProvider struct {
	config *oauth2.Config
	name   string
}

// NewGoogleOAuth creates the provider for Google sign-in.
func NewGoogleOAuth(clientID, clientSecret, redirectURL string) *OAuthProvider {
	return &OAuthProvider{
		name: "google",
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       []string{"openid", "profile", "email"},
			Endpoint:     google.Endpoint,
		},
	}
}

// LoginURL returns the authorization URL carrying the caller's state token.
func (p *OAuthProvider) LoginURL(state string) string {
	return p.config.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

// Exchange trades an authorization code for the player's profile, fetching
// it from the userinfo endpoint with the freshly issued token.
func (p *OAuthProvider) Exchange(ctx context.Context, code string) (*GoogleUserInfo, error) {
	token, err := p.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("oauth exchange: %w", err)
	}

	client := p.config.Client(ctx, token)
	resp, err := client.Get(googleUserInfoURL)
	if err != nil {
		return nil, fmt.Errorf("oauth userinfo request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("oauth userinfo status %d: %s", resp.StatusCode, body)
	}

	var info GoogleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("oauth userinfo decode: %w", err)
	}
	return &info, nil
}

// Name returns the provider name used as the users table provider key.
func (p *OAuthProvider) Name() string {
	return p.name
}
