package msgraph

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/microsoft"
)

// OAuth drives the Microsoft identity platform authorization-code flow.
type OAuth struct {
	config *oauth2.Config
}

// NewOAuth builds the OAuth helper from application credentials.
// tenant defaults to "common" when empty.
func NewOAuth(clientID, clientSecret, redirectURL, tenant string) *OAuth {
	if tenant == "" {
		tenant = "common"
	}
	return &OAuth{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Endpoint:     microsoft.AzureADEndpoint(tenant),
			Scopes: []string{
				"https://graph.microsoft.com/Calendars.ReadWrite",
				"https://graph.microsoft.com/User.Read",
				"offline_access",
			},
		},
	}
}

// SetEndpoint overrides the provider endpoints. Used in tests.
func (o *OAuth) SetEndpoint(authURL, tokenURL string) {
	o.config.Endpoint = oauth2.Endpoint{AuthURL: authURL, TokenURL: tokenURL}
}

// AuthCodeURL returns the consent page URL.
func (o *OAuth) AuthCodeURL(state string) string {
	return o.config.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

// Exchange trades an authorization code for tokens.
func (o *OAuth) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	tok, err := o.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("microsoft code exchange: %w", err)
	}
	return tok, nil
}

// Refresh obtains a fresh access token for the stored refresh token.
// Microsoft rotates refresh tokens on use; the caller must persist the
// returned token's RefreshToken.
func (o *OAuth) Refresh(ctx context.Context, refreshToken string) (*oauth2.Token, error) {
	src := o.config.TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken})
	tok, err := src.Token()
	if err != nil {
		return nil, fmt.Errorf("microsoft token refresh: %w", err)
	}
	return tok, nil
}
