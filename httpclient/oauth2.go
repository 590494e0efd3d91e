// httpclient/oauth2.go

/* Handles the OAuth2-style token exchange against the QuillSign token endpoint.
The exchange is a full grant: it repeats the whole credential flow and replaces
the stored access token. Callers decide whether to retry; this file never does. */

package httpclient

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/quillsign/go-api-sdk-quillsign/headers/redact"
	"github.com/quillsign/go-api-sdk-quillsign/response"
	"github.com/quillsign/go-api-sdk-quillsign/status"
	"github.com/quillsign/go-api-sdk-quillsign/version"
	"go.uber.org/zap"
)

// OAuthResponse represents the response structure when obtaining an access token.
type OAuthResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type,omitempty"`
	ExpiresIn   int64  `json:"expires_in,omitempty"`
	Scope       string `json:"scope,omitempty"`
}

// Connect performs the token exchange and stores the resulting access token on
// the client. POSTs to {baseURL}oauth2/token with HTTP Basic client
// authentication and a form-encoded grant body. A fixed timeout is applied via
// context cancellation; a timed-out call surfaces as the transport error.
// Non-success responses are translated into a *response.APIError carrying the
// body text and status code.
func (c *Client) Connect() error {
	ctx, cancel := context.WithTimeout(context.Background(), DefaultCustomTimeout)
	defer cancel()
	return c.obtainOAuth2Token(ctx)
}

func (c *Client) obtainOAuth2Token(ctx context.Context) error {
	endpoint := c.config.BaseURL + TokenEndpoint

	data := url.Values{}
	data.Set("grant_type", string(c.config.GrantType))
	data.Set("scope", JoinScopes(c.config.Scopes))
	if c.config.GrantType == GrantTypeAuthorizationCode {
		data.Set("username", c.config.Username)
		data.Set("password", c.config.Password)
	}

	c.Logger.Debug("Attempting to obtain OAuth token",
		zap.String("endpoint", endpoint),
		zap.String("grant_type", string(c.config.GrantType)),
		zap.String("scope", JoinScopes(c.config.Scopes)),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(data.Encode()))
	if err != nil {
		return err
	}
	req.SetBasicAuth(c.config.ClientID, c.config.ClientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", version.UserAgent())

	resp, err := c.http.Do(req)
	if err != nil {
		c.Logger.Warn("Failed to execute request for OAuth token", zap.Error(err))
		return err
	}
	defer resp.Body.Close()

	if !status.IsSuccessStatusCode(resp.StatusCode) {
		return response.HandleAPIErrorResponse(resp, c.Logger)
	}

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		c.Logger.Warn("Failed to read OAuth token response body", zap.Error(err))
		return err
	}

	var oauthResp OAuthResponse
	if err := json.Unmarshal(bodyBytes, &oauthResp); err != nil {
		return errors.New("failed to decode OAuth token response")
	}

	if oauthResp.AccessToken == "" {
		return errors.New("empty access token received")
	}

	redactedAccessToken := redact.RedactSensitiveValue(c.config.HideSensitiveData, "AccessToken", oauthResp.AccessToken)
	c.Logger.Info("OAuth token obtained successfully", zap.String("access_token", redactedAccessToken))

	c.accessToken = oauthResp.AccessToken

	return nil
}
