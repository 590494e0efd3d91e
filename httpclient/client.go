// httpclient/client.go
/* The httpclient package provides an authenticated HTTP client for the QuillSign
document-signing API. It owns the OAuth2-style credential lifecycle: grant
configuration validation at construction, token acquisition against the fixed
token endpoint, and transparent one-shot reauthentication when a request comes
back 401. Resource packages dispatch through the Client's request pipeline. */
package httpclient

import (
	"net/http"

	"github.com/quillsign/go-api-sdk-quillsign/logger"
	"go.uber.org/zap"
)

// Client is an authenticated QuillSign API client.
type Client struct {
	// Private
	config ClientConfig
	http   *http.Client

	// accessToken is the session state: empty until the first successful token
	// exchange, and only ever overwritten by a later successful exchange.
	// Deliberately unsynchronized: concurrent requests racing a token expiry may
	// each observe 401 and each reauthenticate; the last successful exchange wins.
	accessToken string

	// Exported
	Logger logger.Logger
}

// BuildClient creates a new QuillSign HTTP client with the provided configuration.
// The grant configuration is validated up front; an invalid combination returns
// a *ValidationError and no client.
func BuildClient(config ClientConfig, populateDefaultValues bool) (*Client, error) {

	if populateDefaultValues {
		SetDefaultValuesClientConfig(&config)
	}

	if err := validateClientConfig(config); err != nil {
		return nil, err
	}

	config.BaseURL = normalizeBaseURL(config.BaseURL)

	parsedLogLevel := logger.ParseLogLevelFromString(config.LogLevel)
	log := logger.BuildLogger(parsedLogLevel, config.LogOutputFormat, config.LogConsoleSeparator)
	log.SetLevel(parsedLogLevel)

	client := &Client{
		config: config,
		http:   &http.Client{},
		Logger: log,
	}

	log.Debug("New QuillSign API client initialized",
		zap.String("base_url", config.BaseURL),
		zap.String("grant_type", string(config.GrantType)),
		zap.String("scope", JoinScopes(config.Scopes)),
		zap.String("log_level", config.LogLevel),
		zap.Bool("hide_sensitive_data", config.HideSensitiveData),
		zap.Duration("custom_timeout", config.CustomTimeout),
	)

	return client, nil
}

// IsConnected reports whether the client holds an access token from a
// successful token exchange.
func (c *Client) IsConnected() bool {
	return c.accessToken != ""
}

// BaseURL returns the normalized base URL all requests are issued against.
func (c *Client) BaseURL() string {
	return c.config.BaseURL
}
