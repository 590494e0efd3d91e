// httpclient/config_validation.go
package httpclient

import (
	"fmt"
	"strings"
)

// ValidationError reports an invalid client configuration. It is raised
// synchronously at construction, before any network call, and carries no
// HTTP status code.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid client configuration: %s: %s", e.Field, e.Message)
}

// validateClientConfig enforces the grant configuration rules. The rules run
// in a fixed order and the first failure wins; callers depend on which message
// surfaces for multiply-invalid input, so do not reorder them.
func validateClientConfig(config ClientConfig) error {

	if config.ClientID == "" {
		return &ValidationError{Field: "clientId", Message: "client id is required"}
	}

	if config.ClientSecret == "" {
		return &ValidationError{Field: "clientSecret", Message: "client secret is required"}
	}

	if config.GrantType == "" {
		return &ValidationError{Field: "grantType", Message: "grant type is required"}
	}
	if config.GrantType != GrantTypeClientCredentials && config.GrantType != GrantTypeAuthorizationCode {
		return &ValidationError{
			Field:   "grantType",
			Message: fmt.Sprintf("unsupported grant type %q, must be %q or %q", config.GrantType, GrantTypeClientCredentials, GrantTypeAuthorizationCode),
		}
	}

	if len(config.Scopes) == 0 {
		return &ValidationError{Field: "scopes", Message: "at least one scope is required"}
	}
	for _, scope := range config.Scopes {
		if !validScopes[scope] {
			return &ValidationError{Field: "scopes", Message: fmt.Sprintf("unknown scope %q", scope)}
		}
	}

	if config.GrantType == GrantTypeAuthorizationCode {
		if config.Username == "" {
			return &ValidationError{Field: "username", Message: "username is required for the authorization_code grant"}
		}
		if config.Password == "" {
			return &ValidationError{Field: "password", Message: "password is required for the authorization_code grant"}
		}
	}

	if config.BaseURL == "" {
		return &ValidationError{Field: "baseURL", Message: "base URL is required"}
	}

	return nil
}

// normalizeBaseURL guarantees the base URL ends with exactly one trailing slash
// so that endpoint concatenation is unambiguous.
func normalizeBaseURL(baseURL string) string {
	return strings.TrimRight(baseURL, "/") + "/"
}
