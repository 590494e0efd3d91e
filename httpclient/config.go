// httpclient/config.go
package httpclient

import (
	"strings"
	"time"
)

// GrantType is the OAuth2-style authentication mode used for the token exchange.
type GrantType string

const (
	// GrantTypeClientCredentials is the machine-to-machine grant.
	GrantTypeClientCredentials GrantType = "client_credentials"
	// GrantTypeAuthorizationCode is the user-credential grant; it additionally
	// requires Username and Password on the client configuration.
	GrantTypeAuthorizationCode GrantType = "authorization_code"
)

// Scope is a named permission bucket the issued token is restricted to.
type Scope string

const (
	ScopeAll            Scope = "ALL"
	ScopeRead           Scope = "READ"
	ScopeCreateDocument Scope = "CREATE_DOCUMENT"
	ScopeDelete         Scope = "DELETE"
	ScopeSandbox        Scope = "SANDBOX"
)

// validScopes is the closed set of scopes the API accepts.
var validScopes = map[Scope]bool{
	ScopeAll:            true,
	ScopeRead:           true,
	ScopeCreateDocument: true,
	ScopeDelete:         true,
	ScopeSandbox:        true,
}

const (
	DefaultLogLevelString        = "LogLevelInfo"
	DefaultLogOutputFormatString = "json"
	DefaultLogConsoleSeparator   = "	"
	DefaultHideSensitiveData     = true
	DefaultCustomTimeout         = 15 * time.Second

	// TokenEndpoint is the fixed token-exchange path relative to the base URL.
	TokenEndpoint = "oauth2/token"
)

// ClientConfig holds the grant configuration and client options. It is read at
// BuildClient time, validated, and never mutated afterwards: an invalid
// combination means no client is constructed at all.
type ClientConfig struct {
	// Grant configuration
	BaseURL      string
	ClientID     string
	ClientSecret string
	GrantType    GrantType
	Scopes       []Scope // order-preserving; serialized space-joined on the wire
	Username     string  // required iff GrantType is authorization_code
	Password     string  // required iff GrantType is authorization_code

	// Log
	LogLevel            string
	LogOutputFormat     string // "json" or "console"
	LogConsoleSeparator string
	HideSensitiveData   bool

	// Misc
	CustomTimeout time.Duration
}

// SetDefaultValuesClientConfig populates unset optional fields with defaults.
// Grant configuration fields are never defaulted; they must be supplied.
func SetDefaultValuesClientConfig(config *ClientConfig) {

	if config.LogLevel == "" {
		config.LogLevel = DefaultLogLevelString
	}

	if config.LogOutputFormat == "" {
		config.LogOutputFormat = DefaultLogOutputFormatString
	}

	if config.LogConsoleSeparator == "" {
		config.LogConsoleSeparator = DefaultLogConsoleSeparator
	}

	if config.CustomTimeout == 0 {
		config.CustomTimeout = DefaultCustomTimeout
	}
}

// JoinScopes serializes the scope set for the token request body, preserving order.
func JoinScopes(scopes []Scope) string {
	parts := make([]string, 0, len(scopes))
	for _, s := range scopes {
		parts = append(parts, string(s))
	}
	return strings.Join(parts, " ")
}
