// httpclient/config_validation_test.go
package httpclient

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTestConfig() ClientConfig {
	return ClientConfig{
		BaseURL:      "https://api.quillsign.test",
		ClientID:     "id",
		ClientSecret: "secret",
		GrantType:    GrantTypeClientCredentials,
		Scopes:       []Scope{ScopeRead},
	}
}

// The validation rules run in a fixed order and the first failing rule
// determines the message, even when several fields are invalid at once.
func TestValidateClientConfigRuleOrder(t *testing.T) {
	testCases := []struct {
		name          string
		mutate        func(*ClientConfig)
		expectedField string
	}{
		{
			name: "MissingClientIDWinsOverEverything",
			mutate: func(c *ClientConfig) {
				c.ClientID = ""
				c.ClientSecret = ""
				c.GrantType = ""
				c.Scopes = nil
			},
			expectedField: "clientId",
		},
		{
			name: "MissingClientSecretBeforeGrantType",
			mutate: func(c *ClientConfig) {
				c.ClientSecret = ""
				c.GrantType = ""
				c.Scopes = nil
			},
			expectedField: "clientSecret",
		},
		{
			name: "MissingGrantTypeBeforeScopes",
			mutate: func(c *ClientConfig) {
				c.GrantType = ""
				c.Scopes = nil
			},
			expectedField: "grantType",
		},
		{
			name: "UnsupportedGrantType",
			mutate: func(c *ClientConfig) {
				c.GrantType = "implicit"
				c.Scopes = nil
			},
			expectedField: "grantType",
		},
		{
			name: "EmptyScopes",
			mutate: func(c *ClientConfig) {
				c.Scopes = nil
			},
			expectedField: "scopes",
		},
		{
			name: "UnknownScope",
			mutate: func(c *ClientConfig) {
				c.Scopes = []Scope{ScopeRead, "WRITE"}
			},
			expectedField: "scopes",
		},
		{
			name: "AuthorizationCodeRequiresUsername",
			mutate: func(c *ClientConfig) {
				c.GrantType = GrantTypeAuthorizationCode
				c.Password = "pw"
			},
			expectedField: "username",
		},
		{
			name: "AuthorizationCodeRequiresPassword",
			mutate: func(c *ClientConfig) {
				c.GrantType = GrantTypeAuthorizationCode
				c.Username = "user"
			},
			expectedField: "password",
		},
		{
			name: "MissingBaseURL",
			mutate: func(c *ClientConfig) {
				c.BaseURL = ""
			},
			expectedField: "baseURL",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			config := validTestConfig()
			tc.mutate(&config)

			err := validateClientConfig(config)
			require.Error(t, err)

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tc.expectedField, validationErr.Field)
		})
	}
}

func TestValidateClientConfigAcceptsValidConfigs(t *testing.T) {
	assert.NoError(t, validateClientConfig(validTestConfig()))

	authCode := validTestConfig()
	authCode.GrantType = GrantTypeAuthorizationCode
	authCode.Username = "user"
	authCode.Password = "pw"
	authCode.Scopes = []Scope{ScopeAll, ScopeSandbox}
	assert.NoError(t, validateClientConfig(authCode))
}

func TestBuildClientRejectsInvalidConfig(t *testing.T) {
	config := validTestConfig()
	config.ClientID = ""

	client, err := BuildClient(config, true)

	assert.Nil(t, client, "no partially-valid client may exist")
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "clientId", validationErr.Field)
}

func TestNormalizeBaseURL(t *testing.T) {
	assert.Equal(t, "https://api.example.com/", normalizeBaseURL("https://api.example.com"))
	assert.Equal(t, "https://api.example.com/", normalizeBaseURL("https://api.example.com/"))
	assert.Equal(t, "https://api.example.com/", normalizeBaseURL("https://api.example.com///"))
}

func TestJoinScopesPreservesOrder(t *testing.T) {
	scopes := []Scope{ScopeSandbox, ScopeRead, ScopeCreateDocument}
	assert.Equal(t, "SANDBOX READ CREATE_DOCUMENT", JoinScopes(scopes))
}
