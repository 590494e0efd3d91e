// headers/redact/redact_test.go
package redact

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRedactSensitiveValue(t *testing.T) {
	testCases := []struct {
		name              string
		hideSensitiveData bool
		key               string
		value             string
		expected          string
	}{
		{"AuthorizationHidden", true, "Authorization", "Bearer abc123", "REDACTED"},
		{"AccessTokenHidden", true, "AccessToken", "abc123", "REDACTED"},
		{"ClientSecretHidden", true, "ClientSecret", "s3cret", "REDACTED"},
		{"PasswordHidden", true, "Password", "hunter2", "REDACTED"},
		{"NonSensitiveKey", true, "Accept", "application/json", "application/json"},
		{"RedactionDisabled", false, "Authorization", "Bearer abc123", "Bearer abc123"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, RedactSensitiveValue(tc.hideSensitiveData, tc.key, tc.value))
		})
	}
}
