// quillsign/quillsign_test.go
package quillsign

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/quillsign/go-api-sdk-quillsign/httpclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixture hosts a mock QuillSign API: a token endpoint plus whatever resource
// handlers a test registers on the mux.
type fixture struct {
	mux            *http.ServeMux
	server         *httptest.Server
	tokenExchanges int
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{mux: http.NewServeMux()}
	f.mux.HandleFunc("/oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		f.tokenExchanges++
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"abc123"}`))
	})
	f.server = httptest.NewServer(f.mux)
	t.Cleanup(f.server.Close)
	return f
}

func (f *fixture) newClient(t *testing.T) *Client {
	t.Helper()
	client, err := NewClient(httpclient.ClientConfig{
		BaseURL:      f.server.URL,
		ClientID:     "id",
		ClientSecret: "secret",
		GrantType:    httpclient.GrantTypeClientCredentials,
		Scopes:       []httpclient.Scope{httpclient.ScopeRead},
		LogLevel:     "LogLevelNone",
	})
	require.NoError(t, err)
	return client
}

func (f *fixture) connectedClient(t *testing.T) *Client {
	t.Helper()
	client := f.newClient(t)
	require.NoError(t, client.Connect())
	return client
}

func TestConnectSetsIsConnected(t *testing.T) {
	f := newFixture(t)
	client := f.newClient(t)

	require.False(t, client.IsConnected())
	require.NoError(t, client.Connect())

	assert.True(t, client.IsConnected())
	assert.Equal(t, 1, f.tokenExchanges)
}

func TestOperationsBeforeConnectFail(t *testing.T) {
	f := newFixture(t)
	var resourceHits int
	f.mux.HandleFunc("/api/templates", func(w http.ResponseWriter, r *http.Request) {
		resourceHits++
	})
	client := f.newClient(t)

	_, err := client.GetTemplates()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not connected")
	assert.Zero(t, resourceHits, "no network call before connect")
}

func TestNewClientRejectsInvalidGrantConfig(t *testing.T) {
	client, err := NewClient(httpclient.ClientConfig{
		BaseURL:      "https://api.quillsign.test",
		ClientID:     "id",
		ClientSecret: "secret",
		GrantType:    httpclient.GrantTypeAuthorizationCode,
		Scopes:       []httpclient.Scope{httpclient.ScopeRead},
		// username/password missing for authorization_code
	})

	assert.Nil(t, client)
	var validationErr *httpclient.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "username", validationErr.Field)
}

func TestNewClientFromEnv(t *testing.T) {
	t.Setenv("QUILLSIGN_BASE_URL", "https://api.quillsign.test")
	t.Setenv("QUILLSIGN_CLIENT_ID", "env-id")
	t.Setenv("QUILLSIGN_CLIENT_SECRET", "env-secret")
	t.Setenv("QUILLSIGN_SCOPES", "READ")

	client, err := NewClientFromEnv()

	require.NoError(t, err)
	assert.False(t, client.IsConnected())
	assert.Equal(t, "https://api.quillsign.test/", client.HTTP.BaseURL())
}

// First dispatch 401, reauthentication, second dispatch succeeds; two
// authenticated dispatches and two token exchanges in total.
func TestGetTemplatesReauthenticatesOn401(t *testing.T) {
	f := newFixture(t)
	var resourceHits int
	f.mux.HandleFunc("/api/templates", func(w http.ResponseWriter, r *http.Request) {
		resourceHits++
		if resourceHits == 1 {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"templates":[]}`))
	})
	client := f.connectedClient(t)

	templates, err := client.GetTemplates()

	require.NoError(t, err)
	assert.NotNil(t, templates)
	assert.Empty(t, templates.Templates)
	assert.Equal(t, 2, resourceHits)
	assert.Equal(t, 2, f.tokenExchanges)
}
