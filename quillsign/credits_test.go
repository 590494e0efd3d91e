// quillsign/credits_test.go
package quillsign

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCredits(t *testing.T) {
	f := newFixture(t)
	f.mux.HandleFunc("/api/credits", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"document_credits":120,"api_credits":4000}`))
	})
	client := f.connectedClient(t)

	credits, err := client.GetCredits()

	require.NoError(t, err)
	assert.Equal(t, 120, credits.DocumentCredits)
	assert.Equal(t, 4000, credits.APICredits)
}
