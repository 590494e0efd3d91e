// response/error_test.go
package response

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/quillsign/go-api-sdk-quillsign/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func errorResponse(t *testing.T, statusCode int, contentType, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "http://api.example.com/api/documents", nil)
	return &http.Response{
		StatusCode: statusCode,
		Header:     http.Header{"Content-Type": []string{contentType}},
		Body:       io.NopCloser(strings.NewReader(body)),
		Request:    req,
	}
}

func TestHandleAPIErrorResponsePlainText(t *testing.T) {
	resp := errorResponse(t, http.StatusForbidden, "text/plain", "insufficient scope")

	apiErr := HandleAPIErrorResponse(resp, logger.NewNopLogger())

	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
	assert.Equal(t, "insufficient scope", apiErr.Message)
	assert.Contains(t, apiErr.Error(), "insufficient scope")
	assert.Contains(t, apiErr.Error(), "403")
}

func TestHandleAPIErrorResponseJSONMessage(t *testing.T) {
	resp := errorResponse(t, http.StatusBadRequest, "application/json", `{"message":"template_id is missing"}`)

	apiErr := HandleAPIErrorResponse(resp, logger.NewNopLogger())

	assert.Equal(t, "template_id is missing", apiErr.Message)
	assert.Equal(t, `{"message":"template_id is missing"}`, apiErr.RawResponse)
}

func TestHandleAPIErrorResponseJSONErrorsList(t *testing.T) {
	resp := errorResponse(t, http.StatusUnprocessableEntity, "application/json", `{"errors":["name is required","recipients are required"]}`)

	apiErr := HandleAPIErrorResponse(resp, logger.NewNopLogger())

	assert.Equal(t, "name is required; recipients are required", apiErr.Message)
	assert.Len(t, apiErr.Details, 2)
}

func TestHandleAPIErrorResponseMalformedJSONFallsBackToRawBody(t *testing.T) {
	resp := errorResponse(t, http.StatusInternalServerError, "application/json", `not-json`)

	apiErr := HandleAPIErrorResponse(resp, logger.NewNopLogger())

	assert.Equal(t, "not-json", apiErr.Message)
}

func TestHandleAPIErrorResponseHTML(t *testing.T) {
	body := "<html><body><p>Service unavailable, try again later</p></body></html>"
	resp := errorResponse(t, http.StatusServiceUnavailable, "text/html", body)

	apiErr := HandleAPIErrorResponse(resp, logger.NewNopLogger())

	assert.Equal(t, "Service unavailable, try again later", apiErr.Message)
}

func TestHandleAPIErrorResponseXML(t *testing.T) {
	resp := errorResponse(t, http.StatusBadRequest, "application/xml", "<error><message>bad request</message></error>")

	apiErr := HandleAPIErrorResponse(resp, logger.NewNopLogger())

	assert.Contains(t, apiErr.Message, "bad request")
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, io.ErrUnexpectedEOF }
func (failingReader) Close() error             { return nil }

func TestHandleAPIErrorResponseUnreadableBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "http://api.example.com/api/credits", nil)
	resp := &http.Response{
		StatusCode: http.StatusBadGateway,
		Header:     http.Header{},
		Body:       failingReader{},
		Request:    req,
	}

	apiErr := HandleAPIErrorResponse(resp, logger.NewNopLogger())

	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Equal(t, "failed to read API error response body", apiErr.Message)
}

func TestHandleAPIErrorResponseEmptyBodyUsesStatusText(t *testing.T) {
	resp := errorResponse(t, http.StatusNotFound, "text/plain", "")

	apiErr := HandleAPIErrorResponse(resp, logger.NewNopLogger())

	assert.Equal(t, http.StatusText(http.StatusNotFound), apiErr.Message)
}
