// headers/headers.go
package headers

import (
	"net/http"

	"github.com/quillsign/go-api-sdk-quillsign/headers/redact"
	"github.com/quillsign/go-api-sdk-quillsign/logger"
	"github.com/quillsign/go-api-sdk-quillsign/version"
	"go.uber.org/zap"
)

// HeaderHandler applies the SDK's request headers to an outgoing http.Request.
// Caller-supplied headers are merged first; the Authorization bearer header is
// always set by the handler afterwards, so a caller cannot override the
// pipeline's credential through the merge.
type HeaderHandler struct {
	req   *http.Request
	log   logger.Logger
	token string
}

// NewHeaderHandler creates a new instance of HeaderHandler for the given request.
func NewHeaderHandler(req *http.Request, log logger.Logger, token string) *HeaderHandler {
	return &HeaderHandler{req: req, log: log, token: token}
}

// SetAuthorization sets the Authorization header to the bearer token held by the handler.
func (h *HeaderHandler) SetAuthorization() {
	h.req.Header.Set("Authorization", "Bearer "+h.token)
}

// SetContentType sets the Content-Type header for the request.
func (h *HeaderHandler) SetContentType(contentType string) {
	h.req.Header.Set("Content-Type", contentType)
}

// SetAccept sets the Accept header for the request.
func (h *HeaderHandler) SetAccept(accept string) {
	h.req.Header.Set("Accept", accept)
}

// SetUserAgent sets the User-Agent header to the SDK's name and version.
func (h *HeaderHandler) SetUserAgent() {
	h.req.Header.Set("User-Agent", version.UserAgent())
}

// SetRequestID sets the X-Request-ID correlation header.
func (h *HeaderHandler) SetRequestID(requestID string) {
	h.req.Header.Set("X-Request-ID", requestID)
}

// MergeCustomHeaders applies caller-supplied headers onto the request.
// The Authorization key is skipped: the bearer credential belongs to the pipeline.
func (h *HeaderHandler) MergeCustomHeaders(custom map[string]string) {
	for key, value := range custom {
		if http.CanonicalHeaderKey(key) == "Authorization" {
			h.log.Warn("Ignoring caller-supplied Authorization header", zap.String("key", key))
			continue
		}
		h.req.Header.Set(key, value)
	}
}

// SetRequestHeaders applies the default header set followed by the caller's
// custom headers and, last, the Authorization bearer header.
func (h *HeaderHandler) SetRequestHeaders(custom map[string]string) {
	h.SetAccept("application/json")
	h.SetUserAgent()
	h.MergeCustomHeaders(custom)
	h.SetAuthorization()
}

// LogHeaders logs the request headers at debug level, redacting sensitive values
// when hideSensitiveData is set.
func (h *HeaderHandler) LogHeaders(hideSensitiveData bool) {
	if h.log.GetLogLevel() > logger.LogLevelDebug {
		return
	}
	fields := make([]zap.Field, 0, len(h.req.Header))
	for key, values := range h.req.Header {
		value := ""
		if len(values) > 0 {
			value = values[0]
		}
		fields = append(fields, zap.String(key, redact.RedactSensitiveValue(hideSensitiveData, key, value)))
	}
	h.log.Debug("HTTP request headers", fields...)
}
