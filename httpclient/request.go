// httpclient/request.go
package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/quillsign/go-api-sdk-quillsign/headers"
	"github.com/quillsign/go-api-sdk-quillsign/response"
	"github.com/quillsign/go-api-sdk-quillsign/status"
	"go.uber.org/zap"
)

// ErrNotConnected is returned when an authenticated request is attempted before
// a successful token exchange. The guard fails before any network call is made.
var ErrNotConnected = errors.New("client is not connected: no access token held, call Connect first")

// RequestOptions carries the per-call parameters of an authenticated request.
type RequestOptions struct {
	// Headers are merged onto the request after the defaults. The Authorization
	// header is always the pipeline's bearer token and cannot be overridden.
	Headers map[string]string

	// Body is the request payload: []byte and io.Reader are sent as-is, any
	// other non-nil value is marshaled to JSON.
	Body any

	// Timeout bounds the in-flight request via context cancellation.
	// Zero means the client's CustomTimeout (15s by default).
	Timeout time.Duration
}

// maxDispatchAttempts caps the pipeline at one original dispatch plus one
// redispatch after reauthentication. The attempt counter, not recursion,
// enforces the at-most-one-retry invariant.
const maxDispatchAttempts = 2

// DoRequest executes an authenticated request and decodes the successful
// response body into out. The response body is fully consumed and closed.
func (c *Client) DoRequest(method, endpoint string, opts *RequestOptions, out any) (*http.Response, error) {
	resp, err := c.Do(method, endpoint, opts)
	if err != nil {
		return resp, err
	}
	defer resp.Body.Close()

	return resp, response.HandleAPISuccessResponse(resp, out, c.Logger)
}

// Do executes an authenticated request and returns the raw successful
// response. On a 401 the client transparently reauthenticates once (a full
// token exchange, not a refresh) and redispatches the identical request; a
// second 401 is terminal. Closing the returned Body releases the attempt's
// cancellation timer, so callers must always Close it.
func (c *Client) Do(method, endpoint string, opts *RequestOptions) (*http.Response, error) {
	return c.execute(method, endpoint, opts, true)
}

// execute runs the request pipeline. allowRetry=false disables the
// reauthentication cycle entirely (used for downloads).
func (c *Client) execute(method, endpoint string, opts *RequestOptions, allowRetry bool) (*http.Response, error) {
	if !c.IsConnected() {
		return nil, ErrNotConnected
	}

	if opts == nil {
		opts = &RequestOptions{}
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = c.config.CustomTimeout
	}
	if timeout <= 0 {
		// A config built without defaults can carry a zero CustomTimeout;
		// context.WithTimeout(ctx, 0) would expire every request immediately.
		timeout = DefaultCustomTimeout
	}

	url := c.ConstructAPIResourceEndpoint(endpoint)

	// The payload is materialized once so a redispatch resends identical bytes.
	bodyBytes, bodyIsJSON, err := marshalRequestBody(opts.Body)
	if err != nil {
		return nil, err
	}

	attempts := 1
	if allowRetry {
		attempts = maxDispatchAttempts
	}

	for attempt := 1; attempt <= attempts; attempt++ {
		resp, err := c.dispatch(method, url, bodyBytes, bodyIsJSON, opts.Headers, timeout)
		if err != nil {
			// Transport and timeout failures propagate unwrapped and are never retried.
			return nil, err
		}

		if status.IsUnauthorized(resp.StatusCode) && attempt < attempts {
			resp.Body.Close()
			c.Logger.Info("Received 401, reauthenticating and redispatching once",
				zap.String("method", method),
				zap.String("endpoint", endpoint),
			)
			// Full reauthentication; any failure here propagates as-is.
			if err := c.Connect(); err != nil {
				return nil, err
			}
			continue
		}

		if !status.IsSuccessStatusCode(resp.StatusCode) {
			apiErr := response.HandleAPIErrorResponse(resp, c.Logger)
			resp.Body.Close()
			return resp, apiErr
		}

		return resp, nil
	}

	return nil, fmt.Errorf("request pipeline exhausted dispatch attempts for %s %s", method, endpoint)
}

// dispatch performs a single HTTP round trip with its own cancellation timer.
// The timer is released on every exit path: immediately on failure, and on
// Body.Close for the returned response.
func (c *Client) dispatch(method, url string, bodyBytes []byte, bodyIsJSON bool, customHeaders map[string]string, timeout time.Duration) (*http.Response, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)

	var bodyReader io.Reader
	if bodyBytes != nil {
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		cancel()
		return nil, err
	}

	requestID := uuid.New().String()

	headerHandler := headers.NewHeaderHandler(req, c.Logger, c.accessToken)
	if bodyIsJSON {
		headerHandler.SetContentType("application/json")
	}
	headerHandler.SetRequestID(requestID)
	headerHandler.SetRequestHeaders(customHeaders)
	headerHandler.LogHeaders(c.config.HideSensitiveData)

	c.Logger.Debug("Dispatching request",
		zap.String("request_id", requestID),
		zap.String("method", method),
		zap.String("url", url),
	)

	startTime := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		cancel()
		c.Logger.Warn("Failed to send request",
			zap.String("request_id", requestID),
			zap.String("method", method),
			zap.String("url", url),
			zap.Error(err),
		)
		return nil, err
	}

	c.Logger.Debug("Request sent successfully",
		zap.String("request_id", requestID),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status_code", resp.StatusCode),
		zap.Duration("duration", time.Since(startTime)),
	)

	resp.Body = &cancelReadCloser{ReadCloser: resp.Body, cancel: cancel}
	return resp, nil
}

// marshalRequestBody materializes the request payload. The second return value
// reports whether a JSON Content-Type should be set.
func marshalRequestBody(body any) ([]byte, bool, error) {
	switch b := body.(type) {
	case nil:
		return nil, false, nil
	case []byte:
		return b, false, nil
	case io.Reader:
		data, err := io.ReadAll(b)
		return data, false, err
	default:
		data, err := json.Marshal(b)
		if err != nil {
			return nil, false, err
		}
		return data, true, nil
	}
}

// cancelReadCloser ties a dispatch attempt's context cancellation to the life
// of its response body, so the timer cannot leak while the caller streams.
type cancelReadCloser struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (c *cancelReadCloser) Close() error {
	err := c.ReadCloser.Close()
	c.cancel()
	return err
}
