// httpclient/downloadrequest.go
package httpclient

import (
	"net/http"
)

// DoDownloadRequest performs an authenticated GET returning the raw response
// for streaming. The 401 reauthentication cycle is disabled for downloads; an
// unauthorized response surfaces directly as an APIError. The caller owns the
// response body and must Close it, which also releases the request's
// cancellation timer.
func (c *Client) DoDownloadRequest(endpoint string, opts *RequestOptions) (*http.Response, error) {
	return c.execute(http.MethodGet, endpoint, opts, false)
}
