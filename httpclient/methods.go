// httpclient/methods.go
package httpclient

import "net/http"

// Get performs an authenticated GET and decodes the JSON response into out.
func (c *Client) Get(endpoint string, out any) (*http.Response, error) {
	return c.DoRequest(http.MethodGet, endpoint, nil, out)
}

// Post performs an authenticated POST with a JSON body and decodes the response into out.
func (c *Client) Post(endpoint string, body, out any) (*http.Response, error) {
	return c.DoRequest(http.MethodPost, endpoint, &RequestOptions{Body: body}, out)
}

// Delete performs an authenticated DELETE, discarding any response body.
func (c *Client) Delete(endpoint string) (*http.Response, error) {
	return c.DoRequest(http.MethodDelete, endpoint, nil, nil)
}
