// httpclient/urls.go
package httpclient

import "strings"

// ConstructAPIResourceEndpoint builds the target URL by concatenating the
// normalized base URL (exactly one trailing slash) with the endpoint stripped
// of any leading slash.
func (c *Client) ConstructAPIResourceEndpoint(endpoint string) string {
	return c.config.BaseURL + strings.TrimLeft(endpoint, "/")
}
