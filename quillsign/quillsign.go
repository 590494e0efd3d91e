// quillsign/quillsign.go
/* The quillsign package is the resource layer of the QuillSign SDK. It wraps
the authenticated httpclient pipeline with typed operations for templates,
documents and credits. All operations require a prior Connect; the pipeline
enforces the guard and the one-shot reauthentication on 401. */
package quillsign

import (
	"github.com/quillsign/go-api-sdk-quillsign/httpclient"
)

// Client is a QuillSign API client.
type Client struct {
	HTTP *httpclient.Client
}

// NewClient validates the grant configuration and builds a client.
// Invalid configurations are rejected here; no partially-valid client exists.
func NewClient(config httpclient.ClientConfig) (*Client, error) {
	httpClient, err := httpclient.BuildClient(config, true)
	if err != nil {
		return nil, err
	}
	return &Client{HTTP: httpClient}, nil
}

// NewClientFromEnv builds a client from QUILLSIGN_* environment variables.
func NewClientFromEnv() (*Client, error) {
	config, err := httpclient.LoadConfigFromEnv()
	if err != nil {
		return nil, err
	}
	return NewClient(*config)
}

// Connect performs the OAuth2-style token exchange and stores the access token.
func (c *Client) Connect() error {
	return c.HTTP.Connect()
}

// IsConnected reports whether the client holds an access token.
func (c *Client) IsConnected() bool {
	return c.HTTP.IsConnected()
}
