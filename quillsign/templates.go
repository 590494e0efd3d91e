// quillsign/templates.go
package quillsign

import (
	"fmt"
	"net/url"
)

const (
	uriTemplates = "api/templates"
	uriTemplate  = "api/template/%s"
)

// GetTemplates retrieves all templates available to the account.
func (c *Client) GetTemplates() (*TemplateList, error) {
	var out TemplateList
	if _, err := c.HTTP.Get(uriTemplates, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetTemplateByID retrieves a single template. The identifier is
// percent-encoded before it is interpolated into the path.
func (c *Client) GetTemplateByID(templateID string) (*Template, error) {
	endpoint := fmt.Sprintf(uriTemplate, url.PathEscape(templateID))

	var out Template
	if _, err := c.HTTP.Get(endpoint, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
