// quillsign/credits.go
package quillsign

const uriCredits = "api/credits"

// GetCredits retrieves the account's remaining credit balances.
func (c *Client) GetCredits() (*Credits, error) {
	var out Credits
	if _, err := c.HTTP.Get(uriCredits, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
