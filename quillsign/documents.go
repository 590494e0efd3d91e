// quillsign/documents.go
package quillsign

import (
	"fmt"
	"io"
	"net/url"
	"strconv"
	"time"
)

const (
	uriDocuments        = "api/documents"
	uriDocument         = "api/document"
	uriDocumentByID     = "api/document/%s"
	uriDocumentDownload = "api/document/%s/download"

	// DefaultDocumentsLimit is applied when the caller passes a non-positive limit.
	DefaultDocumentsLimit = 20
)

// GetDocuments retrieves a page of documents. A non-positive limit falls back
// to DefaultDocumentsLimit and a negative offset to 0; both are passed through
// as query parameters otherwise.
func (c *Client) GetDocuments(limit, offset int) (*DocumentList, error) {
	if limit <= 0 {
		limit = DefaultDocumentsLimit
	}
	if offset < 0 {
		offset = 0
	}

	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	query.Set("offset", strconv.Itoa(offset))
	endpoint := uriDocuments + "?" + query.Encode()

	var out DocumentList
	if _, err := c.HTTP.Get(endpoint, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetDocumentByID retrieves a single document. The identifier is
// percent-encoded before it is interpolated into the path.
func (c *Client) GetDocumentByID(documentID string) (*Document, error) {
	endpoint := fmt.Sprintf(uriDocumentByID, url.PathEscape(documentID))

	var out Document
	if _, err := c.HTTP.Get(endpoint, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateDocument creates a document from a template. The expiration date is
// included in the request body only when one was supplied, serialized as
// ISO-8601.
func (c *Client) CreateDocument(request CreateDocumentRequest) (*Document, error) {
	payload := createDocumentPayload{
		Name:                request.Name,
		TemplateID:          request.TemplateID,
		Recipients:          request.Recipients,
		UserDefinedMetadata: request.UserDefinedMetadata,
	}
	if request.ExpirationDate != nil {
		payload.ExpirationDate = request.ExpirationDate.Format(time.RFC3339)
	}

	var out Document
	if _, err := c.HTTP.Post(uriDocument, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DownloadDocument streams the signed document as raw bytes. Retry on 401 is
// disabled for downloads; the caller must Close the returned stream.
func (c *Client) DownloadDocument(documentID string) (io.ReadCloser, error) {
	endpoint := fmt.Sprintf(uriDocumentDownload, url.PathEscape(documentID))

	resp, err := c.HTTP.DoDownloadRequest(endpoint, nil)
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}

// DeleteDocument removes a document, returning true on success.
func (c *Client) DeleteDocument(documentID string) (bool, error) {
	endpoint := fmt.Sprintf(uriDocumentByID, url.PathEscape(documentID))

	if _, err := c.HTTP.Delete(endpoint); err != nil {
		return false, err
	}
	return true, nil
}
