// response/error.go
// This package provides utility functions and structures for handling and categorizing HTTP responses.
package response

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/quillsign/go-api-sdk-quillsign/logger"
	"go.uber.org/zap"
	"golang.org/x/net/html"
)

// APIError represents a non-success response from the API. StatusCode is always
// present; Message carries the response body text (or an extracted summary for
// structured bodies), with RawResponse retaining the unparsed body for debugging.
type APIError struct {
	StatusCode  int      `json:"status_code"`
	Method      string   `json:"method"`
	URL         string   `json:"url"`
	Message     string   `json:"message"`
	Details     []string `json:"details,omitempty"`
	RawResponse string   `json:"raw_response,omitempty"`
}

// Error returns a string representation of the APIError, making it compatible with the error interface.
func (e *APIError) Error() string {
	if e.Message == "" {
		e.Message = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("API error: status %d: %s", e.StatusCode, e.Message)
}

// HandleAPIErrorResponse translates an HTTP error response into an APIError and logs it.
// The message is taken from the response body: structured bodies (JSON, XML, HTML)
// have a summary extracted, anything else surfaces verbatim. A body that cannot be
// read yields a generic message.
func HandleAPIErrorResponse(resp *http.Response, log logger.Logger) *APIError {
	apiError := &APIError{
		StatusCode: resp.StatusCode,
	}
	if resp.Request != nil {
		apiError.Method = resp.Request.Method
		apiError.URL = resp.Request.URL.String()
	}

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		apiError.Message = "failed to read API error response body"
		apiError.RawResponse = apiError.Message
		return apiError
	}

	mimeType, _ := parseHeader(resp.Header.Get("Content-Type"))
	switch mimeType {
	case "application/json":
		parseJSONResponse(bodyBytes, apiError)
	case "application/xml", "text/xml":
		parseXMLResponse(bodyBytes, apiError)
	case "text/html":
		parseHTMLResponse(bodyBytes, apiError)
	default:
		parseTextResponse(bodyBytes, apiError)
	}

	if apiError.Message == "" {
		apiError.Message = http.StatusText(apiError.StatusCode)
	}

	log.Warn("API error response",
		zap.String("method", apiError.Method),
		zap.String("url", apiError.URL),
		zap.Int("status_code", apiError.StatusCode),
		zap.String("message", apiError.Message),
	)

	return apiError
}

// jsonErrorBody covers the error envelopes the API is known to emit.
type jsonErrorBody struct {
	Message string   `json:"message"`
	Error   string   `json:"error"`
	Errors  []string `json:"errors"`
}

// parseJSONResponse attempts to parse the JSON error response and update the APIError structure.
func parseJSONResponse(bodyBytes []byte, apiError *APIError) {
	apiError.RawResponse = string(bodyBytes)

	var body jsonErrorBody
	if err := json.Unmarshal(bodyBytes, &body); err != nil {
		apiError.Message = apiError.RawResponse
		return
	}

	switch {
	case body.Message != "":
		apiError.Message = body.Message
	case body.Error != "":
		apiError.Message = body.Error
	case len(body.Errors) > 0:
		apiError.Message = strings.Join(body.Errors, "; ")
		apiError.Details = body.Errors
	default:
		apiError.Message = apiError.RawResponse
	}
}

// parseXMLResponse dynamically parses XML error responses and accumulates potential error messages.
func parseXMLResponse(bodyBytes []byte, apiError *APIError) {
	apiError.RawResponse = string(bodyBytes)

	doc, err := xmlquery.Parse(bytes.NewReader(bodyBytes))
	if err != nil {
		apiError.Message = apiError.RawResponse
		return
	}

	var messages []string
	var traverse func(*xmlquery.Node)
	traverse = func(n *xmlquery.Node) {
		if n.Type == xmlquery.TextNode && strings.TrimSpace(n.Data) != "" {
			messages = append(messages, strings.TrimSpace(n.Data))
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			traverse(c)
		}
	}

	traverse(doc)

	if len(messages) > 0 {
		apiError.Message = strings.Join(messages, "; ")
	} else {
		apiError.Message = apiError.RawResponse
	}
}

// parseTextResponse updates the APIError structure based on a plain text error response.
func parseTextResponse(bodyBytes []byte, apiError *APIError) {
	bodyText := string(bodyBytes)
	apiError.RawResponse = bodyText
	apiError.Message = bodyText
}

// parseHTMLResponse extracts meaningful information from an HTML error response,
// concatenating the text found within <p> tags.
func parseHTMLResponse(bodyBytes []byte, apiError *APIError) {
	apiError.RawResponse = string(bodyBytes)

	doc, err := html.Parse(bytes.NewReader(bodyBytes))
	if err != nil {
		apiError.Message = apiError.RawResponse
		return
	}

	var messages []string
	var parse func(*html.Node)
	parse = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "p" {
			var pContent strings.Builder
			var traverseChildren func(*html.Node)
			traverseChildren = func(c *html.Node) {
				if c.Type == html.TextNode {
					pContent.WriteString(strings.TrimSpace(c.Data) + " ")
				}
				for child := c.FirstChild; child != nil; child = child.NextSibling {
					traverseChildren(child)
				}
			}
			for child := n.FirstChild; child != nil; child = child.NextSibling {
				traverseChildren(child)
			}
			finalContent := strings.TrimSpace(pContent.String())
			if finalContent != "" {
				messages = append(messages, finalContent)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			parse(c)
		}
	}

	parse(doc)

	if len(messages) > 0 {
		apiError.Message = strings.Join(messages, "; ")
	} else {
		apiError.Message = apiError.RawResponse
	}
}
