// response/success.go
/* Responsible for handling successful API responses. It reads the response body,
logs the raw response details, and unmarshals the response based on the content type. */
package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/quillsign/go-api-sdk-quillsign/logger"
	"go.uber.org/zap"
)

// HandleAPISuccessResponse decodes a successful API response into out.
// JSON bodies are unmarshaled into out; binary bodies are written into a
// *[]byte or io.Writer; DELETE responses may legitimately carry no body.
// A nil out discards the body.
func HandleAPISuccessResponse(resp *http.Response, out any, log logger.Logger) error {
	if resp.Request != nil && resp.Request.Method == http.MethodDelete {
		return successfulDeleteRequest(resp, log)
	}

	if out == nil {
		_, err := io.Copy(io.Discard, resp.Body)
		return err
	}

	contentType := resp.Header.Get("Content-Type")
	contentDisposition := resp.Header.Get("Content-Disposition")

	if isBinaryData(contentType, contentDisposition) {
		return handleBinaryData(resp.Body, log, out, contentDisposition)
	}

	mimeType, _ := parseHeader(contentType)
	switch mimeType {
	case "application/json", "":
		return handlerUnmarshalJSON(resp.Body, out, log, contentType)
	default:
		err := fmt.Errorf("unexpected MIME type: %s", contentType)
		log.Warn("Unmarshal error", zap.String("content_type", contentType), zap.Error(err))
		return err
	}
}

// successfulDeleteRequest handles the special case for DELETE requests, where a successful response might not contain a body.
func successfulDeleteRequest(resp *http.Response, log logger.Logger) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		log.Debug("Successfully processed DELETE request",
			zap.Int("status_code", resp.StatusCode))
		return nil
	}
	return fmt.Errorf("DELETE request failed, status code: %d", resp.StatusCode)
}

// handlerUnmarshalJSON unmarshals JSON content from an io.Reader into the provided output structure.
func handlerUnmarshalJSON(reader io.Reader, out any, log logger.Logger, mimeType string) error {
	decoder := json.NewDecoder(reader)
	if err := decoder.Decode(out); err != nil {
		log.Warn("JSON unmarshal error", zap.String("content_type", mimeType), zap.Error(err))
		return err
	}
	log.Debug("Successfully unmarshalled JSON response", zap.String("content_type", mimeType))
	return nil
}

// isBinaryData checks if the MIME type or Content-Disposition indicates binary data.
func isBinaryData(contentType, contentDisposition string) bool {
	return strings.Contains(contentType, "application/octet-stream") ||
		strings.Contains(contentType, "application/pdf") ||
		strings.HasPrefix(contentDisposition, "attachment")
}

// handleBinaryData reads binary data from an io.Reader and stores it in *[]byte or streams it to an io.Writer.
func handleBinaryData(reader io.Reader, log logger.Logger, out any, contentDisposition string) error {
	switch out := out.(type) {
	case *[]byte:
		data, err := io.ReadAll(reader)
		if err != nil {
			return err
		}
		*out = data

	case io.Writer:
		if _, err := io.Copy(out, reader); err != nil {
			return err
		}

	default:
		return errors.New("output parameter is not suitable for binary data (*[]byte or io.Writer)")
	}

	if contentDisposition != "" {
		_, params := parseHeader(contentDisposition)
		if filename, ok := params["filename"]; ok {
			log.Debug("Extracted filename from Content-Disposition", zap.String("filename", filename))
		}
	}

	return nil
}
