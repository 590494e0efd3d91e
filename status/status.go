// status.go
// This package provides utility functions for classifying HTTP response status codes.
package status

import (
	"net/http"
)

// IsSuccessStatusCode checks if the provided HTTP status code lies in the 2xx success range.
func IsSuccessStatusCode(statusCode int) bool {
	return statusCode >= 200 && statusCode < 300
}

// IsUnauthorized checks if the provided HTTP status code is 401 Unauthorized,
// the only status that triggers the pipeline's reauthentication cycle.
func IsUnauthorized(statusCode int) bool {
	return statusCode == http.StatusUnauthorized
}
