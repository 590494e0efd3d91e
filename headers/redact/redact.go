// headers/redact/redact.go
package redact

// RedactSensitiveValue redacts sensitive data based on the hideSensitiveData flag.
func RedactSensitiveValue(hideSensitiveData bool, key, value string) string {
	if hideSensitiveData {
		// Keys whose values must never reach the logs.
		sensitiveKeys := map[string]bool{
			"AccessToken":   true,
			"Authorization": true,
			"ClientSecret":  true,
			"Password":      true,
		}

		if _, found := sensitiveKeys[key]; found {
			return "REDACTED"
		}
	}
	return value
}
