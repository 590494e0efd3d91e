// httpclient/client_configuration.go
// Description: This file contains functions to load client configuration values from environment variables.
package httpclient

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// LoadConfigFromEnv loads client configuration settings from QUILLSIGN_*
// environment variables. Optional settings fall back to the package defaults;
// grant configuration is still validated by BuildClient, so missing mandatory
// variables surface there as validation errors.
func LoadConfigFromEnv() (*ClientConfig, error) {
	config := &ClientConfig{
		BaseURL:      getEnvOrDefault("QUILLSIGN_BASE_URL", ""),
		ClientID:     getEnvOrDefault("QUILLSIGN_CLIENT_ID", ""),
		ClientSecret: getEnvOrDefault("QUILLSIGN_CLIENT_SECRET", ""),
		GrantType:    GrantType(getEnvOrDefault("QUILLSIGN_GRANT_TYPE", string(GrantTypeClientCredentials))),
		Scopes:       parseScopesFromString(getEnvOrDefault("QUILLSIGN_SCOPES", "")),
		Username:     getEnvOrDefault("QUILLSIGN_USERNAME", ""),
		Password:     getEnvOrDefault("QUILLSIGN_PASSWORD", ""),

		LogLevel:            getEnvOrDefault("QUILLSIGN_LOG_LEVEL", DefaultLogLevelString),
		LogOutputFormat:     getEnvOrDefault("QUILLSIGN_LOG_OUTPUT_FORMAT", DefaultLogOutputFormatString),
		LogConsoleSeparator: getEnvOrDefault("QUILLSIGN_LOG_CONSOLE_SEPARATOR", DefaultLogConsoleSeparator),
		HideSensitiveData:   parseBool(getEnvOrDefault("QUILLSIGN_HIDE_SENSITIVE_DATA", strconv.FormatBool(DefaultHideSensitiveData))),

		CustomTimeout: parseDuration(getEnvOrDefault("QUILLSIGN_CUSTOM_TIMEOUT", ""), DefaultCustomTimeout),
	}

	return config, nil
}

// parseScopesFromString parses a comma-separated scope list, preserving order.
func parseScopesFromString(value string) []Scope {
	if value == "" {
		return nil
	}
	var scopes []Scope
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			scopes = append(scopes, Scope(part))
		}
	}
	return scopes
}

// Helper function to get environment variable or default value
func getEnvOrDefault(envKey string, defaultValue string) string {
	if value, exists := os.LookupEnv(envKey); exists {
		return value
	}
	return defaultValue
}

// Helper function to parse boolean from environment variable
func parseBool(value string) bool {
	result, err := strconv.ParseBool(value)
	if err != nil {
		return false
	}
	return result
}

// Helper function to parse a duration from environment variable
func parseDuration(value string, defaultVal time.Duration) time.Duration {
	if value == "" {
		return defaultVal
	}
	result, err := time.ParseDuration(value)
	if err != nil {
		return defaultVal
	}
	return result
}
