// version.go
package version

// AppName holds the name of the SDK
var AppName = "go-api-sdk-quillsign"

// Version holds the current version of the SDK
var Version = "0.1.0"

// GetAppName returns the name of the SDK
func GetAppName() string {
	return AppName
}

// GetVersion returns the current version of the SDK
func GetVersion() string {
	return Version
}

// UserAgent returns the User-Agent string sent with every API request.
func UserAgent() string {
	return AppName + "/" + Version
}
