package settings

import "runtime"

const (
	profilesPrefix       = "terminal.profiles."
	defaultProfilePrefix = "terminal.defaultProfile."
)

// PlatformKey returns the settings-key suffix for the current platform:
// "windows", "osx", or "linux".
func PlatformKey() string {
	switch runtime.GOOS {
	case "windows":
		return "windows"
	case "darwin":
		return "osx"
	default:
		return "linux"
	}
}

// ProfilesKey returns the dotted key of the platform's profile mapping.
func ProfilesKey(platform string) string {
	return profilesPrefix + platform
}

// DefaultProfileKey returns the dotted key of the platform's default-profile
// name.
func DefaultProfileKey(platform string) string {
	return defaultProfilePrefix + platform
}
