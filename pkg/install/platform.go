package install

import "regexp"

// Platform is the coarse device family an install prompt is tailored to.
type Platform string

const (
	PlatformIOS     Platform = "ios"
	PlatformAndroid Platform = "android"
	PlatformUnknown Platform = "unknown"
)

var (
	iosPattern     = regexp.MustCompile(`(?i)iphone|ipad|ipod`)
	androidPattern = regexp.MustCompile(`(?i)android`)
)

// ClassifyPlatform sniffs a user-agent string.
// iOS identifiers win over Android when both appear.
func ClassifyPlatform(userAgent string) Platform {
	switch {
	case iosPattern.MatchString(userAgent):
		return PlatformIOS
	case androidPattern.MatchString(userAgent):
		return PlatformAndroid
	default:
		return PlatformUnknown
	}
}
