package platform

import (
	"fmt"
	"regexp"
)

// videoURLPattern matches the YouTube URL shapes accepted for download:
// youtube.com, youtu.be and youtube-nocookie.com, with or without scheme
// and www prefix, followed by a non-empty path.
var videoURLPattern = regexp.MustCompile(`^(https?://)?(www\.)?(youtube|youtu|youtube-nocookie)\.(com|be)/.+`)

// IsVideoURL reports whether url looks like a downloadable YouTube URL.
func IsVideoURL(url string) bool {
	return videoURLPattern.MatchString(url)
}

// ValidateVideoURL returns a descriptive error when url is not an
// accepted YouTube URL.
func ValidateVideoURL(url string) error {
	if url == "" {
		return fmt.Errorf("no URL given")
	}
	if !IsVideoURL(url) {
		return fmt.Errorf("not a valid YouTube URL: %s", url)
	}
	return nil
}
