package youtube

import (
	"regexp"
	"strings"
)

// Tried in order; the first pattern that matches anywhere in the text wins,
// even if a later pattern would match earlier in the text.
var videoIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:v=|/)([0-9A-Za-z_-]{11})`),
	regexp.MustCompile(`embed/([0-9A-Za-z_-]{11})`),
	regexp.MustCompile(`youtu\.be/([0-9A-Za-z_-]{11})`),
}

// ExtractVideoID finds an 11-character video ID in free-form text.
func ExtractVideoID(text string) (string, bool) {
	for _, pattern := range videoIDPatterns {
		if m := pattern.FindStringSubmatch(text); m != nil {
			return m[1], true
		}
	}
	return "", false
}

// LooksLikeVideoLink reports whether text mentions a YouTube host at all.
func LooksLikeVideoLink(text string) bool {
	return strings.Contains(text, "youtube.com") || strings.Contains(text, "youtu.be")
}

// WatchURL is the canonical watch link for videoID.
func WatchURL(videoID string) string {
	return "https://youtube.com/watch?v=" + videoID
}
