package webscraper

import (
	"strings"
	"time"
)

// CleanText normalizes whitespace: runs of spaces, tabs, and newlines
// collapse to single spaces, and leading/trailing whitespace is removed.
func CleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Timestamp formats a time for use in output filenames, e.g. "20250131_154205".
func Timestamp(t time.Time) string {
	return t.Format("20060102_150405")
}

// TruncateURL shortens a URL for display, keeping the end which is more informative.
func TruncateURL(url string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if maxLen < 4 {
		// Too short for "..." prefix, just return dots
		return url[:min(len(url), maxLen)]
	}
	if len(url) <= maxLen {
		return url
	}
	return "..." + url[len(url)-maxLen+3:]
}
