package utils

import "regexp"

var shortCodePattern = regexp.MustCompile(`/([a-zA-Z0-9]+)$`)

// ParseShortCode extracts the short code from a full short URL: the
// trailing alphanumeric path segment. Input without such a segment is
// returned as-is, so bare codes pass through unchanged.
func ParseShortCode(input string) string {
	if m := shortCodePattern.FindStringSubmatch(input); m != nil {
		return m[1]
	}
	return input
}
