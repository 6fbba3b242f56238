// Package sanitize provides text sanitization for user-supplied free text.
package sanitize

import (
	"regexp"
	"strings"
)

var htmlTagRegex = regexp.MustCompile(`<[^>]*>`)

// Text strips HTML tags and trims whitespace from user-provided text
// fields (complaint subjects, dispute reasons, escalation notes) before
// they are stored or echoed back.
func Text(s string) string {
	result := htmlTagRegex.ReplaceAllString(s, "")
	result = strings.ReplaceAll(result, "&lt;", "<")
	result = strings.ReplaceAll(result, "&gt;", ">")
	result = strings.ReplaceAll(result, "&amp;", "&")
	// Strip again to catch tags hidden behind entity encoding.
	result = htmlTagRegex.ReplaceAllString(result, "")
	return strings.TrimSpace(result)
}
