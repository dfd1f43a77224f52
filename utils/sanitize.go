package utils

import "github.com/microcosm-cc/bluemonday"

var sanitizer = bluemonday.StrictPolicy()

// Sanitize strips HTML from caller-supplied free text (meal descriptions,
// notes) before persistence.
func Sanitize(input string) string {
	return sanitizer.Sanitize(input)
}
