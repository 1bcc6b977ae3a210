package utils

import (
	"regexp"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidateEmail checks that the email has a plausible shape
func ValidateEmail(email string) bool {
	return emailRegex.MatchString(email)
}
