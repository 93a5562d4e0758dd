package utils

import (
	"pharmacy-client/internal/pkg/constvars"
	"regexp"
	"strings"
)

var reMobileCountryPrefix = regexp.MustCompile(constvars.RegexMobileCountryPrefix)

// NormalizeMobileNumber trims spaces and dashes and strips a +91, 91 or 0
// prefix so the backend always sees the bare 10 digit number. Input that does
// not look like a mobile number is returned cleaned but otherwise unchanged.
func NormalizeMobileNumber(input string) string {
	s := strings.TrimSpace(input)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	if match := reMobileCountryPrefix.FindStringSubmatch(s); match != nil {
		return match[1]
	}
	return s
}

// MaskMobileNumber keeps the last four digits for logs.
func MaskMobileNumber(mobileNumber string) string {
	if len(mobileNumber) <= 4 {
		return mobileNumber
	}
	return strings.Repeat("*", len(mobileNumber)-4) + mobileNumber[len(mobileNumber)-4:]
}
