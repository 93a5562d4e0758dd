package constvars

const (
	RegexNumeric      = `^\d+$`
	RegexMobileNumber = `^[6-9]\d{9}$`
	RegexOtpCode      = `^\d{4,6}$`
	// RegexMobileCountryPrefix strips a leading +91/91/0 before a 10 digit number.
	RegexMobileCountryPrefix = `^(?:\+?91|0)([6-9]\d{9})$`
)
