package utils

import (
	"pharmacy-client/internal/pkg/constvars"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	validate       *validator.Validate
	reMobileNumber = regexp.MustCompile(constvars.RegexMobileNumber)
	reOtpCode      = regexp.MustCompile(constvars.RegexOtpCode)
)

func init() {
	validate = validator.New()
	validate.RegisterValidation("mobile_number", validateMobileNumber)
	validate.RegisterValidation("otp_code", validateOtpCode)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateMobileNumber(fl validator.FieldLevel) bool {
	return reMobileNumber.MatchString(fl.Field().String())
}

func validateOtpCode(fl validator.FieldLevel) bool {
	return reOtpCode.MatchString(fl.Field().String())
}
