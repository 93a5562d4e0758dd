package utils

import (
	"pharmacy-client/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeCreateUserRequest(t *testing.T) {
	t.Run("Email Sanitization", func(t *testing.T) {
		request := &requests.CreateUser{
			Username: "  pharmacist  ",
			Email:    "  ADMIN@PHARMACY.IN  ",
			Role:     "  Admin ",
		}

		SanitizeCreateUserRequest(request)

		assert.Equal(t, "pharmacist", request.Username, "username should be trimmed")
		assert.Equal(t, "admin@pharmacy.in", request.Email, "email should be lowercase and trimmed")
		assert.Equal(t, "admin", request.Role, "role should be lowercase and trimmed")
	})

	t.Run("Mobile Number Prefix", func(t *testing.T) {
		request := &requests.CreateUser{
			MobileNumber: "+91 98765-43210",
			Role:         "patient",
		}

		SanitizeCreateUserRequest(request)

		assert.Equal(t, "9876543210", request.MobileNumber, "country prefix and separators should be stripped")
	})
}

func TestSanitizeVerifyOtpRequest(t *testing.T) {
	request := &requests.VerifyOtp{
		MobileNumber: " 09876543210 ",
		Otp:          " 123456 ",
	}

	SanitizeVerifyOtpRequest(request)

	assert.Equal(t, "9876543210", request.MobileNumber)
	assert.Equal(t, "123456", request.Otp)
}

func TestSanitizeSavePatientDetailsRequest(t *testing.T) {
	request := &requests.SavePatientDetails{
		FullName:      "  Asha Verma ",
		MobileNumber:  "919876543210",
		Email:         " Asha@Example.COM",
		AadhaarNumber: "1234 5678 9012",
	}

	SanitizeSavePatientDetailsRequest(request)

	assert.Equal(t, "Asha Verma", request.FullName)
	assert.Equal(t, "9876543210", request.MobileNumber)
	assert.Equal(t, "asha@example.com", request.Email)
	assert.Equal(t, "123456789012", request.AadhaarNumber, "aadhaar spaces should be removed")
}

func TestNormalizeMobileNumber(t *testing.T) {
	cases := map[string]string{
		"9876543210":      "9876543210",
		"+919876543210":   "9876543210",
		"91 9876543210":   "9876543210",
		"09876543210":     "9876543210",
		"  98765 43210  ": "9876543210",
		"12345":           "12345",
	}
	for input, expected := range cases {
		assert.Equal(t, expected, NormalizeMobileNumber(input), "input %q", input)
	}
}

func TestMaskMobileNumber(t *testing.T) {
	assert.Equal(t, "******3210", MaskMobileNumber("9876543210"))
	assert.Equal(t, "321", MaskMobileNumber("321"))
}
