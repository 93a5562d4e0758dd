package utils

import (
	"pharmacy-client/internal/pkg/dto/requests"
	"strings"
)

func SanitizeAdminLoginRequest(input *requests.AdminLogin) {
	input.Username = strings.TrimSpace(input.Username)
}

func SanitizeCreateUserRequest(input *requests.CreateUser) {
	input.Username = strings.TrimSpace(input.Username)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.MobileNumber = NormalizeMobileNumber(input.MobileNumber)
	input.Role = strings.ToLower(strings.TrimSpace(input.Role))
}

func SanitizeVerifyOtpRequest(input *requests.VerifyOtp) {
	input.MobileNumber = NormalizeMobileNumber(input.MobileNumber)
	input.Otp = strings.TrimSpace(input.Otp)
}

func SanitizeSaveInventoryItemRequest(input *requests.SaveInventoryItem) {
	input.MedicineName = strings.TrimSpace(input.MedicineName)
	input.BatchNumber = strings.ToUpper(strings.TrimSpace(input.BatchNumber))
	input.Manufacturer = strings.TrimSpace(input.Manufacturer)
	input.Category = strings.TrimSpace(input.Category)
}

func SanitizeSavePatientDetailsRequest(input *requests.SavePatientDetails) {
	input.FullName = strings.TrimSpace(input.FullName)
	input.MobileNumber = NormalizeMobileNumber(input.MobileNumber)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.AadhaarNumber = strings.ReplaceAll(strings.TrimSpace(input.AadhaarNumber), " ", "")
	input.Address = strings.TrimSpace(input.Address)
}
