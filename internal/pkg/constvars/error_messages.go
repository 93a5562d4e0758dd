package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":      "is required",
	"email":         "must be a valid email",
	"alphanum":      "must contain only alphanumeric characters",
	"min":           "must be at least %s characters long",
	"max":           "maximum at %s characters long",
	"numeric":       "must be a number",
	"len":           "must be %s characters long",
	"oneof":         "must be one of [%s]",
	"gt":            "must be greater than %s",
	"gte":           "must be greater than or equal to %s",
	"lte":           "must be less than or equal to %s",
	"mobile_number": "mobile number must be a valid 10 digit number",
	"otp_code":      "otp must be 4 to 6 digits",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"len":   true,
	"gt":    true,
	"gte":   true,
	"lte":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientGenericFailure        = "An unexpected error occurred"
	ErrClientRequestFailedFormat   = "Request failed with status code %d"
	ErrClientCannotProcessRequest  = "cannot process request"
	ErrClientNotLoggedIn           = "you are not logged in"
	ErrClientSessionExpired        = "your session has expired, please log in again"
	ErrClientInvalidOtp            = "Invalid OTP"
	ErrClientSendOtpFailed         = "Failed to send OTP"
	ErrClientVerifyOtpFailed       = "Failed to verify OTP"
	ErrClientCreateUserFailed      = "Failed to create user"
	ErrClientLoginFailed           = "Invalid username or password"
	ErrClientLogoutFailed          = "Failed to log out"
	ErrClientFetchUsersFailed      = "Failed to fetch users"
	ErrClientFetchInventoryFailed  = "Failed to fetch inventory"
	ErrClientSaveInventoryFailed   = "Failed to save inventory item"
	ErrClientDeleteInventoryFailed = "Failed to delete inventory item"
	ErrClientFetchPatientsFailed   = "Failed to fetch patients"
	ErrClientFetchPatientFailed    = "Failed to fetch patient details"
	ErrClientSavePatientFailed     = "Failed to save patient details"
	ErrClientUpdateStatusFailed    = "Failed to update patient status"
	ErrClientVerifyKycFailed       = "Failed to verify KYC"
	ErrClientUploadFailed          = "Failed to upload prescription"
	ErrClientInvoiceFailed         = "Failed to generate invoice"
	ErrClientFetchPrescriptions    = "Failed to fetch prescriptions"
	ErrClientBiometricUnsupported  = "biometric login is only available on the mobile app"
	ErrClientBiometricUnavailable  = "biometric authentication is not available on this device"
	ErrClientBiometricFailed       = "biometric authentication failed"
	ErrClientNoPendingOtp          = "request an OTP before verifying"
)

// Error messages for developers
const (
	ErrDevInvalidInput              = "invalid input"
	ErrDevValidationFailed          = "validation failed"
	ErrDevCannotMarshalJSON         = "failed to marshal JSON"
	ErrDevCannotParseJSON           = "failed to parse JSON"
	ErrDevCreateHTTPRequest         = "failed to create HTTP request"
	ErrDevSendHTTPRequest           = "failed to send HTTP request"
	ErrDevReadResponseBody          = "failed to read response body"
	ErrDevBuildMultipart            = "failed to build multipart body"
	ErrDevHTTPStatus                = "backend responded with status %d"
	ErrDevDecodeResponse            = "failed to decode %s response"
	ErrDevUnexpectedPayloadShape    = "unexpected %s payload shape"
	ErrDevKeyValueGet               = "failed to read key %s from storage"
	ErrDevKeyValueSet               = "failed to write key %s to storage"
	ErrDevKeyValueDelete            = "failed to delete keys from storage"
	ErrDevMinioFailedToCreateObject = "failed to create object in bucket %s"
	ErrDevOperationFailed           = "%s operation failed"
	ErrDevNotAuthenticated          = "no active session"
	ErrDevBiometricUnsupported      = "biometric gating requested on web variant"
	ErrDevBiometricUnavailable      = "biometric authenticator not available"
	ErrDevBiometricFailed           = "biometric challenge failed"
	ErrDevNoPendingOtp              = "verify called without a pending OTP challenge"
)
