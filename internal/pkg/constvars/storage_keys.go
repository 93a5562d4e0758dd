package constvars

// Persisted key/value entries. Both token keys are read and cleared because
// older builds of the dashboard stored the token under "token".
const (
	StorageKeyAuthToken        = "auth_token"
	StorageKeyLegacyToken      = "token"
	StorageKeyUsername         = "username"
	StorageKeyUserRole         = "user_role"
	StorageKeyPatientID        = "patient_id"
	StorageKeyPatientMobile    = "patient_mobile"
	StorageKeyLastUserData     = "last_user_data"
	StorageKeyBiometricEnabled = "biometric_enabled"
)

var TokenStorageKeys = []string{
	StorageKeyAuthToken,
	StorageKeyLegacyToken,
}

var SessionStorageKeys = []string{
	StorageKeyAuthToken,
	StorageKeyLegacyToken,
	StorageKeyUsername,
	StorageKeyUserRole,
	StorageKeyPatientID,
	StorageKeyPatientMobile,
	StorageKeyLastUserData,
}
