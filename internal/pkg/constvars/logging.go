package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingMethodKey         = "method"
	LoggingURLKey            = "url"
	LoggingStatusCodeKey     = "status_code"
	LoggingDurationKey       = "duration"
	LoggingResponseLengthKey = "response_length"
	LoggingStorageKey        = "storage_key"
	LoggingUsernameKey       = "username"
	LoggingRoleKey           = "role"
	LoggingMobileNumberKey   = "mobile_number"
	LoggingPatientIDKey      = "patient_id"
	LoggingInventoryIDKey    = "inventory_id"
	LoggingPrescriptionIDKey = "prescription_id"
	LoggingInvoiceIDKey      = "invoice_id"
	LoggingPayloadShapeKey   = "payload_shape"
	LoggingCountKey          = "count"
	LoggingBucketKey         = "bucket"
	LoggingObjectNameKey     = "object_name"
	LoggingErrorCodeKey      = "error_code"
)
