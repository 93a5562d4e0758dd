package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY ContextKey = "request_id"
)

const (
	EnvironmentDevelopment = "development"
	EnvironmentProduction  = "production"
)

const (
	VariantWeb    = "web"
	VariantMobile = "mobile"
)

const (
	StorageDriverFile   = "file"
	StorageDriverRedis  = "redis"
	StorageDriverMemory = "memory"
)

const (
	RoleAdmin   = "admin"
	RolePatient = "patient"
)

const (
	PatientStatusPending  = "Pending"
	PatientStatusApproved = "Approved"
	PatientStatusRejected = "Rejected"
)

const (
	LoginPath = "/login"
)

const (
	MultipartFieldFile      = "file"
	MultipartFieldPatientID = "patientId"
)
