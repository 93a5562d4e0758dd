package constvars

const (
	EndpointOtpSend   = "/Otp/send"
	EndpointOtpVerify = "/Otp/verify"

	EndpointUserCreate = "/User/CreateUser"
	EndpointUserLogin  = "/User/Login"
	EndpointUserLogout = "/User/Logout"
	EndpointUserList   = "/User/GetUsers"

	EndpointInventoryList   = "/Inventory/GetInventoryList"
	EndpointInventoryByID   = "/Inventory/GetInventoryById"
	EndpointInventorySave   = "/Inventory/save"
	EndpointInventoryDelete = "/Inventory"

	EndpointPatientsByStatus     = "/Patient/GetPatientsByStatus"
	EndpointPatientByID          = "/Patient/GetPatientById"
	EndpointPatientByMobile      = "/Patient/GetPatientByMobile"
	EndpointPatientSaveDetails   = "/Patient/SavePatientDetails"
	EndpointPatientUpdateStatus  = "/Patient/UpdatePatientStatus"
	EndpointPatientVerifyKyc     = "/Patient/VerifyKyc"
	EndpointPrescriptionUpload   = "/api/prescription/uploadPrescription"
	EndpointPrescriptionInvoice  = "/api/Prescription/GenerateInvoice"
	EndpointPrescriptionsByPatID = "/api/Prescription/GetPrescriptionsByPatient"
)

const (
	ResourceInventory    = "Inventory"
	ResourceOtp          = "Otp"
	ResourceUser         = "User"
	ResourcePatient      = "Patient"
	ResourcePrescription = "Prescription"
	ResourceInvoice      = "Invoice"
)

const (
	QueryParamUserID       = "userId"
	QueryParamInventoryID  = "inventoryId"
	QueryParamStatus       = "status"
	QueryParamPatientID    = "patientId"
	QueryParamMobileNumber = "mobileNumber"
)
