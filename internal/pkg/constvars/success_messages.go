package constvars

// Fallback messages attached to envelopes when the backend sends none.
const (
	SuccessOtpSent            = "OTP sent successfully"
	SuccessOtpVerified        = "OTP verified successfully"
	SuccessUserCreated        = "User created successfully"
	SuccessLogin              = "Login successful"
	SuccessLogout             = "Logged out successfully"
	SuccessInventoryFetched   = "Inventory fetched successfully"
	SuccessInventorySaved     = "Item saved successfully"
	SuccessInventoryDeleted   = "Item deleted successfully"
	SuccessPatientsFetched    = "Patients fetched successfully"
	SuccessPatientSaved       = "Patient details saved successfully"
	SuccessPatientStatus      = "Patient status updated successfully"
	SuccessKycVerified        = "KYC verified successfully"
	SuccessPrescriptionUpload = "Prescription uploaded successfully"
	SuccessInvoiceGenerated   = "Invoice generated successfully"
)
