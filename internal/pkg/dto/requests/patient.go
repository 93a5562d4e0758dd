package requests

type SavePatientDetails struct {
	ID            int    `json:"id,omitempty"`
	PatientID     string `json:"patientId,omitempty"`
	FullName      string `json:"fullName"`
	MobileNumber  string `json:"mobileNumber"`
	Email         string `json:"email,omitempty"`
	Gender        string `json:"gender,omitempty"`
	DateOfBirth   string `json:"dateOfBirth,omitempty"`
	Address       string `json:"address,omitempty"`
	AadhaarNumber string `json:"aadhaarNumber"`
	AnnualIncome  int64  `json:"annualIncome,omitempty"`
}

type UpdatePatientStatus struct {
	PatientID string `json:"patientId"`
	Status    string `json:"status"`
	Remarks   string `json:"remarks,omitempty"`
}

type VerifyKyc struct {
	PatientID string `json:"patientId"`
}
