package responses

type OtpSendResult struct {
	Message string `json:"message,omitempty"`
}

type OtpVerifyResult struct {
	IsValid   bool       `json:"isValid"`
	Token     string     `json:"token,omitempty"`
	PatientID FlexibleID `json:"patientId,omitempty"`
	Role      string     `json:"role,omitempty"`
	Message   string     `json:"message,omitempty"`
}
