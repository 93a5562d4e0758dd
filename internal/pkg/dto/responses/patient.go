package responses

type PatientDetails struct {
	ID                 int        `json:"id"`
	PatientID          FlexibleID `json:"patientId,omitempty"`
	FullName           string     `json:"fullName,omitempty"`
	MobileNumber       string     `json:"mobileNumber,omitempty"`
	Email              *string    `json:"email,omitempty"`
	Gender             *string    `json:"gender,omitempty"`
	DateOfBirth        *string    `json:"dateOfBirth,omitempty"`
	Address            *string    `json:"address,omitempty"`
	AadhaarNumber      *string    `json:"aadhaarNumber,omitempty"`
	Status             string     `json:"status,omitempty"`
	IncomeLevel        *string    `json:"incomeLevel,omitempty"`
	DiscountPercentage *float64   `json:"discountPercentage,omitempty"`
}

type KycResult struct {
	PatientID          FlexibleID `json:"patientId,omitempty"`
	IncomeLevel        string     `json:"incomeLevel"`
	DiscountPercentage float64    `json:"discountPercentage"`
	Message            string     `json:"message,omitempty"`
}
