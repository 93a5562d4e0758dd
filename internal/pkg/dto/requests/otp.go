package requests

type SendOtp struct {
	MobileNumber string `json:"mobileNumber"`
}

type VerifyOtp struct {
	MobileNumber string `json:"mobileNumber"`
	Otp          string `json:"otp"`
}
