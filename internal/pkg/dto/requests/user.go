package requests

type CreateUser struct {
	Username     string `json:"username"`
	Password     string `json:"password,omitempty"`
	Email        string `json:"email,omitempty"`
	MobileNumber string `json:"mobileNumber,omitempty"`
	Role         string `json:"role"`
}

type AdminLogin struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
