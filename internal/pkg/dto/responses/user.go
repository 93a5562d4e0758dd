package responses

type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email,omitempty"`
	MobileNumber string `json:"mobileNumber,omitempty"`
	Role         string `json:"role,omitempty"`
	IsActive     *bool  `json:"isActive,omitempty"`
}

// LoginResult is all the backend returns on admin login; there is no user
// object.
type LoginResult struct {
	Token   string `json:"token"`
	Message string `json:"message,omitempty"`
}

type MessageResult struct {
	Message string `json:"message,omitempty"`
}
