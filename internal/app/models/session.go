package models

type SessionState int

const (
	SessionAnonymous SessionState = iota
	SessionAuthenticated
)

func (s SessionState) String() string {
	switch s {
	case SessionAuthenticated:
		return "authenticated"
	default:
		return "anonymous"
	}
}

// LoginOutcome is returned by OTP verification. FirstLogin routes the front
// end to the details collection flow instead of the dashboard.
type LoginOutcome struct {
	User       *User
	FirstLogin bool
}
