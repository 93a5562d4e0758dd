package models

import "pharmacy-client/internal/pkg/constvars"

// User is the cached snapshot persisted next to the token so a session can be
// restored without a network round trip.
type User struct {
	Username          string `json:"username"`
	Role              string `json:"role"`
	PatientID         string `json:"patientId,omitempty"`
	MobileNumber      string `json:"mobileNumber,omitempty"`
	IsProfileComplete *bool  `json:"isProfileComplete,omitempty"`
}

func (u *User) IsPatient() bool {
	return u != nil && u.Role == constvars.RolePatient
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == constvars.RoleAdmin
}

// ID is the identifier the backend expects as userId on owner scoped calls.
func (u *User) ID() string {
	if u == nil {
		return ""
	}
	if u.PatientID != "" {
		return u.PatientID
	}
	return u.Username
}

// UserPatch carries the fields UpdateUser may change. Nil fields are left
// untouched.
type UserPatch struct {
	Username          *string
	PatientID         *string
	MobileNumber      *string
	IsProfileComplete *bool
}

func (u *User) Apply(patch UserPatch) {
	if patch.Username != nil {
		u.Username = *patch.Username
	}
	if patch.PatientID != nil {
		u.PatientID = *patch.PatientID
	}
	if patch.MobileNumber != nil {
		u.MobileNumber = *patch.MobileNumber
	}
	if patch.IsProfileComplete != nil {
		complete := *patch.IsProfileComplete
		u.IsProfileComplete = &complete
	}
}
