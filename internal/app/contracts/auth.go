package contracts

import (
	"context"
	"pharmacy-client/internal/app/models"
)

type SessionManager interface {
	CurrentUserProvider
	Navigator
	Restore(ctx context.Context) (models.SessionState, error)
	Login(ctx context.Context, username, password string) (*models.User, error)
	LoginPatient(ctx context.Context, mobileNumber string) (string, error)
	VerifyOtp(ctx context.Context, mobileNumber, otp string) (*models.LoginOutcome, error)
	Logout(ctx context.Context) error
	UpdateUser(ctx context.Context, patch models.UserPatch) (*models.User, error)
	IsAuthenticated() bool
	EnableBiometrics(ctx context.Context) error
	DisableBiometrics(ctx context.Context) error
	IsBiometricEnabled(ctx context.Context) (bool, error)
}

// BiometricAuthenticator fronts the device fingerprint/face prompt.
// Authenticate returns an error when the user cancels or the match fails.
type BiometricAuthenticator interface {
	IsAvailable(ctx context.Context) bool
	Authenticate(ctx context.Context, prompt string) error
}
