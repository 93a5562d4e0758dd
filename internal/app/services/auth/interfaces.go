package auth

import (
	"context"
	"pharmacy-client/internal/app/contracts"
	"pharmacy-client/internal/pkg/exceptions"
)

const biometricPrompt = "Confirm your identity to continue"

// Options tunes a session manager. OnLoginRequired runs after a forced logout
// and must not block.
type Options struct {
	Variant         string
	Biometric       contracts.BiometricAuthenticator
	OnLoginRequired func(ctx context.Context)
}

type unavailableBiometric struct{}

// NewUnavailableBiometric is the authenticator for devices without a
// fingerprint or face sensor.
func NewUnavailableBiometric() contracts.BiometricAuthenticator {
	return unavailableBiometric{}
}

func (unavailableBiometric) IsAvailable(ctx context.Context) bool {
	return false
}

func (unavailableBiometric) Authenticate(ctx context.Context, prompt string) error {
	return exceptions.ErrBiometricUnavailable()
}
