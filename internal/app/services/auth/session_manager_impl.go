package auth

import (
	"context"
	"pharmacy-client/internal/app/contracts"
	"pharmacy-client/internal/app/models"
	"pharmacy-client/internal/app/services/patients"
	"pharmacy-client/internal/pkg/constvars"
	"pharmacy-client/internal/pkg/dto/requests"
	"pharmacy-client/internal/pkg/dto/responses"
	"pharmacy-client/internal/pkg/exceptions"
	"pharmacy-client/internal/pkg/utils"
	"strconv"
	"sync"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type sessionManager struct {
	Store           contracts.KeyValueStore
	Users           contracts.UserService
	Otp             contracts.OtpService
	Patients        contracts.PatientService
	Biometric       contracts.BiometricAuthenticator
	Variant         string
	OnLoginRequired func(ctx context.Context)
	Log             *zap.Logger

	mu            sync.RWMutex
	state         models.SessionState
	user          *models.User
	pendingMobile string
}

func NewSessionManager(
	store contracts.KeyValueStore,
	userService contracts.UserService,
	otpService contracts.OtpService,
	patientService contracts.PatientService,
	opts Options,
	logger *zap.Logger,
) contracts.SessionManager {
	biometric := opts.Biometric
	if biometric == nil {
		biometric = NewUnavailableBiometric()
	}
	variant := opts.Variant
	if variant == "" {
		variant = constvars.VariantWeb
	}
	return &sessionManager{
		Store:           store,
		Users:           userService,
		Otp:             otpService,
		Patients:        patientService,
		Biometric:       biometric,
		Variant:         variant,
		OnLoginRequired: opts.OnLoginRequired,
		Log:             logger,
		state:           models.SessionAnonymous,
	}
}

func (s *sessionManager) CurrentUser() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	user := *s.user
	return &user
}

func (s *sessionManager) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state == models.SessionAuthenticated
}

// Restore rebuilds the session from storage. A persisted patient session on
// the mobile variant with biometrics enabled is only restored after a
// successful biometric challenge; otherwise it is discarded.
func (s *sessionManager) Restore(ctx context.Context) (models.SessionState, error) {
	ctx, requestID := utils.EnsureRequestID(ctx)
	s.Log.Info("sessionManager.Restore called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	token, err := s.readToken(ctx)
	if err != nil {
		s.Log.Error("sessionManager.Restore error reading token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		s.setState(models.SessionAnonymous, nil)
		return models.SessionAnonymous, err
	}
	if token == "" {
		s.setState(models.SessionAnonymous, nil)
		return models.SessionAnonymous, nil
	}

	user, err := s.readSnapshot(ctx)
	if err != nil || user == nil {
		s.Log.Warn("sessionManager.Restore token without user snapshot, discarding session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		s.discardSession(ctx)
		return models.SessionAnonymous, err
	}

	if s.isMobile() && user.IsPatient() {
		enabled, err := s.IsBiometricEnabled(ctx)
		if err != nil {
			s.setState(models.SessionAnonymous, nil)
			return models.SessionAnonymous, err
		}
		if enabled {
			if err := s.challenge(ctx); err != nil {
				s.Log.Info("sessionManager.Restore biometric challenge failed, discarding session",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.Error(err),
				)
				s.discardSession(ctx)
				return models.SessionAnonymous, err
			}
		}
	}

	s.setState(models.SessionAuthenticated, user)
	s.Log.Info("sessionManager.Restore succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUsernameKey, user.Username),
		zap.String(constvars.LoggingRoleKey, user.Role),
	)
	return models.SessionAuthenticated, nil
}

func (s *sessionManager) Login(ctx context.Context, username, password string) (*models.User, error) {
	ctx, requestID := utils.EnsureRequestID(ctx)
	s.Log.Info("sessionManager.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUsernameKey, username),
	)

	result := s.Users.AdminLogin(ctx, &requests.AdminLogin{Username: username, Password: password})
	if !result.Success {
		return nil, exceptions.ErrOperationFailed("Login", utils.FirstNonEmpty(result.Error, constvars.ErrClientLoginFailed))
	}

	user := &models.User{Username: username, Role: constvars.RoleAdmin}
	if err := s.persist(ctx, result.Data.Token, user); err != nil {
		return nil, err
	}
	s.setState(models.SessionAuthenticated, user)

	s.Log.Info("sessionManager.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUsernameKey, username),
	)
	return s.CurrentUser(), nil
}

// LoginPatient sends the OTP and remembers the number for VerifyOtp.
func (s *sessionManager) LoginPatient(ctx context.Context, mobileNumber string) (string, error) {
	ctx, requestID := utils.EnsureRequestID(ctx)
	mobileNumber = utils.NormalizeMobileNumber(mobileNumber)
	s.Log.Info("sessionManager.LoginPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMobileNumberKey, utils.MaskMobileNumber(mobileNumber)),
	)

	result := s.Otp.SendOtp(ctx, &requests.SendOtp{MobileNumber: mobileNumber})
	if !result.Success {
		return "", exceptions.ErrOperationFailed("LoginPatient", utils.FirstNonEmpty(result.Error, constvars.ErrClientSendOtpFailed))
	}

	s.mu.Lock()
	s.pendingMobile = mobileNumber
	s.mu.Unlock()

	return result.Message, nil
}

// VerifyOtp completes the OTP login. An empty mobileNumber falls back to the
// number passed to LoginPatient.
func (s *sessionManager) VerifyOtp(ctx context.Context, mobileNumber, otp string) (*models.LoginOutcome, error) {
	ctx, requestID := utils.EnsureRequestID(ctx)
	mobileNumber = utils.NormalizeMobileNumber(mobileNumber)
	if mobileNumber == "" {
		s.mu.RLock()
		mobileNumber = s.pendingMobile
		s.mu.RUnlock()
	}
	if mobileNumber == "" {
		return nil, exceptions.ErrNoPendingOtp()
	}
	s.Log.Info("sessionManager.VerifyOtp called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMobileNumberKey, utils.MaskMobileNumber(mobileNumber)),
	)

	result := s.Otp.VerifyOtp(ctx, &requests.VerifyOtp{MobileNumber: mobileNumber, Otp: otp})
	if !result.Success {
		return nil, exceptions.ErrOperationFailed("VerifyOtp", utils.FirstNonEmpty(result.Error, constvars.ErrClientInvalidOtp))
	}

	user := &models.User{
		Username:     mobileNumber,
		Role:         utils.FirstNonEmpty(result.Data.Role, constvars.RolePatient),
		PatientID:    result.Data.PatientID.String(),
		MobileNumber: mobileNumber,
	}
	if err := s.persist(ctx, result.Data.Token, user); err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.pendingMobile = ""
	s.mu.Unlock()
	s.setState(models.SessionAuthenticated, user)

	complete := s.lookupProfileComplete(ctx, user)
	patch := models.UserPatch{IsProfileComplete: &complete}
	if user.PatientID != "" {
		patch.PatientID = &user.PatientID
	}
	updated, err := s.UpdateUser(ctx, patch)
	if err != nil {
		return nil, err
	}

	s.Log.Info("sessionManager.VerifyOtp succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, updated.PatientID),
		zap.Bool("first_login", !complete),
	)
	return &models.LoginOutcome{User: updated, FirstLogin: !complete}, nil
}

// lookupProfileComplete fetches the patient record. A failed lookup counts as
// an incomplete profile. It fills user.PatientID when the verify response had
// none.
func (s *sessionManager) lookupProfileComplete(ctx context.Context, user *models.User) bool {
	var result responses.Envelope[*responses.PatientDetails]
	if user.PatientID != "" {
		result = s.Patients.GetPatientDetails(ctx, user.PatientID)
	} else {
		result = s.Patients.GetPatientByMobile(ctx, user.MobileNumber)
	}
	if !result.Success || result.Data == nil {
		s.Log.Info("sessionManager.lookupProfileComplete no patient record, treating as first login",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
			zap.String("error", result.Error),
		)
		return false
	}
	if user.PatientID == "" {
		if id := result.Data.PatientID.String(); id != "" {
			user.PatientID = id
		} else if result.Data.ID != 0 {
			user.PatientID = strconv.Itoa(result.Data.ID)
		}
	}
	return patients.IsProfileComplete(result.Data)
}

// Logout tells the backend on a best effort basis, then always clears the
// session keys. The biometric preference is kept.
func (s *sessionManager) Logout(ctx context.Context) error {
	ctx, requestID := utils.EnsureRequestID(ctx)
	s.Log.Info("sessionManager.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	result := s.Users.Logout(ctx)
	if !result.Success {
		s.Log.Warn("sessionManager.Logout backend logout failed, clearing local session anyway",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String("error", result.Error),
		)
	}

	s.setState(models.SessionAnonymous, nil)
	s.mu.Lock()
	s.pendingMobile = ""
	s.mu.Unlock()

	if err := s.Store.Delete(ctx, constvars.SessionStorageKeys...); err != nil {
		s.Log.Error("sessionManager.Logout error clearing session keys",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrKeyValueDelete(err)
	}

	s.Log.Info("sessionManager.Logout succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}

func (s *sessionManager) UpdateUser(ctx context.Context, patch models.UserPatch) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return nil, exceptions.ErrNotAuthenticated()
	}
	updated := *s.user
	updated.Apply(patch)
	if err := s.writeSnapshot(ctx, &updated); err != nil {
		return nil, err
	}
	s.user = &updated

	user := updated
	return &user, nil
}

// RedirectToLogin is called by the response interceptor after it cleared the
// token on a 401. OnLoginRequired only runs when a session was torn down.
func (s *sessionManager) RedirectToLogin(ctx context.Context) {
	s.mu.Lock()
	wasAuthenticated := s.state == models.SessionAuthenticated
	s.state = models.SessionAnonymous
	s.user = nil
	s.mu.Unlock()

	if !wasAuthenticated {
		s.Log.Debug("sessionManager.RedirectToLogin no active session",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
		)
		return
	}

	s.Log.Info("sessionManager.RedirectToLogin session expired",
		zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
		zap.String("path", constvars.LoginPath),
	)
	if s.OnLoginRequired != nil {
		s.OnLoginRequired(ctx)
	}
}

func (s *sessionManager) EnableBiometrics(ctx context.Context) error {
	if !s.isMobile() {
		return exceptions.ErrBiometricUnsupported()
	}
	if err := s.challenge(ctx); err != nil {
		return err
	}
	if err := s.Store.Set(ctx, constvars.StorageKeyBiometricEnabled, strconv.FormatBool(true)); err != nil {
		return exceptions.ErrKeyValueSet(err, constvars.StorageKeyBiometricEnabled)
	}
	s.Log.Info("sessionManager.EnableBiometrics succeeded",
		zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
	)
	return nil
}

func (s *sessionManager) DisableBiometrics(ctx context.Context) error {
	if !s.isMobile() {
		return exceptions.ErrBiometricUnsupported()
	}
	if err := s.Store.Delete(ctx, constvars.StorageKeyBiometricEnabled); err != nil {
		return exceptions.ErrKeyValueDelete(err)
	}
	return nil
}

func (s *sessionManager) IsBiometricEnabled(ctx context.Context) (bool, error) {
	if !s.isMobile() {
		return false, exceptions.ErrBiometricUnsupported()
	}
	value, err := s.Store.Get(ctx, constvars.StorageKeyBiometricEnabled)
	if err != nil {
		return false, exceptions.ErrKeyValueGet(err, constvars.StorageKeyBiometricEnabled)
	}
	enabled, _ := strconv.ParseBool(value)
	return enabled, nil
}

func (s *sessionManager) challenge(ctx context.Context) error {
	if !s.Biometric.IsAvailable(ctx) {
		return exceptions.ErrBiometricUnavailable()
	}
	if err := s.Biometric.Authenticate(ctx, biometricPrompt); err != nil {
		return exceptions.ErrBiometricFailed(err)
	}
	return nil
}

func (s *sessionManager) isMobile() bool {
	return s.Variant == constvars.VariantMobile
}

func (s *sessionManager) setState(state models.SessionState, user *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
	if user == nil {
		s.user = nil
		return
	}
	snapshot := *user
	s.user = &snapshot
}

func (s *sessionManager) readToken(ctx context.Context) (string, error) {
	for _, key := range constvars.TokenStorageKeys {
		token, err := s.Store.Get(ctx, key)
		if err != nil {
			return "", exceptions.ErrKeyValueGet(err, key)
		}
		if token != "" {
			return token, nil
		}
	}
	return "", nil
}

// readSnapshot prefers the JSON snapshot and falls back to the flat keys
// written alongside it.
func (s *sessionManager) readSnapshot(ctx context.Context) (*models.User, error) {
	raw, err := s.Store.Get(ctx, constvars.StorageKeyLastUserData)
	if err != nil {
		return nil, exceptions.ErrKeyValueGet(err, constvars.StorageKeyLastUserData)
	}
	if raw != "" {
		user := new(models.User)
		if err := json.Unmarshal([]byte(raw), user); err == nil && user.Role != "" {
			return user, nil
		}
		s.Log.Warn("sessionManager.readSnapshot unreadable snapshot, using flat keys",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
		)
	}

	flat := make(map[string]string, 4)
	for _, key := range []string{
		constvars.StorageKeyUsername,
		constvars.StorageKeyUserRole,
		constvars.StorageKeyPatientID,
		constvars.StorageKeyPatientMobile,
	} {
		value, err := s.Store.Get(ctx, key)
		if err != nil {
			return nil, exceptions.ErrKeyValueGet(err, key)
		}
		flat[key] = value
	}
	if flat[constvars.StorageKeyUserRole] == "" {
		return nil, nil
	}
	return &models.User{
		Username:     flat[constvars.StorageKeyUsername],
		Role:         flat[constvars.StorageKeyUserRole],
		PatientID:    flat[constvars.StorageKeyPatientID],
		MobileNumber: flat[constvars.StorageKeyPatientMobile],
	}, nil
}

// persist replaces the stored token and snapshot. An empty token clears both
// token keys so a previous user's bearer never outlives their snapshot.
func (s *sessionManager) persist(ctx context.Context, token string, user *models.User) error {
	if token == "" {
		if err := s.Store.Delete(ctx, constvars.TokenStorageKeys...); err != nil {
			return exceptions.ErrKeyValueDelete(err)
		}
		return s.writeSnapshot(ctx, user)
	}

	if err := s.Store.Set(ctx, constvars.StorageKeyAuthToken, token); err != nil {
		return exceptions.ErrKeyValueSet(err, constvars.StorageKeyAuthToken)
	}
	if err := s.Store.Delete(ctx, constvars.StorageKeyLegacyToken); err != nil {
		return exceptions.ErrKeyValueDelete(err)
	}
	return s.writeSnapshot(ctx, user)
}

func (s *sessionManager) writeSnapshot(ctx context.Context, user *models.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}
	values := map[string]string{
		constvars.StorageKeyUsername:      user.Username,
		constvars.StorageKeyUserRole:      user.Role,
		constvars.StorageKeyPatientID:     user.PatientID,
		constvars.StorageKeyPatientMobile: user.MobileNumber,
		constvars.StorageKeyLastUserData:  string(raw),
	}
	for key, value := range values {
		if value == "" {
			if err := s.Store.Delete(ctx, key); err != nil {
				return exceptions.ErrKeyValueDelete(err)
			}
			continue
		}
		if err := s.Store.Set(ctx, key, value); err != nil {
			return exceptions.ErrKeyValueSet(err, key)
		}
	}
	return nil
}

func (s *sessionManager) discardSession(ctx context.Context) {
	s.setState(models.SessionAnonymous, nil)
	if err := s.Store.Delete(ctx, constvars.SessionStorageKeys...); err != nil {
		s.Log.Error("sessionManager.discardSession error clearing session keys",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
			zap.Error(err),
		)
	}
}
