package otp

import (
	"context"
	"net/http"
	"pharmacy-client/internal/app/services/shared/httpclient/httpclienttest"
	"pharmacy-client/internal/pkg/dto/requests"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestOtpService_SendOtp(t *testing.T) {
	var received requests.SendOtp
	router := chi.NewRouter()
	router.Post("/Otp/send", func(w http.ResponseWriter, r *http.Request) {
		httpclienttest.ReadJSON(r, &received)
		httpclienttest.WriteJSON(w, http.StatusOK, map[string]string{"message": "OTP sent successfully"})
	})
	backend := httpclienttest.NewBackend(t, router)
	service := NewOtpService(backend.Client, zap.NewNop())

	result := service.SendOtp(context.Background(), &requests.SendOtp{MobileNumber: "9876543210"})

	assert.Equal(t, "9876543210", received.MobileNumber)
	encoded, err := json.Marshal(result)
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":true,"data":{"message":"OTP sent successfully"},"message":"OTP sent successfully"}`, string(encoded))
}

func TestOtpService_SendOtp_Failure(t *testing.T) {
	router := chi.NewRouter()
	router.Post("/Otp/send", func(w http.ResponseWriter, r *http.Request) {
		httpclienttest.WriteJSON(w, http.StatusTooManyRequests, map[string]string{"message": "Too many attempts"})
	})
	backend := httpclienttest.NewBackend(t, router)
	service := NewOtpService(backend.Client, zap.NewNop())

	result := service.SendOtp(context.Background(), &requests.SendOtp{MobileNumber: "9876543210"})

	assert.False(t, result.Success)
	assert.Nil(t, result.Data)
	assert.Equal(t, "Too many attempts", result.Error)
}

func TestOtpService_VerifyOtp(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		payload       interface{}
		expectSuccess bool
		expectValid   bool
		expectedError string
		expectedID    string
	}{
		{
			name:          "Valid Code",
			status:        http.StatusOK,
			payload:       map[string]interface{}{"isValid": true, "token": "jwt", "patientId": 17, "role": "patient"},
			expectSuccess: true,
			expectValid:   true,
			expectedID:    "17",
		},
		{
			name:          "Invalid Code",
			status:        http.StatusOK,
			payload:       map[string]interface{}{"isValid": false},
			expectedError: "Invalid OTP",
		},
		{
			name:          "Missing Field",
			status:        http.StatusOK,
			payload:       map[string]interface{}{"message": "checked"},
			expectedError: "Invalid OTP",
		},
		{
			name:          "Backend Error",
			status:        http.StatusBadRequest,
			payload:       map[string]interface{}{"message": "OTP expired"},
			expectedError: "OTP expired",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := chi.NewRouter()
			router.Post("/Otp/verify", func(w http.ResponseWriter, r *http.Request) {
				httpclienttest.WriteJSON(w, tt.status, tt.payload)
			})
			backend := httpclienttest.NewBackend(t, router)
			service := NewOtpService(backend.Client, zap.NewNop())

			result := service.VerifyOtp(context.Background(), &requests.VerifyOtp{MobileNumber: "9876543210", Otp: "123456"})

			assert.Equal(t, tt.expectSuccess, result.Success)
			require.NotNil(t, result.Data)
			assert.Equal(t, tt.expectValid, result.Data.IsValid)
			assert.Equal(t, tt.expectedError, result.Error)
			assert.Equal(t, tt.expectedID, result.Data.PatientID.String())
		})
	}
}
