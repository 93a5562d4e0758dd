package exceptions

import (
	"fmt"
	"pharmacy-client/internal/pkg/constvars"
)

var (
	ErrInputValidation = func(err error) *APIError {
		return newAPIError(err, 0, "", FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrInvalidArgument = func(err error) *APIError {
		return newAPIError(err, 0, "", err.Error(), constvars.ErrDevInvalidInput)
	}
	ErrCannotMarshalJSON = func(err error) *APIError {
		return newAPIError(err, 0, "", constvars.ErrClientGenericFailure, constvars.ErrDevCannotMarshalJSON)
	}
	ErrCannotParseJSON = func(err error) *APIError {
		return newAPIError(err, 0, "", constvars.ErrClientGenericFailure, constvars.ErrDevCannotParseJSON)
	}

	// HTTP
	ErrCreateHTTPRequest = func(err error) *APIError {
		return newAPIError(err, 0, "", constvars.ErrClientCannotProcessRequest, constvars.ErrDevCreateHTTPRequest)
	}
	ErrBuildMultipart = func(err error) *APIError {
		return newAPIError(err, 0, "", constvars.ErrClientCannotProcessRequest, constvars.ErrDevBuildMultipart)
	}
	ErrTransport = func(err error, code string) *APIError {
		message := constvars.ErrClientGenericFailure
		if err != nil && err.Error() != "" {
			message = err.Error()
		}
		return newAPIError(err, 0, code, message, constvars.ErrDevSendHTTPRequest)
	}
	ErrHTTPStatus = func(status int, code, message string, details interface{}) *APIError {
		apiErr := newAPIError(nil, status, code, message, fmt.Sprintf(constvars.ErrDevHTTPStatus, status))
		apiErr.Details = details
		return apiErr
	}
	ErrDecodeResponse = func(err error, resource string) *APIError {
		return newAPIError(err, 0, "", constvars.ErrClientGenericFailure, fmt.Sprintf(constvars.ErrDevDecodeResponse, resource))
	}
	ErrUnexpectedPayloadShape = func(resource string) *APIError {
		return newAPIError(nil, 0, "", constvars.ErrClientGenericFailure, fmt.Sprintf(constvars.ErrDevUnexpectedPayloadShape, resource))
	}

	// Key/value storage
	ErrKeyValueGet = func(err error, key string) *APIError {
		return newAPIError(err, 0, "", constvars.ErrClientGenericFailure, fmt.Sprintf(constvars.ErrDevKeyValueGet, key))
	}
	ErrKeyValueSet = func(err error, key string) *APIError {
		return newAPIError(err, 0, "", constvars.ErrClientGenericFailure, fmt.Sprintf(constvars.ErrDevKeyValueSet, key))
	}
	ErrKeyValueDelete = func(err error) *APIError {
		return newAPIError(err, 0, "", constvars.ErrClientGenericFailure, constvars.ErrDevKeyValueDelete)
	}

	// Minio
	ErrMinioCreateObject = func(err error, bucketName string) *APIError {
		return newAPIError(err, 0, "", constvars.ErrClientGenericFailure, fmt.Sprintf(constvars.ErrDevMinioFailedToCreateObject, bucketName))
	}

	// Session
	ErrOperationFailed = func(operation, clientMessage string) *APIError {
		return newAPIError(nil, 0, "", clientMessage, fmt.Sprintf(constvars.ErrDevOperationFailed, operation))
	}
	ErrNotAuthenticated = func() *APIError {
		return newAPIError(nil, constvars.StatusUnauthorized, "", constvars.ErrClientNotLoggedIn, constvars.ErrDevNotAuthenticated)
	}
	ErrNoPendingOtp = func() *APIError {
		return newAPIError(nil, 0, "", constvars.ErrClientNoPendingOtp, constvars.ErrDevNoPendingOtp)
	}
	ErrBiometricUnsupported = func() *APIError {
		return newAPIError(nil, 0, "", constvars.ErrClientBiometricUnsupported, constvars.ErrDevBiometricUnsupported)
	}
	ErrBiometricUnavailable = func() *APIError {
		return newAPIError(nil, 0, "", constvars.ErrClientBiometricUnavailable, constvars.ErrDevBiometricUnavailable)
	}
	ErrBiometricFailed = func(err error) *APIError {
		return newAPIError(err, 0, "", constvars.ErrClientBiometricFailed, constvars.ErrDevBiometricFailed)
	}
)
