package exceptions

import (
	"errors"
	"fmt"
	"pharmacy-client/internal/pkg/constvars"
	"runtime"
)

// APIError is the normalized error every failed backend call resolves to.
// Status is zero for transport failures.
type APIError struct {
	Message    string      `json:"message"`
	Code       string      `json:"code,omitempty"`
	Status     int         `json:"status,omitempty"`
	Details    interface{} `json:"details,omitempty"`
	DevMessage string      `json:"-"`
	Location   Location    `json:"-"`
}

type Location struct {
	File         string
	Line         int
	FunctionName string
}

func (e *APIError) Error() string {
	return e.Message
}

// Dev returns the developer facing description with the capture location.
func (e *APIError) Dev() string {
	return fmt.Sprintf("%s (%s:%d %s)", e.DevMessage, e.Location.File, e.Location.Line, e.Location.FunctionName)
}

func (e *APIError) IsTransport() bool {
	return e.Status == 0
}

// AsAPIError unwraps err into an *APIError, wrapping foreign errors with the
// generic client message.
func AsAPIError(err error) *APIError {
	if err == nil {
		return nil
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return &APIError{
		Message:    err.Error(),
		DevMessage: err.Error(),
		Location:   getLocation(2),
	}
}

// MessageOf resolves the user facing message of err, or fallback when err
// carries none.
func MessageOf(err error, fallback string) string {
	apiErr := AsAPIError(err)
	if apiErr == nil || apiErr.Message == "" {
		return fallback
	}
	return apiErr.Message
}

func newAPIError(err error, status int, code, clientMessage, devMessage string) *APIError {
	if err != nil {
		devMessage = fmt.Sprintf("%s: %s", devMessage, err.Error())
	}
	return &APIError{
		Message:    clientMessage,
		Code:       code,
		Status:     status,
		DevMessage: devMessage,
		Location:   getLocation(3),
	}
}

func getLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{
			File:         constvars.ResponseUnknown,
			Line:         0,
			FunctionName: constvars.ResponseUnknown,
		}
	}
	function := runtime.FuncForPC(pc).Name()
	return Location{
		File:         file,
		Line:         line,
		FunctionName: function,
	}
}
