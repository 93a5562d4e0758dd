package utils

import (
	"context"
	"pharmacy-client/internal/pkg/constvars"
	"pharmacy-client/internal/pkg/exceptions"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, constvars.CONTEXT_REQUEST_ID_KEY, requestID)
}

func RequestIDFromContext(ctx context.Context) string {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	return requestID
}

// EnsureRequestID keeps the request id already in ctx or mints a new one, so
// one service call and every HTTP request it issues share the same id.
func EnsureRequestID(ctx context.Context) (context.Context, string) {
	if requestID := RequestIDFromContext(ctx); requestID != "" {
		return ctx, requestID
	}
	requestID := uuid.NewString()
	return ContextWithRequestID(ctx, requestID), requestID
}

// APIErrorFields flattens a normalized error into log fields.
func APIErrorFields(err error) []zap.Field {
	apiErr := exceptions.AsAPIError(err)
	if apiErr == nil {
		return nil
	}
	fields := []zap.Field{
		zap.String("message", apiErr.Message),
		zap.Int(constvars.LoggingStatusCodeKey, apiErr.Status),
	}
	if apiErr.Code != "" {
		fields = append(fields, zap.String(constvars.LoggingErrorCodeKey, apiErr.Code))
	}
	if apiErr.DevMessage != "" {
		fields = append(fields, zap.String("dev_message", apiErr.Dev()))
	}
	return fields
}
