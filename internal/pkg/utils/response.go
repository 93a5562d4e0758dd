package utils

import (
	"pharmacy-client/internal/pkg/dto/responses"
	"pharmacy-client/internal/pkg/exceptions"
)

func BuildSuccessEnvelope[T any](data T, message string) responses.Envelope[T] {
	return responses.Envelope[T]{
		Success: true,
		Data:    data,
		Message: message,
	}
}

// BuildErrorEnvelope maps err to a failed envelope carrying the safe default
// data. The message comes from the normalized error, else fallback.
func BuildErrorEnvelope[T any](data T, err error, fallback string) responses.Envelope[T] {
	return responses.Envelope[T]{
		Success: false,
		Data:    data,
		Error:   exceptions.MessageOf(err, fallback),
	}
}

// FirstNonEmpty returns the first non blank message.
func FirstNonEmpty(messages ...string) string {
	for _, message := range messages {
		if message != "" {
			return message
		}
	}
	return ""
}
