package main

import (
	"errors"
	"io"
	"pharmacy-client/internal/pkg/constvars"
	"pharmacy-client/internal/pkg/dto/responses"
	"pharmacy-client/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

// errCommandFailed is returned after the failure was already printed, so
// main only needs to set the exit code.
var errCommandFailed = errors.New("command failed")

func printJSON(w io.Writer, v interface{}) {
	encoded, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		encoded = []byte(`{"success":false,"error":"` + constvars.ErrClientGenericFailure + `"}`)
	}
	w.Write(append(encoded, '\n'))
}

func renderEnvelope[T any](w io.Writer, envelope responses.Envelope[T]) error {
	printJSON(w, envelope)
	if !envelope.Success {
		return errCommandFailed
	}
	return nil
}

// renderResult wraps a session manager result in the same envelope the
// services return.
func renderResult[T any](w io.Writer, data T, message string, err error) error {
	if err != nil {
		return renderEnvelope(w, responses.Envelope[any]{
			Success: false,
			Error:   exceptions.MessageOf(err, constvars.ErrClientGenericFailure),
		})
	}
	return renderEnvelope(w, responses.Envelope[T]{Success: true, Data: data, Message: message})
}
