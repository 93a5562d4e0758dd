package utils

import (
	"bytes"
	"pharmacy-client/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

// PayloadShape tags how the backend framed a response body.
type PayloadShape string

const (
	PayloadShapeEmpty   PayloadShape = "empty"
	PayloadShapeArray   PayloadShape = "array"
	PayloadShapeWrapped PayloadShape = "wrapped"
	PayloadShapeObject  PayloadShape = "object"
)

type wrappedPayload struct {
	Data json.RawMessage `json:"data"`
}

// envelopeKeys may sit next to "data" in a wrapper. Any other sibling key
// means "data" is a field of the model itself.
var envelopeKeys = map[string]bool{
	"data":       true,
	"success":    true,
	"message":    true,
	"error":      true,
	"errors":     true,
	"status":     true,
	"statusCode": true,
	"code":       true,
	"timestamp":  true,
	"count":      true,
	"total":      true,
	"totalCount": true,
	"page":       true,
	"pageSize":   true,
}

// DetectPayloadShape classifies body without decoding it into a model.
func DetectPayloadShape(body []byte) PayloadShape {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return PayloadShapeEmpty
	}
	switch trimmed[0] {
	case '[':
		return PayloadShapeArray
	case '{':
		if isWrapped(trimmed) {
			return PayloadShapeWrapped
		}
		return PayloadShapeObject
	}
	return PayloadShapeObject
}

func isWrapped(body []byte) bool {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return false
	}
	data := bytes.TrimSpace(fields["data"])
	if len(data) == 0 || (data[0] != '[' && data[0] != '{') {
		return false
	}
	for key := range fields {
		if !envelopeKeys[key] {
			return false
		}
	}
	return true
}

// DecodeList normalizes a bare array or a {data:[...]} wrapper into one slice.
// An empty body yields an empty, non nil slice.
func DecodeList[T any](body []byte, resource string) ([]T, PayloadShape, error) {
	shape := DetectPayloadShape(body)
	items := []T{}

	switch shape {
	case PayloadShapeEmpty:
		return items, shape, nil
	case PayloadShapeArray:
		if err := json.Unmarshal(body, &items); err != nil {
			return []T{}, shape, exceptions.ErrDecodeResponse(err, resource)
		}
	case PayloadShapeWrapped:
		var wrapped wrappedPayload
		if err := json.Unmarshal(body, &wrapped); err != nil {
			return []T{}, shape, exceptions.ErrDecodeResponse(err, resource)
		}
		if bytes.TrimSpace(wrapped.Data)[0] != '[' {
			return []T{}, shape, exceptions.ErrUnexpectedPayloadShape(resource)
		}
		if err := json.Unmarshal(wrapped.Data, &items); err != nil {
			return []T{}, shape, exceptions.ErrDecodeResponse(err, resource)
		}
	default:
		return []T{}, shape, exceptions.ErrUnexpectedPayloadShape(resource)
	}

	if items == nil {
		items = []T{}
	}
	return items, shape, nil
}

// DecodeObject decodes a bare object or one wrapped as {data:{...}}.
func DecodeObject[T any](body []byte, resource string) (*T, PayloadShape, error) {
	shape := DetectPayloadShape(body)
	result := new(T)

	switch shape {
	case PayloadShapeEmpty:
		return result, shape, nil
	case PayloadShapeObject:
		if err := json.Unmarshal(body, result); err != nil {
			return nil, shape, exceptions.ErrDecodeResponse(err, resource)
		}
	case PayloadShapeWrapped:
		var wrapped wrappedPayload
		if err := json.Unmarshal(body, &wrapped); err != nil {
			return nil, shape, exceptions.ErrDecodeResponse(err, resource)
		}
		if bytes.TrimSpace(wrapped.Data)[0] != '{' {
			return nil, shape, exceptions.ErrUnexpectedPayloadShape(resource)
		}
		if err := json.Unmarshal(wrapped.Data, result); err != nil {
			return nil, shape, exceptions.ErrDecodeResponse(err, resource)
		}
	default:
		return nil, shape, exceptions.ErrUnexpectedPayloadShape(resource)
	}
	return result, shape, nil
}

// DecodeMessage pulls a top level "message" out of body, if any.
func DecodeMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if DetectPayloadShape(body) == PayloadShapeEmpty {
		return ""
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	return payload.Message
}

// DecodeApplicationFailure reports whether a 2xx body is an application level
// rejection such as {"success":false,"message":"User already exists"}.
func DecodeApplicationFailure(body []byte) (string, bool) {
	if DetectPayloadShape(body) == PayloadShapeEmpty || bytes.TrimSpace(body)[0] != '{' {
		return "", false
	}
	var payload struct {
		Success *bool  `json:"success"`
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", false
	}
	if payload.Success == nil || *payload.Success {
		return "", false
	}
	return FirstNonEmpty(payload.Message, payload.Error), true
}
