package httpclient

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"pharmacy-client/internal/app/contracts"
	"pharmacy-client/internal/pkg/constvars"
	"pharmacy-client/internal/pkg/exceptions"
	"pharmacy-client/internal/pkg/utils"
	"sync"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// authInterceptor attaches the stored bearer token to outgoing requests.
type authInterceptor struct {
	store contracts.KeyValueStore
	log   *zap.Logger
}

func (a *authInterceptor) InterceptRequest(ctx context.Context, req *http.Request) {
	token := a.readToken(ctx)
	if token == "" {
		return
	}
	req.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+token)
}

func (a *authInterceptor) readToken(ctx context.Context) string {
	for _, key := range constvars.TokenStorageKeys {
		token, err := a.store.Get(ctx, key)
		if err != nil {
			a.log.Warn("authInterceptor.readToken cannot read token, sending unauthenticated",
				zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
				zap.String(constvars.LoggingStorageKey, key),
				zap.Error(err),
			)
			continue
		}
		if token != "" {
			return token
		}
	}
	return ""
}

// errorInterceptor normalizes failures and tears the session down on the
// first 401 of a request.
type errorInterceptor struct {
	store contracts.KeyValueStore
	log   *zap.Logger

	mu        sync.RWMutex
	navigator contracts.Navigator
}

func (e *errorInterceptor) setNavigator(navigator contracts.Navigator) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.navigator = navigator
}

func (e *errorInterceptor) currentNavigator() contracts.Navigator {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.navigator
}

func (e *errorInterceptor) InterceptResponse(ctx context.Context, resp *Response) *Response {
	return resp
}

// InterceptError always returns an *exceptions.APIError. resp is nil for
// transport failures.
func (e *errorInterceptor) InterceptError(ctx context.Context, request *Request, resp *Response, cause error) error {
	requestID := utils.RequestIDFromContext(ctx)

	if resp != nil {
		switch resp.StatusCode {
		case constvars.StatusUnauthorized:
			if !request.Retry {
				request.Retry = true
				e.expireSession(ctx)
			}
		case constvars.StatusForbidden:
			e.log.Warn("errorInterceptor.InterceptError access forbidden",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingURLKey, request.Path),
			)
		}
		return normalizeHTTPError(resp)
	}

	return normalizeTransportError(cause)
}

// expireSession clears both token keys and asks the navigator to show the
// login screen. The error is still returned to the caller afterwards.
func (e *errorInterceptor) expireSession(ctx context.Context) {
	requestID := utils.RequestIDFromContext(ctx)
	e.log.Info("errorInterceptor.expireSession unauthorized, clearing session",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	err := e.store.Delete(ctx, constvars.TokenStorageKeys...)
	if err != nil {
		e.log.Error("errorInterceptor.expireSession cannot clear token keys",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	if navigator := e.currentNavigator(); navigator != nil {
		navigator.RedirectToLogin(ctx)
	}
}

func normalizeHTTPError(resp *Response) *exceptions.APIError {
	code := constvars.ErrCodeBadRequest
	if resp.StatusCode >= constvars.StatusInternalServerError {
		code = constvars.ErrCodeBadResponse
	}
	message := fmt.Sprintf(constvars.ErrClientRequestFailedFormat, resp.StatusCode)

	var details interface{}
	if len(resp.Body) > 0 {
		var payload interface{}
		if err := json.Unmarshal(resp.Body, &payload); err == nil {
			details = payload
			if object, ok := payload.(map[string]interface{}); ok {
				if backendMessage := firstString(object, "message", "error", "title"); backendMessage != "" {
					message = backendMessage
				}
				if backendCode := stringify(object["code"]); backendCode != "" {
					code = backendCode
				}
			}
		} else {
			details = string(resp.Body)
		}
	}

	return exceptions.ErrHTTPStatus(resp.StatusCode, code, message, details)
}

func normalizeTransportError(cause error) *exceptions.APIError {
	code := constvars.ErrCodeNetwork
	var netErr net.Error
	if errors.Is(cause, context.DeadlineExceeded) || (errors.As(cause, &netErr) && netErr.Timeout()) {
		code = constvars.ErrCodeTimeout
	}

	var urlErr *url.Error
	if errors.As(cause, &urlErr) && urlErr.Err != nil {
		return exceptions.ErrTransport(urlErr.Err, code)
	}
	return exceptions.ErrTransport(cause, code)
}

func firstString(object map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		if value, ok := object[key].(string); ok && value != "" {
			return value
		}
	}
	return ""
}

func stringify(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return fmt.Sprintf("%v", v)
	default:
		return ""
	}
}
