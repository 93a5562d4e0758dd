// Package httpclienttest runs a chi router as a stand-in backend for service
// tests.
package httpclienttest

import (
	"net/http"
	"net/http/httptest"
	"pharmacy-client/internal/app/contracts"
	"pharmacy-client/internal/app/services/shared/httpclient"
	"pharmacy-client/internal/app/services/shared/keyvalue"
	"pharmacy-client/internal/pkg/constvars"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type Backend struct {
	Server *httptest.Server
	Client *httpclient.Client
	Store  contracts.KeyValueStore
}

func NewBackend(t *testing.T, router chi.Router) *Backend {
	t.Helper()
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	store := keyvalue.NewMemoryStore()
	client := httpclient.NewClient(httpclient.Options{
		BaseUrl: server.URL,
		Store:   store,
	}, zap.NewNop())

	return &Backend{Server: server, Client: client, Store: store}
}

func WriteJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// ReadJSON decodes the request body into v, ignoring errors.
func ReadJSON(r *http.Request, v interface{}) {
	_ = json.NewDecoder(r.Body).Decode(v)
}
