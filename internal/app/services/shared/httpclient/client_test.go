package httpclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"pharmacy-client/internal/app/contracts"
	"pharmacy-client/internal/app/services/shared/keyvalue"
	"pharmacy-client/internal/pkg/constvars"
	"pharmacy-client/internal/pkg/exceptions"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fixture struct {
	server    *httptest.Server
	client    *Client
	store     contracts.KeyValueStore
	redirects *int32
}

func newFixture(t *testing.T, router chi.Router, timeout time.Duration) *fixture {
	t.Helper()
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	var redirects int32
	store := keyvalue.NewMemoryStore()
	client := NewClient(Options{
		BaseUrl:     server.URL,
		Timeout:     timeout,
		Development: true,
		Store:       store,
	}, zap.NewNop())
	client.SetNavigator(contracts.NavigatorFunc(func(ctx context.Context) {
		atomic.AddInt32(&redirects, 1)
	}))

	return &fixture{server: server, client: client, store: store, redirects: &redirects}
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func TestClient_BearerToken(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/echo", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"authorization": r.Header.Get(constvars.HeaderAuthorization),
			"requestId":     r.Header.Get(constvars.HeaderXRequestID),
			"accept":        r.Header.Get(constvars.HeaderAccept),
		})
	})
	f := newFixture(t, router, 0)
	ctx := context.Background()

	tests := []struct {
		name     string
		setup    map[string]string
		expected string
	}{
		{name: "No Token", setup: map[string]string{}, expected: ""},
		{name: "Legacy Token Only", setup: map[string]string{"token": "legacy"}, expected: "Bearer legacy"},
		{name: "Auth Token Wins", setup: map[string]string{"auth_token": "fresh", "token": "legacy"}, expected: "Bearer fresh"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, f.store.Delete(ctx, constvars.TokenStorageKeys...))
			for key, value := range tt.setup {
				require.NoError(t, f.store.Set(ctx, key, value))
			}

			resp, err := f.client.Get(ctx, &Request{Path: "/echo"})
			require.NoError(t, err)

			var echoed map[string]string
			require.NoError(t, resp.Decode(&echoed))
			assert.Equal(t, tt.expected, echoed["authorization"])
			assert.NotEmpty(t, echoed["requestId"])
			assert.Equal(t, constvars.MIMEApplicationJSON, echoed["accept"])
		})
	}
}

func TestClient_JSONBodyAndQuery(t *testing.T) {
	router := chi.NewRouter()
	router.Post("/Inventory/SaveInventoryItem", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]interface{}
		_ = json.NewDecoder(r.Body).Decode(&body)
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"contentType": r.Header.Get(constvars.HeaderContentType),
			"userId":      r.URL.Query().Get("userId"),
			"body":        body,
		})
	})
	f := newFixture(t, router, 0)

	resp, err := f.client.Post(context.Background(), &Request{
		Path:  "/Inventory/SaveInventoryItem",
		Query: url.Values{"userId": []string{"7"}},
		Body:  map[string]string{"medicineName": "Paracetamol"},
	})
	require.NoError(t, err)

	var echoed struct {
		ContentType string            `json:"contentType"`
		UserID      string            `json:"userId"`
		Body        map[string]string `json:"body"`
	}
	require.NoError(t, resp.Decode(&echoed))
	assert.Equal(t, constvars.MIMEApplicationJSON, echoed.ContentType)
	assert.Equal(t, "7", echoed.UserID)
	assert.Equal(t, "Paracetamol", echoed.Body["medicineName"])
}

func TestClient_Unauthorized(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/protected", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Session expired"})
	})
	f := newFixture(t, router, 0)
	ctx := context.Background()

	require.NoError(t, f.store.Set(ctx, constvars.StorageKeyAuthToken, "abc"))
	require.NoError(t, f.store.Set(ctx, constvars.StorageKeyLegacyToken, "abc"))
	require.NoError(t, f.store.Set(ctx, constvars.StorageKeyUsername, "admin"))

	req := &Request{Path: "/protected"}
	_, err := f.client.Get(ctx, req)
	require.Error(t, err)

	apiErr := exceptions.AsAPIError(err)
	assert.Equal(t, "Session expired", apiErr.Message)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.True(t, req.Retry)
	assert.Equal(t, int32(1), atomic.LoadInt32(f.redirects))

	for _, key := range constvars.TokenStorageKeys {
		value, err := f.store.Get(ctx, key)
		require.NoError(t, err)
		assert.Empty(t, value, key)
	}
	username, _ := f.store.Get(ctx, constvars.StorageKeyUsername)
	assert.Equal(t, "admin", username, "only token keys are cleared on 401")

	t.Run("Retried Request Is Not Handled Twice", func(t *testing.T) {
		require.NoError(t, f.store.Set(ctx, constvars.StorageKeyAuthToken, "again"))

		_, err := f.client.Get(ctx, req)
		require.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, exceptions.AsAPIError(err).Status)
		assert.Equal(t, int32(1), atomic.LoadInt32(f.redirects))

		token, _ := f.store.Get(ctx, constvars.StorageKeyAuthToken)
		assert.Equal(t, "again", token)
	})
}

func TestClient_Forbidden(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/admin-only", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})
	f := newFixture(t, router, 0)
	ctx := context.Background()
	require.NoError(t, f.store.Set(ctx, constvars.StorageKeyAuthToken, "abc"))

	_, err := f.client.Get(ctx, &Request{Path: "/admin-only"})
	require.Error(t, err)

	apiErr := exceptions.AsAPIError(err)
	assert.Equal(t, http.StatusForbidden, apiErr.Status)
	assert.Equal(t, "Request failed with status code 403", apiErr.Message)
	assert.Equal(t, constvars.ErrCodeBadRequest, apiErr.Code)
	assert.Equal(t, int32(0), atomic.LoadInt32(f.redirects))

	token, _ := f.store.Get(ctx, constvars.StorageKeyAuthToken)
	assert.Equal(t, "abc", token)
}

func TestClient_ErrorNormalization(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/backend-message", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{"message": "Medicine name is required", "code": "VALIDATION"})
	})
	router.Get("/backend-title", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]interface{}{"title": "Not Found", "status": 404})
	})
	router.Get("/plain-text", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = io.WriteString(w, "upstream down")
	})
	router.Get("/empty", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	f := newFixture(t, router, 0)

	tests := []struct {
		name            string
		path            string
		expectedMessage string
		expectedCode    string
		expectedStatus  int
		expectDetails   bool
	}{
		{
			name:            "Backend Message And Code",
			path:            "/backend-message",
			expectedMessage: "Medicine name is required",
			expectedCode:    "VALIDATION",
			expectedStatus:  http.StatusBadRequest,
			expectDetails:   true,
		},
		{
			name:            "Problem Details Title",
			path:            "/backend-title",
			expectedMessage: "Not Found",
			expectedCode:    constvars.ErrCodeBadRequest,
			expectedStatus:  http.StatusNotFound,
			expectDetails:   true,
		},
		{
			name:            "Non JSON Body",
			path:            "/plain-text",
			expectedMessage: "Request failed with status code 502",
			expectedCode:    constvars.ErrCodeBadResponse,
			expectedStatus:  http.StatusBadGateway,
			expectDetails:   true,
		},
		{
			name:            "Empty Body",
			path:            "/empty",
			expectedMessage: "Request failed with status code 500",
			expectedCode:    constvars.ErrCodeBadResponse,
			expectedStatus:  http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.client.Get(context.Background(), &Request{Path: tt.path})
			require.Error(t, err)

			apiErr := exceptions.AsAPIError(err)
			assert.Equal(t, tt.expectedMessage, apiErr.Message)
			assert.Equal(t, tt.expectedCode, apiErr.Code)
			assert.Equal(t, tt.expectedStatus, apiErr.Status)
			if tt.expectDetails {
				assert.NotNil(t, apiErr.Details)
			} else {
				assert.Nil(t, apiErr.Details)
			}
		})
	}
}

func TestClient_TransportErrors(t *testing.T) {
	t.Run("Connection Refused", func(t *testing.T) {
		server := httptest.NewServer(http.NotFoundHandler())
		baseUrl := server.URL
		server.Close()

		client := NewClient(Options{BaseUrl: baseUrl, Store: keyvalue.NewMemoryStore()}, zap.NewNop())
		_, err := client.Get(context.Background(), &Request{Path: "/Inventory/GetInventoryList"})
		require.Error(t, err)

		apiErr := exceptions.AsAPIError(err)
		assert.Equal(t, constvars.ErrCodeNetwork, apiErr.Code)
		assert.True(t, apiErr.IsTransport())
		assert.NotEmpty(t, apiErr.Message)
	})

	t.Run("Timeout", func(t *testing.T) {
		release := make(chan struct{})
		router := chi.NewRouter()
		router.Get("/slow", func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-release:
			case <-r.Context().Done():
			}
		})
		f := newFixture(t, router, 50*time.Millisecond)
		defer close(release)

		_, err := f.client.Get(context.Background(), &Request{Path: "/slow"})
		require.Error(t, err)

		apiErr := exceptions.AsAPIError(err)
		assert.Equal(t, constvars.ErrCodeTimeout, apiErr.Code)
		assert.Equal(t, 0, apiErr.Status)
	})
}

func TestClient_PostMultipart(t *testing.T) {
	router := chi.NewRouter()
	router.Post("/api/Prescription/upload", func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": err.Error()})
			return
		}
		file, header, err := r.FormFile(constvars.MultipartFieldFile)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": err.Error()})
			return
		}
		defer file.Close()
		content, _ := io.ReadAll(file)
		writeJSON(w, http.StatusOK, map[string]string{
			"patientId":   r.FormValue(constvars.MultipartFieldPatientID),
			"fileName":    header.Filename,
			"contentType": header.Header.Get(constvars.HeaderContentType),
			"content":     string(content),
		})
	})
	f := newFixture(t, router, 0)

	resp, err := f.client.PostMultipart(context.Background(), &Request{Path: "/api/Prescription/upload"}, &MultipartBody{
		Fields: map[string]string{constvars.MultipartFieldPatientID: "12"},
		Files: []MultipartFile{{
			FieldName:   constvars.MultipartFieldFile,
			FileName:    "rx.pdf",
			ContentType: "application/pdf",
			Content:     []byte("%PDF-1.4"),
		}},
	})
	require.NoError(t, err)

	var echoed map[string]string
	require.NoError(t, resp.Decode(&echoed))
	assert.Equal(t, "12", echoed["patientId"])
	assert.Equal(t, "rx.pdf", echoed["fileName"])
	assert.Equal(t, "application/pdf", echoed["contentType"])
	assert.Equal(t, "%PDF-1.4", echoed["content"])
}
