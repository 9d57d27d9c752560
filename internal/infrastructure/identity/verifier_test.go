package identity

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func newLookupServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_VerifyPhoneToken(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		srv := newLookupServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/v1/accounts:lookup", r.URL.Path)
			assert.Equal(t, "test-key", r.URL.Query().Get("key"))

			body, _ := io.ReadAll(r.Body)
			assert.JSONEq(t, `{"idToken":"good-token"}`, string(body))

			json.NewEncoder(w).Encode(map[string]any{
				"users": []map[string]string{
					{"localId": "abc", "phoneNumber": "+15551234567"},
				},
			})
		})

		client := NewClient(srv.URL, "test-key", slog.Default())
		err := client.VerifyPhoneToken(context.Background(), "good-token", "+15551234567")

		assert.NoError(t, err)
	})

	t.Run("provider rejects the token", func(t *testing.T) {
		srv := newLookupServer(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
		})

		client := NewClient(srv.URL, "test-key", slog.Default())
		err := client.VerifyPhoneToken(context.Background(), "bad-token", "+15551234567")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "rejected")
	})

	t.Run("phone number mismatch", func(t *testing.T) {
		srv := newLookupServer(t, func(w http.ResponseWriter, _ *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{
				"users": []map[string]string{
					{"localId": "abc", "phoneNumber": "+15550000000"},
				},
			})
		})

		client := NewClient(srv.URL, "test-key", slog.Default())
		err := client.VerifyPhoneToken(context.Background(), "good-token", "+15551234567")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "not issued for this phone number")
	})

	t.Run("token resolves to no account", func(t *testing.T) {
		srv := newLookupServer(t, func(w http.ResponseWriter, _ *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{"users": []any{}})
		})

		client := NewClient(srv.URL, "test-key", slog.Default())
		err := client.VerifyPhoneToken(context.Background(), "orphan-token", "+15551234567")

		assert.Error(t, err)
	})

	t.Run("provider unreachable", func(t *testing.T) {
		client := NewClient("http://127.0.0.1:1", "test-key", slog.Default())
		err := client.VerifyPhoneToken(context.Background(), "token", "+15551234567")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "unreachable")
	})
}

func TestNewClient_DefaultEndpoint(t *testing.T) {
	client := NewClient("", "key", slog.Default())
	assert.Equal(t, DefaultEndpoint, client.endpoint)
}
