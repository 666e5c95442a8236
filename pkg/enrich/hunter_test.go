package enrich

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHunterClient_FindEmail(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   LookupResult
	}{
		{"found with score", http.StatusOK, `{"data":{"email":"jane.smith@wired.com","score":85}}`,
			LookupResult{Email: "jane.smith@wired.com", Score: 85, Status: LookupFound}},
		{"found with confidence", http.StatusOK, `{"data":{"email":"jane.smith@wired.com","confidence":91}}`,
			LookupResult{Email: "jane.smith@wired.com", Score: 91, Status: LookupFound}},
		{"found with float score", http.StatusOK, `{"data":{"email":"jane.smith@wired.com","score":91.0}}`,
			LookupResult{Email: "jane.smith@wired.com", Score: 91, Status: LookupFound}},
		{"found with fractional confidence", http.StatusOK, `{"data":{"email":"jane.smith@wired.com","confidence":69.6}}`,
			LookupResult{Email: "jane.smith@wired.com", Score: 70, Status: LookupFound}},
		{"found without score", http.StatusOK, `{"data":{"email":"jane.smith@wired.com","score":null}}`,
			LookupResult{Email: "jane.smith@wired.com", Score: 0, Status: LookupFound}},
		{"no email", http.StatusOK, `{"data":{"email":null,"score":0}}`, LookupResult{Status: LookupNotFound}},
		{"no data", http.StatusOK, `{"errors":[{"id":"wrong_params"}]}`, LookupResult{Status: LookupNotFound}},
		{"bad json", http.StatusOK, `{not json`, LookupResult{Status: LookupNotFound}},
		{"unauthorized", http.StatusUnauthorized, `{"errors":[{"id":"authentication_failed"}]}`, LookupResult{Status: LookupAPIError}},
		{"rate limited", http.StatusTooManyRequests, `{"errors":[]}`, LookupResult{Status: LookupAPIError}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/v2/email-finder", r.URL.Path)
				assert.Equal(t, "Jane", r.URL.Query().Get("first_name"))
				assert.Equal(t, "van Smith", r.URL.Query().Get("last_name"))
				assert.Equal(t, "wired.com", r.URL.Query().Get("domain"))
				assert.Equal(t, "secret", r.URL.Query().Get("api_key"))
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer ts.Close()

			h := NewHunterClient(HunterConfig{Endpoint: ts.URL + "/", APIKey: "secret", Timeout: time.Second})
			assert.Equal(t, tt.want, h.FindEmail(context.Background(), "Jane", "van Smith", "wired.com"))
		})
	}
}

func TestHunterClient_MissingAPIKey(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer ts.Close()

	h := NewHunterClient(HunterConfig{Endpoint: ts.URL})
	res := h.FindEmail(context.Background(), "Jane", "Smith", "wired.com")
	assert.Equal(t, LookupResult{Status: LookupMissingAPIKey}, res)
	assert.Equal(t, int32(0), atomic.LoadInt32(&calls), "no network call without api key")
}

func TestHunterClient_TransportError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer ts.Close()

	h := NewHunterClient(HunterConfig{Endpoint: ts.URL, APIKey: "secret", Timeout: 50 * time.Millisecond})
	res := h.FindEmail(context.Background(), "Jane", "Smith", "wired.com")
	assert.Equal(t, LookupResult{Status: LookupNotFound}, res)
}

func TestHunterClient_Attempts(t *testing.T) {
	t.Run("retry transport failures", func(t *testing.T) {
		var calls int32
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if atomic.AddInt32(&calls, 1) == 1 {
				_, _ = w.Write([]byte(`{broken`))
				return
			}
			_, _ = w.Write([]byte(`{"data":{"email":"jane@wired.com","score":80}}`))
		}))
		defer ts.Close()

		h := NewHunterClient(HunterConfig{Endpoint: ts.URL, APIKey: "secret", Attempts: 2})
		res := h.FindEmail(context.Background(), "Jane", "Smith", "wired.com")
		assert.Equal(t, LookupResult{Email: "jane@wired.com", Score: 80, Status: LookupFound}, res)
		assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
	})

	t.Run("api errors not retried", func(t *testing.T) {
		var calls int32
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			w.WriteHeader(http.StatusBadRequest)
		}))
		defer ts.Close()

		h := NewHunterClient(HunterConfig{Endpoint: ts.URL, APIKey: "secret", Attempts: 3})
		res := h.FindEmail(context.Background(), "Jane", "Smith", "wired.com")
		assert.Equal(t, LookupAPIError, res.Status)
		assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	})

	t.Run("single attempt by default", func(t *testing.T) {
		var calls int32
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			_, _ = w.Write([]byte(`{broken`))
		}))
		defer ts.Close()

		h := NewHunterClient(HunterConfig{Endpoint: ts.URL, APIKey: "secret"})
		res := h.FindEmail(context.Background(), "Jane", "Smith", "wired.com")
		assert.Equal(t, LookupNotFound, res.Status)
		assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	})
}

func TestNewHunterClient_Defaults(t *testing.T) {
	h := NewHunterClient(HunterConfig{})
	require.NotNil(t, h)
	assert.Equal(t, DefaultEndpoint, h.endpoint)
	assert.Equal(t, 10*time.Second, h.client.Timeout)
	assert.Equal(t, 1, h.attempts)
}
