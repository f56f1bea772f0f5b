package geocode

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/RoxyKang/share-my-place-backend/internal/config"
	"github.com/RoxyKang/share-my-place-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testAPIKey  = "test-geocoding-key"
	esbAddress  = "20 W 34th St, New York, NY 10001"
	esbResponse = `{"status":"OK","results":[{"geometry":{"location":{"lat":40.7484474,"lng":-73.9871516}}}]}`
)

func testConfig(baseURL string) config.GeocodingConfig {
	return config.GeocodingConfig{
		APIKey:           testAPIKey,
		BaseURL:          baseURL,
		TimeoutSeconds:   2,
		MaxRetries:       2,
		RetryDelayMillis: 1,
	}
}

// newTestClient starts a server that answers with the given status codes and
// bodies in order, repeating the last pair once the list is exhausted.
func newTestClient(t *testing.T, codes []int, bodies []string) (*Client, *int32) {
	t.Helper()
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		i := int(atomic.AddInt32(&calls, 1)) - 1
		if i >= len(codes) {
			i = len(codes) - 1
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(codes[i])
		_, _ = fmt.Fprint(w, bodies[i])
	}))
	t.Cleanup(srv.Close)

	client, err := NewClient(testConfig(srv.URL), nil)
	require.NoError(t, err)
	return client, &calls
}

func TestNewClient_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*config.GeocodingConfig)
	}{
		{name: "missing key", mutate: func(c *config.GeocodingConfig) { c.APIKey = "" }},
		{name: "missing base URL", mutate: func(c *config.GeocodingConfig) { c.BaseURL = "" }},
		{name: "zero timeout", mutate: func(c *config.GeocodingConfig) { c.TimeoutSeconds = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig("https://maps.example.test/geocode/json")
			tt.mutate(&cfg)
			_, err := NewClient(cfg, nil)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestResolve_SendsAddressAndKey(t *testing.T) {
	t.Parallel()

	var gotAddress, gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAddress = r.URL.Query().Get("address")
		gotKey = r.URL.Query().Get("key")
		_, _ = fmt.Fprint(w, esbResponse)
	}))
	t.Cleanup(srv.Close)

	client, err := NewClient(testConfig(srv.URL), nil)
	require.NoError(t, err)

	location, err := client.Resolve(context.Background(), esbAddress)
	require.NoError(t, err)

	assert.Equal(t, domain.Location{Lat: 40.7484474, Lng: -73.9871516}, location)
	assert.Equal(t, esbAddress, gotAddress)
	assert.Equal(t, testAPIKey, gotKey)
}

func TestResolve_AddressNotFound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{name: "zero results", body: `{"status":"ZERO_RESULTS","results":[]}`},
		{name: "ok without results", body: `{"status":"OK","results":[]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, calls := newTestClient(t, []int{http.StatusOK}, []string{tt.body})

			_, err := client.Resolve(context.Background(), "nowhere at all")
			assert.ErrorIs(t, err, domain.ErrAddressNotFound)
			assert.EqualValues(t, 1, atomic.LoadInt32(calls), "not-found is not retried")
		})
	}
}

func TestResolve_RetriesTransientFailures(t *testing.T) {
	t.Parallel()

	client, calls := newTestClient(t,
		[]int{http.StatusServiceUnavailable, http.StatusOK, http.StatusOK},
		[]string{`{}`, `{"status":"OVER_QUERY_LIMIT"}`, esbResponse},
	)

	location, err := client.Resolve(context.Background(), esbAddress)
	require.NoError(t, err)
	assert.Equal(t, 40.7484474, location.Lat)
	assert.EqualValues(t, 3, atomic.LoadInt32(calls))
}

func TestResolve_RetriesExhausted(t *testing.T) {
	t.Parallel()

	client, calls := newTestClient(t, []int{http.StatusOK}, []string{`{"status":"UNKNOWN_ERROR"}`})

	_, err := client.Resolve(context.Background(), esbAddress)
	assert.ErrorIs(t, err, ErrTransientFailure)
	assert.EqualValues(t, 3, atomic.LoadInt32(calls), "one call plus two retries")
}

func TestResolve_PermanentFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		code    int
		body    string
		wantErr error
	}{
		{name: "request denied", code: http.StatusOK, body: `{"status":"REQUEST_DENIED","error_message":"bad key"}`, wantErr: ErrRequestRejected},
		{name: "invalid request", code: http.StatusOK, body: `{"status":"INVALID_REQUEST"}`, wantErr: ErrRequestRejected},
		{name: "http 403", code: http.StatusForbidden, body: `{}`, wantErr: ErrRequestRejected},
		{name: "malformed body", code: http.StatusOK, body: `not json`, wantErr: ErrInvalidResponse},
		{name: "unknown status", code: http.StatusOK, body: `{"status":"SOMETHING_NEW"}`, wantErr: ErrInvalidResponse},
		{
			name:    "out of range location",
			code:    http.StatusOK,
			body:    `{"status":"OK","results":[{"geometry":{"location":{"lat":123,"lng":0}}}]}`,
			wantErr: ErrInvalidResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, calls := newTestClient(t, []int{tt.code}, []string{tt.body})

			_, err := client.Resolve(context.Background(), esbAddress)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.EqualValues(t, 1, atomic.LoadInt32(calls))
		})
	}
}

func TestResolve_TransportErrorHidesKey(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := srv.URL
	srv.Close()

	cfg := testConfig(baseURL)
	cfg.MaxRetries = 0
	client, err := NewClient(cfg, nil)
	require.NoError(t, err)

	_, err = client.Resolve(context.Background(), esbAddress)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransientFailure)
	assert.NotContains(t, err.Error(), testAPIKey)
}

func TestResolve_CancelledContext(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, []int{http.StatusOK}, []string{esbResponse})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Resolve(ctx, esbAddress)
	assert.Error(t, err)
}

func TestBackoff_Bounds(t *testing.T) {
	t.Parallel()

	client := &Client{retryDelay: 100}
	for attempt := 0; attempt < 4; attempt++ {
		base := 100 << attempt
		d := int(client.backoff(attempt))
		assert.GreaterOrEqual(t, d, base/2)
		assert.Less(t, d, base)
	}
}
