package server

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/MinesocBot_Go/internal/domain"
	"github.com/osse101/MinesocBot_Go/internal/leveling"
)

type mockPool struct {
	mock.Mock
}

func (m *mockPool) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *mockPool) Close() {}

func newTestRouter(apiKey string) (http.Handler, *leveling.MockService, *mockPool) {
	svc := new(leveling.MockService)
	pool := new(mockPool)
	pool.On("Ping", mock.Anything).Return(nil)
	return NewRouter(Config{APIKey: apiKey, Version: "test"}, Deps{DB: pool, Leveling: svc}), svc, pool
}

func TestRouter_HealthEndpoints(t *testing.T) {
	router, _, _ := newTestRouter("key")

	for _, path := range []string{"/healthz", "/readyz", "/version", "/metrics"} {
		t.Run(path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestRouter_APIRequiresKey(t *testing.T) {
	router, svc, _ := newTestRouter("key")
	path := "/api/v1/guilds/900000000000000001/members/800000000000000001"

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	svc.On("MemberRank", mock.Anything, int64(900000000000000001), int64(800000000000000001)).
		Return(nil, fmt.Errorf("lookup: %w", domain.ErrNotFound))

	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set(HeaderAPIKey, "key")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	svc.AssertExpectations(t)
}

func TestRouter_EventsRouteOnlyWithEventLog(t *testing.T) {
	router, _, _ := newTestRouter("")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/guilds/900000000000000001/events", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	router, _, _ := newTestRouter("")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	expected := map[string]string{
		HeaderContentType:    HeaderValueNoSniff,
		HeaderFrameOptions:   HeaderValueSameOrigin,
		HeaderXSSProtection:  HeaderValueXSSBlock,
		HeaderReferrerPolicy: HeaderValueReferrerStrictOrigin,
	}
	for header, want := range expected {
		assert.Equal(t, want, rec.Header().Get(header), header)
	}
}
