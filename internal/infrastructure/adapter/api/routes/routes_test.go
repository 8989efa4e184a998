package routes

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/amirhossein-jamali/linkledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/linkledger/internal/domain/error"
	"github.com/amirhossein-jamali/linkledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/linkledger/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/linkledger/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/linkledger/internal/infrastructure/adapter/logger"
	timeprovider "github.com/amirhossein-jamali/linkledger/internal/infrastructure/adapter/time"
	mgateway "github.com/amirhossein-jamali/linkledger/mocks/port/gateway"
	mpers "github.com/amirhossein-jamali/linkledger/mocks/port/persistence"
	muse "github.com/amirhossein-jamali/linkledger/mocks/port/usecase"
)

type pinger struct{ err error }

func (p pinger) Ping(context.Context) error { return p.err }

type rejectAll struct{}

func (rejectAll) VerifySignature([]byte, string) bool { return false }

type routerFixture struct {
	router *gin.Engine
	admin  *muse.MockAdminUseCase
	store  *mpers.MockRateLimitRepository
	db     *pinger
}

func newRouterFixture(t *testing.T, role entity.Role) *routerFixture {
	gin.SetMode(gin.TestMode)
	log := logger.NewNoopLogger()
	clock := timeprovider.NewFixedTimeProvider(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))

	caller, _ := entity.NewUser("user-1", "ops@example.com", "ops", role, clock)
	verifier := mgateway.NewMockIdentityVerifier(t)
	verifier.EXPECT().Verify(mock.Anything, "tok").
		Return(&entity.Identity{Subject: "user-1", Email: "ops@example.com"}, nil).Maybe()
	users := muse.NewMockUserUseCase(t)
	users.EXPECT().EnsureUser(mock.Anything, mock.Anything).Return(caller, nil).Maybe()

	f := &routerFixture{
		admin: muse.NewMockAdminUseCase(t),
		store: mpers.NewMockRateLimitRepository(t),
		db:    &pinger{},
	}
	reg := prometheus.NewRegistry()
	httpMetrics := middleware.NewHTTPMetrics(reg)

	f.router = gin.New()
	SetupMiddlewares(f.router, log, httpMetrics, nil)
	SetupRoutes(f.router, Handlers{
		User:        handler.NewUserHandler(users, muse.NewMockBonusUseCase(t), log),
		Link:        handler.NewLinkHandler(muse.NewMockLinkUseCase(t), log),
		Transaction: handler.NewTransactionHandler(muse.NewMockPaymentUseCase(t), users, rejectAll{}, log),
		Admin:       handler.NewAdminHandler(f.admin, log),
		Health:      handler.NewHealthHandler(f.db, log),
	}, Guards{
		Auth:           middleware.RequireUser(verifier, users, log),
		AdminRateLimit: middleware.RateLimit(f.store, "admin", 20, time.Minute, clock, log),
	}, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	return f
}

func (f *routerFixture) get(path string, authed bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authed {
		req.Header.Set("Authorization", "Bearer tok")
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	f := newRouterFixture(t, entity.RoleUser)
	assert.Equal(t, http.StatusOK, f.get("/healthz", false).Code)

	f.db.err = errors.New("connection refused")
	assert.Equal(t, http.StatusServiceUnavailable, f.get("/healthz", false).Code)
}

func TestMetricsEndpoint(t *testing.T) {
	f := newRouterFixture(t, entity.RoleUser)
	f.get("/healthz", false)

	rec := f.get("/metrics", false)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "linkledger_http_request_duration_seconds")
}

func TestAdminRoutes(t *testing.T) {
	t.Run("admin sees stats", func(t *testing.T) {
		f := newRouterFixture(t, entity.RoleAdmin)
		f.store.EXPECT().Hit(mock.Anything, mock.Anything, time.Minute).Return(int64(1), time.Time{}, nil)
		f.admin.EXPECT().Stats(mock.Anything).Return(&usecase.Stats{Users: 3}, nil)

		rec := f.get("/api/v1/admin/stats", true)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"users":3,"links":0,"activeLinks":0,"purchases":0,"creditsSold":0}`, rec.Body.String())
	})

	t.Run("regular user is forbidden", func(t *testing.T) {
		f := newRouterFixture(t, entity.RoleUser)
		f.store.EXPECT().Hit(mock.Anything, mock.Anything, time.Minute).Return(int64(1), time.Time{}, nil)

		assert.Equal(t, http.StatusForbidden, f.get("/api/v1/admin/stats", true).Code)
	})

	t.Run("limit applies before authentication", func(t *testing.T) {
		f := newRouterFixture(t, entity.RoleAdmin)
		f.store.EXPECT().Hit(mock.Anything, mock.Anything, time.Minute).Return(int64(21), time.Time{}, nil)

		rec := f.get("/api/v1/admin/stats", false)
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	})
}

func TestCallbackIsPublic(t *testing.T) {
	f := newRouterFixture(t, entity.RoleUser)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments/callback", nil)
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	// Reaches the signature check rather than the bearer check
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), errs.ErrUnauthorized.Error())
	assert.NotContains(t, rec.Body.String(), "bearer")
}
