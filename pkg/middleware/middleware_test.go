package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard/internal/domain"
	"github.com/vfg2006/sales-dashboard/internal/usecases/authenticating"
	"github.com/vfg2006/sales-dashboard/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/sales-dashboard/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard/pkg/log"
	"go.uber.org/mock/gomock"
)

func init() {
	log.SetupTestLogger()
}

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
})

func TestLoggingMiddleware(t *testing.T) {
	handler := LoggingMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, log.GetCorrelationID(r.Context()))
		w.WriteHeader(http.StatusAccepted)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/summary", nil))

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(CorrelationIDHeader))
}

func TestLogPanicMiddleware(t *testing.T) {
	handler := LogPanicMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("falha inesperada")
	}))

	rec := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), apiErrors.ErrInternalServer)
}

func TestCors(t *testing.T) {
	tests := []struct {
		name       string
		allowed    []string
		origin     string
		method     string
		wantHeader string
		wantStatus int
	}{
		{name: "origem permitida", allowed: []string{"http://localhost:3000"}, origin: "http://localhost:3000", method: http.MethodGet, wantHeader: "http://localhost:3000", wantStatus: http.StatusNoContent},
		{name: "origem negada", allowed: []string{"http://localhost:3000"}, origin: "http://evil.test", method: http.MethodGet, wantHeader: "", wantStatus: http.StatusNoContent},
		{name: "curinga", allowed: []string{"*"}, origin: "http://qualquer.test", method: http.MethodGet, wantHeader: "http://qualquer.test", wantStatus: http.StatusNoContent},
		{name: "preflight", allowed: []string{"http://localhost:3000"}, origin: "http://localhost:3000", method: http.MethodOptions, wantHeader: "http://localhost:3000", wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/v1/options", nil)
			req.Header.Set("Origin", tt.origin)
			rec := httptest.NewRecorder()

			Cors(tt.allowed)(okHandler).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantHeader, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	authService := mocks.NewMockAuthenticator(ctrl)
	authService.EXPECT().ValidateToken("valido").Return(&domain.Claims{Email: "admin@example.com", Role: domain.RoleAdmin}, nil).AnyTimes()
	authService.EXPECT().ValidateToken("expirado").Return(nil, authenticating.NewAuthError(authenticating.ErrExpiredToken, apiErrors.ErrExpiredToken, "")).AnyTimes()
	authService.EXPECT().ValidateToken("leitor").Return(&domain.Claims{Email: "leitor@example.com", Role: "viewer"}, nil).AnyTimes()

	handler := AuthMiddleware(authService)(AdminOnly()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		require.True(t, ok)
		assert.Equal(t, "admin@example.com", claims.Email)
		w.WriteHeader(http.StatusNoContent)
	})))

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{name: "sem header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "sem bearer", header: "valido", wantStatus: http.StatusUnauthorized},
		{name: "token expirado", header: "Bearer expirado", wantStatus: http.StatusUnauthorized},
		{name: "sem privilégio", header: "Bearer leitor", wantStatus: http.StatusForbidden},
		{name: "administrador", header: "Bearer valido", wantStatus: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/v1/cron/forecast-cache/run", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestAdminOnly_SemClaims(t *testing.T) {
	rec := httptest.NewRecorder()
	AdminOnly()(okHandler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
