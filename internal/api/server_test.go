package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/strategy-dashboard-api/internal/config"
	"github.com/vfg2006/strategy-dashboard-api/internal/domain"
	authmocks "github.com/vfg2006/strategy-dashboard-api/internal/usecases/authenticating/mocks"
	reportingmocks "github.com/vfg2006/strategy-dashboard-api/internal/usecases/reporting/mocks"
	strategymocks "github.com/vfg2006/strategy-dashboard-api/internal/usecases/strategizing/mocks"
	"github.com/vfg2006/strategy-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/strategy-dashboard-api/pkg/log"
	"go.uber.org/mock/gomock"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func testConfig() *config.Config {
	return &config.Config{
		Cors: config.Cors{AllowedOrigins: []string{"http://localhost:3000"}},
	}
}

type testServices struct {
	auth     *authmocks.MockAuthenticator
	store    *strategymocks.MockConfigStore
	reporter *reportingmocks.MockReporter
}

func newTestHandler(t *testing.T) (http.Handler, testServices) {
	t.Helper()
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	mocks := testServices{
		auth:     authmocks.NewMockAuthenticator(ctrl),
		store:    strategymocks.NewMockConfigStore(ctrl),
		reporter: reportingmocks.NewMockReporter(ctrl),
	}

	return NewHandler(testConfig(), Services{
		Authenticator: mocks.auth,
		ConfigStore:   mocks.store,
		Reporter:      mocks.reporter,
	}), mocks
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body apiErrors.APIError
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body.Code
}

func TestNewHandler_Routing(t *testing.T) {
	seller := &domain.Claims{UserID: 7, UserRoleID: domain.RoleSeller}
	admin := &domain.Claims{UserID: 1, UserRoleID: domain.RoleAdmin}
	supervisor := &domain.Claims{UserID: 3, UserRoleID: domain.RoleSupervisor}

	tests := []struct {
		name         string
		method       string
		path         string
		token        string
		setup        func(m testServices)
		expectedCode int
		expectedErr  string
	}{
		{
			name:         "healthcheck público",
			method:       http.MethodGet,
			path:         "/healthcheck",
			expectedCode: http.StatusOK,
		},
		{
			name:         "rota protegida sem token",
			method:       http.MethodGet,
			path:         "/v1/dashboard",
			expectedCode: http.StatusUnauthorized,
			expectedErr:  apiErrors.ErrInvalidToken,
		},
		{
			name:   "rota inexistente",
			method: http.MethodGet,
			path:   "/v1/inexistente",
			token:  "seller-token",
			setup: func(m testServices) {
				m.auth.EXPECT().ValidateToken(gomock.Any(), "seller-token").Return(seller, nil)
			},
			expectedCode: http.StatusNotFound,
			expectedErr:  apiErrors.ErrResourceNotFound,
		},
		{
			name:   "método não suportado",
			method: http.MethodDelete,
			path:   "/v1/dashboard",
			token:  "seller-token",
			setup: func(m testServices) {
				m.auth.EXPECT().ValidateToken(gomock.Any(), "seller-token").Return(seller, nil)
			},
			expectedCode: http.StatusMethodNotAllowed,
			expectedErr:  apiErrors.ErrMethodNotAllowed,
		},
		{
			name:   "vendedor não lista usuários",
			method: http.MethodGet,
			path:   "/v1/users",
			token:  "seller-token",
			setup: func(m testServices) {
				m.auth.EXPECT().ValidateToken(gomock.Any(), "seller-token").Return(seller, nil)
			},
			expectedCode: http.StatusForbidden,
			expectedErr:  apiErrors.ErrInsufficientPrivilege,
		},
		{
			name:   "admin lista usuários",
			method: http.MethodGet,
			path:   "/v1/users",
			token:  "admin-token",
			setup: func(m testServices) {
				m.auth.EXPECT().ValidateToken(gomock.Any(), "admin-token").Return(admin, nil)
				m.auth.EXPECT().ListUser(gomock.Any()).Return([]*domain.User{}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "supervisor lista usuários",
			method: http.MethodGet,
			path:   "/v1/users",
			token:  "supervisor-token",
			setup: func(m testServices) {
				m.auth.EXPECT().ValidateToken(gomock.Any(), "supervisor-token").Return(supervisor, nil)
				m.auth.EXPECT().ListUser(gomock.Any()).Return([]*domain.User{}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "supervisor não altera usuários",
			method: http.MethodPut,
			path:   "/v1/users/7",
			token:  "supervisor-token",
			setup: func(m testServices) {
				m.auth.EXPECT().ValidateToken(gomock.Any(), "supervisor-token").Return(supervisor, nil)
			},
			expectedCode: http.StatusForbidden,
			expectedErr:  apiErrors.ErrInsufficientPrivilege,
		},
		{
			name:   "metas do vendedor",
			method: http.MethodGet,
			path:   "/v1/strategy/targets",
			token:  "seller-token",
			setup: func(m testServices) {
				m.auth.EXPECT().ValidateToken(gomock.Any(), "seller-token").Return(seller, nil)
				m.reporter.EXPECT().GetTargets(gomock.Any(), 7).Return(&domain.StrategicTargets{}, nil)
			},
			expectedCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, mocks := newTestHandler(t)
			if tt.setup != nil {
				tt.setup(mocks)
			}

			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.NotEmpty(t, rec.Header().Get(log.CorrelationIDHeader))
			if tt.expectedErr != "" {
				assert.Equal(t, tt.expectedErr, errorCode(t, rec))
			}
		})
	}
}

func TestNewHandler_Preflight(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodOptions, "/v1/strategy/config", nil)
	req.Header.Set("Origin", "http://localhost:3000")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestNew_RequiresServices(t *testing.T) {
	_, err := New(testConfig(), Services{})
	assert.Error(t, err)
}
