package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authdto "github.com/telebill/telebill/internal/application/auth/dto"
	"github.com/telebill/telebill/internal/application/auth/usecases"
	"github.com/telebill/telebill/internal/domain/admin"
	"github.com/telebill/telebill/internal/interfaces/dto"
	"github.com/telebill/telebill/internal/interfaces/http/handlers/testutil"
)

type mockLoginUC struct {
	result *authdto.LoginResponse
	err    error
}

func (m *mockLoginUC) Execute(ctx context.Context, cmd usecases.LoginCommand) (*authdto.LoginResponse, error) {
	return m.result, m.err
}

// Pinger stub for the health handler.
type stubPinger struct{ err error }

func (p stubPinger) PingContext(ctx context.Context) error { return p.err }

func TestAuthHandler_Login_Success(t *testing.T) {
	mockUC := &mockLoginUC{result: &authdto.LoginResponse{Token: "jwt-token", ExpiresAt: time.Now().Add(time.Hour)}}
	handler := NewAuthHandler(mockUC, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/auth/login", dto.LoginRequest{Email: "root@telebill.dev", Password: "secret"})
	handler.Login(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var out authdto.LoginResponse
	require.NoError(t, testutil.ParseResponse(w, &out))
	assert.Equal(t, "jwt-token", out.Token)
}

func TestAuthHandler_Login_Errors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"unknown admin", admin.ErrAdminNotFound, http.StatusBadRequest, "Admin not found. Please check your email or password"},
		{"wrong password", admin.ErrInvalidCredentials, http.StatusBadRequest, "Invalid credentials. Please check your password"},
		{"token signing failure", errors.New("sign"), http.StatusInternalServerError, "An error occurred during admin authentication. Please try again later"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewAuthHandler(&mockLoginUC{err: tt.err}, testutil.NewMockLogger())

			c, w := testutil.NewTestContext(http.MethodPost, "/auth/login", dto.LoginRequest{Email: "root@telebill.dev", Password: "secret"})
			handler.Login(c)

			assert.Equal(t, tt.status, w.Code)
			var resp testutil.APIResponse
			require.NoError(t, testutil.ParseResponse(w, &resp))
			assert.False(t, resp.Success)
			assert.Equal(t, tt.message, resp.Error.Message)
		})
	}
}

func TestAuthHandler_Login_InvalidRequest(t *testing.T) {
	handler := NewAuthHandler(&mockLoginUC{}, testutil.NewMockLogger())

	reqBody := map[string]string{"email": "root@telebill.dev"} // missing password
	c, w := testutil.NewTestContext(http.MethodPost, "/auth/login", reqBody)
	handler.Login(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealthHandler_Health(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		c, w := testutil.NewTestContext(http.MethodGet, "/health", nil)
		NewHealthHandler(stubPinger{}, testutil.NewMockLogger()).Health(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	})

	t.Run("database down", func(t *testing.T) {
		c, w := testutil.NewTestContext(http.MethodGet, "/health", nil)
		NewHealthHandler(stubPinger{err: errors.New("down")}, testutil.NewMockLogger()).Health(c)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}
