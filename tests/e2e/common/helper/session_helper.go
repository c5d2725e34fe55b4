//go:build e2e

package helper

import (
	"net/http"
	"testing"

	"pawbook/internal/handler/dto/request"
	"pawbook/internal/pkg/cookie"
	"pawbook/tests/common/dbtest"
	"pawbook/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

type SessionTestHelper struct {
	pool *pgxpool.Pool
}

func NewSessionTestHelper(pool *pgxpool.Pool) *SessionTestHelper {
	return &SessionTestHelper{pool: pool}
}

func (h *SessionTestHelper) CreateTestUser(t *testing.T, email, role string) uuid.UUID {
	t.Helper()
	return dbtest.CreateTestUser(t, h.pool, email, role)
}

// LoginUser signs in through the real endpoint and returns the session token
// set in the login response cookie.
func (h *SessionTestHelper) LoginUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	session := httptest.ExtractCookie(w, cookie.SessionCookieName)
	require.NotNil(t, session, "session cookie not found in login response")
	require.NotEmpty(t, session.Value, "session cookie is empty")

	return session.Value
}

func (h *SessionTestHelper) CreateAndLogin(t *testing.T, router *gin.Engine, email, role string) string {
	t.Helper()
	h.CreateTestUser(t, email, role)
	return h.LoginUser(t, router, email, "password123")
}
