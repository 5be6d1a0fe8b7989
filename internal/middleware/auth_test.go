package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authService "github.com/clinicdesk/calendar-api/internal/service/auth"
	pkgauth "github.com/clinicdesk/calendar-api/pkg/auth"
)

func setupAuth(t *testing.T) (*gin.Engine, *authService.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc, err := authService.NewService(authService.Config{
		Email:      "staff@clinic.com",
		Password:   "123456",
		SessionTTL: time.Hour,
	}, pkgauth.NewJWTService("test-secret", time.Hour))
	require.NoError(t, err)

	router := gin.New()
	router.Use(NewAuthMiddleware(svc).Authenticate())
	router.GET("/protected", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"email": c.GetString(ContextEmail),
		})
	})
	return router, svc
}

func request(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthenticateRejectsMissingHeader(t *testing.T) {
	router, _ := setupAuth(t)
	assert.Equal(t, http.StatusUnauthorized, request(router, "").Code)
}

func TestAuthenticateRejectsMalformedHeader(t *testing.T) {
	router, _ := setupAuth(t)

	assert.Equal(t, http.StatusUnauthorized, request(router, "some-token").Code)
	assert.Equal(t, http.StatusUnauthorized, request(router, "Basic dXNlcjpwYXNz").Code)
}

func TestAuthenticateRejectsInvalidToken(t *testing.T) {
	router, _ := setupAuth(t)
	assert.Equal(t, http.StatusUnauthorized, request(router, "Bearer not-a-token").Code)
}

func TestAuthenticateAcceptsLiveSession(t *testing.T) {
	router, svc := setupAuth(t)

	tok, err := svc.Login(context.Background(), "staff@clinic.com", "123456")
	require.NoError(t, err)

	w := request(router, "Bearer "+tok.AccessToken)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "staff@clinic.com")
}

func TestAuthenticateRejectsAfterLogout(t *testing.T) {
	router, svc := setupAuth(t)
	ctx := context.Background()

	tok, err := svc.Login(ctx, "staff@clinic.com", "123456")
	require.NoError(t, err)

	require.Equal(t, http.StatusOK, request(router, "Bearer "+tok.AccessToken).Code)

	svc.Logout(ctx, tok.AccessToken)
	assert.Equal(t, http.StatusUnauthorized, request(router, "Bearer "+tok.AccessToken).Code)
}
