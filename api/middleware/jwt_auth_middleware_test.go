package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/soundvault/soundvault-backend/domain"
	"github.com/soundvault/soundvault-backend/internal/tokenutil"
)

const testSecret = "test-secret"

func newProtectedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(JwtAuthMiddleware(testSecret))
	router.GET("/ping", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"userId": ctx.GetString("x-user-id")})
	})
	return router
}

func TestJwtAuthMiddlewareRejectsMissingToken(t *testing.T) {
	router := newProtectedRouter()

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/ping", nil)
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestJwtAuthMiddlewareRejectsBadToken(t *testing.T) {
	router := newProtectedRouter()

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/ping", nil)
	request.Header.Set("Authorization", "Bearer not-a-token")
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestJwtAuthMiddlewareAcceptsValidToken(t *testing.T) {
	router := newProtectedRouter()

	user := &domain.AdminUser{ID: primitive.NewObjectID(), Email: "admin@example.com"}
	token, err := tokenutil.CreateAccessToken(user, testSecret, 1)
	require.NoError(t, err)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/ping", nil)
	request.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), user.ID.Hex())
}
