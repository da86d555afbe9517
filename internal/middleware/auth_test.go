package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mintToken(t *testing.T, userID int, role string, ttl time.Duration) string {
	t.Helper()
	claims := &Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(JWTKey)
	require.NoError(t, err)
	return token
}

func protectedRouter(extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	chain := append([]gin.HandlerFunc{Protect()}, extra...)
	chain = append(chain, func(c *gin.Context) {
		userID, _ := c.Get("user_id")
		role, _ := c.Get("role")
		c.JSON(http.StatusOK, gin.H{"user_id": userID, "role": role})
	})
	r.GET("/p", chain...)
	return r
}

func doGet(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/p", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestProtectRejectsMissingToken(t *testing.T) {
	w := doGet(protectedRouter(), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Not authorized, no token")
}

func TestProtectRejectsLiteralNullToken(t *testing.T) {
	for _, h := range []string{"Bearer null", "Bearer undefined"} {
		w := doGet(protectedRouter(), h)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", h)
	}
}

func TestProtectRejectsBadToken(t *testing.T) {
	w := doGet(protectedRouter(), "Bearer not.a.token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Not authorized, token failed")
}

func TestProtectRejectsExpiredToken(t *testing.T) {
	token := mintToken(t, 1, "STUDENT", -time.Minute)
	w := doGet(protectedRouter(), "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProtectAcceptsValidToken(t *testing.T) {
	token := mintToken(t, 42, "STUDENT", time.Hour)
	w := doGet(protectedRouter(), "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":42`)
	assert.Contains(t, w.Body.String(), `"role":"STUDENT"`)
}

func TestRequireAdmin(t *testing.T) {
	r := protectedRouter(RequireAdmin())

	student := mintToken(t, 1, "STUDENT", time.Hour)
	w := doGet(r, "Bearer "+student)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Not authorized as an admin")

	admin := mintToken(t, 2, "ADMIN", time.Hour)
	w = doGet(r, "Bearer "+admin)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLenientAuthNeverRejects(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/l", LenientAuth(), func(c *gin.Context) {
		_, authed := c.Get("user_id")
		c.JSON(http.StatusOK, gin.H{"authed": authed})
	})

	req := httptest.NewRequest(http.MethodGet, "/l", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"authed":false`)

	req = httptest.NewRequest(http.MethodGet, "/l", nil)
	req.Header.Set("Authorization", "Bearer "+mintToken(t, 7, "STUDENT", time.Hour))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Contains(t, w.Body.String(), `"authed":true`)
}
