package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"food-express/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test_secret")

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/auth", AuthRequired(testSecret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"email": GetClaims(c).Email})
	})
	r.GET("/admin", AuthRequired(testSecret), AdminRequired(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	r.GET("/users/:id", AuthRequired(testSecret), SelfOrAdmin(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func get(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func tokenFor(t *testing.T, id uint, role models.UserRole) string {
	t.Helper()
	token, err := GenerateToken(&models.User{ID: id, Name: "T", Email: "t@example.com", Role: role}, testSecret)
	require.NoError(t, err)
	return token
}

func TestAuthRequiredMissingHeader(t *testing.T) {
	r := testRouter()
	assert.Equal(t, http.StatusUnauthorized, get(r, "/auth", "").Code)
}

func TestAuthRequiredMalformedToken(t *testing.T) {
	r := testRouter()
	assert.Equal(t, http.StatusUnauthorized, get(r, "/auth", "not-a-jwt").Code)
}

func TestAuthRequiredWrongSignature(t *testing.T) {
	r := testRouter()
	token, err := GenerateToken(&models.User{ID: 1, Role: models.RoleUser}, []byte("other_secret"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, get(r, "/auth", token).Code)
}

func TestAuthRequiredExpiredToken(t *testing.T) {
	r := testRouter()
	claims := Claims{
		ID: 1, Role: models.RoleUser,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, get(r, "/auth", token).Code)
}

func TestAuthRequiredValidToken(t *testing.T) {
	r := testRouter()
	w := get(r, "/auth", tokenFor(t, 1, models.RoleUser))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "t@example.com")
}

func TestAdminRequired(t *testing.T) {
	r := testRouter()
	assert.Equal(t, http.StatusForbidden, get(r, "/admin", tokenFor(t, 1, models.RoleUser)).Code)
	assert.Equal(t, http.StatusOK, get(r, "/admin", tokenFor(t, 1, models.RoleAdmin)).Code)
}

func TestSelfOrAdmin(t *testing.T) {
	r := testRouter()

	// caller acting on their own id
	assert.Equal(t, http.StatusOK, get(r, "/users/7", tokenFor(t, 7, models.RoleUser)).Code)
	// caller acting on someone else
	assert.Equal(t, http.StatusForbidden, get(r, "/users/8", tokenFor(t, 7, models.RoleUser)).Code)
	// admin acting on anyone
	assert.Equal(t, http.StatusOK, get(r, "/users/8", tokenFor(t, 1, models.RoleAdmin)).Code)
}

func TestTokenExpiryIsOneHour(t *testing.T) {
	token := tokenFor(t, 1, models.RoleUser)
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return testSecret, nil
	})
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(TokenTTL), claims.ExpiresAt.Time, 5*time.Second)
}
