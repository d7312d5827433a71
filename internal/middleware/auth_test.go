package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "unit-test-secret"

func signTestToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func authTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", Auth(testSecret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"uid":  c.GetString(CtxUserID),
			"role": c.GetString(CtxRole),
		})
	})
	r.GET("/admin", Auth(testSecret), RequireRole("owner", "admin"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func doAuthRequest(r *gin.Engine, path, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthValidToken(t *testing.T) {
	r := authTestRouter()
	token := signTestToken(t, testSecret, jwt.MapClaims{
		"sub":  "u-1",
		"role": "user",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})

	w := doAuthRequest(r, "/me", "Bearer "+token)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
	}
}

func TestAuthRejections(t *testing.T) {
	r := authTestRouter()

	expired := signTestToken(t, testSecret, jwt.MapClaims{
		"sub": "u-1", "role": "user", "exp": time.Now().Add(-time.Hour).Unix(),
	})
	wrongKey := signTestToken(t, "other-secret", jwt.MapClaims{
		"sub": "u-1", "role": "user", "exp": time.Now().Add(time.Hour).Unix(),
	})
	noSubject := signTestToken(t, testSecret, jwt.MapClaims{
		"role": "user", "exp": time.Now().Add(time.Hour).Unix(),
	})

	tests := []struct {
		name          string
		authorization string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc123"},
		{"garbage token", "Bearer not.a.jwt"},
		{"expired", "Bearer " + expired},
		{"wrong signing key", "Bearer " + wrongKey},
		{"missing subject", "Bearer " + noSubject},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doAuthRequest(r, "/me", tt.authorization)
			if w.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", w.Code)
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	r := authTestRouter()

	tests := []struct {
		role string
		want int
	}{
		{"user", http.StatusForbidden},
		{"owner", http.StatusOK},
		{"admin", http.StatusOK},
		{"", http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run("role "+tt.role, func(t *testing.T) {
			token := signTestToken(t, testSecret, jwt.MapClaims{
				"sub":  "u-1",
				"role": tt.role,
				"exp":  time.Now().Add(time.Hour).Unix(),
			})
			w := doAuthRequest(r, "/admin", "Bearer "+token)
			if w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}
		})
	}
}
