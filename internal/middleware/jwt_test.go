package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/royalvilla/villa-catalog-api/internal/model"
	"github.com/royalvilla/villa-catalog-api/internal/utils"
)

const testSecret = "unit-test-secret"

// passThrough records whether the protected handler was reached.
func passThrough(reached *bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		*reached = true
		return c.NoContent(http.StatusOK)
	}
}

func runJWT(t *testing.T, authHeader string) (*httptest.ResponseRecorder, bool, echo.Context) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/villa", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	reached := false
	err := JWTAuth(testSecret)(passThrough(&reached))(c)
	if err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}
	return rec, reached, c
}

func TestJWTAuthMissingHeaderIs401(t *testing.T) {
	rec, reached, _ := runJWT(t, "")
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
	if reached {
		t.Error("handler must not run without a token")
	}
}

func TestJWTAuthMalformedSchemeIs401(t *testing.T) {
	rec, reached, _ := runJWT(t, "Basic abc123")
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
	if reached {
		t.Error("handler must not run with a non-bearer scheme")
	}
}

func TestJWTAuthGarbageTokenIs401(t *testing.T) {
	rec, reached, _ := runJWT(t, "Bearer not.a.jwt")
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
	if reached {
		t.Error("handler must not run with a malformed token")
	}
}

func TestJWTAuthWrongSecretIs401(t *testing.T) {
	tok, err := utils.NewAuthToken("some-other-secret", &model.User{ID: 7, Email: "a@b.com", Role: "Customer"}, 7)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	rec, reached, _ := runJWT(t, "Bearer "+tok.Token)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
	if reached {
		t.Error("handler must not run with a token signed under another secret")
	}
}

func TestJWTAuthExpiredTokenIs401(t *testing.T) {
	claims := jwt.MapClaims{
		"sub":   uint64(7),
		"email": "a@b.com",
		"role":  "Customer",
		"exp":   time.Now().UTC().Add(-time.Hour).Unix(),
		"iat":   time.Now().UTC().Add(-2 * time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	rec, reached, _ := runJWT(t, "Bearer "+signed)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
	if reached {
		t.Error("handler must not run with an expired token")
	}
}

func TestJWTAuthValidTokenSetsContext(t *testing.T) {
	tok, err := utils.NewAuthToken(testSecret, &model.User{ID: 7, Email: "a@b.com", Name: "A", Role: "Admin"}, 7)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	rec, reached, c := runJWT(t, "Bearer "+tok.Token)
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}
	if !reached {
		t.Fatal("handler was never reached")
	}
	if got, ok := c.Get("email").(string); !ok || got != "a@b.com" {
		t.Errorf("context email = %v, want a@b.com", c.Get("email"))
	}
	if got, ok := c.Get("role").(string); !ok || got != "Admin" {
		t.Errorf("context role = %v, want Admin", c.Get("role"))
	}
}
