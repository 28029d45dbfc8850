// README: Auth middleware tests with a stub verifier.
package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Castanheira1/leopardo-api/internal/auth"
)

type stubVerifier struct {
	identity auth.Identity
	err      error
}

func (s stubVerifier) Verify(_ context.Context, raw string) (auth.Identity, error) {
	if raw != "good-token" {
		return auth.Identity{}, errors.New("unknown token")
	}
	return s.identity, s.err
}

func newTestRouter(verifier TokenVerifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/probe", Auth(verifier), func(c *gin.Context) {
		id, _ := CallerIdentity(c)
		c.JSON(http.StatusOK, gin.H{"account_id": id.AccountID})
	})
	r.GET("/admin", Auth(verifier), RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func doRequest(r *gin.Engine, path, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMissingHeader(t *testing.T) {
	r := newTestRouter(stubVerifier{})
	if w := doRequest(r, "/probe", ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestAuthMalformedHeader(t *testing.T) {
	r := newTestRouter(stubVerifier{})
	if w := doRequest(r, "/probe", "Basic abc"); w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestAuthInvalidToken(t *testing.T) {
	r := newTestRouter(stubVerifier{})
	if w := doRequest(r, "/probe", "Bearer bad-token"); w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestAuthValidToken(t *testing.T) {
	r := newTestRouter(stubVerifier{identity: auth.Identity{AccountID: "acct-1"}})
	if w := doRequest(r, "/probe", "Bearer good-token"); w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

func TestRequireAdminForbidsStandardAccount(t *testing.T) {
	r := newTestRouter(stubVerifier{identity: auth.Identity{AccountID: "acct-1"}})
	if w := doRequest(r, "/admin", "Bearer good-token"); w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}
}

func TestRequireAdminAllowsElevatedAccount(t *testing.T) {
	r := newTestRouter(stubVerifier{identity: auth.Identity{AccountID: "acct-1", Admin: true}})
	if w := doRequest(r, "/admin", "Bearer good-token"); w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}
