package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"tourcrm/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(tokens *TokenManager) *gin.Engine {
	r := gin.New()
	r.Use(AuthMiddleware(tokens), ReadOnlyGuard())
	ok := func(c *gin.Context) {
		id, role := AccountFromContext(c)
		c.JSON(http.StatusOK, gin.H{"id": id, "role": role})
	}
	r.GET("/leads", ok)
	r.POST("/leads", ok)
	r.POST("/auth/login", ok)
	r.GET("/team", RequireElevated(), ok)
	return r
}

func do(r http.Handler, method, path, token string) int {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestAuthMiddleware(t *testing.T) {
	tokens := NewTokenManager("test-secret", time.Hour)
	r := newTestRouter(tokens)

	agent, err := tokens.Issue(models.Account{ID: "A-1", Role: models.RoleAgent})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	viewer, _ := tokens.Issue(models.Account{ID: "A-2", Role: models.RoleViewer})
	owner, _ := tokens.Issue(models.Account{ID: "A-3", Role: models.RoleOwner})
	admin, _ := tokens.Issue(models.Account{ID: "A-4", Role: models.RoleAdmin})
	unknown, _ := tokens.Issue(models.Account{ID: "A-5", Role: "Guide"})
	foreign, _ := NewTokenManager("other-secret", time.Hour).Issue(models.Account{ID: "A-1", Role: models.RoleOwner})

	tests := []struct {
		name   string
		method string
		path   string
		token  string
		want   int
	}{
		{"public path", http.MethodPost, "/auth/login", "", http.StatusOK},
		{"missing token", http.MethodGet, "/leads", "", http.StatusUnauthorized},
		{"foreign signature", http.MethodGet, "/leads", foreign, http.StatusUnauthorized},
		{"agent reads", http.MethodGet, "/leads", agent, http.StatusOK},
		{"agent writes", http.MethodPost, "/leads", agent, http.StatusOK},
		{"viewer reads", http.MethodGet, "/leads", viewer, http.StatusOK},
		{"viewer writes", http.MethodPost, "/leads", viewer, http.StatusForbidden},
		{"agent on team", http.MethodGet, "/team", agent, http.StatusForbidden},
		{"owner on team", http.MethodGet, "/team", owner, http.StatusOK},
		{"admin on team", http.MethodGet, "/team", admin, http.StatusOK},
		{"viewer on team", http.MethodGet, "/team", viewer, http.StatusForbidden},
		{"unknown role writes", http.MethodPost, "/leads", unknown, http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := do(r, tt.method, tt.path, tt.token); got != tt.want {
				t.Fatalf("status = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestExpiredToken(t *testing.T) {
	tokens := NewTokenManager("test-secret", time.Minute)
	tokens.now = func() time.Time { return time.Now().Add(-time.Hour) }
	stale, _ := tokens.Issue(models.Account{ID: "A-1", Role: models.RoleAgent})
	tokens.now = time.Now

	if got := do(newTestRouter(tokens), http.MethodGet, "/leads", stale); got != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", got)
	}
}

func TestIssueWithoutSecret(t *testing.T) {
	if _, err := NewTokenManager("", time.Hour).Issue(models.Account{ID: "A-1"}); err == nil {
		t.Fatalf("expected error without secret")
	}
}
