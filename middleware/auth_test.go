package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"trendkart/models"
	"trendkart/utils"
)

func protectedRouter(adminOnly bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	handlers := []gin.HandlerFunc{AuthMiddleware()}
	if adminOnly {
		handlers = append(handlers, AdminMiddleware())
	}
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(200, gin.H{"user_id": c.GetString("user_id"), "role": c.GetString("user_role")})
	})

	router.GET("/protected", handlers...)
	return router
}

func tokenFor(t *testing.T, role string) string {
	t.Helper()
	token, err := utils.GenerateToken(&models.User{ID: "u1", Name: "Shopper", Email: "shopper@example.com", Role: role})
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	return token
}

func TestAuthMiddlewareRequiresToken(t *testing.T) {
	router := protectedRouter(false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("no credentials: status %d, want 401", w.Code)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "not-a-jwt"})
	router.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("garbage cookie: status %d, want 401", w.Code)
	}
}

func TestAuthMiddlewareAcceptsCookie(t *testing.T) {
	router := protectedRouter(false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: tokenFor(t, models.RoleUser)})
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("valid cookie: status %d, body %s", w.Code, w.Body.String())
	}
}

func TestAuthMiddlewareAcceptsBearerFallback(t *testing.T) {
	router := protectedRouter(false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, models.RoleUser))
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("bearer token: status %d, body %s", w.Code, w.Body.String())
	}
}

func TestAdminMiddleware(t *testing.T) {
	router := protectedRouter(true)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: tokenFor(t, models.RoleUser)})
	router.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Errorf("user role on admin route: status %d, want 403", w.Code)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: tokenFor(t, models.RoleAdmin)})
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("admin role: status %d, body %s", w.Code, w.Body.String())
	}
}
