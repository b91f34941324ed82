package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestUserIDFromContext(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name  string
		setup func(c *gin.Context)
		want  int64
	}{
		{"unset", func(c *gin.Context) {}, 0},
		{"set", func(c *gin.Context) { c.Set(contextKeyUserID, int64(42)) }, 42},
		{"wrong type", func(c *gin.Context) { c.Set(contextKeyUserID, "42") }, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			tt.setup(c)
			if got := UserIDFromContext(c); got != tt.want {
				t.Errorf("UserIDFromContext() = %d, want %d", got, tt.want)
			}
		})
	}
}

// Missing or empty cookies are rejected before the session store is consulted.
func TestRequireSession_NoCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/private", RequireSession(nil), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/private", nil))
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.AddCookie(&http.Cookie{Name: "session_id", Value: ""})
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("empty cookie status = %d, want 401", w.Code)
	}
}
