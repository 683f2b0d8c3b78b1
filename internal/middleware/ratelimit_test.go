package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"event-planner/pkg/log"
)

func newRouter(mw Middleware) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ping", mw.RateLimit(), func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return r
}

func get(r http.Handler, ip string) int {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Forwarded-For", ip+", 10.0.0.1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimit(t *testing.T) {
	// 10 rpm: burst of 1, refill every 6s
	r := newRouter(New(log.NewNop(), Config{RateLimitEnabled: true, RequestsPerMin: 10}))

	if code := get(r, "203.0.113.7"); code != http.StatusOK {
		t.Fatalf("first request: expected 200, got %d", code)
	}
	if code := get(r, "203.0.113.7"); code != http.StatusTooManyRequests {
		t.Fatalf("second request: expected 429, got %d", code)
	}
	if code := get(r, "198.51.100.2"); code != http.StatusOK {
		t.Fatalf("other client: expected 200, got %d", code)
	}
}

func TestRateLimit_Disabled(t *testing.T) {
	r := newRouter(New(log.NewNop(), Config{RateLimitEnabled: false, RequestsPerMin: 1}))

	for i := 0; i < 5; i++ {
		if code := get(r, "203.0.113.7"); code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i, code)
		}
	}
}

func TestExtractIP(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{"forwarded", map[string]string{"X-Forwarded-For": "1.2.3.4, 5.6.7.8"}, "9.9.9.9:1234", "1.2.3.4"},
		{"real ip", map[string]string{"X-Real-IP": "4.3.2.1"}, "9.9.9.9:1234", "4.3.2.1"},
		{"remote addr", nil, "9.9.9.9:1234", "9.9.9.9"},
		{"remote without port", nil, "9.9.9.9", "9.9.9.9"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			if got := extractIP(req); got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}
