package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"task-scheduler/pkg/log"
)

func newRouter(requestsPerMin int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	mw := New(log.NewNop(), requestsPerMin)
	r.POST("/run", mw.RateLimit(), func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func call(r *gin.Engine, ip string) int {
	req := httptest.NewRequest(http.MethodPost, "/run", nil)
	req.RemoteAddr = ip + ":4321"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimit(t *testing.T) {
	// 10 per minute gives a burst of one.
	r := newRouter(10)

	if code := call(r, "10.0.0.1"); code != http.StatusOK {
		t.Fatalf("first request: got %d", code)
	}
	if code := call(r, "10.0.0.1"); code != http.StatusTooManyRequests {
		t.Errorf("second request: expected 429, got %d", code)
	}
	if code := call(r, "10.0.0.2"); code != http.StatusOK {
		t.Errorf("other client should have its own bucket, got %d", code)
	}
}

func TestRateLimitDisabled(t *testing.T) {
	r := newRouter(0)
	for i := 0; i < 20; i++ {
		if code := call(r, "10.0.0.1"); code != http.StatusOK {
			t.Fatalf("request %d: got %d", i, code)
		}
	}
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name   string
		header map[string]string
		remote string
		want   string
	}{
		{"Forwarded for", map[string]string{"X-Forwarded-For": "1.2.3.4, 10.0.0.1"}, "10.0.0.1:80", "1.2.3.4"},
		{"Real IP", map[string]string{"X-Real-IP": "5.6.7.8"}, "10.0.0.1:80", "5.6.7.8"},
		{"Remote address", nil, "9.9.9.9:1234", "9.9.9.9"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			for k, v := range tt.header {
				req.Header.Set(k, v)
			}
			if got := clientIP(req); got != tt.want {
				t.Errorf("clientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}
