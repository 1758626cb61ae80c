package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func limitedRouter(rps float64, burst int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(NewRateLimiter(rps, burst).Middleware())
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
	return r
}

func doRequest(r *gin.Engine, remoteAddr string) int {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = remoteAddr
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimiterBlocksAfterBurst(t *testing.T) {
	r := limitedRouter(0.01, 2)

	for i := 0; i < 2; i++ {
		if code := doRequest(r, "10.0.0.1:1234"); code != http.StatusOK {
			t.Fatalf("request %d: got %d, want 200", i+1, code)
		}
	}
	if code := doRequest(r, "10.0.0.1:1234"); code != http.StatusTooManyRequests {
		t.Errorf("over-burst request: got %d, want 429", code)
	}
}

func TestRateLimiterBucketsAreKeyedByIP(t *testing.T) {
	r := limitedRouter(0.01, 1)

	if code := doRequest(r, "10.0.0.1:1234"); code != http.StatusOK {
		t.Fatalf("first client: got %d, want 200", code)
	}
	if code := doRequest(r, "10.0.0.1:5678"); code != http.StatusTooManyRequests {
		t.Errorf("same IP, new port: got %d, want 429", code)
	}
	if code := doRequest(r, "10.0.0.2:1234"); code != http.StatusOK {
		t.Errorf("different IP must have its own bucket: got %d", code)
	}
}
