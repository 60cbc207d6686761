package logging

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newRouter(logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Middleware(logger), Recovery(logger))
	r.GET("/ok", func(c *gin.Context) {
		c.String(http.StatusOK, RequestID(c))
	})
	r.GET("/boom", func(c *gin.Context) {
		panic("boom")
	})
	return r
}

func TestMiddleware_RequestID(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	r := newRouter(zap.New(core))

	t.Run("generated", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))

		id := w.Header().Get(RequestIDHeader)
		if id == "" || w.Body.String() != id {
			t.Fatalf("expected generated request id, header=%q body=%q", id, w.Body.String())
		}
	})

	t.Run("propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ok", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if got := w.Header().Get(RequestIDHeader); got != "abc-123" {
			t.Fatalf("expected propagated id, got %q", got)
		}
	})

	entries := logs.FilterMessage("request served").All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 access log entries, got %d", len(entries))
	}
	if entries[1].ContextMap()["request_id"] != "abc-123" {
		t.Fatalf("unexpected log fields: %v", entries[1].ContextMap())
	}
}

func TestRecovery(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	r := newRouter(zap.New(core))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if logs.FilterMessage("recovered from panic").Len() != 1 {
		t.Fatalf("expected panic to be logged")
	}
	if logs.FilterMessage("request failed").Len() != 1 {
		t.Fatalf("expected failed request to be logged")
	}
}

func TestNew(t *testing.T) {
	if _, err := New("debug", false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := New("info", true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := New("loud", true); err == nil {
		t.Fatalf("expected invalid level error")
	}
}
