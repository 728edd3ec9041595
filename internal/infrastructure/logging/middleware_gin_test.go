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

func TestGinMiddlewareSetsRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zapcore.InfoLevel)

	r := gin.New()
	r.Use(GinMiddleware(zap.New(core)))
	r.GET("/ping", func(c *gin.Context) {
		if RequestID(c) == "" {
			t.Fatalf("expected request id in context")
		}
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	got := w.Header().Get(RequestIDHeader)
	if got == "" {
		t.Fatalf("expected X-Request-Id header to be set")
	}
	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["request_id"] != got || fields["path"] != "/ping" || fields["status"] != int64(http.StatusNoContent) {
		t.Fatalf("unexpected fields: %v", fields)
	}
}

func TestGinMiddlewareReusesIncomingID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zapcore.InfoLevel)

	r := gin.New()
	r.Use(GinMiddleware(zap.New(core)))
	r.GET("/missing", func(c *gin.Context) {
		c.Status(http.StatusNotFound)
	})

	req := httptest.NewRequest(http.MethodGet, "/missing", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Header().Get(RequestIDHeader); got != "abc-123" {
		t.Fatalf("expected incoming id to be echoed, got %q", got)
	}
	if entries := logs.FilterLevelExact(zapcore.WarnLevel).All(); len(entries) != 1 {
		t.Fatalf("expected one warn entry for 404, got %d", len(entries))
	}
}

func TestNew(t *testing.T) {
	orig := zap.L()
	defer zap.ReplaceGlobals(orig)

	if _, err := New("verbose"); err == nil {
		t.Fatalf("expected invalid level error")
	}
	log, err := New("DEBUG")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !log.Core().Enabled(zapcore.DebugLevel) || zap.L() != log {
		t.Fatalf("expected global debug logger")
	}
}
