package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRequestID_GeneratesWhenMissing(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())

	var seenID string
	var ctxID string
	router.GET("/test", func(c *gin.Context) {
		seenID = GetRequestID(c)
		ctxID = RequestIDFromContext(c.Request.Context())
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", http.NoBody)
	router.ServeHTTP(w, req)

	require.NotEmpty(t, seenID)
	_, err := uuid.Parse(seenID)
	assert.NoError(t, err, "generated request ID should be a valid UUID")
	assert.Equal(t, seenID, ctxID, "request context should carry the same ID")
	assert.Equal(t, seenID, w.Header().Get(HeaderRequestID))
}

func TestRequestID_PropagatesExisting(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())

	var seenID string
	router.GET("/test", func(c *gin.Context) {
		seenID = GetRequestID(c)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", http.NoBody)
	req.Header.Set(HeaderRequestID, "upstream-id-123")
	router.ServeHTTP(w, req)

	assert.Equal(t, "upstream-id-123", seenID)
	assert.Equal(t, "upstream-id-123", w.Header().Get(HeaderRequestID))
}

func TestCorrelationID_PropagatesExisting(t *testing.T) {
	router := gin.New()
	router.Use(CorrelationID())

	var seenID string
	var ctxID string
	router.GET("/test", func(c *gin.Context) {
		seenID = GetCorrelationID(c)
		ctxID = CorrelationIDFromContext(c.Request.Context())
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", http.NoBody)
	req.Header.Set(HeaderCorrelationID, "txn-456")
	router.ServeHTTP(w, req)

	assert.Equal(t, "txn-456", seenID)
	assert.Equal(t, "txn-456", ctxID)
	assert.Equal(t, "txn-456", w.Header().Get(HeaderCorrelationID))
}

func TestMustGetRequestID_ReturnsUnknownWhenMissing(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	assert.Equal(t, "unknown", MustGetRequestID(c))
}

func TestContextHelpers(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		ctx := ContextWithRequestID(context.Background(), "req-1")
		ctx = ContextWithCorrelationID(ctx, "corr-1")

		assert.Equal(t, "req-1", RequestIDFromContext(ctx))
		assert.Equal(t, "corr-1", CorrelationIDFromContext(ctx))
	})

	t.Run("empty context", func(t *testing.T) {
		assert.Empty(t, RequestIDFromContext(context.Background()))
		assert.Empty(t, CorrelationIDFromContext(context.Background()))
	})

	t.Run("nil context", func(t *testing.T) {
		assert.Empty(t, RequestIDFromContext(nil)) //nolint:staticcheck // verifying nil safety
	})
}

func TestRecovery_RendersPlainText(t *testing.T) {
	router := gin.New()
	router.Use(Recovery(slog.Default()))
	router.GET("/panic", func(_ *gin.Context) {
		panic("something broke")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/panic", http.NoBody)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
	assert.Equal(t, "an internal error occurred", w.Body.String())
}

func TestSimpleTimeout_SetsDeadline(t *testing.T) {
	router := gin.New()
	router.Use(SimpleTimeout(50 * time.Millisecond))

	var hasDeadline bool
	router.GET("/test", func(c *gin.Context) {
		_, hasDeadline = c.Request.Context().Deadline()
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", http.NoBody)
	router.ServeHTTP(w, req)

	assert.True(t, hasDeadline)
}
