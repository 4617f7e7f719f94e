package middleware

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/larekshop/larek-backend/internal/cache"
	"github.com/larekshop/larek-backend/internal/logger"
)

type CacheMiddleware struct {
	log   *logger.Logger
	store cache.Store
	ttl   time.Duration
}

func NewCacheMiddleware(log *logger.Logger, store cache.Store, ttl time.Duration) *CacheMiddleware {
	middlewareLog := log.With("middleware", "CacheMiddleware")
	return &CacheMiddleware{log: middlewareLog, store: store, ttl: ttl}
}

type captureWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (cw *captureWriter) Write(p []byte) (int, error) {
	cw.body.Write(p)
	return cw.ResponseWriter.Write(p)
}

func (cw *captureWriter) WriteString(s string) (int, error) {
	cw.body.WriteString(s)
	return cw.ResponseWriter.WriteString(s)
}

// CacheResponse serves successful GET responses from the store for the
// configured TTL, keyed by request URI including the query string.
// Entries expire, they are never invalidated.
func (cm *CacheMiddleware) CacheResponse() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}
		key := "resp:" + c.Request.URL.RequestURI()

		cached, ok, err := cm.store.Get(c.Request.Context(), key)
		if err != nil {
			cm.log.Warn("Response cache read failed", "key", key, "error", err)
		}
		if ok {
			c.Data(http.StatusOK, "application/json; charset=utf-8", cached)
			c.Abort()
			return
		}

		writer := &captureWriter{ResponseWriter: c.Writer}
		c.Writer = writer
		c.Next()

		if c.Writer.Status() != http.StatusOK {
			return
		}
		if err := cm.store.Set(c.Request.Context(), key, writer.body.Bytes(), cm.ttl); err != nil {
			cm.log.Warn("Response cache write failed", "key", key, "error", err)
		}
	}
}
