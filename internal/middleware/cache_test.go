package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/larekshop/larek-backend/internal/cache"
	"github.com/larekshop/larek-backend/internal/logger"
)

func newCachedRouter(t *testing.T, store cache.Store, ttl time.Duration) (*gin.Engine, *int) {
	t.Helper()
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}
	gin.SetMode(gin.TestMode)

	hits := 0
	router := gin.New()
	cm := NewCacheMiddleware(log, store, ttl)
	router.GET("/api/catalog/:id", cm.CacheResponse(), func(c *gin.Context) {
		hits++
		c.JSON(http.StatusOK, gin.H{"hit": hits, "id": c.Param("id")})
	})
	return router, &hits
}

func get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(w, req)
	return w
}

func TestCacheResponseServesSnapshotWithinTTL(t *testing.T) {
	router, hits := newCachedRouter(t, cache.NewMemoryStore(), time.Minute)

	first := get(router, "/api/catalog/abc")
	if first.Code != http.StatusOK {
		t.Fatalf("first request: %d", first.Code)
	}
	second := get(router, "/api/catalog/abc")
	if second.Code != http.StatusOK {
		t.Fatalf("second request: %d", second.Code)
	}
	if *hits != 1 {
		t.Fatalf("handler should run once within the TTL, ran %d times", *hits)
	}
	if first.Body.String() != second.Body.String() {
		t.Fatalf("cached body differs: %q vs %q", first.Body.String(), second.Body.String())
	}
}

func TestCacheResponseKeysByPath(t *testing.T) {
	router, hits := newCachedRouter(t, cache.NewMemoryStore(), time.Minute)

	get(router, "/api/catalog/abc")
	get(router, "/api/catalog/def")
	if *hits != 2 {
		t.Fatalf("distinct paths must not share entries, handler ran %d times", *hits)
	}
}

func TestCacheResponseKeysByQueryString(t *testing.T) {
	router, hits := newCachedRouter(t, cache.NewMemoryStore(), time.Minute)

	get(router, "/api/catalog/abc?page=1")
	get(router, "/api/catalog/abc?page=2")
	if *hits != 2 {
		t.Fatalf("distinct query strings must not share entries, handler ran %d times", *hits)
	}
	get(router, "/api/catalog/abc?page=1")
	if *hits != 2 {
		t.Fatalf("repeated query should hit the cache, handler ran %d times", *hits)
	}
}

func TestCacheResponseExpires(t *testing.T) {
	now := time.Now()
	store := cache.NewMemoryStoreWithClock(func() time.Time { return now })
	router, hits := newCachedRouter(t, store, time.Minute)

	get(router, "/api/catalog/abc")
	now = now.Add(61 * time.Second)
	get(router, "/api/catalog/abc")
	if *hits != 2 {
		t.Fatalf("expected a reload after expiry, handler ran %d times", *hits)
	}
}
