package middleware

import (
	"bytes"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/IETI-Group/SOPHIA-CourseService-sub001/internal/service"
)

const cacheKeyPrefix = "course-service:http:"

type cacheWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *cacheWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// ListCache serves successful GET responses from redis keyed by the full
// request URI, and drops a resource's cached entries when a write to that
// resource succeeds. A nil client disables caching entirely.
func ListCache(client *redis.Client, metrics *service.MetricsService, ttl time.Duration) gin.HandlerFunc {
	if client == nil {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			if c.Writer.Status() < http.StatusBadRequest {
				invalidateResource(c, client)
			}
			return
		}

		key := cacheKey(c)
		start := time.Now()
		cached, err := client.Get(c.Request.Context(), key).Result()
		if err == nil {
			metrics.RecordCacheOperation(true, time.Since(start))
			c.Header("X-Cache", "HIT")
			c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(cached))
			c.Abort()
			return
		}
		metrics.RecordCacheOperation(false, time.Since(start))

		writer := &cacheWriter{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = writer
		c.Next()

		if writer.Status() == http.StatusOK && writer.body.Len() > 0 {
			_ = client.Set(c.Request.Context(), key, writer.body.String(), ttl).Err()
		}
	}
}

func cacheKey(c *gin.Context) string {
	return cacheKeyPrefix + resourceSegment(c) + ":" + c.Request.URL.RequestURI()
}

// resourceSegment extracts the resource path segment from the matched route,
// e.g. /api/v1/courses/:id yields "courses". Invalidation is scoped per
// resource, so a write to one resource never evicts another's entries.
func resourceSegment(c *gin.Context) string {
	path := c.FullPath()
	if path == "" {
		path = c.Request.URL.Path
	}
	segments := strings.Split(path, "/")
	for i := len(segments) - 1; i >= 0; i-- {
		if segments[i] != "" && !strings.HasPrefix(segments[i], ":") {
			return segments[i]
		}
	}
	return "unscoped"
}

func invalidateResource(c *gin.Context, client *redis.Client) {
	ctx := c.Request.Context()
	pattern := cacheKeyPrefix + resourceSegment(c) + ":*"
	iter := client.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		_ = client.Del(ctx, iter.Val()).Err()
	}
}
