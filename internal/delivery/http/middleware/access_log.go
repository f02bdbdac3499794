package middleware

import (
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type AccessLogMiddleware struct {
	logger    *log.Logger
	skipPaths map[string]struct{}
}

// NewAccessLogMiddleware logs one line per request except for skipPaths,
// which are polled often (health checks).
func NewAccessLogMiddleware(logger *log.Logger, skipPaths ...string) *AccessLogMiddleware {
	if logger == nil {
		logger = log.Default()
	}
	skip := make(map[string]struct{}, len(skipPaths))
	for _, p := range skipPaths {
		skip[p] = struct{}{}
	}
	return &AccessLogMiddleware{logger: logger, skipPaths: skip}
}

func (m *AccessLogMiddleware) skip(path string) bool {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	_, ok := m.skipPaths[path]
	return ok
}

func (m *AccessLogMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		start := time.Now()

		rid := c.Get("X-Request-ID")
		if rid == "" {
			rid = uuid.NewString()
			c.Set("X-Request-ID", rid)
		}

		err := c.Next()

		dur := time.Since(start)
		status := c.Response().StatusCode()

		ip := c.IP()
		host := c.Hostname()
		method := c.Method()
		path := c.OriginalURL()

		ua := c.Get("User-Agent")
		referer := c.Get("Referer")

		reqBytes := c.Request().Header.ContentLength()
		respBytes := len(c.Response().Body())

		if m != nil && m.logger != nil && !m.skip(path) {
			m.logger.Printf(
				"HTTP access | rid=%s ip=%s host=%s method=%s path=%s status=%d latency=%s req_bytes=%d resp_bytes=%d ua=%q referer=%q",
				rid, ip, host, method, path, status, dur, reqBytes, respBytes, ua, referer,
			)
		}

		return err
	}
}
