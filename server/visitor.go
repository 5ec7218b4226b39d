package server

import (
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	visitorCookie = "visitor_id"
	visitorKey    = "visitor"
)

// untrackedPrefixes never get a visitor id.
var untrackedPrefixes = []string{"/static/", "/favicon", "/healthz"}

// visitorMiddleware gives each page visitor a random id cookie, used as the
// owner of their stored preferences. Do Not Track is respected: those
// visitors get no id and their preferences fall back to plain cookies.
func (s *Server) visitorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, prefix := range untrackedPrefixes {
			if strings.HasPrefix(path, prefix) {
				c.Next()
				return
			}
		}
		if c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}

		id, err := c.Cookie(visitorCookie)
		if err != nil || uuid.Validate(id) != nil {
			id = uuid.NewString()
			setCookie(c, visitorCookie, id)
		}
		c.Set(visitorKey, id)
		c.Next()
	}
}

func visitorID(c *gin.Context) string {
	return c.GetString(visitorKey)
}

// hashID hides a visitor id in logs. Hashes are stable for the life of the
// process only.
func (s *Server) hashID(id string) string {
	if id == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(id + s.salt))
	return hex.EncodeToString(sum[:])[:16]
}

// requestLogger logs one line per page request.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		if strings.HasPrefix(c.Request.URL.Path, "/static/") {
			return
		}
		attrs := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
		}
		if v := s.hashID(visitorID(c)); v != "" {
			attrs = append(attrs, "visitor", v)
		}
		level := slogLevelFor(c.Writer.Status())
		s.logger.Log(c.Request.Context(), level, "request", attrs...)
	}
}

const cookieMaxAge = 365 * 24 * 60 * 60

func setCookie(c *gin.Context, name, value string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, value, cookieMaxAge, "/", "", c.Request.TLS != nil, true)
}
