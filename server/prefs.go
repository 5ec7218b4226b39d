package server

import (
	"github.com/gin-gonic/gin"

	"github.com/liangshaojie/portfolio/prefs"
	"github.com/liangshaojie/portfolio/storage"
)

// cookieStore keeps preferences in one cookie per key. Values written during
// the request are visible to later reads in the same request.
type cookieStore struct {
	c       *gin.Context
	written map[string]string
}

func newCookieStore(c *gin.Context) *cookieStore {
	return &cookieStore{c: c, written: map[string]string{}}
}

func (s *cookieStore) Get(key string) (string, error) {
	if !prefs.ValidKey(key) {
		return "", prefs.ErrUnknownKey
	}
	if v, ok := s.written[key]; ok {
		return v, nil
	}
	v, err := s.c.Cookie(key)
	if err != nil {
		return "", prefs.ErrNotFound
	}
	return v, nil
}

func (s *cookieStore) Set(key, value string) error {
	if !prefs.ValidKey(key) {
		return prefs.ErrUnknownKey
	}
	s.written[key] = value
	setCookie(s.c, key, value)
	return nil
}

// storeFor picks the preference backend for a request: SQLite rows owned by
// the visitor when a database is configured and the visitor has an id,
// cookies otherwise.
func (s *Server) storeFor(c *gin.Context) prefs.Store {
	if s.db != nil {
		if id := visitorID(c); id != "" {
			return storage.NewPreferenceStore(s.db, id)
		}
	}
	return newCookieStore(c)
}
