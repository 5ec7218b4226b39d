package server

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/liangshaojie/portfolio/contact"
	"github.com/liangshaojie/portfolio/dom"
	"github.com/liangshaojie/portfolio/i18n"
	"github.com/liangshaojie/portfolio/site"
	"github.com/liangshaojie/portfolio/timing"
)

// colorSchemeHint is the client hint carrying the system colour scheme.
const colorSchemeHint = "Sec-CH-Prefers-Color-Scheme"

// page builds a controller for this request with the visitor's preferences
// applied. Its timers run on a manual scheduler: the response is a snapshot
// and nothing may fire after it has been written.
func (s *Server) page(c *gin.Context) (*site.Website, *timing.Manual, error) {
	doc, err := dom.ParseBytes(s.markup)
	if err != nil {
		return nil, nil, errors.Wrap(err, "parsing page")
	}
	sched := timing.NewManual()
	w := site.New(doc, site.Options{
		Store:       s.storeFor(c),
		Sender:      s.sender,
		Scheduler:   sched,
		Logger:      s.logger,
		PrefersDark: func() bool { return prefersDark(c) },
		Language:    s.defaultLanguage(c),
	})
	w.Init()
	return w, sched, nil
}

func prefersDark(c *gin.Context) bool {
	return strings.Trim(c.GetHeader(colorSchemeHint), `" `) == "dark"
}

func (s *Server) defaultLanguage(c *gin.Context) i18n.Lang {
	if s.detectLanguage {
		if lang, ok := i18n.Match(c.GetHeader("Accept-Language")); ok {
			return lang
		}
	}
	return i18n.Default
}

func (s *Server) render(c *gin.Context, status int, w *site.Website) {
	var buf bytes.Buffer
	if err := w.Render(&buf); err != nil {
		s.fail(c, errors.Wrap(err, "rendering page"))
		return
	}
	c.Header("Accept-CH", colorSchemeHint)
	c.Header("Vary", colorSchemeHint)
	c.Data(status, "text/html; charset=utf-8", buf.Bytes())
}

func (s *Server) fail(c *gin.Context, err error) {
	s.logger.Error("request failed", "path", c.Request.URL.Path, "error", err)
	c.String(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}

func (s *Server) handleIndex(c *gin.Context) {
	w, _, err := s.page(c)
	if err != nil {
		s.fail(c, err)
		return
	}
	if section := c.Query("section"); section != "" {
		w.ScrollToSection(section)
	}
	s.render(c, http.StatusOK, w)
}

func (s *Server) handleTheme(c *gin.Context) {
	w, _, err := s.page(c)
	if err != nil {
		s.fail(c, err)
		return
	}
	w.ToggleTheme()
	c.Redirect(http.StatusSeeOther, back(c))
}

func (s *Server) handleLanguage(c *gin.Context) {
	w, _, err := s.page(c)
	if err != nil {
		s.fail(c, err)
		return
	}
	w.ToggleLanguage()
	c.Redirect(http.StatusSeeOther, back(c))
}

// handleContact runs the posted form through the controller and renders the
// page with inline errors or the outcome notification.
func (s *Server) handleContact(c *gin.Context) {
	w, sched, err := s.page(c)
	if err != nil {
		s.fail(c, err)
		return
	}

	w.Inspect(func(doc *dom.Document) {
		form := doc.ByID("contactForm")
		for _, name := range []string{contact.FieldName, contact.FieldEmail, contact.FieldSubject, contact.FieldMessage} {
			form.First(dom.AttrEquals("name", name)).SetValue(c.PostForm(name))
		}
	})
	w.ScrollToSection(string(site.Contact))

	status := http.StatusOK
	err = w.HandleFormSubmission(c.Request.Context())
	switch {
	case errors.Is(err, contact.ErrInvalid):
		status = http.StatusUnprocessableEntity
	case err != nil:
		s.logger.Warn("contact message not sent", "visitor", s.hashID(visitorID(c)), "error", err)
		status = http.StatusBadGateway
	}

	// let the notification reach its shown state
	sched.Advance(site.NotificationShowDelay)
	s.render(c, status, w)
}

func (s *Server) handleHealth(c *gin.Context) {
	if s.db != nil {
		if err := s.db.PingContext(c.Request.Context()); err != nil {
			s.logger.Error("health check", "error", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// back returns the local path to redirect to after a toggle. Only the path
// and query of the Referer are kept.
func back(c *gin.Context) string {
	ref, err := url.Parse(c.GetHeader("Referer"))
	if err != nil || ref.Path == "" || !strings.HasPrefix(ref.Path, "/") || strings.HasPrefix(ref.Path, "//") {
		return "/"
	}
	target := ref.Path
	if ref.RawQuery != "" {
		target += "?" + ref.RawQuery
	}
	return target
}

func slogLevelFor(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
