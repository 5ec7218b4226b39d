// Package server hosts the portfolio page with gin. Every request gets a
// fresh document and controller; toggles and the contact form run through
// the controller and the resulting page is rendered back.
package server

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/liangshaojie/portfolio/mail"
	"github.com/liangshaojie/portfolio/web"
)

// Options configures the host.
type Options struct {
	// DB enables the SQLite preference backend when set; otherwise
	// preferences live in cookies.
	DB     *sql.DB
	Sender mail.Sender
	Logger *slog.Logger

	// DetectLanguage picks the default language from Accept-Language
	// instead of always starting in Chinese.
	DetectLanguage bool

	// Page is the markup to serve. Defaults to web.Index.
	Page []byte
}

// Server is the HTTP host.
type Server struct {
	db             *sql.DB
	sender         mail.Sender
	logger         *slog.Logger
	detectLanguage bool
	markup         []byte
	salt           string

	engine *gin.Engine
}

func New(opts Options) (*Server, error) {
	s := &Server{
		db:             opts.DB,
		sender:         opts.Sender,
		logger:         opts.Logger,
		detectLanguage: opts.DetectLanguage,
		markup:         opts.Page,
	}
	if s.sender == nil {
		s.sender = mail.NewSimulated()
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.markup == nil {
		s.markup = web.Index
	}

	salt := make([]byte, 32)
	if _, err := rand.Read(salt); err != nil {
		return nil, errors.Wrap(err, "generating visitor salt")
	}
	s.salt = hex.EncodeToString(salt)

	s.engine = s.routes()
	return s, nil
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.visitorMiddleware(), s.requestLogger())

	r.StaticFS("/static", http.FS(web.Static()))

	r.GET("/", s.handleIndex)
	r.POST("/theme", s.handleTheme)
	r.POST("/language", s.handleLanguage)
	r.POST("/contact", s.handleContact)
	r.GET("/healthz", s.handleHealth)

	return r
}

// Handler exposes the routes, mostly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		// the simulated sender alone holds a request for two seconds
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr, "mode", gin.Mode())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return errors.Wrap(err, "listening")
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "shutting down")
	}
	return nil
}
