package server

import (
	"database/sql"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/existflow/leadboard/internal/logger"
)

// Server is the development backend stub. It serves the same REST surface
// the dashboard consumes from a real content API, with leads stored in
// SQLite by default or Postgres when given a postgres URL.
type Server struct {
	db    *sql.DB
	store *Store
	token string
	echo  *echo.Echo
}

// New creates a server. dbURL is either a postgres connection URL or a
// filesystem path to a SQLite database. token, when non-empty, makes every
// /api route require a matching bearer token.
func New(dbURL, token string) (*Server, error) {
	driver := "sqlite"
	if strings.HasPrefix(dbURL, "postgres://") || strings.HasPrefix(dbURL, "postgresql://") {
		driver = "postgres"
	}

	db, err := sql.Open(driver, dbURL)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	s := &Server{
		db:    db,
		store: NewStore(db),
		token: token,
	}

	if err := s.migrate(driver); err != nil {
		return nil, err
	}

	s.setupEcho()

	return s, nil
}

func (s *Server) setupEcho() {
	e := echo.New()
	e.HideBanner = true

	// Custom logging middleware
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()

			err := next(c)

			res := c.Response()
			logger.Info("HTTP request",
				logger.F("method", req.Method),
				logger.F("uri", req.RequestURI),
				logger.F("status", res.Status),
				logger.F("duration", time.Since(start).String()))

			return err
		}
	})

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.CORS())

	// Health check
	e.GET("/health", s.handleHealth)

	api := e.Group("/api")
	api.Use(s.authMiddleware)
	api.GET("/leads", s.handleListLeads)
	api.GET("/leads/:id", s.handleGetLead)
	api.POST("/leads", s.handleCreateLead)
	api.PUT("/leads/:id", s.handleUpdateLead)
	api.DELETE("/leads/:id", s.handleDeleteLead)

	s.echo = e
}

// Close closes the database connection
func (s *Server) Close() error {
	return s.db.Close()
}

// Router returns the HTTP handler
func (s *Server) Router() http.Handler {
	return s.echo
}

// Start starts the server
func (s *Server) Start(addr string) error {
	return s.echo.Start(addr)
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
