// Package server exposes the numeral engine over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jmcpheron/ancient-number-converter/pkg/api"
	"github.com/jmcpheron/ancient-number-converter/pkg/numeral"
	"github.com/jmcpheron/ancient-number-converter/pkg/showcase"
)

// Config controls the listener.
type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
}

// Server is the HTTP front end.
type Server struct {
	config Config
	logger *slog.Logger
	router *gin.Engine
}

// New builds a server and registers its routes.
func New(config Config, logger *slog.Logger) *Server {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(logger))

	s := &Server{config: config, logger: logger, router: router}
	s.routes()
	return s
}

// Handler returns the root handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() {
	s.router.GET("/healthz", s.handleHealth)
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := s.router.Group("/v1")
	v1.GET("/systems", s.handleSystems)
	v1.GET("/systems/:id", s.handleSystem)
	v1.GET("/systems/:id/encode/:n", s.handleEncode)
	v1.GET("/systems/:id/verify/:n", s.handleVerify)
	v1.GET("/systems/:id/showcase", s.handleShowcase)
	v1.GET("/systems/:id/history", s.handleHistory)
	v1.GET("/compare/:n", s.handleCompare)
	v1.POST("/run", s.handleRun)
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.config.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.config.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleSystems(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"systems": numeral.Systems()})
}

func (s *Server) handleSystem(c *gin.Context) {
	sys, ok := s.lookup(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, sys)
}

func (s *Server) handleEncode(c *gin.Context) {
	sys, ok := s.lookup(c)
	if !ok {
		return
	}
	n, ok := s.number(c)
	if !ok {
		return
	}
	s.respond(c, api.Request{Op: api.OpEncode, System: string(sys.ID), Number: &n})
}

func (s *Server) handleVerify(c *gin.Context) {
	sys, ok := s.lookup(c)
	if !ok {
		return
	}
	n, ok := s.number(c)
	if !ok {
		return
	}
	s.respond(c, api.Request{Op: api.OpVerify, System: string(sys.ID), Number: &n})
}

func (s *Server) handleHistory(c *gin.Context) {
	sys, ok := s.lookup(c)
	if !ok {
		return
	}
	s.respond(c, api.Request{Op: api.OpHistory, System: string(sys.ID)})
}

func (s *Server) handleCompare(c *gin.Context) {
	n, ok := s.number(c)
	if !ok {
		return
	}
	s.respond(c, api.Request{Op: api.OpCompare, Number: &n})
}

func (s *Server) handleShowcase(c *gin.Context) {
	rows, err := showcase.Table(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, api.Response{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"system": c.Param("id"), "rows": rows})
}

func (s *Server) handleRun(c *gin.Context) {
	var req api.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.Response{Error: fmt.Sprintf("unmarshal: %v", err)})
		return
	}
	s.respond(c, req)
}

// respond handles req and maps the outcome to a status: 400 for a request
// that fails validation, 404 for an unknown system, 400 for a failed
// conversion.
func (s *Server) respond(c *gin.Context, req api.Request) {
	resp := api.Handle(req)
	invalid := req.Validate() != nil

	op := string(req.Op)
	if invalid {
		op = "invalid"
	}
	conversionsTotal.WithLabelValues(op, systemLabel(req.System), outcome(resp.Failed())).Inc()

	status := http.StatusOK
	switch {
	case invalid:
		status = http.StatusBadRequest
	case req.Op.TargetsSystem() && !known(req.System):
		status = http.StatusNotFound
	case resp.Failed():
		status = http.StatusBadRequest
	}
	c.JSON(status, resp)
}

func (s *Server) lookup(c *gin.Context) (*numeral.System, bool) {
	sys, ok := numeral.Lookup(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, api.Response{Error: fmt.Sprintf("%s: %q", numeral.ErrUnknownSystem, c.Param("id"))})
	}
	return sys, ok
}

func (s *Server) number(c *gin.Context) (int, bool) {
	n, err := strconv.Atoi(c.Param("n"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.Response{Error: fmt.Sprintf("not an integer: %q", c.Param("n"))})
		return 0, false
	}
	return n, true
}

func known(id string) bool {
	_, ok := numeral.Lookup(id)
	return ok
}

// systemLabel keeps metric cardinality bounded to registered systems.
func systemLabel(id string) string {
	switch {
	case id == "":
		return "none"
	case known(id):
		return id
	}
	return "unknown"
}

func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		elapsed := time.Since(start)
		status := c.Writer.Status()
		requestDuration.WithLabelValues(route, strconv.Itoa(status)).Observe(elapsed.Seconds())
		logger.Debug("request",
			"method", c.Request.Method,
			"route", route,
			"status", status,
			"elapsed", elapsed,
		)
	}
}
