package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/fekuna/omnipos-supplychain-service/internal/metrics"
	"github.com/fekuna/omnipos-supplychain-service/pkg/logger"
	"github.com/fekuna/omnipos-supplychain-service/pkg/middleware"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

const pingTimeout = 2 * time.Second

// Handler is implemented by every entity handler.
type Handler interface {
	Register(g *echo.Group)
}

// Pinger is satisfied by *sqlx.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Route struct {
	Prefix  string
	Handler Handler
}

type Store struct {
	Name string
	DB   Pinger
}

type Config struct {
	HTTPAddr        string
	GRPCAddr        string
	HealthInterval  time.Duration
	ShutdownTimeout time.Duration
}

type Server struct {
	cfg    Config
	echo   *echo.Echo
	grpc   *grpc.Server
	health *health.Server
	stores []Store
	logger logger.ZapLogger
}

// New builds the HTTP API under /api/v1 and the gRPC health service. admin is
// mounted at /admin only when non-nil.
func New(cfg Config, routes []Route, admin Handler, stores []Store, log logger.ZapLogger) *Server {
	s := &Server{
		cfg:    cfg,
		stores: stores,
		logger: log,
		health: health.NewServer(),
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = middleware.ErrorHandler(log)
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
	}))
	e.Use(middleware.Metrics())
	e.Use(middleware.RequestLogger(log))

	e.GET("/health", s.healthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")
	for _, r := range routes {
		r.Handler.Register(api.Group(r.Prefix))
	}
	if admin != nil {
		admin.Register(e.Group("/admin"))
		log.Warn("admin reset endpoint enabled", zap.String("route", "DELETE /admin/data"))
	}
	s.echo = e

	s.grpc = grpc.NewServer()
	healthpb.RegisterHealthServer(s.grpc, s.health)
	reflection.Register(s.grpc)

	return s
}

// Echo exposes the HTTP router, mainly for tests.
func (s *Server) Echo() *echo.Echo {
	return s.echo
}

// Run serves HTTP and gRPC until ctx is cancelled or either listener fails,
// then shuts both down gracefully.
func (s *Server) Run(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.cfg.GRPCAddr)
	if err != nil {
		return err
	}

	errCh := make(chan error, 2)

	go func() {
		s.logger.Info("Starting HTTP server", zap.String("addr", s.cfg.HTTPAddr))
		if err := s.echo.Start(s.cfg.HTTPAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	go func() {
		s.logger.Info("Starting gRPC server", zap.String("addr", s.cfg.GRPCAddr))
		if err := s.grpc.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			errCh <- err
		}
	}()

	watchCtx, stopWatch := context.WithCancel(ctx)
	defer stopWatch()
	go s.watchStores(watchCtx)

	select {
	case <-ctx.Done():
	case err = <-errCh:
		s.logger.Error("server failed", zap.Error(err))
	}

	s.shutdown()
	return err
}

func (s *Server) shutdown() {
	s.logger.Info("Shutting down server...")
	s.health.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := s.echo.Shutdown(ctx); err != nil {
		s.logger.Error("HTTP shutdown failed", zap.Error(err))
	}

	stopped := make(chan struct{})
	go func() {
		s.grpc.GracefulStop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-ctx.Done():
		s.grpc.Stop()
	}
	s.logger.Info("Server stopped")
}

// watchStores pings every store on an interval and mirrors the result into
// the gRPC health status and the store_up gauge.
func (s *Server) watchStores(ctx context.Context) {
	interval := s.cfg.HealthInterval
	if interval <= 0 {
		interval = 15 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		s.CheckStores(ctx)
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// CheckStores pings each store once and updates the health status. The overall
// service ("") is serving only when every store answered.
func (s *Server) CheckStores(ctx context.Context) map[string]bool {
	results := s.pingStores(ctx)

	overall := healthpb.HealthCheckResponse_SERVING
	for name, up := range results {
		metrics.SetStoreUp(name, up)
		status := healthpb.HealthCheckResponse_SERVING
		if !up {
			status = healthpb.HealthCheckResponse_NOT_SERVING
			overall = healthpb.HealthCheckResponse_NOT_SERVING
		}
		s.health.SetServingStatus(name, status)
	}
	s.health.SetServingStatus("", overall)
	return results
}

func (s *Server) pingStores(ctx context.Context) map[string]bool {
	results := make(map[string]bool, len(s.stores))
	for _, st := range s.stores {
		pctx, cancel := context.WithTimeout(ctx, pingTimeout)
		err := st.DB.PingContext(pctx)
		cancel()
		if err != nil {
			s.logger.Warn("store ping failed", zap.String("store", st.Name), zap.Error(err))
		}
		results[st.Name] = err == nil
	}
	return results
}

type healthResponse struct {
	Status string            `json:"status"`
	Stores map[string]string `json:"stores"`
}

func (s *Server) healthCheck(c echo.Context) error {
	resp := healthResponse{Status: "ok", Stores: map[string]string{}}
	code := http.StatusOK
	for name, up := range s.pingStores(c.Request().Context()) {
		if up {
			resp.Stores[name] = "up"
			continue
		}
		resp.Stores[name] = "down"
		resp.Status = "degraded"
		code = http.StatusServiceUnavailable
	}
	return c.JSON(code, resp)
}
