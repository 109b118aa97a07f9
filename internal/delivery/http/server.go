// Package http hosts the Echo server serving the REST API.
package http

import (
	"context"
	"log/slog"
	"net"
	"strconv"

	"isdn/config"
	"isdn/internal/delivery"
	deliverymw "isdn/internal/delivery/http/middleware"
	"isdn/internal/delivery/http/router"
	"isdn/internal/delivery/http/validator"
	"isdn/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	slogecho "github.com/samber/slog-echo"
	"go.uber.org/fx"
)

type HTTPParams struct {
	fx.In
	fx.Lifecycle

	Config            *config.Config
	Logger            *slog.Logger
	RouterParams      router.RouterParams
	ErrorMiddleware   *deliverymw.ErrorMiddleware
	RequestMiddleware *deliverymw.RequestMiddleware
}

type httpServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

func NewServer(params HTTPParams) (delivery.Delivery, error) {
	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.Use(params.RequestMiddleware.Handle)
	echoServer.Use(slogecho.New(params.Logger))
	echoServer.Validator = validator.New()
	echoServer.Use(middleware.Recover())
	echoServer.Use(middleware.CORS())
	echoServer.HTTPErrorHandler = params.ErrorMiddleware.HandleHTTPError

	applyTimeouts(echoServer, params.Config)

	router := router.NewRouter(params.RouterParams)
	router.RegisterRoutes(echoServer)

	delivery := &httpServer{
		cfg:    params.Config,
		logger: params.Logger,
		server: echoServer,
	}

	params.Append(fx.Hook{
		OnStop: delivery.stop,
	})

	return delivery, nil
}

func applyTimeouts(e *echo.Echo, cfg *config.Config) {
	timeouts := cfg.HTTP.Timeouts
	if timeouts.ReadTimeout > 0 {
		e.Server.ReadTimeout = timeouts.ReadTimeout
	}
	if timeouts.ReadHeaderTimeout > 0 {
		e.Server.ReadHeaderTimeout = timeouts.ReadHeaderTimeout
	}
	if timeouts.WriteTimeout > 0 {
		e.Server.WriteTimeout = timeouts.WriteTimeout
	}
	if timeouts.IdleTimeout > 0 {
		e.Server.IdleTimeout = timeouts.IdleTimeout
	}
}

func (s *httpServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting HTTP server", slog.String("hostPort", hostPort))
	if err := s.server.Start(hostPort); err != nil {
		return errors.Wrap(err, "failed to serve http")
	}

	return nil
}

func (s *httpServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
