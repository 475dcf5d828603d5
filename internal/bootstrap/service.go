// Package bootstrap wires config, logging, the stores, the Gateway, and the
// HTTP adapter into a runnable Service, mirroring the teacher's
// internal/bootstrap.Service shape.
package bootstrap

import (
	"context"

	"github.com/gofiber/fiber/v2"

	httpin "github.com/gabrielBlankenburg/exbanking-go/internal/adapters/http/in"
	"github.com/gabrielBlankenburg/exbanking-go/internal/bus"
	"github.com/gabrielBlankenburg/exbanking-go/internal/gateway"
	"github.com/gabrielBlankenburg/exbanking-go/internal/service/command"
	"github.com/gabrielBlankenburg/exbanking-go/internal/service/query"
	"github.com/gabrielBlankenburg/exbanking-go/internal/store/txlog"
	"github.com/gabrielBlankenburg/exbanking-go/internal/store/userstore"
	"github.com/gabrielBlankenburg/exbanking-go/pkg/mlog"
)

// Service owns the Gateway's lifetime and the HTTP server built on top of it.
type Service struct {
	Config *Config
	Logger mlog.Logger

	app     *fiber.App
	gateway *gateway.Gateway
	cancel  context.CancelFunc
}

// NewService builds a Service over a fresh in-memory core.
func NewService(cfg *Config, logger mlog.Logger) *Service {
	users := userstore.New()
	log := txlog.New()
	completionBus := bus.New(cfg.CompletionBuffer)

	gw := gateway.New(users, log, completionBus, logger, cfg.GatewayBuffer)

	handler := &httpin.AccountHandler{
		Command: &command.UseCase{Users: users, Gateway: gw, Logger: logger},
		Query:   &query.UseCase{Gateway: gw},
		Logger:  logger,
	}

	return &Service{
		Config:  cfg,
		Logger:  logger,
		app:     httpin.NewRouter(logger, handler),
		gateway: gw,
	}
}

// Run starts the Gateway's event loop and blocks serving HTTP on
// Config.ServerAddress until the listener stops.
func (s *Service) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	go s.gateway.Run(ctx)

	s.Logger.Infof("banking core listening on %s", s.Config.ServerAddress)

	return s.app.Listen(s.Config.ServerAddress)
}

// Shutdown stops the Gateway's event loop and the HTTP server.
func (s *Service) Shutdown(ctx context.Context) error {
	if s.cancel != nil {
		s.cancel()
	}

	return s.app.ShutdownWithContext(ctx)
}
