package server

import (
	"context"
	"fmt"

	"github.com/NeuralTrust/SneakerLens/pkg/config"
	handlers "github.com/NeuralTrust/SneakerLens/pkg/handlers/http"
	"github.com/NeuralTrust/SneakerLens/pkg/middleware"
	"github.com/NeuralTrust/SneakerLens/pkg/server/router"
	"github.com/sirupsen/logrus"
)

type (
	APIServerDI struct {
		Config              *config.Config
		Logger              *logrus.Logger
		MiddlewareTransport middleware.Transport
		HandlerTransport    handlers.HandlerTransport
	}
	APIServer struct {
		*BaseServer
	}
)

func NewAPIServer(di APIServerDI) *APIServer {
	base := NewBaseServer(di.Config, di.Logger)
	base.WithRouters(router.NewAPIRouter(&di.MiddlewareTransport, di.HandlerTransport, di.Config))
	return &APIServer{BaseServer: base}
}

func (s *APIServer) Run() error {
	s.setupMetricsEndpoint()

	addr := fmt.Sprintf("%s:%d", s.Config.Server.Host, s.Config.Server.Port)
	s.Logger.WithFields(logrus.Fields{
		"addr":        addr,
		"environment": s.Config.Server.Environment,
	}).Info("starting api server")
	return s.Router.Listen(addr)
}

func (s *APIServer) Shutdown(ctx context.Context) error {
	if err := s.shutdownMetrics(ctx); err != nil {
		s.Logger.WithError(err).Warn("failed to stop metrics server")
	}
	return s.Router.ShutdownWithContext(ctx)
}
