package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/agency-dashboard/internal/api/handler"
	"github.com/vfg2006/agency-dashboard/internal/api/handler/router"
	"github.com/vfg2006/agency-dashboard/internal/config"
	"github.com/vfg2006/agency-dashboard/internal/usecases/gating"
	"github.com/vfg2006/agency-dashboard/internal/usecases/viewing"
	"github.com/vfg2006/agency-dashboard/pkg/apiErrors"
	"github.com/vfg2006/agency-dashboard/pkg/log"
	"github.com/vfg2006/agency-dashboard/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
}

// New monta as rotas e a cadeia de middlewares. records é exposto no healthcheck.
func New(
	cfg *config.Config,
	viewer viewing.Viewer,
	gate gating.Gatekeeper,
	agencyLabel string,
	records map[string]int,
) (*Server, error) {
	pages, err := handler.NewPages(agencyLabel, gate.Enabled())
	if err != nil {
		return nil, fmt.Errorf("api: parse templates: %w", err)
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck(records)...),
		router.WithRoutes(handler.Metrics()...),
		router.WithRoutes(handler.Access(gate, pages, !log.IsDevelopment())...),
		router.WithRoutes(handler.Manager(viewer, pages)...),
		router.WithRoutes(handler.Summary(viewer, pages)...),
		router.WithNotFound(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			apiErrors.WriteError(w, apiErrors.ErrPathNotFound, "Rota não encontrada", nil)
		})),
	)

	for _, route := range rt.Routes() {
		log.L.WithFields(log.Fields{"method": route.Method, "path": route.Path}).Debug("api: route registered")
	}

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.MetricsMiddleware(),
		middleware.Cors(cfg.Server.AllowedOrigins),
		middleware.GateMiddleware(gate),
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           alice.New(middlewares...).Then(rt),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// Handler expõe a cadeia completa, usada nos testes
func (s Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
			errCh <- err
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(done)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": shutdownTimeout.String(),
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
