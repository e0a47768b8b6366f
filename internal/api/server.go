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
	"github.com/totemfeedback/satisfaction-api/internal/api/handler"
	"github.com/totemfeedback/satisfaction-api/internal/api/handler/router"
	"github.com/totemfeedback/satisfaction-api/internal/config"
	"github.com/totemfeedback/satisfaction-api/internal/scheduler"
	"github.com/totemfeedback/satisfaction-api/internal/usecases/authenticating"
	"github.com/totemfeedback/satisfaction-api/internal/usecases/exporting"
	"github.com/totemfeedback/satisfaction-api/internal/usecases/reporting"
	"github.com/totemfeedback/satisfaction-api/internal/usecases/submitting"
	"github.com/totemfeedback/satisfaction-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	submitter submitting.Submitter,
	reporter reporting.Reporter,
	exporter exporting.Exporter,
	authenticator authenticating.Authenticator,
	dailySummaryService *scheduler.DailySummaryService,
) (*Server, error) {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Pages()...),
		router.WithRoutes(handler.Feedback(submitter, reporter)...),
		router.WithRoutes(handler.Admin(authenticator, reporter, exporter)...),
		router.WithRoutes(handler.DailySummary(dailySummaryService)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
	}

	chain := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           chain,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}
