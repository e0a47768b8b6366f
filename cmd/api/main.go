package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/totemfeedback/satisfaction-api/infrastructure/database/postgres"
	"github.com/totemfeedback/satisfaction-api/infrastructure/repository"
	"github.com/totemfeedback/satisfaction-api/internal/api"
	"github.com/totemfeedback/satisfaction-api/internal/config"
	"github.com/totemfeedback/satisfaction-api/internal/scheduler"
	"github.com/totemfeedback/satisfaction-api/internal/usecases/authenticating"
	"github.com/totemfeedback/satisfaction-api/internal/usecases/exporting"
	"github.com/totemfeedback/satisfaction-api/internal/usecases/reporting"
	"github.com/totemfeedback/satisfaction-api/internal/usecases/submitting"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	if cfg.UsingDefaultPassword() {
		logrus.Warn("ADMIN_PASSWORD está com o valor de desenvolvimento; configure uma senha real antes de publicar")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	feedbackRepo := repository.NewFeedbackRepository(pgConn)

	submitService := submitting.NewService(feedbackRepo)
	reportService := reporting.NewService(feedbackRepo)
	exportService := exporting.NewService(feedbackRepo)
	authenticator := authenticating.NewService(cfg)

	dailySummaryService := scheduler.NewDailySummaryService(reportService, cfg)
	if err := dailySummaryService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do resumo diário")
	}

	server, err := api.New(
		cfg,
		submitService,
		reportService,
		exportService,
		authenticator,
		dailySummaryService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
