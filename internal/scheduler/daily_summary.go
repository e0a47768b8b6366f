// Package scheduler contém o agendamento do resumo diário de satisfação
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/totemfeedback/satisfaction-api/internal/config"
	"github.com/totemfeedback/satisfaction-api/internal/usecases/reporting"
)

type DailySummaryConfig struct {
	CronSchedule string
	Enabled      bool
}

// DailySummaryStatus é o retrato exposto em /api/admin/summary/status.
type DailySummaryStatus struct {
	Enabled            bool       `json:"enabled"`
	CronSchedule       string     `json:"cron_schedule"`
	Running            bool       `json:"running"`
	LastRunStartedAt   *time.Time `json:"last_run_started_at,omitempty"`
	LastRunCompletedAt *time.Time `json:"last_run_completed_at,omitempty"`
	LastTotal          *int       `json:"last_total,omitempty"`
}

// DailySummaryService registra nos logs, uma vez por dia, o total e a
// distribuição dos votos do dia anterior (convenção UTC).
type DailySummaryService struct {
	scheduler *gocron.Scheduler
	reporter  reporting.Reporter
	config    DailySummaryConfig

	runMutex           sync.Mutex
	running            bool
	lastRunStartedAt   time.Time
	lastRunCompletedAt time.Time
	lastTotal          *int
}

func NewDailySummaryService(reporter reporting.Reporter, cfg *config.Config) *DailySummaryService {
	summaryConfig := DailySummaryConfig{
		CronSchedule: cfg.DailySummary.CronSchedule, // Default: 7h da manhã todos os dias
		Enabled:      cfg.DailySummary.Enabled,      // Default: desabilitado
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": summaryConfig.CronSchedule,
		"enabled":       summaryConfig.Enabled,
	}).Info("Configuração do resumo diário carregada")

	return &DailySummaryService{
		scheduler: gocron.NewScheduler(time.UTC),
		reporter:  reporter,
		config:    summaryConfig,
	}
}

func (s *DailySummaryService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron do resumo diário desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron do resumo diário")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RunNow(); err != nil {
			logrus.WithError(err).Error("Erro na geração do resumo diário")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar resumo diário: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron do resumo diário")
		s.scheduler.Stop()
	}()

	return nil
}

// RunNow calcula e loga o resumo do dia anterior. Execuções concorrentes são
// recusadas silenciosamente.
func (s *DailySummaryService) RunNow() error {
	s.runMutex.Lock()
	if s.running {
		s.runMutex.Unlock()
		logrus.Warn("Resumo diário já está em execução")
		return nil
	}
	s.running = true
	s.lastRunStartedAt = time.Now()
	s.runMutex.Unlock()

	defer func() {
		s.runMutex.Lock()
		s.running = false
		s.lastRunCompletedAt = time.Now()
		s.runMutex.Unlock()
	}()

	yesterday := time.Now().UTC().AddDate(0, 0, -1)
	yesterday = time.Date(yesterday.Year(), yesterday.Month(), yesterday.Day(), 0, 0, 0, 0, time.UTC)

	summary, err := s.reporter.Summary(&yesterday)
	if err != nil {
		return fmt.Errorf("erro ao agregar resumo diário: %w", err)
	}

	fields := logrus.Fields{
		"date":  yesterday.Format("2006-01-02"),
		"total": summary.Total,
	}
	for _, stat := range summary.Stats {
		fields[stat.Level] = fmt.Sprintf("%d (%s%%)", stat.Count, stat.Percentage)
	}
	logrus.WithFields(fields).Info("Resumo diário de satisfação")

	s.runMutex.Lock()
	total := summary.Total
	s.lastTotal = &total
	s.runMutex.Unlock()

	return nil
}

func (s *DailySummaryService) Status() DailySummaryStatus {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()

	status := DailySummaryStatus{
		Enabled:      s.config.Enabled,
		CronSchedule: s.config.CronSchedule,
		Running:      s.running,
		LastTotal:    s.lastTotal,
	}

	if !s.lastRunStartedAt.IsZero() {
		startedAt := s.lastRunStartedAt
		status.LastRunStartedAt = &startedAt
	}
	if !s.lastRunCompletedAt.IsZero() {
		completedAt := s.lastRunCompletedAt
		status.LastRunCompletedAt = &completedAt
	}

	return status
}
