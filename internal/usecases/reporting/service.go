package reporting

import (
	"time"

	"github.com/pkg/errors"
	"github.com/totemfeedback/satisfaction-api/infrastructure/repository"
	"github.com/totemfeedback/satisfaction-api/internal/domain"
	"github.com/totemfeedback/satisfaction-api/pkg/utils"
)

// DefaultListLimit é aplicado quando a listagem não informa limite.
const DefaultListLimit = 100

type Reporter interface {
	ListFeedback(filters domain.FeedbackFilters) ([]*domain.FeedbackEvent, error)
	Summary(date *time.Time) (*domain.StatsSummary, error)
}

type Service struct {
	feedbackRepo repository.FeedbackRepository
}

func NewService(feedbackRepo repository.FeedbackRepository) Reporter {
	return &Service{
		feedbackRepo: feedbackRepo,
	}
}

// ListFeedback retorna os registros brutos, mais recentes primeiro.
func (s *Service) ListFeedback(filters domain.FeedbackFilters) ([]*domain.FeedbackEvent, error) {
	if filters.Limit <= 0 {
		filters.Limit = DefaultListLimit
	}

	events, err := s.feedbackRepo.List(filters)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar feedbacks")
	}

	if events == nil {
		events = []*domain.FeedbackEvent{}
	}

	return events, nil
}

// Summary agrupa os eventos por nível na janela filtrada. Apenas níveis com
// ocorrências entram no resultado; o total é a soma dos contadores e cada
// percentual é formatado com uma casa decimal.
func (s *Service) Summary(date *time.Time) (*domain.StatsSummary, error) {
	counts, err := s.feedbackRepo.CountByLevel(domain.FeedbackFilters{Date: date})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao agregar feedbacks")
	}

	total := 0
	for _, lc := range counts {
		total += lc.Count
	}

	stats := make([]domain.LevelStats, 0, len(counts))
	for _, lc := range counts {
		stats = append(stats, domain.LevelStats{
			Level:      lc.Level,
			Count:      lc.Count,
			Percentage: utils.FormatPercent(lc.Count, total),
		})
	}

	return &domain.StatsSummary{
		Total: total,
		Stats: stats,
	}, nil
}
