package submitting

import (
	"github.com/pkg/errors"
	"github.com/totemfeedback/satisfaction-api/infrastructure/repository"
	"github.com/totemfeedback/satisfaction-api/internal/domain"
)

// ThankYouMessage é a confirmação fixa exibida no totem após um voto válido.
const ThankYouMessage = "Obrigado pelo seu feedback!"

// ErrInvalidLevel indica um nível ausente ou fora da enumeração fixa.
// Nenhuma escrita acontece nesse caso.
var ErrInvalidLevel = errors.New("nível de satisfação inválido")

type Submitter interface {
	Submit(satisfactionLevel string) (*domain.FeedbackEvent, error)
}

type Service struct {
	feedbackRepo repository.FeedbackRepository
}

func NewService(feedbackRepo repository.FeedbackRepository) Submitter {
	return &Service{
		feedbackRepo: feedbackRepo,
	}
}

// Submit valida o nível e grava exatamente um evento. O servidor não faz
// deduplicação: a supressão de toques repetidos é responsabilidade do totem.
func (s *Service) Submit(satisfactionLevel string) (*domain.FeedbackEvent, error) {
	if !domain.IsValidSatisfactionLevel(satisfactionLevel) {
		return nil, ErrInvalidLevel
	}

	event, err := s.feedbackRepo.Insert(satisfactionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao registrar feedback")
	}

	return event, nil
}
