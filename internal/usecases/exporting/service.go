package exporting

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/totemfeedback/satisfaction-api/infrastructure/repository"
	"github.com/totemfeedback/satisfaction-api/internal/domain"
)

const (
	FormatCSV = "csv"
	FormatTXT = "txt"

	// Formatação pt-BR usada tanto na exportação quanto na tabela do admin.
	dateLayout = "02/01/2006"
	timeLayout = "15:04:05"
)

// ErrInvalidFormat indica um seletor de formato fora de {csv, txt}.
var ErrInvalidFormat = errors.New("formato de exportação inválido")

type Exporter interface {
	Export(format string, date *time.Time) (*domain.ExportFile, error)
}

type Service struct {
	feedbackRepo repository.FeedbackRepository
}

func NewService(feedbackRepo repository.FeedbackRepository) Exporter {
	return &Service{
		feedbackRepo: feedbackRepo,
	}
}

// Export gera o conjunto completo (opcionalmente filtrado por data) como CSV
// ou TXT, mais recentes primeiro. O nome do arquivo embute a data UTC atual.
func (s *Service) Export(format string, date *time.Time) (*domain.ExportFile, error) {
	if format != FormatCSV && format != FormatTXT {
		return nil, ErrInvalidFormat
	}

	events, err := s.feedbackRepo.List(domain.FeedbackFilters{Date: date})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao consultar feedbacks para exportação")
	}

	file := &domain.ExportFile{}
	today := time.Now().UTC().Format("2006-01-02")

	switch format {
	case FormatCSV:
		file.Content, err = renderCSV(events)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao gerar CSV")
		}
		file.ContentType = "text/csv"
		file.Filename = fmt.Sprintf("feedback-%s.csv", today)

	case FormatTXT:
		file.Content = renderTXT(events)
		file.ContentType = "text/plain"
		file.Filename = fmt.Sprintf("feedback-%s.txt", today)
	}

	return file, nil
}

func renderCSV(events []*domain.FeedbackEvent) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write([]string{"ID", "Nível de Satisfação", "Data", "Hora"}); err != nil {
		return nil, err
	}

	for _, event := range events {
		createdAt := event.CreatedAt.UTC()
		record := []string{
			strconv.Itoa(event.ID),
			event.SatisfactionLevel,
			createdAt.Format(dateLayout),
			createdAt.Format(timeLayout),
		}
		if err := writer.Write(record); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func renderTXT(events []*domain.FeedbackEvent) []byte {
	blocks := make([]string, 0, len(events))
	for _, event := range events {
		createdAt := event.CreatedAt.UTC()
		blocks = append(blocks, strings.Join([]string{
			fmt.Sprintf("ID: %d", event.ID),
			fmt.Sprintf("Nível: %s", event.SatisfactionLevel),
			fmt.Sprintf("Data: %s", createdAt.Format(dateLayout)),
			fmt.Sprintf("Hora: %s", createdAt.Format(timeLayout)),
			"---",
		}, "\n"))
	}

	return []byte(strings.Join(blocks, "\n"))
}
