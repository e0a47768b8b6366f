package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/totemfeedback/satisfaction-api/infrastructure/database/postgres"
	"github.com/totemfeedback/satisfaction-api/internal/domain"
)

const feedbackTable = "satisfaction_feedback"

// Filtro de data de calendário fixado em UTC, na escrita e na leitura, para
// evitar registros mudando de dia na virada de fuso.
const createdAtDateUTC = "(created_at AT TIME ZONE 'UTC')::date"

type FeedbackRepository interface {
	Insert(satisfactionLevel string) (*domain.FeedbackEvent, error)
	List(filters domain.FeedbackFilters) ([]*domain.FeedbackEvent, error)
	CountByLevel(filters domain.FeedbackFilters) ([]domain.LevelCount, error)
}

type feedbackRepository struct {
	conn *postgres.Connection
}

func NewFeedbackRepository(conn *postgres.Connection) FeedbackRepository {
	return &feedbackRepository{
		conn: conn,
	}
}

// Insert grava exatamente um evento; id e created_at são atribuídos pelo banco.
func (r *feedbackRepository) Insert(satisfactionLevel string) (*domain.FeedbackEvent, error) {
	queryBuilder := squirrel.
		Insert(feedbackTable).
		Columns("satisfaction_level").
		Values(satisfactionLevel).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar)

	insertSQL, insertArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	event := &domain.FeedbackEvent{SatisfactionLevel: satisfactionLevel}
	err = r.conn.QueryRow(insertSQL, insertArgs...).Scan(&event.ID, &event.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("erro ao inserir feedback: %w", err)
	}

	return event, nil
}

// List retorna os eventos mais recentes primeiro. Limit igual a zero significa
// sem limite (usado pela exportação, que percorre o conjunto inteiro).
func (r *feedbackRepository) List(filters domain.FeedbackFilters) ([]*domain.FeedbackEvent, error) {
	queryBuilder := squirrel.
		Select("id", "satisfaction_level", "created_at").
		From(feedbackTable).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if filters.Date != nil {
		queryBuilder = queryBuilder.Where(createdAtDateUTC+" = ?", filters.Date.Format("2006-01-02"))
	}

	if filters.Limit > 0 {
		queryBuilder = queryBuilder.Limit(uint64(filters.Limit))
	}

	listSQL, listArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	rows, err := r.conn.Query(listSQL, listArgs...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar feedbacks: %w", err)
	}
	defer rows.Close()

	var events []*domain.FeedbackEvent
	for rows.Next() {
		var event domain.FeedbackEvent
		if err := rows.Scan(&event.ID, &event.SatisfactionLevel, &event.CreatedAt); err != nil {
			return nil, fmt.Errorf("erro ao processar resultado: %w", err)
		}
		events = append(events, &event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return events, nil
}

// CountByLevel agrupa os eventos por nível de satisfação. Níveis sem
// ocorrências na janela filtrada simplesmente não retornam linha.
func (r *feedbackRepository) CountByLevel(filters domain.FeedbackFilters) ([]domain.LevelCount, error) {
	queryBuilder := squirrel.
		Select("satisfaction_level", "COUNT(*) AS count").
		From(feedbackTable).
		GroupBy("satisfaction_level").
		OrderBy("satisfaction_level ASC").
		PlaceholderFormat(squirrel.Dollar)

	if filters.Date != nil {
		queryBuilder = queryBuilder.Where(createdAtDateUTC+" = ?", filters.Date.Format("2006-01-02"))
	}

	countSQL, countArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	rows, err := r.conn.Query(countSQL, countArgs...)
	if err != nil {
		return nil, fmt.Errorf("erro ao agrupar feedbacks: %w", err)
	}
	defer rows.Close()

	var counts []domain.LevelCount
	for rows.Next() {
		var lc domain.LevelCount
		if err := rows.Scan(&lc.Level, &lc.Count); err != nil {
			return nil, fmt.Errorf("erro ao processar resultado: %w", err)
		}
		counts = append(counts, lc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return counts, nil
}
