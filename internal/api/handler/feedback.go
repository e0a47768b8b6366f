package handler

import (
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/totemfeedback/satisfaction-api/internal/domain"
	"github.com/totemfeedback/satisfaction-api/internal/usecases/reporting"
	"github.com/totemfeedback/satisfaction-api/internal/usecases/submitting"
	"github.com/totemfeedback/satisfaction-api/pkg/apiErrors"
	"github.com/totemfeedback/satisfaction-api/pkg/log"
	"github.com/totemfeedback/satisfaction-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type CreateFeedbackRequest struct {
	SatisfactionLevel string `json:"satisfaction_level"`
}

type CreateFeedbackResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// CreateFeedback registra um voto do totem. Corpo inválido ou nível fora da
// enumeração respondem 400 sem gravar nada.
func CreateFeedback(service submitting.Submitter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req CreateFeedbackRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidLevel, "Invalid satisfaction level")
			return
		}

		event, err := service.Submit(req.SatisfactionLevel)
		if err != nil {
			if errors.Is(err, submitting.ErrInvalidLevel) {
				logger.WithField("satisfaction_level", req.SatisfactionLevel).
					Warn("feedback: nível de satisfação rejeitado")
				apiErrors.WriteError(w, apiErrors.ErrInvalidLevel, "Invalid satisfaction level")
				return
			}

			logger.WithError(err).Error("feedback: falha ao registrar voto")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Operation failed")
			return
		}

		logger.WithFields(log.Fields{
			"feedback_id":        event.ID,
			"satisfaction_level": event.SatisfactionLevel,
		}).Info("feedback: voto registrado")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(CreateFeedbackResponse{
			Success: true,
			Message: submitting.ThankYouMessage,
		}); err != nil {
			logger.WithError(err).Error("feedback: falha ao enviar resposta")
		}
	})
}

// ListFeedback retorna os registros brutos, mais recentes primeiro. Datas
// malformadas são ignoradas; limit não numérico responde 400.
func ListFeedback(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters := domain.FeedbackFilters{
			Date: utils.ParseDate(r.URL.Query().Get("date")),
		}

		if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
			limit, err := strconv.Atoi(limitStr)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidLimit, "Invalid limit")
				return
			}
			filters.Limit = limit
		}

		events, err := service.ListFeedback(filters)
		if err != nil {
			logger.WithError(err).Error("feedback: falha ao listar registros")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Operation failed")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(events); err != nil {
			logger.WithError(err).Error("feedback: falha ao enviar resposta")
		}
	})
}
