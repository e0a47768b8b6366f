package handler

import (
	"net/http"

	"github.com/totemfeedback/satisfaction-api/internal/scheduler"
	"github.com/totemfeedback/satisfaction-api/pkg/apiErrors"
	"github.com/totemfeedback/satisfaction-api/pkg/log"
)

// RunDailySummary dispara manualmente a geração do resumo diário.
func RunDailySummary(service *scheduler.DailySummaryService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("admin: execução manual do resumo diário solicitada")

		if err := service.RunNow(); err != nil {
			logger.WithError(err).Error("admin: falha ao gerar resumo diário")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Operation failed")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]bool{"success": true}); err != nil {
			logger.WithError(err).Error("admin: falha ao enviar resposta")
		}
	})
}

// DailySummaryStatus expõe o estado atual do agendador do resumo diário.
func DailySummaryStatus(service *scheduler.DailySummaryService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(service.Status()); err != nil {
			logger.WithError(err).Error("admin: falha ao enviar resposta")
		}
	})
}
