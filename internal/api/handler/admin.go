package handler

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
	"github.com/totemfeedback/satisfaction-api/internal/usecases/authenticating"
	"github.com/totemfeedback/satisfaction-api/internal/usecases/exporting"
	"github.com/totemfeedback/satisfaction-api/internal/usecases/reporting"
	"github.com/totemfeedback/satisfaction-api/pkg/apiErrors"
	"github.com/totemfeedback/satisfaction-api/pkg/log"
	"github.com/totemfeedback/satisfaction-api/pkg/utils"
)

type LoginRequest struct {
	Password string `json:"password"`
}

type LoginResponse struct {
	Success bool `json:"success"`
}

// Login confere a senha do painel. Não emite token nem sessão: em caso de
// sucesso o cliente apenas guarda o resultado. A mensagem de recusa é sempre
// genérica.
func Login(service authenticating.Authenticator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidPassword, "Invalid password")
			return
		}

		if err := service.Login(req.Password); err != nil {
			if errors.Is(err, authenticating.ErrMissingSecret) {
				logger.Error("admin: login sem senha configurada")
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Operation failed")
				return
			}

			logger.Warn("admin: tentativa de login recusada")
			apiErrors.WriteError(w, apiErrors.ErrInvalidPassword, "Invalid password")
			return
		}

		logger.Info("admin: login autorizado")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(LoginResponse{Success: true}); err != nil {
			logger.WithError(err).Error("admin: falha ao enviar resposta")
		}
	})
}

// Stats responde o resumo agregado, opcionalmente filtrado por data.
func Stats(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		date := utils.ParseDate(r.URL.Query().Get("date"))

		summary, err := service.Summary(date)
		if err != nil {
			logger.WithError(err).Error("admin: falha ao agregar estatísticas")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Operation failed")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(summary); err != nil {
			logger.WithError(err).Error("admin: falha ao enviar resposta")
		}
	})
}

// Export devolve o conjunto filtrado como download CSV ou TXT.
func Export(service exporting.Exporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		format := r.URL.Query().Get("format")
		if format == "" {
			format = exporting.FormatCSV
		}
		date := utils.ParseDate(r.URL.Query().Get("date"))

		file, err := service.Export(format, date)
		if err != nil {
			if errors.Is(err, exporting.ErrInvalidFormat) {
				logger.WithField("format", format).Warn("admin: formato de exportação rejeitado")
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Invalid format")
				return
			}

			logger.WithError(err).Error("admin: falha ao gerar exportação")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Operation failed")
			return
		}

		logger.WithFields(log.Fields{
			"format":   format,
			"filename": file.Filename,
		}).Info("admin: exportação gerada")

		w.Header().Set("Content-Type", file.ContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", file.Filename))
		if _, err := w.Write(file.Content); err != nil {
			logger.WithError(err).Error("admin: falha ao enviar arquivo")
		}
	})
}
