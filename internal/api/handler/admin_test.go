package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/totemfeedback/satisfaction-api/infrastructure/repository/mocks"
	"github.com/totemfeedback/satisfaction-api/internal/api/handler/router"
	"github.com/totemfeedback/satisfaction-api/internal/config"
	"github.com/totemfeedback/satisfaction-api/internal/domain"
	"github.com/totemfeedback/satisfaction-api/internal/usecases/authenticating"
	"github.com/totemfeedback/satisfaction-api/internal/usecases/exporting"
	"github.com/totemfeedback/satisfaction-api/internal/usecases/reporting"
	"go.uber.org/mock/gomock"
)

func newAdminRouter(mockRepo *mocks.MockFeedbackRepository, password string) router.Router {
	cfg := &config.Config{}
	cfg.Auth.AdminPassword = password

	return router.New(
		router.WithRoutes(Admin(
			authenticating.NewService(cfg),
			reporting.NewService(mockRepo),
			exporting.NewService(mockRepo),
		)...),
	)
}

func TestLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rt := newAdminRouter(mocks.NewMockFeedbackRepository(ctrl), "pedrosa")

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "senha correta responde sucesso sem mensagem de erro",
			body:       `{"password":"pedrosa"}`,
			wantStatus: http.StatusOK,
			wantBody:   `{"success":true}`,
		},
		{
			name:       "senha incorreta responde 401 genérico",
			body:       `{"password":"errada"}`,
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"error":"Invalid password"}`,
		},
		{
			name:       "senha vazia responde 401 genérico",
			body:       `{"password":""}`,
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"error":"Invalid password"}`,
		},
		{
			name:       "corpo malformado responde 401 genérico",
			body:       `{`,
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"error":"Invalid password"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			rt.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("resumo agregado com percentuais", func(t *testing.T) {
		mockRepo := mocks.NewMockFeedbackRepository(ctrl)
		mockRepo.EXPECT().
			CountByLevel(domain.FeedbackFilters{}).
			Return([]domain.LevelCount{
				{Level: domain.LevelInsatisfeito, Count: 1},
				{Level: domain.LevelMuitoSatisfeito, Count: 1},
				{Level: domain.LevelSatisfeito, Count: 2},
			}, nil)

		rt := newAdminRouter(mockRepo, "pedrosa")

		req := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{
			"total": 4,
			"stats": [
				{"level":"Insatisfeito","count":1,"percentage":"25.0"},
				{"level":"Muito Satisfeito","count":1,"percentage":"25.0"},
				{"level":"Satisfeito","count":2,"percentage":"50.0"}
			]
		}`, rec.Body.String())
	})

	t.Run("filtro de data é repassado", func(t *testing.T) {
		date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

		mockRepo := mocks.NewMockFeedbackRepository(ctrl)
		mockRepo.EXPECT().
			CountByLevel(domain.FeedbackFilters{Date: &date}).
			Return(nil, nil)

		rt := newAdminRouter(mockRepo, "pedrosa")

		req := httptest.NewRequest(http.MethodGet, "/api/admin/stats?date=2025-03-10", nil)
		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"total":0,"stats":[]}`, rec.Body.String())
	})
}

func TestExport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("exportação CSV com cabeçalhos de download", func(t *testing.T) {
		mockRepo := mocks.NewMockFeedbackRepository(ctrl)
		mockRepo.EXPECT().
			List(domain.FeedbackFilters{}).
			Return([]*domain.FeedbackEvent{
				{ID: 1, SatisfactionLevel: domain.LevelSatisfeito, CreatedAt: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)},
			}, nil)

		rt := newAdminRouter(mockRepo, "pedrosa")

		req := httptest.NewRequest(http.MethodGet, "/api/admin/export?format=csv", nil)
		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))

		disposition := rec.Header().Get("Content-Disposition")
		assert.True(t, strings.HasPrefix(disposition, "attachment; filename=feedback-"))
		assert.True(t, strings.HasSuffix(disposition, ".csv"))
		assert.Contains(t, rec.Body.String(), "ID,Nível de Satisfação,Data,Hora")
	})

	t.Run("exportação TXT com content-type de texto", func(t *testing.T) {
		mockRepo := mocks.NewMockFeedbackRepository(ctrl)
		mockRepo.EXPECT().
			List(domain.FeedbackFilters{}).
			Return(nil, nil)

		rt := newAdminRouter(mockRepo, "pedrosa")

		req := httptest.NewRequest(http.MethodGet, "/api/admin/export?format=txt", nil)
		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
		assert.True(t, strings.HasSuffix(rec.Header().Get("Content-Disposition"), ".txt"))
	})

	t.Run("formato desconhecido responde 400", func(t *testing.T) {
		mockRepo := mocks.NewMockFeedbackRepository(ctrl)

		rt := newAdminRouter(mockRepo, "pedrosa")

		req := httptest.NewRequest(http.MethodGet, "/api/admin/export?format=pdf", nil)
		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"Invalid format"}`, rec.Body.String())
	})

	t.Run("formato ausente assume csv", func(t *testing.T) {
		mockRepo := mocks.NewMockFeedbackRepository(ctrl)
		mockRepo.EXPECT().
			List(domain.FeedbackFilters{}).
			Return(nil, nil)

		rt := newAdminRouter(mockRepo, "pedrosa")

		req := httptest.NewRequest(http.MethodGet, "/api/admin/export", nil)
		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	})
}
