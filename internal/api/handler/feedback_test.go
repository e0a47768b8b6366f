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
	"github.com/totemfeedback/satisfaction-api/internal/domain"
	"github.com/totemfeedback/satisfaction-api/internal/usecases/reporting"
	"github.com/totemfeedback/satisfaction-api/internal/usecases/submitting"
	"go.uber.org/mock/gomock"
)

func newFeedbackRouter(mockRepo *mocks.MockFeedbackRepository) router.Router {
	return router.New(
		router.WithRoutes(Feedback(
			submitting.NewService(mockRepo),
			reporting.NewService(mockRepo),
		)...),
	)
}

func TestCreateFeedback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("nível válido responde 200 com mensagem de agradecimento", func(t *testing.T) {
		mockRepo := mocks.NewMockFeedbackRepository(ctrl)
		mockRepo.EXPECT().
			Insert(domain.LevelMuitoSatisfeito).
			Return(&domain.FeedbackEvent{
				ID:                1,
				SatisfactionLevel: domain.LevelMuitoSatisfeito,
				CreatedAt:         time.Now().UTC(),
			}, nil)

		rt := newFeedbackRouter(mockRepo)

		req := httptest.NewRequest(http.MethodPost, "/api/feedback",
			strings.NewReader(`{"satisfaction_level":"Muito Satisfeito"}`))
		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp CreateFeedbackResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, "Obrigado pelo seu feedback!", resp.Message)
	})

	t.Run("nível inválido responde 400 sem gravar", func(t *testing.T) {
		mockRepo := mocks.NewMockFeedbackRepository(ctrl)

		rt := newFeedbackRouter(mockRepo)

		for _, body := range []string{
			`{"satisfaction_level":"Neutro"}`,
			`{"satisfaction_level":""}`,
			`{}`,
			`não é json`,
		} {
			req := httptest.NewRequest(http.MethodPost, "/api/feedback", strings.NewReader(body))
			rec := httptest.NewRecorder()
			rt.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.JSONEq(t, `{"error":"Invalid satisfaction level"}`, rec.Body.String())
		}
	})

	t.Run("falha do banco responde 500 com mensagem genérica", func(t *testing.T) {
		mockRepo := mocks.NewMockFeedbackRepository(ctrl)
		mockRepo.EXPECT().
			Insert(domain.LevelSatisfeito).
			Return(nil, assert.AnError)

		rt := newFeedbackRouter(mockRepo)

		req := httptest.NewRequest(http.MethodPost, "/api/feedback",
			strings.NewReader(`{"satisfaction_level":"Satisfeito"}`))
		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"error":"Operation failed"}`, rec.Body.String())
	})
}

func TestListFeedback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("listagem padrão usa limite 100 e ordena do mais recente", func(t *testing.T) {
		mockRepo := mocks.NewMockFeedbackRepository(ctrl)
		mockRepo.EXPECT().
			List(domain.FeedbackFilters{Limit: 100}).
			Return([]*domain.FeedbackEvent{
				{ID: 2, SatisfactionLevel: domain.LevelSatisfeito, CreatedAt: time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)},
				{ID: 1, SatisfactionLevel: domain.LevelInsatisfeito, CreatedAt: time.Date(2025, 3, 10, 11, 0, 0, 0, time.UTC)},
			}, nil)

		rt := newFeedbackRouter(mockRepo)

		req := httptest.NewRequest(http.MethodGet, "/api/feedback", nil)
		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var events []domain.FeedbackEvent
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &events))
		assert.Len(t, events, 2)
		assert.Equal(t, 2, events[0].ID)
		assert.Equal(t, 1, events[1].ID)
	})

	t.Run("limit não numérico responde 400", func(t *testing.T) {
		mockRepo := mocks.NewMockFeedbackRepository(ctrl)

		rt := newFeedbackRouter(mockRepo)

		req := httptest.NewRequest(http.MethodGet, "/api/feedback?limit=abc", nil)
		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"Invalid limit"}`, rec.Body.String())
	})

	t.Run("filtro de data é repassado ao repositório", func(t *testing.T) {
		date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

		mockRepo := mocks.NewMockFeedbackRepository(ctrl)
		mockRepo.EXPECT().
			List(domain.FeedbackFilters{Date: &date, Limit: 100}).
			Return(nil, nil)

		rt := newFeedbackRouter(mockRepo)

		req := httptest.NewRequest(http.MethodGet, "/api/feedback?date=2025-03-10", nil)
		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("data malformada é ignorada", func(t *testing.T) {
		mockRepo := mocks.NewMockFeedbackRepository(ctrl)
		mockRepo.EXPECT().
			List(domain.FeedbackFilters{Limit: 100}).
			Return(nil, nil)

		rt := newFeedbackRouter(mockRepo)

		req := httptest.NewRequest(http.MethodGet, "/api/feedback?date=10-03-2025", nil)
		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
