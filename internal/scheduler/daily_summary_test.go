package scheduler

import (
	"testing"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/stretchr/testify/assert"
	"github.com/totemfeedback/satisfaction-api/infrastructure/repository/mocks"
	"github.com/totemfeedback/satisfaction-api/internal/domain"
	"github.com/totemfeedback/satisfaction-api/internal/usecases/reporting"
	"go.uber.org/mock/gomock"
)

func TestDailySummaryService_RunNow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockFeedbackRepository(ctrl)

	yesterday := time.Now().UTC().AddDate(0, 0, -1)
	yesterday = time.Date(yesterday.Year(), yesterday.Month(), yesterday.Day(), 0, 0, 0, 0, time.UTC)

	mockRepo.EXPECT().
		CountByLevel(domain.FeedbackFilters{Date: &yesterday}).
		Return([]domain.LevelCount{
			{Level: domain.LevelMuitoSatisfeito, Count: 7},
			{Level: domain.LevelSatisfeito, Count: 3},
		}, nil)

	service := &DailySummaryService{
		scheduler: gocron.NewScheduler(time.UTC),
		reporter:  reporting.NewService(mockRepo),
		config: DailySummaryConfig{
			CronSchedule: "0 7 * * *",
			Enabled:      true,
		},
	}

	err := service.RunNow()
	assert.NoError(t, err)

	status := service.Status()
	assert.True(t, status.Enabled)
	assert.Equal(t, "0 7 * * *", status.CronSchedule)
	assert.False(t, status.Running)
	assert.NotNil(t, status.LastRunStartedAt)
	assert.NotNil(t, status.LastRunCompletedAt)
	if assert.NotNil(t, status.LastTotal) {
		assert.Equal(t, 10, *status.LastTotal)
	}
}

func TestDailySummaryService_RunNow_RepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockFeedbackRepository(ctrl)
	mockRepo.EXPECT().
		CountByLevel(gomock.Any()).
		Return(nil, assert.AnError)

	service := &DailySummaryService{
		scheduler: gocron.NewScheduler(time.UTC),
		reporter:  reporting.NewService(mockRepo),
	}

	err := service.RunNow()
	assert.Error(t, err)

	status := service.Status()
	assert.Nil(t, status.LastTotal)
	assert.False(t, status.Running)
}

func TestDailySummaryService_Status_BeforeFirstRun(t *testing.T) {
	service := &DailySummaryService{
		scheduler: gocron.NewScheduler(time.UTC),
		config: DailySummaryConfig{
			CronSchedule: "0 7 * * *",
		},
	}

	status := service.Status()
	assert.False(t, status.Running)
	assert.Nil(t, status.LastRunStartedAt)
	assert.Nil(t, status.LastRunCompletedAt)
	assert.Nil(t, status.LastTotal)
}
