package eventlog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCleanupJob_Process(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo)
	job := NewCleanupJob(service, 10)
	ctx := context.Background()

	// Expect CleanupOldEvents to be called
	mockRepo.On("CleanupOldEvents", mock.Anything, 10).Return(int64(100), nil)

	err := job.Process(ctx)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestCleanupJob_DefaultRetention(t *testing.T) {
	mockRepo := new(MockRepository)
	job := NewCleanupJob(NewService(mockRepo), 0)

	mockRepo.On("CleanupOldEvents", mock.Anything, DefaultRetentionDays).Return(int64(0), nil)

	assert.NoError(t, job.Process(context.Background()))
	mockRepo.AssertExpectations(t)
}

func TestCleanupJob_Error(t *testing.T) {
	mockRepo := new(MockRepository)
	job := NewCleanupJob(NewService(mockRepo), 7)

	mockRepo.On("CleanupOldEvents", mock.Anything, 7).Return(int64(0), errors.New("boom"))

	assert.Error(t, job.Process(context.Background()))
}
