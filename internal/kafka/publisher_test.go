package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"gitlab.com/modaluna/aftersales/internal/db"
	mock_database "gitlab.com/modaluna/aftersales/internal/db/mocks"
	"gitlab.com/modaluna/aftersales/internal/repository"
	mock_storage "gitlab.com/modaluna/aftersales/internal/storage/mocks"
)

type sentMessage struct {
	topic string
	key   []byte
	value []byte
}

type fakeProducer struct {
	sent   []sentMessage
	err    error
	closed bool
}

func (p *fakeProducer) SendMessage(_ context.Context, topic string, key, value []byte) error {
	if p.err != nil {
		return p.err
	}
	p.sent = append(p.sent, sentMessage{topic: topic, key: key, value: value})
	return nil
}

func (p *fakeProducer) Close() error {
	p.closed = true
	return nil
}

func newOutboxTask(t *testing.T) *repository.OutboxTask {
	payload, err := json.Marshal(map[string]string{"entity_type": "return", "new_status": "money_refunded"})
	require.NoError(t, err)
	return &repository.OutboxTask{
		ID:      uuid.New(),
		Status:  repository.TaskStatusCreated,
		Payload: payload,
		Topic:   "aftersales_audit",
	}
}

func TestProcessBatchPublishesAndMarksDone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := mock_database.NewMockDB(ctrl)
	mockTx := mock_database.NewMockTx(ctrl)
	mockRepo := mock_storage.NewMockOutboxTaskRepository(ctrl)
	producer := &fakeProducer{}

	task := newOutboxTask(t)

	mockDB.EXPECT().BeginTx(gomock.Any()).Return(db.Tx(mockTx), nil)
	mockRepo.EXPECT().GetProcessableTasks(gomock.Any(), mockTx, 10).
		Return([]*repository.OutboxTask{task}, nil)
	mockRepo.EXPECT().UpdateTaskStatusTx(gomock.Any(), mockTx, task.ID, repository.TaskStatusProcessing,
		task.Attempts, nil, nil).Return(nil)
	mockTx.EXPECT().Commit(gomock.Any()).Return(nil)
	mockTx.EXPECT().Rollback(gomock.Any()).Return(nil)
	mockRepo.EXPECT().UpdateTaskStatus(gomock.Any(), mockDB, task.ID, repository.TaskStatusDone,
		task.Attempts, nil, gomock.Not(gomock.Nil())).Return(nil)

	p := NewPublisher(mockDB, mockRepo, producer, PublisherConfig{
		PollInterval: time.Second,
		BatchSize:    10,
		MaxAttempts:  5,
	})

	require.NoError(t, p.processBatch(context.Background()))

	require.Len(t, producer.sent, 1)
	assert.Equal(t, "aftersales_audit", producer.sent[0].topic)
	assert.Equal(t, []byte(task.ID.String()), producer.sent[0].key)
	assert.Equal(t, []byte(task.Payload), producer.sent[0].value)
}

func TestProcessBatchMarksFailedOnSendError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := mock_database.NewMockDB(ctrl)
	mockTx := mock_database.NewMockTx(ctrl)
	mockRepo := mock_storage.NewMockOutboxTaskRepository(ctrl)
	producer := &fakeProducer{err: errors.New("broker unavailable")}

	task := newOutboxTask(t)
	task.Attempts = 1

	mockDB.EXPECT().BeginTx(gomock.Any()).Return(db.Tx(mockTx), nil)
	mockRepo.EXPECT().GetProcessableTasks(gomock.Any(), mockTx, 10).
		Return([]*repository.OutboxTask{task}, nil)
	mockRepo.EXPECT().UpdateTaskStatusTx(gomock.Any(), mockTx, task.ID, repository.TaskStatusProcessing,
		1, nil, nil).Return(nil)
	mockTx.EXPECT().Commit(gomock.Any()).Return(nil)
	mockTx.EXPECT().Rollback(gomock.Any()).Return(nil)
	mockRepo.EXPECT().UpdateTaskStatus(gomock.Any(), mockDB, task.ID, repository.TaskStatusFailed,
		2, gomock.Not(gomock.Nil()), nil).Return(nil)

	p := NewPublisher(mockDB, mockRepo, producer, PublisherConfig{
		PollInterval: time.Second,
		BatchSize:    10,
		MaxAttempts:  5,
	})

	// Send failures are recorded per task, the batch itself still succeeds.
	require.NoError(t, p.processBatch(context.Background()))
	assert.Empty(t, producer.sent)
}

func TestProcessBatchEmptyCommitsAndSkipsPublish(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := mock_database.NewMockDB(ctrl)
	mockTx := mock_database.NewMockTx(ctrl)
	mockRepo := mock_storage.NewMockOutboxTaskRepository(ctrl)
	producer := &fakeProducer{}

	mockDB.EXPECT().BeginTx(gomock.Any()).Return(db.Tx(mockTx), nil)
	mockRepo.EXPECT().GetProcessableTasks(gomock.Any(), mockTx, 10).
		Return(nil, nil)
	mockTx.EXPECT().Commit(gomock.Any()).Return(nil)
	mockTx.EXPECT().Rollback(gomock.Any()).Return(nil)

	p := NewPublisher(mockDB, mockRepo, producer, PublisherConfig{
		PollInterval: time.Second,
		BatchSize:    10,
		MaxAttempts:  5,
	})

	require.NoError(t, p.processBatch(context.Background()))
	assert.Empty(t, producer.sent)
}
