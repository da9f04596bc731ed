package kafka

import (
	"CareerBridge/internal/api/dto"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNotifier struct {
	mu     sync.Mutex
	events []*dto.ApplicationEvent
	err    error
}

func (f *fakeNotifier) NotifyApplication(_ context.Context, event *dto.ApplicationEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, event)
	return nil
}

type fakeSession struct {
	ctx       context.Context
	marked    []int64
	committed int
}

func (s *fakeSession) Claims() map[string][]int32 { return nil }
func (s *fakeSession) MemberID() string { return "test" }
func (s *fakeSession) GenerationID() int32 { return 1 }
func (s *fakeSession) MarkOffset(string, int32, int64, string) {}
func (s *fakeSession) ResetOffset(string, int32, int64, string) {}
func (s *fakeSession) MarkMessage(msg *sarama.ConsumerMessage, _ string) { s.marked = append(s.marked, msg.Offset) }
func (s *fakeSession) Commit() { s.committed++ }
func (s *fakeSession) Context() context.Context { return s.ctx }

func TestPublishApplication(t *testing.T) {
	mp := mocks.NewSyncProducer(t, nil)
	mp.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		var event dto.ApplicationEvent
		if err := json.Unmarshal(val, &event); err != nil {
			return err
		}
		if event.JobID != 9 || event.UserID != 3 {
			return errors.New("unexpected event")
		}
		return nil
	})

	p := newApplicationProducer(mp, "career.application.submitted")
	err := p.PublishApplication(context.Background(), &dto.ApplicationEvent{ApplicationID: 1, UserID: 3, JobID: 9, JobTitle: "Software Engineer"})
	require.NoError(t, err)
	require.NoError(t, p.Close())
}

func TestPublishApplicationFailure(t *testing.T) {
	mp := mocks.NewSyncProducer(t, nil)
	mp.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	p := newApplicationProducer(mp, "topic")
	err := p.PublishApplication(context.Background(), &dto.ApplicationEvent{UserID: 1, JobID: 1})
	assert.ErrorIs(t, err, sarama.ErrOutOfBrokers)
	require.NoError(t, p.Close())
}

func TestApplicationHandlerDropsMalformed(t *testing.T) {
	notifier := &fakeNotifier{}
	h := NewApplicationHandler(notifier)

	assert.NoError(t, h.handle(context.Background(), &sarama.ConsumerMessage{Value: []byte("{bad")}))
	assert.NoError(t, h.handle(context.Background(), &sarama.ConsumerMessage{Value: []byte(`{"user_id":0,"job_id":2}`)}))
	assert.Empty(t, notifier.events)

	require.NoError(t, h.handle(context.Background(), &sarama.ConsumerMessage{Value: []byte(`{"user_id":5,"job_id":2,"job_title":"Data Scientist"}`)}))
	require.Len(t, notifier.events, 1)
	assert.Equal(t, "Data Scientist", notifier.events[0].JobTitle)
}

func TestProcessBatchMarksLastMessage(t *testing.T) {
	session := &fakeSession{ctx: context.Background()}
	notifier := &fakeNotifier{}
	h := NewApplicationHandler(notifier)

	msgs := []*sarama.ConsumerMessage{
		{Offset: 10, Value: []byte(`{"user_id":1,"job_id":1}`)},
		{Offset: 11, Value: []byte(`{"user_id":2,"job_id":1}`)},
	}
	processBatch(session, msgs, h.handle)

	assert.Len(t, notifier.events, 2)
	assert.Equal(t, []int64{11}, session.marked)
	assert.Equal(t, 1, session.committed)
}

func TestProcessBatchStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()
	session := &fakeSession{ctx: ctx}
	notifier := &fakeNotifier{err: errors.New("mongo down")}
	h := NewApplicationHandler(notifier)

	processBatch(session, []*sarama.ConsumerMessage{{Offset: 1, Value: []byte(`{"user_id":1,"job_id":1}`)}}, h.handle)

	assert.Empty(t, session.marked)
	assert.Zero(t, session.committed)
}
