package outbox

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/boutique/internal/domain"
	"github.com/vladislavdragonenkov/boutique/internal/storage/memory"
)

func TestWorker_ProcessOnce_MarkSent(t *testing.T) {
	t.Parallel()

	repo := &stubOutboxRepo{
		pending: []domain.OutboxMessage{
			{
				ID:            "msg-1",
				AggregateType: "order",
				AggregateID:   "1",
				EventType:     "order.created",
				Payload:       []byte(`{"orderId":1,"status":"PENDING"}`),
			},
		},
	}
	publisher := &stubPublisher{}

	worker := NewWorker(
		repo,
		publisher,
		WithRetryBaseDelay(0),
		WithMaxAttempts(3),
	)

	worker.ProcessOnce(context.Background())

	if got := len(repo.sentIDs); got != 1 {
		t.Fatalf("expected 1 sent mark, got %d", got)
	}
	if repo.sentIDs[0] != "msg-1" {
		t.Fatalf("expected sent id msg-1, got %s", repo.sentIDs[0])
	}
	if got := len(repo.failedIDs); got != 0 {
		t.Fatalf("expected 0 failed marks, got %d", got)
	}
	if got := publisher.calls(); got != 1 {
		t.Fatalf("expected 1 publish call, got %d", got)
	}
}

func TestWorker_ProcessOnce_MarkFailedAndDLQAfterRetries(t *testing.T) {
	t.Parallel()

	repo := &stubOutboxRepo{
		pending: []domain.OutboxMessage{
			{
				ID:            "msg-2",
				AggregateType: "order",
				AggregateID:   "2",
				EventType:     "order.updated",
				Payload:       []byte(`{"orderId":2,"status":"CANCELLED"}`),
			},
		},
	}
	publisher := &stubPublisher{err: errors.New("publish failed")}
	dlqPublisher := &stubPublisher{}

	worker := NewWorker(
		repo,
		publisher,
		WithDLQPublisher(dlqPublisher),
		WithRetryBaseDelay(0),
		WithMaxAttempts(3),
	)

	worker.ProcessOnce(context.Background())

	if got := publisher.calls(); got != 3 {
		t.Fatalf("expected 3 publish attempts, got %d", got)
	}
	if got := len(repo.sentIDs); got != 0 {
		t.Fatalf("expected 0 sent marks, got %d", got)
	}
	if got := len(repo.failedIDs); got != 1 {
		t.Fatalf("expected 1 failed mark, got %d", got)
	}
	if repo.failedIDs[0] != "msg-2" {
		t.Fatalf("expected failed id msg-2, got %s", repo.failedIDs[0])
	}
	if got := dlqPublisher.calls(); got != 1 {
		t.Fatalf("expected 1 DLQ publish, got %d", got)
	}
}

func TestWorker_ProcessOnce_SuccessAfterRetry(t *testing.T) {
	t.Parallel()

	repo := &stubOutboxRepo{
		pending: []domain.OutboxMessage{
			{
				ID:            "msg-3",
				AggregateType: "order",
				AggregateID:   "3",
				EventType:     "order.fulfilled",
				Payload:       []byte(`{"orderId":3,"status":"FULFILLED"}`),
			},
		},
	}
	publisher := &stubPublisher{
		sequenceErrors: []error{
			errors.New("attempt 1"),
			errors.New("attempt 2"),
			nil,
		},
	}

	worker := NewWorker(
		repo,
		publisher,
		WithRetryBaseDelay(0),
		WithMaxAttempts(3),
	)

	worker.ProcessOnce(context.Background())

	if got := publisher.calls(); got != 3 {
		t.Fatalf("expected 3 publish attempts, got %d", got)
	}
	if got := len(repo.sentIDs); got != 1 {
		t.Fatalf("expected 1 sent mark, got %d", got)
	}
	if got := len(repo.failedIDs); got != 0 {
		t.Fatalf("expected 0 failed marks, got %d", got)
	}
}

type stubOutboxRepo struct {
	mu          sync.Mutex
	pending     []domain.OutboxMessage
	sentIDs     []string
	failedIDs   []string
	markSentErr map[string]error
}

func (s *stubOutboxRepo) Enqueue(_ context.Context, msg domain.OutboxMessage) (domain.OutboxMessage, error) {
	return msg, nil
}

func (s *stubOutboxRepo) PullPending(_ context.Context, limit int) ([]domain.OutboxMessage, error) {
	if limit <= 0 || limit >= len(s.pending) {
		return append([]domain.OutboxMessage(nil), s.pending...), nil
	}
	return append([]domain.OutboxMessage(nil), s.pending[:limit]...), nil
}

func (s *stubOutboxRepo) Stats(context.Context) (domain.OutboxStats, error) {
	stats := domain.OutboxStats{
		PendingCount: len(s.pending),
	}
	if len(s.pending) > 0 {
		stats.OldestPendingAt = time.Now().UTC().Add(-time.Second)
	}
	return stats, nil
}

func (s *stubOutboxRepo) MarkSent(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.markSentErr[id]; err != nil {
		return err
	}
	s.sentIDs = append(s.sentIDs, id)
	return nil
}

func (s *stubOutboxRepo) MarkFailed(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failedIDs = append(s.failedIDs, id)
	return nil
}

type stubPublisher struct {
	mu             sync.Mutex
	err            error
	sequenceErrors []error
	failIDs        map[string]bool
	callCount      int
	published      []domain.OutboxMessage
}

func (s *stubPublisher) Publish(event domain.OutboxMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.callCount++
	if len(s.sequenceErrors) > 0 {
		err := s.sequenceErrors[0]
		s.sequenceErrors = s.sequenceErrors[1:]
		return err
	}
	if s.failIDs[event.ID] {
		return errors.New("broker rejected " + event.ID)
	}
	if s.err == nil {
		s.published = append(s.published, event)
	}
	return s.err
}

func (s *stubPublisher) calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.callCount
}

func (s *stubPublisher) publishedIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]string, 0, len(s.published))
	for _, event := range s.published {
		ids = append(ids, event.ID)
	}
	return ids
}

var _ domain.OutboxRepository = (*stubOutboxRepo)(nil)
var _ domain.OutboxPublisher = (*stubPublisher)(nil)

func TestWorker_Run_StopsOnContextCancel(t *testing.T) {
	t.Parallel()

	repo := &stubOutboxRepo{}
	publisher := &stubPublisher{}

	worker := NewWorker(
		repo,
		publisher,
		WithPollInterval(5*time.Millisecond),
		WithRetryBaseDelay(0),
	)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		worker.Run(ctx)
	}()

	time.Sleep(15 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(1 * time.Second):
		t.Fatal("worker did not stop on context cancel")
	}
}

func TestWorker_ProcessOnce_WithMemoryOutbox(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := memory.NewStore().Outbox()
	for i := 0; i < 3; i++ {
		if _, err := repo.Enqueue(ctx, domain.OutboxMessage{AggregateType: "order", EventType: "order.created"}); err != nil {
			t.Fatalf("enqueue failed: %v", err)
		}
	}
	publisher := &stubPublisher{}

	worker := NewWorker(repo, publisher, WithBatchSize(2), WithRetryBaseDelay(0))

	worker.ProcessOnce(ctx)
	if got := len(repo.AllPending()); got != 1 {
		t.Fatalf("expected 1 pending message after first batch, got %d", got)
	}

	worker.ProcessOnce(ctx)
	if got := len(repo.AllPending()); got != 0 {
		t.Fatalf("expected empty outbox, got %d", got)
	}
	if got := publisher.calls(); got != 3 {
		t.Fatalf("expected 3 publish calls, got %d", got)
	}
}

func TestWorker_RunStopsOnCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	worker := NewWorker(&stubOutboxRepo{}, &stubPublisher{}, WithPollInterval(5*time.Millisecond))

	done := make(chan struct{})
	go func() {
		worker.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop after context cancellation")
	}
}

func TestWorker_RetryBackoff(t *testing.T) {
	t.Parallel()

	worker := NewWorker(&stubOutboxRepo{}, &stubPublisher{}, WithRetryBaseDelay(10*time.Millisecond))
	if got := worker.retryBackoff(1); got != 10*time.Millisecond {
		t.Fatalf("unexpected first backoff %s", got)
	}
	if got := worker.retryBackoff(3); got != 40*time.Millisecond {
		t.Fatalf("unexpected third backoff %s", got)
	}
}

func TestWorker_RetryBackoffIsCapped(t *testing.T) {
	t.Parallel()

	worker := NewWorker(&stubOutboxRepo{}, &stubPublisher{}, WithRetryBaseDelay(time.Second))
	require.Equal(t, 4*time.Second, worker.retryBackoff(3))
	require.Equal(t, maxRetryDelay, worker.retryBackoff(4))
	require.Equal(t, maxRetryDelay, worker.retryBackoff(100))
}

func TestLanesByOrder(t *testing.T) {
	t.Parallel()

	lanes := lanesByOrder([]domain.OutboxMessage{
		{ID: "1", AggregateID: "10"},
		{ID: "2", AggregateID: "20"},
		{ID: "3", AggregateID: "10"},
		{ID: "4"},
		{ID: "5", AggregateID: "20"},
		{ID: "6"},
	})

	require.Len(t, lanes, 4)
	ids := func(lane orderLane) []string {
		out := make([]string, 0, len(lane.events))
		for _, event := range lane.events {
			out = append(out, event.ID)
		}
		return out
	}
	require.Equal(t, "10", lanes[0].orderID)
	require.Equal(t, []string{"1", "3"}, ids(lanes[0]))
	require.Equal(t, "20", lanes[1].orderID)
	require.Equal(t, []string{"2", "5"}, ids(lanes[1]))
	require.Equal(t, []string{"4"}, ids(lanes[2]))
	require.Equal(t, []string{"6"}, ids(lanes[3]))
}

func TestWorker_ProcessOnce_KeepsEventOrderPerOrder(t *testing.T) {
	t.Parallel()

	var pending []domain.OutboxMessage
	for step := 1; step <= 5; step++ {
		for order := 1; order <= 4; order++ {
			pending = append(pending, domain.OutboxMessage{
				ID:          fmt.Sprintf("%d-%d", order, step),
				AggregateID: fmt.Sprint(order),
				EventType:   "order.updated",
			})
		}
	}
	repo := &stubOutboxRepo{pending: pending}
	publisher := &stubPublisher{}

	NewWorker(repo, publisher, WithParallelism(4), WithRetryBaseDelay(0)).ProcessOnce(context.Background())

	published := publisher.publishedIDs()
	require.Len(t, published, len(pending))
	for order := 1; order <= 4; order++ {
		var got []string
		for _, id := range published {
			if id[:1] == fmt.Sprint(order) {
				got = append(got, id)
			}
		}
		want := make([]string, 0, 5)
		for step := 1; step <= 5; step++ {
			want = append(want, fmt.Sprintf("%d-%d", order, step))
		}
		require.Equal(t, want, got, "order %d", order)
	}
	require.Len(t, repo.sentIDs, len(pending))
}

func TestWorker_ProcessOnce_DefersOrderAfterUnsettledEvent(t *testing.T) {
	t.Parallel()

	repo := &stubOutboxRepo{
		pending: []domain.OutboxMessage{
			{ID: "a1", AggregateID: "1", EventType: "order.created"},
			{ID: "b1", AggregateID: "2", EventType: "order.created"},
			{ID: "a2", AggregateID: "1", EventType: "order.updated"},
			{ID: "b2", AggregateID: "2", EventType: "order.updated"},
		},
		markSentErr: map[string]error{"a1": errors.New("db is gone")},
	}
	publisher := &stubPublisher{}

	NewWorker(repo, publisher, WithParallelism(2), WithRetryBaseDelay(0)).ProcessOnce(context.Background())

	published := publisher.publishedIDs()
	require.ElementsMatch(t, []string{"a1", "b1", "b2"}, published)
	require.False(t, slices.Contains(published, "a2"))
	require.ElementsMatch(t, []string{"b1", "b2"}, repo.sentIDs)
	require.Empty(t, repo.failedIDs)
}

func TestWorker_ProcessOnce_FailedEventDoesNotBlockOrder(t *testing.T) {
	t.Parallel()

	repo := &stubOutboxRepo{
		pending: []domain.OutboxMessage{
			{ID: "a1", AggregateID: "1", EventType: "order.created", Payload: []byte(`{"orderId":1}`)},
			{ID: "a2", AggregateID: "1", EventType: "order.updated"},
		},
	}
	publisher := &stubPublisher{failIDs: map[string]bool{"a1": true}}
	dlq := &stubPublisher{}

	NewWorker(repo, publisher, WithDLQPublisher(dlq), WithMaxAttempts(2), WithRetryBaseDelay(0)).
		ProcessOnce(context.Background())

	require.Equal(t, []string{"a1"}, repo.failedIDs)
	require.Equal(t, []string{"a2"}, repo.sentIDs)
	require.Equal(t, []string{"a2"}, publisher.publishedIDs())

	require.Len(t, dlq.published, 1)
	var letter deadLetter
	require.NoError(t, json.Unmarshal(dlq.published[0].Payload, &letter))
	require.Equal(t, "a1", letter.OutboxID)
	require.Equal(t, "1", letter.AggregateID)
	require.Equal(t, 2, letter.Attempts)
	require.JSONEq(t, `{"orderId":1}`, string(letter.Payload))
	require.Contains(t, letter.PublishError, "broker rejected a1")
}

func TestWorker_DeadLetterWithEmptyPayload(t *testing.T) {
	t.Parallel()

	dlq := &stubPublisher{}
	worker := NewWorker(&stubOutboxRepo{}, &stubPublisher{}, WithDLQPublisher(dlq), WithMaxAttempts(1))

	require.NoError(t, worker.publishToDLQ(domain.OutboxMessage{ID: "x", AggregateID: "7"}, errors.New("boom")))
	require.Len(t, dlq.published, 1)

	var letter map[string]any
	require.NoError(t, json.Unmarshal(dlq.published[0].Payload, &letter))
	require.Nil(t, letter["payload"])
	require.Equal(t, "boom", letter["publishError"])
}
