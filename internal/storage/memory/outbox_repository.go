package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/vladislavdragonenkov/boutique/internal/domain"
)

const (
	outboxStatusPending = "pending"
	outboxStatusFailed  = "failed"
)

// outboxRecord хранит сообщение и служебные поля для in-memory реализации.
type outboxRecord struct {
	msg        domain.OutboxMessage
	seq        int64
	status     string
	attemptCnt int
	createdAt  time.Time
	updatedAt  time.Time
}

// OutboxRepository — in-memory хранилище для transactional outbox.
type OutboxRepository struct {
	store *Store
}

// Enqueue сохраняет событие со статусом `pending` и возвращает его с идентификатором.
func (r *OutboxRepository) Enqueue(ctx context.Context, msg domain.OutboxMessage) (domain.OutboxMessage, error) {
	err := r.store.write(ctx, func(st *state) error {
		if msg.ID == "" {
			msg.ID = uuid.NewString()
		}
		prev, existed := st.outbox[msg.ID]
		prevSeq := st.outboxSeq
		id := msg.ID
		st.onRollback(func() {
			if existed {
				st.outbox[id] = prev
			} else {
				delete(st.outbox, id)
			}
			st.outboxSeq = prevSeq
		})

		st.outboxSeq++
		now := time.Now().UTC()
		st.outbox[msg.ID] = &outboxRecord{
			msg:       msg,
			seq:       st.outboxSeq,
			status:    outboxStatusPending,
			createdAt: now,
			updatedAt: now,
		}
		return nil
	})
	return msg, err
}

// PullPending возвращает до limit сообщений со статусом `pending` в порядке постановки.
func (r *OutboxRepository) PullPending(ctx context.Context, limit int) ([]domain.OutboxMessage, error) {
	if limit <= 0 {
		limit = 100
	}

	var records []*outboxRecord
	err := r.store.read(ctx, func(st *state) error {
		for _, rec := range st.outbox {
			if rec.status == outboxStatusPending {
				copied := *rec
				records = append(records, &copied)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(records, func(i, j int) bool { return records[i].seq < records[j].seq })
	if len(records) > limit {
		records = records[:limit]
	}

	result := make([]domain.OutboxMessage, 0, len(records))
	for _, rec := range records {
		result = append(result, rec.msg)
	}
	return result, nil
}

// Stats возвращает размер backlog и время самого старого pending-сообщения.
func (r *OutboxRepository) Stats(ctx context.Context) (domain.OutboxStats, error) {
	var stats domain.OutboxStats
	err := r.store.read(ctx, func(st *state) error {
		for _, rec := range st.outbox {
			if rec.status != outboxStatusPending {
				continue
			}
			stats.PendingCount++
			if stats.OldestPendingAt.IsZero() || rec.createdAt.Before(stats.OldestPendingAt) {
				stats.OldestPendingAt = rec.createdAt
			}
		}
		return nil
	})
	return stats, err
}

// MarkSent удаляет опубликованное событие: отправленные записи не хранятся.
func (r *OutboxRepository) MarkSent(ctx context.Context, id string) error {
	return r.store.write(ctx, func(st *state) error {
		record, ok := st.outbox[id]
		if !ok || record.status != outboxStatusPending {
			return fmt.Errorf("%w: pending outbox message %s not found", domain.ErrOutboxPublish, id)
		}
		delete(st.outbox, id)
		st.onRollback(func() { st.outbox[id] = record })
		return nil
	})
}

// MarkFailed фиксирует ошибку публикации. Переход возможен только из pending.
func (r *OutboxRepository) MarkFailed(ctx context.Context, id string) error {
	return r.mark(ctx, id, outboxStatusFailed)
}

func (r *OutboxRepository) mark(ctx context.Context, id, status string) error {
	return r.store.write(ctx, func(st *state) error {
		record, ok := st.outbox[id]
		if !ok || record.status != outboxStatusPending {
			return fmt.Errorf("%w: pending outbox message %s not found", domain.ErrOutboxPublish, id)
		}
		prev := *record
		record.status = status
		record.attemptCnt++
		record.updatedAt = time.Now().UTC()
		st.onRollback(func() { *record = prev })
		return nil
	})
}

// Len возвращает число хранимых записей outbox (pending и failed).
func (r *OutboxRepository) Len() int {
	var n int
	_ = r.store.read(context.Background(), func(st *state) error {
		n = len(st.outbox)
		return nil
	})
	return n
}

// AllPending возвращает копию всех сообщений со статусом `pending` (используется в тестах).
func (r *OutboxRepository) AllPending() []domain.OutboxMessage {
	pending, _ := r.PullPending(context.Background(), int(^uint(0)>>1))
	return pending
}

var _ domain.OutboxRepository = (*OutboxRepository)(nil)
