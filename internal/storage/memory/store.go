package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/vladislavdragonenkov/boutique/internal/domain"
)

// Store — общее in-memory состояние для всех репозиториев.
// Транзакция держит эксклюзивную блокировку на всё время выполнения, поэтому
// параллельные операции над одним заказом сериализуются. Каждая запись внутри
// транзакции кладёт в журнал обратную операцию; при ошибке журнал
// проигрывается в обратном порядке.
type Store struct {
	mu    sync.RWMutex
	state *state
}

type state struct {
	nextOrderID int64
	nextItemID  int64
	outboxSeq   int64

	orders   map[int64]domain.Order
	items    map[int64][]domain.OrderItem
	timeline map[int64][]domain.TimelineEvent
	outbox   map[string]*outboxRecord

	// undo не nil только внутри WithinTx.
	undo []func()
}

// txKey помечает контекст, в котором блокировка Store уже захвачена.
type txKey struct{}

// txScope — значение txKey: какой Store захвачен и в каком режиме.
type txScope struct {
	store    *Store
	readOnly bool
}

var errReadOnlyTx = errors.New("memory store: write inside read-only transaction")

// NewStore создаёт пустое хранилище.
func NewStore() *Store {
	return &Store{state: newState()}
}

func newState() *state {
	return &state{
		orders:   make(map[int64]domain.Order),
		items:    make(map[int64][]domain.OrderItem),
		timeline: make(map[int64][]domain.TimelineEvent),
		outbox:   make(map[string]*outboxRecord),
	}
}

// onRollback запоминает обратную операцию; вне транзакции запись окончательна.
func (st *state) onRollback(fn func()) {
	if st.undo != nil {
		st.undo = append(st.undo, fn)
	}
}

func (st *state) rollback() {
	for i := len(st.undo) - 1; i >= 0; i-- {
		st.undo[i]()
	}
}

// restoreOrder возвращает заказ к значению до записи; ok=false означает, что заказа не было.
func (st *state) restoreOrder(id int64, prev domain.Order, ok bool) func() {
	return func() {
		if ok {
			st.orders[id] = prev
		} else {
			delete(st.orders, id)
		}
	}
}

func (st *state) restoreItems(orderID int64, prev []domain.OrderItem, ok bool) func() {
	return func() {
		if ok {
			st.items[orderID] = prev
		} else {
			delete(st.items, orderID)
		}
	}
}

// scope возвращает транзакцию этого Store из ctx.
func (s *Store) scope(ctx context.Context) (txScope, bool) {
	scope, ok := ctx.Value(txKey{}).(txScope)
	if !ok || scope.store != s {
		return txScope{}, false
	}
	return scope, true
}

func (s *Store) read(ctx context.Context, fn func(st *state) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, ok := s.scope(ctx); ok {
		return fn(s.state)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(s.state)
}

func (s *Store) write(ctx context.Context, fn func(st *state) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if scope, ok := s.scope(ctx); ok {
		if scope.readOnly {
			return errReadOnlyTx
		}
		return fn(s.state)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.state)
}

// WithinTx реализует domain.TxManager. Вложенные вызовы выполняются в рамках внешней транзакции.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if scope, ok := s.scope(ctx); ok {
		if scope.readOnly {
			return errReadOnlyTx
		}
		return fn(ctx)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.undo = make([]func(), 0, 8)
	committed := false
	defer func() {
		// Откат срабатывает и при панике внутри fn.
		if !committed {
			s.state.rollback()
		}
		s.state.undo = nil
	}()

	if err := fn(context.WithValue(ctx, txKey{}, txScope{store: s})); err != nil {
		return err
	}
	committed = true
	return nil
}

// WithinReadTx держит разделяемую блокировку на всё время fn: читатели не мешают
// друг другу, а записи ждут завершения чтения.
func (s *Store) WithinReadTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := s.scope(ctx); ok {
		return fn(ctx)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(context.WithValue(ctx, txKey{}, txScope{store: s, readOnly: true}))
}

// Ping всегда успешен; нужен для health-проверок наравне с postgres.Store.
func (s *Store) Ping(context.Context) error { return nil }

// Orders возвращает репозиторий заказов поверх хранилища.
func (s *Store) Orders() domain.OrderRepository { return &orderRepository{store: s} }

// Items возвращает репозиторий позиций.
func (s *Store) Items() domain.ItemRepository { return &itemRepository{store: s} }

// Timeline возвращает репозиторий событий жизненного цикла.
func (s *Store) Timeline() domain.TimelineRepository { return &timelineRepository{store: s} }

// Outbox возвращает репозиторий transactional outbox.
func (s *Store) Outbox() *OutboxRepository { return &OutboxRepository{store: s} }

var _ domain.TxManager = (*Store)(nil)
