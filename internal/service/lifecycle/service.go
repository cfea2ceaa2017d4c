// Package lifecycle реализует жизненный цикл заказа бутика: создание, изменение статуса,
// работу с позициями, закрытие и удаление.
//
// Допустимые переходы:
//
//	PENDING --close (есть позиции)--> FULFILLED
//	PENDING --delete--> [удалён]
//	PENDING --update(PAID)--> PAID
//	PAID    --close--> FULFILLED
//
// FULFILLED и CANCELLED терминальны. UpdateOrder назначает любой статус нефинализированному
// заказу без проверки перехода.
package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/boutique/internal/domain"
	"github.com/vladislavdragonenkov/boutique/internal/metrics"
	"github.com/vladislavdragonenkov/boutique/internal/service/lineitem"
)

// Названия операций для метрик и логов.
const (
	opCreateOrder = "create_order"
	opGetOrder    = "get_order"
	opListOrders  = "list_orders"
	opUpdateOrder = "update_order"
	opDeleteOrder = "delete_order"
	opCloseOrder  = "close_order"
	opAddItem     = "add_item"
	opRemoveItem  = "remove_item"
)

// Dependencies собирает зависимости сервиса. Timeline и Outbox опциональны.
type Dependencies struct {
	Orders   domain.OrderRepository
	Items    domain.ItemRepository
	Catalog  domain.CatalogGateway
	Tx       domain.TxManager
	Timeline domain.TimelineRepository
	Outbox   domain.OutboxRepository
}

// UpdateOrderInput — изменяемые поля заказа. nil означает «не менять».
type UpdateOrderInput struct {
	Status *domain.OrderStatus
}

// Service — оркестратор жизненного цикла заказа.
type Service struct {
	orders    domain.OrderRepository
	catalog   domain.CatalogGateway
	tx        domain.TxManager
	timeline  domain.TimelineRepository
	outbox    domain.OutboxRepository
	lineItems *lineitem.Store

	logger  *log.Entry
	now     func() time.Time
	metrics *metrics.OrderMetrics
}

// NewService создаёт сервис жизненного цикла.
func NewService(deps Dependencies, opts ...Option) (*Service, error) {
	switch {
	case deps.Orders == nil:
		return nil, errors.New("lifecycle: order repository is required")
	case deps.Items == nil:
		return nil, errors.New("lifecycle: item repository is required")
	case deps.Catalog == nil:
		return nil, errors.New("lifecycle: catalog gateway is required")
	case deps.Tx == nil:
		return nil, errors.New("lifecycle: transaction manager is required")
	}

	s := &Service{
		orders:   deps.Orders,
		catalog:  deps.Catalog,
		tx:       deps.Tx,
		timeline: deps.Timeline,
		outbox:   deps.Outbox,
		logger:   log.WithField("component", "order-lifecycle"),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.lineItems = lineitem.NewStore(deps.Orders, deps.Items, deps.Catalog, s.clock)
	return s, nil
}

// clock возвращает текущее время в UTC с точностью до микросекунд, как хранит PostgreSQL.
func (s *Service) clock() time.Time {
	return s.now().UTC().Truncate(time.Microsecond)
}

// CreateOrder создаёт заказ в статусе PENDING без позиций.
func (s *Service) CreateOrder(ctx context.Context, customerID int64, description string) (view OrderView, err error) {
	defer s.observe(opCreateOrder, time.Now(), &err)

	if err := domain.ValidateDescription(description); err != nil {
		return OrderView{}, err
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		customer, err := s.catalog.Customer(ctx, customerID)
		if err != nil {
			return err
		}

		now := s.clock()
		order := domain.Order{
			CustomerID:  customer.ID,
			Description: description,
			PlacedAt:    now,
			Status:      domain.OrderStatusPending,
			UpdatedAt:   now,
		}
		if err := s.orders.Create(ctx, &order); err != nil {
			return fmt.Errorf("create order: %w", err)
		}

		view = buildView(order, nil, customer.Name)
		return s.record(ctx, change{
			order:     order,
			timeline:  domain.TimelineOrderCreated,
			eventType: eventCreated,
		})
	})
	if err != nil {
		return OrderView{}, err
	}

	s.metrics.RecordOrderCreated()
	s.logger.WithFields(log.Fields{
		"order_id":    view.OrderID,
		"customer_id": view.CustomerID,
	}).Info("order created")
	return view, nil
}

// GetOrder возвращает представление заказа или NotFoundError.
func (s *Service) GetOrder(ctx context.Context, id int64) (view OrderView, err error) {
	defer s.observe(opGetOrder, time.Now(), &err)

	err = s.tx.WithinReadTx(ctx, func(ctx context.Context) error {
		order, err := s.orders.Get(ctx, id)
		if err != nil {
			return err
		}
		view, err = s.ToView(ctx, order)
		return err
	})
	if err != nil {
		return OrderView{}, err
	}
	return view, nil
}

// ListOrders возвращает все заказы.
func (s *Service) ListOrders(ctx context.Context) ([]OrderView, error) {
	return s.list(ctx, domain.OrderFilter{})
}

// ListOrdersByStatus возвращает заказы с указанным статусом.
func (s *Service) ListOrdersByStatus(ctx context.Context, status domain.OrderStatus) ([]OrderView, error) {
	if !status.Valid() {
		return nil, &domain.ValidationError{Field: "status", Reason: fmt.Sprintf("unknown order status %q", status)}
	}
	return s.list(ctx, domain.OrderFilter{Status: &status})
}

// ListOrdersByDateRange возвращает заказы, размещённые в [start, end] включительно.
func (s *Service) ListOrdersByDateRange(ctx context.Context, start, end time.Time) ([]OrderView, error) {
	if start.After(end) {
		return nil, &domain.ValidationError{Field: "start", Reason: "must not be after end"}
	}
	return s.list(ctx, domain.OrderFilter{From: &start, To: &end})
}

func (s *Service) list(ctx context.Context, filter domain.OrderFilter) (views []OrderView, err error) {
	defer s.observe(opListOrders, time.Now(), &err)

	err = s.tx.WithinReadTx(ctx, func(ctx context.Context) error {
		orders, err := s.orders.List(ctx, filter)
		if err != nil {
			return err
		}
		views, err = s.toViews(ctx, orders)
		return err
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}

// UpdateOrder меняет статус нефинализированного заказа.
// Переходы между статусами намеренно не проверяются: сотрудник может, например,
// сразу перевести PENDING в CANCELLED. Запрещено только трогать FULFILLED и CANCELLED.
func (s *Service) UpdateOrder(ctx context.Context, id int64, input UpdateOrderInput) (view OrderView, err error) {
	defer s.observe(opUpdateOrder, time.Now(), &err)

	if input.Status != nil && !input.Status.Valid() {
		return OrderView{}, &domain.ValidationError{Field: "status", Reason: fmt.Sprintf("unknown order status %q", *input.Status)}
	}

	var changed bool
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		order, err := s.orders.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if order.Status.IsFinalized() {
			return &domain.InvalidStateError{OrderID: order.ID, Status: order.Status, Reason: "cannot update fulfilled or cancelled orders"}
		}

		items, err := s.lineItems.ListItems(ctx, order.ID)
		if err != nil {
			return err
		}

		if input.Status != nil && *input.Status != order.Status {
			previous := order.Status
			order.Status = *input.Status
			order.UpdatedAt = s.clock()
			if err := s.orders.Save(ctx, &order); err != nil {
				return fmt.Errorf("save order: %w", err)
			}
			changed = true

			if err := s.record(ctx, change{
				order:     order,
				items:     items,
				timeline:  domain.TimelineOrderStatusChanged,
				reason:    fmt.Sprintf("%s -> %s", previous, order.Status),
				eventType: eventUpdated,
			}); err != nil {
				return err
			}
		}

		name, err := s.customerName(ctx, order.CustomerID, nil)
		if err != nil {
			return err
		}
		view = buildView(order, items, name)
		return nil
	})
	if err != nil {
		return OrderView{}, err
	}

	if changed {
		s.metrics.RecordStatusTransition(view.Status)
		s.logger.WithFields(log.Fields{"order_id": id, "status": view.Status}).Info("order status updated")
	}
	return view, nil
}

// DeleteOrder удаляет заказ в статусе PENDING вместе с позициями.
func (s *Service) DeleteOrder(ctx context.Context, id int64) (err error) {
	defer s.observe(opDeleteOrder, time.Now(), &err)

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		order, err := s.orders.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		switch order.Status {
		case domain.OrderStatusPending:
		case domain.OrderStatusPaid, domain.OrderStatusFulfilled, domain.OrderStatusCancelled:
			return &domain.InvalidStateError{OrderID: order.ID, Status: order.Status, Reason: "only pending orders can be removed"}
		default:
			return &domain.InvalidStateError{OrderID: order.ID, Status: order.Status, Reason: "unknown status"}
		}

		items, err := s.lineItems.ListItems(ctx, order.ID)
		if err != nil {
			return err
		}
		if err := s.orders.Delete(ctx, order.ID); err != nil {
			return fmt.Errorf("delete order: %w", err)
		}
		return s.record(ctx, change{
			order:     order,
			items:     items,
			timeline:  domain.TimelineOrderDeleted,
			eventType: eventDeleted,
		})
	})
	if err != nil {
		return err
	}

	s.logger.WithField("order_id", id).Info("order deleted")
	return nil
}

// CloseOrder переводит заказ с позициями в FULFILLED.
func (s *Service) CloseOrder(ctx context.Context, id int64) (view OrderView, err error) {
	defer s.observe(opCloseOrder, time.Now(), &err)

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		order, err := s.orders.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		switch order.Status {
		case domain.OrderStatusCancelled:
			return &domain.InvalidStateError{OrderID: order.ID, Status: order.Status, Reason: "cancelled orders cannot be fulfilled"}
		case domain.OrderStatusFulfilled:
			return &domain.InvalidStateError{OrderID: order.ID, Status: order.Status, Reason: "order already fulfilled"}
		case domain.OrderStatusPending, domain.OrderStatusPaid:
		default:
			return &domain.InvalidStateError{OrderID: order.ID, Status: order.Status, Reason: "unknown status"}
		}

		items, err := s.lineItems.ListItems(ctx, order.ID)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			return &domain.EmptyOrderError{OrderID: order.ID}
		}

		previous := order.Status
		order.Status = domain.OrderStatusFulfilled
		order.UpdatedAt = s.clock()
		if err := s.orders.Save(ctx, &order); err != nil {
			return fmt.Errorf("save order: %w", err)
		}
		if err := s.record(ctx, change{
			order:     order,
			items:     items,
			timeline:  domain.TimelineOrderStatusChanged,
			reason:    fmt.Sprintf("%s -> %s", previous, order.Status),
			eventType: eventFulfilled,
		}); err != nil {
			return err
		}

		name, err := s.customerName(ctx, order.CustomerID, nil)
		if err != nil {
			return err
		}
		view = buildView(order, items, name)
		return nil
	})
	if err != nil {
		return OrderView{}, err
	}

	s.metrics.RecordStatusTransition(domain.OrderStatusFulfilled)
	s.logger.WithFields(log.Fields{
		"order_id": id,
		"total":    domain.FormatMoney(view.Total),
	}).Info("order fulfilled")
	return view, nil
}

// AddItem добавляет позицию в заказ PENDING и возвращает обновлённый заказ.
func (s *Service) AddItem(ctx context.Context, orderID, productID int64, quantity int32) (view OrderView, err error) {
	defer s.observe(opAddItem, time.Now(), &err)

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		order, err := s.lockPending(ctx, orderID)
		if err != nil {
			return err
		}

		item, err := s.lineItems.AddItem(ctx, order.ID, productID, quantity)
		if err != nil {
			return err
		}

		view, err = s.ToView(ctx, order)
		if err != nil {
			return err
		}
		return s.record(ctx, change{
			order:     order,
			total:     &view.Total,
			item:      &item,
			timeline:  domain.TimelineItemAdded,
			reason:    fmt.Sprintf("product %d x%d", item.ProductID, item.Quantity),
			eventType: eventItemAdded,
		})
	})
	if err != nil {
		return OrderView{}, err
	}

	s.metrics.RecordItemChange(metrics.ItemActionAdded)
	return view, nil
}

// RemoveItem удаляет позицию из заказа PENDING и возвращает обновлённый заказ.
func (s *Service) RemoveItem(ctx context.Context, orderID, itemID int64) (view OrderView, err error) {
	defer s.observe(opRemoveItem, time.Now(), &err)

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		order, err := s.lockPending(ctx, orderID)
		if err != nil {
			return err
		}

		items, err := s.lineItems.ListItems(ctx, order.ID)
		if err != nil {
			return err
		}
		var removed *domain.OrderItem
		for i := range items {
			if items[i].ID == itemID {
				removed = &items[i]
				break
			}
		}
		if removed == nil {
			return domain.NewNotFound(domain.EntityItem, itemID)
		}

		if err := s.lineItems.RemoveItem(ctx, order.ID, itemID); err != nil {
			return err
		}

		view, err = s.ToView(ctx, order)
		if err != nil {
			return err
		}
		return s.record(ctx, change{
			order:     order,
			total:     &view.Total,
			item:      removed,
			timeline:  domain.TimelineItemRemoved,
			reason:    fmt.Sprintf("product %d x%d", removed.ProductID, removed.Quantity),
			eventType: eventItemRemoved,
		})
	})
	if err != nil {
		return OrderView{}, err
	}

	s.metrics.RecordItemChange(metrics.ItemActionRemoved)
	return view, nil
}

// Timeline возвращает журнал событий заказа в хронологическом порядке.
func (s *Service) Timeline(ctx context.Context, orderID int64) ([]domain.TimelineEvent, error) {
	if s.timeline == nil {
		return []domain.TimelineEvent{}, nil
	}
	return s.timeline.List(ctx, orderID)
}

// lockPending блокирует заказ и проверяет, что его позиции ещё можно менять.
func (s *Service) lockPending(ctx context.Context, orderID int64) (domain.Order, error) {
	order, err := s.orders.GetForUpdate(ctx, orderID)
	if err != nil {
		return domain.Order{}, err
	}
	switch order.Status {
	case domain.OrderStatusPending:
		return order, nil
	case domain.OrderStatusPaid, domain.OrderStatusFulfilled, domain.OrderStatusCancelled:
		return domain.Order{}, &domain.InvalidStateError{OrderID: order.ID, Status: order.Status, Reason: "items can only be changed while the order is pending"}
	default:
		return domain.Order{}, &domain.InvalidStateError{OrderID: order.ID, Status: order.Status, Reason: "unknown status"}
	}
}

func (s *Service) observe(operation string, started time.Time, errp *error) {
	err := *errp
	s.metrics.ObserveOperation(operation, started, err)
	if err == nil {
		return
	}

	entry := s.logger.WithError(err).WithField("operation", operation)
	if isBusinessError(err) {
		entry.Debug("order operation rejected")
		return
	}
	entry.Error("order operation failed")
}

func isBusinessError(err error) bool {
	return errors.Is(err, domain.ErrNotFound) ||
		errors.Is(err, domain.ErrInvalidState) ||
		errors.Is(err, domain.ErrInvalidQuantity) ||
		errors.Is(err, domain.ErrEmptyOrder) ||
		errors.Is(err, domain.ErrValidation)
}
