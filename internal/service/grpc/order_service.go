package grpcsvc

import (
	"context"
	"errors"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/vladislavdragonenkov/boutique/internal/domain"
	"github.com/vladislavdragonenkov/boutique/internal/service/apiview"
	"github.com/vladislavdragonenkov/boutique/internal/service/lifecycle"
	"github.com/vladislavdragonenkov/boutique/internal/service/report"
	boutiquev1 "github.com/vladislavdragonenkov/boutique/proto/boutique/v1"
)

// OrderLifecycle — операции над заказами, которые сервис отдаёт наружу.
type OrderLifecycle interface {
	CreateOrder(ctx context.Context, customerID int64, description string) (lifecycle.OrderView, error)
	GetOrder(ctx context.Context, id int64) (lifecycle.OrderView, error)
	ListOrders(ctx context.Context) ([]lifecycle.OrderView, error)
	ListOrdersByStatus(ctx context.Context, status domain.OrderStatus) ([]lifecycle.OrderView, error)
	ListOrdersByDateRange(ctx context.Context, start, end time.Time) ([]lifecycle.OrderView, error)
	UpdateOrder(ctx context.Context, id int64, input lifecycle.UpdateOrderInput) (lifecycle.OrderView, error)
	DeleteOrder(ctx context.Context, id int64) error
	CloseOrder(ctx context.Context, id int64) (lifecycle.OrderView, error)
	AddItem(ctx context.Context, orderID, productID int64, quantity int32) (lifecycle.OrderView, error)
	RemoveItem(ctx context.Context, orderID, itemID int64) (lifecycle.OrderView, error)
}

// SalesReporter строит отчёт о продажах за период.
type SalesReporter interface {
	Sales(ctx context.Context, start, end time.Time, opts report.SalesOptions) (report.SalesReport, error)
}

var errOrderIDRequired = status.Error(codes.InvalidArgument, "orderId is required")

// OrderService реализует boutique.v1.OrderService поверх сервиса жизненного цикла.
type OrderService struct {
	boutiquev1.UnimplementedOrderServiceServer

	orders  OrderLifecycle
	reports SalesReporter
	logger  *log.Entry
}

// NewOrderService конструирует сервис с зависимостями.
func NewOrderService(orders OrderLifecycle, reports SalesReporter, logger *log.Entry) *OrderService {
	if logger == nil {
		logger = log.WithField("component", "grpc-order-service")
	}
	return &OrderService{
		orders:  orders,
		reports: reports,
		logger:  logger,
	}
}

// CreateOrder создаёт заказ в статусе PENDING.
func (s *OrderService) CreateOrder(ctx context.Context, req *boutiquev1.CreateOrderRequest) (*boutiquev1.CreateOrderResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if req.CustomerId <= 0 {
		return nil, status.Error(codes.InvalidArgument, "customerId is required")
	}

	view, err := s.orders.CreateOrder(ctx, req.CustomerId, req.Description)
	if err != nil {
		return nil, s.toStatus("CreateOrder", err)
	}
	return &boutiquev1.CreateOrderResponse{Order: apiview.Order(view)}, nil
}

// GetOrder возвращает заказ с позициями и итогом.
func (s *OrderService) GetOrder(ctx context.Context, req *boutiquev1.GetOrderRequest) (*boutiquev1.GetOrderResponse, error) {
	if req == nil || req.OrderId <= 0 {
		return nil, errOrderIDRequired
	}

	view, err := s.orders.GetOrder(ctx, req.OrderId)
	if err != nil {
		return nil, s.toStatus("GetOrder", err)
	}
	return &boutiquev1.GetOrderResponse{Order: apiview.Order(view)}, nil
}

// ListOrders возвращает все заказы либо заказы по статусу или диапазону дат.
func (s *OrderService) ListOrders(ctx context.Context, req *boutiquev1.ListOrdersRequest) (*boutiquev1.ListOrdersResponse, error) {
	if req == nil {
		req = &boutiquev1.ListOrdersRequest{}
	}

	hasStatus := strings.TrimSpace(req.Status) != ""
	hasRange := req.Start != "" || req.End != ""

	var (
		views []lifecycle.OrderView
		err   error
	)
	switch {
	case hasStatus && hasRange:
		return nil, status.Error(codes.InvalidArgument, "status and date range filters are mutually exclusive")
	case hasStatus:
		orderStatus, parseErr := domain.ParseOrderStatus(req.Status)
		if parseErr != nil {
			return nil, s.toStatus("ListOrders", parseErr)
		}
		views, err = s.orders.ListOrdersByStatus(ctx, orderStatus)
	case hasRange:
		start, end, parseErr := apiview.ParseRange(req.Start, req.End)
		if parseErr != nil {
			return nil, s.toStatus("ListOrders", parseErr)
		}
		views, err = s.orders.ListOrdersByDateRange(ctx, start, end)
	default:
		views, err = s.orders.ListOrders(ctx)
	}
	if err != nil {
		return nil, s.toStatus("ListOrders", err)
	}

	return &boutiquev1.ListOrdersResponse{Orders: apiview.Orders(views)}, nil
}

// UpdateOrder меняет статус незавершённого заказа.
func (s *OrderService) UpdateOrder(ctx context.Context, req *boutiquev1.UpdateOrderRequest) (*boutiquev1.UpdateOrderResponse, error) {
	if req == nil || req.OrderId <= 0 {
		return nil, errOrderIDRequired
	}

	var input lifecycle.UpdateOrderInput
	if strings.TrimSpace(req.Status) != "" {
		orderStatus, err := domain.ParseOrderStatus(req.Status)
		if err != nil {
			return nil, s.toStatus("UpdateOrder", err)
		}
		input.Status = &orderStatus
	}

	view, err := s.orders.UpdateOrder(ctx, req.OrderId, input)
	if err != nil {
		return nil, s.toStatus("UpdateOrder", err)
	}
	return &boutiquev1.UpdateOrderResponse{Order: apiview.Order(view)}, nil
}

// DeleteOrder удаляет заказ в статусе PENDING.
func (s *OrderService) DeleteOrder(ctx context.Context, req *boutiquev1.DeleteOrderRequest) (*boutiquev1.DeleteOrderResponse, error) {
	if req == nil || req.OrderId <= 0 {
		return nil, errOrderIDRequired
	}

	if err := s.orders.DeleteOrder(ctx, req.OrderId); err != nil {
		return nil, s.toStatus("DeleteOrder", err)
	}
	return &boutiquev1.DeleteOrderResponse{}, nil
}

// CloseOrder переводит заказ в FULFILLED.
func (s *OrderService) CloseOrder(ctx context.Context, req *boutiquev1.CloseOrderRequest) (*boutiquev1.CloseOrderResponse, error) {
	if req == nil || req.OrderId <= 0 {
		return nil, errOrderIDRequired
	}

	view, err := s.orders.CloseOrder(ctx, req.OrderId)
	if err != nil {
		return nil, s.toStatus("CloseOrder", err)
	}
	return &boutiquev1.CloseOrderResponse{Order: apiview.Order(view)}, nil
}

// AddItem добавляет позицию и возвращает её вместе с обновлённым заказом.
func (s *OrderService) AddItem(ctx context.Context, req *boutiquev1.AddItemRequest) (*boutiquev1.AddItemResponse, error) {
	if req == nil || req.OrderId <= 0 {
		return nil, errOrderIDRequired
	}

	view, err := s.orders.AddItem(ctx, req.OrderId, req.ProductId, req.Quantity)
	if err != nil {
		return nil, s.toStatus("AddItem", err)
	}

	resp := &boutiquev1.AddItemResponse{Order: apiview.Order(view)}
	if item, ok := view.LastAdded(); ok {
		resp.Item = apiview.Item(item)
	}
	return resp, nil
}

// RemoveItem удаляет позицию из заказа.
func (s *OrderService) RemoveItem(ctx context.Context, req *boutiquev1.RemoveItemRequest) (*boutiquev1.RemoveItemResponse, error) {
	if req == nil || req.OrderId <= 0 {
		return nil, errOrderIDRequired
	}

	view, err := s.orders.RemoveItem(ctx, req.OrderId, req.ItemId)
	if err != nil {
		return nil, s.toStatus("RemoveItem", err)
	}
	return &boutiquev1.RemoveItemResponse{Order: apiview.Order(view)}, nil
}

// GetSalesReport возвращает отчёт о продажах за [start, end].
func (s *OrderService) GetSalesReport(ctx context.Context, req *boutiquev1.GetSalesReportRequest) (*boutiquev1.GetSalesReportResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if s.reports == nil {
		return nil, status.Error(codes.Unimplemented, "sales reports are not configured")
	}

	start, end, err := apiview.ParseRange(req.Start, req.End)
	if err != nil {
		return nil, s.toStatus("GetSalesReport", err)
	}

	rep, err := s.reports.Sales(ctx, start, end, report.SalesOptions{ExcludeCancelled: req.ExcludeCancelled})
	if err != nil {
		return nil, s.toStatus("GetSalesReport", err)
	}
	return &boutiquev1.GetSalesReportResponse{Report: apiview.SalesReport(rep)}, nil
}

// toStatus переводит доменную ошибку в gRPC-статус. Сообщения бизнес-ошибок уходят клиенту как есть.
func (s *OrderService) toStatus(method string, err error) error {
	code := StatusCode(err)
	if code != codes.Internal {
		return status.Error(code, err.Error())
	}

	s.logger.WithError(err).WithField("method", method).Error("order request failed")
	return status.Error(codes.Internal, "internal error")
}

// StatusCode возвращает gRPC-код для доменной ошибки.
func StatusCode(err error) codes.Code {
	switch {
	case err == nil:
		return codes.OK
	case errors.Is(err, domain.ErrNotFound):
		return codes.NotFound
	case errors.Is(err, domain.ErrInvalidState), errors.Is(err, domain.ErrEmptyOrder):
		return codes.FailedPrecondition
	case errors.Is(err, domain.ErrInvalidQuantity), errors.Is(err, domain.ErrValidation):
		return codes.InvalidArgument
	case errors.Is(err, domain.ErrOrderVersionConflict):
		return codes.Aborted
	case errors.Is(err, context.Canceled):
		return codes.Canceled
	case errors.Is(err, context.DeadlineExceeded):
		return codes.DeadlineExceeded
	default:
		return codes.Internal
	}
}

var _ boutiquev1.OrderServiceServer = (*OrderService)(nil)
