// Package httpapi отдаёт операции над заказами и отчёт о продажах по REST (gin).
package httpapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"google.golang.org/protobuf/proto"

	"github.com/vladislavdragonenkov/boutique/internal/domain"
	"github.com/vladislavdragonenkov/boutique/internal/service/apiview"
	"github.com/vladislavdragonenkov/boutique/internal/service/lifecycle"
	"github.com/vladislavdragonenkov/boutique/internal/service/report"
	boutiquev1 "github.com/vladislavdragonenkov/boutique/proto/boutique/v1"
)

// Orders — операции жизненного цикла, нужные REST-слою.
type Orders interface {
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
	Timeline(ctx context.Context, orderID int64) ([]domain.TimelineEvent, error)
}

// Reports строит отчёт о продажах.
type Reports interface {
	Sales(ctx context.Context, start, end time.Time, opts report.SalesOptions) (report.SalesReport, error)
}

// Server — REST API сервиса заказов.
type Server struct {
	engine  *gin.Engine
	orders  Orders
	reports Reports
	logger  *log.Entry
}

// NewServer собирает gin-движок с маршрутами /api/v1.
func NewServer(orders Orders, reports Reports, logger *log.Entry) *Server {
	if logger == nil {
		logger = log.WithField("component", "http-api")
	}

	r := gin.New()
	r.Use(requestLogger(logger), gin.Recovery())
	s := &Server{engine: r, orders: orders, reports: reports, logger: logger}
	s.registerRoutes()
	return s
}

// Engine возвращает http.Handler для http.Server и тестов.
func (s *Server) Engine() *gin.Engine { return s.engine }

func (s *Server) registerRoutes() {
	v1 := s.engine.Group("/api/v1")
	{
		orders := v1.Group("/orders")
		orders.GET("", s.listOrders)
		orders.POST("", s.createOrder)
		orders.GET("/:id", s.getOrder)
		orders.PUT("/:id", s.updateOrder)
		orders.DELETE("/:id", s.deleteOrder)
		orders.POST("/:id/close", s.closeOrder)
		orders.GET("/:id/timeline", s.timeline)
		orders.POST("/:id/items", s.addItem)
		orders.DELETE("/:id/items/:itemId", s.removeItem)

		v1.GET("/reports/sales", s.salesReport)
	}
}

func (s *Server) createOrder(c *gin.Context) {
	var req boutiquev1.CreateOrderRequest
	if !bind(c, &req) {
		return
	}
	view, err := s.orders.CreateOrder(c.Request.Context(), req.GetCustomerId(), req.GetDescription())
	if err != nil {
		s.writeError(c, err)
		return
	}
	s.render(c, http.StatusCreated, apiview.Order(view))
}

func (s *Server) getOrder(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := s.orders.GetOrder(c.Request.Context(), id)
	if err != nil {
		s.writeError(c, err)
		return
	}
	s.render(c, http.StatusOK, apiview.Order(view))
}

func (s *Server) listOrders(c *gin.Context) {
	ctx := c.Request.Context()
	rawStatus := strings.TrimSpace(c.Query("status"))
	start, end := c.Query("start"), c.Query("end")

	var (
		views []lifecycle.OrderView
		err   error
	)
	switch {
	case rawStatus != "" && (start != "" || end != ""):
		c.JSON(http.StatusBadRequest, gin.H{"error": "status and date range filters are mutually exclusive"})
		return
	case rawStatus != "":
		status, parseErr := domain.ParseOrderStatus(rawStatus)
		if parseErr != nil {
			s.writeError(c, parseErr)
			return
		}
		views, err = s.orders.ListOrdersByStatus(ctx, status)
	case start != "" || end != "":
		from, to, parseErr := apiview.ParseRange(start, end)
		if parseErr != nil {
			s.writeError(c, parseErr)
			return
		}
		views, err = s.orders.ListOrdersByDateRange(ctx, from, to)
	default:
		views, err = s.orders.ListOrders(ctx)
	}
	if err != nil {
		s.writeError(c, err)
		return
	}
	s.render(c, http.StatusOK, &boutiquev1.ListOrdersResponse{Orders: apiview.Orders(views)})
}

func (s *Server) updateOrder(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req boutiquev1.UpdateOrderRequest
	if !bind(c, &req) {
		return
	}

	var input lifecycle.UpdateOrderInput
	if strings.TrimSpace(req.GetStatus()) != "" {
		status, err := domain.ParseOrderStatus(req.GetStatus())
		if err != nil {
			s.writeError(c, err)
			return
		}
		input.Status = &status
	}

	view, err := s.orders.UpdateOrder(c.Request.Context(), id, input)
	if err != nil {
		s.writeError(c, err)
		return
	}
	s.render(c, http.StatusOK, apiview.Order(view))
}

func (s *Server) deleteOrder(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := s.orders.DeleteOrder(c.Request.Context(), id); err != nil {
		s.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) closeOrder(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := s.orders.CloseOrder(c.Request.Context(), id)
	if err != nil {
		s.writeError(c, err)
		return
	}
	s.render(c, http.StatusOK, apiview.Order(view))
}

func (s *Server) addItem(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req boutiquev1.AddItemRequest
	if !bind(c, &req) {
		return
	}

	view, err := s.orders.AddItem(c.Request.Context(), id, req.GetProductId(), req.GetQuantity())
	if err != nil {
		s.writeError(c, err)
		return
	}
	resp := &boutiquev1.AddItemResponse{Order: apiview.Order(view)}
	if item, ok := view.LastAdded(); ok {
		resp.Item = apiview.Item(item)
	}
	s.render(c, http.StatusCreated, resp)
}

func (s *Server) removeItem(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	itemID, ok := pathID(c, "itemId")
	if !ok {
		return
	}
	view, err := s.orders.RemoveItem(c.Request.Context(), id, itemID)
	if err != nil {
		s.writeError(c, err)
		return
	}
	s.render(c, http.StatusOK, apiview.Order(view))
}

type timelineEvent struct {
	Type     string `json:"type"`
	Reason   string `json:"reason,omitempty"`
	Occurred string `json:"occurred"`
}

func (s *Server) timeline(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	ctx := c.Request.Context()
	if _, err := s.orders.GetOrder(ctx, id); err != nil {
		s.writeError(c, err)
		return
	}
	events, err := s.orders.Timeline(ctx, id)
	if err != nil {
		s.writeError(c, err)
		return
	}

	result := make([]timelineEvent, 0, len(events))
	for _, event := range events {
		result = append(result, timelineEvent{
			Type:     event.Type,
			Reason:   event.Reason,
			Occurred: apiview.FormatTime(event.Occurred),
		})
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) salesReport(c *gin.Context) {
	from, to, err := apiview.ParseRange(c.Query("start"), c.Query("end"))
	if err != nil {
		s.writeError(c, err)
		return
	}
	excludeCancelled, err := strconv.ParseBool(c.DefaultQuery("excludeCancelled", "false"))
	if err != nil {
		s.writeError(c, &domain.ValidationError{
			Field:  "excludeCancelled",
			Reason: fmt.Sprintf("must be a boolean, got %q", c.Query("excludeCancelled")),
		})
		return
	}

	rep, err := s.reports.Sales(c.Request.Context(), from, to, report.SalesOptions{ExcludeCancelled: excludeCancelled})
	if err != nil {
		s.writeError(c, err)
		return
	}
	s.render(c, http.StatusOK, apiview.SalesReport(rep))
}

// bind читает тело запроса как JSON-форму сообщения boutique.v1.
func bind(c *gin.Context, msg proto.Message) bool {
	body, err := io.ReadAll(c.Request.Body)
	if err == nil {
		err = boutiquev1.UnmarshalJSON(body, msg)
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return false
	}
	return true
}

// render пишет сообщение в той же JSON-форме, что и gRPC-кодек json.
func (s *Server) render(c *gin.Context, status int, msg proto.Message) {
	data, err := boutiquev1.MarshalJSON(msg)
	if err != nil {
		s.writeError(c, fmt.Errorf("encode response: %w", err))
		return
	}
	c.Data(status, "application/json; charset=utf-8", data)
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return id, true
}

func (s *Server) writeError(c *gin.Context, err error) {
	status := StatusCode(err)
	if status == http.StatusInternalServerError {
		s.logger.WithError(err).WithFields(log.Fields{
			"method": c.Request.Method,
			"path":   c.FullPath(),
		}).Error("order request failed")
		c.JSON(status, gin.H{"error": "internal error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// StatusCode переводит доменную ошибку в HTTP-статус.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidState),
		errors.Is(err, domain.ErrEmptyOrder),
		errors.Is(err, domain.ErrOrderVersionConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidQuantity), errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func requestLogger(logger *log.Entry) gin.HandlerFunc {
	return func(c *gin.Context) {
		started := time.Now()
		c.Next()
		logger.WithFields(log.Fields{
			"method":   c.Request.Method,
			"path":     c.FullPath(),
			"status":   c.Writer.Status(),
			"duration": time.Since(started).String(),
		}).Debug("http request")
	}
}
