package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound — заказ, позиция, клиент или товар отсутствуют.
	ErrNotFound = errors.New("not found")
	// ErrInvalidState — операция запрещена в текущем статусе заказа.
	ErrInvalidState = errors.New("invalid order state")
	// ErrInvalidQuantity — количество товара должно быть больше нуля.
	ErrInvalidQuantity = errors.New("invalid quantity")
	// ErrEmptyOrder — попытка закрыть заказ без позиций.
	ErrEmptyOrder = errors.New("empty order")
	// ErrValidation — некорректные входные данные.
	ErrValidation = errors.New("validation failed")
	// ErrOrderVersionConflict сигнализирует о конфликте версий при сохранении.
	ErrOrderVersionConflict = errors.New("order version conflict")
	// ErrOutboxPublish — ошибка при публикации сообщения из outbox.
	ErrOutboxPublish = errors.New("outbox publish failed")
)

// Названия сущностей для NotFoundError.
const (
	EntityOrder    = "order"
	EntityItem     = "order item"
	EntityCustomer = "customer"
	EntityProduct  = "product"
)

// NotFoundError сообщает, какая сущность и с каким id не найдена.
type NotFoundError struct {
	Entity string
	ID     int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found with id: %d", e.Entity, e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// NewNotFound конструирует NotFoundError.
func NewNotFound(entity string, id int64) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// InvalidStateError — операция над заказом запрещена его текущим статусом.
type InvalidStateError struct {
	OrderID int64
	Status  OrderStatus
	Reason  string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("order %d (%s): %s", e.OrderID, e.Status, e.Reason)
}

func (e *InvalidStateError) Is(target error) bool { return target == ErrInvalidState }

// InvalidQuantityError — количество позиции не положительное.
type InvalidQuantityError struct {
	Quantity int32
}

func (e *InvalidQuantityError) Error() string {
	return fmt.Sprintf("quantity must be greater than zero, got %d", e.Quantity)
}

func (e *InvalidQuantityError) Is(target error) bool { return target == ErrInvalidQuantity }

// EmptyOrderError — заказ нельзя закрыть без позиций.
type EmptyOrderError struct {
	OrderID int64
}

func (e *EmptyOrderError) Error() string {
	return fmt.Sprintf("order %d: cannot fulfill an order without items", e.OrderID)
}

func (e *EmptyOrderError) Is(target error) bool { return target == ErrEmptyOrder }

// ValidationError описывает некорректное поле запроса.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// IsVersionConflict проверяет, является ли ошибка конфликтом версий.
func IsVersionConflict(err error) bool {
	return errors.Is(err, ErrOrderVersionConflict)
}

// IsNotFound проверяет, что ошибка относится к отсутствующей сущности.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
