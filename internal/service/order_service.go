package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"foodie-express/internal/domain"
	"foodie-express/internal/pricing"
	"foodie-express/internal/tracking"

	"github.com/google/uuid"
)

var (
	ErrEmptyCart      = errors.New("cart is empty")
	ErrMissingContact = errors.New("delivery address and phone number are required")
	ErrNotCancellable = errors.New("order can no longer be cancelled")
	ErrUnknownStatus  = errors.New("unknown order status")
	ErrOrderNotFound  = errors.New("order not found")
)

type OrderService struct {
	repo        OrderRepository
	restaurants RestaurantRepository
	carts       CartServiceInterface
	publisher   OrderPublisher
	qrEncoder   QRGenerator
}

func NewOrderService(repo OrderRepository, restaurants RestaurantRepository, carts CartServiceInterface, publisher OrderPublisher, qr QRGenerator) *OrderService {
	return &OrderService{
		repo:        repo,
		restaurants: restaurants,
		carts:       carts,
		publisher:   publisher,
		qrEncoder:   qr,
	}
}

// Checkout snapshots the session's cart into a pending order. Line names
// and unit prices are copied so later menu edits never change a placed
// order.
func (s *OrderService) Checkout(ctx context.Context, req CheckoutRequest) (*domain.Order, error) {
	if req.DeliveryAddress == "" || req.PhoneNumber == "" {
		return nil, ErrMissingContact
	}

	view, err := s.carts.View(req.SessionID)
	if err != nil {
		return nil, err
	}
	if len(view.Lines) == 0 {
		return nil, ErrEmptyCart
	}

	restaurant, err := s.restaurants.GetRestaurant(view.RestaurantID)
	if err != nil {
		return nil, fmt.Errorf("load restaurant: %w", err)
	}

	items := make([]domain.OrderItem, 0, len(view.Lines))
	for _, line := range view.Lines {
		items = append(items, domain.OrderItem{
			Name:     line.Item.Name,
			Price:    line.Item.Price,
			Quantity: line.Quantity,
		})
	}

	order := &domain.Order{
		ID:                    uuid.NewString(),
		RestaurantID:          restaurant.ID,
		RestaurantName:        restaurant.Name,
		Items:                 items,
		Subtotal:              view.Subtotal,
		DeliveryFee:           restaurant.DeliveryFee,
		Status:                domain.StatusPending,
		DeliveryAddress:       req.DeliveryAddress,
		PhoneNumber:           req.PhoneNumber,
		EstimatedDeliveryTime: restaurant.DeliveryTime,
		SpecialInstructions:   req.SpecialInstructions,
		CreatedBy:             req.Email,
	}

	if err := s.repo.CreateOrder(order); err != nil {
		return nil, err
	}
	s.carts.Clear(req.SessionID)
	s.publish(ctx, domain.EventOrderPlaced, order)
	return order, nil
}

// ListUserOrders returns a customer's orders, newest first.
func (s *OrderService) ListUserOrders(email string) ([]domain.Order, error) {
	return s.repo.ListUserOrders(email, "-created_at", 0)
}

// Track returns the order with its stage projection and payable total.
func (s *OrderService) Track(id string) (*TrackingView, error) {
	order, err := s.repo.GetOrder(id)
	if err != nil {
		return nil, ErrOrderNotFound
	}
	return &TrackingView{
		Order:     order,
		Stages:    tracking.Project(order.Status, tracking.Stages),
		Cancelled: order.Status == domain.StatusCancelled,
		Total:     pricing.OrderTotal(*order),
	}, nil
}

// Cancel moves a non-terminal order to cancelled.
func (s *OrderService) Cancel(ctx context.Context, id string) (*domain.Order, error) {
	order, err := s.repo.GetOrder(id)
	if err != nil {
		return nil, ErrOrderNotFound
	}
	if !order.Status.CanCancel() {
		return nil, ErrNotCancellable
	}
	if _, err := s.repo.UpdateOrderStatus(id, domain.StatusCancelled); err != nil {
		return nil, err
	}
	order.Status = domain.StatusCancelled
	s.publish(ctx, domain.EventStatusChanged, order)
	return order, nil
}

// UpdateStatus sets an order's status. The status must belong to the
// closed set; new statuses are rejected here rather than stored as free
// text.
func (s *OrderService) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	if !status.IsValid() {
		return nil, ErrUnknownStatus
	}
	rows, err := s.repo.UpdateOrderStatus(id, status)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, ErrOrderNotFound
	}
	order, err := s.repo.GetOrder(id)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, domain.EventStatusChanged, order)
	return order, nil
}

// ReceiptQR encodes the tracking link for an order as a PNG QR code.
func (s *OrderService) ReceiptQR(id string) ([]byte, error) {
	if _, err := s.repo.GetOrder(id); err != nil {
		return nil, ErrOrderNotFound
	}
	return s.qrEncoder.Generate(id)
}

func (s *OrderService) publish(ctx context.Context, eventType string, order *domain.Order) {
	if s.publisher == nil {
		return
	}
	err := s.publisher.PublishOrderEvent(ctx, domain.OrderEvent{
		Type:         eventType,
		OrderID:      order.ID,
		RestaurantID: order.RestaurantID,
		CreatedBy:    order.CreatedBy,
		Status:       order.Status,
		Total:        pricing.OrderTotal(*order),
		Timestamp:    time.Now(),
	})
	if err != nil {
		log.Printf("[orders] publish %s for order %s failed: %v", eventType, order.ID, err)
	}
}

var _ OrderServiceInterface = (*OrderService)(nil)
