package service

import (
	"errors"
	"fmt"
	"sync"

	"foodie-express/internal/cart"
	"foodie-express/internal/domain"
	"foodie-express/internal/pricing"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound = errors.New("cart session not found")
	ErrLineNotFound    = errors.New("item is not in the cart")
)

// CartService owns one ledger per browsing session. Adding an item from a
// different restaurant resets the ledger first, matching what happens when
// a customer navigates to another menu.
type CartService struct {
	menu        MenuRepository
	restaurants RestaurantRepository

	mu       sync.Mutex
	sessions map[string]*cartSession
}

type cartSession struct {
	restaurantID string
	ledger       *cart.Ledger
}

func NewCartService(menu MenuRepository, restaurants RestaurantRepository) *CartService {
	return &CartService{
		menu:        menu,
		restaurants: restaurants,
		sessions:    make(map[string]*cartSession),
	}
}

// AddItem puts quantity units of an item into the session's cart. An empty
// session id starts a new session; the id in use is returned either way.
func (s *CartService) AddItem(sessionID, restaurantID, itemID string, quantity int) (string, error) {
	item, err := s.menu.GetMenuItem(restaurantID, itemID)
	if err != nil {
		return "", fmt.Errorf("load menu item: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	sess, ok := s.sessions[sessionID]
	if !ok {
		sess = &cartSession{ledger: cart.NewLedger()}
		s.sessions[sessionID] = sess
	}
	if sess.restaurantID != "" && sess.restaurantID != restaurantID {
		sess.ledger.Reset()
	}
	sess.restaurantID = restaurantID

	if err := sess.ledger.Add(*item, quantity); err != nil {
		return "", err
	}
	return sessionID, nil
}

// SetQuantity sets a line to exactly quantity; zero removes the line.
func (s *CartService) SetQuantity(sessionID, itemID string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return ErrSessionNotFound
	}
	found, err := sess.ledger.SetQuantity(itemID, quantity)
	if err != nil {
		return err
	}
	if !found {
		return ErrLineNotFound
	}
	return nil
}

func (s *CartService) View(sessionID string) (*CartView, error) {
	// Snapshot the ledger before releasing the lock; only the repository
	// lookup runs outside it.
	s.mu.Lock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		s.mu.Unlock()
		return nil, ErrSessionNotFound
	}
	restaurantID := sess.restaurantID
	lines := sess.ledger.Lines()
	itemCount := sess.ledger.ItemCount()
	subtotal := sess.ledger.Subtotal()
	s.mu.Unlock()

	fee := domain.DefaultDeliveryFee
	if restaurant, err := s.restaurants.GetRestaurant(restaurantID); err == nil {
		fee = restaurant.DeliveryFee
	}

	return &CartView{
		RestaurantID: restaurantID,
		Lines:        lines,
		ItemCount:    itemCount,
		Subtotal:     subtotal,
		DeliveryFee:  fee,
		Total: pricing.OrderTotal(domain.Order{
			Subtotal:    subtotal,
			DeliveryFee: fee,
		}),
	}, nil
}

// Clear ends the session and discards its ledger.
func (s *CartService) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
}

var _ CartServiceInterface = (*CartService)(nil)
