package service

import (
	"context"

	"foodie-express/internal/catalog"
	"foodie-express/internal/domain"
	"foodie-express/internal/pricing"
	"foodie-express/internal/tracking"
)

type RestaurantRepository interface {
	CreateRestaurant(r *domain.Restaurant) error
	ListRestaurants(sortSpec string) ([]domain.Restaurant, error)
	FilterRestaurants(fields map[string]interface{}, sortSpec string, limit int) ([]domain.Restaurant, error)
	GetRestaurant(id string) (*domain.Restaurant, error)
}

type MenuRepository interface {
	CreateMenuItem(item *domain.MenuItem) error
	ListMenuItems(restaurantID string) ([]domain.MenuItem, error)
	GetMenuItem(restaurantID, itemID string) (*domain.MenuItem, error)
}

type OrderRepository interface {
	CreateOrder(order *domain.Order) error
	GetOrder(id string) (*domain.Order, error)
	ListUserOrders(createdBy, sortSpec string, limit int) ([]domain.Order, error)
	UpdateOrderStatus(id string, status domain.OrderStatus) (int64, error)
}

type UserRepository interface {
	GetUserByEmail(email string) (*domain.User, error)
	UpdateUser(user *domain.User) error
}

type CatalogCache interface {
	GetRestaurants(ctx context.Context) ([]domain.Restaurant, bool)
	SetRestaurants(ctx context.Context, restaurants []domain.Restaurant) error
	Invalidate(ctx context.Context) error
}

type OrderPublisher interface {
	PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error
}

type QRGenerator interface {
	Generate(orderID string) ([]byte, error)
}

type CatalogServiceInterface interface {
	Browse(ctx context.Context, spec catalog.FilterSpec) ([]domain.Restaurant, error)
	Featured(ctx context.Context) ([]domain.Restaurant, error)
	Get(id string) (*domain.Restaurant, error)
	Create(ctx context.Context, r *domain.Restaurant) error
	Cuisines() []domain.CuisineType
}

type MenuServiceInterface interface {
	Menu(restaurantID string, filter MenuFilter) ([]domain.MenuItem, error)
	Categories(restaurantID string) ([]string, error)
	Get(restaurantID, itemID string) (*domain.MenuItem, error)
	Create(item *domain.MenuItem) error
}

type CartServiceInterface interface {
	AddItem(sessionID, restaurantID, itemID string, quantity int) (string, error)
	SetQuantity(sessionID, itemID string, quantity int) error
	View(sessionID string) (*CartView, error)
	Clear(sessionID string)
}

type OrderServiceInterface interface {
	Checkout(ctx context.Context, req CheckoutRequest) (*domain.Order, error)
	ListUserOrders(email string) ([]domain.Order, error)
	Track(id string) (*TrackingView, error)
	Cancel(ctx context.Context, id string) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error)
	ReceiptQR(id string) ([]byte, error)
}

type ProfileServiceInterface interface {
	Me(email string) (*domain.User, error)
	Update(email string, update ProfileUpdate) (*domain.User, error)
	Stats(email string) (pricing.Stats, error)
	Recent(email string) ([]domain.Order, error)
}

// MenuFilter narrows a menu listing. Category is free text with "all" and
// empty both meaning no filter; each flag, when set, requires the matching
// attribute.
type MenuFilter struct {
	Category   string
	Vegetarian bool
	Spicy      bool
	Popular    bool
}

// CartView is the cart as rendered in the sidebar: lines, badge count, and
// the pricing preview for the owning restaurant.
type CartView struct {
	RestaurantID string            `json:"restaurant_id"`
	Lines        []domain.CartLine `json:"lines"`
	ItemCount    int               `json:"item_count"`
	Subtotal     float64           `json:"subtotal"`
	DeliveryFee  float64           `json:"delivery_fee"`
	Total        float64           `json:"total"`
}

type CheckoutRequest struct {
	SessionID           string `json:"session_id"`
	Email               string `json:"email"`
	DeliveryAddress     string `json:"delivery_address"`
	PhoneNumber         string `json:"phone_number"`
	SpecialInstructions string `json:"special_instructions"`
}

// TrackingView pairs an order with its projected progress stages.
type TrackingView struct {
	Order     *domain.Order        `json:"order"`
	Stages    []tracking.StageView `json:"stages"`
	Cancelled bool                 `json:"cancelled"`
	Total     float64              `json:"total"`
}

type ProfileUpdate struct {
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}
