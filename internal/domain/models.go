package domain

import "time"

type Restaurant struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Description  string      `json:"description"`
	CuisineType  CuisineType `json:"cuisine_type"`
	Rating       float64     `json:"rating"`
	DeliveryTime string      `json:"delivery_time"`
	DeliveryFee  float64     `json:"delivery_fee"`
	IsOpen       bool        `json:"is_open"`
	Featured     bool        `json:"featured"`
	ImageURL     string      `json:"image_url"`
	CreatedAt    time.Time   `json:"created_at"`
}

type MenuItem struct {
	ID           string    `json:"id"`
	RestaurantID string    `json:"restaurant_id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	Price        float64   `json:"price"`
	IsVegetarian bool      `json:"is_vegetarian"`
	IsSpicy      bool      `json:"is_spicy"`
	IsPopular    bool      `json:"is_popular"`
	Ingredients  []string  `json:"ingredients"`
	PrepTime     string    `json:"preparation_time"`
	ImageURL     string    `json:"image_url"`
	CreatedAt    time.Time `json:"created_at"`
}

// CartLine is one distinct menu item and its quantity within a cart.
// Quantity is always >= 1; a line reduced to zero is removed, never kept.
type CartLine struct {
	Item     MenuItem `json:"item"`
	Quantity int      `json:"quantity"`
}

// OrderItem is a snapshot of a cart line taken at placement time. It keeps
// the name and unit price the customer saw even if the menu changes later.
type OrderItem struct {
	Name                string  `json:"name"`
	Price               float64 `json:"price"`
	Quantity            int     `json:"quantity"`
	SpecialInstructions string  `json:"special_instructions,omitempty"`
}

type Order struct {
	ID                    string      `json:"id"`
	RestaurantID          string      `json:"restaurant_id"`
	RestaurantName        string      `json:"restaurant_name"`
	Items                 []OrderItem `json:"items"`
	Subtotal              float64     `json:"total_amount"`
	DeliveryFee           float64     `json:"delivery_fee"`
	Status                OrderStatus `json:"status"`
	DeliveryAddress       string      `json:"delivery_address"`
	PhoneNumber           string      `json:"phone_number"`
	EstimatedDeliveryTime string      `json:"estimated_delivery_time,omitempty"`
	SpecialInstructions   string      `json:"special_instructions,omitempty"`
	CreatedBy             string      `json:"created_by"`
	CreatedAt             time.Time   `json:"created_at"`
}

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
}

// OrderEvent is published to Kafka whenever an order is placed or its
// status changes.
type OrderEvent struct {
	Type         string      `json:"type"`
	OrderID      string      `json:"order_id"`
	RestaurantID string      `json:"restaurant_id"`
	CreatedBy    string      `json:"created_by"`
	Status       OrderStatus `json:"status"`
	Total        float64     `json:"total"`
	Timestamp    time.Time   `json:"timestamp"`
}

const (
	EventOrderPlaced   = "order_placed"
	EventStatusChanged = "status_changed"
)
