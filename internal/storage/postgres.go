package storage

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"foodie-express/internal/domain"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type PostgresStore struct {
	DB *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{DB: db}
}

// Sortable and filterable columns per collection. Anything outside these
// maps is ignored rather than interpolated into SQL.
var (
	restaurantSortFields = map[string]string{
		"rating":       "rating",
		"delivery_fee": "delivery_fee",
		"name":         "name",
		"created_at":   "created_at",
	}
	restaurantFilterFields = map[string]string{
		"cuisine_type": "cuisine_type",
		"featured":     "featured",
		"is_open":      "is_open",
	}
	orderSortFields = map[string]string{
		"created_at": "created_at",
		"status":     "status",
	}
)

// orderClause translates a sort spec like "-rating" into an ORDER BY
// fragment, falling back when the field is unknown.
func orderClause(sortSpec string, allowed map[string]string, fallback string) string {
	if sortSpec == "" {
		return fallback
	}
	desc := strings.HasPrefix(sortSpec, "-")
	field := strings.TrimPrefix(sortSpec, "-")
	column, ok := allowed[field]
	if !ok {
		return fallback
	}
	if desc {
		return column + " DESC"
	}
	return column + " ASC"
}

const restaurantColumns = `id, name, COALESCE(description, ''), cuisine_type, rating,
		COALESCE(delivery_time, ''), delivery_fee, is_open, featured, COALESCE(image_url, ''), created_at`

func scanRestaurant(row interface{ Scan(...interface{}) error }, r *domain.Restaurant) error {
	return row.Scan(&r.ID, &r.Name, &r.Description, &r.CuisineType, &r.Rating,
		&r.DeliveryTime, &r.DeliveryFee, &r.IsOpen, &r.Featured, &r.ImageURL, &r.CreatedAt)
}

func (s *PostgresStore) CreateRestaurant(r *domain.Restaurant) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.Rating == 0 {
		r.Rating = domain.DefaultRating
	}
	if r.DeliveryFee == 0 {
		r.DeliveryFee = domain.DefaultDeliveryFee
	}
	if r.DeliveryTime == "" {
		r.DeliveryTime = domain.DefaultDeliveryTime
	}
	return s.DB.QueryRow(`
		INSERT INTO restaurants (id, name, description, cuisine_type, rating, delivery_time, delivery_fee, is_open, featured, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at`,
		r.ID, r.Name, r.Description, r.CuisineType, r.Rating, r.DeliveryTime,
		r.DeliveryFee, r.IsOpen, r.Featured, r.ImageURL,
	).Scan(&r.CreatedAt)
}

func (s *PostgresStore) ListRestaurants(sortSpec string) ([]domain.Restaurant, error) {
	query := "SELECT " + restaurantColumns + " FROM restaurants ORDER BY " +
		orderClause(sortSpec, restaurantSortFields, "created_at DESC")
	rows, err := s.DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var restaurants []domain.Restaurant
	for rows.Next() {
		var r domain.Restaurant
		if err := scanRestaurant(rows, &r); err != nil {
			continue
		}
		restaurants = append(restaurants, r)
	}
	return restaurants, rows.Err()
}

// FilterRestaurants returns restaurants matching exact equality on each
// given field. Unknown fields are dropped from the predicate.
func (s *PostgresStore) FilterRestaurants(fields map[string]interface{}, sortSpec string, limit int) ([]domain.Restaurant, error) {
	query := "SELECT " + restaurantColumns + " FROM restaurants"
	var clauses []string
	var args []interface{}
	for field, value := range fields {
		column, ok := restaurantFilterFields[field]
		if !ok {
			continue
		}
		args = append(args, value)
		clauses = append(clauses, column+" = $"+strconv.Itoa(len(args)))
	}
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY " + orderClause(sortSpec, restaurantSortFields, "created_at DESC")
	if limit > 0 {
		query += " LIMIT " + strconv.Itoa(limit)
	}

	rows, err := s.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var restaurants []domain.Restaurant
	for rows.Next() {
		var r domain.Restaurant
		if err := scanRestaurant(rows, &r); err != nil {
			continue
		}
		restaurants = append(restaurants, r)
	}
	return restaurants, rows.Err()
}

func (s *PostgresStore) GetRestaurant(id string) (*domain.Restaurant, error) {
	var r domain.Restaurant
	row := s.DB.QueryRow("SELECT "+restaurantColumns+" FROM restaurants WHERE id = $1", id)
	if err := scanRestaurant(row, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *PostgresStore) CreateMenuItem(item *domain.MenuItem) error {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	return s.DB.QueryRow(`
		INSERT INTO menu_items (id, restaurant_id, name, description, category, price, is_vegetarian, is_spicy, is_popular, ingredients, prep_time, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING created_at`,
		item.ID, item.RestaurantID, item.Name, item.Description, item.Category, item.Price,
		item.IsVegetarian, item.IsSpicy, item.IsPopular, pq.Array(item.Ingredients),
		item.PrepTime, item.ImageURL,
	).Scan(&item.CreatedAt)
}

const menuItemColumns = `id, restaurant_id, name, COALESCE(description, ''), COALESCE(category, ''), price,
		is_vegetarian, is_spicy, is_popular, ingredients, COALESCE(prep_time, ''), COALESCE(image_url, ''), created_at`

func scanMenuItem(row interface{ Scan(...interface{}) error }, item *domain.MenuItem) error {
	return row.Scan(&item.ID, &item.RestaurantID, &item.Name, &item.Description, &item.Category,
		&item.Price, &item.IsVegetarian, &item.IsSpicy, &item.IsPopular,
		pq.Array(&item.Ingredients), &item.PrepTime, &item.ImageURL, &item.CreatedAt)
}

func (s *PostgresStore) ListMenuItems(restaurantID string) ([]domain.MenuItem, error) {
	rows, err := s.DB.Query(
		"SELECT "+menuItemColumns+" FROM menu_items WHERE restaurant_id = $1 ORDER BY created_at ASC",
		restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.MenuItem
	for rows.Next() {
		var item domain.MenuItem
		if err := scanMenuItem(rows, &item); err != nil {
			continue
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (s *PostgresStore) GetMenuItem(restaurantID, itemID string) (*domain.MenuItem, error) {
	var item domain.MenuItem
	row := s.DB.QueryRow(
		"SELECT "+menuItemColumns+" FROM menu_items WHERE id = $1 AND restaurant_id = $2",
		itemID, restaurantID)
	if err := scanMenuItem(row, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *PostgresStore) CreateOrder(order *domain.Order) error {
	tx, err := s.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := tx.QueryRow(`
		INSERT INTO orders (id, restaurant_id, restaurant_name, subtotal, delivery_fee, status,
			delivery_address, phone_number, estimated_delivery_time, special_instructions, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at`,
		order.ID, order.RestaurantID, order.RestaurantName, order.Subtotal, order.DeliveryFee,
		order.Status, order.DeliveryAddress, order.PhoneNumber, order.EstimatedDeliveryTime,
		order.SpecialInstructions, order.CreatedBy,
	).Scan(&order.CreatedAt); err != nil {
		return err
	}

	for i, item := range order.Items {
		if _, err := tx.Exec(`
			INSERT INTO order_items (order_id, position, name, price, quantity, special_instructions)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			order.ID, i, item.Name, item.Price, item.Quantity, item.SpecialInstructions); err != nil {
			return err
		}
	}

	return tx.Commit()
}

const orderColumns = `id, restaurant_id, restaurant_name, subtotal, delivery_fee, status,
		COALESCE(delivery_address, ''), COALESCE(phone_number, ''), COALESCE(estimated_delivery_time, ''),
		COALESCE(special_instructions, ''), created_by, created_at`

func scanOrder(row interface{ Scan(...interface{}) error }, o *domain.Order) error {
	return row.Scan(&o.ID, &o.RestaurantID, &o.RestaurantName, &o.Subtotal, &o.DeliveryFee,
		&o.Status, &o.DeliveryAddress, &o.PhoneNumber, &o.EstimatedDeliveryTime,
		&o.SpecialInstructions, &o.CreatedBy, &o.CreatedAt)
}

func (s *PostgresStore) GetOrder(id string) (*domain.Order, error) {
	var order domain.Order
	row := s.DB.QueryRow("SELECT "+orderColumns+" FROM orders WHERE id = $1", id)
	if err := scanOrder(row, &order); err != nil {
		return nil, err
	}

	rows, err := s.DB.Query(`
		SELECT name, price, quantity, COALESCE(special_instructions, '')
		FROM order_items WHERE order_id = $1 ORDER BY position`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.Name, &item.Price, &item.Quantity, &item.SpecialInstructions); err != nil {
			continue
		}
		order.Items = append(order.Items, item)
	}
	return &order, rows.Err()
}

func (s *PostgresStore) ListUserOrders(createdBy, sortSpec string, limit int) ([]domain.Order, error) {
	query := "SELECT " + orderColumns + " FROM orders WHERE created_by = $1 ORDER BY " +
		orderClause(sortSpec, orderSortFields, "created_at DESC")
	if limit > 0 {
		query += " LIMIT " + strconv.Itoa(limit)
	}
	rows, err := s.DB.Query(query, createdBy)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var order domain.Order
		if err := scanOrder(rows, &order); err != nil {
			continue
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}

func (s *PostgresStore) UpdateOrderStatus(id string, status domain.OrderStatus) (int64, error) {
	result, err := s.DB.Exec("UPDATE orders SET status = $1 WHERE id = $2", status, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (s *PostgresStore) GetUserByEmail(email string) (*domain.User, error) {
	var u domain.User
	err := s.DB.QueryRow(`
		SELECT id, email, COALESCE(full_name, ''), COALESCE(phone, ''), COALESCE(address, ''), created_at
		FROM users WHERE email = $1`, email).
		Scan(&u.ID, &u.Email, &u.FullName, &u.Phone, &u.Address, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *PostgresStore) UpdateUser(user *domain.User) error {
	return s.DB.QueryRow(`
		UPDATE users SET full_name = $1, phone = $2, address = $3
		WHERE email = $4
		RETURNING id, created_at`,
		user.FullName, user.Phone, user.Address, user.Email,
	).Scan(&user.ID, &user.CreatedAt)
}

func (s *PostgresStore) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS restaurants (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT,
			cuisine_type TEXT NOT NULL,
			rating DOUBLE PRECISION NOT NULL DEFAULT 4.5,
			delivery_time TEXT,
			delivery_fee DOUBLE PRECISION NOT NULL DEFAULT 2.99,
			is_open BOOLEAN NOT NULL DEFAULT TRUE,
			featured BOOLEAN NOT NULL DEFAULT FALSE,
			image_url TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS menu_items (
			id TEXT PRIMARY KEY,
			restaurant_id TEXT NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
			name TEXT NOT NULL,
			description TEXT,
			category TEXT,
			price DOUBLE PRECISION NOT NULL,
			is_vegetarian BOOLEAN NOT NULL DEFAULT FALSE,
			is_spicy BOOLEAN NOT NULL DEFAULT FALSE,
			is_popular BOOLEAN NOT NULL DEFAULT FALSE,
			ingredients TEXT[] NOT NULL DEFAULT '{}',
			prep_time TEXT,
			image_url TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id TEXT PRIMARY KEY,
			restaurant_id TEXT NOT NULL,
			restaurant_name TEXT NOT NULL,
			subtotal DOUBLE PRECISION NOT NULL,
			delivery_fee DOUBLE PRECISION NOT NULL DEFAULT 0,
			status TEXT NOT NULL,
			delivery_address TEXT,
			phone_number TEXT,
			estimated_delivery_time TEXT,
			special_instructions TEXT,
			created_by TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS order_items (
			order_id TEXT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			name TEXT NOT NULL,
			price DOUBLE PRECISION NOT NULL,
			quantity INTEGER NOT NULL,
			special_instructions TEXT,
			PRIMARY KEY (order_id, position)
		)`,
		`CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			full_name TEXT,
			phone TEXT,
			address TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	}
	for _, stmt := range statements {
		if _, err := s.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
