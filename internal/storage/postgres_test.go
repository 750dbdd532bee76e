package storage

import (
	"testing"
	"time"

	"foodie-express/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var restaurantRowColumns = []string{
	"id", "name", "description", "cuisine_type", "rating",
	"delivery_time", "delivery_fee", "is_open", "featured", "image_url", "created_at",
}

var orderRowColumns = []string{
	"id", "restaurant_id", "restaurant_name", "subtotal", "delivery_fee", "status",
	"delivery_address", "phone_number", "estimated_delivery_time",
	"special_instructions", "created_by", "created_at",
}

func newStoreWithMock(t *testing.T) (*PostgresStore, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	return NewPostgresStore(db), mock
}

func TestOrderClause(t *testing.T) {
	tests := []struct {
		name     string
		sortSpec string
		expected string
	}{
		{name: "descending rating", sortSpec: "-rating", expected: "rating DESC"},
		{name: "ascending name", sortSpec: "name", expected: "name ASC"},
		{name: "unknown field falls back", sortSpec: "-sql_injection", expected: "created_at DESC"},
		{name: "empty spec falls back", sortSpec: "", expected: "created_at DESC"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			got := orderClause(testCase.sortSpec, restaurantSortFields, "created_at DESC")
			assert.Equal(t, testCase.expected, got)
		})
	}
}

func TestCreateRestaurantAppliesDefaults(t *testing.T) {
	store, mock := newStoreWithMock(t)
	now := time.Now()

	r := &domain.Restaurant{Name: "Mario's", CuisineType: domain.CuisineItalian}

	mock.ExpectQuery("INSERT INTO restaurants").
		WithArgs(sqlmock.AnyArg(), "Mario's", "", domain.CuisineItalian, 4.5, "25-30 min",
			2.99, false, false, "").
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(now))

	err := store.CreateRestaurant(r)

	assert.NoError(t, err)
	assert.NotEmpty(t, r.ID)
	assert.InDelta(t, domain.DefaultRating, r.Rating, 1e-9)
	assert.Equal(t, domain.DefaultDeliveryTime, r.DeliveryTime)
}

func TestListRestaurants(t *testing.T) {
	store, mock := newStoreWithMock(t)
	now := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM restaurants ORDER BY rating DESC").
		WillReturnRows(sqlmock.NewRows(restaurantRowColumns).
			AddRow("r1", "Mario's", "Wood-fired pizza", "italian", 4.8, "25-30 min", 2.99, true, true, "", now).
			AddRow("r2", "Taco Hub", "", "mexican", 4.2, "15-20 min", 1.99, true, false, "", now))

	restaurants, err := store.ListRestaurants("-rating")

	assert.NoError(t, err)
	require.Len(t, restaurants, 2)
	assert.Equal(t, "Mario's", restaurants[0].Name)
	assert.Equal(t, domain.CuisineType("italian"), restaurants[0].CuisineType)
	assert.InDelta(t, 4.2, restaurants[1].Rating, 1e-9)
}

func TestListRestaurantsRejectsUnknownSortField(t *testing.T) {
	store, mock := newStoreWithMock(t)

	mock.ExpectQuery("SELECT (.+) FROM restaurants ORDER BY created_at DESC").
		WillReturnRows(sqlmock.NewRows(restaurantRowColumns))

	_, err := store.ListRestaurants("-rating; DROP TABLE restaurants")

	assert.NoError(t, err)
}

func TestFilterRestaurants(t *testing.T) {
	store, mock := newStoreWithMock(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT (.+) FROM restaurants WHERE featured = \$1 ORDER BY rating DESC LIMIT 6`).
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows(restaurantRowColumns).
			AddRow("r1", "Mario's", "", "italian", 4.8, "25-30 min", 2.99, true, true, "", now))

	restaurants, err := store.FilterRestaurants(map[string]interface{}{"featured": true}, "-rating", 6)

	assert.NoError(t, err)
	require.Len(t, restaurants, 1)
	assert.True(t, restaurants[0].Featured)
}

func TestFilterRestaurantsDropsUnknownFields(t *testing.T) {
	store, mock := newStoreWithMock(t)

	mock.ExpectQuery("SELECT (.+) FROM restaurants ORDER BY created_at DESC").
		WillReturnRows(sqlmock.NewRows(restaurantRowColumns))

	_, err := store.FilterRestaurants(map[string]interface{}{"owner_password": "x"}, "", 0)

	assert.NoError(t, err)
}

func TestGetMenuItemScansIngredients(t *testing.T) {
	store, mock := newStoreWithMock(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT (.+) FROM menu_items WHERE id = \$1 AND restaurant_id = \$2`).
		WithArgs("m1", "r1").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "restaurant_id", "name", "description", "category", "price",
			"is_vegetarian", "is_spicy", "is_popular", "ingredients", "prep_time", "image_url", "created_at",
		}).AddRow("m1", "r1", "Margherita", "Classic", "pizza", 8.50,
			true, false, true, "{tomato,mozzarella,basil}", "15 min", "", now))

	item, err := store.GetMenuItem("r1", "m1")

	assert.NoError(t, err)
	assert.Equal(t, "Margherita", item.Name)
	assert.Equal(t, []string{"tomato", "mozzarella", "basil"}, item.Ingredients)
}

func TestCreateOrder(t *testing.T) {
	store, mock := newStoreWithMock(t)
	now := time.Now()

	order := &domain.Order{
		ID:             "o1",
		RestaurantID:   "r1",
		RestaurantName: "Mario's",
		Items: []domain.OrderItem{
			{Name: "Margherita", Price: 8.50, Quantity: 2},
			{Name: "Garlic Bread", Price: 3.25, Quantity: 1},
		},
		Subtotal:        20.25,
		DeliveryFee:     2.99,
		Status:          domain.StatusPending,
		DeliveryAddress: "1 Main St",
		PhoneNumber:     "555-0100",
		CreatedBy:       "jo@example.com",
	}

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO orders").
		WithArgs("o1", "r1", "Mario's", 20.25, 2.99, domain.StatusPending,
			"1 Main St", "555-0100", "", "", "jo@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(now))
	mock.ExpectExec("INSERT INTO order_items").
		WithArgs("o1", 0, "Margherita", 8.50, 2, "").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO order_items").
		WithArgs("o1", 1, "Garlic Bread", 3.25, 1, "").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := store.CreateOrder(order)

	assert.NoError(t, err)
	assert.Equal(t, now, order.CreatedAt)
}

func TestCreateOrderRollsBackOnItemFailure(t *testing.T) {
	store, mock := newStoreWithMock(t)

	order := &domain.Order{
		ID: "o1", RestaurantID: "r1", RestaurantName: "Mario's",
		Items:     []domain.OrderItem{{Name: "Margherita", Price: 8.50, Quantity: 1}},
		Status:    domain.StatusPending,
		CreatedBy: "jo@example.com",
	}

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO orders").
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now()))
	mock.ExpectExec("INSERT INTO order_items").
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err := store.CreateOrder(order)

	assert.Error(t, err)
}

func TestGetOrderLoadsItems(t *testing.T) {
	store, mock := newStoreWithMock(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT (.+) FROM orders WHERE id = \$1`).
		WithArgs("o1").
		WillReturnRows(sqlmock.NewRows(orderRowColumns).
			AddRow("o1", "r1", "Mario's", 20.25, 2.99, "preparing",
				"1 Main St", "555-0100", "25-30 min", "", "jo@example.com", now))
	mock.ExpectQuery(`SELECT (.+) FROM order_items WHERE order_id = \$1 ORDER BY position`).
		WithArgs("o1").
		WillReturnRows(sqlmock.NewRows([]string{"name", "price", "quantity", "special_instructions"}).
			AddRow("Margherita", 8.50, 2, "").
			AddRow("Garlic Bread", 3.25, 1, "no garlic"))

	order, err := store.GetOrder("o1")

	assert.NoError(t, err)
	assert.Equal(t, domain.StatusPreparing, order.Status)
	require.Len(t, order.Items, 2)
	assert.Equal(t, "no garlic", order.Items[1].SpecialInstructions)
}

func TestListUserOrdersAppliesLimit(t *testing.T) {
	store, mock := newStoreWithMock(t)

	mock.ExpectQuery(`SELECT (.+) FROM orders WHERE created_by = \$1 ORDER BY created_at DESC LIMIT 5`).
		WithArgs("jo@example.com").
		WillReturnRows(sqlmock.NewRows(orderRowColumns))

	orders, err := store.ListUserOrders("jo@example.com", "-created_at", 5)

	assert.NoError(t, err)
	assert.Empty(t, orders)
}

func TestUpdateOrderStatus(t *testing.T) {
	store, mock := newStoreWithMock(t)

	mock.ExpectExec(`UPDATE orders SET status = \$1 WHERE id = \$2`).
		WithArgs(domain.StatusConfirmed, "o1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	rows, err := store.UpdateOrderStatus("o1", domain.StatusConfirmed)

	assert.NoError(t, err)
	assert.Equal(t, int64(1), rows)
}

func TestUpdateOrderStatusMissingOrder(t *testing.T) {
	store, mock := newStoreWithMock(t)

	mock.ExpectExec(`UPDATE orders SET status = \$1 WHERE id = \$2`).
		WithArgs(domain.StatusConfirmed, "o9").
		WillReturnResult(sqlmock.NewResult(0, 0))

	rows, err := store.UpdateOrderStatus("o9", domain.StatusConfirmed)

	assert.NoError(t, err)
	assert.Zero(t, rows)
}

func TestGetUserByEmail(t *testing.T) {
	store, mock := newStoreWithMock(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT (.+) FROM users WHERE email = \$1`).
		WithArgs("jo@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "full_name", "phone", "address", "created_at"}).
			AddRow("u1", "jo@example.com", "Jo Bloggs", "555-0100", "1 Main St", now))

	user, err := store.GetUserByEmail("jo@example.com")

	assert.NoError(t, err)
	assert.Equal(t, "Jo Bloggs", user.FullName)
}

func TestUpdateUser(t *testing.T) {
	store, mock := newStoreWithMock(t)
	now := time.Now()

	user := &domain.User{
		Email:    "jo@example.com",
		FullName: "Jo Bloggs",
		Phone:    "555-0100",
		Address:  "2 South St",
	}

	mock.ExpectQuery("UPDATE users SET full_name").
		WithArgs("Jo Bloggs", "555-0100", "2 South St", "jo@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow("u1", now))

	err := store.UpdateUser(user)

	assert.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
}
