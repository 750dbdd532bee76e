package tests

import (
	"errors"
	"testing"

	"foodie-express/internal/domain"
	"foodie-express/internal/mocks"
	"foodie-express/internal/service"

	"github.com/stretchr/testify/assert"
)

func TestProfileService_Me(t *testing.T) {
	users := mocks.NewUserRepository(t)
	orders := mocks.NewOrderRepository(t)
	svc := service.NewProfileService(users, orders)

	users.On("GetUserByEmail", "jo@example.com").Return(&domain.User{
		Email: "jo@example.com", FullName: "Jo Bloggs",
	}, nil).Once()

	user, err := svc.Me("jo@example.com")

	assert.NoError(t, err)
	assert.Equal(t, "Jo Bloggs", user.FullName)
}

func TestProfileService_Update(t *testing.T) {
	users := mocks.NewUserRepository(t)
	orders := mocks.NewOrderRepository(t)
	svc := service.NewProfileService(users, orders)

	users.On("UpdateUser", &domain.User{
		Email:    "jo@example.com",
		FullName: "Jo Bloggs",
		Phone:    "555-0100",
		Address:  "1 Main St",
	}).Return(nil).Once()

	user, err := svc.Update("jo@example.com", service.ProfileUpdate{
		FullName: "Jo Bloggs",
		Phone:    "555-0100",
		Address:  "1 Main St",
	})

	assert.NoError(t, err)
	assert.Equal(t, "jo@example.com", user.Email)
	assert.Equal(t, "1 Main St", user.Address)
}

func TestProfileService_Stats(t *testing.T) {
	users := mocks.NewUserRepository(t)
	orders := mocks.NewOrderRepository(t)
	svc := service.NewProfileService(users, orders)

	orders.On("ListUserOrders", "jo@example.com", "-created_at", 0).Return([]domain.Order{
		{Subtotal: 20.25, DeliveryFee: 2.99},
		{Subtotal: 12.00, DeliveryFee: 1.50},
	}, nil).Once()

	stats, err := svc.Stats("jo@example.com")

	assert.NoError(t, err)
	assert.Equal(t, 2, stats.Count)
	assert.InDelta(t, 36.74, stats.TotalSpent, 1e-9)
	assert.InDelta(t, 18.37, stats.AverageOrderValue, 1e-9)
}

func TestProfileService_StatsEmptyHistory(t *testing.T) {
	users := mocks.NewUserRepository(t)
	orders := mocks.NewOrderRepository(t)
	svc := service.NewProfileService(users, orders)

	orders.On("ListUserOrders", "new@example.com", "-created_at", 0).Return(nil, nil).Once()

	stats, err := svc.Stats("new@example.com")

	assert.NoError(t, err)
	assert.Zero(t, stats.Count)
	assert.Zero(t, stats.AverageOrderValue)
}

func TestProfileService_Recent(t *testing.T) {
	users := mocks.NewUserRepository(t)
	orders := mocks.NewOrderRepository(t)
	svc := service.NewProfileService(users, orders)

	orders.On("ListUserOrders", "jo@example.com", "-created_at", 5).Return([]domain.Order{
		{ID: "o2"}, {ID: "o1"},
	}, nil).Once()

	recent, err := svc.Recent("jo@example.com")

	assert.NoError(t, err)
	assert.Len(t, recent, 2)
	assert.Equal(t, "o2", recent[0].ID)
}

func TestProfileService_RecentRepoError(t *testing.T) {
	users := mocks.NewUserRepository(t)
	orders := mocks.NewOrderRepository(t)
	svc := service.NewProfileService(users, orders)

	orders.On("ListUserOrders", "jo@example.com", "-created_at", 5).
		Return(nil, errors.New("connection refused")).Once()

	_, err := svc.Recent("jo@example.com")

	assert.Error(t, err)
}
