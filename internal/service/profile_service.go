package service

import (
	"foodie-express/internal/domain"
	"foodie-express/internal/pricing"
)

const recentOrdersLimit = 5

type ProfileService struct {
	users  UserRepository
	orders OrderRepository
}

func NewProfileService(users UserRepository, orders OrderRepository) *ProfileService {
	return &ProfileService{users: users, orders: orders}
}

func (s *ProfileService) Me(email string) (*domain.User, error) {
	return s.users.GetUserByEmail(email)
}

func (s *ProfileService) Update(email string, update ProfileUpdate) (*domain.User, error) {
	user := &domain.User{
		Email:    email,
		FullName: update.FullName,
		Phone:    update.Phone,
		Address:  update.Address,
	}
	if err := s.users.UpdateUser(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Stats aggregates the customer's full order history.
func (s *ProfileService) Stats(email string) (pricing.Stats, error) {
	orders, err := s.orders.ListUserOrders(email, "-created_at", 0)
	if err != nil {
		return pricing.Stats{}, err
	}
	return pricing.Aggregate(orders), nil
}

// Recent returns the customer's latest orders for the profile page.
func (s *ProfileService) Recent(email string) ([]domain.Order, error) {
	return s.orders.ListUserOrders(email, "-created_at", recentOrdersLimit)
}

var _ ProfileServiceInterface = (*ProfileService)(nil)
