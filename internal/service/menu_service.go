package service

import (
	"errors"

	"foodie-express/internal/domain"
)

// CategoryAll disables the category filter on a menu.
const CategoryAll = "all"

var ErrInvalidMenuItem = errors.New("menu item needs a name and a positive price")

type MenuService struct {
	repo MenuRepository
}

func NewMenuService(repo MenuRepository) *MenuService {
	return &MenuService{repo: repo}
}

// Menu returns a restaurant's items narrowed by the filter. Categories are
// restaurant-defined free text, so no closed-set check applies here.
func (s *MenuService) Menu(restaurantID string, filter MenuFilter) ([]domain.MenuItem, error) {
	items, err := s.repo.ListMenuItems(restaurantID)
	if err != nil {
		return nil, err
	}
	filtered := make([]domain.MenuItem, 0, len(items))
	for _, item := range items {
		if !matchesMenuFilter(item, filter) {
			continue
		}
		filtered = append(filtered, item)
	}
	return filtered, nil
}

func matchesMenuFilter(item domain.MenuItem, filter MenuFilter) bool {
	if filter.Category != "" && filter.Category != CategoryAll && item.Category != filter.Category {
		return false
	}
	if filter.Vegetarian && !item.IsVegetarian {
		return false
	}
	if filter.Spicy && !item.IsSpicy {
		return false
	}
	if filter.Popular && !item.IsPopular {
		return false
	}
	return true
}

// Categories lists the distinct category labels of a menu in order of
// first appearance.
func (s *MenuService) Categories(restaurantID string) ([]string, error) {
	items, err := s.repo.ListMenuItems(restaurantID)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	var categories []string
	for _, item := range items {
		if item.Category == "" || seen[item.Category] {
			continue
		}
		seen[item.Category] = true
		categories = append(categories, item.Category)
	}
	return categories, nil
}

func (s *MenuService) Get(restaurantID, itemID string) (*domain.MenuItem, error) {
	return s.repo.GetMenuItem(restaurantID, itemID)
}

func (s *MenuService) Create(item *domain.MenuItem) error {
	if item.Name == "" || item.Price <= 0 {
		return ErrInvalidMenuItem
	}
	return s.repo.CreateMenuItem(item)
}

var _ MenuServiceInterface = (*MenuService)(nil)
