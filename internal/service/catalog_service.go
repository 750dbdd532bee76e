package service

import (
	"context"
	"errors"
	"log"

	"foodie-express/internal/catalog"
	"foodie-express/internal/domain"
)

const featuredLimit = 6

var ErrInvalidRestaurant = errors.New("restaurant needs a name and a known cuisine")

// CatalogService serves the restaurant listing pages. Reads go through the
// Redis cache when it is warm and fall back to Postgres.
type CatalogService struct {
	repo  RestaurantRepository
	cache CatalogCache
}

func NewCatalogService(repo RestaurantRepository, cache CatalogCache) *CatalogService {
	return &CatalogService{repo: repo, cache: cache}
}

// Browse loads the catalog and applies the customer's filter spec.
func (s *CatalogService) Browse(ctx context.Context, spec catalog.FilterSpec) ([]domain.Restaurant, error) {
	restaurants, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.Apply(restaurants, spec), nil
}

// Featured returns the restaurants promoted on the home page, best rated
// first.
func (s *CatalogService) Featured(ctx context.Context) ([]domain.Restaurant, error) {
	return s.repo.FilterRestaurants(map[string]interface{}{"featured": true}, "-rating", featuredLimit)
}

func (s *CatalogService) Get(id string) (*domain.Restaurant, error) {
	return s.repo.GetRestaurant(id)
}

// Create stores a new restaurant and drops the cached listing so the next
// browse sees it.
func (s *CatalogService) Create(ctx context.Context, r *domain.Restaurant) error {
	if r.Name == "" || !r.CuisineType.IsValid() {
		return ErrInvalidRestaurant
	}
	if err := s.repo.CreateRestaurant(r); err != nil {
		return err
	}
	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			log.Printf("[catalog] cache invalidate failed: %v", err)
		}
	}
	return nil
}

func (s *CatalogService) Cuisines() []domain.CuisineType {
	return domain.Cuisines()
}

func (s *CatalogService) load(ctx context.Context) ([]domain.Restaurant, error) {
	if s.cache != nil {
		if restaurants, ok := s.cache.GetRestaurants(ctx); ok {
			return restaurants, nil
		}
	}
	restaurants, err := s.repo.ListRestaurants("-rating")
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.SetRestaurants(ctx, restaurants); err != nil {
			log.Printf("[catalog] cache write failed: %v", err)
		}
	}
	return restaurants, nil
}

var _ CatalogServiceInterface = (*CatalogService)(nil)
