// Package catalog filters and orders the restaurant list shown to a
// customer browsing the catalog.
package catalog

import (
	"sort"
	"strings"

	"foodie-express/internal/domain"
)

// CuisineAll disables the cuisine filter.
const CuisineAll = "all"

// Sort keys accepted by Apply. Any other value leaves the filtered order
// untouched.
const (
	SortByRating       = "rating"
	SortByDeliveryTime = "delivery_time"
	SortByDeliveryFee  = "delivery_fee"
)

// defaultLeadMinutes is used when a delivery-time text has no parsable
// leading number.
const defaultLeadMinutes = 30

type FilterSpec struct {
	Query   string `json:"query"`
	Cuisine string `json:"cuisine"`
	SortKey string `json:"sort_key"`
}

// Apply returns the ordered subset of restaurants visible under spec. It
// never mutates its input and keeps the relative order of restaurants with
// equal sort keys.
func Apply(restaurants []domain.Restaurant, spec FilterSpec) []domain.Restaurant {
	filtered := make([]domain.Restaurant, 0, len(restaurants))
	query := strings.ToLower(strings.TrimSpace(spec.Query))

	for _, r := range restaurants {
		if query != "" && !matchesQuery(r, query) {
			continue
		}
		if spec.Cuisine != "" && spec.Cuisine != CuisineAll && string(r.CuisineType) != spec.Cuisine {
			continue
		}
		filtered = append(filtered, r)
	}

	switch spec.SortKey {
	case SortByRating:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Rating > filtered[j].Rating
		})
	case SortByDeliveryTime:
		sort.SliceStable(filtered, func(i, j int) bool {
			return ParseLeadMinutes(filtered[i].DeliveryTime) < ParseLeadMinutes(filtered[j].DeliveryTime)
		})
	case SortByDeliveryFee:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].DeliveryFee < filtered[j].DeliveryFee
		})
	}

	return filtered
}

func matchesQuery(r domain.Restaurant, query string) bool {
	return strings.Contains(strings.ToLower(r.Name), query) ||
		strings.Contains(strings.ToLower(string(r.CuisineType)), query) ||
		strings.Contains(strings.ToLower(r.Description), query)
}

// ParseLeadMinutes extracts the leading number of a delivery-time text such
// as "25-30 min". Missing or unparsable text falls back to 30.
func ParseLeadMinutes(text string) int {
	lead, _, _ := strings.Cut(text, "-")
	lead = strings.TrimSpace(lead)

	minutes := 0
	seen := false
	for _, c := range lead {
		if c < '0' || c > '9' {
			break
		}
		minutes = minutes*10 + int(c-'0')
		seen = true
	}
	if !seen {
		return defaultLeadMinutes
	}
	return minutes
}
