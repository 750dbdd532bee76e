// Package pricing derives payable totals and spending statistics from
// orders.
package pricing

import "foodie-express/internal/domain"

// Stats summarizes a customer's order history.
type Stats struct {
	Count             int     `json:"count"`
	TotalSpent        float64 `json:"total_spent"`
	AverageOrderValue float64 `json:"average_order_value"`
}

// OrderTotal is the final payable amount: subtotal plus delivery fee.
func OrderTotal(o domain.Order) float64 {
	return o.Subtotal + o.DeliveryFee
}

// Aggregate folds order totals into count, sum, and average. An empty
// input yields all zeros rather than dividing by zero.
func Aggregate(orders []domain.Order) Stats {
	stats := Stats{Count: len(orders)}
	for _, o := range orders {
		stats.TotalSpent += OrderTotal(o)
	}
	if stats.Count > 0 {
		stats.AverageOrderValue = stats.TotalSpent / float64(stats.Count)
	}
	return stats
}
