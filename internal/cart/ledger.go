// Package cart maintains the line items a customer assembles while
// browsing one restaurant's menu.
package cart

import (
	"errors"

	"foodie-express/internal/domain"
)

// ErrInvalidQuantity is returned when a mutating call is given a quantity
// outside the allowed range.
var ErrInvalidQuantity = errors.New("quantity must be a positive integer")

// Ledger is an ordered mapping from menu-item id to cart line. At most one
// line exists per item; lines keep their insertion order. A Ledger lives
// for one browsing session and is not safe for concurrent use.
type Ledger struct {
	lines map[string]*domain.CartLine
	order []string
}

func NewLedger() *Ledger {
	return &Ledger{lines: make(map[string]*domain.CartLine)}
}

// Add inserts a line for item with the given quantity, or increments the
// existing line. Quantity must be >= 1.
func (l *Ledger) Add(item domain.MenuItem, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	if line, ok := l.lines[item.ID]; ok {
		line.Quantity += quantity
		return nil
	}
	l.lines[item.ID] = &domain.CartLine{Item: item, Quantity: quantity}
	l.order = append(l.order, item.ID)
	return nil
}

// SetQuantity sets the line for itemID to exactly quantity. Zero removes
// the line. A negative quantity returns ErrInvalidQuantity. When itemID is
// not in the ledger the call is a no-op and the boolean result is false.
func (l *Ledger) SetQuantity(itemID string, quantity int) (bool, error) {
	if quantity < 0 {
		return false, ErrInvalidQuantity
	}
	line, ok := l.lines[itemID]
	if !ok {
		return false, nil
	}
	if quantity == 0 {
		delete(l.lines, itemID)
		for i, id := range l.order {
			if id == itemID {
				l.order = append(l.order[:i], l.order[i+1:]...)
				break
			}
		}
		return true, nil
	}
	line.Quantity = quantity
	return true, nil
}

// Lines returns the cart lines in insertion order.
func (l *Ledger) Lines() []domain.CartLine {
	lines := make([]domain.CartLine, 0, len(l.order))
	for _, id := range l.order {
		lines = append(lines, *l.lines[id])
	}
	return lines
}

// LineTotal is the payable amount for one line.
func LineTotal(line domain.CartLine) float64 {
	return line.Item.Price * float64(line.Quantity)
}

// Subtotal sums the line totals. An empty ledger yields 0.
func (l *Ledger) Subtotal() float64 {
	var total float64
	for _, line := range l.lines {
		total += LineTotal(*line)
	}
	return total
}

// ItemCount sums the quantities across all lines, for the cart badge.
func (l *Ledger) ItemCount() int {
	var count int
	for _, line := range l.lines {
		count += line.Quantity
	}
	return count
}

// Len is the number of distinct items in the ledger.
func (l *Ledger) Len() int {
	return len(l.lines)
}

// Reset empties the ledger, e.g. when the customer moves to a different
// restaurant.
func (l *Ledger) Reset() {
	l.lines = make(map[string]*domain.CartLine)
	l.order = nil
}
