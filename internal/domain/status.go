package domain

// OrderStatus is the closed set of order states. The first six form the
// linear delivery sequence; cancelled sits outside it and is terminal.
type OrderStatus string

const (
	StatusPending        OrderStatus = "pending"
	StatusConfirmed      OrderStatus = "confirmed"
	StatusPreparing      OrderStatus = "preparing"
	StatusReady          OrderStatus = "ready"
	StatusOutForDelivery OrderStatus = "out_for_delivery"
	StatusDelivered      OrderStatus = "delivered"
	StatusCancelled      OrderStatus = "cancelled"
)

var orderStatuses = map[OrderStatus]bool{
	StatusPending:        true,
	StatusConfirmed:      true,
	StatusPreparing:      true,
	StatusReady:          true,
	StatusOutForDelivery: true,
	StatusDelivered:      true,
	StatusCancelled:      true,
}

func (s OrderStatus) IsValid() bool {
	return orderStatuses[s]
}

func (s OrderStatus) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// CanCancel reports whether an order in this status may still be cancelled.
// Cancellation is reachable from any non-terminal status.
func (s OrderStatus) CanCancel() bool {
	return s.IsValid() && !s.IsTerminal()
}

// CuisineType is the closed set of cuisine categories a restaurant can
// belong to.
type CuisineType string

const (
	CuisineItalian  CuisineType = "italian"
	CuisineChinese  CuisineType = "chinese"
	CuisineIndian   CuisineType = "indian"
	CuisineMexican  CuisineType = "mexican"
	CuisineJapanese CuisineType = "japanese"
	CuisineThai     CuisineType = "thai"
	CuisineFastFood CuisineType = "fast_food"
	CuisineDesserts CuisineType = "desserts"
)

// Cuisines returns all cuisine categories in display order.
func Cuisines() []CuisineType {
	return []CuisineType{
		CuisineItalian,
		CuisineChinese,
		CuisineIndian,
		CuisineMexican,
		CuisineJapanese,
		CuisineThai,
		CuisineFastFood,
		CuisineDesserts,
	}
}

func (c CuisineType) IsValid() bool {
	for _, known := range Cuisines() {
		if c == known {
			return true
		}
	}
	return false
}

// Defaults shown when a restaurant record leaves these fields empty.
const (
	DefaultRating       = 4.5
	DefaultDeliveryFee  = 2.99
	DefaultDeliveryTime = "25-30 min"
)
