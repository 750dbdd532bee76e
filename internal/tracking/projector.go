// Package tracking projects an order's status onto the fixed delivery
// stage sequence for progress display.
package tracking

import "foodie-express/internal/domain"

type StageState string

const (
	StateDone    StageState = "done"
	StateCurrent StageState = "current"
	StatePending StageState = "pending"
)

type Stage struct {
	Key         domain.OrderStatus `json:"key"`
	Label       string             `json:"label"`
	Description string             `json:"description"`
}

type StageView struct {
	Stage
	State StageState `json:"state"`
}

// Stages is the linear delivery sequence. Cancelled is intentionally
// absent; a cancelled order renders outside the progress track.
var Stages = []Stage{
	{Key: domain.StatusPending, Label: "Order Placed", Description: "Your order has been received"},
	{Key: domain.StatusConfirmed, Label: "Order Confirmed", Description: "Restaurant is preparing your order"},
	{Key: domain.StatusPreparing, Label: "Preparing", Description: "Your food is being prepared"},
	{Key: domain.StatusReady, Label: "Ready for Pickup", Description: "Order is ready for delivery"},
	{Key: domain.StatusOutForDelivery, Label: "Out for Delivery", Description: "Your order is on its way"},
	{Key: domain.StatusDelivered, Label: "Delivered", Description: "Order has been delivered"},
}

// Project marks each stage as done, current, or pending relative to the
// current status. A status outside the sequence (cancelled, or anything
// unknown) leaves every stage pending.
func Project(current domain.OrderStatus, stages []Stage) []StageView {
	currentIndex := -1
	for i, stage := range stages {
		if stage.Key == current {
			currentIndex = i
			break
		}
	}

	views := make([]StageView, len(stages))
	for i, stage := range stages {
		state := StatePending
		switch {
		case currentIndex < 0:
		case i < currentIndex:
			state = StateDone
		case i == currentIndex:
			state = StateCurrent
		}
		views[i] = StageView{Stage: stage, State: state}
	}
	return views
}
