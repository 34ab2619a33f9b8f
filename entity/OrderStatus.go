package entity

type OrderStatus string

const (
	OrderPending   OrderStatus = "Pending"
	OrderReady     OrderStatus = "Ready"
	OrderConfirmed OrderStatus = "Confirmed"
	OrderApproved  OrderStatus = "Approved"
	OrderDeclined  OrderStatus = "Declined"
)

var OrderStatuses = []OrderStatus{OrderPending, OrderReady, OrderConfirmed, OrderApproved, OrderDeclined}

// ParseOrderStatus accepts only the exact enum spelling.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	for _, st := range OrderStatuses {
		if string(st) == s {
			return st, true
		}
	}
	return "", false
}

type PickupSlot string

const (
	PickupMorning   PickupSlot = "Morning"
	PickupAfternoon PickupSlot = "Afternoon"
)

func (p PickupSlot) Valid() bool {
	return p == PickupMorning || p == PickupAfternoon
}
