// Package orders derives what the member order page shows from what the hotel
// service returned: the active orders, the upcoming stay and the visible slice
// of order history.
package orders

import (
	"time"

	"github.com/ibeloyar/hotelportal/internal/model"
)

const DefaultPageSize = 5

// FilterActive keeps orders with status 0, in the order the service returned them.
func FilterActive(orders []model.Order) []model.Order {
	active := make([]model.Order, 0, len(orders))
	for _, order := range orders {
		if order.Status == model.OrderStatusActive {
			active = append(active, order)
		}
	}

	return active
}

// SelectUpcoming returns the order with the nearest check-in strictly after now.
// Ties keep the earliest order in the input. Nil when nothing is in the future.
func SelectUpcoming(orders []model.Order, now time.Time) *model.Order {
	var closest *model.Order
	var closestDiff time.Duration

	for i := range orders {
		if orders[i].Status != model.OrderStatusActive || !orders[i].CheckInDate.After(now) {
			continue
		}

		diff := orders[i].CheckInDate.Sub(now)
		if closest == nil || diff < closestDiff {
			closest = &orders[i]
			closestDiff = diff
		}
	}

	if closest == nil {
		return nil
	}

	upcoming := *closest
	return &upcoming
}

// ExpandVisibleWindow grows the number of history rows by step, capped at total.
// Once current covers total it is returned unchanged.
func ExpandVisibleWindow(current, total, step int) int {
	if step <= 0 {
		step = DefaultPageSize
	}

	if current >= total {
		return current
	}

	next := current + step
	if next > total {
		next = total
	}

	return next
}
