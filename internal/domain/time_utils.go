package domain

import "time"

// OnlyDate formats the estimated delivery day
const OnlyDate = "2006-01-02"

// DefaultDeliveryDays is the shipping estimate used when none is configured
const DefaultDeliveryDays = 4

// EstimatedDelivery returns the calendar day an order placed at createdAt is expected to arrive
func EstimatedDelivery(createdAt time.Time, days int) time.Time {
	if days <= 0 {
		days = DefaultDeliveryDays
	}
	y, m, d := createdAt.AddDate(0, 0, days).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, createdAt.Location())
}
