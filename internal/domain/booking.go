package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusPaid      BookingStatus = "paid"
	BookingStatusFailed    BookingStatus = "failed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

// AdminStatuses are the statuses an administrator may set directly.
var AdminStatuses = []BookingStatus{
	BookingStatusPaid,
	BookingStatusCancelled,
	BookingStatusCompleted,
	BookingStatusFailed,
}

func (s BookingStatus) AdminSettable() bool {
	for _, v := range AdminStatuses {
		if s == v {
			return true
		}
	}
	return false
}

type Booking struct {
	ID         string        `json:"id"`
	BikeID     string        `json:"bike_id"`
	HolderID   string        `json:"holder_id"`
	Window     Window        `json:"window"`
	Cost       int64         `json:"cost"`
	PaymentRef *string       `json:"payment_ref,omitempty"`
	Status     BookingStatus `json:"status"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}
