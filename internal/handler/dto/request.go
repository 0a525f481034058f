package dto

type RegisterRequest struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required,min=8"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type CreateBikeRequest struct {
	Name        string `json:"name" binding:"required"`
	Type        string `json:"type" binding:"required"`
	RatePerHour int64  `json:"rate_per_hour" binding:"required,gt=0"`
	ImageURL    string `json:"image_url" binding:"required,url"`
}

type CreateBookingRequest struct {
	BikeID string `json:"bike_id" binding:"required,uuid"`
	From   string `json:"from" binding:"required"`
	To     string `json:"to" binding:"required"`
}

type CreateOrderRequest struct {
	BookingID string `json:"booking_id" binding:"required,uuid"`
}

// VerifyPaymentRequest deliberately leaves order_id/payment_id/signature
// unbound: their absence must surface as a distinct payment error, not a
// generic binding failure.
type VerifyPaymentRequest struct {
	OrderID   string `json:"order_id"`
	PaymentID string `json:"payment_id"`
	Signature string `json:"signature"`
	BookingID string `json:"booking_id" binding:"required,uuid"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
