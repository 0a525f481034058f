package dto

import (
	"time"

	"github.com/07-Dili/Bike-RentalBooking-System/internal/domain"
)

type BikeResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	RatePerHour int64  `json:"rate_per_hour"`
	ImageURL    string `json:"image_url"`
	CreatedAt   string `json:"created_at"`
}

type BikeAvailabilityResponse struct {
	BikeResponse
	Available bool `json:"available"`
}

type BookingResponse struct {
	ID         string  `json:"id"`
	BikeID     string  `json:"bike_id"`
	HolderID   string  `json:"holder_id"`
	From       string  `json:"from"`
	To         string  `json:"to"`
	Cost       int64   `json:"cost"`
	PaymentRef *string `json:"payment_ref,omitempty"`
	Status     string  `json:"status"`
	CreatedAt  string  `json:"created_at"`
}

type UserResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Role           string `json:"role"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
	CreatedAt      string `json:"created_at"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type OrderResponse struct {
	OrderID  string `json:"order_id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

type VerifyPaymentResponse struct {
	Status     string `json:"status"`
	PaymentRef string `json:"payment_ref"`
	Cost       int64  `json:"cost"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToBikeResponse(b *domain.Bike) BikeResponse {
	return BikeResponse{
		ID:          b.ID,
		Name:        b.Name,
		Type:        string(b.Type),
		RatePerHour: b.RatePerHour,
		ImageURL:    b.ImageURL,
		CreatedAt:   b.CreatedAt.Format(time.RFC3339),
	}
}

func ToBikeAvailabilityResponse(a domain.BikeAvailability) BikeAvailabilityResponse {
	return BikeAvailabilityResponse{
		BikeResponse: ToBikeResponse(&a.Bike),
		Available:    a.Available,
	}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:         b.ID,
		BikeID:     b.BikeID,
		HolderID:   b.HolderID,
		From:       b.Window.From.Format(time.RFC3339),
		To:         b.Window.To.Format(time.RFC3339),
		Cost:       b.Cost,
		PaymentRef: b.PaymentRef,
		Status:     string(b.Status),
		CreatedAt:  b.CreatedAt.Format(time.RFC3339),
	}
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		Role:           string(u.Role),
		TelegramChatID: u.TelegramChatID,
		CreatedAt:      u.CreatedAt.Format(time.RFC3339),
	}
}
