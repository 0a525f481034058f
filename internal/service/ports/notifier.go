package ports

import (
	"context"

	"github.com/07-Dili/Bike-RentalBooking-System/internal/domain"
)

type BookingNotifier interface {
	NotifyBookingCreated(ctx context.Context, user *domain.User, bike *domain.Bike, booking *domain.Booking)
	NotifyBookingPaid(ctx context.Context, user *domain.User, bike *domain.Bike, booking *domain.Booking)
	NotifyBookingFailed(ctx context.Context, user *domain.User, bike *domain.Bike, booking *domain.Booking)
}
