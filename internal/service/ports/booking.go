package ports

import (
	"context"
	"time"

	"github.com/07-Dili/Bike-RentalBooking-System/internal/domain"
)

type BookingRepo interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)

	// HasPaidOverlap reports whether a paid booking for the bike overlaps
	// the window.
	HasPaidOverlap(ctx context.Context, bikeID string, w domain.Window) (bool, error)

	// ConfirmPaid moves a pending booking to paid, setting cost and payment
	// ref, as a single conditional write: it fails with ErrSlotConflict when
	// another paid booking overlaps the window at commit time.
	ConfirmPaid(ctx context.Context, id string, cost int64, paymentRef string) error

	SetStatus(ctx context.Context, id string, status domain.BookingStatus) error
	FailStale(ctx context.Context, olderThan time.Duration) ([]*domain.Booking, error)

	ListByHolder(ctx context.Context, holderID string) ([]*domain.Booking, error)
	ListAll(ctx context.Context) ([]*domain.Booking, error)

	// PaidBikeIDs returns ids of bikes that have a paid booking overlapping
	// the window.
	PaidBikeIDs(ctx context.Context, w domain.Window) ([]string, error)
}
