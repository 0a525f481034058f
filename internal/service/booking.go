package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/07-Dili/Bike-RentalBooking-System/internal/domain"
	"github.com/07-Dili/Bike-RentalBooking-System/internal/service/ports"
)

type BookingService struct {
	bookingRepo ports.BookingRepo
	bikeRepo    ports.BikeRepo
	userRepo    ports.UserRepo
	notifier    ports.BookingNotifier
	pendingTTL  time.Duration
	logger      logger.Logger
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	bikeRepo ports.BikeRepo,
	userRepo ports.UserRepo,
	notifier ports.BookingNotifier,
	pendingTTL time.Duration,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		bikeRepo:    bikeRepo,
		userRepo:    userRepo,
		notifier:    notifier,
		pendingTTL:  pendingTTL,
		logger:      logger,
	}
}

// Book creates a pending reservation for the bike after an optimistic
// conflict check against paid bookings. Pending bookings do not block each
// other: the first holder to complete payment wins the slot.
func (s *BookingService) Book(ctx context.Context, holderID, bikeID string, from, to time.Time) (*domain.Booking, error) {
	window, err := domain.NewWindow(from, to)
	if err != nil {
		return nil, err
	}

	bike, err := s.bikeRepo.GetByID(ctx, bikeID)
	if err != nil {
		return nil, fmt.Errorf("check bike: %w", err)
	}

	user, err := s.userRepo.GetByID(ctx, holderID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}

	taken, err := s.bookingRepo.HasPaidOverlap(ctx, bikeID, window)
	if err != nil {
		return nil, fmt.Errorf("conflict check: %w", err)
	}
	if taken {
		return nil, domain.ErrSlotConflict
	}

	booking := &domain.Booking{
		ID:        uuid.New().String(),
		BikeID:    bikeID,
		HolderID:  holderID,
		Window:    window,
		Cost:      0,
		Status:    domain.BookingStatusPending,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	if err = s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("bike_id", bikeID),
		logger.String("holder_id", holderID),
	)

	go s.notifier.NotifyBookingCreated(context.WithoutCancel(ctx), user, bike, booking)

	return booking, nil
}

// Quote returns the cost the holder will be charged for a pending booking.
func (s *BookingService) Quote(ctx context.Context, bookingID, holderID string) (int64, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return 0, fmt.Errorf("get booking: %w", err)
	}

	if booking.HolderID != holderID {
		return 0, domain.ErrForbidden
	}
	if booking.Status != domain.BookingStatusPending {
		return 0, domain.ErrNotPending
	}

	bike, err := s.bikeRepo.GetByID(ctx, booking.BikeID)
	if err != nil {
		return 0, fmt.Errorf("get bike: %w", err)
	}

	return bike.RatePerHour * booking.Window.Hours(), nil
}

// Confirm commits a pending booking to paid on behalf of its holder. The
// overlap re-check and the status write happen in one conditional store
// operation, so two holders paying for overlapping slots cannot both win.
// Re-confirming an already paid booking with the same payment ref is a no-op.
func (s *BookingService) Confirm(ctx context.Context, bookingID, holderID, paymentRef string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	if booking.HolderID != holderID {
		return nil, domain.ErrForbidden
	}

	if booking.Status == domain.BookingStatusPaid {
		if booking.PaymentRef != nil && *booking.PaymentRef == paymentRef {
			return booking, nil
		}
		return nil, domain.ErrNotPending
	}
	if booking.Status != domain.BookingStatusPending {
		return nil, domain.ErrNotPending
	}

	bike, err := s.bikeRepo.GetByID(ctx, booking.BikeID)
	if err != nil {
		return nil, fmt.Errorf("get bike: %w", err)
	}
	cost := bike.RatePerHour * booking.Window.Hours()

	if err = s.bookingRepo.ConfirmPaid(ctx, bookingID, cost, paymentRef); err != nil {
		return nil, fmt.Errorf("confirm booking: %w", err)
	}

	booking.Status = domain.BookingStatusPaid
	booking.Cost = cost
	booking.PaymentRef = &paymentRef
	booking.UpdatedAt = time.Now().UTC()

	s.logger.Info("booking paid",
		logger.String("booking_id", booking.ID),
		logger.String("bike_id", booking.BikeID),
		logger.String("holder_id", holderID),
		logger.Int64("cost", cost),
	)

	user, err := s.userRepo.GetByID(ctx, holderID)
	if err != nil {
		s.logger.Error("failed to get user for notification",
			logger.String("holder_id", holderID),
			logger.String("error", err.Error()),
		)
		return booking, nil
	}

	go s.notifier.NotifyBookingPaid(context.WithoutCancel(ctx), user, bike, booking)

	return booking, nil
}

// SetStatus is the administrative override. Bookings are never deleted, only
// archived via status.
func (s *BookingService) SetStatus(ctx context.Context, bookingID string, status domain.BookingStatus) (*domain.Booking, error) {
	if !status.AdminSettable() {
		return nil, domain.ErrInvalidStatus
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	if err = s.bookingRepo.SetStatus(ctx, bookingID, status); err != nil {
		return nil, fmt.Errorf("set status: %w", err)
	}
	booking.Status = status
	booking.UpdatedAt = time.Now().UTC()

	s.logger.Info("booking status overridden",
		logger.String("booking_id", bookingID),
		logger.String("status", string(status)),
	)

	return booking, nil
}

// FailStale sweeps pending bookings older than the pending TTL into failed.
func (s *BookingService) FailStale(ctx context.Context) ([]*domain.Booking, error) {
	failed, err := s.bookingRepo.FailStale(ctx, s.pendingTTL)
	if err != nil {
		return nil, fmt.Errorf("fail stale: %w", err)
	}

	if len(failed) > 0 {
		s.logger.Info("stale pending bookings failed",
			logger.Int("count", len(failed)),
		)

		go s.notifyFailed(context.WithoutCancel(ctx), failed)
	}

	return failed, nil
}

func (s *BookingService) notifyFailed(ctx context.Context, bookings []*domain.Booking) {
	for _, b := range bookings {
		user, err := s.userRepo.GetByID(ctx, b.HolderID)
		if err != nil {
			s.logger.Error("failed to get user for fail notification",
				logger.String("holder_id", b.HolderID),
			)
			continue
		}

		bike, err := s.bikeRepo.GetByID(ctx, b.BikeID)
		if err != nil {
			s.logger.Error("failed to get bike for fail notification",
				logger.String("bike_id", b.BikeID),
			)
			continue
		}

		s.notifier.NotifyBookingFailed(ctx, user, bike, b)
	}
}

func (s *BookingService) ListByHolder(ctx context.Context, holderID string) ([]*domain.Booking, error) {
	return s.bookingRepo.ListByHolder(ctx, holderID)
}

func (s *BookingService) ListAll(ctx context.Context) ([]*domain.Booking, error) {
	return s.bookingRepo.ListAll(ctx)
}
