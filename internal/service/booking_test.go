package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"

	"github.com/07-Dili/Bike-RentalBooking-System/internal/domain"
	"github.com/07-Dili/Bike-RentalBooking-System/internal/service/ports/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type bookingFixture struct {
	bookingRepo *mocks.MockBookingRepo
	bikeRepo    *mocks.MockBikeRepo
	userRepo    *mocks.MockUserRepo
	notifier    *mocks.MockBookingNotifier
	svc         *BookingService
}

func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()
	f := &bookingFixture{
		bookingRepo: mocks.NewMockBookingRepo(t),
		bikeRepo:    mocks.NewMockBikeRepo(t),
		userRepo:    mocks.NewMockUserRepo(t),
		notifier:    mocks.NewMockBookingNotifier(t),
	}
	f.svc = NewBookingService(f.bookingRepo, f.bikeRepo, f.userRepo, f.notifier, 30*time.Minute, newTestLogger(t))
	return f
}

func testWindow(t *testing.T, hours int) (time.Time, time.Time) {
	t.Helper()
	from := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
	return from, from.Add(time.Duration(hours) * time.Hour)
}

func TestBookingService_Book_Success(t *testing.T) {
	f := newBookingFixture(t)

	bike := &domain.Bike{ID: "bike1", Name: "City Classic", RatePerHour: 50}
	user := &domain.User{ID: "u1", Name: "alice"}
	from, to := testWindow(t, 2)

	f.bikeRepo.EXPECT().GetByID(mock.Anything, "bike1").Return(bike, nil)
	f.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	f.bookingRepo.EXPECT().HasPaidOverlap(mock.Anything, "bike1", mock.Anything).Return(false, nil)
	f.bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	f.notifier.EXPECT().NotifyBookingCreated(mock.Anything, user, bike, mock.Anything).Return()

	booking, err := f.svc.Book(context.Background(), "u1", "bike1", from, to)

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusPending, booking.Status)
	assert.Equal(t, "bike1", booking.BikeID)
	assert.Equal(t, "u1", booking.HolderID)
	assert.Zero(t, booking.Cost)
	assert.NotEmpty(t, booking.ID)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestBookingService_Book_InvalidWindow(t *testing.T) {
	f := newBookingFixture(t)

	from, _ := testWindow(t, 2)

	_, err := f.svc.Book(context.Background(), "u1", "bike1", from, from)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidWindow)
}

func TestBookingService_Book_BikeNotFound(t *testing.T) {
	f := newBookingFixture(t)

	from, to := testWindow(t, 2)
	f.bikeRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrBikeNotFound)

	_, err := f.svc.Book(context.Background(), "u1", "missing", from, to)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBikeNotFound)
}

func TestBookingService_Book_SlotTaken(t *testing.T) {
	f := newBookingFixture(t)

	from, to := testWindow(t, 2)
	f.bikeRepo.EXPECT().GetByID(mock.Anything, "bike1").Return(&domain.Bike{ID: "bike1"}, nil)
	f.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	f.bookingRepo.EXPECT().HasPaidOverlap(mock.Anything, "bike1", mock.Anything).Return(true, nil)

	_, err := f.svc.Book(context.Background(), "u1", "bike1", from, to)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSlotConflict)
}

func TestBookingService_Book_CreateError(t *testing.T) {
	f := newBookingFixture(t)

	from, to := testWindow(t, 2)
	f.bikeRepo.EXPECT().GetByID(mock.Anything, "bike1").Return(&domain.Bike{ID: "bike1"}, nil)
	f.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	f.bookingRepo.EXPECT().HasPaidOverlap(mock.Anything, "bike1", mock.Anything).Return(false, nil)
	f.bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(errors.New("db error"))

	_, err := f.svc.Book(context.Background(), "u1", "bike1", from, to)

	require.Error(t, err)
}

func TestBookingService_Quote_Success(t *testing.T) {
	f := newBookingFixture(t)

	from, to := testWindow(t, 3)
	window, _ := domain.NewWindow(from, to)
	booking := &domain.Booking{
		ID:       "b1",
		BikeID:   "bike1",
		HolderID: "u1",
		Window:   window,
		Status:   domain.BookingStatusPending,
	}

	f.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	f.bikeRepo.EXPECT().GetByID(mock.Anything, "bike1").Return(&domain.Bike{ID: "bike1", RatePerHour: 40}, nil)

	cost, err := f.svc.Quote(context.Background(), "b1", "u1")

	require.NoError(t, err)
	assert.Equal(t, int64(120), cost)
}

func TestBookingService_Quote_Forbidden(t *testing.T) {
	f := newBookingFixture(t)

	booking := &domain.Booking{ID: "b1", HolderID: "owner", Status: domain.BookingStatusPending}
	f.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)

	_, err := f.svc.Quote(context.Background(), "b1", "intruder")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestBookingService_Confirm_Success(t *testing.T) {
	f := newBookingFixture(t)

	from, to := testWindow(t, 2)
	window, _ := domain.NewWindow(from, to)
	booking := &domain.Booking{
		ID:       "b1",
		BikeID:   "bike1",
		HolderID: "u1",
		Window:   window,
		Status:   domain.BookingStatusPending,
	}
	bike := &domain.Bike{ID: "bike1", RatePerHour: 50}
	user := &domain.User{ID: "u1", Name: "alice"}

	f.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	f.bikeRepo.EXPECT().GetByID(mock.Anything, "bike1").Return(bike, nil)
	f.bookingRepo.EXPECT().ConfirmPaid(mock.Anything, "b1", int64(100), "pay_123").Return(nil)
	f.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	f.notifier.EXPECT().NotifyBookingPaid(mock.Anything, user, bike, mock.Anything).Return()

	got, err := f.svc.Confirm(context.Background(), "b1", "u1", "pay_123")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusPaid, got.Status)
	assert.Equal(t, int64(100), got.Cost)
	require.NotNil(t, got.PaymentRef)
	assert.Equal(t, "pay_123", *got.PaymentRef)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Confirm_Forbidden(t *testing.T) {
	f := newBookingFixture(t)

	booking := &domain.Booking{ID: "b1", HolderID: "owner", Status: domain.BookingStatusPending}
	f.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)

	_, err := f.svc.Confirm(context.Background(), "b1", "intruder", "pay_123")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestBookingService_Confirm_IdempotentRepeat(t *testing.T) {
	f := newBookingFixture(t)

	ref := "pay_123"
	booking := &domain.Booking{
		ID:         "b1",
		HolderID:   "u1",
		Status:     domain.BookingStatusPaid,
		PaymentRef: &ref,
		Cost:       100,
	}
	f.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)

	got, err := f.svc.Confirm(context.Background(), "b1", "u1", "pay_123")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusPaid, got.Status)
	assert.Equal(t, int64(100), got.Cost)
}

func TestBookingService_Confirm_PaidWithOtherRef(t *testing.T) {
	f := newBookingFixture(t)

	ref := "pay_original"
	booking := &domain.Booking{
		ID:         "b1",
		HolderID:   "u1",
		Status:     domain.BookingStatusPaid,
		PaymentRef: &ref,
	}
	f.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)

	_, err := f.svc.Confirm(context.Background(), "b1", "u1", "pay_other")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotPending)
}

func TestBookingService_Confirm_NotPending(t *testing.T) {
	f := newBookingFixture(t)

	booking := &domain.Booking{ID: "b1", HolderID: "u1", Status: domain.BookingStatusCancelled}
	f.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)

	_, err := f.svc.Confirm(context.Background(), "b1", "u1", "pay_123")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotPending)
}

func TestBookingService_Confirm_CommitConflict(t *testing.T) {
	f := newBookingFixture(t)

	from, to := testWindow(t, 2)
	window, _ := domain.NewWindow(from, to)
	booking := &domain.Booking{
		ID:       "b1",
		BikeID:   "bike1",
		HolderID: "u1",
		Window:   window,
		Status:   domain.BookingStatusPending,
	}

	f.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	f.bikeRepo.EXPECT().GetByID(mock.Anything, "bike1").Return(&domain.Bike{ID: "bike1", RatePerHour: 50}, nil)
	f.bookingRepo.EXPECT().ConfirmPaid(mock.Anything, "b1", int64(100), "pay_123").Return(domain.ErrSlotConflict)

	_, err := f.svc.Confirm(context.Background(), "b1", "u1", "pay_123")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSlotConflict)
}

func TestBookingService_SetStatus_Success(t *testing.T) {
	f := newBookingFixture(t)

	booking := &domain.Booking{ID: "b1", Status: domain.BookingStatusPaid}
	f.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	f.bookingRepo.EXPECT().SetStatus(mock.Anything, "b1", domain.BookingStatusCompleted).Return(nil)

	got, err := f.svc.SetStatus(context.Background(), "b1", domain.BookingStatusCompleted)

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCompleted, got.Status)
}

func TestBookingService_SetStatus_InvalidStatus(t *testing.T) {
	f := newBookingFixture(t)

	_, err := f.svc.SetStatus(context.Background(), "b1", domain.BookingStatus("archived"))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestBookingService_SetStatus_PendingNotSettable(t *testing.T) {
	f := newBookingFixture(t)

	_, err := f.svc.SetStatus(context.Background(), "b1", domain.BookingStatusPending)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestBookingService_FailStale_Success(t *testing.T) {
	f := newBookingFixture(t)

	failed := []*domain.Booking{
		{ID: "b1", BikeID: "bike1", HolderID: "u1"},
		{ID: "b2", BikeID: "bike2", HolderID: "u2"},
	}
	user1 := &domain.User{ID: "u1"}
	user2 := &domain.User{ID: "u2"}
	bike1 := &domain.Bike{ID: "bike1"}
	bike2 := &domain.Bike{ID: "bike2"}

	f.bookingRepo.EXPECT().FailStale(mock.Anything, 30*time.Minute).Return(failed, nil)
	f.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user1, nil)
	f.userRepo.EXPECT().GetByID(mock.Anything, "u2").Return(user2, nil)
	f.bikeRepo.EXPECT().GetByID(mock.Anything, "bike1").Return(bike1, nil)
	f.bikeRepo.EXPECT().GetByID(mock.Anything, "bike2").Return(bike2, nil)
	f.notifier.EXPECT().NotifyBookingFailed(mock.Anything, user1, bike1, failed[0]).Return()
	f.notifier.EXPECT().NotifyBookingFailed(mock.Anything, user2, bike2, failed[1]).Return()

	result, err := f.svc.FailStale(context.Background())

	require.NoError(t, err)
	assert.Len(t, result, 2)

	time.Sleep(100 * time.Millisecond) // goroutine notify
}

func TestBookingService_FailStale_NoneStale(t *testing.T) {
	f := newBookingFixture(t)

	f.bookingRepo.EXPECT().FailStale(mock.Anything, 30*time.Minute).Return(nil, nil)

	result, err := f.svc.FailStale(context.Background())

	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestBookingService_ListByHolder(t *testing.T) {
	f := newBookingFixture(t)

	bookings := []*domain.Booking{
		{ID: "b1", BikeID: "bike1", HolderID: "u1", Status: domain.BookingStatusPending},
	}
	f.bookingRepo.EXPECT().ListByHolder(mock.Anything, "u1").Return(bookings, nil)

	result, err := f.svc.ListByHolder(context.Background(), "u1")

	require.NoError(t, err)
	assert.Len(t, result, 1)
}
