package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/07-Dili/Bike-RentalBooking-System/internal/domain"
	svcmocks "github.com/07-Dili/Bike-RentalBooking-System/internal/service/mocks"
	"github.com/07-Dili/Bike-RentalBooking-System/internal/service/ports/mocks"
)

const testSecret = "test-secret"

func sign(t *testing.T, secret, orderID, paymentID string) string {
	t.Helper()
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestPaymentService_CreateOrder_Success(t *testing.T) {
	gateway := mocks.NewMockPaymentGateway(t)
	bookings := svcmocks.NewMockBookingConfirmer(t)
	svc := NewPaymentService(testSecret, gateway, bookings, newTestLogger(t))

	bookings.EXPECT().Quote(mock.Anything, "b1", "u1").Return(int64(150), nil)
	gateway.EXPECT().CreateOrder(mock.Anything, int64(15000), "rcpt_b1").Return("order_abc", nil)

	order, err := svc.CreateOrder(context.Background(), "b1", "u1")

	require.NoError(t, err)
	assert.Equal(t, "order_abc", order.OrderID)
	assert.Equal(t, int64(15000), order.Amount)
	assert.Equal(t, "INR", order.Currency)
}

func TestPaymentService_CreateOrder_QuoteError(t *testing.T) {
	gateway := mocks.NewMockPaymentGateway(t)
	bookings := svcmocks.NewMockBookingConfirmer(t)
	svc := NewPaymentService(testSecret, gateway, bookings, newTestLogger(t))

	bookings.EXPECT().Quote(mock.Anything, "b1", "u1").Return(int64(0), domain.ErrNotPending)

	_, err := svc.CreateOrder(context.Background(), "b1", "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotPending)
}

func TestPaymentService_Verify_Success(t *testing.T) {
	gateway := mocks.NewMockPaymentGateway(t)
	bookings := svcmocks.NewMockBookingConfirmer(t)
	svc := NewPaymentService(testSecret, gateway, bookings, newTestLogger(t))

	ref := "pay_1"
	confirmed := &domain.Booking{ID: "b1", Status: domain.BookingStatusPaid, PaymentRef: &ref, Cost: 150}
	bookings.EXPECT().Confirm(mock.Anything, "b1", "u1", "pay_1").Return(confirmed, nil)

	in := domain.VerifyPaymentInput{
		OrderID:   "order_abc",
		PaymentID: "pay_1",
		Signature: sign(t, testSecret, "order_abc", "pay_1"),
		BookingID: "b1",
	}

	booking, err := svc.Verify(context.Background(), in, "u1")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusPaid, booking.Status)
}

func TestPaymentService_Verify_MissingFields(t *testing.T) {
	gateway := mocks.NewMockPaymentGateway(t)
	bookings := svcmocks.NewMockBookingConfirmer(t)
	svc := NewPaymentService(testSecret, gateway, bookings, newTestLogger(t))

	tests := []struct {
		name string
		in   domain.VerifyPaymentInput
	}{
		{"no order id", domain.VerifyPaymentInput{PaymentID: "p", Signature: "s", BookingID: "b1"}},
		{"no payment id", domain.VerifyPaymentInput{OrderID: "o", Signature: "s", BookingID: "b1"}},
		{"no signature", domain.VerifyPaymentInput{OrderID: "o", PaymentID: "p", BookingID: "b1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Verify(context.Background(), tt.in, "u1")
			assert.ErrorIs(t, err, domain.ErrMissingPaymentFields)
		})
	}
}

func TestPaymentService_Verify_TamperedSignature(t *testing.T) {
	gateway := mocks.NewMockPaymentGateway(t)
	bookings := svcmocks.NewMockBookingConfirmer(t)
	svc := NewPaymentService(testSecret, gateway, bookings, newTestLogger(t))

	in := domain.VerifyPaymentInput{
		OrderID:   "order_abc",
		PaymentID: "pay_1",
		Signature: sign(t, "wrong-secret", "order_abc", "pay_1"),
		BookingID: "b1",
	}

	_, err := svc.Verify(context.Background(), in, "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSignatureMismatch)
}

func TestPaymentService_Verify_SignatureForOtherPayment(t *testing.T) {
	gateway := mocks.NewMockPaymentGateway(t)
	bookings := svcmocks.NewMockBookingConfirmer(t)
	svc := NewPaymentService(testSecret, gateway, bookings, newTestLogger(t))

	// valid signature, but over a different payment id
	in := domain.VerifyPaymentInput{
		OrderID:   "order_abc",
		PaymentID: "pay_1",
		Signature: sign(t, testSecret, "order_abc", "pay_other"),
		BookingID: "b1",
	}

	_, err := svc.Verify(context.Background(), in, "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSignatureMismatch)
}

func TestPaymentService_Verify_ForbiddenPropagates(t *testing.T) {
	gateway := mocks.NewMockPaymentGateway(t)
	bookings := svcmocks.NewMockBookingConfirmer(t)
	svc := NewPaymentService(testSecret, gateway, bookings, newTestLogger(t))

	bookings.EXPECT().Confirm(mock.Anything, "b1", "intruder", "pay_1").Return(nil, domain.ErrForbidden)

	in := domain.VerifyPaymentInput{
		OrderID:   "order_abc",
		PaymentID: "pay_1",
		Signature: sign(t, testSecret, "order_abc", "pay_1"),
		BookingID: "b1",
	}

	_, err := svc.Verify(context.Background(), in, "intruder")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestPaymentService_Verify_CommitConflictPropagates(t *testing.T) {
	gateway := mocks.NewMockPaymentGateway(t)
	bookings := svcmocks.NewMockBookingConfirmer(t)
	svc := NewPaymentService(testSecret, gateway, bookings, newTestLogger(t))

	bookings.EXPECT().Confirm(mock.Anything, "b1", "u1", "pay_1").Return(nil, domain.ErrSlotConflict)

	in := domain.VerifyPaymentInput{
		OrderID:   "order_abc",
		PaymentID: "pay_1",
		Signature: sign(t, testSecret, "order_abc", "pay_1"),
		BookingID: "b1",
	}

	_, err := svc.Verify(context.Background(), in, "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSlotConflict)
}
