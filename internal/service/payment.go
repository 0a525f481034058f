package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/wb-go/wbf/logger"

	"github.com/07-Dili/Bike-RentalBooking-System/internal/domain"
	"github.com/07-Dili/Bike-RentalBooking-System/internal/service/ports"
)

type bookingConfirmer interface {
	Quote(ctx context.Context, bookingID, holderID string) (int64, error)
	Confirm(ctx context.Context, bookingID, holderID, paymentRef string) (*domain.Booking, error)
}

// PaymentService validates gateway callbacks and drives booking confirmation.
// The signing secret is injected at construction; it is never read from the
// environment at call time.
type PaymentService struct {
	secret   string
	gateway  ports.PaymentGateway
	bookings bookingConfirmer
	logger   logger.Logger
}

func NewPaymentService(
	secret string,
	gateway ports.PaymentGateway,
	bookings bookingConfirmer,
	logger logger.Logger,
) *PaymentService {
	return &PaymentService{
		secret:   secret,
		gateway:  gateway,
		bookings: bookings,
		logger:   logger,
	}
}

// CreateOrder opens a gateway order covering the quoted cost of the holder's
// pending booking.
func (s *PaymentService) CreateOrder(ctx context.Context, bookingID, holderID string) (*domain.PaymentOrder, error) {
	cost, err := s.bookings.Quote(ctx, bookingID, holderID)
	if err != nil {
		return nil, fmt.Errorf("quote booking: %w", err)
	}

	amount := cost * 100 // gateway expects minor units
	orderID, err := s.gateway.CreateOrder(ctx, amount, "rcpt_"+bookingID)
	if err != nil {
		return nil, fmt.Errorf("create gateway order: %w", err)
	}

	s.logger.Info("payment order created",
		logger.String("booking_id", bookingID),
		logger.String("order_id", orderID),
		logger.Int64("amount", amount),
	)

	return &domain.PaymentOrder{OrderID: orderID, Amount: amount, Currency: "INR"}, nil
}

// Verify checks the gateway signature and the caller's entitlement, then
// commits the booking. The signature proves the payment is authentic; the
// holder check proves the caller owns the booking it funds. It never mutates
// state itself: on success the confirmation is delegated in full.
func (s *PaymentService) Verify(ctx context.Context, in domain.VerifyPaymentInput, authUserID string) (*domain.Booking, error) {
	if in.OrderID == "" || in.PaymentID == "" || in.Signature == "" {
		return nil, domain.ErrMissingPaymentFields
	}

	if !s.signatureValid(in.OrderID, in.PaymentID, in.Signature) {
		s.logger.Warn("payment signature mismatch",
			logger.String("order_id", in.OrderID),
			logger.String("booking_id", in.BookingID),
		)
		return nil, domain.ErrSignatureMismatch
	}

	booking, err := s.bookings.Confirm(ctx, in.BookingID, authUserID, in.PaymentID)
	if err != nil {
		return nil, err
	}

	return booking, nil
}

func (s *PaymentService) signatureValid(orderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(s.secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	// constant-time compare, the signature must not be guessable byte by byte
	return hmac.Equal([]byte(expected), []byte(signature))
}
