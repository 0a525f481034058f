package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"

	"github.com/07-Dili/Bike-RentalBooking-System/internal/domain"
	"github.com/07-Dili/Bike-RentalBooking-System/internal/handler/dto"
	"github.com/07-Dili/Bike-RentalBooking-System/internal/middleware"
)

type BikeSvc interface {
	Create(ctx context.Context, input domain.CreateBikeInput) (*domain.Bike, error)
	Update(ctx context.Context, id string, input domain.CreateBikeInput) (*domain.Bike, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Bike, error)
	List(ctx context.Context, bikeType domain.BikeType) ([]*domain.Bike, error)
	ListWithAvailability(ctx context.Context, bikeType domain.BikeType, w domain.Window) ([]domain.BikeAvailability, error)
}

type BookingSvc interface {
	Book(ctx context.Context, holderID, bikeID string, from, to time.Time) (*domain.Booking, error)
	ListByHolder(ctx context.Context, holderID string) ([]*domain.Booking, error)
	ListAll(ctx context.Context) ([]*domain.Booking, error)
	SetStatus(ctx context.Context, bookingID string, status domain.BookingStatus) (*domain.Booking, error)
}

type PaymentSvc interface {
	CreateOrder(ctx context.Context, bookingID, holderID string) (*domain.PaymentOrder, error)
	Verify(ctx context.Context, in domain.VerifyPaymentInput, authUserID string) (*domain.Booking, error)
}

type AuthSvc interface {
	Register(ctx context.Context, input domain.RegisterInput) (*domain.User, string, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
	List(ctx context.Context) ([]*domain.User, error)
}

type Handler struct {
	bikeService    BikeSvc
	bookingService BookingSvc
	paymentService PaymentSvc
	authService    AuthSvc
}

func NewHandler(bikeService BikeSvc, bookingService BookingSvc, paymentService PaymentSvc, authService AuthSvc) *Handler {
	return &Handler{
		bikeService:    bikeService,
		bookingService: bookingService,
		paymentService: paymentService,
		authService:    authService,
	}
}

// Auth

func (h *Handler) Register(c *ginext.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	user, t, err := h.authService.Register(c.Request.Context(), domain.RegisterInput{
		Name:           req.Name,
		Email:          req.Email,
		Password:       req.Password,
		TelegramChatID: req.TelegramChatID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.AuthResponse{Token: t, User: dto.ToUserResponse(user)})
}

func (h *Handler) Login(c *ginext.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	user, t, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{Token: t, User: dto.ToUserResponse(user)})
}

// Bikes

func (h *Handler) ListBikes(c *ginext.Context) {
	bikeType := domain.BikeType(c.Query("type"))
	fromRaw, toRaw := c.Query("from"), c.Query("to")

	if fromRaw == "" && toRaw == "" {
		bikes, err := h.bikeService.List(c.Request.Context(), bikeType)
		if err != nil {
			h.handleError(c, err)
			return
		}

		resp := make([]dto.BikeResponse, 0, len(bikes))
		for _, b := range bikes {
			resp = append(resp, dto.ToBikeResponse(b))
		}

		c.JSON(http.StatusOK, resp)
		return
	}

	window, ok := h.parseWindow(c, fromRaw, toRaw)
	if !ok {
		return
	}

	bikes, err := h.bikeService.ListWithAvailability(c.Request.Context(), bikeType, window)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BikeAvailabilityResponse, 0, len(bikes))
	for _, b := range bikes {
		resp = append(resp, dto.ToBikeAvailabilityResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetBike(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid bike id"})
		return
	}

	bike, err := h.bikeService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBikeResponse(bike))
}

func (h *Handler) CreateBike(c *ginext.Context) {
	var req dto.CreateBikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	bike, err := h.bikeService.Create(c.Request.Context(), domain.CreateBikeInput{
		Name:        req.Name,
		Type:        domain.BikeType(req.Type),
		RatePerHour: req.RatePerHour,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBikeResponse(bike))
}

func (h *Handler) UpdateBike(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid bike id"})
		return
	}

	var req dto.CreateBikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	bike, err := h.bikeService.Update(c.Request.Context(), id, domain.CreateBikeInput{
		Name:        req.Name,
		Type:        domain.BikeType(req.Type),
		RatePerHour: req.RatePerHour,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBikeResponse(bike))
}

func (h *Handler) DeleteBike(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid bike id"})
		return
	}

	if err := h.bikeService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

// Bookings

func (h *Handler) CreateBooking(c *ginext.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	window, ok := h.parseWindow(c, req.From, req.To)
	if !ok {
		return
	}

	holderID := c.GetString(middleware.CtxUserID)
	booking, err := h.bookingService.Book(c.Request.Context(), holderID, req.BikeID, window.From, window.To)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) ListMyBookings(c *ginext.Context) {
	holderID := c.GetString(middleware.CtxUserID)

	bookings, err := h.bookingService.ListByHolder(c.Request.Context(), holderID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

// Payments

func (h *Handler) CreatePaymentOrder(c *ginext.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	holderID := c.GetString(middleware.CtxUserID)
	order, err := h.paymentService.CreateOrder(c.Request.Context(), req.BookingID, holderID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.OrderResponse{
		OrderID:  order.OrderID,
		Amount:   order.Amount,
		Currency: order.Currency,
	})
}

func (h *Handler) VerifyPayment(c *ginext.Context) {
	var req dto.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	authUserID := c.GetString(middleware.CtxUserID)
	booking, err := h.paymentService.Verify(c.Request.Context(), domain.VerifyPaymentInput{
		OrderID:   req.OrderID,
		PaymentID: req.PaymentID,
		Signature: req.Signature,
		BookingID: req.BookingID,
	}, authUserID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	paymentRef := ""
	if booking.PaymentRef != nil {
		paymentRef = *booking.PaymentRef
	}

	c.JSON(http.StatusOK, dto.VerifyPaymentResponse{
		Status:     string(booking.Status),
		PaymentRef: paymentRef,
		Cost:       booking.Cost,
	})
}

// Admin

func (h *Handler) ListAllBookings(c *ginext.Context) {
	bookings, err := h.bookingService.ListAll(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) UpdateBookingStatus(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	var req dto.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.bookingService.SetStatus(c.Request.Context(), id, domain.BookingStatus(req.Status))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) ListUsers(c *ginext.Context) {
	users, err := h.authService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.ToUserResponse(u))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) parseWindow(c *ginext.Context, fromRaw, toRaw string) (domain.Window, bool) {
	from, err := time.Parse(time.RFC3339, fromRaw)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid from, expected RFC3339",
		})
		return domain.Window{}, false
	}

	to, err := time.Parse(time.RFC3339, toRaw)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid to, expected RFC3339",
		})
		return domain.Window{}, false
	}

	window, err := domain.NewWindow(from, to)
	if err != nil {
		h.handleError(c, err)
		return domain.Window{}, false
	}

	return window, true
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrBikeNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrSlotConflict),
		errors.Is(err, domain.ErrNotPending):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidWindow),
		errors.Is(err, domain.ErrInvalidStatus),
		errors.Is(err, domain.ErrMissingPaymentFields),
		errors.Is(err, domain.ErrSignatureMismatch),
		errors.Is(err, domain.ErrEmailTaken):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
