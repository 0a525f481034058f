package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/07-Dili/Bike-RentalBooking-System/internal/domain"
	"github.com/07-Dili/Bike-RentalBooking-System/internal/handler/dto"
	hmocks "github.com/07-Dili/Bike-RentalBooking-System/internal/handler/mocks"
	"github.com/07-Dili/Bike-RentalBooking-System/internal/middleware"
	"github.com/07-Dili/Bike-RentalBooking-System/internal/router"
	"github.com/07-Dili/Bike-RentalBooking-System/internal/token"
)

const testJWTSecret = "handler-test-secret"

type handlerFixture struct {
	bikeSvc    *hmocks.MockBikeSvc
	bookingSvc *hmocks.MockBookingSvc
	paymentSvc *hmocks.MockPaymentSvc
	authSvc    *hmocks.MockAuthSvc
	router     http.Handler
}

func setupRouter(t *testing.T) *handlerFixture {
	t.Helper()
	f := &handlerFixture{
		bikeSvc:    hmocks.NewMockBikeSvc(t),
		bookingSvc: hmocks.NewMockBookingSvc(t),
		paymentSvc: hmocks.NewMockPaymentSvc(t),
		authSvc:    hmocks.NewMockAuthSvc(t),
	}

	h := NewHandler(f.bikeSvc, f.bookingSvc, f.paymentSvc, f.authSvc)
	f.router = router.InitRouter("test", h, middleware.Auth(testJWTSecret), middleware.RequireAdmin())
	return f
}

func bearer(t *testing.T, userID string, role domain.Role) string {
	t.Helper()
	raw, err := token.New(&domain.User{ID: userID, Role: role}, testJWTSecret, time.Hour)
	require.NoError(t, err)
	return "Bearer " + raw
}

func doJSON(t *testing.T, r http.Handler, method, path, auth string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// --- Auth ---

func TestHandler_Register_Success(t *testing.T) {
	f := setupRouter(t)

	user := &domain.User{ID: uuid.New().String(), Name: "alice", Email: "alice@example.com", Role: domain.RoleUser, CreatedAt: time.Now()}
	f.authSvc.EXPECT().Register(mock.Anything, mock.Anything).Return(user, "tok", nil)

	w := doJSON(t, f.router, http.MethodPost, "/api/auth/register", "", dto.RegisterRequest{
		Name:     "alice",
		Email:    "alice@example.com",
		Password: "correct horse",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "tok", resp.Token)
	assert.Equal(t, "alice", resp.User.Name)
}

func TestHandler_Register_BadRequest(t *testing.T) {
	f := setupRouter(t)

	w := doJSON(t, f.router, http.MethodPost, "/api/auth/register", "", map[string]string{"name": "alice"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Login_InvalidCredentials(t *testing.T) {
	f := setupRouter(t)

	f.authSvc.EXPECT().Login(mock.Anything, "alice@example.com", "wrong-pass").
		Return(nil, "", domain.ErrInvalidCredentials)

	w := doJSON(t, f.router, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong-pass",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// --- Bikes ---

func TestHandler_ListBikes_Public(t *testing.T) {
	f := setupRouter(t)

	bikes := []*domain.Bike{
		{ID: uuid.New().String(), Name: "City Classic", Type: domain.BikeTypeClassic, RatePerHour: 50},
	}
	f.bikeSvc.EXPECT().List(mock.Anything, domain.BikeType("")).Return(bikes, nil)

	w := doJSON(t, f.router, http.MethodGet, "/api/bikes", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.BikeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

func TestHandler_ListBikes_WithWindow(t *testing.T) {
	f := setupRouter(t)

	avail := []domain.BikeAvailability{
		{Bike: domain.Bike{ID: uuid.New().String(), Name: "A"}, Available: true},
		{Bike: domain.Bike{ID: uuid.New().String(), Name: "B"}, Available: false},
	}
	f.bikeSvc.EXPECT().ListWithAvailability(mock.Anything, domain.BikeType(""), mock.Anything).Return(avail, nil)

	path := "/api/bikes?from=2026-06-01T10:00:00Z&to=2026-06-01T12:00:00Z"
	w := doJSON(t, f.router, http.MethodGet, path, "", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.BikeAvailabilityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.True(t, resp[0].Available)
	assert.False(t, resp[1].Available)
}

func TestHandler_ListBikes_BadWindow(t *testing.T) {
	f := setupRouter(t)

	w := doJSON(t, f.router, http.MethodGet, "/api/bikes?from=not-a-date&to=2026-06-01T12:00:00Z", "", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetBike_InvalidID(t *testing.T) {
	f := setupRouter(t)

	w := doJSON(t, f.router, http.MethodGet, "/api/bikes/not-a-uuid", "", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetBike_NotFound(t *testing.T) {
	f := setupRouter(t)

	id := uuid.New().String()
	f.bikeSvc.EXPECT().GetByID(mock.Anything, id).Return(nil, domain.ErrBikeNotFound)

	w := doJSON(t, f.router, http.MethodGet, "/api/bikes/"+id, "", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_CreateBike_NoToken(t *testing.T) {
	f := setupRouter(t)

	w := doJSON(t, f.router, http.MethodPost, "/api/bikes", "", dto.CreateBikeRequest{
		Name:        "City Classic",
		Type:        "Classic",
		RatePerHour: 50,
		ImageURL:    "https://img.example/classic.jpg",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_CreateBike_NotAdmin(t *testing.T) {
	f := setupRouter(t)

	w := doJSON(t, f.router, http.MethodPost, "/api/bikes", bearer(t, "u1", domain.RoleUser), dto.CreateBikeRequest{
		Name:        "City Classic",
		Type:        "Classic",
		RatePerHour: 50,
		ImageURL:    "https://img.example/classic.jpg",
	})

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_CreateBike_Admin(t *testing.T) {
	f := setupRouter(t)

	bike := &domain.Bike{ID: uuid.New().String(), Name: "City Classic", Type: domain.BikeTypeClassic, RatePerHour: 50}
	f.bikeSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(bike, nil)

	w := doJSON(t, f.router, http.MethodPost, "/api/bikes", bearer(t, "admin1", domain.RoleAdmin), dto.CreateBikeRequest{
		Name:        "City Classic",
		Type:        "Classic",
		RatePerHour: 50,
		ImageURL:    "https://img.example/classic.jpg",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
}

// --- Bookings ---

func TestHandler_CreateBooking_Success(t *testing.T) {
	f := setupRouter(t)

	bikeID := uuid.New().String()
	from := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
	to := from.Add(2 * time.Hour)
	window, _ := domain.NewWindow(from, to)

	booking := &domain.Booking{
		ID:       uuid.New().String(),
		BikeID:   bikeID,
		HolderID: "u1",
		Window:   window,
		Status:   domain.BookingStatusPending,
	}
	f.bookingSvc.EXPECT().Book(mock.Anything, "u1", bikeID, from, to).Return(booking, nil)

	w := doJSON(t, f.router, http.MethodPost, "/api/bookings", bearer(t, "u1", domain.RoleUser), dto.CreateBookingRequest{
		BikeID: bikeID,
		From:   from.Format(time.RFC3339),
		To:     to.Format(time.RFC3339),
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "u1", resp.HolderID)
}

func TestHandler_CreateBooking_InvalidWindow(t *testing.T) {
	f := setupRouter(t)

	at := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC).Format(time.RFC3339)

	w := doJSON(t, f.router, http.MethodPost, "/api/bookings", bearer(t, "u1", domain.RoleUser), dto.CreateBookingRequest{
		BikeID: uuid.New().String(),
		From:   at,
		To:     at,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateBooking_SlotConflict(t *testing.T) {
	f := setupRouter(t)

	bikeID := uuid.New().String()
	from := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
	to := from.Add(time.Hour)

	f.bookingSvc.EXPECT().Book(mock.Anything, "u1", bikeID, from, to).Return(nil, domain.ErrSlotConflict)

	w := doJSON(t, f.router, http.MethodPost, "/api/bookings", bearer(t, "u1", domain.RoleUser), dto.CreateBookingRequest{
		BikeID: bikeID,
		From:   from.Format(time.RFC3339),
		To:     to.Format(time.RFC3339),
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_ListMyBookings(t *testing.T) {
	f := setupRouter(t)

	bookings := []*domain.Booking{
		{ID: "b1", BikeID: "bike1", HolderID: "u1", Status: domain.BookingStatusPending},
	}
	f.bookingSvc.EXPECT().ListByHolder(mock.Anything, "u1").Return(bookings, nil)

	w := doJSON(t, f.router, http.MethodGet, "/api/bookings", bearer(t, "u1", domain.RoleUser), nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

// --- Payments ---

func TestHandler_CreatePaymentOrder_Success(t *testing.T) {
	f := setupRouter(t)

	bookingID := uuid.New().String()
	order := &domain.PaymentOrder{OrderID: "order_abc", Amount: 15000, Currency: "INR"}
	f.paymentSvc.EXPECT().CreateOrder(mock.Anything, bookingID, "u1").Return(order, nil)

	w := doJSON(t, f.router, http.MethodPost, "/api/payments/order", bearer(t, "u1", domain.RoleUser), dto.CreateOrderRequest{
		BookingID: bookingID,
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.OrderResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "order_abc", resp.OrderID)
	assert.Equal(t, int64(15000), resp.Amount)
}

func TestHandler_VerifyPayment_Success(t *testing.T) {
	f := setupRouter(t)

	bookingID := uuid.New().String()
	ref := "pay_1"
	confirmed := &domain.Booking{ID: bookingID, Status: domain.BookingStatusPaid, PaymentRef: &ref, Cost: 150}
	f.paymentSvc.EXPECT().Verify(mock.Anything, mock.Anything, "u1").Return(confirmed, nil)

	w := doJSON(t, f.router, http.MethodPost, "/api/payments/verify", bearer(t, "u1", domain.RoleUser), dto.VerifyPaymentRequest{
		OrderID:   "order_abc",
		PaymentID: "pay_1",
		Signature: "sig",
		BookingID: bookingID,
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.VerifyPaymentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "paid", resp.Status)
	assert.Equal(t, "pay_1", resp.PaymentRef)
	assert.Equal(t, int64(150), resp.Cost)
}

func TestHandler_VerifyPayment_MissingFields(t *testing.T) {
	f := setupRouter(t)

	bookingID := uuid.New().String()
	f.paymentSvc.EXPECT().Verify(mock.Anything, mock.Anything, "u1").Return(nil, domain.ErrMissingPaymentFields)

	w := doJSON(t, f.router, http.MethodPost, "/api/payments/verify", bearer(t, "u1", domain.RoleUser), dto.VerifyPaymentRequest{
		BookingID: bookingID,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_VerifyPayment_SignatureMismatch(t *testing.T) {
	f := setupRouter(t)

	bookingID := uuid.New().String()
	f.paymentSvc.EXPECT().Verify(mock.Anything, mock.Anything, "u1").Return(nil, domain.ErrSignatureMismatch)

	w := doJSON(t, f.router, http.MethodPost, "/api/payments/verify", bearer(t, "u1", domain.RoleUser), dto.VerifyPaymentRequest{
		OrderID:   "order_abc",
		PaymentID: "pay_1",
		Signature: "tampered",
		BookingID: bookingID,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_VerifyPayment_Forbidden(t *testing.T) {
	f := setupRouter(t)

	bookingID := uuid.New().String()
	f.paymentSvc.EXPECT().Verify(mock.Anything, mock.Anything, "intruder").Return(nil, domain.ErrForbidden)

	w := doJSON(t, f.router, http.MethodPost, "/api/payments/verify", bearer(t, "intruder", domain.RoleUser), dto.VerifyPaymentRequest{
		OrderID:   "order_abc",
		PaymentID: "pay_1",
		Signature: "sig",
		BookingID: bookingID,
	})

	assert.Equal(t, http.StatusForbidden, w.Code)
}

// --- Admin ---

func TestHandler_ListAllBookings_Admin(t *testing.T) {
	f := setupRouter(t)

	bookings := []*domain.Booking{
		{ID: "b1", Status: domain.BookingStatusPaid},
		{ID: "b2", Status: domain.BookingStatusPending},
	}
	f.bookingSvc.EXPECT().ListAll(mock.Anything).Return(bookings, nil)

	w := doJSON(t, f.router, http.MethodGet, "/api/admin/bookings", bearer(t, "admin1", domain.RoleAdmin), nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestHandler_ListAllBookings_NotAdmin(t *testing.T) {
	f := setupRouter(t)

	w := doJSON(t, f.router, http.MethodGet, "/api/admin/bookings", bearer(t, "u1", domain.RoleUser), nil)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_UpdateBookingStatus_Success(t *testing.T) {
	f := setupRouter(t)

	id := uuid.New().String()
	booking := &domain.Booking{ID: id, Status: domain.BookingStatusCompleted}
	f.bookingSvc.EXPECT().SetStatus(mock.Anything, id, domain.BookingStatusCompleted).Return(booking, nil)

	w := doJSON(t, f.router, http.MethodPut, "/api/admin/bookings/"+id+"/status", bearer(t, "admin1", domain.RoleAdmin), dto.UpdateBookingStatusRequest{
		Status: "completed",
	})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_UpdateBookingStatus_Invalid(t *testing.T) {
	f := setupRouter(t)

	id := uuid.New().String()
	f.bookingSvc.EXPECT().SetStatus(mock.Anything, id, domain.BookingStatus("archived")).Return(nil, domain.ErrInvalidStatus)

	w := doJSON(t, f.router, http.MethodPut, "/api/admin/bookings/"+id+"/status", bearer(t, "admin1", domain.RoleAdmin), dto.UpdateBookingStatusRequest{
		Status: "archived",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_HandleError_InternalError(t *testing.T) {
	f := setupRouter(t)

	id := uuid.New().String()
	f.bikeSvc.EXPECT().GetByID(mock.Anything, id).Return(nil, assert.AnError)

	w := doJSON(t, f.router, http.MethodGet, "/api/bikes/"+id, "", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
