package domain

// VerifyPaymentInput is the gateway callback payload forwarded by the client
// after checkout.
type VerifyPaymentInput struct {
	OrderID   string
	PaymentID string
	Signature string
	BookingID string
}

// PaymentOrder is a gateway order created for a pending booking. Amount is in
// minor currency units.
type PaymentOrder struct {
	OrderID  string `json:"order_id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}
