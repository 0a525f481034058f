package ports

import "context"

// PaymentGateway creates checkout orders with the external payment provider.
// Amount is in minor currency units.
type PaymentGateway interface {
	CreateOrder(ctx context.Context, amount int64, receipt string) (string, error)
}
