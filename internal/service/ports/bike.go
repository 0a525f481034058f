package ports

import (
	"context"

	"github.com/07-Dili/Bike-RentalBooking-System/internal/domain"
)

type BikeRepo interface {
	Create(ctx context.Context, b *domain.Bike) error
	GetByID(ctx context.Context, id string) (*domain.Bike, error)
	Update(ctx context.Context, b *domain.Bike) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, bikeType domain.BikeType) ([]*domain.Bike, error)
}
