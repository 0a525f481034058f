package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/07-Dili/Bike-RentalBooking-System/internal/domain"
	"github.com/07-Dili/Bike-RentalBooking-System/internal/service/ports"
)

type BikeService struct {
	repo        ports.BikeRepo
	bookingRepo ports.BookingRepo
}

func NewBikeService(repo ports.BikeRepo, bookingRepo ports.BookingRepo) *BikeService {
	return &BikeService{
		repo:        repo,
		bookingRepo: bookingRepo,
	}
}

func (s *BikeService) Create(ctx context.Context, input domain.CreateBikeInput) (*domain.Bike, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if !input.Type.Valid() {
		return nil, fmt.Errorf("%w: unknown bike type %q", domain.ErrValidation, input.Type)
	}
	if input.RatePerHour <= 0 {
		return nil, fmt.Errorf("%w: rate_per_hour must be positive", domain.ErrValidation)
	}
	if input.ImageURL == "" {
		return nil, fmt.Errorf("%w: image_url is required", domain.ErrValidation)
	}

	bike := &domain.Bike{
		ID:          uuid.New().String(),
		Name:        input.Name,
		Type:        input.Type,
		RatePerHour: input.RatePerHour,
		ImageURL:    input.ImageURL,
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, bike); err != nil {
		return nil, fmt.Errorf("create bike: %w", err)
	}

	return bike, nil
}

func (s *BikeService) Update(ctx context.Context, id string, input domain.CreateBikeInput) (*domain.Bike, error) {
	if !input.Type.Valid() {
		return nil, fmt.Errorf("%w: unknown bike type %q", domain.ErrValidation, input.Type)
	}
	if input.RatePerHour <= 0 {
		return nil, fmt.Errorf("%w: rate_per_hour must be positive", domain.ErrValidation)
	}

	bike, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	bike.Name = input.Name
	bike.Type = input.Type
	bike.RatePerHour = input.RatePerHour
	bike.ImageURL = input.ImageURL
	bike.UpdatedAt = time.Now().UTC()

	if err = s.repo.Update(ctx, bike); err != nil {
		return nil, fmt.Errorf("update bike: %w", err)
	}

	return bike, nil
}

func (s *BikeService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *BikeService) GetByID(ctx context.Context, id string) (*domain.Bike, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *BikeService) List(ctx context.Context, bikeType domain.BikeType) ([]*domain.Bike, error) {
	return s.repo.List(ctx, bikeType)
}

// ListWithAvailability marks each bike as free or taken for the requested
// window, based on overlapping paid bookings only.
func (s *BikeService) ListWithAvailability(ctx context.Context, bikeType domain.BikeType, w domain.Window) ([]domain.BikeAvailability, error) {
	bikes, err := s.repo.List(ctx, bikeType)
	if err != nil {
		return nil, fmt.Errorf("list bikes: %w", err)
	}

	bookedIDs, err := s.bookingRepo.PaidBikeIDs(ctx, w)
	if err != nil {
		return nil, fmt.Errorf("list booked bikes: %w", err)
	}
	booked := make(map[string]struct{}, len(bookedIDs))
	for _, id := range bookedIDs {
		booked[id] = struct{}{}
	}

	res := make([]domain.BikeAvailability, 0, len(bikes))
	for _, b := range bikes {
		_, taken := booked[b.ID]
		res = append(res, domain.BikeAvailability{Bike: *b, Available: !taken})
	}

	return res, nil
}
