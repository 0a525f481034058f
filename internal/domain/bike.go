package domain

import "time"

type BikeType string

const (
	BikeTypeClassic  BikeType = "Classic"
	BikeTypeSports   BikeType = "Sports"
	BikeTypeScooty   BikeType = "Scooty"
	BikeTypeElectric BikeType = "Electric"
	BikeTypeStandard BikeType = "Standard"
)

func (t BikeType) Valid() bool {
	switch t {
	case BikeTypeClassic, BikeTypeSports, BikeTypeScooty, BikeTypeElectric, BikeTypeStandard:
		return true
	}
	return false
}

type Bike struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Type        BikeType  `json:"type"`
	RatePerHour int64     `json:"rate_per_hour"`
	ImageURL    string    `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BikeAvailability is a bike annotated with whether it is free for a
// requested window.
type BikeAvailability struct {
	Bike      Bike `json:"bike"`
	Available bool `json:"available"`
}

type CreateBikeInput struct {
	Name        string
	Type        BikeType
	RatePerHour int64
	ImageURL    string
}
