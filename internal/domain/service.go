package domain

import "time"

// Service represents a bookable service from the catalog
type Service struct {
	ID              int64
	Name            string
	Price           float64
	DurationMinutes int

	IsDeleted bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
