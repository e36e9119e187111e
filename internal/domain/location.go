package domain

import "time"

// Location represents a physical or virtual venue where services are provided
type Location struct {
	ID       int64
	Name     string
	Address  string
	City     string
	Phone    string
	Email    string
	Timezone string // IANA zone name; empty or invalid falls back to the site default
	Industry string

	IsDeleted bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ListFilter uniform soft-delete filter applied by repositories
type ListFilter struct {
	IncludeDeleted bool
	OnlyDeleted    bool
}
