package services

import "github.com/avolkov/rentals/internal/entities"

// ListingStore provides single-record persistence for listings.
// Every operation commits immediately.
type ListingStore interface {
	Create(listing *entities.Listing) error
	GetByID(id uint) (*entities.Listing, error)
	GetAll() ([]entities.Listing, error)
	Save(listing *entities.Listing) error
	Delete(id uint) error
}

// BatchStore persists staged listings in batches. A batch commits wholly
// or not at all; there is no transaction across batches.
type BatchStore interface {
	CreateBatch(staged []entities.Listing) error
}
