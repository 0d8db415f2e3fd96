// Package listings provides database operations for vacation-rental listings.
//
// This package implements the ListingStore and BatchStore interfaces defined
// in internal/services/interfaces.go.
//
// # Interface Implementation
//
//	var _ services.ListingStore = (*Repository)(nil)
//	var _ services.BatchStore = (*Repository)(nil)
package listings

import (
	"gorm.io/gorm"

	"github.com/avolkov/rentals/internal/entities"
)

// Repository handles all listing database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new listing repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a single listing. The database assigns the ID.
func (r *Repository) Create(listing *entities.Listing) error {
	return r.db.Create(listing).Error
}

// CreateBatch inserts a batch of staged listings in one statement, so the
// whole batch commits or none of it does.
func (r *Repository) CreateBatch(staged []entities.Listing) error {
	if len(staged) == 0 {
		return nil
	}
	return r.db.Create(&staged).Error
}

// GetByID retrieves a listing by ID. Returns gorm.ErrRecordNotFound
// when the ID is absent.
func (r *Repository) GetByID(id uint) (*entities.Listing, error) {
	var listing entities.Listing
	if err := r.db.First(&listing, id).Error; err != nil {
		return nil, err
	}
	return &listing, nil
}

// GetAll returns every listing in the catalog.
func (r *Repository) GetAll() ([]entities.Listing, error) {
	var result []entities.Listing
	err := r.db.Order("id ASC").Find(&result).Error
	return result, err
}

// Save persists the full state of an existing listing.
func (r *Repository) Save(listing *entities.Listing) error {
	return r.db.Save(listing).Error
}

// Delete removes a listing by ID.
func (r *Repository) Delete(id uint) error {
	return r.db.Delete(&entities.Listing{}, id).Error
}
