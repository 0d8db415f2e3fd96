package services

import (
	"fmt"
	"log"

	"github.com/avolkov/rentals/internal/entities"
	"github.com/avolkov/rentals/internal/validation"
)

// ListingService orchestrates single-record catalog mutations.
// Validation failures and storage failures are reported as distinct
// outcomes so callers can translate them separately.
type ListingService struct {
	store     ListingStore
	validator *validation.Validator
}

func NewListingService(store ListingStore, validator *validation.Validator) *ListingService {
	return &ListingService{store: store, validator: validator}
}

// Create builds a candidate listing from raw fields, validates it and
// persists it. A non-empty violations set means the candidate was
// rejected and nothing was stored; a non-nil error means storage failed.
func (s *ListingService) Create(fields map[string]any) (*entities.Listing, validation.Violations, error) {
	candidate := BuildListing(fields)

	if violations := s.validator.Validate(candidate); len(violations) > 0 {
		return nil, violations, nil
	}

	if err := s.store.Create(candidate); err != nil {
		log.Printf("Error while creating listing: %v", err)
		return nil, nil, fmt.Errorf("failed to create listing: %w", err)
	}

	return candidate, nil, nil
}

// Update overlays the fields present in the input onto a copy of the
// existing listing and persists the new state. Fields absent from the
// input keep their prior value.
func (s *ListingService) Update(existing *entities.Listing, fields map[string]any) (*entities.Listing, error) {
	updated := OverlayListing(*existing, fields)

	if err := s.store.Save(&updated); err != nil {
		log.Printf("Error while updating listing %d: %v", existing.ID, err)
		return nil, fmt.Errorf("failed to update listing: %w", err)
	}

	return &updated, nil
}

// Delete removes a listing by ID.
func (s *ListingService) Delete(id uint) error {
	if err := s.store.Delete(id); err != nil {
		log.Printf("Error while deleting listing %d: %v", id, err)
		return fmt.Errorf("failed to delete listing: %w", err)
	}
	return nil
}
