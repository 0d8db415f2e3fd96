package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/avolkov/rentals/internal/services"
)

// ListingsController exposes the vacation-rental CRUD endpoints.
// Lookups go straight to the store; mutations go through the service so
// validation and storage failures come back as distinct outcomes.
type ListingsController struct {
	store   services.ListingStore
	service *services.ListingService
}

func NewListingsController(store services.ListingStore, service *services.ListingService) *ListingsController {
	return &ListingsController{store: store, service: service}
}

// Index returns all listings.
// GET /api/v1/vacation-rentals/
func (lc *ListingsController) Index(c *gin.Context) {
	listings, err := lc.store.GetAll()
	if err != nil {
		respondInternalError(c, err, "list vacation rentals")
		return
	}

	if len(listings) == 0 {
		respondNotFound(c, "vacation rentals")
		return
	}

	c.JSON(http.StatusOK, listings)
}

// Show returns a single listing by ID.
// GET /api/v1/vacation-rentals/:id
func (lc *ListingsController) Show(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	listing, err := lc.store.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "vacation rental")
			return
		}
		respondInternalError(c, err, "get vacation rental")
		return
	}

	c.JSON(http.StatusOK, listing)
}

// Create builds, validates and persists a new listing.
// POST /api/v1/vacation-rentals/
func (lc *ListingsController) Create(c *gin.Context) {
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		respondBadRequest(c, "invalid input data")
		return
	}

	listing, violations, err := lc.service.Create(fields)
	if len(violations) > 0 {
		respondBadRequestDetails(c, "validation failed", violations)
		return
	}
	if err != nil {
		respondBadRequest(c, "failed to create vacation rental")
		return
	}

	c.JSON(http.StatusCreated, listing)
}

// Update overlays the supplied fields onto an existing listing.
// Fields absent from the body keep their prior value.
// PUT /api/v1/vacation-rentals/:id
func (lc *ListingsController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	existing, err := lc.store.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "vacation rental")
			return
		}
		respondInternalError(c, err, "get vacation rental for update")
		return
	}

	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		respondBadRequest(c, "invalid input data")
		return
	}

	updated, err := lc.service.Update(existing, fields)
	if err != nil {
		respondBadRequest(c, "failed to update vacation rental")
		return
	}

	c.JSON(http.StatusOK, updated)
}

// Delete removes a listing.
// DELETE /api/v1/vacation-rentals/:id
func (lc *ListingsController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if _, err := lc.store.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "vacation rental")
			return
		}
		respondInternalError(c, err, "get vacation rental for delete")
		return
	}

	if err := lc.service.Delete(id); err != nil {
		respondBadRequest(c, "failed to delete vacation rental")
		return
	}

	c.Status(http.StatusNoContent)
}
