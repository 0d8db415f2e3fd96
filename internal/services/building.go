package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/avolkov/rentals/internal/entities"
)

// BuildListing constructs a candidate listing from raw input fields.
// Missing name/location default to the empty string, a missing or
// non-numeric price defaults to 0, and a missing description stays absent.
func BuildListing(fields map[string]any) *entities.Listing {
	listing := &entities.Listing{
		Name:     coerceString(fields["name"]),
		Price:    coercePrice(fields["price"]),
		Location: coerceString(fields["location"]),
	}
	if present(fields, "description") {
		description := coerceString(fields["description"])
		listing.Description = &description
	}
	return listing
}

// OverlayListing returns a copy of an existing listing with only the
// fields present in the input replaced. Absent fields keep their value.
func OverlayListing(existing entities.Listing, fields map[string]any) entities.Listing {
	updated := existing
	if present(fields, "name") {
		updated.Name = coerceString(fields["name"])
	}
	if present(fields, "description") {
		description := coerceString(fields["description"])
		updated.Description = &description
	}
	if present(fields, "price") {
		updated.Price = coercePrice(fields["price"])
	}
	if present(fields, "location") {
		updated.Location = coerceString(fields["location"])
	}
	return updated
}

// present reports whether a field was supplied with a non-null value.
func present(fields map[string]any, key string) bool {
	value, ok := fields[key]
	return ok && value != nil
}

func coerceString(value any) string {
	switch s := value.(type) {
	case nil:
		return ""
	case string:
		return s
	default:
		return fmt.Sprint(s)
	}
}

func coercePrice(value any) float64 {
	switch n := value.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}
		return parsed
	default:
		return 0
	}
}
