// Package interfaces holds compile-time checks that concrete types
// satisfy the interfaces their consumers expect.
package interfaces

import (
	"github.com/avolkov/rentals/internal/database/listings"
	"github.com/avolkov/rentals/internal/services"
)

var (
	_ services.ListingStore = (*listings.Repository)(nil)
	_ services.BatchStore   = (*listings.Repository)(nil)
)
