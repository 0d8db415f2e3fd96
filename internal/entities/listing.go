package entities

import (
	"time"
)

// Listing is a single vacation-rental catalog record. The ID is assigned
// by the database on first insert and is immutable afterwards.
type Listing struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"index;size:256" json:"name" validate:"required"`
	Description *string   `gorm:"type:text" json:"description"`
	Price       float64   `json:"price" validate:"gte=0"`
	Location    string    `gorm:"index;size:256" json:"location" validate:"required"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Listing) TableName() string {
	return "vacation_rentals"
}
