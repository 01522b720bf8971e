package utils

import (
	"github.com/google/uuid"
)

// GenerateID returns a new unique identifier string for listings, bids,
// watchlist entries and comments
func GenerateID() string {
	return uuid.New().String()
}
