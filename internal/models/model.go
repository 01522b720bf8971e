package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// User represents a participant in the marketplace
type User struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

// Listing represents an auction listing. CurrentPrice starts at
// StartingPrice and only moves upward as bids are accepted. WinnerID is
// set at most once, when the auction closes with at least one bid.
type Listing struct {
	ListingID     string          `json:"listing_id"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	StartingPrice decimal.Decimal `json:"starting_price"`
	CurrentPrice  decimal.Decimal `json:"current_price"`
	Category      string          `json:"category,omitempty"`
	ImageURL      string          `json:"image_url,omitempty"`
	Active        bool            `json:"active"`
	SellerID      string          `json:"seller_id"`
	WinnerID      string          `json:"winner_id,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// Bid represents a user's bid on a listing. Bids are immutable once recorded.
type Bid struct {
	BidID     string          `json:"bid_id"`
	ListingID string          `json:"listing_id"`
	UserID    string          `json:"user_id"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"created_at"`
}

// WatchlistEntry pairs a user with a listing they follow
type WatchlistEntry struct {
	EntryID   string `json:"entry_id"`
	UserID    string `json:"user_id"`
	ListingID string `json:"listing_id"`
}

// Comment is an append-only remark left by a user on a listing
type Comment struct {
	CommentID string    `json:"comment_id"`
	UserID    string    `json:"user_id"`
	ListingID string    `json:"listing_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
