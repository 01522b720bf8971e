package helpers

import (
	model "auction-marketplace/internal/models"

	"github.com/shopspring/decimal"
)

// Request/Response DTOs
type CreateListingRequest struct {
	Title         string          `json:"title" binding:"required"`
	Description   string          `json:"description"`
	StartingPrice decimal.Decimal `json:"starting_price" binding:"required"`
	Category      string          `json:"category"`
	ImageURL      string          `json:"image_url"`
}

type PlaceBidRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

type AddCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

type ListingResponse struct {
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
	CreatedAt     string          `json:"created_at"`
}

type BidResponse struct {
	BidID     string          `json:"bid_id"`
	ListingID string          `json:"listing_id"`
	UserID    string          `json:"user_id"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt string          `json:"created_at"`
}

type CommentResponse struct {
	CommentID string `json:"comment_id"`
	ListingID string `json:"listing_id"`
	UserID    string `json:"user_id"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

// ToListingResponse converts a listing record into its response DTO
func ToListingResponse(listing model.Listing) ListingResponse {
	return ListingResponse{
		ListingID:     listing.ListingID,
		Title:         listing.Title,
		Description:   listing.Description,
		StartingPrice: listing.StartingPrice,
		CurrentPrice:  listing.CurrentPrice,
		Category:      listing.Category,
		ImageURL:      listing.ImageURL,
		Active:        listing.Active,
		SellerID:      listing.SellerID,
		WinnerID:      listing.WinnerID,
		CreatedAt:     listing.CreatedAt.UTC().Format(timeFormat),
	}
}

// ToListingResponses converts a slice of listings
func ToListingResponses(listings []model.Listing) []ListingResponse {
	out := make([]ListingResponse, 0, len(listings))
	for _, listing := range listings {
		out = append(out, ToListingResponse(listing))
	}
	return out
}

// ToBidResponse converts a bid record into its response DTO
func ToBidResponse(bid model.Bid) BidResponse {
	return BidResponse{
		BidID:     bid.BidID,
		ListingID: bid.ListingID,
		UserID:    bid.UserID,
		Amount:    bid.Amount,
		CreatedAt: bid.CreatedAt.UTC().Format(timeFormat),
	}
}

// ToBidResponses converts a slice of bids
func ToBidResponses(bids []model.Bid) []BidResponse {
	out := make([]BidResponse, 0, len(bids))
	for _, bid := range bids {
		out = append(out, ToBidResponse(bid))
	}
	return out
}

// ToCommentResponse converts a comment record into its response DTO
func ToCommentResponse(comment model.Comment) CommentResponse {
	return CommentResponse{
		CommentID: comment.CommentID,
		ListingID: comment.ListingID,
		UserID:    comment.UserID,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt.UTC().Format(timeFormat),
	}
}

// ToCommentResponses converts a slice of comments
func ToCommentResponses(comments []model.Comment) []CommentResponse {
	out := make([]CommentResponse, 0, len(comments))
	for _, comment := range comments {
		out = append(out, ToCommentResponse(comment))
	}
	return out
}
