package handler

import (
	"errors"
	"fmt"
	"net/http"

	"auction-marketplace/internal/auctionerrors"
	model "auction-marketplace/internal/models"
	"auction-marketplace/services/auction/helpers"
	"auction-marketplace/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type AuctionServiceInterface interface {
	CreateListing(sellerID, title, description, category, imageURL string, startingPrice decimal.Decimal) (model.Listing, error)
	GetListing(listingID string) (model.Listing, error)
	ActiveListings() ([]model.Listing, error)
	ListingsByCategory(category string) ([]model.Listing, error)
	Categories() ([]string, error)
	PlaceBid(listingID, bidderID string, amount decimal.Decimal) (model.Bid, error)
	BidsForListing(listingID string) ([]model.Bid, error)
	LeadingBid(listingID string) (model.Bid, error)
	CloseAuction(listingID, callerID string) (model.Listing, error)
	HasWon(listingID, userID string) (bool, error)
	Watch(userID, listingID string) error
	Unwatch(userID, listingID string) error
	WatchedListings(userID string) ([]model.Listing, error)
	AddComment(listingID, userID, content string) (model.Comment, error)
	Comments(listingID string) ([]model.Comment, error)
	RemoveUserData(userID string) error
}

type AuctionHandler struct {
	service AuctionServiceInterface
}

func NewAuctionHandler(service AuctionServiceInterface) *AuctionHandler {
	return &AuctionHandler{service: service}
}

// CreateListingHandler handles POST /listings
func (h *AuctionHandler) CreateListingHandler(c *gin.Context) {
	var req helpers.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateListingHandler", err)
		return
	}

	sellerID := helpers.IdentityFrom(c)
	listing, err := h.service.CreateListing(sellerID, req.Title, req.Description, req.Category, req.ImageURL, req.StartingPrice)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CreateListingHandler: failed to create listing", map[string]any{
			"handler":   "CreateListingHandler",
			"seller_id": sellerID,
			"error":     err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.ToListingResponse(listing), "listing created successfully")
	helpers.LogSuccess("CreateListingHandler", "listing created successfully", map[string]any{
		"listing_id": listing.ListingID,
		"seller_id":  sellerID,
		"title":      listing.Title,
	})
}

// ListActiveListingsHandler handles GET /listings
func (h *AuctionHandler) ListActiveListingsHandler(c *gin.Context) {
	listings, err := h.service.ActiveListings()
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ListActiveListingsHandler: error retrieving listings", map[string]any{"error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToListingResponses(listings), "active listings retrieved successfully")
}

// GetListingHandler handles GET /listings/:listing_id
func (h *AuctionHandler) GetListingHandler(c *gin.Context) {
	listingID := c.Param("listing_id")
	listing, err := h.service.GetListing(listingID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetListingHandler: error retrieving listing", map[string]any{"listing_id": listingID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToListingResponse(listing), "listing retrieved successfully")
}

// PlaceBidHandler handles POST /listings/:listing_id/bids
func (h *AuctionHandler) PlaceBidHandler(c *gin.Context) {
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	listingID := c.Param("listing_id")
	bidderID := helpers.IdentityFrom(c)

	bid, err := h.service.PlaceBid(listingID, bidderID, req.Amount)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("PlaceBidHandler: failed to place bid", map[string]any{
			"handler":    "PlaceBidHandler",
			"listing_id": listingID,
			"user_id":    bidderID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.ToBidResponse(bid), "bid placed successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid placed successfully", map[string]any{
		"bid_id":     bid.BidID,
		"listing_id": bid.ListingID,
		"user_id":    bidderID,
		"amount":     bid.Amount.String(),
	})
}

// GetBidsByListingHandler handles GET /listings/:listing_id/bids
func (h *AuctionHandler) GetBidsByListingHandler(c *gin.Context) {
	listingID := c.Param("listing_id")
	bids, err := h.service.BidsForListing(listingID)
	if err != nil && !errors.Is(err, auctionerrors.ErrNoBids) {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetBidsByListingHandler: error retrieving bids", map[string]any{"listing_id": listingID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToBidResponses(bids), "bids retrieved successfully")
	helpers.LogSuccess("GetBidsByListingHandler", "bids retrieved successfully", map[string]any{
		"listing_id": listingID,
		"count":      len(bids),
	})
}

// GetLeadingBidHandler handles GET /listings/:listing_id/leading
func (h *AuctionHandler) GetLeadingBidHandler(c *gin.Context) {
	listingID := c.Param("listing_id")
	bid, err := h.service.LeadingBid(listingID)
	if err != nil {
		if errors.Is(err, auctionerrors.ErrNoBids) {
			utils.JSONError(c, http.StatusNotFound, err, "no leading bid found")
			utils.Info("GetLeadingBidHandler: no leading bid found", map[string]any{"listing_id": listingID})
			return
		}
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetLeadingBidHandler: leading bid error", map[string]any{"listing_id": listingID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToBidResponse(bid), "leading bid retrieved successfully")
}

// CloseAuctionHandler handles POST /listings/:listing_id/close
func (h *AuctionHandler) CloseAuctionHandler(c *gin.Context) {
	listingID := c.Param("listing_id")
	callerID := helpers.IdentityFrom(c)

	listing, err := h.service.CloseAuction(listingID, callerID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CloseAuctionHandler: failed to close auction", map[string]any{
			"handler":    "CloseAuctionHandler",
			"listing_id": listingID,
			"user_id":    callerID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToListingResponse(listing), "auction closed successfully")
	helpers.LogSuccess("CloseAuctionHandler", "auction closed successfully", map[string]any{
		"listing_id": listing.ListingID,
		"winner_id":  listing.WinnerID,
		"price":      listing.CurrentPrice.String(),
	})
}

// HasWonHandler handles GET /listings/:listing_id/won
func (h *AuctionHandler) HasWonHandler(c *gin.Context) {
	listingID := c.Param("listing_id")
	userID := helpers.IdentityFrom(c)

	won, err := h.service.HasWon(listingID, userID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("HasWonHandler: error checking winner", map[string]any{"listing_id": listingID, "user_id": userID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"won": won}, "winner check completed")
}

// CategoriesHandler handles GET /categories
func (h *AuctionHandler) CategoriesHandler(c *gin.Context) {
	categories, err := h.service.Categories()
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("CategoriesHandler: error retrieving categories", map[string]any{"error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, categories, "categories retrieved successfully")
}

// ListingsByCategoryHandler handles GET /categories/:category/listings.
// The literal category "none" selects uncategorized listings.
func (h *AuctionHandler) ListingsByCategoryHandler(c *gin.Context) {
	category := c.Param("category")
	if category == "none" {
		category = ""
	}

	listings, err := h.service.ListingsByCategory(category)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ListingsByCategoryHandler: error retrieving listings", map[string]any{"category": category, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToListingResponses(listings), "listings retrieved successfully")
}

// WatchlistHandler handles GET /watchlist
func (h *AuctionHandler) WatchlistHandler(c *gin.Context) {
	userID := helpers.IdentityFrom(c)
	listings, err := h.service.WatchedListings(userID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("WatchlistHandler: error retrieving watchlist", map[string]any{"user_id": userID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToListingResponses(listings), "watchlist retrieved successfully")
}

// AddToWatchlistHandler handles POST /watchlist/:listing_id
func (h *AuctionHandler) AddToWatchlistHandler(c *gin.Context) {
	listingID := c.Param("listing_id")
	userID := helpers.IdentityFrom(c)

	if err := h.service.Watch(userID, listingID); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("AddToWatchlistHandler: error adding to watchlist", map[string]any{"listing_id": listingID, "user_id": userID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "listing added to watchlist")
	helpers.LogSuccess("AddToWatchlistHandler", "listing added to watchlist", map[string]any{
		"listing_id": listingID,
		"user_id":    userID,
	})
}

// RemoveFromWatchlistHandler handles DELETE /watchlist/:listing_id
func (h *AuctionHandler) RemoveFromWatchlistHandler(c *gin.Context) {
	listingID := c.Param("listing_id")
	userID := helpers.IdentityFrom(c)

	if err := h.service.Unwatch(userID, listingID); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("RemoveFromWatchlistHandler: error removing from watchlist", map[string]any{"listing_id": listingID, "user_id": userID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "listing removed from watchlist")
}

// AddCommentHandler handles POST /listings/:listing_id/comments
func (h *AuctionHandler) AddCommentHandler(c *gin.Context) {
	var req helpers.AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "AddCommentHandler", err)
		return
	}

	listingID := c.Param("listing_id")
	userID := helpers.IdentityFrom(c)

	comment, err := h.service.AddComment(listingID, userID, req.Content)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("AddCommentHandler: error adding comment", map[string]any{"listing_id": listingID, "user_id": userID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.ToCommentResponse(comment), "comment added successfully")
}

// GetCommentsHandler handles GET /listings/:listing_id/comments
func (h *AuctionHandler) GetCommentsHandler(c *gin.Context) {
	listingID := c.Param("listing_id")
	comments, err := h.service.Comments(listingID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetCommentsHandler: error retrieving comments", map[string]any{"listing_id": listingID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToCommentResponses(comments), "comments retrieved successfully")
}

// RemoveUserDataHandler handles DELETE /users/me
func (h *AuctionHandler) RemoveUserDataHandler(c *gin.Context) {
	userID := helpers.IdentityFrom(c)

	if err := h.service.RemoveUserData(userID); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("RemoveUserDataHandler: failed to remove user data", map[string]any{
			"handler": "RemoveUserDataHandler",
			"user_id": userID,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "user data removed successfully")
	helpers.LogSuccess("RemoveUserDataHandler", "user data removed successfully", map[string]any{
		"user_id": userID,
	})
}
