package auction

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"auction-marketplace/internal/auctionerrors"
	"auction-marketplace/internal/ledger"
	"auction-marketplace/internal/models"
	"auction-marketplace/utils"

	"github.com/shopspring/decimal"
)

// AuctionService defines the business logic for the auction marketplace.
// Bid placement and auction closing on the same listing are serialized
// through a per-listing mutex, so validate, record and price advance run
// as one unit and two racing bidders cannot both pass validation against
// a stale current price.
type AuctionService struct {
	store ledger.LedgerStore
	locks sync.Map // listingID -> *sync.Mutex
}

// NewAuctionService creates a new AuctionService instance
func NewAuctionService(store ledger.LedgerStore) *AuctionService {
	return &AuctionService{
		store: store,
	}
}

func (s *AuctionService) listingLock(listingID string) *sync.Mutex {
	lock, _ := s.locks.LoadOrStore(listingID, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// CreateListing opens a new auction listing for a seller. The current
// price initializes to the starting price.
func (s *AuctionService) CreateListing(sellerID, title, description, category, imageURL string, startingPrice decimal.Decimal) (models.Listing, error) {
	if sellerID == "" || title == "" {
		return models.Listing{}, fmt.Errorf("service: %w - missing seller or title", auctionerrors.ErrInvalidListing)
	}
	if !startingPrice.IsPositive() {
		return models.Listing{}, fmt.Errorf("service: %w - starting price must be positive", auctionerrors.ErrInvalidListing)
	}

	listing := models.Listing{
		ListingID:     utils.GenerateID(),
		Title:         title,
		Description:   description,
		StartingPrice: startingPrice,
		CurrentPrice:  startingPrice,
		Category:      category,
		ImageURL:      imageURL,
		Active:        true,
		SellerID:      sellerID,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.store.CreateListing(listing); err != nil {
		return models.Listing{}, fmt.Errorf("service: failed to create listing for seller %s: %w", sellerID, err)
	}
	return listing, nil
}

// ValidateBid decides whether a proposed bid may be accepted against the
// listing's current state. It performs no side effects. Checks run in
// precedence order: seller bidding on their own listing, closed auction,
// then amount too low. Amounts must strictly exceed both the starting
// price and the highest existing bid, if any.
func (s *AuctionService) ValidateBid(listing models.Listing, highest *models.Bid, bidderID string, amount decimal.Decimal) error {
	if bidderID == listing.SellerID {
		return fmt.Errorf("service: %w", auctionerrors.ErrSellerCannotBid)
	}
	if !listing.Active {
		return fmt.Errorf("service: %w", auctionerrors.ErrAuctionClosed)
	}
	if !amount.GreaterThan(listing.StartingPrice) {
		return fmt.Errorf("service: %w - amount must exceed starting price %s", auctionerrors.ErrBidTooLow, listing.StartingPrice)
	}
	if highest != nil && !amount.GreaterThan(highest.Amount) {
		return fmt.Errorf("service: %w - current highest bid is %s", auctionerrors.ErrBidTooLow, highest.Amount)
	}
	return nil
}

// PlaceBid validates and records a user's bid on a listing, then advances
// the listing's current price. The whole sequence holds the listing lock.
func (s *AuctionService) PlaceBid(listingID, bidderID string, amount decimal.Decimal) (models.Bid, error) {
	if listingID == "" || bidderID == "" {
		return models.Bid{}, fmt.Errorf("service: %w - missing listingID or bidderID", auctionerrors.ErrInvalidBid)
	}
	if !amount.IsPositive() {
		return models.Bid{}, fmt.Errorf("service: %w - non-positive bid amount", auctionerrors.ErrInvalidBid)
	}

	lock := s.listingLock(listingID)
	lock.Lock()
	defer lock.Unlock()

	listing, err := s.store.GetListing(listingID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to load listing %s: %w", listingID, err)
	}

	highest, err := s.highestBidIfAny(listingID)
	if err != nil {
		return models.Bid{}, err
	}

	if err := s.ValidateBid(listing, highest, bidderID, amount); err != nil {
		return models.Bid{}, err
	}

	bid := models.Bid{
		BidID:     utils.GenerateID(),
		ListingID: listingID,
		UserID:    bidderID,
		Amount:    amount,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.store.RecordBid(bid); err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to record bid on listing %s by user %s: %w", listingID, bidderID, err)
	}

	if err := s.advancePrice(&listing, amount); err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to advance price on listing %s: %w", listingID, err)
	}

	return bid, nil
}

// advancePrice raises the listing's current price when the new amount
// strictly exceeds it, persisting the change. Anything else is a no-op;
// the price never moves down.
func (s *AuctionService) advancePrice(listing *models.Listing, amount decimal.Decimal) error {
	if !amount.GreaterThan(listing.CurrentPrice) {
		return nil
	}
	listing.CurrentPrice = amount
	return s.store.UpdateListing(*listing)
}

// CloseAuction finalizes a listing. Only the seller may close, and only
// once. With no bids the listing simply goes inactive at its starting
// price; otherwise the highest bid wins, with the earlier bid winning a
// tie on amount.
func (s *AuctionService) CloseAuction(listingID, callerID string) (models.Listing, error) {
	if listingID == "" || callerID == "" {
		return models.Listing{}, fmt.Errorf("service: %w - missing listingID or callerID", auctionerrors.ErrInvalidListing)
	}

	lock := s.listingLock(listingID)
	lock.Lock()
	defer lock.Unlock()

	listing, err := s.store.GetListing(listingID)
	if err != nil {
		return models.Listing{}, fmt.Errorf("service: failed to load listing %s: %w", listingID, err)
	}
	if listing.SellerID != callerID {
		return models.Listing{}, fmt.Errorf("service: %w", auctionerrors.ErrNotSeller)
	}
	if !listing.Active {
		return models.Listing{}, fmt.Errorf("service: %w", auctionerrors.ErrAlreadyClosed)
	}

	winning, err := s.highestBidIfAny(listingID)
	if err != nil {
		return models.Listing{}, err
	}

	listing.Active = false
	if winning != nil {
		listing.WinnerID = winning.UserID
		if winning.Amount.GreaterThan(listing.CurrentPrice) {
			listing.CurrentPrice = winning.Amount
		}
	}

	if err := s.store.UpdateListing(listing); err != nil {
		return models.Listing{}, fmt.Errorf("service: failed to close listing %s: %w", listingID, err)
	}
	return listing, nil
}

// highestBidIfAny returns the listing's highest bid, or nil when no bids
// have been recorded yet.
func (s *AuctionService) highestBidIfAny(listingID string) (*models.Bid, error) {
	highest, err := s.store.HighestBid(listingID)
	if err != nil {
		if errors.Is(err, auctionerrors.ErrNoBids) {
			return nil, nil
		}
		return nil, fmt.Errorf("service: failed to check highest bid for listing %s: %w", listingID, err)
	}
	return &highest, nil
}

// GetListing returns a listing by id
func (s *AuctionService) GetListing(listingID string) (models.Listing, error) {
	if listingID == "" {
		return models.Listing{}, fmt.Errorf("service: %w - empty listing ID", auctionerrors.ErrInvalidListing)
	}
	listing, err := s.store.GetListing(listingID)
	if err != nil {
		return models.Listing{}, fmt.Errorf("service: failed to get listing %s: %w", listingID, err)
	}
	return listing, nil
}

// IsOpenForBidding reports whether a listing currently accepts bids
func (s *AuctionService) IsOpenForBidding(listingID string) (bool, error) {
	listing, err := s.GetListing(listingID)
	if err != nil {
		return false, err
	}
	return listing.Active, nil
}

// LeadingBid returns the bid currently leading a listing's auction
func (s *AuctionService) LeadingBid(listingID string) (models.Bid, error) {
	if _, err := s.GetListing(listingID); err != nil {
		return models.Bid{}, err
	}
	leading, err := s.store.HighestBid(listingID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to get leading bid for listing %s: %w", listingID, err)
	}
	return leading, nil
}

// HasWon reports whether a user won a listing's auction
func (s *AuctionService) HasWon(listingID, userID string) (bool, error) {
	listing, err := s.GetListing(listingID)
	if err != nil {
		return false, err
	}
	return !listing.Active && userID != "" && listing.WinnerID == userID, nil
}

// BidsForListing returns all bids for a listing, highest first
func (s *AuctionService) BidsForListing(listingID string) ([]models.Bid, error) {
	if _, err := s.GetListing(listingID); err != nil {
		return nil, err
	}
	bids, err := s.store.BidsByListing(listingID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for listing %s: %w", listingID, err)
	}
	return bids, nil
}

// ActiveListings returns all open listings, newest first
func (s *AuctionService) ActiveListings() ([]models.Listing, error) {
	listings, err := s.store.ActiveListings()
	if err != nil {
		return nil, fmt.Errorf("service: failed to list active listings: %w", err)
	}
	return listings, nil
}

// ListingsByCategory returns open listings in a category, newest first.
// An empty category selects uncategorized listings.
func (s *AuctionService) ListingsByCategory(category string) ([]models.Listing, error) {
	listings, err := s.store.ListingsByCategory(category)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list listings in category %q: %w", category, err)
	}
	return listings, nil
}

// Categories returns the distinct listing categories, sorted
func (s *AuctionService) Categories() ([]string, error) {
	categories, err := s.store.Categories()
	if err != nil {
		return nil, fmt.Errorf("service: failed to list categories: %w", err)
	}
	return categories, nil
}

// Watch puts a listing on a user's watchlist. Adding a listing that is
// already watched is a no-op.
func (s *AuctionService) Watch(userID, listingID string) error {
	if userID == "" || listingID == "" {
		return fmt.Errorf("service: %w - missing userID or listingID", auctionerrors.ErrInvalidListing)
	}
	if _, err := s.GetListing(listingID); err != nil {
		return err
	}

	watching, err := s.store.IsWatching(userID, listingID)
	if err != nil {
		return fmt.Errorf("service: failed to check watchlist for user %s: %w", userID, err)
	}
	if watching {
		return nil
	}

	entry := models.WatchlistEntry{
		EntryID:   utils.GenerateID(),
		UserID:    userID,
		ListingID: listingID,
	}
	if err := s.store.AddWatch(entry); err != nil {
		return fmt.Errorf("service: failed to add listing %s to watchlist of user %s: %w", listingID, userID, err)
	}
	return nil
}

// Unwatch removes a listing from a user's watchlist. Removing a listing
// that is not watched is a no-op.
func (s *AuctionService) Unwatch(userID, listingID string) error {
	if userID == "" || listingID == "" {
		return fmt.Errorf("service: %w - missing userID or listingID", auctionerrors.ErrInvalidListing)
	}
	if err := s.store.RemoveWatch(userID, listingID); err != nil {
		return fmt.Errorf("service: failed to remove listing %s from watchlist of user %s: %w", listingID, userID, err)
	}
	return nil
}

// WatchedListings returns the listings on a user's watchlist. Entries
// whose listing no longer resolves are skipped.
func (s *AuctionService) WatchedListings(userID string) ([]models.Listing, error) {
	entries, err := s.store.WatchlistByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get watchlist for user %s: %w", userID, err)
	}

	listings := make([]models.Listing, 0, len(entries))
	for _, entry := range entries {
		listing, err := s.store.GetListing(entry.ListingID)
		if err != nil {
			if errors.Is(err, auctionerrors.ErrListingNotFound) {
				continue
			}
			return nil, fmt.Errorf("service: failed to resolve watched listing %s: %w", entry.ListingID, err)
		}
		listings = append(listings, listing)
	}
	return listings, nil
}

// AddComment appends a user's comment to a listing
func (s *AuctionService) AddComment(listingID, userID, content string) (models.Comment, error) {
	if userID == "" || content == "" {
		return models.Comment{}, fmt.Errorf("service: %w - missing user or content", auctionerrors.ErrInvalidComment)
	}
	if _, err := s.GetListing(listingID); err != nil {
		return models.Comment{}, err
	}

	comment := models.Comment{
		CommentID: utils.GenerateID(),
		UserID:    userID,
		ListingID: listingID,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.CreateComment(comment); err != nil {
		return models.Comment{}, fmt.Errorf("service: failed to add comment to listing %s: %w", listingID, err)
	}
	return comment, nil
}

// Comments returns a listing's comments, oldest first
func (s *AuctionService) Comments(listingID string) ([]models.Comment, error) {
	if _, err := s.GetListing(listingID); err != nil {
		return nil, err
	}
	comments, err := s.store.CommentsByListing(listingID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get comments for listing %s: %w", listingID, err)
	}
	return comments, nil
}

// RemoveUserData deletes a user's bids, watchlist entries and comments.
// Removal is refused while the user owns an active listing or holds bids
// on one; winner references on closed listings are left in place.
func (s *AuctionService) RemoveUserData(userID string) error {
	if userID == "" {
		return fmt.Errorf("service: %w - empty user ID", auctionerrors.ErrInvalidListing)
	}

	owned, err := s.store.ListingsBySeller(userID)
	if err != nil {
		return fmt.Errorf("service: failed to check listings of user %s: %w", userID, err)
	}
	for _, listing := range owned {
		if listing.Active {
			return fmt.Errorf("service: %w - listing %s is still open", auctionerrors.ErrUserHasActiveAuctions, listing.ListingID)
		}
	}

	bids, err := s.store.BidsByUser(userID)
	if err != nil {
		return fmt.Errorf("service: failed to check bids of user %s: %w", userID, err)
	}
	for _, bid := range bids {
		listing, err := s.store.GetListing(bid.ListingID)
		if err != nil {
			if errors.Is(err, auctionerrors.ErrListingNotFound) {
				continue
			}
			return fmt.Errorf("service: failed to resolve listing %s for bid %s: %w", bid.ListingID, bid.BidID, err)
		}
		if listing.Active {
			return fmt.Errorf("service: %w - bid on open listing %s", auctionerrors.ErrUserHasActiveAuctions, listing.ListingID)
		}
	}

	if err := s.store.DeleteBidsByUser(userID); err != nil {
		return fmt.Errorf("service: failed to delete bids of user %s: %w", userID, err)
	}
	if err := s.store.DeleteWatchesByUser(userID); err != nil {
		return fmt.Errorf("service: failed to delete watchlist of user %s: %w", userID, err)
	}
	if err := s.store.DeleteCommentsByUser(userID); err != nil {
		return fmt.Errorf("service: failed to delete comments of user %s: %w", userID, err)
	}
	return nil
}
