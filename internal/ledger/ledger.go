package ledger

import (
	"fmt"
	"sort"
	"sync"

	"auction-marketplace/internal/auctionerrors"
	model "auction-marketplace/internal/models"
)

// LedgerStore defines the durable storage interface for the marketplace.
// It provides single-record atomicity only; serializing multi-step
// operations on a listing is the caller's responsibility.
type LedgerStore interface {
	CreateListing(listing model.Listing) error
	GetListing(listingID string) (model.Listing, error)
	UpdateListing(listing model.Listing) error
	ActiveListings() ([]model.Listing, error)
	ListingsByCategory(category string) ([]model.Listing, error)
	ListingsBySeller(sellerID string) ([]model.Listing, error)
	Categories() ([]string, error)

	RecordBid(bid model.Bid) error
	BidsByListing(listingID string) ([]model.Bid, error)
	HighestBid(listingID string) (model.Bid, error)
	BidsByUser(userID string) ([]model.Bid, error)
	DeleteBidsByUser(userID string) error

	AddWatch(entry model.WatchlistEntry) error
	RemoveWatch(userID, listingID string) error
	IsWatching(userID, listingID string) (bool, error)
	WatchlistByUser(userID string) ([]model.WatchlistEntry, error)
	DeleteWatchesByUser(userID string) error

	CreateComment(comment model.Comment) error
	CommentsByListing(listingID string) ([]model.Comment, error)
	DeleteCommentsByUser(userID string) error
}

// MemoryLedger is a concurrency-safe in-memory implementation of LedgerStore
type MemoryLedger struct {
	mu       sync.RWMutex
	listings map[string]model.Listing          // key: listingID
	bids     map[string][]model.Bid            // key: listingID -> bids in record order
	watches  map[string][]model.WatchlistEntry // key: userID
	comments map[string][]model.Comment        // key: listingID -> comments in record order
}

// NewMemoryLedger creates a new in-memory ledger instance
func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{
		listings: make(map[string]model.Listing),
		bids:     make(map[string][]model.Bid),
		watches:  make(map[string][]model.WatchlistEntry),
		comments: make(map[string][]model.Comment),
	}
}

// CreateListing stores a new listing record
func (l *MemoryLedger) CreateListing(listing model.Listing) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.listings[listing.ListingID]; ok {
		return fmt.Errorf("create listing %s: %w - duplicate id", listing.ListingID, auctionerrors.ErrInvalidListing)
	}
	l.listings[listing.ListingID] = listing
	return nil
}

// GetListing returns a listing by id
func (l *MemoryLedger) GetListing(listingID string) (model.Listing, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	listing, ok := l.listings[listingID]
	if !ok {
		return model.Listing{}, fmt.Errorf("get listing %s: %w", listingID, auctionerrors.ErrListingNotFound)
	}
	return listing, nil
}

// UpdateListing replaces an existing listing record
func (l *MemoryLedger) UpdateListing(listing model.Listing) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.listings[listing.ListingID]; !ok {
		return fmt.Errorf("update listing %s: %w", listing.ListingID, auctionerrors.ErrListingNotFound)
	}
	l.listings[listing.ListingID] = listing
	return nil
}

// ActiveListings returns all active listings, newest first
func (l *MemoryLedger) ActiveListings() ([]model.Listing, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	listings := make([]model.Listing, 0)
	for _, listing := range l.listings {
		if listing.Active {
			listings = append(listings, listing)
		}
	}
	sortListingsNewestFirst(listings)
	return listings, nil
}

// ListingsByCategory returns active listings in the given category, newest
// first. An empty category selects uncategorized listings.
func (l *MemoryLedger) ListingsByCategory(category string) ([]model.Listing, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	listings := make([]model.Listing, 0)
	for _, listing := range l.listings {
		if listing.Active && listing.Category == category {
			listings = append(listings, listing)
		}
	}
	sortListingsNewestFirst(listings)
	return listings, nil
}

// ListingsBySeller returns all listings owned by a seller, newest first
func (l *MemoryLedger) ListingsBySeller(sellerID string) ([]model.Listing, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	listings := make([]model.Listing, 0)
	for _, listing := range l.listings {
		if listing.SellerID == sellerID {
			listings = append(listings, listing)
		}
	}
	sortListingsNewestFirst(listings)
	return listings, nil
}

// Categories returns the distinct categories across all listings, sorted.
// Uncategorized listings do not contribute an entry.
func (l *MemoryLedger) Categories() ([]string, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	seen := make(map[string]struct{})
	for _, listing := range l.listings {
		if listing.Category != "" {
			seen[listing.Category] = struct{}{}
		}
	}
	categories := make([]string, 0, len(seen))
	for category := range seen {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	return categories, nil
}

// RecordBid records a user's bid on a listing
func (l *MemoryLedger) RecordBid(bid model.Bid) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.listings[bid.ListingID]; !ok {
		return fmt.Errorf("record bid for listing %s: %w", bid.ListingID, auctionerrors.ErrListingNotFound)
	}
	l.bids[bid.ListingID] = append(l.bids[bid.ListingID], bid)
	return nil
}

// BidsByListing returns all bids for a listing, highest amount first.
// Equal amounts keep the earlier bid first.
func (l *MemoryLedger) BidsByListing(listingID string) ([]model.Bid, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	bids, ok := l.bids[listingID]
	if !ok || len(bids) == 0 {
		return nil, fmt.Errorf("get bids for listing %s: %w", listingID, auctionerrors.ErrNoBids)
	}

	out := append([]model.Bid(nil), bids...)
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Amount.Equal(out[j].Amount) {
			return out[i].Amount.GreaterThan(out[j].Amount)
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

// HighestBid returns the highest bid for a listing. When two bids share
// the maximum amount the earlier one wins.
func (l *MemoryLedger) HighestBid(listingID string) (model.Bid, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	bids, ok := l.bids[listingID]
	if !ok || len(bids) == 0 {
		return model.Bid{}, fmt.Errorf("get highest bid for listing %s: %w", listingID, auctionerrors.ErrNoBids)
	}

	highest := bids[0]
	for _, b := range bids[1:] {
		if b.Amount.GreaterThan(highest.Amount) || (b.Amount.Equal(highest.Amount) && b.CreatedAt.Before(highest.CreatedAt)) {
			highest = b
		}
	}
	return highest, nil
}

// BidsByUser returns all bids a user has placed, across listings
func (l *MemoryLedger) BidsByUser(userID string) ([]model.Bid, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	bids := make([]model.Bid, 0)
	for _, listingBids := range l.bids {
		for _, b := range listingBids {
			if b.UserID == userID {
				bids = append(bids, b)
			}
		}
	}
	return bids, nil
}

// DeleteBidsByUser removes every bid placed by a user
func (l *MemoryLedger) DeleteBidsByUser(userID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for listingID, listingBids := range l.bids {
		kept := listingBids[:0]
		for _, b := range listingBids {
			if b.UserID != userID {
				kept = append(kept, b)
			}
		}
		if len(kept) == 0 {
			delete(l.bids, listingID)
		} else {
			l.bids[listingID] = kept
		}
	}
	return nil
}

// AddWatch stores a watchlist entry. The store does not enforce
// (user, listing) uniqueness; callers wanting idempotent adds must check
// IsWatching first.
func (l *MemoryLedger) AddWatch(entry model.WatchlistEntry) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.listings[entry.ListingID]; !ok {
		return fmt.Errorf("add watch for listing %s: %w", entry.ListingID, auctionerrors.ErrListingNotFound)
	}
	l.watches[entry.UserID] = append(l.watches[entry.UserID], entry)
	return nil
}

// RemoveWatch deletes every (user, listing) watchlist entry. Removing a
// pair that is not present is a no-op.
func (l *MemoryLedger) RemoveWatch(userID, listingID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	entries := l.watches[userID]
	kept := entries[:0]
	for _, e := range entries {
		if e.ListingID != listingID {
			kept = append(kept, e)
		}
	}
	if len(kept) == 0 {
		delete(l.watches, userID)
	} else {
		l.watches[userID] = kept
	}
	return nil
}

// IsWatching reports whether a user has a listing on their watchlist
func (l *MemoryLedger) IsWatching(userID, listingID string) (bool, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for _, e := range l.watches[userID] {
		if e.ListingID == listingID {
			return true, nil
		}
	}
	return false, nil
}

// WatchlistByUser returns a user's watchlist entries in insertion order
func (l *MemoryLedger) WatchlistByUser(userID string) ([]model.WatchlistEntry, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return append([]model.WatchlistEntry(nil), l.watches[userID]...), nil
}

// DeleteWatchesByUser removes every watchlist entry owned by a user
func (l *MemoryLedger) DeleteWatchesByUser(userID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	delete(l.watches, userID)
	return nil
}

// CreateComment stores a comment on a listing
func (l *MemoryLedger) CreateComment(comment model.Comment) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.listings[comment.ListingID]; !ok {
		return fmt.Errorf("create comment for listing %s: %w", comment.ListingID, auctionerrors.ErrListingNotFound)
	}
	l.comments[comment.ListingID] = append(l.comments[comment.ListingID], comment)
	return nil
}

// CommentsByListing returns a listing's comments, oldest first
func (l *MemoryLedger) CommentsByListing(listingID string) ([]model.Comment, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := append([]model.Comment(nil), l.comments[listingID]...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

// DeleteCommentsByUser removes every comment authored by a user
func (l *MemoryLedger) DeleteCommentsByUser(userID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for listingID, listingComments := range l.comments {
		kept := listingComments[:0]
		for _, c := range listingComments {
			if c.UserID != userID {
				kept = append(kept, c)
			}
		}
		if len(kept) == 0 {
			delete(l.comments, listingID)
		} else {
			l.comments[listingID] = kept
		}
	}
	return nil
}

func sortListingsNewestFirst(listings []model.Listing) {
	sort.SliceStable(listings, func(i, j int) bool {
		return listings[i].CreatedAt.After(listings[j].CreatedAt)
	})
}
