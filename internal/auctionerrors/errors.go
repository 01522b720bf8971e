package auctionerrors

import "errors"

// Ledger-level errors
var (
	ErrListingNotFound = errors.New("listing not found")
	ErrNoBids          = errors.New("no bids recorded for listing")
)

// business logic errors
var (
	ErrInvalidListing        = errors.New("invalid listing")
	ErrInvalidBid            = errors.New("invalid bid")
	ErrInvalidComment        = errors.New("invalid comment")
	ErrSellerCannotBid       = errors.New("seller cannot bid on their own listing")
	ErrAuctionClosed         = errors.New("auction is closed")
	ErrBidTooLow             = errors.New("bid amount too low")
	ErrAlreadyClosed         = errors.New("auction already closed")
	ErrNotSeller             = errors.New("only the seller may close this auction")
	ErrUserHasActiveAuctions = errors.New("user still has active listings or bids")
)
