package auctionerrors

import "errors"

// Repository-level errors
var (
	ErrAuctionNotFound = errors.New("auction not found")
	ErrNoBids          = errors.New("no bids found for auction")
	ErrDuplicateID     = errors.New("auction id already exists")

	// ErrConcurrentConflict means an atomic highest-bid or status update lost a race
	// against a concurrent writer. The admission engine retries it a bounded number
	// of times before surfacing it.
	ErrConcurrentConflict = errors.New("concurrent update conflict")
)

// Bid admission rejections
var (
	ErrAuctionClosed     = errors.New("auction has ended or is no longer active")
	ErrInvalidAmount     = errors.New("bid amount must be positive")
	ErrBelowMinimumPrice = errors.New("bid amount below auction minimum price")
	ErrBidTooLow         = errors.New("bid amount not above current highest bid")
)

// Request/authorization errors
var (
	ErrInvalidBid     = errors.New("invalid bid")
	ErrInvalidAuction = errors.New("invalid auction parameters")
	ErrUnauthorized   = errors.New("caller not permitted to perform this action")
)
