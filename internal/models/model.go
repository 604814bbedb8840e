package models

import "time"

// AuctionStatus is the lifecycle state of an auction.
// Transitions: active -> cancelled (seller action), or active -> closed/won once the
// end date passes. cancelled, closed and won are terminal.
type AuctionStatus string

const (
	StatusActive    AuctionStatus = "active"
	StatusCancelled AuctionStatus = "cancelled"
	StatusClosed    AuctionStatus = "closed"
	StatusWon       AuctionStatus = "won"
)

// IsTerminal reports whether no further transitions are possible.
func (s AuctionStatus) IsTerminal() bool {
	return s == StatusCancelled || s == StatusClosed || s == StatusWon
}

// Auction represents a product listed for B2B bidding.
type Auction struct {
	AuctionID              string        `json:"auction_id" db:"auction_id"`
	SellerID               string        `json:"seller_id" db:"seller_id"`
	Title                  string        `json:"title" db:"title"`
	Category               string        `json:"category" db:"category"`
	MinPrice               float64       `json:"min_price" db:"min_price"`
	MaxPrice               float64       `json:"max_price" db:"max_price"`
	UnitPrice              float64       `json:"unit_price" db:"unit_price"`
	UnitType               string        `json:"unit_type" db:"unit_type"`
	TotalStock             int           `json:"total_stock" db:"total_stock"`
	CurrentHighestBid      float64       `json:"current_highest_bid" db:"current_highest_bid"`
	CurrentHighestBidderID string        `json:"current_highest_bidder_id" db:"current_highest_bidder_id"`
	AuctionEndDate         time.Time     `json:"auction_end_date" db:"auction_end_date"`
	Status                 AuctionStatus `json:"status" db:"status"`
	CreatedAt              time.Time     `json:"created_at" db:"created_at"`
}

// HasBids reports whether at least one bid has been admitted.
// CurrentHighestBidderID is empty exactly when CurrentHighestBid is zero.
func (a Auction) HasBids() bool {
	return a.CurrentHighestBid > 0
}

// Bid is one admitted entry in the append-only bid ledger. Immutable once recorded.
type Bid struct {
	BidID       string    `json:"bid_id" db:"bid_id"`
	AuctionID   string    `json:"auction_id" db:"auction_id"`
	BidderID    string    `json:"bidder_id" db:"bidder_id"`
	Amount      float64   `json:"amount" db:"amount"`
	SubmittedAt time.Time `json:"submitted_at" db:"submitted_at"`
}

// BidStats are aggregates over every bid in an auction's ledger,
// independent of any pagination window.
type BidStats struct {
	Count     int     `json:"count" db:"count"`
	MinAmount float64 `json:"min_amount" db:"min_amount"`
	MaxAmount float64 `json:"max_amount" db:"max_amount"`
	AvgAmount float64 `json:"avg_amount" db:"avg_amount"`
}
