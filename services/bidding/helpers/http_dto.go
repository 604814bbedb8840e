package helpers

import (
	"time"

	bidding "agrimarket-auction/internal/biddingService"
	model "agrimarket-auction/internal/models"
)

// Request/Response DTOs
type PlaceBidRequest struct {
	ProductID string  `json:"product_id" binding:"required"`
	AgencyID  string  `json:"agency_id" binding:"required"`
	Amount    float64 `json:"amount" binding:"required,gt=0"`
}

type CreateAuctionRequest struct {
	Title          string    `json:"title" binding:"required"`
	Category       string    `json:"category"`
	MinPrice       float64   `json:"min_price" binding:"required,gt=0"`
	MaxPrice       float64   `json:"max_price" binding:"required,gt=0"`
	UnitPrice      float64   `json:"unit_price"`
	UnitType       string    `json:"unit_type"`
	TotalStock     int       `json:"total_stock"`
	AuctionEndDate time.Time `json:"auction_end_date" binding:"required"`
}

type BidResponse struct {
	BidID       string  `json:"bid_id"`
	ProductID   string  `json:"product_id"`
	AgencyID    string  `json:"agency_id"`
	Amount      float64 `json:"amount"`
	SubmittedAt string  `json:"submitted_at"`
}

// PlaceBidResponse carries the admitted bid plus the most recent ledger entries
// so the agency sees the state it just bid into.
type PlaceBidResponse struct {
	Bid        BidResponse   `json:"bid"`
	RecentBids []BidResponse `json:"recent_bids"`
}

// ToBidResponse converts a ledger entry into its wire shape
func ToBidResponse(b model.Bid) BidResponse {
	return BidResponse{
		BidID:       b.BidID,
		ProductID:   b.AuctionID,
		AgencyID:    b.BidderID,
		Amount:      b.Amount,
		SubmittedAt: b.SubmittedAt.UTC().Format(time.RFC3339),
	}
}

// ToBidResponses converts a slice of ledger entries
func ToBidResponses(bids []model.Bid) []BidResponse {
	out := make([]BidResponse, 0, len(bids))
	for _, b := range bids {
		out = append(out, ToBidResponse(b))
	}
	return out
}

// ToCreateAuctionParams maps the request body plus the authenticated seller into
// service-layer creation parameters
func ToCreateAuctionParams(sellerID string, req CreateAuctionRequest) bidding.CreateAuctionParams {
	return bidding.CreateAuctionParams{
		SellerID:       sellerID,
		Title:          req.Title,
		Category:       req.Category,
		MinPrice:       req.MinPrice,
		MaxPrice:       req.MaxPrice,
		UnitPrice:      req.UnitPrice,
		UnitType:       req.UnitType,
		TotalStock:     req.TotalStock,
		AuctionEndDate: req.AuctionEndDate,
	}
}
