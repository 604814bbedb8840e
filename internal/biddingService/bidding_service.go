package bidding

import (
	"context"
	"errors"
	"fmt"
	"time"

	"agrimarket-auction/internal/auctionerrors"
	"agrimarket-auction/internal/cache"
	"agrimarket-auction/internal/metrics"
	model "agrimarket-auction/internal/models"
	"agrimarket-auction/internal/repository"
	"agrimarket-auction/utils"
)

//go:generate mockgen -source=bidding_service.go -destination=../../services/bidding/handler/mock_service.go -package=handler

const defaultAdmissionRetries = 5

// BiddingService holds the business logic for B2B auction bidding: bid admission,
// auction lifecycle, and the reporting queries.
type BiddingService struct {
	repo    repository.AuctionStore
	cache   *cache.Client
	clock   utils.Clock
	retries int
}

// NewBiddingService creates a new BiddingService instance. cacheClient may be nil
// to disable the read-path cache; a nil clock falls back to the system clock.
func NewBiddingService(repo repository.AuctionStore, clock utils.Clock, cacheClient *cache.Client, admissionRetries int) *BiddingService {
	if clock == nil {
		clock = utils.RealClock{}
	}
	if admissionRetries <= 0 {
		admissionRetries = defaultAdmissionRetries
	}
	return &BiddingService{
		repo:    repo,
		cache:   cacheClient,
		clock:   clock,
		retries: admissionRetries,
	}
}

// PlaceBid validates and records an agency's bid against an auction. The admission
// decision is made against the auction state read during validation and applied as
// a conditional update; a lost race is retried transparently a bounded number of
// times, never silently accepted on a stale read.
func (s *BiddingService) PlaceBid(ctx context.Context, auctionID, bidderID string, amount float64) (model.Bid, error) {
	if auctionID == "" || bidderID == "" {
		return model.Bid{}, fmt.Errorf("service: %w - missing auction or agency id", auctionerrors.ErrInvalidBid)
	}

	var lastErr error
	for attempt := 0; attempt <= s.retries; attempt++ {
		if attempt > 0 {
			metrics.AdmissionRetriesTotal.Inc()
		}

		bid, err := s.tryAdmit(ctx, auctionID, bidderID, amount)
		if err == nil {
			metrics.BidsAdmittedTotal.Inc()
			if cerr := s.cache.InvalidateAuction(ctx, auctionID); cerr != nil {
				utils.Warn("service: cache invalidation failed after admission", map[string]any{
					"auction_id": auctionID,
					"error":      cerr.Error(),
				})
			}
			return bid, nil
		}
		if !errors.Is(err, auctionerrors.ErrConcurrentConflict) {
			metrics.BidsRejectedTotal.WithLabelValues(rejectionReason(err)).Inc()
			return model.Bid{}, err
		}
		lastErr = err
	}

	metrics.BidsRejectedTotal.WithLabelValues("concurrent_conflict").Inc()
	return model.Bid{}, fmt.Errorf("service: admission retries exhausted for auction %s: %w", auctionID, lastErr)
}

// tryAdmit runs one pass of the admission preconditions (first failure wins) and,
// if they all hold, the conditional ledger-append-plus-pointer-advance.
func (s *BiddingService) tryAdmit(ctx context.Context, auctionID, bidderID string, amount float64) (model.Bid, error) {
	auction, err := s.repo.GetAuction(ctx, auctionID)
	if err != nil {
		return model.Bid{}, fmt.Errorf("service: %w", err)
	}

	// Stored status is never trusted without re-deriving against the clock.
	auction = s.resolveAndPersist(ctx, auction)
	if auction.Status != model.StatusActive {
		return model.Bid{}, fmt.Errorf("service: auction %s is %s: %w", auctionID, auction.Status, auctionerrors.ErrAuctionClosed)
	}

	if amount <= 0 {
		return model.Bid{}, fmt.Errorf("service: %w - got %.2f", auctionerrors.ErrInvalidAmount, amount)
	}

	if !auction.HasBids() {
		if amount < auction.MinPrice {
			return model.Bid{}, fmt.Errorf("service: %w - minimum price is %.2f", auctionerrors.ErrBelowMinimumPrice, auction.MinPrice)
		}
	} else if amount <= auction.CurrentHighestBid {
		return model.Bid{}, fmt.Errorf("service: %w - current highest bid is %.2f", auctionerrors.ErrBidTooLow, auction.CurrentHighestBid)
	}

	bid := model.Bid{
		BidID:       utils.GenerateID(),
		AuctionID:   auctionID,
		BidderID:    bidderID,
		Amount:      amount,
		SubmittedAt: s.clock.Now(),
	}

	admitted, err := s.repo.AdmitBid(ctx, bid, auction.CurrentHighestBid)
	if err != nil {
		return model.Bid{}, fmt.Errorf("service: failed to admit bid on auction %s by agency %s: %w", auctionID, bidderID, err)
	}
	return admitted, nil
}

// CreateAuctionParams are the seller-declared terms of a new listing.
type CreateAuctionParams struct {
	SellerID       string
	Title          string
	Category       string
	MinPrice       float64
	MaxPrice       float64
	UnitPrice      float64
	UnitType       string
	TotalStock     int
	AuctionEndDate time.Time
}

// CreateAuction registers a product as a B2B auction. The record starts active with
// no bids. MaxPrice bounds the declared range at creation only; it is not enforced
// as a bid ceiling.
func (s *BiddingService) CreateAuction(ctx context.Context, p CreateAuctionParams) (model.Auction, error) {
	if p.SellerID == "" {
		return model.Auction{}, fmt.Errorf("service: %w - missing seller id", auctionerrors.ErrInvalidAuction)
	}
	if p.MinPrice <= 0 {
		return model.Auction{}, fmt.Errorf("service: %w - minimum price must be positive", auctionerrors.ErrInvalidAuction)
	}
	if p.MinPrice >= p.MaxPrice {
		return model.Auction{}, fmt.Errorf("service: %w - minimum price %.2f must be below maximum price %.2f",
			auctionerrors.ErrInvalidAuction, p.MinPrice, p.MaxPrice)
	}
	if p.UnitPrice < 0 || p.TotalStock < 0 {
		return model.Auction{}, fmt.Errorf("service: %w - negative unit price or stock", auctionerrors.ErrInvalidAuction)
	}

	now := s.clock.Now()
	if !p.AuctionEndDate.After(now) {
		return model.Auction{}, fmt.Errorf("service: %w - auction end date must be in the future", auctionerrors.ErrInvalidAuction)
	}

	auction := model.Auction{
		AuctionID:      utils.GenerateID(),
		SellerID:       p.SellerID,
		Title:          p.Title,
		Category:       p.Category,
		MinPrice:       p.MinPrice,
		MaxPrice:       p.MaxPrice,
		UnitPrice:      p.UnitPrice,
		UnitType:       p.UnitType,
		TotalStock:     p.TotalStock,
		AuctionEndDate: p.AuctionEndDate.UTC(),
		Status:         model.StatusActive,
		CreatedAt:      now,
	}

	if err := s.repo.CreateAuction(ctx, auction); err != nil {
		return model.Auction{}, fmt.Errorf("service: failed to create auction for seller %s: %w", p.SellerID, err)
	}
	return auction, nil
}

// rejectionReason labels an admission failure for metrics.
func rejectionReason(err error) string {
	switch {
	case errors.Is(err, auctionerrors.ErrAuctionNotFound):
		return "not_found"
	case errors.Is(err, auctionerrors.ErrAuctionClosed):
		return "auction_closed"
	case errors.Is(err, auctionerrors.ErrInvalidAmount):
		return "invalid_amount"
	case errors.Is(err, auctionerrors.ErrBelowMinimumPrice):
		return "below_minimum_price"
	case errors.Is(err, auctionerrors.ErrBidTooLow):
		return "bid_too_low"
	default:
		return "internal"
	}
}
