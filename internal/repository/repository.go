package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"agrimarket-auction/internal/auctionerrors"
	model "agrimarket-auction/internal/models"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=repository

// AuctionStore is the persistence interface for auction records and the bid ledger.
type AuctionStore interface {
	CreateAuction(ctx context.Context, auction model.Auction) error
	GetAuction(ctx context.Context, auctionID string) (model.Auction, error)

	// AdmitBid atomically appends the bid to the ledger and advances the auction's
	// (current_highest_bid, current_highest_bidder_id) pair, but only while the stored
	// highest bid still equals expectedHighest and the stored status is active.
	// A mismatched highest returns ErrConcurrentConflict; a non-active status returns
	// ErrAuctionClosed. The returned bid carries the recorded submission time, which
	// is strictly increasing per auction in admission order.
	AdmitBid(ctx context.Context, bid model.Bid, expectedHighest float64) (model.Bid, error)

	// UpdateStatus transitions the auction from one status to another as a single
	// conditional write. A stored status other than from returns ErrConcurrentConflict.
	UpdateStatus(ctx context.Context, auctionID string, from, to model.AuctionStatus) (model.Auction, error)

	ListAuctions(ctx context.Context) ([]model.Auction, error)
	ListAuctionsByIDs(ctx context.Context, auctionIDs []string) ([]model.Auction, error)
	ListAuctionsCreatedSince(ctx context.Context, since time.Time) ([]model.Auction, error)

	// ListBidsByAuction returns one page of the auction's ledger ordered by
	// submission time descending, plus the total ledger size.
	ListBidsByAuction(ctx context.Context, auctionID string, offset, limit int) ([]model.Bid, int, error)
	// BidStats aggregates over the auction's entire ledger regardless of pagination.
	BidStats(ctx context.Context, auctionID string) (model.BidStats, error)
	// ListBidsByBidder returns every bid an agency has placed, newest first.
	ListBidsByBidder(ctx context.Context, bidderID string) ([]model.Bid, error)
}

// MemoryRepo is a concurrency-safe in-memory implementation of AuctionStore.
// The single mutex makes each AdmitBid check-and-update one atomic unit.
type MemoryRepo struct {
	mu       sync.RWMutex
	auctions map[string]model.Auction // key: auctionID
	ledgers  map[string][]model.Bid   // key: auctionID -> bids, submittedAt ascending
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		auctions: make(map[string]model.Auction),
		ledgers:  make(map[string][]model.Bid),
	}
}

// CreateAuction stores a new auction record
func (r *MemoryRepo) CreateAuction(_ context.Context, auction model.Auction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.auctions[auction.AuctionID]; ok {
		return fmt.Errorf("create auction %s: %w", auction.AuctionID, auctionerrors.ErrDuplicateID)
	}
	r.auctions[auction.AuctionID] = auction
	return nil
}

// GetAuction returns the auction record by id
func (r *MemoryRepo) GetAuction(_ context.Context, auctionID string) (model.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	auction, ok := r.auctions[auctionID]
	if !ok {
		return model.Auction{}, fmt.Errorf("get auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	return auction, nil
}

// AdmitBid implements the conditional ledger-append-plus-pointer-advance under the lock.
func (r *MemoryRepo) AdmitBid(_ context.Context, bid model.Bid, expectedHighest float64) (model.Bid, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	auction, ok := r.auctions[bid.AuctionID]
	if !ok {
		return model.Bid{}, fmt.Errorf("admit bid on auction %s: %w", bid.AuctionID, auctionerrors.ErrAuctionNotFound)
	}
	if auction.Status != model.StatusActive {
		return model.Bid{}, fmt.Errorf("admit bid on auction %s: %w", bid.AuctionID, auctionerrors.ErrAuctionClosed)
	}
	if auction.CurrentHighestBid != expectedHighest {
		return model.Bid{}, fmt.Errorf("admit bid on auction %s: highest moved from %.2f to %.2f: %w",
			bid.AuctionID, expectedHighest, auction.CurrentHighestBid, auctionerrors.ErrConcurrentConflict)
	}

	// Keep submission times strictly increasing per auction even when callers read
	// their clocks out of admission order.
	ledger := r.ledgers[bid.AuctionID]
	if n := len(ledger); n > 0 && !bid.SubmittedAt.After(ledger[n-1].SubmittedAt) {
		bid.SubmittedAt = ledger[n-1].SubmittedAt.Add(time.Microsecond)
	}

	r.ledgers[bid.AuctionID] = append(ledger, bid)
	auction.CurrentHighestBid = bid.Amount
	auction.CurrentHighestBidderID = bid.BidderID
	r.auctions[bid.AuctionID] = auction

	return bid, nil
}

// UpdateStatus performs a compare-and-set transition of the auction status.
func (r *MemoryRepo) UpdateStatus(_ context.Context, auctionID string, from, to model.AuctionStatus) (model.Auction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	auction, ok := r.auctions[auctionID]
	if !ok {
		return model.Auction{}, fmt.Errorf("update status of auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	if auction.Status != from {
		return model.Auction{}, fmt.Errorf("update status of auction %s: stored status is %s, not %s: %w",
			auctionID, auction.Status, from, auctionerrors.ErrConcurrentConflict)
	}

	auction.Status = to
	r.auctions[auctionID] = auction
	return auction, nil
}

// ListAuctions returns every auction record
func (r *MemoryRepo) ListAuctions(_ context.Context) ([]model.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	auctions := make([]model.Auction, 0, len(r.auctions))
	for _, a := range r.auctions {
		auctions = append(auctions, a)
	}
	sortAuctionsByCreation(auctions)
	return auctions, nil
}

// ListAuctionsByIDs returns the auctions matching the given ids, skipping unknown ids
func (r *MemoryRepo) ListAuctionsByIDs(_ context.Context, auctionIDs []string) ([]model.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	auctions := make([]model.Auction, 0, len(auctionIDs))
	for _, id := range auctionIDs {
		if a, ok := r.auctions[id]; ok {
			auctions = append(auctions, a)
		}
	}
	return auctions, nil
}

// ListAuctionsCreatedSince returns auctions created at or after the given time
func (r *MemoryRepo) ListAuctionsCreatedSince(_ context.Context, since time.Time) ([]model.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var auctions []model.Auction
	for _, a := range r.auctions {
		if !a.CreatedAt.Before(since) {
			auctions = append(auctions, a)
		}
	}
	sortAuctionsByCreation(auctions)
	return auctions, nil
}

// ListBidsByAuction returns one page of the ledger, newest first, plus total count.
func (r *MemoryRepo) ListBidsByAuction(_ context.Context, auctionID string, offset, limit int) ([]model.Bid, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ledger := r.ledgers[auctionID]
	total := len(ledger)
	if offset < 0 {
		offset = 0
	}
	if offset >= total || limit <= 0 {
		return []model.Bid{}, total, nil
	}

	// Ledger is stored ascending; page is served descending.
	end := total - offset
	start := end - limit
	if start < 0 {
		start = 0
	}

	page := make([]model.Bid, 0, end-start)
	for i := end - 1; i >= start; i-- {
		page = append(page, ledger[i])
	}
	return page, total, nil
}

// BidStats folds the full ledger into min/max/avg/count aggregates. Amounts are
// summed as decimals so the average does not drift on long ledgers.
func (r *MemoryRepo) BidStats(_ context.Context, auctionID string) (model.BidStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ledger := r.ledgers[auctionID]
	if len(ledger) == 0 {
		return model.BidStats{}, nil
	}

	minAmount := ledger[0].Amount
	maxAmount := ledger[0].Amount
	sum := decimal.Zero
	for _, b := range ledger {
		if b.Amount < minAmount {
			minAmount = b.Amount
		}
		if b.Amount > maxAmount {
			maxAmount = b.Amount
		}
		sum = sum.Add(decimal.NewFromFloat(b.Amount))
	}

	avg, _ := sum.Div(decimal.NewFromInt(int64(len(ledger)))).Round(4).Float64()
	return model.BidStats{
		Count:     len(ledger),
		MinAmount: minAmount,
		MaxAmount: maxAmount,
		AvgAmount: avg,
	}, nil
}

// ListBidsByBidder returns all bids placed by an agency, newest first
func (r *MemoryRepo) ListBidsByBidder(_ context.Context, bidderID string) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var bids []model.Bid
	for _, ledger := range r.ledgers {
		for _, b := range ledger {
			if b.BidderID == bidderID {
				bids = append(bids, b)
			}
		}
	}
	sort.Slice(bids, func(i, j int) bool {
		return bids[i].SubmittedAt.After(bids[j].SubmittedAt)
	})
	return bids, nil
}

func sortAuctionsByCreation(auctions []model.Auction) {
	sort.Slice(auctions, func(i, j int) bool {
		if auctions[i].CreatedAt.Equal(auctions[j].CreatedAt) {
			return auctions[i].AuctionID < auctions[j].AuctionID
		}
		return auctions[i].CreatedAt.Before(auctions[j].CreatedAt)
	})
}
