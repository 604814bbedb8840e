package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"agrimarket-auction/internal/auctionerrors"
	model "agrimarket-auction/internal/models"

	"github.com/stretchr/testify/require"
)

func newTestAuction(id string) model.Auction {
	now := time.Now().UTC()
	return model.Auction{
		AuctionID:      id,
		SellerID:       "seller1",
		Title:          "Basmati Rice",
		Category:       "grains",
		MinPrice:       100,
		MaxPrice:       200,
		AuctionEndDate: now.Add(24 * time.Hour),
		Status:         model.StatusActive,
		CreatedAt:      now,
	}
}

func newTestBid(auctionID, bidderID string, amount float64, at time.Time) model.Bid {
	return model.Bid{
		BidID:       fmt.Sprintf("bid-%s-%s-%.0f", auctionID, bidderID, amount),
		AuctionID:   auctionID,
		BidderID:    bidderID,
		Amount:      amount,
		SubmittedAt: at,
	}
}

func TestMemoryRepo_CreateAndGetAuction(t *testing.T) {
	t.Parallel()
	repo := NewMemoryRepo()
	ctx := context.Background()

	auction := newTestAuction("auction1")
	require.NoError(t, repo.CreateAuction(ctx, auction))

	got, err := repo.GetAuction(ctx, "auction1")
	require.NoError(t, err)
	require.Equal(t, auction, got)

	err = repo.CreateAuction(ctx, auction)
	require.ErrorIs(t, err, auctionerrors.ErrDuplicateID)

	_, err = repo.GetAuction(ctx, "missing")
	require.ErrorIs(t, err, auctionerrors.ErrAuctionNotFound)
}

func TestMemoryRepo_AdmitBid(t *testing.T) {
	t.Parallel()
	repo := NewMemoryRepo()
	ctx := context.Background()
	now := time.Now().UTC()

	require.NoError(t, repo.CreateAuction(ctx, newTestAuction("auction1")))

	t.Run("unknown_auction", func(t *testing.T) {
		_, err := repo.AdmitBid(ctx, newTestBid("missing", "agency1", 100, now), 0)
		require.ErrorIs(t, err, auctionerrors.ErrAuctionNotFound)
	})

	t.Run("first_bid_advances_pointer", func(t *testing.T) {
		admitted, err := repo.AdmitBid(ctx, newTestBid("auction1", "agency1", 100, now), 0)
		require.NoError(t, err)
		require.Equal(t, 100.0, admitted.Amount)

		auction, err := repo.GetAuction(ctx, "auction1")
		require.NoError(t, err)
		require.Equal(t, 100.0, auction.CurrentHighestBid)
		require.Equal(t, "agency1", auction.CurrentHighestBidderID)
	})

	t.Run("stale_expected_highest_conflicts", func(t *testing.T) {
		_, err := repo.AdmitBid(ctx, newTestBid("auction1", "agency2", 120, now.Add(time.Second)), 0)
		require.ErrorIs(t, err, auctionerrors.ErrConcurrentConflict)

		// Ledger untouched and pointer unchanged after the lost race.
		auction, err := repo.GetAuction(ctx, "auction1")
		require.NoError(t, err)
		require.Equal(t, 100.0, auction.CurrentHighestBid)
		_, total, err := repo.ListBidsByAuction(ctx, "auction1", 0, 10)
		require.NoError(t, err)
		require.Equal(t, 1, total)
	})

	t.Run("matching_expected_highest_admits", func(t *testing.T) {
		_, err := repo.AdmitBid(ctx, newTestBid("auction1", "agency2", 120, now.Add(time.Second)), 100)
		require.NoError(t, err)

		auction, err := repo.GetAuction(ctx, "auction1")
		require.NoError(t, err)
		require.Equal(t, 120.0, auction.CurrentHighestBid)
		require.Equal(t, "agency2", auction.CurrentHighestBidderID)
	})

	t.Run("non_active_auction_rejected", func(t *testing.T) {
		cancelled := newTestAuction("auction2")
		cancelled.Status = model.StatusCancelled
		require.NoError(t, repo.CreateAuction(ctx, cancelled))

		_, err := repo.AdmitBid(ctx, newTestBid("auction2", "agency1", 150, now), 0)
		require.ErrorIs(t, err, auctionerrors.ErrAuctionClosed)
	})
}

func TestMemoryRepo_AdmitBid_MonotonicSubmissionTimes(t *testing.T) {
	t.Parallel()
	repo := NewMemoryRepo()
	ctx := context.Background()
	now := time.Now().UTC()

	require.NoError(t, repo.CreateAuction(ctx, newTestAuction("auction1")))

	// Second bid carries an earlier caller clock; the recorded time must still advance.
	first, err := repo.AdmitBid(ctx, newTestBid("auction1", "agency1", 100, now), 0)
	require.NoError(t, err)
	second, err := repo.AdmitBid(ctx, newTestBid("auction1", "agency2", 110, now.Add(-time.Minute)), 100)
	require.NoError(t, err)

	require.True(t, second.SubmittedAt.After(first.SubmittedAt))
}

func TestMemoryRepo_UpdateStatus(t *testing.T) {
	t.Parallel()
	repo := NewMemoryRepo()
	ctx := context.Background()

	require.NoError(t, repo.CreateAuction(ctx, newTestAuction("auction1")))

	updated, err := repo.UpdateStatus(ctx, "auction1", model.StatusActive, model.StatusCancelled)
	require.NoError(t, err)
	require.Equal(t, model.StatusCancelled, updated.Status)

	// A second transition from active loses the CAS.
	_, err = repo.UpdateStatus(ctx, "auction1", model.StatusActive, model.StatusClosed)
	require.ErrorIs(t, err, auctionerrors.ErrConcurrentConflict)

	_, err = repo.UpdateStatus(ctx, "missing", model.StatusActive, model.StatusClosed)
	require.ErrorIs(t, err, auctionerrors.ErrAuctionNotFound)
}

func TestMemoryRepo_ListBidsByAuction_Pagination(t *testing.T) {
	t.Parallel()
	repo := NewMemoryRepo()
	ctx := context.Background()
	now := time.Now().UTC()

	require.NoError(t, repo.CreateAuction(ctx, newTestAuction("auction1")))

	expected := 0.0
	for i := 1; i <= 5; i++ {
		amount := float64(100 + i*10)
		_, err := repo.AdmitBid(ctx, newTestBid("auction1", "agency1", amount, now.Add(time.Duration(i)*time.Second)), expected)
		require.NoError(t, err)
		expected = amount
	}

	page, total, err := repo.ListBidsByAuction(ctx, "auction1", 0, 2)
	require.NoError(t, err)
	require.Equal(t, 5, total)
	require.Len(t, page, 2)
	require.Equal(t, 150.0, page[0].Amount) // newest first
	require.Equal(t, 140.0, page[1].Amount)

	page, total, err = repo.ListBidsByAuction(ctx, "auction1", 4, 2)
	require.NoError(t, err)
	require.Equal(t, 5, total)
	require.Len(t, page, 1)
	require.Equal(t, 110.0, page[0].Amount)

	page, total, err = repo.ListBidsByAuction(ctx, "auction1", 10, 2)
	require.NoError(t, err)
	require.Equal(t, 5, total)
	require.Empty(t, page)
}

func TestMemoryRepo_BidStats(t *testing.T) {
	t.Parallel()
	repo := NewMemoryRepo()
	ctx := context.Background()
	now := time.Now().UTC()

	require.NoError(t, repo.CreateAuction(ctx, newTestAuction("auction1")))

	stats, err := repo.BidStats(ctx, "auction1")
	require.NoError(t, err)
	require.Equal(t, model.BidStats{}, stats)

	amounts := []float64{100, 110.5, 125}
	expected := 0.0
	for i, amount := range amounts {
		_, err := repo.AdmitBid(ctx, newTestBid("auction1", "agency1", amount, now.Add(time.Duration(i)*time.Second)), expected)
		require.NoError(t, err)
		expected = amount
	}

	stats, err = repo.BidStats(ctx, "auction1")
	require.NoError(t, err)
	require.Equal(t, 3, stats.Count)
	require.Equal(t, 100.0, stats.MinAmount)
	require.Equal(t, 125.0, stats.MaxAmount)
	require.InDelta(t, 111.8333, stats.AvgAmount, 0.0001)
}

func TestMemoryRepo_ListBidsByBidder(t *testing.T) {
	t.Parallel()
	repo := NewMemoryRepo()
	ctx := context.Background()
	now := time.Now().UTC()

	require.NoError(t, repo.CreateAuction(ctx, newTestAuction("auction1")))
	require.NoError(t, repo.CreateAuction(ctx, newTestAuction("auction2")))

	_, err := repo.AdmitBid(ctx, newTestBid("auction1", "agency1", 100, now), 0)
	require.NoError(t, err)
	_, err = repo.AdmitBid(ctx, newTestBid("auction2", "agency1", 130, now.Add(time.Second)), 0)
	require.NoError(t, err)
	_, err = repo.AdmitBid(ctx, newTestBid("auction1", "agency2", 140, now.Add(2*time.Second)), 100)
	require.NoError(t, err)

	bids, err := repo.ListBidsByBidder(ctx, "agency1")
	require.NoError(t, err)
	require.Len(t, bids, 2)
	require.Equal(t, "auction2", bids[0].AuctionID) // newest first
	require.Equal(t, "auction1", bids[1].AuctionID)

	bids, err = repo.ListBidsByBidder(ctx, "agency3")
	require.NoError(t, err)
	require.Empty(t, bids)
}

func TestMemoryRepo_ListAuctionsCreatedSince(t *testing.T) {
	t.Parallel()
	repo := NewMemoryRepo()
	ctx := context.Background()
	now := time.Now().UTC()

	old := newTestAuction("old")
	old.CreatedAt = now.Add(-48 * time.Hour)
	recent := newTestAuction("recent")
	recent.CreatedAt = now

	require.NoError(t, repo.CreateAuction(ctx, old))
	require.NoError(t, repo.CreateAuction(ctx, recent))

	auctions, err := repo.ListAuctionsCreatedSince(ctx, now.Add(-time.Hour))
	require.NoError(t, err)
	require.Len(t, auctions, 1)
	require.Equal(t, "recent", auctions[0].AuctionID)
}

// Sequential admissions 1..50 all pass their increase check, so the ledger holds
// exactly 50 entries whose fold reproduces the auction's highest-bid pointer.
func TestMemoryRepo_LedgerFoldMatchesPointer(t *testing.T) {
	t.Parallel()
	repo := NewMemoryRepo()
	ctx := context.Background()
	now := time.Now().UTC()

	auction := newTestAuction("auction1")
	auction.MinPrice = 1
	require.NoError(t, repo.CreateAuction(ctx, auction))

	expected := 0.0
	for i := 1; i <= 50; i++ {
		_, err := repo.AdmitBid(ctx, newTestBid("auction1", fmt.Sprintf("agency%d", i), float64(i), now), expected)
		require.NoError(t, err)
		expected = float64(i)
	}

	bids, total, err := repo.ListBidsByAuction(ctx, "auction1", 0, 100)
	require.NoError(t, err)
	require.Equal(t, 50, total)

	// Descending page; fold max equals the stored pointer.
	maxAmount := 0.0
	for _, b := range bids {
		if b.Amount > maxAmount {
			maxAmount = b.Amount
		}
	}
	got, err := repo.GetAuction(ctx, "auction1")
	require.NoError(t, err)
	require.Equal(t, maxAmount, got.CurrentHighestBid)
	require.Equal(t, 50.0, got.CurrentHighestBid)
}

// 50 goroutines race distinct amounts against one fresh auction through the CAS.
// Whatever interleaving occurs, the highest amount always lands, every admitted
// entry is a strict increase over its predecessor, and the ledger fold equals the
// pointer with an unambiguous final bidder.
func TestMemoryRepo_ConcurrentAdmission(t *testing.T) {
	t.Parallel()
	repo := NewMemoryRepo()
	ctx := context.Background()
	now := time.Now().UTC()

	auction := newTestAuction("auction1")
	auction.MinPrice = 1
	require.NoError(t, repo.CreateAuction(ctx, auction))

	var wg sync.WaitGroup
	for i := 1; i <= 50; i++ {
		wg.Add(1)
		go func(amount float64, bidder string) {
			defer wg.Done()
			// Retry the read-validate-CAS loop the way the admission engine does.
			for {
				current, err := repo.GetAuction(ctx, "auction1")
				if err != nil {
					return
				}
				if amount <= current.CurrentHighestBid {
					return // rejected: not a strict increase
				}
				_, err = repo.AdmitBid(ctx, newTestBid("auction1", bidder, amount, now), current.CurrentHighestBid)
				if err == nil {
					return
				}
				// lost the race, re-read and re-check
			}
		}(float64(i), fmt.Sprintf("agency%d", i))
	}
	wg.Wait()

	got, err := repo.GetAuction(ctx, "auction1")
	require.NoError(t, err)
	require.Equal(t, 50.0, got.CurrentHighestBid)
	require.Equal(t, "agency50", got.CurrentHighestBidderID)

	bids, total, err := repo.ListBidsByAuction(ctx, "auction1", 0, 100)
	require.NoError(t, err)
	require.Equal(t, total, len(bids))
	require.NotEmpty(t, bids)

	// Page is newest-first; replay oldest-first and assert strict monotonicity.
	prev := 0.0
	for i := len(bids) - 1; i >= 0; i-- {
		require.Greater(t, bids[i].Amount, prev)
		prev = bids[i].Amount
	}
	require.Equal(t, 50.0, prev)

	stats, err := repo.BidStats(ctx, "auction1")
	require.NoError(t, err)
	require.Equal(t, total, stats.Count)
	require.Equal(t, got.CurrentHighestBid, stats.MaxAmount)
}
