package bidding

import (
	"context"
	"testing"
	"time"

	"agrimarket-auction/internal/auctionerrors"
	model "agrimarket-auction/internal/models"
	"agrimarket-auction/internal/repository"

	"github.com/stretchr/testify/require"
)

// The reporting queries are exercised against the real in-memory store so the
// derived views are checked end to end, including lazy status resolution.
func newReportFixture(t *testing.T) (*repository.MemoryRepo, *BiddingService, *fakeClock) {
	t.Helper()
	repo := repository.NewMemoryRepo()
	clk := newFakeClock(testNow)
	svc := NewBiddingService(repo, clk, nil, 3)
	return repo, svc, clk
}

func seedAuction(t *testing.T, repo *repository.MemoryRepo, id, seller, category string, minPrice float64, end time.Time) {
	t.Helper()
	err := repo.CreateAuction(context.Background(), model.Auction{
		AuctionID:      id,
		SellerID:       seller,
		Title:          "Produce " + id,
		Category:       category,
		MinPrice:       minPrice,
		MaxPrice:       minPrice * 3,
		AuctionEndDate: end,
		Status:         model.StatusActive,
		CreatedAt:      testNow.Add(-time.Hour),
	})
	require.NoError(t, err)
}

func mustBid(t *testing.T, svc *BiddingService, clk *fakeClock, auctionID, agencyID string, amount float64) model.Bid {
	t.Helper()
	clk.Advance(time.Second)
	bid, err := svc.PlaceBid(context.Background(), auctionID, agencyID, amount)
	require.NoError(t, err)
	return bid
}

func TestBiddingService_GetBidHistory(t *testing.T) {
	t.Parallel()
	repo, svc, clk := newReportFixture(t)
	ctx := context.Background()

	seedAuction(t, repo, "auction1", "seller1", "grains", 100, testNow.Add(24*time.Hour))
	mustBid(t, svc, clk, "auction1", "agency1", 100)
	mustBid(t, svc, clk, "auction1", "agency2", 120)
	mustBid(t, svc, clk, "auction1", "agency1", 150)

	history, err := svc.GetBidHistory(ctx, "auction1", 1, 2)
	require.NoError(t, err)
	require.Equal(t, 3, history.TotalBids)
	require.Len(t, history.Bids, 2)
	require.Equal(t, 150.0, history.Bids[0].Amount) // newest first
	require.Equal(t, 120.0, history.Bids[1].Amount)

	// Stats cover the full ledger, not the page.
	require.Equal(t, 3, history.Stats.Count)
	require.Equal(t, 100.0, history.Stats.MinAmount)
	require.Equal(t, 150.0, history.Stats.MaxAmount)
	require.InDelta(t, 123.3333, history.Stats.AvgAmount, 0.0001)

	history, err = svc.GetBidHistory(ctx, "auction1", 2, 2)
	require.NoError(t, err)
	require.Len(t, history.Bids, 1)
	require.Equal(t, 100.0, history.Bids[0].Amount)

	_, err = svc.GetBidHistory(ctx, "missing", 1, 10)
	require.ErrorIs(t, err, auctionerrors.ErrAuctionNotFound)

	_, err = svc.GetBidHistory(ctx, "", 1, 10)
	require.ErrorIs(t, err, auctionerrors.ErrInvalidBid)
}

func TestBiddingService_GetHighestBidder(t *testing.T) {
	t.Parallel()
	repo, svc, clk := newReportFixture(t)
	ctx := context.Background()

	seedAuction(t, repo, "auction1", "seller1", "grains", 100, testNow.Add(24*time.Hour))

	_, err := svc.GetHighestBidder(ctx, "auction1")
	require.ErrorIs(t, err, auctionerrors.ErrNoBids)

	mustBid(t, svc, clk, "auction1", "agency1", 100)
	last := mustBid(t, svc, clk, "auction1", "agency2", 130)

	highest, err := svc.GetHighestBidder(ctx, "auction1")
	require.NoError(t, err)
	require.Equal(t, "agency2", highest.BidderID)
	require.Equal(t, 130.0, highest.Amount)
	require.Equal(t, last.SubmittedAt, highest.SubmittedAt)
	require.Equal(t, model.StatusActive, highest.Status)

	// Past the end date the same query resolves and reports the terminal status.
	clk.Advance(48 * time.Hour)
	highest, err = svc.GetHighestBidder(ctx, "auction1")
	require.NoError(t, err)
	require.Equal(t, model.StatusWon, highest.Status)

	stored, err := repo.GetAuction(ctx, "auction1")
	require.NoError(t, err)
	require.Equal(t, model.StatusWon, stored.Status) // lazily persisted
}

func TestBiddingService_ListAgencyBids(t *testing.T) {
	t.Parallel()
	repo, svc, clk := newReportFixture(t)
	ctx := context.Background()

	seedAuction(t, repo, "ongoing", "seller1", "grains", 100, testNow.Add(24*time.Hour))
	seedAuction(t, repo, "ending", "seller1", "fruits", 50, testNow.Add(time.Hour))

	mustBid(t, svc, clk, "ongoing", "agency1", 100)
	mustBid(t, svc, clk, "ending", "agency1", 60)
	mustBid(t, svc, clk, "ongoing", "agency2", 140)

	// "ending" expires with agency1 as highest bidder.
	clk.Advance(2 * time.Hour)

	rows, err := svc.ListAgencyBids(ctx, "agency1", "")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, "ending", rows[0].AuctionID) // newest bid first
	require.Equal(t, model.StatusWon, rows[0].AuctionStatus)
	require.Equal(t, "ongoing", rows[1].AuctionID)
	require.Equal(t, model.StatusActive, rows[1].AuctionStatus)

	wonOnly, err := svc.ListAgencyBids(ctx, "agency1", model.StatusWon)
	require.NoError(t, err)
	require.Len(t, wonOnly, 1)
	require.Equal(t, "ending", wonOnly[0].AuctionID)

	_, err = svc.ListAgencyBids(ctx, "", "")
	require.ErrorIs(t, err, auctionerrors.ErrInvalidBid)
}

func TestBiddingService_ListActiveAuctions(t *testing.T) {
	t.Parallel()
	repo, svc, clk := newReportFixture(t)
	ctx := context.Background()

	seedAuction(t, repo, "later", "seller1", "grains", 100, testNow.Add(72*time.Hour))
	seedAuction(t, repo, "soon", "seller1", "fruits", 50, testNow.Add(24*time.Hour))
	seedAuction(t, repo, "expired", "seller2", "fruits", 50, testNow.Add(time.Minute))

	mustBid(t, svc, clk, "soon", "agency1", 50)
	mustBid(t, svc, clk, "soon", "agency2", 70)
	clk.Advance(time.Hour) // "expired" passes its end date

	rows, err := svc.ListActiveAuctions(ctx, "agency1")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, "soon", rows[0].AuctionID) // soonest ending first
	require.Equal(t, "later", rows[1].AuctionID)

	require.NotNil(t, rows[0].MyLastBid)
	require.Equal(t, 50.0, rows[0].MyLastBid.Amount)
	require.Nil(t, rows[1].MyLastBid)

	// Without an agency the annotation is absent.
	rows, err = svc.ListActiveAuctions(ctx, "")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Nil(t, rows[0].MyLastBid)
}

func TestBiddingService_AgencyActiveBids(t *testing.T) {
	t.Parallel()
	repo, svc, clk := newReportFixture(t)
	ctx := context.Background()

	seedAuction(t, repo, "holding", "seller1", "grains", 100, testNow.Add(24*time.Hour))
	seedAuction(t, repo, "outbid", "seller1", "fruits", 50, testNow.Add(48*time.Hour))
	seedAuction(t, repo, "finished", "seller2", "fruits", 50, testNow.Add(time.Minute))

	// Two bids on "holding": the dashboard dedups to the latest one.
	mustBid(t, svc, clk, "holding", "agency1", 100)
	mustBid(t, svc, clk, "holding", "agency2", 120)
	mustBid(t, svc, clk, "holding", "agency1", 150)

	mustBid(t, svc, clk, "outbid", "agency1", 50)
	mustBid(t, svc, clk, "outbid", "agency2", 80)

	mustBid(t, svc, clk, "finished", "agency1", 55)
	clk.Advance(time.Hour) // "finished" leaves the active set

	rows, err := svc.AgencyActiveBids(ctx, "agency1")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	require.Equal(t, "holding", rows[0].Auction.AuctionID) // soonest ending first
	require.Equal(t, 150.0, rows[0].LastBid.Amount)
	require.True(t, rows[0].HoldsHighest)

	require.Equal(t, "outbid", rows[1].Auction.AuctionID)
	require.Equal(t, 50.0, rows[1].LastBid.Amount)
	require.False(t, rows[1].HoldsHighest)
}

func TestBiddingService_WonAuctions(t *testing.T) {
	t.Parallel()
	repo, svc, clk := newReportFixture(t)
	ctx := context.Background()

	seedAuction(t, repo, "won-by-agency1", "seller1", "grains", 100, testNow.Add(time.Hour))
	seedAuction(t, repo, "won-by-agency2", "seller1", "fruits", 50, testNow.Add(time.Hour))
	seedAuction(t, repo, "no-bids", "seller2", "fruits", 50, testNow.Add(time.Hour))
	seedAuction(t, repo, "still-active", "seller2", "grains", 100, testNow.Add(72*time.Hour))

	mustBid(t, svc, clk, "won-by-agency1", "agency1", 100)
	mustBid(t, svc, clk, "won-by-agency2", "agency1", 50)
	mustBid(t, svc, clk, "won-by-agency2", "agency2", 90)
	mustBid(t, svc, clk, "still-active", "agency1", 100)

	clk.Advance(2 * time.Hour)

	won, err := svc.WonAuctions(ctx, "agency1")
	require.NoError(t, err)
	require.Len(t, won, 1)
	require.Equal(t, "won-by-agency1", won[0].AuctionID)
	require.Equal(t, model.StatusWon, won[0].Status)

	// "no-bids" resolved closed, not won.
	closed, err := repo.GetAuction(ctx, "no-bids")
	require.NoError(t, err)
	require.Equal(t, model.StatusClosed, closed.Status)
}

func TestBiddingService_CategoryAuctions(t *testing.T) {
	t.Parallel()
	repo, svc, clk := newReportFixture(t)
	ctx := context.Background()

	seedAuction(t, repo, "grain-active-far", "seller1", "grains", 100, testNow.Add(72*time.Hour))
	seedAuction(t, repo, "grain-active-soon", "seller1", "grains", 100, testNow.Add(24*time.Hour))
	seedAuction(t, repo, "grain-won", "seller1", "grains", 100, testNow.Add(time.Hour))
	seedAuction(t, repo, "fruit-lost", "seller2", "fruits", 50, testNow.Add(time.Hour))
	seedAuction(t, repo, "fruit-closed", "seller2", "fruits", 50, testNow.Add(time.Hour))

	// Outside the query window, never reported.
	err := repo.CreateAuction(ctx, model.Auction{
		AuctionID: "ancient", SellerID: "seller1", Category: "grains",
		MinPrice: 100, MaxPrice: 300,
		AuctionEndDate: testNow.Add(time.Hour),
		Status:         model.StatusActive,
		CreatedAt:      testNow.Add(-90 * 24 * time.Hour),
	})
	require.NoError(t, err)

	mustBid(t, svc, clk, "grain-won", "agency1", 100)
	mustBid(t, svc, clk, "grain-active-soon", "agency1", 100)
	mustBid(t, svc, clk, "fruit-lost", "agency1", 50)
	mustBid(t, svc, clk, "fruit-lost", "agency2", 80)

	clk.Advance(2 * time.Hour) // the one-hour auctions end

	groups, err := svc.CategoryAuctions(ctx, "agency1", 30*24*time.Hour)
	require.NoError(t, err)
	require.Len(t, groups, 2)

	// Categories sort alphabetically.
	fruits, grains := groups[0], groups[1]
	require.Equal(t, "fruits", fruits.Category)
	require.Equal(t, "grains", grains.Category)

	// grains: one won by agency1, two still active with the soonest first.
	require.Len(t, grains.Won, 1)
	require.Equal(t, "grain-won", grains.Won[0].AuctionID)
	require.Len(t, grains.Active, 2)
	require.Equal(t, "grain-active-soon", grains.Active[0].AuctionID)
	require.Equal(t, "grain-active-far", grains.Active[1].AuctionID)

	// fruits: won by someone else and closed-without-bids both report closed,
	// with the auction agency1 participated in fronted.
	require.Empty(t, fruits.Won)
	require.Len(t, fruits.Closed, 2)
	require.Equal(t, "fruit-lost", fruits.Closed[0].AuctionID)
	require.Equal(t, "fruit-closed", fruits.Closed[1].AuctionID)
}
