package bidding

import (
	"context"
	"fmt"
	"sort"
	"time"

	"agrimarket-auction/internal/auctionerrors"
	model "agrimarket-auction/internal/models"
	"agrimarket-auction/utils"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
	defaultReportWindow = 30 * 24 * time.Hour
)

// BidHistory is one page of an auction's ledger plus aggregates over all of it.
type BidHistory struct {
	AuctionID string         `json:"auction_id"`
	Bids      []model.Bid    `json:"bids"`
	Page      int            `json:"page"`
	Limit     int            `json:"limit"`
	TotalBids int            `json:"total_bids"`
	Stats     model.BidStats `json:"stats"`
}

// HighestBid is the authoritative current-highest answer for an auction, taken from
// the auction record's own pointer fields rather than a ledger re-scan.
type HighestBid struct {
	AuctionID   string              `json:"auction_id"`
	BidderID    string              `json:"bidder_id"`
	Amount      float64             `json:"amount"`
	SubmittedAt time.Time           `json:"submitted_at"`
	Status      model.AuctionStatus `json:"status"`
}

// AgencyBid is one row of an agency's own bid list, annotated with the resolved
// status of the auction it was placed on.
type AgencyBid struct {
	model.Bid
	AuctionStatus model.AuctionStatus `json:"auction_status"`
}

// ActiveAuction is an active listing, optionally annotated with the querying
// agency's own most recent bid on it.
type ActiveAuction struct {
	model.Auction
	MyLastBid *model.Bid `json:"my_last_bid,omitempty"`
}

// AgencyAuctionBid is one dashboard row: an active auction the agency has bid on,
// its last bid there, and whether it currently holds the highest bid.
type AgencyAuctionBid struct {
	Auction      model.Auction `json:"auction"`
	LastBid      model.Bid     `json:"last_bid"`
	HoldsHighest bool          `json:"holds_highest"`
}

// CategoryGroup is one category's auctions split by status relative to the
// querying agency.
type CategoryGroup struct {
	Category string          `json:"category"`
	Active   []model.Auction `json:"active"`
	Won      []model.Auction `json:"won"`
	Closed   []model.Auction `json:"closed"`
}

// GetBidHistory returns one descending page of an auction's ledger together with
// stats computed over every bid regardless of the pagination window.
func (s *BiddingService) GetBidHistory(ctx context.Context, auctionID string, page, limit int) (BidHistory, error) {
	if auctionID == "" {
		return BidHistory{}, fmt.Errorf("service: %w - empty auction id", auctionerrors.ErrInvalidBid)
	}
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	auction, err := s.repo.GetAuction(ctx, auctionID)
	if err != nil {
		return BidHistory{}, fmt.Errorf("service: %w", err)
	}
	s.resolveAndPersist(ctx, auction)

	bids, total, err := s.repo.ListBidsByAuction(ctx, auctionID, (page-1)*limit, limit)
	if err != nil {
		return BidHistory{}, fmt.Errorf("service: failed to list bids for auction %s: %w", auctionID, err)
	}
	stats, err := s.repo.BidStats(ctx, auctionID)
	if err != nil {
		return BidHistory{}, fmt.Errorf("service: failed to compute bid stats for auction %s: %w", auctionID, err)
	}

	return BidHistory{
		AuctionID: auctionID,
		Bids:      bids,
		Page:      page,
		Limit:     limit,
		TotalBids: total,
		Stats:     stats,
	}, nil
}

// GetHighestBidder returns the current highest bid joined with its submission time.
// The amount and bidder come from the auction record itself; only the timestamp is
// read from the ledger. Served through the read cache when one is configured.
func (s *BiddingService) GetHighestBidder(ctx context.Context, auctionID string) (HighestBid, error) {
	if auctionID == "" {
		return HighestBid{}, fmt.Errorf("service: %w - empty auction id", auctionerrors.ErrInvalidBid)
	}

	var snapshot HighestBid
	hit, cerr := s.cache.GetHighestBid(ctx, auctionID, &snapshot)
	if cerr != nil {
		utils.Warn("service: highest-bid cache read failed", map[string]any{
			"auction_id": auctionID,
			"error":      cerr.Error(),
		})
	}
	if hit {
		return snapshot, nil
	}

	auction, err := s.repo.GetAuction(ctx, auctionID)
	if err != nil {
		return HighestBid{}, fmt.Errorf("service: %w", err)
	}
	auction = s.resolveAndPersist(ctx, auction)

	if !auction.HasBids() {
		return HighestBid{}, fmt.Errorf("service: auction %s: %w", auctionID, auctionerrors.ErrNoBids)
	}

	latest, _, err := s.repo.ListBidsByAuction(ctx, auctionID, 0, 1)
	if err != nil {
		return HighestBid{}, fmt.Errorf("service: failed to read latest bid for auction %s: %w", auctionID, err)
	}

	snapshot = HighestBid{
		AuctionID: auctionID,
		BidderID:  auction.CurrentHighestBidderID,
		Amount:    auction.CurrentHighestBid,
		Status:    auction.Status,
	}
	if len(latest) > 0 {
		snapshot.SubmittedAt = latest[0].SubmittedAt
	}

	if cerr := s.cache.SetHighestBid(ctx, auctionID, snapshot); cerr != nil {
		utils.Warn("service: highest-bid cache write failed", map[string]any{
			"auction_id": auctionID,
			"error":      cerr.Error(),
		})
	}
	return snapshot, nil
}

// ListAgencyBids returns every bid the agency has placed, newest first, annotated
// with each auction's resolved status. statusFilter narrows to one status; empty
// keeps all.
func (s *BiddingService) ListAgencyBids(ctx context.Context, agencyID string, statusFilter model.AuctionStatus) ([]AgencyBid, error) {
	if agencyID == "" {
		return nil, fmt.Errorf("service: %w - empty agency id", auctionerrors.ErrInvalidBid)
	}

	bids, err := s.repo.ListBidsByBidder(ctx, agencyID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list bids for agency %s: %w", agencyID, err)
	}

	auctions, err := s.resolvedAuctionsFor(ctx, bids)
	if err != nil {
		return nil, err
	}

	rows := make([]AgencyBid, 0, len(bids))
	for _, b := range bids {
		auction, ok := auctions[b.AuctionID]
		if !ok {
			continue
		}
		if statusFilter != "" && auction.Status != statusFilter {
			continue
		}
		rows = append(rows, AgencyBid{Bid: b, AuctionStatus: auction.Status})
	}
	return rows, nil
}

// ListActiveAuctions returns all auctions currently resolving to active, soonest
// ending first. A non-empty agencyID annotates each row with that agency's own
// most recent bid.
func (s *BiddingService) ListActiveAuctions(ctx context.Context, agencyID string) ([]ActiveAuction, error) {
	auctions, err := s.repo.ListAuctions(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list auctions: %w", err)
	}

	var lastBids map[string]model.Bid
	if agencyID != "" {
		lastBids, err = s.lastBidPerAuction(ctx, agencyID)
		if err != nil {
			return nil, err
		}
	}

	rows := make([]ActiveAuction, 0, len(auctions))
	for _, a := range auctions {
		a = s.resolveAndPersist(ctx, a)
		if a.Status != model.StatusActive {
			continue
		}
		row := ActiveAuction{Auction: a}
		if b, ok := lastBids[a.AuctionID]; ok {
			bidCopy := b
			row.MyLastBid = &bidCopy
		}
		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool {
		return rows[i].AuctionEndDate.Before(rows[j].AuctionEndDate)
	})
	return rows, nil
}

// AgencyActiveBids builds the agency dashboard: one row per
// active auction the agency has bid on, carrying the agency's last bid there and
// whether that bid still holds the highest position.
func (s *BiddingService) AgencyActiveBids(ctx context.Context, agencyID string) ([]AgencyAuctionBid, error) {
	if agencyID == "" {
		return nil, fmt.Errorf("service: %w - empty agency id", auctionerrors.ErrInvalidBid)
	}

	lastBids, err := s.lastBidPerAuction(ctx, agencyID)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(lastBids))
	for id := range lastBids {
		ids = append(ids, id)
	}
	auctions, err := s.repo.ListAuctionsByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load auctions for agency %s: %w", agencyID, err)
	}

	rows := make([]AgencyAuctionBid, 0, len(auctions))
	for _, a := range auctions {
		a = s.resolveAndPersist(ctx, a)
		if a.Status != model.StatusActive {
			continue
		}
		rows = append(rows, AgencyAuctionBid{
			Auction:      a,
			LastBid:      lastBids[a.AuctionID],
			HoldsHighest: a.CurrentHighestBidderID == agencyID,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Auction.AuctionEndDate.Before(rows[j].Auction.AuctionEndDate)
	})
	return rows, nil
}

// WonAuctions returns the auctions resolving to won whose highest bidder is the
// given agency, most recently ended first.
func (s *BiddingService) WonAuctions(ctx context.Context, agencyID string) ([]model.Auction, error) {
	if agencyID == "" {
		return nil, fmt.Errorf("service: %w - empty agency id", auctionerrors.ErrInvalidBid)
	}

	auctions, err := s.repo.ListAuctions(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list auctions: %w", err)
	}

	won := make([]model.Auction, 0)
	for _, a := range auctions {
		a = s.resolveAndPersist(ctx, a)
		if a.Status == model.StatusWon && a.CurrentHighestBidderID == agencyID {
			won = append(won, a)
		}
	}

	sort.Slice(won, func(i, j int) bool {
		return won[i].AuctionEndDate.After(won[j].AuctionEndDate)
	})
	return won, nil
}

// CategoryAuctions groups auctions created within the trailing window by category,
// then by status relative to the querying agency: won means the agency holds the
// winning bid; active auctions sort soonest-ending first; won and closed sort most
// recently ended first, with auctions the agency participated in fronted.
func (s *BiddingService) CategoryAuctions(ctx context.Context, agencyID string, window time.Duration) ([]CategoryGroup, error) {
	if agencyID == "" {
		return nil, fmt.Errorf("service: %w - empty agency id", auctionerrors.ErrInvalidBid)
	}
	if window <= 0 {
		window = defaultReportWindow
	}

	since := s.clock.Now().Add(-window)
	auctions, err := s.repo.ListAuctionsCreatedSince(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list auctions since %s: %w", since, err)
	}

	participated, err := s.participationSet(ctx, agencyID)
	if err != nil {
		return nil, err
	}

	groups := make(map[string]*CategoryGroup)
	for _, a := range auctions {
		a = s.resolveAndPersist(ctx, a)

		g, ok := groups[a.Category]
		if !ok {
			g = &CategoryGroup{Category: a.Category}
			groups[a.Category] = g
		}

		switch {
		case a.Status == model.StatusActive:
			g.Active = append(g.Active, a)
		case a.Status == model.StatusWon && a.CurrentHighestBidderID == agencyID:
			g.Won = append(g.Won, a)
		default:
			g.Closed = append(g.Closed, a)
		}
	}

	out := make([]CategoryGroup, 0, len(groups))
	for _, g := range groups {
		sortGrouped(g.Active, participated, true)
		sortGrouped(g.Won, participated, false)
		sortGrouped(g.Closed, participated, false)
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out, nil
}

// sortGrouped orders a status group by end date (ascending for active groups,
// descending otherwise) and fronts the auctions the agency has bid on.
func sortGrouped(auctions []model.Auction, participated map[string]bool, ascending bool) {
	sort.SliceStable(auctions, func(i, j int) bool {
		pi, pj := participated[auctions[i].AuctionID], participated[auctions[j].AuctionID]
		if pi != pj {
			return pi
		}
		if ascending {
			return auctions[i].AuctionEndDate.Before(auctions[j].AuctionEndDate)
		}
		return auctions[i].AuctionEndDate.After(auctions[j].AuctionEndDate)
	})
}

// lastBidPerAuction maps each auction the agency has bid on to its most recent bid.
func (s *BiddingService) lastBidPerAuction(ctx context.Context, agencyID string) (map[string]model.Bid, error) {
	bids, err := s.repo.ListBidsByBidder(ctx, agencyID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list bids for agency %s: %w", agencyID, err)
	}

	// Bids arrive newest first; the first seen per auction is the last placed.
	last := make(map[string]model.Bid, len(bids))
	for _, b := range bids {
		if _, ok := last[b.AuctionID]; !ok {
			last[b.AuctionID] = b
		}
	}
	return last, nil
}

// participationSet is the set of auction ids the agency has bid on.
func (s *BiddingService) participationSet(ctx context.Context, agencyID string) (map[string]bool, error) {
	bids, err := s.repo.ListBidsByBidder(ctx, agencyID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list bids for agency %s: %w", agencyID, err)
	}
	set := make(map[string]bool, len(bids))
	for _, b := range bids {
		set[b.AuctionID] = true
	}
	return set, nil
}

// resolvedAuctionsFor loads and resolves the auctions referenced by a bid list.
func (s *BiddingService) resolvedAuctionsFor(ctx context.Context, bids []model.Bid) (map[string]model.Auction, error) {
	seen := make(map[string]bool, len(bids))
	ids := make([]string, 0, len(bids))
	for _, b := range bids {
		if !seen[b.AuctionID] {
			seen[b.AuctionID] = true
			ids = append(ids, b.AuctionID)
		}
	}

	auctions, err := s.repo.ListAuctionsByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load auctions for bid list: %w", err)
	}

	resolved := make(map[string]model.Auction, len(auctions))
	for _, a := range auctions {
		resolved[a.AuctionID] = s.resolveAndPersist(ctx, a)
	}
	return resolved, nil
}
