package bidding

import (
	"context"
	"errors"
	"fmt"

	"agrimarket-auction/internal/auctionerrors"
	"agrimarket-auction/internal/metrics"
	model "agrimarket-auction/internal/models"
	"agrimarket-auction/utils"
)

// ResolveStatus derives an auction's effective status against the injected clock.
// Terminal statuses pass through unchanged; a still-stored-active auction whose end
// date has passed resolves to won when it has bids and closed otherwise. Pure and
// idempotent: no background sweeper exists, expiry is derived on every read.
func (s *BiddingService) ResolveStatus(auction model.Auction) model.Auction {
	if auction.Status.IsTerminal() {
		return auction
	}
	if !s.clock.Now().Before(auction.AuctionEndDate) {
		if auction.HasBids() {
			auction.Status = model.StatusWon
		} else {
			auction.Status = model.StatusClosed
		}
	}
	return auction
}

// resolveAndPersist resolves the status and, when resolution flipped an expired
// auction, writes the terminal status back as an optimization. A lost write race
// means another reader already persisted the same flip and is ignored.
func (s *BiddingService) resolveAndPersist(ctx context.Context, auction model.Auction) model.Auction {
	resolved := s.ResolveStatus(auction)
	if resolved.Status == auction.Status {
		return resolved
	}

	metrics.AuctionsExpiredTotal.WithLabelValues(string(resolved.Status)).Inc()
	if _, err := s.repo.UpdateStatus(ctx, auction.AuctionID, auction.Status, resolved.Status); err != nil &&
		!errors.Is(err, auctionerrors.ErrConcurrentConflict) {
		utils.Warn("service: failed to persist resolved auction status", map[string]any{
			"auction_id": auction.AuctionID,
			"status":     string(resolved.Status),
			"error":      err.Error(),
		})
	}
	return resolved
}

// CancelAuction permanently cancels an auction. Only the owning seller may cancel,
// and only while the auction still resolves to active. There is no un-cancel.
func (s *BiddingService) CancelAuction(ctx context.Context, auctionID, callerID string) (model.Auction, error) {
	if auctionID == "" || callerID == "" {
		return model.Auction{}, fmt.Errorf("service: %w - missing auction or caller id", auctionerrors.ErrInvalidAuction)
	}

	auction, err := s.repo.GetAuction(ctx, auctionID)
	if err != nil {
		return model.Auction{}, fmt.Errorf("service: %w", err)
	}

	if auction.SellerID != callerID {
		return model.Auction{}, fmt.Errorf("service: caller %s does not own auction %s: %w",
			callerID, auctionID, auctionerrors.ErrUnauthorized)
	}

	auction = s.resolveAndPersist(ctx, auction)
	if auction.Status != model.StatusActive {
		return model.Auction{}, fmt.Errorf("service: auction %s is %s: %w", auctionID, auction.Status, auctionerrors.ErrAuctionClosed)
	}

	cancelled, err := s.repo.UpdateStatus(ctx, auctionID, model.StatusActive, model.StatusCancelled)
	if err != nil {
		// A lost race means the auction left active between the read and the write.
		if errors.Is(err, auctionerrors.ErrConcurrentConflict) {
			return model.Auction{}, fmt.Errorf("service: auction %s left active state concurrently: %w",
				auctionID, auctionerrors.ErrAuctionClosed)
		}
		return model.Auction{}, fmt.Errorf("service: failed to cancel auction %s: %w", auctionID, err)
	}

	metrics.AuctionsCancelledTotal.Inc()
	if cerr := s.cache.InvalidateAuction(ctx, auctionID); cerr != nil {
		utils.Warn("service: cache invalidation failed after cancel", map[string]any{
			"auction_id": auctionID,
			"error":      cerr.Error(),
		})
	}
	return cancelled, nil
}
