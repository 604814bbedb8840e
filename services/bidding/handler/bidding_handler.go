package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"agrimarket-auction/internal/auctionerrors"
	bidding "agrimarket-auction/internal/biddingService"
	model "agrimarket-auction/internal/models"
	"agrimarket-auction/services/bidding/helpers"
	"agrimarket-auction/utils"

	"github.com/gin-gonic/gin"
)

// BiddingServiceInterface is the handler-facing contract of the bidding service.
type BiddingServiceInterface interface {
	PlaceBid(ctx context.Context, auctionID, bidderID string, amount float64) (model.Bid, error)
	GetBidHistory(ctx context.Context, auctionID string, page, limit int) (bidding.BidHistory, error)
	GetHighestBidder(ctx context.Context, auctionID string) (bidding.HighestBid, error)
	ListAgencyBids(ctx context.Context, agencyID string, statusFilter model.AuctionStatus) ([]bidding.AgencyBid, error)
	ListActiveAuctions(ctx context.Context, agencyID string) ([]bidding.ActiveAuction, error)
	AgencyActiveBids(ctx context.Context, agencyID string) ([]bidding.AgencyAuctionBid, error)
	WonAuctions(ctx context.Context, agencyID string) ([]model.Auction, error)
	CategoryAuctions(ctx context.Context, agencyID string, window time.Duration) ([]bidding.CategoryGroup, error)
	CancelAuction(ctx context.Context, auctionID, callerID string) (model.Auction, error)
	CreateAuction(ctx context.Context, p bidding.CreateAuctionParams) (model.Auction, error)
}

type BiddingHandler struct {
	service BiddingServiceInterface
}

func NewBiddingHandler(service BiddingServiceInterface) *BiddingHandler {
	return &BiddingHandler{service: service}
}

const recentHistorySize = 5

// PlaceBidHandler handles POST /bids/place
func (h *BiddingHandler) PlaceBidHandler(c *gin.Context) {
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	ctx := c.Request.Context()
	bid, err := h.service.PlaceBid(ctx, req.ProductID, req.AgencyID, req.Amount)
	if err != nil {
		helpers.RespondError(c, "PlaceBidHandler", err, map[string]any{
			"product_id": req.ProductID,
			"agency_id":  req.AgencyID,
			"amount":     req.Amount,
		})
		return
	}

	resp := helpers.PlaceBidResponse{
		Bid:        helpers.ToBidResponse(bid),
		RecentBids: []helpers.BidResponse{},
	}
	// Recent history is informational; its failure does not undo an admitted bid.
	if history, herr := h.service.GetBidHistory(ctx, req.ProductID, 1, recentHistorySize); herr == nil {
		resp.RecentBids = helpers.ToBidResponses(history.Bids)
	}

	utils.JSONResponse(c, http.StatusCreated, resp, "bid placed successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid placed successfully", map[string]any{
		"bid_id":     bid.BidID,
		"product_id": bid.AuctionID,
		"agency_id":  bid.BidderID,
		"amount":     bid.Amount,
	})
}

// BidHistoryHandler handles GET /bids/history/:product_id
func (h *BiddingHandler) BidHistoryHandler(c *gin.Context) {
	productID := c.Param("product_id")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	history, err := h.service.GetBidHistory(c.Request.Context(), productID, page, limit)
	if err != nil {
		helpers.RespondError(c, "BidHistoryHandler", err, map[string]any{"product_id": productID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{
		"product_id": history.AuctionID,
		"bids":       helpers.ToBidResponses(history.Bids),
		"page":       history.Page,
		"limit":      history.Limit,
		"total_bids": history.TotalBids,
		"stats":      history.Stats,
	}, "bid history retrieved successfully")
	helpers.LogSuccess("BidHistoryHandler", "bid history retrieved successfully", map[string]any{
		"product_id": productID,
		"count":      len(history.Bids),
		"total":      history.TotalBids,
	})
}

// MyBidsHandler handles GET /bids/my-bids
func (h *BiddingHandler) MyBidsHandler(c *gin.Context) {
	agencyID := c.Query("agency_id")
	if agencyID == "" {
		agencyID = helpers.CallerID(c)
	}

	var statusFilter model.AuctionStatus
	if raw := c.Query("status"); raw != "" {
		statusFilter = model.AuctionStatus(raw)
		switch statusFilter {
		case model.StatusActive, model.StatusCancelled, model.StatusClosed, model.StatusWon:
		default:
			utils.JSONError(c, http.StatusBadRequest, "invalid_request",
				errors.New("unknown status filter: "+raw), "unknown status filter")
			return
		}
	}

	rows, err := h.service.ListAgencyBids(c.Request.Context(), agencyID, statusFilter)
	if err != nil {
		helpers.RespondError(c, "MyBidsHandler", err, map[string]any{"agency_id": agencyID})
		return
	}
	if rows == nil {
		rows = []bidding.AgencyBid{}
	}

	utils.JSONResponse(c, http.StatusOK, rows, "bids retrieved successfully")
	helpers.LogSuccess("MyBidsHandler", "bids retrieved successfully", map[string]any{
		"agency_id": agencyID,
		"count":     len(rows),
	})
}

// HighestBidderHandler handles GET /bids/highest-bidder/:product_id
func (h *BiddingHandler) HighestBidderHandler(c *gin.Context) {
	productID := c.Param("product_id")

	highest, err := h.service.GetHighestBidder(c.Request.Context(), productID)
	if err != nil {
		if errors.Is(err, auctionerrors.ErrNoBids) {
			utils.JSONError(c, http.StatusNotFound, "no_bids", err, "no bids placed on this auction yet")
			utils.Info("HighestBidderHandler: no bids yet", map[string]any{"product_id": productID})
			return
		}
		helpers.RespondError(c, "HighestBidderHandler", err, map[string]any{"product_id": productID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, highest, "highest bidder retrieved successfully")
	helpers.LogSuccess("HighestBidderHandler", "highest bidder retrieved successfully", map[string]any{
		"product_id": productID,
		"agency_id":  highest.BidderID,
		"amount":     highest.Amount,
	})
}

// ActiveAuctionsHandler handles GET /bids/active-auctions
func (h *BiddingHandler) ActiveAuctionsHandler(c *gin.Context) {
	agencyID := c.Query("agency_id")

	rows, err := h.service.ListActiveAuctions(c.Request.Context(), agencyID)
	if err != nil {
		helpers.RespondError(c, "ActiveAuctionsHandler", err, map[string]any{"agency_id": agencyID})
		return
	}
	if rows == nil {
		rows = []bidding.ActiveAuction{}
	}

	utils.JSONResponse(c, http.StatusOK, rows, "active auctions retrieved successfully")
	helpers.LogSuccess("ActiveAuctionsHandler", "active auctions retrieved successfully", map[string]any{
		"agency_id": agencyID,
		"count":     len(rows),
	})
}

// AgencyActiveBidsHandler handles GET /bids/agency-active-bids/:agency_id
func (h *BiddingHandler) AgencyActiveBidsHandler(c *gin.Context) {
	agencyID := c.Param("agency_id")

	rows, err := h.service.AgencyActiveBids(c.Request.Context(), agencyID)
	if err != nil {
		helpers.RespondError(c, "AgencyActiveBidsHandler", err, map[string]any{"agency_id": agencyID})
		return
	}
	if rows == nil {
		rows = []bidding.AgencyAuctionBid{}
	}

	utils.JSONResponse(c, http.StatusOK, rows, "agency active bids retrieved successfully")
	helpers.LogSuccess("AgencyActiveBidsHandler", "agency active bids retrieved successfully", map[string]any{
		"agency_id": agencyID,
		"count":     len(rows),
	})
}

// CategoryWiseAuctionsHandler handles GET /bids/category-wise-auctions/:agency_id
func (h *BiddingHandler) CategoryWiseAuctionsHandler(c *gin.Context) {
	agencyID := c.Param("agency_id")

	windowDays, _ := strconv.Atoi(c.DefaultQuery("window_days", "30"))
	window := time.Duration(windowDays) * 24 * time.Hour

	groups, err := h.service.CategoryAuctions(c.Request.Context(), agencyID, window)
	if err != nil {
		helpers.RespondError(c, "CategoryWiseAuctionsHandler", err, map[string]any{"agency_id": agencyID})
		return
	}
	if groups == nil {
		groups = []bidding.CategoryGroup{}
	}

	utils.JSONResponse(c, http.StatusOK, groups, "category-wise auctions retrieved successfully")
	helpers.LogSuccess("CategoryWiseAuctionsHandler", "category-wise auctions retrieved successfully", map[string]any{
		"agency_id":   agencyID,
		"window_days": windowDays,
		"categories":  len(groups),
	})
}
