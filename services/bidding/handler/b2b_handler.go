package handler

import (
	"net/http"

	model "agrimarket-auction/internal/models"
	"agrimarket-auction/services/bidding/helpers"
	"agrimarket-auction/utils"

	"github.com/gin-gonic/gin"
)

// CreateAuctionHandler handles POST /b2b/products. The product itself lives in the
// external catalog; this registers its auction record with the bidding engine.
func (h *BiddingHandler) CreateAuctionHandler(c *gin.Context) {
	var req helpers.CreateAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateAuctionHandler", err)
		return
	}

	sellerID := helpers.CallerID(c)
	auction, err := h.service.CreateAuction(c.Request.Context(), helpers.ToCreateAuctionParams(sellerID, req))
	if err != nil {
		helpers.RespondError(c, "CreateAuctionHandler", err, map[string]any{"seller_id": sellerID})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, auction, "auction created successfully")
	helpers.LogSuccess("CreateAuctionHandler", "auction created successfully", map[string]any{
		"auction_id": auction.AuctionID,
		"seller_id":  auction.SellerID,
		"end_date":   auction.AuctionEndDate,
	})
}

// CancelAuctionHandler handles POST /b2b/products/:product_id/cancel
func (h *BiddingHandler) CancelAuctionHandler(c *gin.Context) {
	productID := c.Param("product_id")
	callerID := helpers.CallerID(c)

	auction, err := h.service.CancelAuction(c.Request.Context(), productID, callerID)
	if err != nil {
		helpers.RespondError(c, "CancelAuctionHandler", err, map[string]any{
			"product_id": productID,
			"caller_id":  callerID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, auction, "auction cancelled successfully")
	helpers.LogSuccess("CancelAuctionHandler", "auction cancelled successfully", map[string]any{
		"auction_id": auction.AuctionID,
		"seller_id":  auction.SellerID,
	})
}

// WonAuctionsHandler handles GET /b2b/products/won-auctions/:agency_id
func (h *BiddingHandler) WonAuctionsHandler(c *gin.Context) {
	agencyID := c.Param("agency_id")

	won, err := h.service.WonAuctions(c.Request.Context(), agencyID)
	if err != nil {
		helpers.RespondError(c, "WonAuctionsHandler", err, map[string]any{"agency_id": agencyID})
		return
	}
	if won == nil {
		won = []model.Auction{}
	}

	utils.JSONResponse(c, http.StatusOK, won, "won auctions retrieved successfully")
	helpers.LogSuccess("WonAuctionsHandler", "won auctions retrieved successfully", map[string]any{
		"agency_id": agencyID,
		"count":     len(won),
	})
}
