package server

import (
	"net/http"

	handler "agrimarket-auction/services/bidding/handler"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRouter configures all Gin routes for the auction service
func SetupRouter(biddingService handler.BiddingServiceInterface) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())           // recover from panics
	router.Use(RequestLoggerMiddleware)  // custom request logging
	router.Use(MetricsMiddleware)        // prometheus request metrics
	router.Use(CallerIdentityMiddleware) // identity headers attached upstream

	biddingHandler := handler.NewBiddingHandler(biddingService)

	bids := router.Group("/bids")
	{
		bids.POST("/place", biddingHandler.PlaceBidHandler)
		bids.GET("/history/:product_id", biddingHandler.BidHistoryHandler)
		bids.GET("/my-bids", biddingHandler.MyBidsHandler)
		bids.GET("/highest-bidder/:product_id", biddingHandler.HighestBidderHandler)
		bids.GET("/active-auctions", biddingHandler.ActiveAuctionsHandler)
		bids.GET("/agency-active-bids/:agency_id", biddingHandler.AgencyActiveBidsHandler)
		bids.GET("/category-wise-auctions/:agency_id", biddingHandler.CategoryWiseAuctionsHandler)
	}

	b2b := router.Group("/b2b/products")
	{
		b2b.POST("", RequireRole("seller"), biddingHandler.CreateAuctionHandler)
		b2b.POST("/:product_id/cancel", RequireRole("seller"), biddingHandler.CancelAuctionHandler)
		b2b.GET("/won-auctions/:agency_id", biddingHandler.WonAuctionsHandler)
	}

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return router
}
