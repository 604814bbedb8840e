package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"agrimarket-auction/config"
	bidding "agrimarket-auction/internal/biddingService"
	"agrimarket-auction/internal/cache"
	model "agrimarket-auction/internal/models"
	"agrimarket-auction/internal/repository"
	"agrimarket-auction/internal/server"
	"agrimarket-auction/utils"
)

func main() {
	cfg := config.Load()
	utils.SetDebug(cfg.Server.Env == "development")

	repo, err := buildStore(cfg)
	if err != nil {
		utils.Fatal("failed to initialize auction store", map[string]any{"error": err.Error()})
	}

	cacheClient := buildCache(cfg)
	clock := utils.RealClock{}

	biddingSvc := bidding.NewBiddingService(repo, clock, cacheClient, cfg.Bidding.AdmissionRetries)

	if cfg.Bidding.SeedDemoData {
		if memRepo, ok := repo.(*repository.MemoryRepo); ok {
			seedDemoAuctions(memRepo, clock)
		}
	}

	router := server.SetupRouter(biddingSvc)

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	utils.Info("starting auction server", map[string]any{"addr": addr, "env": cfg.Server.Env})
	if err := router.Run(addr); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// buildStore selects Postgres when a DATABASE_URL is configured, else in-memory
func buildStore(cfg *config.Config) (repository.AuctionStore, error) {
	if cfg.Database.URL == "" {
		utils.Info("using in-memory auction store", nil)
		return repository.NewMemoryRepo(), nil
	}

	pg, err := repository.NewPostgresRepo(cfg.Database.URL)
	if err != nil {
		return nil, err
	}
	if err := pg.EnsureSchema(context.Background()); err != nil {
		return nil, err
	}
	utils.Info("using postgres auction store", nil)
	return pg, nil
}

// buildCache returns nil when no Redis address is configured; the service treats
// a nil cache as disabled
func buildCache(cfg *config.Config) *cache.Client {
	if cfg.Redis.Addr == "" {
		return nil
	}

	ttl := time.Duration(cfg.Bidding.CacheTTLSeconds) * time.Second
	cacheClient, err := cache.NewClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, ttl)
	if err != nil {
		utils.Warn("redis unavailable, continuing without read cache", map[string]any{"error": err.Error()})
		return nil
	}
	return cacheClient
}

// seedDemoAuctions adds sample auctions to the in-memory repo
func seedDemoAuctions(repo *repository.MemoryRepo, clock utils.Clock) {
	now := clock.Now()
	auctions := []model.Auction{
		{
			AuctionID: "auction1", SellerID: "seller1", Title: "Basmati Rice", Category: "grains",
			MinPrice: 100, MaxPrice: 200, UnitPrice: 2.5, UnitType: "kg", TotalStock: 500,
			AuctionEndDate: now.Add(48 * time.Hour), Status: model.StatusActive, CreatedAt: now,
		},
		{
			AuctionID: "auction2", SellerID: "seller1", Title: "Alphonso Mangoes", Category: "fruits",
			MinPrice: 250, MaxPrice: 600, UnitPrice: 12, UnitType: "crate", TotalStock: 80,
			AuctionEndDate: now.Add(24 * time.Hour), Status: model.StatusActive, CreatedAt: now,
		},
		{
			AuctionID: "auction3", SellerID: "seller2", Title: "Red Onions", Category: "vegetables",
			MinPrice: 150, MaxPrice: 400, UnitPrice: 1.8, UnitType: "kg", TotalStock: 1200,
			AuctionEndDate: now.Add(72 * time.Hour), Status: model.StatusActive, CreatedAt: now,
		},
	}

	for _, a := range auctions {
		if err := repo.CreateAuction(context.Background(), a); err != nil {
			utils.Warn("failed to seed demo auction", map[string]any{"auction_id": a.AuctionID, "error": err.Error()})
		}
	}
	utils.Info("seeded demo auctions", map[string]any{"count": len(auctions)})
}
