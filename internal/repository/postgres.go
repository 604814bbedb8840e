package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"agrimarket-auction/internal/auctionerrors"
	model "agrimarket-auction/internal/models"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// PostgresRepo is a Postgres-backed implementation of AuctionStore. The admission
// check-and-update runs inside one transaction holding the auction's row lock, so
// concurrent bids against the same auction serialize at the row while bids against
// different auctions proceed in parallel.
type PostgresRepo struct {
	db *sqlx.DB
}

// NewPostgresRepo connects to Postgres and verifies the connection
func NewPostgresRepo(databaseURL string) (*PostgresRepo, error) {
	db, err := sqlx.Connect("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresRepo{db: db}, nil
}

// Close closes the database connection
func (r *PostgresRepo) Close() error {
	return r.db.Close()
}

// EnsureSchema creates the auctions and bids tables if they do not exist
func (r *PostgresRepo) EnsureSchema(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS auctions (
		auction_id                TEXT PRIMARY KEY,
		seller_id                 TEXT NOT NULL,
		title                     TEXT NOT NULL DEFAULT '',
		category                  TEXT NOT NULL DEFAULT '',
		min_price                 DOUBLE PRECISION NOT NULL,
		max_price                 DOUBLE PRECISION NOT NULL,
		unit_price                DOUBLE PRECISION NOT NULL DEFAULT 0,
		unit_type                 TEXT NOT NULL DEFAULT '',
		total_stock               INTEGER NOT NULL DEFAULT 0,
		current_highest_bid       DOUBLE PRECISION NOT NULL DEFAULT 0,
		current_highest_bidder_id TEXT NOT NULL DEFAULT '',
		auction_end_date          TIMESTAMPTZ NOT NULL,
		status                    TEXT NOT NULL,
		created_at                TIMESTAMPTZ NOT NULL
	);
	CREATE TABLE IF NOT EXISTS bids (
		bid_id       TEXT PRIMARY KEY,
		auction_id   TEXT NOT NULL REFERENCES auctions (auction_id),
		bidder_id    TEXT NOT NULL,
		amount       DOUBLE PRECISION NOT NULL,
		submitted_at TIMESTAMPTZ NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_bids_auction_submitted ON bids (auction_id, submitted_at DESC);
	CREATE INDEX IF NOT EXISTS idx_bids_bidder ON bids (bidder_id, submitted_at DESC);
	CREATE INDEX IF NOT EXISTS idx_auctions_created ON auctions (created_at);`

	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

// CreateAuction inserts a new auction record
func (r *PostgresRepo) CreateAuction(ctx context.Context, auction model.Auction) error {
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO auctions (auction_id, seller_id, title, category, min_price, max_price,
			unit_price, unit_type, total_stock, current_highest_bid, current_highest_bidder_id,
			auction_end_date, status, created_at)
		VALUES (:auction_id, :seller_id, :title, :category, :min_price, :max_price,
			:unit_price, :unit_type, :total_stock, :current_highest_bid, :current_highest_bidder_id,
			:auction_end_date, :status, :created_at)`, auction)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return fmt.Errorf("create auction %s: %w", auction.AuctionID, auctionerrors.ErrDuplicateID)
		}
		return fmt.Errorf("create auction %s: %w", auction.AuctionID, err)
	}
	return nil
}

// GetAuction retrieves an auction by id
func (r *PostgresRepo) GetAuction(ctx context.Context, auctionID string) (model.Auction, error) {
	var auction model.Auction
	err := r.db.GetContext(ctx, &auction, "SELECT * FROM auctions WHERE auction_id = $1", auctionID)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Auction{}, fmt.Errorf("get auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	if err != nil {
		return model.Auction{}, fmt.Errorf("get auction %s: %w", auctionID, err)
	}
	return auction, nil
}

// AdmitBid appends the bid and advances the highest-bid pointer inside one
// transaction, conditional on the highest bid still matching expectedHighest.
func (r *PostgresRepo) AdmitBid(ctx context.Context, bid model.Bid, expectedHighest float64) (model.Bid, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return model.Bid{}, fmt.Errorf("admit bid on auction %s: %w", bid.AuctionID, err)
	}
	defer tx.Rollback()

	var row struct {
		CurrentHighestBid float64             `db:"current_highest_bid"`
		Status            model.AuctionStatus `db:"status"`
	}
	err = tx.GetContext(ctx, &row,
		"SELECT current_highest_bid, status FROM auctions WHERE auction_id = $1 FOR UPDATE", bid.AuctionID)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Bid{}, fmt.Errorf("admit bid on auction %s: %w", bid.AuctionID, auctionerrors.ErrAuctionNotFound)
	}
	if err != nil {
		return model.Bid{}, fmt.Errorf("admit bid on auction %s: failed to lock auction row: %w", bid.AuctionID, err)
	}

	if row.Status != model.StatusActive {
		return model.Bid{}, fmt.Errorf("admit bid on auction %s: %w", bid.AuctionID, auctionerrors.ErrAuctionClosed)
	}
	if row.CurrentHighestBid != expectedHighest {
		return model.Bid{}, fmt.Errorf("admit bid on auction %s: highest moved from %.2f to %.2f: %w",
			bid.AuctionID, expectedHighest, row.CurrentHighestBid, auctionerrors.ErrConcurrentConflict)
	}

	// Submission times stay strictly increasing per auction regardless of caller
	// clock skew; the row lock serializes this read with other admissions.
	err = tx.GetContext(ctx, &bid.SubmittedAt, `
		SELECT GREATEST(
			$2::timestamptz,
			COALESCE((SELECT MAX(submitted_at) + interval '1 microsecond' FROM bids WHERE auction_id = $1), $2::timestamptz)
		)`, bid.AuctionID, bid.SubmittedAt)
	if err != nil {
		return model.Bid{}, fmt.Errorf("admit bid on auction %s: %w", bid.AuctionID, err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO bids (bid_id, auction_id, bidder_id, amount, submitted_at)
		VALUES ($1, $2, $3, $4, $5)`,
		bid.BidID, bid.AuctionID, bid.BidderID, bid.Amount, bid.SubmittedAt)
	if err != nil {
		return model.Bid{}, fmt.Errorf("admit bid on auction %s: failed to append ledger entry: %w", bid.AuctionID, err)
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE auctions SET current_highest_bid = $1, current_highest_bidder_id = $2
		WHERE auction_id = $3`,
		bid.Amount, bid.BidderID, bid.AuctionID)
	if err != nil {
		return model.Bid{}, fmt.Errorf("admit bid on auction %s: failed to advance highest bid: %w", bid.AuctionID, err)
	}

	if err := tx.Commit(); err != nil {
		return model.Bid{}, fmt.Errorf("admit bid on auction %s: %w", bid.AuctionID, err)
	}
	return bid, nil
}

// UpdateStatus transitions the auction status with a conditional update
func (r *PostgresRepo) UpdateStatus(ctx context.Context, auctionID string, from, to model.AuctionStatus) (model.Auction, error) {
	var auction model.Auction
	err := r.db.GetContext(ctx, &auction, `
		UPDATE auctions SET status = $1
		WHERE auction_id = $2 AND status = $3
		RETURNING *`, to, auctionID, from)
	if errors.Is(err, sql.ErrNoRows) {
		// Distinguish a missing auction from a lost status race.
		if _, getErr := r.GetAuction(ctx, auctionID); getErr != nil {
			return model.Auction{}, getErr
		}
		return model.Auction{}, fmt.Errorf("update status of auction %s: stored status is not %s: %w",
			auctionID, from, auctionerrors.ErrConcurrentConflict)
	}
	if err != nil {
		return model.Auction{}, fmt.Errorf("update status of auction %s: %w", auctionID, err)
	}
	return auction, nil
}

// ListAuctions returns every auction record, oldest first
func (r *PostgresRepo) ListAuctions(ctx context.Context) ([]model.Auction, error) {
	auctions := []model.Auction{}
	err := r.db.SelectContext(ctx, &auctions, "SELECT * FROM auctions ORDER BY created_at, auction_id")
	if err != nil {
		return nil, fmt.Errorf("list auctions: %w", err)
	}
	return auctions, nil
}

// ListAuctionsByIDs returns the auctions matching the given ids
func (r *PostgresRepo) ListAuctionsByIDs(ctx context.Context, auctionIDs []string) ([]model.Auction, error) {
	if len(auctionIDs) == 0 {
		return []model.Auction{}, nil
	}

	query, args, err := sqlx.In("SELECT * FROM auctions WHERE auction_id IN (?)", auctionIDs)
	if err != nil {
		return nil, fmt.Errorf("list auctions by ids: %w", err)
	}
	query = r.db.Rebind(query)

	auctions := []model.Auction{}
	if err := r.db.SelectContext(ctx, &auctions, query, args...); err != nil {
		return nil, fmt.Errorf("list auctions by ids: %w", err)
	}
	return auctions, nil
}

// ListAuctionsCreatedSince returns auctions created at or after the given time
func (r *PostgresRepo) ListAuctionsCreatedSince(ctx context.Context, since time.Time) ([]model.Auction, error) {
	auctions := []model.Auction{}
	err := r.db.SelectContext(ctx, &auctions,
		"SELECT * FROM auctions WHERE created_at >= $1 ORDER BY created_at, auction_id", since)
	if err != nil {
		return nil, fmt.Errorf("list auctions created since %s: %w", since, err)
	}
	return auctions, nil
}

// ListBidsByAuction returns one ledger page, newest first, plus the total count
func (r *PostgresRepo) ListBidsByAuction(ctx context.Context, auctionID string, offset, limit int) ([]model.Bid, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM bids WHERE auction_id = $1", auctionID)
	if err != nil {
		return nil, 0, fmt.Errorf("count bids for auction %s: %w", auctionID, err)
	}

	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		return []model.Bid{}, total, nil
	}

	bids := []model.Bid{}
	err = r.db.SelectContext(ctx, &bids, `
		SELECT * FROM bids WHERE auction_id = $1
		ORDER BY submitted_at DESC
		OFFSET $2 LIMIT $3`, auctionID, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("list bids for auction %s: %w", auctionID, err)
	}
	return bids, total, nil
}

// BidStats aggregates over the auction's entire ledger
func (r *PostgresRepo) BidStats(ctx context.Context, auctionID string) (model.BidStats, error) {
	var stats model.BidStats
	err := r.db.GetContext(ctx, &stats, `
		SELECT COUNT(*)                     AS count,
		       COALESCE(MIN(amount), 0)     AS min_amount,
		       COALESCE(MAX(amount), 0)     AS max_amount,
		       COALESCE(ROUND(AVG(amount)::numeric, 4), 0)::double precision AS avg_amount
		FROM bids WHERE auction_id = $1`, auctionID)
	if err != nil {
		return model.BidStats{}, fmt.Errorf("bid stats for auction %s: %w", auctionID, err)
	}
	return stats, nil
}

// ListBidsByBidder returns every bid placed by an agency, newest first
func (r *PostgresRepo) ListBidsByBidder(ctx context.Context, bidderID string) ([]model.Bid, error) {
	bids := []model.Bid{}
	err := r.db.SelectContext(ctx, &bids,
		"SELECT * FROM bids WHERE bidder_id = $1 ORDER BY submitted_at DESC", bidderID)
	if err != nil {
		return nil, fmt.Errorf("list bids for bidder %s: %w", bidderID, err)
	}
	return bids, nil
}
