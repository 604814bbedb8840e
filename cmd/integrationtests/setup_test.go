package integrationtests

import (
	bidding "agrimarket-auction/internal/biddingService"
	model "agrimarket-auction/internal/models"
	"agrimarket-auction/internal/repository"
	"agrimarket-auction/internal/server"
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

// testClock is a controllable clock so expiry scenarios do not have to sleep.
type testClock struct {
	mu sync.Mutex
	t  time.Time
}

func newTestClock(t time.Time) *testClock {
	return &testClock{t: t}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

// SetupTestRouter initializes the router with an in-memory repository seeded
// with the given auctions, driven by the given clock.
func SetupTestRouter(t *testing.T, clk *testClock, auctions ...model.Auction) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := repository.NewMemoryRepo()
	for _, a := range auctions {
		if err := repo.CreateAuction(context.Background(), a); err != nil {
			t.Fatalf("failed to seed auction %s: %v", a.AuctionID, err)
		}
	}

	service := bidding.NewBiddingService(repo, clk, nil, 5)
	return server.SetupRouter(service)
}

// ExecuteRequestAndParse executes an HTTP request on the given router and parses the response
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	return ExecuteRequestAs(t, router, method, url, body, "", "")
}

// ExecuteRequestAs is ExecuteRequestAndParse with the identity headers the
// upstream gateway would attach.
func ExecuteRequestAs(t *testing.T, router *gin.Engine, method, url string, body any, callerID, callerRole string) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if callerID != "" {
		req.Header.Set("X-Caller-Id", callerID)
	}
	if callerRole != "" {
		req.Header.Set("X-Caller-Role", callerRole)
	}
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}

	return resp, w
}

// activeAuction builds a seed auction in the active state.
func activeAuction(id, seller, category string, minPrice float64, end time.Time) model.Auction {
	return model.Auction{
		AuctionID:      id,
		SellerID:       seller,
		Title:          "Produce " + id,
		Category:       category,
		MinPrice:       minPrice,
		MaxPrice:       minPrice * 3,
		UnitPrice:      2.5,
		UnitType:       "kg",
		TotalStock:     1000,
		AuctionEndDate: end,
		Status:         model.StatusActive,
		CreatedAt:      end.Add(-30 * 24 * time.Hour),
	}
}
