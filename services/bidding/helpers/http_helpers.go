package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"agrimarket-auction/internal/auctionerrors"
	"agrimarket-auction/utils"

	"github.com/gin-gonic/gin"
)

// Gin context keys populated by the caller-identity middleware.
const (
	ContextCallerID   = "caller_id"
	ContextCallerRole = "caller_role"
)

// Caller roles attached upstream by the identity service.
const (
	RoleAgency = "agency"
	RoleSeller = "seller"
)

// CallerID returns the authenticated caller id attached by the identity middleware
func CallerID(c *gin.Context) string {
	return c.GetString(ContextCallerID)
}

// CallerRole returns the authenticated caller role attached by the identity middleware
func CallerRole(c *gin.Context) string {
	return c.GetString(ContextCallerRole)
}

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, "invalid_request", wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status, machine-readable kind,
// and human-readable message. Every rejection names its specific reason so the
// submitting agency can correct and resubmit.
func MapErrorToHTTP(err error) (int, string, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrAuctionNotFound):
		return http.StatusNotFound, "not_found", "auction not found"
	case errors.Is(err, auctionerrors.ErrNoBids):
		return http.StatusNotFound, "no_bids", "no bids placed on this auction yet"
	case errors.Is(err, auctionerrors.ErrAuctionClosed):
		return http.StatusBadRequest, "auction_closed", "auction has ended or is no longer active"
	case errors.Is(err, auctionerrors.ErrInvalidAmount):
		return http.StatusBadRequest, "invalid_amount", "bid amount must be positive"
	case errors.Is(err, auctionerrors.ErrBelowMinimumPrice):
		return http.StatusBadRequest, "below_minimum_price", "bid amount is below the auction minimum price"
	case errors.Is(err, auctionerrors.ErrBidTooLow):
		return http.StatusBadRequest, "bid_too_low", "bid must be strictly above the current highest bid"
	case errors.Is(err, auctionerrors.ErrUnauthorized):
		return http.StatusForbidden, "unauthorized", "caller not permitted to perform this action"
	case errors.Is(err, auctionerrors.ErrConcurrentConflict):
		return http.StatusConflict, "conflict", "auction updated concurrently, please retry"
	case errors.Is(err, auctionerrors.ErrDuplicateID):
		return http.StatusConflict, "conflict", "auction id already exists"
	case errors.Is(err, auctionerrors.ErrInvalidBid), errors.Is(err, auctionerrors.ErrInvalidAuction):
		return http.StatusBadRequest, "invalid_request", "invalid request details"
	default:
		return http.StatusInternalServerError, "internal", "internal server error"
	}
}

// RespondError maps err and writes the JSON rejection plus a warn log entry
func RespondError(c *gin.Context, handlerName string, err error, ctx map[string]any) {
	status, kind, message := MapErrorToHTTP(err)
	utils.JSONError(c, status, kind, fmt.Errorf("%s: %w", message, err), message)

	if ctx == nil {
		ctx = map[string]any{}
	}
	ctx["error"] = err.Error()
	utils.Warn(handlerName+": request failed", ctx)
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
