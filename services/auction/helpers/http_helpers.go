package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"auction-marketplace/internal/auctionerrors"
	"auction-marketplace/utils"

	"github.com/gin-gonic/gin"
)

const timeFormat = time.RFC3339

// identityKey is the gin context key holding the authenticated user id
const identityKey = "auth_user_id"

// RequireIdentity extracts the caller's identity from the X-User-ID
// header and aborts with 401 when it is missing. The header stands in
// for the external identity provider; downstream code always receives
// the identity explicitly instead of reading ambient state.
func RequireIdentity(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	if userID == "" {
		utils.JSONError(c, http.StatusUnauthorized, errors.New("missing X-User-ID header"), "authentication required")
		c.Abort()
		return
	}
	c.Set(identityKey, userID)
	c.Next()
}

// IdentityFrom returns the authenticated user id set by RequireIdentity
func IdentityFrom(c *gin.Context) string {
	return c.GetString(identityKey)
}

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrListingNotFound):
		return http.StatusNotFound, "listing not found"
	case errors.Is(err, auctionerrors.ErrNoBids):
		return http.StatusNotFound, "no bids recorded for listing"
	case errors.Is(err, auctionerrors.ErrInvalidListing):
		return http.StatusBadRequest, "invalid listing details"
	case errors.Is(err, auctionerrors.ErrInvalidBid):
		return http.StatusBadRequest, "invalid bid details"
	case errors.Is(err, auctionerrors.ErrInvalidComment):
		return http.StatusBadRequest, "invalid comment details"
	case errors.Is(err, auctionerrors.ErrSellerCannotBid):
		return http.StatusForbidden, "you can't bid on your own listing"
	case errors.Is(err, auctionerrors.ErrNotSeller):
		return http.StatusForbidden, "only the seller may close this auction"
	case errors.Is(err, auctionerrors.ErrAuctionClosed):
		return http.StatusConflict, "this auction is closed, no more bids are allowed"
	case errors.Is(err, auctionerrors.ErrBidTooLow):
		return http.StatusConflict, "bid amount too low"
	case errors.Is(err, auctionerrors.ErrAlreadyClosed):
		return http.StatusConflict, "auction already closed"
	case errors.Is(err, auctionerrors.ErrUserHasActiveAuctions):
		return http.StatusConflict, "user still has active listings or bids"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
