package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"auction-market/internal/marketerrors"
	"auction-market/utils"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// ParseAddress reads the :address path parameter
func ParseAddress(c *gin.Context) (common.Address, error) {
	raw := strings.TrimSpace(c.Param("address"))
	if !common.IsHexAddress(raw) {
		return common.Address{}, fmt.Errorf("%w: %q", marketerrors.ErrInvalidAddress, raw)
	}
	return common.HexToAddress(raw), nil
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, marketerrors.ErrInvalidAddress):
		return http.StatusBadRequest, "invalid auction address"
	case errors.Is(err, marketerrors.ErrAuctionNotFound):
		return http.StatusNotFound, "auction not found"
	case errors.Is(err, marketerrors.ErrMetadataNotFound):
		return http.StatusNotFound, "metadata not found"
	case errors.Is(err, marketerrors.ErrInvalidBid), errors.Is(err, marketerrors.ErrBidTooLarge):
		return http.StatusBadRequest, "invalid bid amount"
	case errors.Is(err, marketerrors.ErrInvalidAuction):
		return http.StatusBadRequest, "invalid auction details"
	case errors.Is(err, marketerrors.ErrAuctionClosed):
		return http.StatusConflict, "auction is closed"
	case errors.Is(err, marketerrors.ErrNotRevealPhase):
		return http.StatusConflict, "auction is not in reveal phase"
	case errors.Is(err, marketerrors.ErrAuctionActive):
		return http.StatusConflict, "auction is still active"
	case errors.Is(err, marketerrors.ErrAlreadyFinalized):
		return http.StatusConflict, "auction already finalized"
	case errors.Is(err, marketerrors.ErrWalletMissing):
		return http.StatusServiceUnavailable, "no wallet found"
	case errors.Is(err, marketerrors.ErrWrongNetwork):
		return http.StatusServiceUnavailable, "wrong network"
	case errors.Is(err, marketerrors.ErrNoCreatedEvent):
		return http.StatusBadGateway, "create failed: no event parsed"
	case errors.Is(err, marketerrors.ErrTxReverted):
		return http.StatusBadGateway, "transaction reverted"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// RespondError writes the mapped status with the original error text
func RespondError(c *gin.Context, handlerName string, err error, fields map[string]any) {
	status, message := MapErrorToHTTP(err)
	utils.JSONError(c, status, err, message)
	logError(handlerName, message, status, err, fields)
}

// RespondPartialError is RespondError for a multi-step write that failed
// after some steps were already confirmed on-chain. The confirmed
// transactions are returned as data so the client doesn't resend them.
func RespondPartialError(c *gin.Context, handlerName string, err error, confirmed []TxResponse, fields map[string]any) {
	status, message := MapErrorToHTTP(err)
	utils.JSONErrorWithData(c, status, err, message, confirmed)

	if fields == nil {
		fields = map[string]any{}
	}
	fields["confirmed"] = len(confirmed)
	logError(handlerName, message, status, err, fields)
}

func logError(handlerName, message string, status int, err error, fields map[string]any) {
	if fields == nil {
		fields = map[string]any{}
	}
	fields["handler"] = handlerName
	fields["status"] = status
	fields["error"] = err.Error()
	if status >= http.StatusInternalServerError {
		utils.Error(handlerName+": "+message, fields)
		return
	}
	utils.Warn(handlerName+": "+message, fields)
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
