package handler

import (
	"context"
	"net/http"

	market "auction-market/internal/marketService"
	"auction-market/internal/models"
	"auction-market/services/market/helpers"
	"auction-market/utils"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
)

//go:generate mockgen -source=market_handler.go -destination=mock_market_service.go -package=handler

type MarketServiceInterface interface {
	ListAuctions(ctx context.Context) (models.AuctionList, error)
	GetAuction(ctx context.Context, addr common.Address) (models.Auction, error)
	BidHistory(ctx context.Context, addr common.Address) ([]models.Bid, error)
	CreateAuction(ctx context.Context, in market.CreateAuctionInput) (models.Auction, error)
	PlaceBid(ctx context.Context, addr common.Address, amountEth string) (models.TxResult, error)
	RevealBid(ctx context.Context, addr common.Address, amountEth string) (models.TxResult, error)
	Finalize(ctx context.Context, addr common.Address) (models.TxResult, error)
	RevealAndFinalize(ctx context.Context, addr common.Address, amountEth string) ([]models.TxResult, error)
	GetMetadata(ctx context.Context, addr common.Address) (models.Metadata, error)
	SetMetadata(ctx context.Context, addr common.Address, md models.Metadata) (models.Metadata, error)
}

type MarketHandler struct {
	service MarketServiceInterface
}

func NewMarketHandler(service MarketServiceInterface) *MarketHandler {
	return &MarketHandler{service: service}
}

// ListAuctionsHandler handles GET /auctions
func (h *MarketHandler) ListAuctionsHandler(c *gin.Context) {
	list, err := h.service.ListAuctions(c.Request.Context())
	if err != nil {
		helpers.RespondError(c, "ListAuctionsHandler", err, nil)
		return
	}

	message := "auctions retrieved successfully"
	if list.Stale {
		message = "auctions served from cache"
	}
	utils.JSONResponse(c, http.StatusOK, helpers.ToAuctionListResponse(list), message)
	helpers.LogSuccess("ListAuctionsHandler", message, map[string]any{
		"count": len(list.Auctions),
		"stale": list.Stale,
	})
}

// CreateAuctionHandler handles POST /auctions
func (h *MarketHandler) CreateAuctionHandler(c *gin.Context) {
	var req helpers.CreateAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateAuctionHandler", err)
		return
	}

	auction, err := h.service.CreateAuction(c.Request.Context(), market.CreateAuctionInput{
		Title:         req.Title,
		DurationHours: req.DurationHours,
		ImageURL:      req.ImageURL,
		Description:   req.Description,
	})
	if err != nil {
		helpers.RespondError(c, "CreateAuctionHandler", err, map[string]any{"title": req.Title})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.ToAuctionResponse(auction), "auction created successfully")
	helpers.LogSuccess("CreateAuctionHandler", "auction created successfully", map[string]any{
		"address":  auction.Address.Hex(),
		"title":    auction.Title,
		"end_time": auction.EndTimeMs,
	})
}

// GetAuctionHandler handles GET /auctions/:address
func (h *MarketHandler) GetAuctionHandler(c *gin.Context) {
	addr, err := helpers.ParseAddress(c)
	if err != nil {
		helpers.RespondError(c, "GetAuctionHandler", err, nil)
		return
	}

	auction, err := h.service.GetAuction(c.Request.Context(), addr)
	if err != nil {
		helpers.RespondError(c, "GetAuctionHandler", err, map[string]any{"address": addr.Hex()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToAuctionResponse(auction), "auction retrieved successfully")
}

// GetBidsHandler handles GET /auctions/:address/bids
func (h *MarketHandler) GetBidsHandler(c *gin.Context) {
	addr, err := helpers.ParseAddress(c)
	if err != nil {
		helpers.RespondError(c, "GetBidsHandler", err, nil)
		return
	}

	bids, err := h.service.BidHistory(c.Request.Context(), addr)
	if err != nil {
		helpers.RespondError(c, "GetBidsHandler", err, map[string]any{"address": addr.Hex()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToBidResponses(bids), "bids retrieved successfully")
	helpers.LogSuccess("GetBidsHandler", "bids retrieved successfully", map[string]any{
		"address": addr.Hex(),
		"count":   len(bids),
	})
}

// PlaceBidHandler handles POST /auctions/:address/bids
func (h *MarketHandler) PlaceBidHandler(c *gin.Context) {
	addr, err := helpers.ParseAddress(c)
	if err != nil {
		helpers.RespondError(c, "PlaceBidHandler", err, nil)
		return
	}

	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	tx, err := h.service.PlaceBid(c.Request.Context(), addr, req.Amount)
	if err != nil {
		helpers.RespondError(c, "PlaceBidHandler", err, map[string]any{"address": addr.Hex()})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.ToTxResponse(tx), "bid placed successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid placed successfully", map[string]any{
		"address": addr.Hex(),
		"tx":      tx.TxHash.Hex(),
		"block":   tx.BlockNumber,
	})
}

// RevealBidHandler handles POST /auctions/:address/reveal. With finalize set
// the auction is finalized right after a successful reveal.
func (h *MarketHandler) RevealBidHandler(c *gin.Context) {
	addr, err := helpers.ParseAddress(c)
	if err != nil {
		helpers.RespondError(c, "RevealBidHandler", err, nil)
		return
	}

	var req helpers.RevealBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RevealBidHandler", err)
		return
	}

	var txs []models.TxResult
	if req.Finalize {
		txs, err = h.service.RevealAndFinalize(c.Request.Context(), addr, req.Amount)
	} else {
		var tx models.TxResult
		if tx, err = h.service.RevealBid(c.Request.Context(), addr, req.Amount); err == nil {
			txs = []models.TxResult{tx}
		}
	}

	resp := make([]helpers.TxResponse, 0, len(txs))
	for _, tx := range txs {
		resp = append(resp, helpers.ToTxResponse(tx))
	}

	if err != nil {
		fields := map[string]any{"address": addr.Hex(), "finalize": req.Finalize}
		if len(resp) > 0 {
			// the reveal was mined before finalize failed
			helpers.RespondPartialError(c, "RevealBidHandler", err, resp, fields)
			return
		}
		helpers.RespondError(c, "RevealBidHandler", err, fields)
		return
	}

	utils.JSONResponse(c, http.StatusOK, resp, "bid revealed successfully")
	helpers.LogSuccess("RevealBidHandler", "bid revealed successfully", map[string]any{
		"address":  addr.Hex(),
		"finalize": req.Finalize,
	})
}

// FinalizeHandler handles POST /auctions/:address/finalize
func (h *MarketHandler) FinalizeHandler(c *gin.Context) {
	addr, err := helpers.ParseAddress(c)
	if err != nil {
		helpers.RespondError(c, "FinalizeHandler", err, nil)
		return
	}

	tx, err := h.service.Finalize(c.Request.Context(), addr)
	if err != nil {
		helpers.RespondError(c, "FinalizeHandler", err, map[string]any{"address": addr.Hex()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToTxResponse(tx), "auction finalized successfully")
	helpers.LogSuccess("FinalizeHandler", "auction finalized successfully", map[string]any{
		"address": addr.Hex(),
		"tx":      tx.TxHash.Hex(),
	})
}

// GetMetadataHandler handles GET /auctions/:address/metadata
func (h *MarketHandler) GetMetadataHandler(c *gin.Context) {
	addr, err := helpers.ParseAddress(c)
	if err != nil {
		helpers.RespondError(c, "GetMetadataHandler", err, nil)
		return
	}

	md, err := h.service.GetMetadata(c.Request.Context(), addr)
	if err != nil {
		helpers.RespondError(c, "GetMetadataHandler", err, map[string]any{"address": addr.Hex()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToMetadataResponse(md), "metadata retrieved successfully")
}

// SetMetadataHandler handles PUT /auctions/:address/metadata
func (h *MarketHandler) SetMetadataHandler(c *gin.Context) {
	addr, err := helpers.ParseAddress(c)
	if err != nil {
		helpers.RespondError(c, "SetMetadataHandler", err, nil)
		return
	}

	var req helpers.MetadataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SetMetadataHandler", err)
		return
	}

	md, err := h.service.SetMetadata(c.Request.Context(), addr, models.Metadata{
		Title:       req.Title,
		ImageURL:    req.ImageURL,
		Description: req.Description,
	})
	if err != nil {
		helpers.RespondError(c, "SetMetadataHandler", err, map[string]any{"address": addr.Hex()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToMetadataResponse(md), "metadata saved successfully")
	helpers.LogSuccess("SetMetadataHandler", "metadata saved successfully", map[string]any{"address": addr.Hex()})
}
