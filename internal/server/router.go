package server

import (
	"net/http"

	handler "auction-market/services/market/handler"
	"auction-market/utils"

	"github.com/gin-gonic/gin"
)

// HealthInfo is reported by GET /healthz
type HealthInfo struct {
	ChainID  int64  `json:"chain_id"`
	Signer   string `json:"signer,omitempty"`
	Registry bool   `json:"registry"`
}

// SetupRouter configures all Gin routes for the application
func SetupRouter(marketService handler.MarketServiceInterface, health HealthInfo) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestIDMiddleware)     // tag every request
	router.Use(RequestLoggerMiddleware) // custom request logging

	router.GET("/healthz", func(c *gin.Context) {
		utils.JSONResponse(c, http.StatusOK, health, "ok")
	})

	marketHandler := handler.NewMarketHandler(marketService)

	auctions := router.Group("/auctions")
	{
		auctions.GET("", marketHandler.ListAuctionsHandler)
		auctions.POST("", marketHandler.CreateAuctionHandler)
		auctions.GET("/:address", marketHandler.GetAuctionHandler)
		auctions.GET("/:address/bids", marketHandler.GetBidsHandler)
		auctions.POST("/:address/bids", marketHandler.PlaceBidHandler)
		auctions.POST("/:address/reveal", marketHandler.RevealBidHandler)
		auctions.POST("/:address/finalize", marketHandler.FinalizeHandler)
		auctions.GET("/:address/metadata", marketHandler.GetMetadataHandler)
		auctions.PUT("/:address/metadata", marketHandler.SetMetadataHandler)
	}

	return router
}
