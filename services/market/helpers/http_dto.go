package helpers

import (
	"time"

	"auction-market/internal/models"
)

// EncryptedAmountLabel is shown in place of a bid amount until it is revealed
const EncryptedAmountLabel = "(encrypted)"

// Request DTOs
type CreateAuctionRequest struct {
	Title         string  `json:"title" binding:"required"`
	DurationHours float64 `json:"duration_hours" binding:"required,gt=0"`
	ImageURL      string  `json:"image_url"`
	Description   string  `json:"description"`
}

type PlaceBidRequest struct {
	Amount string `json:"amount" binding:"required"`
}

type RevealBidRequest struct {
	Amount   string `json:"amount" binding:"required"`
	Finalize bool   `json:"finalize"`
}

type MetadataRequest struct {
	Title       string `json:"title"`
	ImageURL    string `json:"image_url"`
	Description string `json:"description"`
}

// Response DTOs
type LeaderResponse struct {
	Bidder string `json:"bidder"`
	Amount string `json:"amount"`
}

type AuctionResponse struct {
	Address     string          `json:"address"`
	Item        string          `json:"item"`
	Title       string          `json:"title"`
	ImageURL    string          `json:"image_url,omitempty"`
	Description string          `json:"description,omitempty"`
	EndTime     string          `json:"end_time"`
	EndTimeMs   int64           `json:"end_time_ms"`
	Phase       string          `json:"phase"`
	Ended       bool            `json:"ended"`
	Leader      *LeaderResponse `json:"leader,omitempty"`
	Winner      string          `json:"winner,omitempty"`
	Stale       bool            `json:"stale,omitempty"`
}

type AuctionListResponse struct {
	Auctions  []AuctionResponse `json:"auctions"`
	Stale     bool              `json:"stale"`
	FetchedAt string            `json:"fetched_at"`
}

type BidResponse struct {
	Bidder        string `json:"bidder"`
	Amount        string `json:"amount"`
	EncodedAmount string `json:"encoded_amount"`
	Timestamp     string `json:"timestamp"`
	TxHash        string `json:"tx_hash"`
	BlockNumber   uint64 `json:"block_number"`
}

type TxResponse struct {
	TxHash      string `json:"tx_hash"`
	BlockNumber uint64 `json:"block_number"`
	GasUsed     uint64 `json:"gas_used"`
}

type MetadataResponse struct {
	Title       string `json:"title"`
	ImageURL    string `json:"image_url"`
	Description string `json:"description"`
	UpdatedAt   string `json:"updated_at"`
}

func ToAuctionResponse(a models.Auction) AuctionResponse {
	resp := AuctionResponse{
		Address:     a.Address.Hex(),
		Item:        a.Item,
		Title:       a.Title,
		ImageURL:    a.ImageURL,
		Description: a.Description,
		EndTime:     a.EndTime.UTC().Format(time.RFC3339),
		EndTimeMs:   a.EndTimeMs,
		Phase:       a.Phase.String(),
		Ended:       a.Ended,
		Stale:       a.Stale,
	}
	if resp.Title == "" {
		resp.Title = a.Item
	}
	if a.Leader != nil {
		resp.Leader = &LeaderResponse{Bidder: a.Leader.Bidder.Hex(), Amount: a.Leader.Amount.String()}
	}
	if a.Winner != nil {
		resp.Winner = a.Winner.Hex()
	}
	return resp
}

func ToAuctionListResponse(list models.AuctionList) AuctionListResponse {
	auctions := make([]AuctionResponse, 0, len(list.Auctions))
	for _, a := range list.Auctions {
		auctions = append(auctions, ToAuctionResponse(a))
	}
	return AuctionListResponse{
		Auctions:  auctions,
		Stale:     list.Stale,
		FetchedAt: list.FetchedAt.UTC().Format(time.RFC3339),
	}
}

// ToBidResponses keeps the amount hidden; only the encoded form is exposed
func ToBidResponses(bids []models.Bid) []BidResponse {
	out := make([]BidResponse, 0, len(bids))
	for _, b := range bids {
		out = append(out, BidResponse{
			Bidder:        b.Bidder.Hex(),
			Amount:        EncryptedAmountLabel,
			EncodedAmount: b.EncodedAmount,
			Timestamp:     b.Timestamp.UTC().Format(time.RFC3339),
			TxHash:        b.TxHash.Hex(),
			BlockNumber:   b.BlockNumber,
		})
	}
	return out
}

func ToTxResponse(tx models.TxResult) TxResponse {
	return TxResponse{TxHash: tx.TxHash.Hex(), BlockNumber: tx.BlockNumber, GasUsed: tx.GasUsed}
}

func ToMetadataResponse(md models.Metadata) MetadataResponse {
	resp := MetadataResponse{Title: md.Title, ImageURL: md.ImageURL, Description: md.Description}
	if !md.UpdatedAt.IsZero() {
		resp.UpdatedAt = md.UpdatedAt.UTC().Format(time.RFC3339)
	}
	return resp
}
