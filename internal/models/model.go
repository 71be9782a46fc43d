package models

import (
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

// Phase is the lifecycle stage of an auction, derived from time and contract flags
type Phase int

const (
	PhaseBidding Phase = iota
	PhaseReveal
	PhaseClosed
)

func (p Phase) String() string {
	switch p {
	case PhaseBidding:
		return "Bidding"
	case PhaseReveal:
		return "Reveal"
	case PhaseClosed:
		return "Closed"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Phase) UnmarshalText(text []byte) error {
	switch string(text) {
	case "Bidding":
		*p = PhaseBidding
	case "Reveal":
		*p = PhaseReveal
	case "Closed":
		*p = PhaseClosed
	default:
		return fmt.Errorf("unknown phase %q", string(text))
	}
	return nil
}

// AuctionRecord is the raw on-chain state of a single auction contract
type AuctionRecord struct {
	Address common.Address
	Item    string
	EndTime time.Time
	Ended   bool
}

// Leader is the current highest revealed bid
type Leader struct {
	Bidder common.Address  `json:"bidder"`
	Amount decimal.Decimal `json:"amount"`
}

// Auction represents an auction as shown in the marketplace
type Auction struct {
	Address     common.Address  `json:"address"`
	Item        string          `json:"item"`
	Title       string          `json:"title,omitempty"`
	ImageURL    string          `json:"image_url,omitempty"`
	Description string          `json:"description,omitempty"`
	EndTime     time.Time       `json:"end_time"`
	EndTimeMs   int64           `json:"end_time_ms"`
	Phase       Phase           `json:"phase"`
	Ended       bool            `json:"ended"`
	Leader      *Leader         `json:"leader"`
	Winner      *common.Address `json:"winner"`
	Stale       bool            `json:"stale,omitempty"`
}

// AuctionList is a marketplace snapshot; Stale marks a cache fallback
type AuctionList struct {
	Auctions  []Auction `json:"auctions"`
	Stale     bool      `json:"stale"`
	FetchedAt time.Time `json:"fetched_at"`
}

// Bid is a submitted (encoded) bid read from the auction's event log
type Bid struct {
	Bidder        common.Address `json:"bidder"`
	EncodedAmount string         `json:"encoded_amount"`
	Timestamp     time.Time      `json:"timestamp"`
	TxHash        common.Hash    `json:"tx_hash"`
	BlockNumber   uint64         `json:"block_number"`
}

// RevealedBid is a bid whose amount has been disclosed on-chain
type RevealedBid struct {
	Bidder      common.Address
	Amount      decimal.Decimal
	BlockNumber uint64
	LogIndex    uint
}

// Metadata holds the human-readable details of an auction
type Metadata struct {
	Title       string    `json:"title"`
	ImageURL    string    `json:"image_url"`
	Description string    `json:"description"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreatedAuction is what the factory reports for a freshly created auction
type CreatedAuction struct {
	Address common.Address
	Item    string
	EndTime time.Time
	Seller  common.Address
	Tx      TxResult
}

// TxResult summarizes a confirmed transaction
type TxResult struct {
	TxHash      common.Hash `json:"tx_hash"`
	BlockNumber uint64      `json:"block_number"`
	GasUsed     uint64      `json:"gas_used"`
}
