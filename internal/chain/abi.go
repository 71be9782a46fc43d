package chain

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

var (
	//go:embed abi/AuctionFactory.json
	factoryABIJSON string
	//go:embed abi/FHEAuction.json
	auctionABIJSON string
	//go:embed abi/MetadataRegistry.json
	registryABIJSON string
)

// Parsed contract interfaces, loaded once at package init.
var (
	FactoryABI  = mustParseABI("AuctionFactory", factoryABIJSON)
	AuctionABI  = mustParseABI("FHEAuction", auctionABIJSON)
	RegistryABI = mustParseABI("MetadataRegistry", registryABIJSON)
)

// Event and method names used across the package
const (
	EventAuctionCreated = "AuctionCreated"
	EventBidSubmitted   = "BidSubmitted"
	EventBidRevealed    = "BidRevealed"

	methodCreateAuction  = "createAuction"
	methodGetAllAuctions = "getAllAuctions"
	methodItem           = "item"
	methodEndTime        = "endTime"
	methodEnded          = "ended"
	methodLeader         = "leader"
	methodWinner         = "winner"
	methodPlaceBid       = "placeBid"
	methodRevealBid      = "revealBid"
	methodFinalize       = "finalize"
	methodSetMetadata    = "setMetadata"
	methodGetMetadata    = "getMetadata"
)

func mustParseABI(name, raw string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(raw))
	if err != nil {
		panic(fmt.Sprintf("chain: parse %s ABI: %v", name, err))
	}
	return parsed
}
