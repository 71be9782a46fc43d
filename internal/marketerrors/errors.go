package marketerrors

import "errors"

// Repository-level errors
var (
	ErrMetadataNotFound = errors.New("metadata not found")
	ErrCacheEmpty       = errors.New("auction list cache is empty")
)

// Chain-level errors
var (
	ErrWalletMissing    = errors.New("no wallet found")
	ErrWrongNetwork     = errors.New("wrong network")
	ErrRegistryDisabled = errors.New("metadata registry not configured")
	ErrNoCreatedEvent   = errors.New("create failed: no event parsed")
	ErrTxReverted       = errors.New("transaction reverted")
	ErrAuctionNotFound  = errors.New("auction not found")
)

// business logic errors
var (
	ErrInvalidAddress   = errors.New("invalid auction address")
	ErrInvalidBid       = errors.New("invalid bid")
	ErrBidTooLarge      = errors.New("bid amount does not fit the 4-byte encoding")
	ErrInvalidAuction   = errors.New("invalid auction details")
	ErrAuctionClosed    = errors.New("auction is closed")
	ErrNotRevealPhase   = errors.New("auction is not in reveal phase")
	ErrAuctionActive    = errors.New("auction is still accepting bids")
	ErrAlreadyFinalized = errors.New("auction already finalized")
)
