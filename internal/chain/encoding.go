package chain

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/big"
	"strings"

	"auction-market/internal/marketerrors"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/shopspring/decimal"
)

// BidScaleDecimals is the fixed-point precision of encoded bid amounts.
// 1 ETH is encoded as 1_000_000.
const BidScaleDecimals = 6

var maxEncodedBid = decimal.NewFromInt(math.MaxUint32)

// ScaleAmount converts a decimal ETH string into the fixed-point integer
// carried by placeBid/revealBid. Fractions beyond six decimals are floored.
func ScaleAmount(amountEth string) (*big.Int, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(amountEth))
	if err != nil {
		return nil, fmt.Errorf("%w - %q is not a number", marketerrors.ErrInvalidBid, amountEth)
	}

	scaled := d.Shift(BidScaleDecimals).Floor()
	if !scaled.IsPositive() {
		return nil, fmt.Errorf("%w - non-positive bid amount %q", marketerrors.ErrInvalidBid, amountEth)
	}
	if scaled.GreaterThan(maxEncodedBid) {
		return nil, fmt.Errorf("%w - %s ETH", marketerrors.ErrBidTooLarge, d.String())
	}
	return scaled.BigInt(), nil
}

// EncodeBid packs the scaled amount into four big-endian bytes and returns it
// as 0x-prefixed hex. The result is a pure function of the input string.
//
// This is a placeholder for a confidential encoding: the amount is only
// rescaled and anyone reading the chain can recover it.
func EncodeBid(amountEth string) (string, error) {
	scaled, err := ScaleAmount(amountEth)
	if err != nil {
		return "", err
	}

	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], uint32(scaled.Uint64()))
	return hexutil.Encode(buf[:]), nil
}

// AmountFromScaled turns an on-chain fixed-point amount back into ETH.
func AmountFromScaled(scaled *big.Int) decimal.Decimal {
	if scaled == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(scaled, -BidScaleDecimals)
}
