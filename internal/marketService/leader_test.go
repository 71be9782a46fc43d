package market

import (
	"testing"

	"auction-market/internal/models"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func revealed(bidder string, amount string, block uint64, index uint) models.RevealedBid {
	return models.RevealedBid{
		Bidder:      common.HexToAddress(bidder),
		Amount:      decimal.RequireFromString(amount),
		BlockNumber: block,
		LogIndex:    index,
	}
}

func TestComputeLeader(t *testing.T) {
	tests := []struct {
		name       string
		bids       []models.RevealedBid
		wantNil    bool
		wantBidder string
		wantAmount string
	}{
		{name: "no_reveals", bids: nil, wantNil: true},
		{name: "single_reveal", bids: []models.RevealedBid{revealed("0xa1", "0.5", 10, 0)}, wantBidder: "0xa1", wantAmount: "0.5"},
		{
			name: "highest_wins",
			bids: []models.RevealedBid{
				revealed("0xa1", "0.5", 10, 0),
				revealed("0xb2", "1.25", 11, 0),
				revealed("0xc3", "1.2", 12, 3),
			},
			wantBidder: "0xb2", wantAmount: "1.25",
		},
		{
			name: "tie_earlier_block_wins",
			bids: []models.RevealedBid{
				revealed("0xb2", "2", 15, 0),
				revealed("0xa1", "2", 14, 9),
			},
			wantBidder: "0xa1", wantAmount: "2",
		},
		{
			name: "tie_same_block_lower_log_index_wins",
			bids: []models.RevealedBid{
				revealed("0xb2", "2", 15, 4),
				revealed("0xa1", "2", 15, 2),
			},
			wantBidder: "0xa1", wantAmount: "2",
		},
		{
			name: "trailing_zeros_are_equal_amounts",
			bids: []models.RevealedBid{
				revealed("0xa1", "1.000000", 1, 0),
				revealed("0xb2", "1", 2, 0),
			},
			wantBidder: "0xa1", wantAmount: "1",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			leader := ComputeLeader(tc.bids)
			if tc.wantNil {
				require.Nil(t, leader)
				return
			}
			require.NotNil(t, leader)
			require.Equal(t, common.HexToAddress(tc.wantBidder), leader.Bidder)
			require.True(t, decimal.RequireFromString(tc.wantAmount).Equal(leader.Amount), "got %s", leader.Amount)
		})
	}
}
