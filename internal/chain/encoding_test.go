package chain

import (
	"errors"
	"math/big"
	"testing"

	"auction-market/internal/marketerrors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestEncodeBid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		amount        string
		expected      string
		expectedError error
	}{
		{name: "one_eth", amount: "1", expected: "0x000f4240"},
		{name: "fraction", amount: "0.5", expected: "0x0007a120"},
		{name: "smallest_unit", amount: "0.000001", expected: "0x00000001"},
		{name: "floors_extra_decimals", amount: "1.0000019", expected: "0x000f4241"},
		{name: "surrounding_spaces", amount: " 2 ", expected: "0x001e8480"},
		{name: "max_uint32", amount: "4294.967295", expected: "0xffffffff"},
		{name: "too_large", amount: "4294.967296", expectedError: marketerrors.ErrBidTooLarge},
		{name: "zero", amount: "0", expectedError: marketerrors.ErrInvalidBid},
		{name: "below_precision", amount: "0.0000001", expectedError: marketerrors.ErrInvalidBid},
		{name: "negative", amount: "-1", expectedError: marketerrors.ErrInvalidBid},
		{name: "not_a_number", amount: "one", expectedError: marketerrors.ErrInvalidBid},
		{name: "empty", amount: "", expectedError: marketerrors.ErrInvalidBid},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := EncodeBid(tc.amount)
			if tc.expectedError != nil {
				require.Error(t, err)
				require.True(t, errors.Is(err, tc.expectedError), "expected error: %v, got: %v", tc.expectedError, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expected, got)
		})
	}
}

func TestEncodeBid_Deterministic(t *testing.T) {
	t.Parallel()

	first, err := EncodeBid("0.123456")
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := EncodeBid("0.123456")
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}

func TestScaleAmount_RoundTrip(t *testing.T) {
	t.Parallel()

	scaled, err := ScaleAmount("1.5")
	require.NoError(t, err)
	require.Zero(t, scaled.Cmp(big.NewInt(1_500_000)))
	require.True(t, AmountFromScaled(scaled).Equal(decimal.RequireFromString("1.5")))
	require.True(t, AmountFromScaled(nil).IsZero())
}
