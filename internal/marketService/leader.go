package market

import (
	"auction-market/internal/models"
)

// ComputeLeader picks the highest revealed bid. On equal amounts the bid
// revealed first (lowest block, then log index) keeps the lead.
// It returns nil when nothing has been revealed.
func ComputeLeader(revealed []models.RevealedBid) *models.Leader {
	if len(revealed) == 0 {
		return nil
	}

	best := revealed[0]
	for _, b := range revealed[1:] {
		if b.Amount.GreaterThan(best.Amount) || (b.Amount.Equal(best.Amount) && revealedBefore(b, best)) {
			best = b
		}
	}
	return &models.Leader{Bidder: best.Bidder, Amount: best.Amount}
}

func revealedBefore(a, b models.RevealedBid) bool {
	if a.BlockNumber != b.BlockNumber {
		return a.BlockNumber < b.BlockNumber
	}
	return a.LogIndex < b.LogIndex
}
