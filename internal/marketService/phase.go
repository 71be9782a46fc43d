package market

import (
	"sync"
	"time"

	"auction-market/internal/models"

	"github.com/ethereum/go-ethereum/common"
)

// DerivePhase computes the phase of an auction at time now.
//
//	ended                          -> Closed
//	now < endTime                  -> Bidding
//	now < endTime + revealWindow   -> Reveal
//	otherwise                      -> Closed
//
// For fixed endTime, revealWindow and ended the result never decreases as now grows.
func DerivePhase(now, endTime time.Time, revealWindow time.Duration, ended bool) models.Phase {
	switch {
	case ended:
		return models.PhaseClosed
	case now.Before(endTime):
		return models.PhaseBidding
	case revealWindow > 0 && now.Before(endTime.Add(revealWindow)):
		return models.PhaseReveal
	default:
		return models.PhaseClosed
	}
}

// PhaseTracker remembers the furthest phase observed per auction so that a
// stale read arriving late cannot move an auction backwards.
type PhaseTracker struct {
	mu   sync.Mutex
	seen map[common.Address]models.Phase
}

// NewPhaseTracker creates an empty tracker
func NewPhaseTracker() *PhaseTracker {
	return &PhaseTracker{seen: make(map[common.Address]models.Phase)}
}

// Observe records p for addr and returns the phase to report.
func (t *PhaseTracker) Observe(addr common.Address, p models.Phase) models.Phase {
	t.mu.Lock()
	defer t.mu.Unlock()

	if prev, ok := t.seen[addr]; ok && prev > p {
		return prev
	}
	t.seen[addr] = p
	return p
}
