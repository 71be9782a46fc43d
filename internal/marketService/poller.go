package market

import (
	"context"
	"time"

	"auction-market/internal/models"
	"auction-market/utils"
)

type auctionLister interface {
	ListAuctions(ctx context.Context) (models.AuctionList, error)
}

// Poller keeps the cached auction list warm by re-reading the chain on a
// fixed interval until its context is cancelled.
type Poller struct {
	lister   auctionLister
	interval time.Duration
}

// NewPoller creates a poller; a non-positive interval defaults to 20s.
func NewPoller(lister auctionLister, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = 20 * time.Second
	}
	return &Poller{lister: lister, interval: interval}
}

// Run refreshes immediately and then on every tick. It returns when ctx is done.
func (p *Poller) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.refresh(ctx)
	for {
		select {
		case <-ctx.Done():
			utils.Info("poller: stopped", map[string]any{"reason": ctx.Err().Error()})
			return
		case <-ticker.C:
			p.refresh(ctx)
		}
	}
}

func (p *Poller) refresh(ctx context.Context) {
	start := time.Now()
	list, err := p.lister.ListAuctions(ctx)
	if err != nil {
		if ctx.Err() == nil {
			utils.Error("poller: refresh failed", map[string]any{"error": err.Error()})
		}
		return
	}

	utils.Debug("poller: auctions refreshed", map[string]any{
		"count":   len(list.Auctions),
		"stale":   list.Stale,
		"latency": time.Since(start).String(),
	})
}
