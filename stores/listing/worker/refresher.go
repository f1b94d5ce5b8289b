package worker

import (
	"time"

	bCtx "github.com/properties-dex/goapi/base/ctx"
	"github.com/properties-dex/goapi/domain/listing"
)

type RefresherCfg struct {
	Listing  listing.Usecase
	Interval time.Duration
}

// Refresher periodically re-aggregates listings from the chain so the cached
// snapshot stays close to the contract state between user-triggered refreshes.
type Refresher struct {
	listing   listing.Usecase
	interval  time.Duration
	stoppedCh chan interface{}
}

func NewRefresher(cfg *RefresherCfg) *Refresher {
	return &Refresher{
		listing:   cfg.Listing,
		interval:  cfg.Interval,
		stoppedCh: make(chan interface{}),
	}
}

func (r *Refresher) Start(ctx bCtx.Ctx) {
	go r.loop(ctx)
}

func (r *Refresher) Wait() {
	<-r.stoppedCh
}

func (r *Refresher) loop(ctx bCtx.Ctx) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			close(r.stoppedCh)
			return
		case <-ticker.C:
			ctx.Info("refreshing listings")
			if err := r.listing.Refresh(ctx); err != nil {
				// transient rpc failures are expected, keep the last snapshot
				ctx.WithField("err", err).Error("listing.Refresh failed")
			}
		}
	}
}
