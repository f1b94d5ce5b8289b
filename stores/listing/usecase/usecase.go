package usecase

import (
	"time"

	"github.com/viney-shih/goroutines"

	"github.com/properties-dex/goapi/base/ctx"
	"github.com/properties-dex/goapi/base/log"
	"github.com/properties-dex/goapi/base/metrics"
	"github.com/properties-dex/goapi/domain"
	"github.com/properties-dex/goapi/domain/keys"
	"github.com/properties-dex/goapi/domain/listing"
	"github.com/properties-dex/goapi/service/cache"
	compoundcache "github.com/properties-dex/goapi/service/cache/compoundCache"
	"github.com/properties-dex/goapi/service/cache/provider/primitive"
	redisCache "github.com/properties-dex/goapi/service/cache/provider/redis"
	"github.com/properties-dex/goapi/service/ens"
	"github.com/properties-dex/goapi/service/redis"
)

const (
	snapshotKey        = "snapshot"
	snapshotTtl        = 60 * time.Second
	ensResolvePoolSize = 4
)

type ListingUseCaseCfg struct {
	Repo    listing.Repo
	Redis   redis.Service
	Ens     ens.ENS
	Metrics metrics.Service
}

type impl struct {
	repo  listing.Repo
	cache cache.Service
	ens   ens.ENS
	met   metrics.Service
}

func NewListingUseCase(cfg *ListingUseCaseCfg) listing.Usecase {
	return &impl{
		repo: cfg.Repo,
		cache: compoundcache.NewCompoundCache([]cache.Service{
			cache.New(cache.ServiceConfig{
				Ttl:   10 * time.Second,
				Pfx:   keys.PfxListings,
				Cache: primitive.NewPrimitive("listings", 1024),
			}),
			cache.New(cache.ServiceConfig{
				Ttl:   snapshotTtl,
				Pfx:   keys.PfxListings,
				Cache: redisCache.NewRedis(cfg.Redis),
			}),
		}),
		ens: cfg.Ens,
		met: cfg.Metrics,
	}
}

// snapshot returns the aggregated listings, viewer-independent. IsOwner is
// stamped per request afterwards so the cached copy stays shareable.
func (im *impl) snapshot(c ctx.Ctx) ([]*listing.Listing, error) {
	res := []*listing.Listing{}
	err := im.cache.GetByFunc(c, snapshotKey, &res, func() (interface{}, error) {
		ls, err := im.aggregate(c)
		if err != nil {
			return nil, err
		}
		return &ls, nil
	})
	if err != nil {
		c.WithField("err", err).Error("cache.GetByFunc failed")
		return nil, err
	}
	return res, nil
}

func (im *impl) aggregate(c ctx.Ctx) ([]*listing.Listing, error) {
	defer im.met.BumpTime("time", "func", "aggregate").End()

	ls, err := im.repo.GetAll(c, domain.EmptyAddress)
	if err != nil {
		c.WithField("err", err).Error("repo.GetAll failed")
		return nil, err
	}
	im.resolveSellerNames(c, ls)
	im.met.BumpHistogram("aggregate.listings", float64(len(ls)))
	return ls, nil
}

func (im *impl) resolveSellerNames(c ctx.Ctx, ls []*listing.Listing) {
	if im.ens == nil {
		return
	}

	sellers := map[domain.Address][]*listing.Listing{}
	for _, l := range ls {
		seller := l.Seller.ToLower()
		sellers[seller] = append(sellers[seller], l)
	}

	b := goroutines.NewBatch(ensResolvePoolSize, goroutines.WithBatchSize(len(sellers)))
	defer b.Close()

	for seller := range sellers {
		seller := seller
		b.Queue(func() (interface{}, error) {
			name, err := im.ens.ReverseResolve(c, seller)
			if err != nil {
				// name resolution is cosmetic, the listing survives without it
				c.WithFields(log.Fields{
					"err":    err,
					"seller": seller,
				}).Warn("ens.ReverseResolve failed")
				return nil, nil
			}
			for _, l := range sellers[seller] {
				l.SellerEnsName = name
			}
			return nil, nil
		})
	}
	b.QueueComplete()
	b.WaitAll()
}

func (im *impl) Browse(c ctx.Ctx, opts *listing.BrowseOptions) ([]*listing.Listing, error) {
	ls, err := im.snapshot(c)
	if err != nil {
		return nil, err
	}

	now := time.Now().Unix()
	ls = Classify(ls, opts.Status, now)
	if opts.Search != "" {
		ls = SearchListings(ls, opts.Search)
	}
	if opts.SortBy != "" {
		SortListings(ls, opts.SortBy, opts.SortDir)
	}
	stampViewer(ls, opts.Viewer)
	return ls, nil
}

func (im *impl) Get(c ctx.Ctx, id domain.ListingId, viewer domain.Address) (*listing.Listing, error) {
	l, err := im.repo.Get(c, id, viewer)
	if err != nil {
		c.WithFields(log.Fields{
			"err":       err,
			"listingId": id,
		}).Error("repo.Get failed")
		return nil, err
	}
	return l, nil
}

func (im *impl) Refresh(c ctx.Ctx) error {
	ls, err := im.aggregate(c)
	if err != nil {
		return err
	}
	if err := im.cache.Set(c, snapshotKey, &ls); err != nil {
		c.WithField("err", err).Error("cache.Set failed")
		return err
	}
	return nil
}

// stampViewer recomputes the ownership flag on copies so the shared snapshot
// is never mutated.
func stampViewer(ls []*listing.Listing, viewer domain.Address) {
	for i, l := range ls {
		cp := *l
		cp.IsOwner = !viewer.IsEmpty() && l.Seller.Equals(viewer)
		ls[i] = &cp
	}
}
