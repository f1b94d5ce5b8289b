package repository

import (
	"fmt"
	"sort"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/shopspring/decimal"
	"github.com/viney-shih/goroutines"

	baseabi "github.com/properties-dex/goapi/base/abi"
	bCtx "github.com/properties-dex/goapi/base/ctx"
	"github.com/properties-dex/goapi/base/log"
	"github.com/properties-dex/goapi/domain"
	"github.com/properties-dex/goapi/domain/listing"
	"github.com/properties-dex/goapi/service/chain/contract"
)

const aggregationWorkers = 10

type ChainRepoCfg struct {
	ChainId            domain.ChainId
	MarketplaceAddress domain.Address
	Marketplace        contract.MarketplaceContract
	Erc20              contract.Erc20Contract
	PayTokens          domain.PayTokenRepo
}

// chainRepo reads listings straight from the marketplace contract. It is the
// only source of listing state; every call rebuilds view-models from chain.
type chainRepo struct {
	chainId     domain.ChainId
	marketplace string
	mkt         contract.MarketplaceContract
	erc20       contract.Erc20Contract
	payTokens   domain.PayTokenRepo
}

func NewChainRepo(cfg *ChainRepoCfg) listing.Repo {
	return &chainRepo{
		chainId:     cfg.ChainId,
		marketplace: string(cfg.MarketplaceAddress),
		mkt:         cfg.Marketplace,
		erc20:       cfg.Erc20,
		payTokens:   cfg.PayTokens,
	}
}

func (r *chainRepo) Count(c bCtx.Ctx) (uint64, error) {
	count, err := r.mkt.ListingCount(c, int32(r.chainId), r.marketplace)
	if err != nil {
		c.WithField("err", err).Error("marketplace.ListingCount failed")
		return 0, err
	}
	return count, nil
}

func (r *chainRepo) Get(c bCtx.Ctx, id domain.ListingId, viewer domain.Address) (*listing.Listing, error) {
	var (
		details  *baseabi.ListingMainDetails
		metadata *baseabi.ListingMetadataTuple
	)

	b := goroutines.NewBatch(2, goroutines.WithBatchSize(2))
	defer b.Close()
	b.Queue(func() (interface{}, error) {
		return r.mkt.GetListingMainDetails(c, int32(r.chainId), r.marketplace, uint64(id))
	})
	b.Queue(func() (interface{}, error) {
		return r.mkt.GetListingMetadata(c, int32(r.chainId), r.marketplace, uint64(id))
	})
	b.QueueComplete()
	for ret := range b.Results() {
		if ret.Error() != nil {
			c.WithFields(log.Fields{
				"listingId": id,
				"err":       ret.Error(),
			}).Error("fetch listing failed")
			return nil, ret.Error()
		}
		switch v := ret.Value().(type) {
		case *baseabi.ListingMainDetails:
			details = v
		case *baseabi.ListingMetadataTuple:
			metadata = v
		}
	}

	return r.buildViewModel(c, id, details, metadata, viewer)
}

func (r *chainRepo) GetAll(c bCtx.Ctx, viewer domain.Address) ([]*listing.Listing, error) {
	count, err := r.Count(c)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return []*listing.Listing{}, nil
	}

	b := goroutines.NewBatch(aggregationWorkers, goroutines.WithBatchSize(int(count)))
	defer b.Close()
	for i := uint64(0); i < count; i++ {
		id := domain.ListingId(i)
		b.Queue(func() (interface{}, error) {
			l, err := r.Get(c, id, viewer)
			if err != nil {
				// a broken index must not abort the batch; skip it and
				// let the view tolerate a sparse result set
				c.WithFields(log.Fields{
					"listingId": id,
					"err":       err,
				}).Warn("skipping listing")
				return nil, nil
			}
			return l, nil
		})
	}
	b.QueueComplete()

	listings := make([]*listing.Listing, 0, count)
	for ret := range b.Results() {
		if ret.Value() == nil {
			continue
		}
		listings = append(listings, ret.Value().(*listing.Listing))
	}
	sort.Slice(listings, func(i, j int) bool { return listings[i].Id < listings[j].Id })
	return listings, nil
}

func (r *chainRepo) buildViewModel(c bCtx.Ctx, id domain.ListingId, d *baseabi.ListingMainDetails, m *baseabi.ListingMetadataTuple, viewer domain.Address) (*listing.Listing, error) {
	tokenAddr := domain.Address(d.TokenAddress.Hex())
	payAddr := domain.Address(d.PaymentToken.Hex())

	type tokenMeta struct {
		name     string
		symbol   string
		decimals uint8
	}
	type payMeta struct {
		symbol   string
		decimals uint8
	}

	b := goroutines.NewBatch(2, goroutines.WithBatchSize(2))
	defer b.Close()
	b.Queue(func() (interface{}, error) {
		name, err := r.erc20.Name(c, int32(r.chainId), string(tokenAddr))
		if err != nil {
			return nil, err
		}
		symbol, err := r.erc20.Symbol(c, int32(r.chainId), string(tokenAddr))
		if err != nil {
			return nil, err
		}
		decimals, err := r.erc20.Decimals(c, int32(r.chainId), string(tokenAddr))
		if err != nil {
			return nil, err
		}
		return &tokenMeta{name, symbol, decimals}, nil
	})
	b.Queue(func() (interface{}, error) {
		// the payment token registry spares repeated decimals fetches; the
		// payment token's decimals are independent from the sold token's
		if p, err := r.payTokens.FindOne(c, r.chainId, payAddr.ToLower()); err == nil && p != nil {
			return &payMeta{p.Symbol, uint8(p.TokenDecimals)}, nil
		}
		symbol, err := r.erc20.Symbol(c, int32(r.chainId), string(payAddr))
		if err != nil {
			return nil, err
		}
		decimals, err := r.erc20.Decimals(c, int32(r.chainId), string(payAddr))
		if err != nil {
			return nil, err
		}
		return &payMeta{symbol, decimals}, nil
	})
	b.QueueComplete()

	var (
		tm *tokenMeta
		pm *payMeta
	)
	for ret := range b.Results() {
		if ret.Error() != nil {
			c.WithFields(log.Fields{
				"listingId": id,
				"err":       ret.Error(),
			}).Error("fetch token metadata failed")
			return nil, ret.Error()
		}
		switch v := ret.Value().(type) {
		case *tokenMeta:
			tm = v
		case *payMeta:
			pm = v
		}
	}

	seller := domain.Address(d.Seller.Hex())
	endTime := d.EndTime.Int64()
	l := &listing.Listing{
		Id:     id,
		Seller: seller,
		Token: listing.TokenInfo{
			Address: tokenAddr,
			Name:    tm.name,
			Symbol:  tm.symbol,
			// the contract stores whole human units for amount and price,
			// so no decimal shift applies here
			Amount:        decimal.NewFromBigInt(d.Amount, 0).String(),
			PricePerShare: decimal.NewFromBigInt(d.PricePerShare, 0).String(),
		},
		PaymentToken:         payAddr,
		PaymentTokenSymbol:   pm.symbol,
		PaymentTokenDecimals: int32(pm.decimals),
		Active:               d.Active,
		EndTime:              endTime,
		ReferralActive:       d.ReferralActive,
		ReferralPercent:      d.ReferralPercent.Int64(),
		IsOwner:              !viewer.IsEmpty() && seller.Equals(viewer),
		TimeRemaining:        FormatTimeRemaining(endTime, time.Now().Unix()),
		Metadata: listing.Metadata{
			ProjectWebsite:     m.ProjectWebsite,
			SocialMediaLink:    m.SocialMediaLink,
			ImageUrl:           m.TokenImageUrl,
			TelegramUrl:        m.TelegramUrl,
			ProjectDescription: m.ProjectDescription,
		},
	}
	if d.ReferralCode != [32]byte{} {
		l.ReferralCode = hexutil.Encode(d.ReferralCode[:])
	}
	return l, nil
}

// FormatTimeRemaining renders the countdown shown on listing cards.
func FormatTimeRemaining(endTime, now int64) string {
	left := endTime - now
	if left <= 0 {
		return "Expired"
	}
	days := left / (24 * 3600)
	hours := (left % (24 * 3600)) / 3600
	minutes := (left % 3600) / 60
	return fmt.Sprintf("%dd %dh %dm", days, hours, minutes)
}
