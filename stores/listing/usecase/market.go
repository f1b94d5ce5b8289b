package usecase

import (
	"math/big"
	"time"

	gethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	baseabi "github.com/properties-dex/goapi/base/abi"
	"github.com/properties-dex/goapi/base/ctx"
	"github.com/properties-dex/goapi/base/log"
	"github.com/properties-dex/goapi/base/metrics"
	"github.com/properties-dex/goapi/domain"
	"github.com/properties-dex/goapi/domain/keys"
	"github.com/properties-dex/goapi/domain/listing"
	"github.com/properties-dex/goapi/service/cache"
	"github.com/properties-dex/goapi/service/cache/provider/primitive"
	"github.com/properties-dex/goapi/service/chain/contract"
	"github.com/properties-dex/goapi/service/notifier"
	"github.com/properties-dex/goapi/service/wallet"
)

type MarketUseCaseCfg struct {
	ChainId            domain.ChainId
	MarketplaceAddress domain.Address
	Marketplace        contract.MarketplaceContract
	Erc20              contract.Erc20Contract
	PayTokens          domain.PayTokenRepo
	ListingRepo        listing.Repo
	ListingUC          listing.Usecase
	Signer             wallet.Signer
	Notifier           notifier.Notifier
	Metrics            metrics.Service
}

type marketImpl struct {
	chainId     domain.ChainId
	marketplace domain.Address
	mkt         contract.MarketplaceContract
	erc20       contract.Erc20Contract
	payTokens   domain.PayTokenRepo
	listingRepo listing.Repo
	listingUC   listing.Usecase
	signer      wallet.Signer
	notifier    notifier.Notifier
	met         metrics.Service
	codeCache   cache.Service
}

func NewMarketUseCase(cfg *MarketUseCaseCfg) listing.MarketUsecase {
	return &marketImpl{
		chainId:     cfg.ChainId,
		marketplace: cfg.MarketplaceAddress,
		mkt:         cfg.Marketplace,
		erc20:       cfg.Erc20,
		payTokens:   cfg.PayTokens,
		listingRepo: cfg.ListingRepo,
		listingUC:   cfg.ListingUC,
		signer:      cfg.Signer,
		notifier:    cfg.Notifier,
		met:         cfg.Metrics,
		codeCache: cache.New(cache.ServiceConfig{
			Ttl:   24 * time.Hour,
			Pfx:   keys.PfxReferralCode,
			Cache: primitive.NewPrimitive("referralCode", 256),
		}),
	}
}

// ComputeTotalCost multiplies two human-unit decimal strings and shifts the
// product into the payment token's raw units. Only the payment token's
// decimals matter here; the sold token's decimals never enter the product.
func ComputeTotalCost(amount, pricePerShare string, paymentDecimals int32) (*big.Int, error) {
	a, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, domain.ErrInvalidNumberFormat
	}
	p, err := decimal.NewFromString(pricePerShare)
	if err != nil {
		return nil, domain.ErrInvalidNumberFormat
	}
	total := a.Mul(p).Shift(paymentDecimals)
	if !total.IsInteger() {
		// sub-unit dust cannot be represented in raw token units
		return nil, domain.ErrInvalidNumberFormat
	}
	return total.BigInt(), nil
}

func (im *marketImpl) paymentToken(c ctx.Ctx, useStablecoin bool) (*domain.PayToken, error) {
	pts, err := im.payTokens.FindAll(c, im.chainId)
	if err != nil {
		c.WithField("err", err).Error("payTokens.FindAll failed")
		return nil, err
	}
	for _, pt := range pts {
		if pt.IsPlatform != useStablecoin {
			return pt, nil
		}
	}
	return nil, domain.ErrNotFound
}

// ensureAllowance tops up the marketplace allowance when it cannot cover
// needed. Approvals are unlimited so subsequent flows skip this step.
func (im *marketImpl) ensureAllowance(c ctx.Ctx, token domain.Address, needed *big.Int) (approved bool, err error) {
	owner := im.signer.Address().Hex()
	allowance, err := im.erc20.Allowance(c, int32(im.chainId), string(token), owner, string(im.marketplace))
	if err != nil {
		c.WithField("err", err).Error("erc20.Allowance failed")
		return false, err
	}
	if allowance.Cmp(needed) >= 0 {
		return false, nil
	}
	if _, err := im.erc20.Approve(c, int32(im.chainId), im.signer, string(token), string(im.marketplace), contract.MaxUint256); err != nil {
		c.WithField("err", err).Error("erc20.Approve failed")
		return false, err
	}
	return true, nil
}

func (im *marketImpl) List(c ctx.Ctx, p *listing.ListParams) (*listing.TxResult, error) {
	defer im.met.BumpTime("time", "func", "list").End()

	if len(p.Metadata.ProjectWebsite) > listing.MaxUrlLength ||
		len(p.Metadata.SocialMediaLink) > listing.MaxUrlLength ||
		len(p.Metadata.ImageUrl) > listing.MaxUrlLength ||
		len(p.Metadata.TelegramUrl) > listing.MaxUrlLength {
		return nil, domain.ErrMetadataTooLong
	}
	if len(p.Metadata.ProjectDescription) > listing.MaxDescriptionLength {
		return nil, domain.ErrMetadataTooLong
	}

	amount, err := domain.ParseHumanAmount(p.Amount)
	if err != nil {
		return nil, domain.ErrInvalidNumberFormat
	}
	price, err := domain.ParseHumanAmount(p.PricePerShare)
	if err != nil {
		return nil, domain.ErrInvalidNumberFormat
	}
	if amount.Sign() <= 0 || price.Sign() <= 0 {
		return nil, domain.ErrAmountOutOfRange
	}

	if pt, err := im.payTokens.FindOne(c, im.chainId, p.TokenAddress.ToLower()); err == nil && pt != nil && pt.IsPlatform {
		return nil, domain.ErrCannotListPlatformToken
	}

	payToken, err := im.paymentToken(c, p.UseStablecoin)
	if err != nil {
		return nil, err
	}

	decimals, err := im.erc20.Decimals(c, int32(im.chainId), string(p.TokenAddress))
	if err != nil {
		c.WithField("err", err).Error("erc20.Decimals failed")
		return nil, err
	}

	// the contract pulls raw units even though its arguments are human units
	raw := decimal.NewFromBigInt(amount, int32(decimals)).BigInt()
	seller := im.signer.Address().Hex()
	balance, err := im.erc20.BalanceOf(c, int32(im.chainId), string(p.TokenAddress), seller)
	if err != nil {
		c.WithField("err", err).Error("erc20.BalanceOf failed")
		return nil, err
	}
	if balance.Cmp(raw) < 0 {
		return nil, domain.ErrInsufficientBalance
	}

	if _, err := im.ensureAllowance(c, p.TokenAddress, raw); err != nil {
		return nil, err
	}

	duration := p.Duration
	if duration <= 0 {
		duration = listing.DefaultDuration
	}

	receipt, err := im.mkt.ListToken(c, int32(im.chainId), im.signer, string(im.marketplace), &contract.ListTokenArgs{
		TokenAddress:    gethcommon.HexToAddress(string(p.TokenAddress)),
		AmountHuman:     amount,
		PricePerShare:   price,
		PaymentToken:    gethcommon.HexToAddress(string(payToken.Address)),
		ReferralActive:  p.ReferralActive,
		ReferralPercent: big.NewInt(p.ReferralPercent),
		Metadata:        toMetadataTuple(&p.Metadata),
		Duration:        big.NewInt(duration),
	})
	if err != nil {
		c.WithField("err", err).Error("marketplace.ListToken failed")
		return nil, err
	}

	if err := im.listingUC.Refresh(c); err != nil {
		c.WithField("err", err).Warn("listing refresh after ListToken failed")
	}
	im.announceListed(c)

	return toTxResult(receipt), nil
}

func (im *marketImpl) Buy(c ctx.Ctx, p *listing.BuyParams) (*listing.TxResult, error) {
	defer im.met.BumpTime("time", "func", "buy").End()

	attempt := uuid.New().String()
	c = ctx.WithValue(c, "purchaseAttempt", attempt)
	state := listing.PurchaseValidating
	defer func() {
		c.WithFields(log.Fields{
			"attempt": attempt,
			"state":   state,
		}).Info("purchase attempt finished")
	}()

	l, err := im.listingRepo.Get(c, p.ListingId, domain.Address(im.signer.Address().Hex()))
	if err != nil {
		state = listing.PurchaseFailed
		return nil, domain.ErrListingNotFound
	}

	now := time.Now().Unix()
	if !IsActive(l, now) {
		state = listing.PurchaseFailed
		return nil, domain.ErrListingNotPurchasable
	}

	// the contract takes whole share counts, so fractional amounts are
	// rejected before any balance read or approval
	amountHuman, err := domain.ParseHumanAmount(p.Amount)
	if err != nil {
		state = listing.PurchaseFailed
		return nil, domain.ErrInvalidNumberFormat
	}
	amount := decimal.NewFromBigInt(amountHuman, 0)
	remaining, err := decimal.NewFromString(l.Token.Amount)
	if err != nil {
		state = listing.PurchaseFailed
		return nil, domain.ErrInvalidNumberFormat
	}
	if amount.Sign() <= 0 || amount.Cmp(remaining) > 0 {
		state = listing.PurchaseFailed
		return nil, domain.ErrAmountOutOfRange
	}

	totalCost, err := ComputeTotalCost(p.Amount, l.Token.PricePerShare, l.PaymentTokenDecimals)
	if err != nil {
		state = listing.PurchaseFailed
		return nil, err
	}

	code, err := EncodeReferralCode(p.ReferralCode)
	if err != nil {
		state = listing.PurchaseFailed
		return nil, err
	}

	state = listing.PurchaseCheckingBalance
	buyer := im.signer.Address().Hex()
	balance, err := im.erc20.BalanceOf(c, int32(im.chainId), string(l.PaymentToken), buyer)
	if err != nil {
		state = listing.PurchaseFailed
		c.WithField("err", err).Error("erc20.BalanceOf failed")
		return nil, err
	}
	if balance.Cmp(totalCost) < 0 {
		state = listing.PurchaseFailed
		return nil, domain.ErrInsufficientBalance
	}

	state = listing.PurchaseApproving
	if approved, err := im.ensureAllowance(c, l.PaymentToken, totalCost); err != nil {
		state = listing.PurchaseFailed
		return nil, err
	} else if approved {
		im.met.BumpSum("purchase.approve", 1)
	}

	state = listing.PurchaseBuying
	receipt, err := im.mkt.BuyToken(c, int32(im.chainId), im.signer, string(im.marketplace), uint64(p.ListingId), amountHuman, code)
	if err != nil {
		state = listing.PurchaseFailed
		c.WithField("err", err).Error("marketplace.BuyToken failed")
		return nil, err
	}

	state = listing.PurchaseSettled
	if err := im.listingUC.Refresh(c); err != nil {
		c.WithField("err", err).Warn("listing refresh after BuyToken failed")
	}
	if im.notifier != nil {
		im.notifier.NotifySold(c, l, p.Amount)
	}

	return toTxResult(receipt), nil
}

func (im *marketImpl) Cancel(c ctx.Ctx, id domain.ListingId) (*listing.TxResult, error) {
	defer im.met.BumpTime("time", "func", "cancel").End()

	self := domain.Address(im.signer.Address().Hex())
	l, err := im.listingRepo.Get(c, id, self)
	if err != nil {
		return nil, domain.ErrListingNotFound
	}
	if !l.Seller.Equals(self) {
		return nil, domain.ErrBadParamInput
	}

	receipt, err := im.mkt.CancelListing(c, int32(im.chainId), im.signer, string(im.marketplace), uint64(id))
	if err != nil {
		c.WithField("err", err).Error("marketplace.CancelListing failed")
		return nil, err
	}

	if err := im.listingUC.Refresh(c); err != nil {
		c.WithField("err", err).Warn("listing refresh after CancelListing failed")
	}
	if im.notifier != nil {
		im.notifier.NotifyCancelled(c, l)
	}

	return toTxResult(receipt), nil
}

func (im *marketImpl) GenerateReferralCode(c ctx.Ctx, id domain.ListingId) (string, error) {
	defer im.met.BumpTime("time", "func", "generateReferralCode").End()

	l, err := im.listingRepo.Get(c, id, domain.EmptyAddress)
	if err != nil {
		return "", domain.ErrListingNotFound
	}
	if !l.ReferralActive {
		return "", domain.ErrBadParamInput
	}

	code := ""
	key := keys.RedisKey(domain.Address(im.signer.Address().Hex()).ToLowerStr(), l.Id.BigInt().String())
	err = im.codeCache.GetByFunc(c, key, &code, func() (interface{}, error) {
		if _, err := im.mkt.GenerateBuyerReferralCode(c, int32(im.chainId), im.signer, string(im.marketplace), uint64(id)); err != nil {
			c.WithField("err", err).Error("marketplace.GenerateBuyerReferralCode failed")
			return nil, err
		}
		details, err := im.mkt.GetListingMainDetails(c, int32(im.chainId), string(im.marketplace), uint64(id))
		if err != nil {
			c.WithField("err", err).Error("marketplace.GetListingMainDetails failed")
			return nil, err
		}
		generated := hexutil.Encode(details.ReferralCode[:])
		return &generated, nil
	})
	if err != nil {
		return "", err
	}
	return code, nil
}

func (im *marketImpl) announceListed(c ctx.Ctx) {
	if im.notifier == nil {
		return
	}
	count, err := im.listingRepo.Count(c)
	if err != nil || count == 0 {
		return
	}
	l, err := im.listingRepo.Get(c, domain.ListingId(count-1), domain.EmptyAddress)
	if err != nil {
		return
	}
	im.notifier.NotifyListed(c, l)
}

func toMetadataTuple(m *listing.Metadata) baseabi.ListingMetadataTuple {
	return baseabi.ListingMetadataTuple{
		ProjectWebsite:     m.ProjectWebsite,
		SocialMediaLink:    m.SocialMediaLink,
		TokenImageUrl:      m.ImageUrl,
		TelegramUrl:        m.TelegramUrl,
		ProjectDescription: m.ProjectDescription,
	}
}

func toTxResult(receipt *types.Receipt) *listing.TxResult {
	return &listing.TxResult{
		TxHash:      domain.TxHash(receipt.TxHash.Hex()),
		BlockNumber: domain.BlockNumber(receipt.BlockNumber.Uint64()),
	}
}
