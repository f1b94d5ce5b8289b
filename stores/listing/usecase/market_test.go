package usecase

import (
	"math/big"
	"testing"
	"time"

	gethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/properties-dex/goapi/base/ctx"
	"github.com/properties-dex/goapi/base/metrics"
	"github.com/properties-dex/goapi/domain"
	"github.com/properties-dex/goapi/domain/keys"
	"github.com/properties-dex/goapi/domain/listing"
	listingMocks "github.com/properties-dex/goapi/domain/listing/mocks"
	paytokenMocks "github.com/properties-dex/goapi/domain/mocks"
	"github.com/properties-dex/goapi/service/cache"
	"github.com/properties-dex/goapi/service/cache/provider/primitive"
	contractMocks "github.com/properties-dex/goapi/service/chain/contract/mocks"
	notifierMocks "github.com/properties-dex/goapi/service/notifier/mocks"
	walletMocks "github.com/properties-dex/goapi/service/wallet/mocks"
)

var (
	mockCtx = ctx.Background()

	buyerAddress       = gethcommon.HexToAddress("0x00000000000000000000000000000000000000aa")
	sellerAddress      = domain.Address("0x00000000000000000000000000000000000000bb")
	paymentToken       = domain.Address("0x00000000000000000000000000000000000000cc")
	marketplaceAddress = domain.Address("0x00000000000000000000000000000000000000dd")
)

type marketTestsuite struct {
	suite.Suite
	mkt       *contractMocks.MarketplaceContract
	erc20     *contractMocks.Erc20Contract
	payTokens *paytokenMocks.PayTokenRepo
	repo      *listingMocks.Repo
	listingUC *listingMocks.Usecase
	signer    *walletMocks.Signer
	notifier  *notifierMocks.Notifier
	subject   *marketImpl
}

func TestMarket(t *testing.T) {
	suite.Run(t, new(marketTestsuite))
}

func (t *marketTestsuite) SetupTest() {
	t.mkt = &contractMocks.MarketplaceContract{}
	t.erc20 = &contractMocks.Erc20Contract{}
	t.payTokens = &paytokenMocks.PayTokenRepo{}
	t.repo = &listingMocks.Repo{}
	t.listingUC = &listingMocks.Usecase{}
	t.signer = &walletMocks.Signer{}
	t.notifier = &notifierMocks.Notifier{}
	t.signer.On("Address").Return(buyerAddress)
	t.subject = &marketImpl{
		chainId:     domain.ChainId(1),
		marketplace: marketplaceAddress,
		mkt:         t.mkt,
		erc20:       t.erc20,
		payTokens:   t.payTokens,
		listingRepo: t.repo,
		listingUC:   t.listingUC,
		signer:      t.signer,
		notifier:    t.notifier,
		met:         metrics.New("test"),
		codeCache: cache.New(cache.ServiceConfig{
			Ttl:   time.Minute,
			Pfx:   keys.PfxReferralCode,
			Cache: primitive.NewPrimitive("test", 16),
		}),
	}
}

func (t *marketTestsuite) activeListing() *listing.Listing {
	return &listing.Listing{
		Id:     domain.ListingId(7),
		Seller: sellerAddress,
		Token: listing.TokenInfo{
			Address:       domain.Address("0x00000000000000000000000000000000000000ee"),
			Name:          "Riverside Plaza",
			Amount:        "10",
			PricePerShare: "2.5",
		},
		PaymentToken:         paymentToken,
		PaymentTokenSymbol:   "USDC",
		PaymentTokenDecimals: 6,
		Active:               true,
		EndTime:              time.Now().Add(time.Hour).Unix(),
	}
}

func (t *marketTestsuite) TestComputeTotalCost() {
	cases := []struct {
		name     string
		amount   string
		price    string
		decimals int32
		want     *big.Int
		wantErr  error
	}{
		{
			name:     "whole units times payment decimals",
			amount:   "4",
			price:    "2.5",
			decimals: 6,
			want:     big.NewInt(10_000_000),
		},
		{
			name:     "eighteen decimal payment token",
			amount:   "1",
			price:    "0.5",
			decimals: 18,
			want:     new(big.Int).SetUint64(500_000_000_000_000_000),
		},
		{
			name:     "sub-unit dust is rejected",
			amount:   "1",
			price:    "0.0000001",
			decimals: 6,
			wantErr:  domain.ErrInvalidNumberFormat,
		},
		{
			name:     "malformed amount",
			amount:   "two",
			price:    "1",
			decimals: 6,
			wantErr:  domain.ErrInvalidNumberFormat,
		},
	}

	for _, c := range cases {
		got, err := ComputeTotalCost(c.amount, c.price, c.decimals)
		if c.wantErr != nil {
			t.ErrorIs(err, c.wantErr, c.name)
			continue
		}
		t.NoError(err, c.name)
		t.Zero(c.want.Cmp(got), c.name)
	}
}

func (t *marketTestsuite) TestBuyListingNotFound() {
	t.repo.On("Get", mock.Anything, domain.ListingId(7), mock.Anything).Return(nil, domain.ErrNotFound)

	_, err := t.subject.Buy(mockCtx, &listing.BuyParams{ListingId: 7, Amount: "1"})
	t.ErrorIs(err, domain.ErrListingNotFound)
}

func (t *marketTestsuite) TestBuyFailsFastOnInsufficientBalance() {
	l := t.activeListing()
	t.repo.On("Get", mock.Anything, l.Id, mock.Anything).Return(l, nil)
	t.erc20.On("BalanceOf", mock.Anything, int32(1), string(paymentToken), buyerAddress.Hex()).
		Return(big.NewInt(1), nil)

	_, err := t.subject.Buy(mockCtx, &listing.BuyParams{ListingId: l.Id, Amount: "4"})
	t.ErrorIs(err, domain.ErrInsufficientBalance)
	t.erc20.AssertNotCalled(t.T(), "Approve", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	t.mkt.AssertNotCalled(t.T(), "BuyToken", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (t *marketTestsuite) TestBuyRejectsAmountBeyondRemaining() {
	l := t.activeListing()
	t.repo.On("Get", mock.Anything, l.Id, mock.Anything).Return(l, nil)

	_, err := t.subject.Buy(mockCtx, &listing.BuyParams{ListingId: l.Id, Amount: "11"})
	t.ErrorIs(err, domain.ErrAmountOutOfRange)
}

func (t *marketTestsuite) TestBuyRejectsFractionalAmountBeforeAnyChainCall() {
	l := t.activeListing()
	t.repo.On("Get", mock.Anything, l.Id, mock.Anything).Return(l, nil)

	_, err := t.subject.Buy(mockCtx, &listing.BuyParams{ListingId: l.Id, Amount: "4.5"})
	t.ErrorIs(err, domain.ErrInvalidNumberFormat)
	t.erc20.AssertNotCalled(t.T(), "BalanceOf", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	t.erc20.AssertNotCalled(t.T(), "Approve", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	t.mkt.AssertNotCalled(t.T(), "BuyToken", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (t *marketTestsuite) TestBuyRejectsOverlongReferralCodeBeforeApprove() {
	l := t.activeListing()
	t.repo.On("Get", mock.Anything, l.Id, mock.Anything).Return(l, nil)

	_, err := t.subject.Buy(mockCtx, &listing.BuyParams{
		ListingId:    l.Id,
		Amount:       "4",
		ReferralCode: "this referral code is far too long to pack into bytes32",
	})
	t.ErrorIs(err, domain.ErrReferralCodeTooLong)
	t.erc20.AssertNotCalled(t.T(), "BalanceOf", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	t.erc20.AssertNotCalled(t.T(), "Approve", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (t *marketTestsuite) TestBuySkipsApproveWhenAllowanceCovers() {
	l := t.activeListing()
	receipt := &types.Receipt{
		TxHash:      gethcommon.HexToHash("0x1234"),
		BlockNumber: big.NewInt(99),
	}

	t.repo.On("Get", mock.Anything, l.Id, mock.Anything).Return(l, nil)
	t.erc20.On("BalanceOf", mock.Anything, int32(1), string(paymentToken), buyerAddress.Hex()).
		Return(big.NewInt(100_000_000), nil)
	t.erc20.On("Allowance", mock.Anything, int32(1), string(paymentToken), buyerAddress.Hex(), string(marketplaceAddress)).
		Return(big.NewInt(100_000_000), nil)
	t.mkt.On("BuyToken", mock.Anything, int32(1), t.signer, string(marketplaceAddress), uint64(l.Id), big.NewInt(4), mock.Anything).
		Return(receipt, nil)
	t.listingUC.On("Refresh", mock.Anything).Return(nil)
	t.notifier.On("NotifySold", mock.Anything, l, "4").Return()

	res, err := t.subject.Buy(mockCtx, &listing.BuyParams{ListingId: l.Id, Amount: "4"})
	t.NoError(err)
	t.Equal(domain.TxHash(receipt.TxHash.Hex()), res.TxHash)
	t.Equal(domain.BlockNumber(99), res.BlockNumber)
	t.erc20.AssertNotCalled(t.T(), "Approve", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	t.notifier.AssertCalled(t.T(), "NotifySold", mock.Anything, l, "4")
}

func (t *marketTestsuite) TestBuyApprovesWhenAllowanceIsShort() {
	l := t.activeListing()
	receipt := &types.Receipt{
		TxHash:      gethcommon.HexToHash("0x5678"),
		BlockNumber: big.NewInt(100),
	}

	t.repo.On("Get", mock.Anything, l.Id, mock.Anything).Return(l, nil)
	t.erc20.On("BalanceOf", mock.Anything, int32(1), string(paymentToken), buyerAddress.Hex()).
		Return(big.NewInt(100_000_000), nil)
	t.erc20.On("Allowance", mock.Anything, int32(1), string(paymentToken), buyerAddress.Hex(), string(marketplaceAddress)).
		Return(big.NewInt(0), nil)
	t.erc20.On("Approve", mock.Anything, int32(1), t.signer, string(paymentToken), string(marketplaceAddress), mock.Anything).
		Return(&types.Receipt{}, nil)
	t.mkt.On("BuyToken", mock.Anything, int32(1), t.signer, string(marketplaceAddress), uint64(l.Id), big.NewInt(4), mock.Anything).
		Return(receipt, nil)
	t.listingUC.On("Refresh", mock.Anything).Return(nil)
	t.notifier.On("NotifySold", mock.Anything, l, "4").Return()

	_, err := t.subject.Buy(mockCtx, &listing.BuyParams{ListingId: l.Id, Amount: "4"})
	t.NoError(err)
	t.erc20.AssertCalled(t.T(), "Approve", mock.Anything, int32(1), t.signer, string(paymentToken), string(marketplaceAddress), mock.Anything)
}

func (t *marketTestsuite) TestBuyRejectsInactiveListing() {
	l := t.activeListing()
	l.Active = false
	t.repo.On("Get", mock.Anything, l.Id, mock.Anything).Return(l, nil)

	_, err := t.subject.Buy(mockCtx, &listing.BuyParams{ListingId: l.Id, Amount: "1"})
	t.ErrorIs(err, domain.ErrListingNotPurchasable)
}

func (t *marketTestsuite) TestListRejectsPlatformToken() {
	platform := domain.Address("0x00000000000000000000000000000000000000ff")
	t.payTokens.On("FindOne", mock.Anything, domain.ChainId(1), platform).
		Return(&domain.PayToken{Address: platform, IsPlatform: true}, nil)

	_, err := t.subject.List(mockCtx, &listing.ListParams{
		TokenAddress:  platform,
		Amount:        "10",
		PricePerShare: "1",
	})
	t.ErrorIs(err, domain.ErrCannotListPlatformToken)
}

func (t *marketTestsuite) TestListRejectsOverlongMetadata() {
	p := &listing.ListParams{
		TokenAddress:  domain.Address("0x00000000000000000000000000000000000000ee"),
		Amount:        "10",
		PricePerShare: "1",
	}
	for i := 0; i <= listing.MaxUrlLength; i++ {
		p.Metadata.ImageUrl += "x"
	}

	_, err := t.subject.List(mockCtx, p)
	t.ErrorIs(err, domain.ErrMetadataTooLong)
}

func (t *marketTestsuite) TestCancelRequiresSeller() {
	l := t.activeListing()
	t.repo.On("Get", mock.Anything, l.Id, mock.Anything).Return(l, nil)

	_, err := t.subject.Cancel(mockCtx, l.Id)
	t.ErrorIs(err, domain.ErrBadParamInput)
	t.mkt.AssertNotCalled(t.T(), "CancelListing", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (t *marketTestsuite) TestGenerateReferralCodeRequiresActiveReferral() {
	l := t.activeListing()
	l.ReferralActive = false
	t.repo.On("Get", mock.Anything, l.Id, domain.EmptyAddress).Return(l, nil)

	_, err := t.subject.GenerateReferralCode(mockCtx, l.Id)
	t.ErrorIs(err, domain.ErrBadParamInput)
}
