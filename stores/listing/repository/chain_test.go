package repository

import (
	"math/big"
	"testing"
	"time"

	gethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"golang.org/x/xerrors"

	baseabi "github.com/properties-dex/goapi/base/abi"
	"github.com/properties-dex/goapi/base/ctx"
	"github.com/properties-dex/goapi/domain"
	paytokenMocks "github.com/properties-dex/goapi/domain/mocks"
	contractMocks "github.com/properties-dex/goapi/service/chain/contract/mocks"
)

var mockCtx = ctx.Background()

const marketplaceAddr = "0x00000000000000000000000000000000000000dd"

type chainRepoTestsuite struct {
	suite.Suite
	mkt       *contractMocks.MarketplaceContract
	erc20     *contractMocks.Erc20Contract
	payTokens *paytokenMocks.PayTokenRepo
	subject   *chainRepo
}

func TestChainRepo(t *testing.T) {
	suite.Run(t, new(chainRepoTestsuite))
}

func (t *chainRepoTestsuite) SetupTest() {
	t.mkt = &contractMocks.MarketplaceContract{}
	t.erc20 = &contractMocks.Erc20Contract{}
	t.payTokens = &paytokenMocks.PayTokenRepo{}
	t.subject = &chainRepo{
		chainId:     domain.ChainId(1),
		marketplace: marketplaceAddr,
		mkt:         t.mkt,
		erc20:       t.erc20,
		payTokens:   t.payTokens,
	}
}

func (t *chainRepoTestsuite) details(seller, token, payment gethcommon.Address, amount, price int64) *baseabi.ListingMainDetails {
	return &baseabi.ListingMainDetails{
		Seller:          seller,
		TokenAddress:    token,
		Amount:          big.NewInt(amount),
		PricePerShare:   big.NewInt(price),
		PaymentToken:    payment,
		Active:          true,
		ReferralPercent: big.NewInt(0),
		EndTime:         big.NewInt(time.Now().Add(time.Hour).Unix()),
	}
}

func (t *chainRepoTestsuite) TestGetKeepsHumanUnits() {
	seller := gethcommon.HexToAddress("0xbb")
	token := gethcommon.HexToAddress("0xee")
	payment := gethcommon.HexToAddress("0xcc")

	t.mkt.On("GetListingMainDetails", mockCtx, int32(1), marketplaceAddr, uint64(3)).
		Return(t.details(seller, token, payment, 250, 4), nil)
	t.mkt.On("GetListingMetadata", mockCtx, int32(1), marketplaceAddr, uint64(3)).
		Return(&baseabi.ListingMetadataTuple{ProjectWebsite: "https://plaza.example"}, nil)
	t.erc20.On("Name", mockCtx, int32(1), token.Hex()).Return("Riverside Plaza", nil)
	t.erc20.On("Symbol", mockCtx, int32(1), token.Hex()).Return("RVP", nil)
	t.erc20.On("Decimals", mockCtx, int32(1), token.Hex()).Return(uint8(18), nil)
	t.payTokens.On("FindOne", mockCtx, domain.ChainId(1), domain.Address(payment.Hex()).ToLower()).
		Return(&domain.PayToken{Symbol: "USDC", TokenDecimals: 6}, nil)

	l, err := t.subject.Get(mockCtx, domain.ListingId(3), domain.EmptyAddress)
	t.NoError(err)
	// the contract already stores whole human units; the sold token's 18
	// decimals must not shift these figures
	t.Equal("250", l.Token.Amount)
	t.Equal("4", l.Token.PricePerShare)
	t.Equal("USDC", l.PaymentTokenSymbol)
	t.Equal(int32(6), l.PaymentTokenDecimals)
	t.Equal("https://plaza.example", l.Metadata.ProjectWebsite)
	t.False(l.IsOwner)
}

func (t *chainRepoTestsuite) TestGetStampsOwnerCaseInsensitively() {
	seller := gethcommon.HexToAddress("0x00000000000000000000000000000000000000AB")
	token := gethcommon.HexToAddress("0xee")
	payment := gethcommon.HexToAddress("0xcc")

	t.mkt.On("GetListingMainDetails", mockCtx, int32(1), marketplaceAddr, uint64(0)).
		Return(t.details(seller, token, payment, 10, 1), nil)
	t.mkt.On("GetListingMetadata", mockCtx, int32(1), marketplaceAddr, uint64(0)).
		Return(&baseabi.ListingMetadataTuple{}, nil)
	t.erc20.On("Name", mockCtx, int32(1), token.Hex()).Return("Riverside Plaza", nil)
	t.erc20.On("Symbol", mockCtx, int32(1), token.Hex()).Return("RVP", nil)
	t.erc20.On("Decimals", mockCtx, int32(1), token.Hex()).Return(uint8(18), nil)
	t.payTokens.On("FindOne", mockCtx, domain.ChainId(1), domain.Address(payment.Hex()).ToLower()).
		Return(&domain.PayToken{Symbol: "USDC", TokenDecimals: 6}, nil)

	l, err := t.subject.Get(mockCtx, domain.ListingId(0), domain.Address(seller.Hex()).ToLower())
	t.NoError(err)
	t.True(l.IsOwner)
}

func (t *chainRepoTestsuite) TestGetAllSkipsBrokenIndexes() {
	seller := gethcommon.HexToAddress("0xbb")
	token := gethcommon.HexToAddress("0xee")
	payment := gethcommon.HexToAddress("0xcc")

	t.mkt.On("ListingCount", mockCtx, int32(1), marketplaceAddr).Return(uint64(3), nil)
	for _, id := range []uint64{0, 2} {
		t.mkt.On("GetListingMainDetails", mockCtx, int32(1), marketplaceAddr, id).
			Return(t.details(seller, token, payment, 10, 1), nil)
		t.mkt.On("GetListingMetadata", mockCtx, int32(1), marketplaceAddr, id).
			Return(&baseabi.ListingMetadataTuple{}, nil)
	}
	t.mkt.On("GetListingMainDetails", mockCtx, int32(1), marketplaceAddr, uint64(1)).
		Return(nil, xerrors.New("execution reverted"))
	t.mkt.On("GetListingMetadata", mockCtx, int32(1), marketplaceAddr, uint64(1)).
		Return(&baseabi.ListingMetadataTuple{}, nil)
	t.erc20.On("Name", mockCtx, int32(1), token.Hex()).Return("Riverside Plaza", nil)
	t.erc20.On("Symbol", mockCtx, int32(1), token.Hex()).Return("RVP", nil)
	t.erc20.On("Decimals", mockCtx, int32(1), token.Hex()).Return(uint8(18), nil)
	t.payTokens.On("FindOne", mockCtx, domain.ChainId(1), domain.Address(payment.Hex()).ToLower()).
		Return(&domain.PayToken{Symbol: "USDC", TokenDecimals: 6}, nil)

	ls, err := t.subject.GetAll(mockCtx, domain.EmptyAddress)
	t.NoError(err)
	t.Len(ls, 2)
	t.Equal(domain.ListingId(0), ls[0].Id)
	t.Equal(domain.ListingId(2), ls[1].Id)
}

func (t *chainRepoTestsuite) TestGetAllEmptyMarketplace() {
	t.mkt.On("ListingCount", mockCtx, int32(1), marketplaceAddr).Return(uint64(0), nil)

	ls, err := t.subject.GetAll(mockCtx, domain.EmptyAddress)
	t.NoError(err)
	t.Empty(ls)
}

func TestFormatTimeRemaining(t *testing.T) {
	now := int64(0)
	assert.Equal(t, "Expired", FormatTimeRemaining(0, now))
	assert.Equal(t, "Expired", FormatTimeRemaining(-10, now))
	assert.Equal(t, "1d 2h 3m", FormatTimeRemaining(24*3600+2*3600+3*60+5, now))
	assert.Equal(t, "0d 0h 0m", FormatTimeRemaining(30, now))
}
