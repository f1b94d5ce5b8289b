package usecase

import (
	"math/big"
	"testing"

	gethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	baseabi "github.com/properties-dex/goapi/base/abi"
	"github.com/properties-dex/goapi/base/ctx"
	"github.com/properties-dex/goapi/domain"
	"github.com/properties-dex/goapi/domain/token"
	tokenMocks "github.com/properties-dex/goapi/domain/token/mocks"
	contractMocks "github.com/properties-dex/goapi/service/chain/contract/mocks"
	walletMocks "github.com/properties-dex/goapi/service/wallet/mocks"
)

var mockCtx = ctx.Background()

const creatorAddr = "0x00000000000000000000000000000000000000dd"

type tokenTestsuite struct {
	suite.Suite
	creator *contractMocks.TokenCreatorContract
	repo    *tokenMocks.Repo
	signer  *walletMocks.Signer
	subject *impl
}

func TestToken(t *testing.T) {
	suite.Run(t, new(tokenTestsuite))
}

func (t *tokenTestsuite) SetupTest() {
	t.creator = &contractMocks.TokenCreatorContract{}
	t.repo = &tokenMocks.Repo{}
	t.signer = &walletMocks.Signer{}
	t.subject = &impl{
		chainId:      domain.ChainId(1),
		tokenCreator: domain.Address(creatorAddr),
		creator:      t.creator,
		repo:         t.repo,
		signer:       t.signer,
	}
}

func (t *tokenTestsuite) onchainDetails(addr gethcommon.Address) *baseabi.TokenDetails {
	return &baseabi.TokenDetails{
		TokenAddress:       addr,
		Name:               "Riverside Plaza",
		Symbol:             "RVP",
		InitialSupply:      big.NewInt(1000),
		Creator:            gethcommon.HexToAddress("0xbb"),
		ImageUrl:           "ipfs://img",
		ProjectDescription: "waterfront offices",
		WebsiteUrl:         "https://plaza.example",
	}
}

func (t *tokenTestsuite) TestCreate() {
	tokenAddr := gethcommon.HexToAddress("0x00000000000000000000000000000000000000ee")
	receipt := &types.Receipt{
		TxHash:      gethcommon.HexToHash("0x1234"),
		BlockNumber: big.NewInt(7),
		Logs:        []*types.Log{{Address: tokenAddr}},
	}

	t.creator.On("CreateToken", mockCtx, int32(1), t.signer, creatorAddr, mock.Anything).Return(receipt, nil)
	t.creator.On("GetTokenDetails", mockCtx, int32(1), creatorAddr, domain.Address(tokenAddr.Hex()).ToLowerStr()).
		Return(t.onchainDetails(tokenAddr), nil)
	t.repo.On("Upsert", mockCtx, mock.Anything).Return(nil)

	details, err := t.subject.Create(mockCtx, &token.CreateParams{
		Name:          "Riverside Plaza",
		Symbol:        "RVP",
		InitialSupply: "1000",
		TelegramUrl:   "https://t.me/plaza",
	})
	t.NoError(err)
	t.Equal(domain.Address(tokenAddr.Hex()).ToLower(), details.Address)
	t.Equal("1000", details.InitialSupply)
	// the on-chain details view drops the telegram link, it must survive
	// from the creation params
	t.Equal("https://t.me/plaza", details.TelegramUrl)
}

func (t *tokenTestsuite) TestCreateRejectsFractionalSupply() {
	_, err := t.subject.Create(mockCtx, &token.CreateParams{
		Name:          "Riverside Plaza",
		Symbol:        "RVP",
		InitialSupply: "10.5",
	})
	t.ErrorIs(err, domain.ErrInvalidNumberFormat)
	t.creator.AssertNotCalled(t.T(), "CreateToken", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (t *tokenTestsuite) TestCreateFailsWithoutLogs() {
	receipt := &types.Receipt{
		TxHash:      gethcommon.HexToHash("0x1234"),
		BlockNumber: big.NewInt(7),
	}
	t.creator.On("CreateToken", mockCtx, int32(1), t.signer, creatorAddr, mock.Anything).Return(receipt, nil)

	_, err := t.subject.Create(mockCtx, &token.CreateParams{
		Name:          "Riverside Plaza",
		Symbol:        "RVP",
		InitialSupply: "1000",
	})
	t.ErrorIs(err, domain.ErrInternalServerError)
}

func (t *tokenTestsuite) TestGetPrefersRegistry() {
	addr := domain.Address("0x00000000000000000000000000000000000000ee")
	want := &token.Details{Address: addr, Name: "Riverside Plaza"}
	t.repo.On("FindOne", mockCtx, domain.ChainId(1), addr).Return(want, nil)

	got, err := t.subject.Get(mockCtx, addr)
	t.NoError(err)
	t.Equal(want, got)
	t.creator.AssertNotCalled(t.T(), "GetTokenDetails", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (t *tokenTestsuite) TestGetFallsBackToChainAndWarmsRegistry() {
	addr := gethcommon.HexToAddress("0x00000000000000000000000000000000000000ee")
	lower := domain.Address(addr.Hex()).ToLower()
	t.repo.On("FindOne", mockCtx, domain.ChainId(1), lower).Return(nil, domain.ErrNotFound)
	t.creator.On("GetTokenDetails", mockCtx, int32(1), creatorAddr, string(lower)).
		Return(t.onchainDetails(addr), nil)
	t.repo.On("Upsert", mockCtx, mock.Anything).Return(nil)

	got, err := t.subject.Get(mockCtx, lower)
	t.NoError(err)
	t.Equal(lower, got.Address)
	t.repo.AssertCalled(t.T(), "Upsert", mockCtx, mock.Anything)
}
