package usecase

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/accounts"
	gethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/properties-dex/goapi/base/ctx"
	"github.com/properties-dex/goapi/base/ethereum"
	"github.com/properties-dex/goapi/domain"
	"github.com/properties-dex/goapi/domain/account"
	accountMocks "github.com/properties-dex/goapi/domain/account/mocks"
	paytokenMocks "github.com/properties-dex/goapi/domain/mocks"
	contractMocks "github.com/properties-dex/goapi/service/chain/contract/mocks"
	chainMocks "github.com/properties-dex/goapi/service/chain/mocks"
)

var mockCtx = ctx.Background()

const signatureMsgTemplate = "Approve Signature on Properties DEX with nonce %s"

type accountTestsuite struct {
	suite.Suite
	repo      *accountMocks.Repo
	chain     *chainMocks.Client
	erc20     *contractMocks.Erc20Contract
	payTokens *paytokenMocks.PayTokenRepo
	subject   *impl
}

func TestAccount(t *testing.T) {
	suite.Run(t, new(accountTestsuite))
}

func (t *accountTestsuite) SetupTest() {
	t.repo = &accountMocks.Repo{}
	t.chain = &chainMocks.Client{}
	t.erc20 = &contractMocks.Erc20Contract{}
	t.payTokens = &paytokenMocks.PayTokenRepo{}
	t.subject = &impl{
		repo:         t.repo,
		signatureMsg: signatureMsgTemplate,
		chainId:      domain.ChainId(1),
		chain:        t.chain,
		erc20:        t.erc20,
		payTokens:    t.payTokens,
	}
}

func (t *accountTestsuite) TestGenerateNonce() {
	address := domain.Address("0x00000000000000000000000000000000000000aa")
	t.repo.On("Get", mock.Anything, address).Return(&account.Account{Address: address, Nonce: invalidNonce}, nil)
	t.repo.On("Update", mock.Anything, address, mock.Anything).Return(nil)

	nonce, err := t.subject.GenerateNonce(mockCtx, address)
	t.NoError(err)
	t.GreaterOrEqual(nonce, int32(0))
	t.Less(nonce, nonceRange)
	t.repo.AssertNotCalled(t.T(), "Insert", mock.Anything, mock.Anything)
}

func (t *accountTestsuite) TestGenerateNonceCreatesMissingAccount() {
	address := domain.Address("0x00000000000000000000000000000000000000aa")
	t.repo.On("Get", mock.Anything, address).Return(nil, domain.ErrNotFound)
	t.repo.On("Insert", mock.Anything, mock.Anything).Return(nil)
	t.repo.On("Update", mock.Anything, address, mock.Anything).Return(nil)

	_, err := t.subject.GenerateNonce(mockCtx, address)
	t.NoError(err)
	t.repo.AssertCalled(t.T(), "Insert", mock.Anything, mock.Anything)
}

func (t *accountTestsuite) TestValidateSignature() {
	privateKey, publicKey, err := ethereum.GenerateKey()
	t.NoError(err)
	address := domain.Address(crypto.PubkeyToAddress(*publicKey).Hex())
	nonce := int32(123456)

	message := []byte(fmt.Sprintf(signatureMsgTemplate, "123456"))
	signature, err := crypto.Sign(accounts.TextHash(message), privateKey)
	t.NoError(err)

	t.repo.On("Get", mock.Anything, address).Return(&account.Account{Address: address, Nonce: nonce}, nil)
	t.repo.On("Update", mock.Anything, address, &account.Updater{Nonce: invalidNonce}).Return(nil)

	t.NoError(t.subject.ValidateSignature(mockCtx, address, hexutil.Encode(signature)))

	// the nonce is burned even on success
	t.repo.AssertCalled(t.T(), "Update", mock.Anything, address, &account.Updater{Nonce: invalidNonce})
}

func (t *accountTestsuite) TestValidateSignatureRejectsWrongSigner() {
	privateKey, _, err := ethereum.GenerateKey()
	t.NoError(err)
	_, otherPublicKey, err := ethereum.GenerateKey()
	t.NoError(err)
	address := domain.Address(crypto.PubkeyToAddress(*otherPublicKey).Hex())

	message := []byte(fmt.Sprintf(signatureMsgTemplate, "123456"))
	signature, err := crypto.Sign(accounts.TextHash(message), privateKey)
	t.NoError(err)

	t.repo.On("Get", mock.Anything, address).Return(&account.Account{Address: address, Nonce: int32(123456)}, nil)
	t.repo.On("Update", mock.Anything, address, mock.Anything).Return(nil)

	t.ErrorIs(t.subject.ValidateSignature(mockCtx, address, hexutil.Encode(signature)), account.ErrInvalidSignature)
}

func (t *accountTestsuite) TestValidateSignatureRequiresFreshNonce() {
	address := domain.Address("0x00000000000000000000000000000000000000aa")
	t.repo.On("Get", mock.Anything, address).Return(&account.Account{Address: address, Nonce: invalidNonce}, nil)

	err := t.subject.ValidateSignature(mockCtx, address, "0x00")
	t.ErrorIs(err, account.ErrInvalidNonce)
}

func (t *accountTestsuite) TestGetBalances() {
	address := domain.Address("0x00000000000000000000000000000000000000aa")
	platform := &domain.PayToken{Symbol: "PRDX", TokenDecimals: 18, Address: domain.Address("0xp1"), IsPlatform: true}
	stable := &domain.PayToken{Symbol: "USDC", TokenDecimals: 6, Address: domain.Address("0xs1")}

	t.payTokens.On("FindAll", mock.Anything, domain.ChainId(1)).Return([]*domain.PayToken{platform, stable}, nil)
	t.chain.On("BalanceAt", mock.Anything, int32(1), gethcommon.HexToAddress(string(address))).
		Return(new(big.Int).SetUint64(1_500_000_000_000_000_000), nil)
	t.erc20.On("BalanceOf", mock.Anything, int32(1), string(platform.Address), string(address)).
		Return(new(big.Int).SetUint64(2_000_000_000_000_000_000), nil)
	t.erc20.On("BalanceOf", mock.Anything, int32(1), string(stable.Address), string(address)).
		Return(big.NewInt(12_345_678), nil)

	balances, err := t.subject.GetBalances(mockCtx, address)
	t.NoError(err)
	t.Equal("1.500000", balances.Eth)
	t.Equal("2.000000", balances.Platform)
	t.Equal("12.345678", balances.Stable)
}

func TestFormatBalance(t *testing.T) {
	cases := []struct {
		raw      *big.Int
		decimals int32
		want     string
	}{
		{big.NewInt(0), 6, "0.000000"},
		{big.NewInt(1), 6, "0.000001"},
		{big.NewInt(12_345_678), 6, "12.345678"},
		{new(big.Int).SetUint64(1_000_000_000_000_000_000), 18, "1.000000"},
	}
	for _, c := range cases {
		got := formatBalance(c.raw, c.decimals)
		if got != c.want {
			t.Errorf("formatBalance(%s, %d) = %s, want %s", c.raw, c.decimals, got, c.want)
		}
	}
}
