package contract

import (
	"math/big"

	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	baseabi "github.com/properties-dex/goapi/base/abi"
	bCtx "github.com/properties-dex/goapi/base/ctx"
	"github.com/properties-dex/goapi/service/chain"
	"github.com/properties-dex/goapi/service/wallet"
)

type CreateTokenArgs struct {
	Name          string
	Symbol        string
	InitialSupply *big.Int
	ImageLink     string
	ProjectDesc   string
	WebsiteLink   string
	TwitterLink   string
	TelegramLink  string
}

type TokenCreatorContract interface {
	CreateToken(ctx bCtx.Ctx, chainId int32, signer wallet.Signer, addr string, args *CreateTokenArgs) (*types.Receipt, error)
	GetTokenDetails(ctx bCtx.Ctx, chainId int32, addr string, token string) (*baseabi.TokenDetails, error)
}

type TokenCreator struct {
	chainService chain.Client
	abi          ethabi.ABI
}

func NewTokenCreator(chainService chain.Client) *TokenCreator {
	return &TokenCreator{
		abi:          baseabi.TokenCreatorABI,
		chainService: chainService,
	}
}

func (t *TokenCreator) CreateToken(ctx bCtx.Ctx, chainId int32, signer wallet.Signer, addr string, args *CreateTokenArgs) (*types.Receipt, error) {
	return t.chainService.Transact(ctx, chainId, signer, common.HexToAddress(addr), t.abi, "createToken",
		args.Name,
		args.Symbol,
		args.InitialSupply,
		args.ImageLink,
		args.ProjectDesc,
		args.WebsiteLink,
		args.TwitterLink,
		args.TelegramLink,
	)
}

func (t *TokenCreator) GetTokenDetails(ctx bCtx.Ctx, chainId int32, addr string, token string) (*baseabi.TokenDetails, error) {
	unpacked, err := t.chainService.Call(ctx, chainId, common.HexToAddress(addr), nil, t.abi, "getTokenDetails", common.HexToAddress(token))
	if err != nil {
		return nil, err
	}
	return &baseabi.TokenDetails{
		TokenAddress:       unpacked[0].(common.Address),
		Name:               unpacked[1].(string),
		Symbol:             unpacked[2].(string),
		InitialSupply:      unpacked[3].(*big.Int),
		Creator:            unpacked[4].(common.Address),
		ImageUrl:           unpacked[5].(string),
		ProjectDescription: unpacked[6].(string),
		WebsiteUrl:         unpacked[7].(string),
		TwitterUrl:         unpacked[8].(string),
	}, nil
}
