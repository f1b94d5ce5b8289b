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

// MaxUint256 is used for effectively-unlimited approvals so later purchases
// can skip the approve step.
var MaxUint256 = new(big.Int).Sub(new(big.Int).Lsh(common.Big1, 256), common.Big1)

type Erc20Contract interface {
	Name(ctx bCtx.Ctx, chainId int32, token string) (string, error)
	Symbol(ctx bCtx.Ctx, chainId int32, token string) (string, error)
	Decimals(ctx bCtx.Ctx, chainId int32, token string) (uint8, error)
	BalanceOf(ctx bCtx.Ctx, chainId int32, token, account string) (*big.Int, error)
	TotalSupply(ctx bCtx.Ctx, chainId int32, token string) (*big.Int, error)
	Allowance(ctx bCtx.Ctx, chainId int32, token, owner, spender string) (*big.Int, error)
	Approve(ctx bCtx.Ctx, chainId int32, signer wallet.Signer, token, spender string, amount *big.Int) (*types.Receipt, error)
}

type Erc20 struct {
	chainService chain.Client
	abi          ethabi.ABI
}

func NewErc20(chainService chain.Client) *Erc20 {
	return &Erc20{
		abi:          baseabi.ERC20TokenABI,
		chainService: chainService,
	}
}

func (e *Erc20) Name(ctx bCtx.Ctx, chainId int32, token string) (string, error) {
	unpacked, err := e.chainService.Call(ctx, chainId, common.HexToAddress(token), nil, e.abi, "name")
	if err != nil {
		return "", err
	}
	return unpacked[0].(string), nil
}

func (e *Erc20) Symbol(ctx bCtx.Ctx, chainId int32, token string) (string, error) {
	unpacked, err := e.chainService.Call(ctx, chainId, common.HexToAddress(token), nil, e.abi, "symbol")
	if err != nil {
		return "", err
	}
	return unpacked[0].(string), nil
}

func (e *Erc20) Decimals(ctx bCtx.Ctx, chainId int32, token string) (uint8, error) {
	unpacked, err := e.chainService.Call(ctx, chainId, common.HexToAddress(token), nil, e.abi, "decimals")
	if err != nil {
		return 0, err
	}
	return unpacked[0].(uint8), nil
}

func (e *Erc20) BalanceOf(ctx bCtx.Ctx, chainId int32, token, account string) (*big.Int, error) {
	unpacked, err := e.chainService.Call(ctx, chainId, common.HexToAddress(token), nil, e.abi, "balanceOf", common.HexToAddress(account))
	if err != nil {
		return nil, err
	}
	return unpacked[0].(*big.Int), nil
}

func (e *Erc20) TotalSupply(ctx bCtx.Ctx, chainId int32, token string) (*big.Int, error) {
	unpacked, err := e.chainService.Call(ctx, chainId, common.HexToAddress(token), nil, e.abi, "totalSupply")
	if err != nil {
		return nil, err
	}
	return unpacked[0].(*big.Int), nil
}

func (e *Erc20) Allowance(ctx bCtx.Ctx, chainId int32, token, owner, spender string) (*big.Int, error) {
	unpacked, err := e.chainService.Call(ctx, chainId, common.HexToAddress(token), nil, e.abi, "allowance", common.HexToAddress(owner), common.HexToAddress(spender))
	if err != nil {
		return nil, err
	}
	return unpacked[0].(*big.Int), nil
}

func (e *Erc20) Approve(ctx bCtx.Ctx, chainId int32, signer wallet.Signer, token, spender string, amount *big.Int) (*types.Receipt, error) {
	return e.chainService.Transact(ctx, chainId, signer, common.HexToAddress(token), e.abi, "approve", common.HexToAddress(spender), amount)
}
