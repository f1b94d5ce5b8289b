package chain

import (
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	bCtx "github.com/properties-dex/goapi/base/ctx"
	bEthereum "github.com/properties-dex/goapi/base/ethereum"
	"github.com/properties-dex/goapi/base/log"
	"github.com/properties-dex/goapi/service/wallet"
	"golang.org/x/xerrors"
)

var (
	ErrUnsupportedChain = errors.New("unsupported chain")
	ErrReverted         = errors.New("transaction reverted")
)

// defaultRpcConcurrency matches the aggregation fan-out batch size so one
// pass cannot queue more calls than the node accepts.
const defaultRpcConcurrency = 10

type ClientCfg struct {
	RpcUrls map[int32]string
	// RpcConcurrency caps in-flight rpc calls per chain; zero means
	// defaultRpcConcurrency.
	RpcConcurrency int
}

type Client interface {
	Call(bCtx.Ctx, int32, common.Address, *big.Int, abi.ABI, string, ...interface{}) ([]interface{}, error)
	// Transact signs, submits and waits for one confirmation. On a failed
	// receipt the call is replayed to recover the revert reason, which is
	// wrapped into the returned error rather than swallowed.
	Transact(bCtx.Ctx, int32, wallet.Signer, common.Address, abi.ABI, string, ...interface{}) (*types.Receipt, error)
	// BalanceAt returns the native coin balance at the latest block.
	BalanceAt(bCtx.Ctx, int32, common.Address) (*big.Int, error)
}

type clientImpl struct {
	clients  map[int32]*bEthereum.ThrottledClient
	chainIds map[int32]*big.Int
}

func NewClient(ctx bCtx.Ctx, cfg *ClientCfg) (Client, error) {
	concurrency := cfg.RpcConcurrency
	if concurrency <= 0 {
		concurrency = defaultRpcConcurrency
	}

	var anyerr error
	clients := make(map[int32]*bEthereum.ThrottledClient)
	chainIds := make(map[int32]*big.Int)
	for chainId, url := range cfg.RpcUrls {
		client, err := ethclient.DialContext(ctx, url)
		if err != nil {
			anyerr = err
			ctx.WithFields(log.Fields{
				"err":     err,
				"chainId": chainId,
				"url":     url,
			}).Warn("failed to dial rpc")
			// soft warning, still let the server start
			continue
		}
		clients[chainId] = bEthereum.NewThrottledClient(client, concurrency)
		chainIds[chainId] = big.NewInt(int64(chainId))
	}
	return &clientImpl{
		clients:  clients,
		chainIds: chainIds,
	}, anyerr
}

func (c *clientImpl) Call(ctx bCtx.Ctx, chainId int32, addr common.Address, blk *big.Int, _abi abi.ABI, method string, params ...interface{}) ([]interface{}, error) {
	client, ok := c.clients[chainId]
	if !ok {
		return nil, ErrUnsupportedChain
	}

	data, err := _abi.Pack(method, params...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"params": params,
			"err":    err,
		}).Error("abi.Pack failed")
		return nil, err
	}
	msg := ethereum.CallMsg{
		To:   &addr,
		Data: data,
	}
	res, err := client.CallContract(ctx, msg, blk)
	if err != nil {
		ctx.WithField("err", err).Error("client.CallContract failed")
		return nil, err
	}
	unpacked, err := _abi.Unpack(method, res)
	if err != nil {
		ctx.WithField("err", err).Error("abi.Unpack failed")
		return nil, err
	}
	return unpacked, nil
}

func (c *clientImpl) BalanceAt(ctx bCtx.Ctx, chainId int32, addr common.Address) (*big.Int, error) {
	client, ok := c.clients[chainId]
	if !ok {
		return nil, ErrUnsupportedChain
	}
	balance, err := client.BalanceAt(ctx, addr, nil)
	if err != nil {
		ctx.WithField("err", err).Error("client.BalanceAt failed")
		return nil, err
	}
	return balance, nil
}

func (c *clientImpl) Transact(ctx bCtx.Ctx, chainId int32, signer wallet.Signer, addr common.Address, _abi abi.ABI, method string, params ...interface{}) (*types.Receipt, error) {
	client, ok := c.clients[chainId]
	if !ok {
		return nil, ErrUnsupportedChain
	}
	if signer == nil {
		return nil, wallet.ErrNoSigner
	}

	data, err := _abi.Pack(method, params...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"err":    err,
		}).Error("abi.Pack failed")
		return nil, err
	}

	from := signer.Address()
	nonce, err := client.PendingNonceAt(ctx, from)
	if err != nil {
		ctx.WithField("err", err).Error("client.PendingNonceAt failed")
		return nil, err
	}
	gasPrice, err := client.SuggestGasPrice(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("client.SuggestGasPrice failed")
		return nil, err
	}
	msg := ethereum.CallMsg{
		From:     from,
		To:       &addr,
		Data:     data,
		GasPrice: gasPrice,
	}
	gasLimit, err := client.EstimateGas(ctx, msg)
	if err != nil {
		// estimation runs the call, so reverts surface here with a reason
		ctx.WithFields(log.Fields{
			"method": method,
			"err":    err,
		}).Error("client.EstimateGas failed")
		return nil, xerrors.Errorf("%s failed: %s: %w", method, err.Error(), ErrReverted)
	}

	tx := types.NewTransaction(nonce, addr, common.Big0, gasLimit, gasPrice, data)
	signed, err := signer.SignTx(c.chainIds[chainId], tx)
	if err != nil {
		ctx.WithField("err", err).Error("signer.SignTx failed")
		return nil, err
	}
	if err := client.SendTransaction(ctx, signed); err != nil {
		ctx.WithField("err", err).Error("client.SendTransaction failed")
		return nil, err
	}

	ctx.WithFields(log.Fields{
		"method": method,
		"txHash": signed.Hash().Hex(),
	}).Info("transaction submitted")

	receipt, err := bind.WaitMined(ctx, client, signed)
	if err != nil {
		ctx.WithField("err", err).Error("bind.WaitMined failed")
		return nil, err
	}
	if receipt.Status == types.ReceiptStatusFailed {
		reason := c.revertReason(ctx, client, from, signed, receipt.BlockNumber)
		return nil, xerrors.Errorf("%s failed: %s: %w", method, reason, ErrReverted)
	}
	return receipt, nil
}

// revertReason replays a failed transaction as a call at its mined block to
// recover the contract-provided reason string.
func (c *clientImpl) revertReason(ctx bCtx.Ctx, client *bEthereum.ThrottledClient, from common.Address, tx *types.Transaction, blk *big.Int) string {
	msg := ethereum.CallMsg{
		From:     from,
		To:       tx.To(),
		Gas:      tx.Gas(),
		GasPrice: tx.GasPrice(),
		Value:    tx.Value(),
		Data:     tx.Data(),
	}
	if _, err := client.CallContract(ctx, msg, blk); err != nil {
		return err.Error()
	}
	return "no revert reason"
}
