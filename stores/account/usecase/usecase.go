package usecase

import (
	"fmt"
	"math/big"
	"math/rand"
	"strconv"
	"time"

	gethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
	"github.com/viney-shih/goroutines"

	"github.com/properties-dex/goapi/base/ctx"
	"github.com/properties-dex/goapi/base/ethereum"
	"github.com/properties-dex/goapi/base/log"
	"github.com/properties-dex/goapi/domain"
	"github.com/properties-dex/goapi/domain/account"
	"github.com/properties-dex/goapi/service/chain"
	"github.com/properties-dex/goapi/service/chain/contract"
)

const (
	nonceRange   = int32(9999999)
	invalidNonce = int32(-1)

	balanceDisplayDecimals = 6
	nativeDecimals         = 18
)

type AccountUseCaseCfg struct {
	Repo         account.Repo
	SignatureMsg string
	ChainId      domain.ChainId
	Chain        chain.Client
	Erc20        contract.Erc20Contract
	PayTokens    domain.PayTokenRepo
}

type impl struct {
	repo         account.Repo
	signatureMsg string
	chainId      domain.ChainId
	chain        chain.Client
	erc20        contract.Erc20Contract
	payTokens    domain.PayTokenRepo
}

func New(cfg *AccountUseCaseCfg) account.Usecase {
	return &impl{
		repo:         cfg.Repo,
		signatureMsg: cfg.SignatureMsg,
		chainId:      cfg.ChainId,
		chain:        cfg.Chain,
		erc20:        cfg.Erc20,
		payTokens:    cfg.PayTokens,
	}
}

func (im *impl) Create(c ctx.Ctx, address domain.Address) (*account.Account, error) {
	now := time.Now()
	new := &account.Account{
		Address:   address,
		Nonce:     invalidNonce,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := im.repo.Insert(c, new); err != nil {
		c.WithField("err", err).Error("repo.Insert failed")
		return nil, err
	}
	return new, nil
}

func (im *impl) Get(c ctx.Ctx, address domain.Address) (*account.Account, error) {
	return im.repo.Get(c, address)
}

func (im *impl) GenerateNonce(c ctx.Ctx, address domain.Address) (int32, error) {
	c = ctx.WithValue(c, "address", address)
	if _, err := im.Get(c, address); err != nil && err != domain.ErrNotFound {
		c.WithField("err", err).Error("get account failed")
		return 0, err
	} else if err == domain.ErrNotFound {
		// if the account doesn't exist, create an empty account
		if _, err := im.Create(c, address); err != nil {
			c.WithField("err", err).Error("im.Create account failed")
			return 0, err
		}
		c.Info("created new account")
	}

	nonce := im.genNonce()
	if err := im.repo.Update(c, address, &account.Updater{
		Nonce: nonce,
	}); err != nil {
		c.WithField("err", err).Error("repo.Update failed")
		return 0, err
	}
	return nonce, nil
}

func (im *impl) makeMessageWithNonce(nonce string) []byte {
	return []byte(fmt.Sprintf(im.signatureMsg, nonce))
}

func (im *impl) ValidateSignature(c ctx.Ctx, address domain.Address, signature string) error {
	c = ctx.WithValues(c, map[string]interface{}{
		"address":   address,
		"signature": signature,
	})

	// get nonce and check is it valid
	a, err := im.repo.Get(c, address)
	if err != nil {
		c.WithField("err", err).Error("get address failed")
		return err
	}
	if a.Nonce == invalidNonce {
		return account.ErrInvalidNonce
	}

	// reset nonce after validated the signature
	defer im.repo.Update(c, address, &account.Updater{
		Nonce: invalidNonce,
	})

	msg := im.makeMessageWithNonce(strconv.Itoa(int(a.Nonce)))
	if isValid, err := ethereum.ValidateMsgSignature(msg, signature, string(address)); err != nil {
		c.WithField("err", err).Error("ValidateMsgSignature failed")
		return err
	} else if !isValid {
		return account.ErrInvalidSignature
	}
	return nil
}

// GetBalances fetches native, platform and stablecoin balances in parallel
// and renders each as a six-decimal display string.
func (im *impl) GetBalances(c ctx.Ctx, address domain.Address) (*account.Balances, error) {
	pts, err := im.payTokens.FindAll(c, im.chainId)
	if err != nil {
		c.WithField("err", err).Error("payTokens.FindAll failed")
		return nil, err
	}

	res := &account.Balances{}
	b := goroutines.NewBatch(3, goroutines.WithBatchSize(len(pts)+1))
	defer b.Close()

	b.Queue(func() (interface{}, error) {
		balance, err := im.chain.BalanceAt(c, int32(im.chainId), gethcommon.HexToAddress(string(address)))
		if err != nil {
			return nil, err
		}
		res.Eth = formatBalance(balance, nativeDecimals)
		return nil, nil
	})

	for _, pt := range pts {
		pt := pt
		b.Queue(func() (interface{}, error) {
			balance, err := im.erc20.BalanceOf(c, int32(im.chainId), string(pt.Address), string(address))
			if err != nil {
				return nil, err
			}
			if pt.IsPlatform {
				res.Platform = formatBalance(balance, pt.TokenDecimals)
			} else {
				res.Stable = formatBalance(balance, pt.TokenDecimals)
			}
			return nil, nil
		})
	}

	b.QueueComplete()
	for ret := range b.Results() {
		if err := ret.Error(); err != nil {
			c.WithFields(log.Fields{
				"err":     err,
				"address": address,
			}).Error("fetch balance failed")
			return nil, err
		}
	}

	return res, nil
}

func (im *impl) genNonce() int32 {
	return rand.Int31n(nonceRange)
}

func formatBalance(raw *big.Int, decimals int32) string {
	return decimal.NewFromBigInt(raw, -decimals).StringFixed(balanceDisplayDecimals)
}
