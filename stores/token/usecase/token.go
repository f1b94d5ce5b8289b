package usecase

import (
	baseabi "github.com/properties-dex/goapi/base/abi"
	"github.com/properties-dex/goapi/base/ctx"
	"github.com/properties-dex/goapi/base/log"
	"github.com/properties-dex/goapi/domain"
	"github.com/properties-dex/goapi/domain/token"
	"github.com/properties-dex/goapi/service/chain/contract"
	"github.com/properties-dex/goapi/service/wallet"
)

type TokenUseCaseCfg struct {
	ChainId             domain.ChainId
	TokenCreatorAddress domain.Address
	TokenCreator        contract.TokenCreatorContract
	Repo                token.Repo
	Signer              wallet.Signer
}

type impl struct {
	chainId      domain.ChainId
	tokenCreator domain.Address
	creator      contract.TokenCreatorContract
	repo         token.Repo
	signer       wallet.Signer
}

func New(cfg *TokenUseCaseCfg) token.Usecase {
	return &impl{
		chainId:      cfg.ChainId,
		tokenCreator: cfg.TokenCreatorAddress,
		creator:      cfg.TokenCreator,
		repo:         cfg.Repo,
		signer:       cfg.Signer,
	}
}

func (im *impl) Create(c ctx.Ctx, p *token.CreateParams) (*token.Details, error) {
	supply, err := domain.ParseHumanAmount(p.InitialSupply)
	if err != nil {
		return nil, domain.ErrInvalidNumberFormat
	}
	if supply.Sign() <= 0 {
		return nil, domain.ErrAmountOutOfRange
	}

	receipt, err := im.creator.CreateToken(c, int32(im.chainId), im.signer, string(im.tokenCreator), &contract.CreateTokenArgs{
		Name:          p.Name,
		Symbol:        p.Symbol,
		InitialSupply: supply,
		ImageLink:     p.ImageUrl,
		ProjectDesc:   p.ProjectDescription,
		WebsiteLink:   p.WebsiteUrl,
		TwitterLink:   p.TwitterUrl,
		TelegramLink:  p.TelegramUrl,
	})
	if err != nil {
		c.WithField("err", err).Error("tokenCreator.CreateToken failed")
		return nil, err
	}

	// the freshly deployed token mints its initial supply in the same tx, so
	// the first log is emitted by the token contract itself
	if len(receipt.Logs) == 0 {
		c.WithField("txHash", receipt.TxHash.Hex()).Error("createToken receipt carries no logs")
		return nil, domain.ErrInternalServerError
	}
	tokenAddress := domain.Address(receipt.Logs[0].Address.Hex()).ToLower()

	details, err := im.fetch(c, tokenAddress)
	if err != nil {
		return nil, err
	}
	// the details view omits the telegram link, carry it over from the input
	details.TelegramUrl = p.TelegramUrl

	if err := im.repo.Upsert(c, details); err != nil {
		c.WithField("err", err).Error("repo.Upsert failed")
		return nil, err
	}
	return details, nil
}

func (im *impl) Get(c ctx.Ctx, address domain.Address) (*token.Details, error) {
	details, err := im.repo.FindOne(c, im.chainId, address)
	if err == nil {
		return details, nil
	}
	if err != domain.ErrNotFound {
		return nil, err
	}

	// tokens created outside this service are fetched from chain and cached
	details, err = im.fetch(c, address)
	if err != nil {
		return nil, err
	}
	if err := im.repo.Upsert(c, details); err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"address": address,
		}).Warn("repo.Upsert failed")
	}
	return details, nil
}

func (im *impl) GetAll(c ctx.Ctx) ([]*token.Details, error) {
	return im.repo.FindAll(c, im.chainId)
}

func (im *impl) fetch(c ctx.Ctx, address domain.Address) (*token.Details, error) {
	onchain, err := im.creator.GetTokenDetails(c, int32(im.chainId), string(im.tokenCreator), string(address))
	if err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"address": address,
		}).Error("tokenCreator.GetTokenDetails failed")
		return nil, err
	}
	return toDetails(im.chainId, onchain), nil
}

func toDetails(chainId domain.ChainId, d *baseabi.TokenDetails) *token.Details {
	return &token.Details{
		Address:            domain.Address(d.TokenAddress.Hex()).ToLower(),
		Name:               d.Name,
		Symbol:             d.Symbol,
		InitialSupply:      d.InitialSupply.String(),
		Creator:            domain.Address(d.Creator.Hex()).ToLower(),
		ImageUrl:           d.ImageUrl,
		ProjectDescription: d.ProjectDescription,
		WebsiteUrl:         d.WebsiteUrl,
		TwitterUrl:         d.TwitterUrl,
		TelegramUrl:        d.TelegramUrl,
		ChainId:            chainId,
	}
}
