package token

import (
	"github.com/properties-dex/goapi/base/ctx"
	"github.com/properties-dex/goapi/domain"
)

// Details mirrors the token creator contract's getTokenDetails tuple.
type Details struct {
	Address            domain.Address `json:"address" bson:"address"`
	Name               string         `json:"name" bson:"name"`
	Symbol             string         `json:"symbol" bson:"symbol"`
	InitialSupply      string         `json:"initialSupply" bson:"initialSupply"`
	Creator            domain.Address `json:"creator" bson:"creator"`
	ImageUrl           string         `json:"imageUrl" bson:"imageUrl"`
	ProjectDescription string         `json:"projectDescription" bson:"projectDescription"`
	WebsiteUrl         string         `json:"websiteUrl" bson:"websiteUrl"`
	TwitterUrl         string         `json:"twitterUrl" bson:"twitterUrl"`
	TelegramUrl        string         `json:"telegramUrl" bson:"telegramUrl"`
	ChainId            domain.ChainId `json:"chainId" bson:"chainId"`
}

type CreateParams struct {
	Name               string `json:"name" validate:"required"`
	Symbol             string `json:"symbol" validate:"required"`
	InitialSupply      string `json:"initialSupply" validate:"required"`
	ImageUrl           string `json:"imageUrl"`
	ProjectDescription string `json:"projectDescription"`
	WebsiteUrl         string `json:"websiteUrl"`
	TwitterUrl         string `json:"twitterUrl"`
	TelegramUrl        string `json:"telegramUrl"`
}

// Repo keeps a registry of tokens created through the factory, so browsing
// does not need a chain round trip per request.
type Repo interface {
	FindOne(ctx.Ctx, domain.ChainId, domain.Address) (*Details, error)
	FindAll(ctx.Ctx, domain.ChainId) ([]*Details, error)
	Upsert(ctx.Ctx, *Details) error
}

type Usecase interface {
	Create(c ctx.Ctx, p *CreateParams) (*Details, error)
	Get(c ctx.Ctx, address domain.Address) (*Details, error)
	GetAll(c ctx.Ctx) ([]*Details, error)
}
