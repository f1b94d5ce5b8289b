package domain

import (
	"github.com/properties-dex/goapi/base/ctx"
)

type Id struct {
	ChainId ChainId `bson:"chainId"`
	Address Address `bson:"address"`
}

// PayToken is a currency the marketplace accepts for listings, either the
// platform token or a stablecoin. Decimals are cached here so aggregation
// passes do not refetch them per listing.
type PayToken struct {
	Name          string  `bson:"name"`
	Symbol        string  `bson:"symbol"`
	TokenDecimals int32   `bson:"tokenDecimals"`
	ChainId       ChainId `bson:"chainId"`
	Address       Address `bson:"address"`
	IsPlatform    bool    `bson:"isPlatform"`
}

func (t *PayToken) ToId() *Id {
	return &Id{
		ChainId: t.ChainId,
		Address: t.Address,
	}
}

type PayTokenRepo interface {
	FindOne(ctx.Ctx, ChainId, Address) (*PayToken, error)
	FindAll(ctx.Ctx, ChainId) ([]*PayToken, error)
	Create(ctx.Ctx, *PayToken) error
	Upsert(ctx.Ctx, *PayToken) error
}
