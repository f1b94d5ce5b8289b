package ens

import (
	"github.com/properties-dex/goapi/base/ctx"
	"github.com/properties-dex/goapi/domain"
)

type ENS interface {
	Resolve(ctx ctx.Ctx, name string) (domain.Address, error)
	ReverseResolve(ctx ctx.Ctx, address domain.Address) (string, error)
}
