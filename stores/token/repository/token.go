package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	bCtx "github.com/properties-dex/goapi/base/ctx"
	"github.com/properties-dex/goapi/domain"
	"github.com/properties-dex/goapi/domain/token"
	"github.com/properties-dex/goapi/service/query"
)

type tokenMongoRepo struct {
	q query.Mongo
}

func NewTokenRepo(q query.Mongo) token.Repo {
	return &tokenMongoRepo{
		q: q,
	}
}

func (r *tokenMongoRepo) FindOne(ctx bCtx.Ctx, chainId domain.ChainId, address domain.Address) (*token.Details, error) {
	details := &token.Details{}
	qry := bson.M{"chainId": chainId, "address": address.ToLower()}
	if err := r.q.FindOne(ctx, domain.TableTokens, qry, details); err != nil {
		if err == query.ErrNotFound {
			return nil, domain.ErrNotFound
		}
		ctx.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}
	return details, nil
}

func (r *tokenMongoRepo) FindAll(ctx bCtx.Ctx, chainId domain.ChainId) ([]*token.Details, error) {
	details := []*token.Details{}
	if err := r.q.Search(ctx, domain.TableTokens, 0, 0, "name", bson.M{"chainId": chainId}, &details); err != nil {
		ctx.WithField("err", err).Error("q.Search failed")
		return nil, err
	}
	return details, nil
}

func (r *tokenMongoRepo) Upsert(ctx bCtx.Ctx, details *token.Details) error {
	details.Address = details.Address.ToLower()
	selector := bson.M{"chainId": details.ChainId, "address": details.Address}
	if err := r.q.Upsert(ctx, domain.TableTokens, selector, details); err != nil {
		ctx.WithField("err", err).Error("q.Upsert failed")
		return err
	}
	return nil
}
