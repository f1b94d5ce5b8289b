package domain

import (
	"github.com/golang-jwt/jwt"
	"github.com/properties-dex/goapi/base/ctx"
)

type JwtCustomClaims struct {
	Address string `json:"data"` // name data for backward compatibility
	jwt.StandardClaims
}

type AuthUsecase interface {
	// SignToken issues a JWT for address after verifying the signature over
	// the account's current nonce.
	SignToken(ctx ctx.Ctx, address Address, signature string) (string, error)
	ParseToken(ctx ctx.Ctx, token string) (address string, err error)
}
