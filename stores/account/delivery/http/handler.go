package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/properties-dex/goapi/base/ctx"
	"github.com/properties-dex/goapi/base/delivery"
	"github.com/properties-dex/goapi/domain"
	"github.com/properties-dex/goapi/domain/account"
	"github.com/properties-dex/goapi/middleware"
)

type handler struct {
	au account.Usecase
}

// New will initialize the account endpoints
func New(e *echo.Echo, au account.Usecase) {
	h := &handler{
		au: au,
	}
	g := e.Group("/account")
	g.GET("/:address/nonce", h.generateNonce, middleware.IsValidAddress("address"))
	g.GET("/:address/balances", h.getBalances, middleware.IsValidAddress("address"))
	g.GET("/:address", h.getAccount, middleware.IsValidAddress("address"))
}

func (h *handler) getAccount(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address := domain.Address(c.Param("address"))
	info, err := h.au.Get(ctx, address)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, info)
}

// generateNonce refreshes the one-time nonce the wallet has to sign to obtain
// an access token.
func (h *handler) generateNonce(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address := domain.Address(c.Param("address"))
	nonce, err := h.au.GenerateNonce(ctx, address)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, nonce)
}

func (h *handler) getBalances(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address := domain.Address(c.Param("address"))
	balances, err := h.au.GetBalances(ctx, address)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, balances)
}
