package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/properties-dex/goapi/base/ctx"
	"github.com/properties-dex/goapi/base/delivery"
	"github.com/properties-dex/goapi/domain"
	"github.com/properties-dex/goapi/domain/token"
	"github.com/properties-dex/goapi/middleware"
	authMiddleware "github.com/properties-dex/goapi/stores/auth/delivery/http/middleware"
)

type handler struct {
	token token.Usecase
}

// New will initialize the token endpoints
func New(e *echo.Echo, tu token.Usecase, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{
		token: tu,
	}
	g := e.Group("/tokens")
	g.GET("", h.getAll, middleware.CacheHttp(30*time.Second))
	g.GET("/:address", h.get, middleware.IsValidAddress("address"), middleware.CacheHttp(30*time.Second))
	g.POST("", h.create, authMiddleware.Auth(), authMiddleware.IsAdmin())
}

func (h *handler) getAll(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	res, err := h.token.GetAll(ctx)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address := domain.Address(c.Param("address"))
	res, err := h.token.Get(ctx, address)
	if err != nil {
		if err == domain.ErrNotFound {
			return delivery.MakeJsonResp(c, http.StatusNotFound, err)
		}
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// create deploys a new property token through the factory contract.
func (h *handler) create(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := &token.CreateParams{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.token.Create(ctx, p)
	if err != nil {
		switch err {
		case domain.ErrInvalidNumberFormat, domain.ErrAmountOutOfRange:
			return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
		}
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, res)
}
