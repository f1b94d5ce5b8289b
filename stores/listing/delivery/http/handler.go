package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/properties-dex/goapi/base/ctx"
	"github.com/properties-dex/goapi/base/delivery"
	"github.com/properties-dex/goapi/domain"
	"github.com/properties-dex/goapi/domain/listing"
	authMiddleware "github.com/properties-dex/goapi/stores/auth/delivery/http/middleware"
	"github.com/properties-dex/goapi/stores/listing/usecase"
)

type handler struct {
	listing listing.Usecase
	market  listing.MarketUsecase
	siteUrl string
}

// New will initialize the listing endpoints
func New(e *echo.Echo, lu listing.Usecase, mu listing.MarketUsecase, siteUrl string, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{
		listing: lu,
		market:  mu,
		siteUrl: siteUrl,
	}
	g := e.Group("/listings")
	g.GET("", h.browse, authMiddleware.OptionalAuth())
	g.GET("/:id", h.get, authMiddleware.OptionalAuth())
	g.POST("", h.list, authMiddleware.Auth())
	g.DELETE("/:id", h.cancel, authMiddleware.Auth())
	g.POST("/:id/purchases", h.buy, authMiddleware.Auth())
	g.POST("/:id/referral-codes", h.generateReferralCode, authMiddleware.Auth())
	g.GET("/:id/referral-link", h.getReferralLink)

	e.GET("/referral-link/parse", h.parseReferralLink)
}

func (h *handler) viewer(c echo.Context) domain.Address {
	if address, ok := c.Get("address").(domain.Address); ok {
		return address
	}
	return domain.EmptyAddress
}

func listingId(c echo.Context) (domain.ListingId, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, domain.ErrBadParamInput
	}
	return domain.ListingId(id), nil
}

// browse returns the aggregated listings filtered to the requested status
// tab, optionally searched and sorted.
func (h *handler) browse(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	opts := &listing.BrowseOptions{
		Status:  listing.Status(c.QueryParam("status")),
		SortBy:  listing.SortBy(c.QueryParam("sortBy")),
		SortDir: domain.SortDirAsc,
		Search:  c.QueryParam("search"),
		Viewer:  h.viewer(c),
	}
	if opts.Status != "" && !opts.Status.IsValid() {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}
	if c.QueryParam("sortDir") == "desc" {
		opts.SortDir = domain.SortDirDesc
	}

	res, err := h.listing.Browse(ctx, opts)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id, err := listingId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.listing.Get(ctx, id, h.viewer(c))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := &listing.ListParams{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.market.List(ctx, p)
	if err != nil {
		switch err {
		case domain.ErrCannotListPlatformToken, domain.ErrMetadataTooLong, domain.ErrInvalidNumberFormat, domain.ErrAmountOutOfRange:
			return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
		case domain.ErrInsufficientBalance:
			return delivery.MakeJsonResp(c, http.StatusUnprocessableEntity, err)
		}
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, res)
}

func (h *handler) cancel(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id, err := listingId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.market.Cancel(ctx, id)
	if err != nil {
		if err == domain.ErrListingNotFound {
			return delivery.MakeJsonResp(c, http.StatusNotFound, err)
		}
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) buy(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id, err := listingId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	p := &listing.BuyParams{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	p.ListingId = id

	res, err := h.market.Buy(ctx, p)
	if err != nil {
		switch err {
		case domain.ErrListingNotFound:
			return delivery.MakeJsonResp(c, http.StatusNotFound, err)
		case domain.ErrListingNotPurchasable, domain.ErrAmountOutOfRange, domain.ErrInvalidNumberFormat, domain.ErrReferralCodeTooLong:
			return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
		case domain.ErrInsufficientBalance, domain.ErrInsufficientAllowance:
			return delivery.MakeJsonResp(c, http.StatusUnprocessableEntity, err)
		}
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, res)
}

func (h *handler) generateReferralCode(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id, err := listingId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	code, err := h.market.GenerateReferralCode(ctx, id)
	if err != nil {
		switch err {
		case domain.ErrListingNotFound:
			return delivery.MakeJsonResp(c, http.StatusNotFound, err)
		case domain.ErrBadParamInput:
			return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
		}
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, code)
}

// getReferralLink renders a shareable link carrying the listing id and the
// referral code passed in the query.
func (h *handler) getReferralLink(c echo.Context) error {
	id, err := listingId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	link := usecase.BuildReferralLink(h.siteUrl, id, c.QueryParam("code"))
	res := struct {
		Link string `json:"link"`
	}{
		Link: link,
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) parseReferralLink(c echo.Context) error {
	id, code, err := usecase.ParseReferralLink(c.QueryParam("url"))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	res := struct {
		ListingId    domain.ListingId `json:"listingId"`
		ReferralCode string           `json:"referralCode"`
	}{
		ListingId:    id,
		ReferralCode: code,
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
