package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/properties-dex/goapi/base/ctx"
	"github.com/properties-dex/goapi/base/delivery"
	"github.com/properties-dex/goapi/domain"
	"github.com/properties-dex/goapi/domain/file"
	"github.com/properties-dex/goapi/service/pinata"
	authMiddleware "github.com/properties-dex/goapi/stores/auth/delivery/http/middleware"
)

type handler struct {
	file file.Usecase
}

// New will initialize the file endpoints
func New(e *echo.Echo, fu file.Usecase, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{
		file: fu,
	}
	g := e.Group("/files")
	g.POST("", h.upload, authMiddleware.Auth())
	g.GET("/:cid", h.fetch)
}

// upload pins a base64 data-url encoded property image and returns its cid.
func (h *handler) upload(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address := c.Get("address").(domain.Address)

	type params struct {
		ImgData string `json:"imgData"`
		Name    string `json:"name"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if len(p.ImgData) == 0 {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	hash, err := h.file.Upload(ctx, p.ImgData, pinata.PinOptions{
		Metadata: &pinata.PinataMetadata{
			Name: p.Name,
			KeyValues: map[string]interface{}{
				"uploader": address.ToLowerStr(),
			},
		},
		Options: &pinata.PinataOptions{
			CidVersion: pinata.CidVersion_0,
		},
	})
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	res := struct {
		Cid string `json:"cid"`
	}{
		Cid: hash,
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, res)
}

func (h *handler) fetch(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	data, contentType, err := h.file.Fetch(ctx, c.Param("cid"))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return c.Blob(http.StatusOK, contentType, data)
}
