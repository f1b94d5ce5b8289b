package file

import (
	"github.com/properties-dex/goapi/base/ctx"
	"github.com/properties-dex/goapi/service/pinata"
)

type Usecase interface {
	// Upload pins a base64 data-url encoded property image and returns its cid.
	Upload(c ctx.Ctx, imgData string, pinOption pinata.PinOptions) (hash string, err error)
	UploadJson(c ctx.Ctx, file interface{}, pinOption pinata.PinOptions) (hash string, err error)
	// Fetch reads a pinned file back through the ipfs node api.
	Fetch(c ctx.Ctx, cid string) (data []byte, contentType string, err error)
}
