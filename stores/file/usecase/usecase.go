package usecase

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"io/ioutil"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	ipfsapi "github.com/ipfs/go-ipfs-api"

	"github.com/properties-dex/goapi/base/ctx"
	"github.com/properties-dex/goapi/domain/file"
	"github.com/properties-dex/goapi/service/pinata"
)

const (
	imgDataHeaderPrefix    = "data:image/"
	imgDataHeaderSuffix    = ";base64,"
	imgDataHeaderMaxLength = 50

	fetchTimeout = 30 * time.Second
)

type impl struct {
	pinata pinata.Service
	shell  *ipfsapi.Shell
}

func New(pinata pinata.Service, shell *ipfsapi.Shell) file.Usecase {
	return &impl{
		pinata: pinata,
		shell:  shell,
	}
}
func (im *impl) Upload(c ctx.Ctx, imgData string, pinOption pinata.PinOptions) (hash string, err error) {
	reader, extension, err := im.parseImgData(imgData)
	if err != nil {
		c.WithField("err", err).Error("im.parseImgData failed")
		return "", err
	}

	opts := []pinata.Options{}
	if pinOption.Metadata != nil {
		opts = append(opts, pinata.WithMetadata(*pinOption.Metadata))
	}
	if pinOption.Options != nil {
		opts = append(opts, pinata.WithOptions(*pinOption.Options))
	}
	hash, err = im.pinata.Pin(c, reader, extension, opts...)
	if err != nil {
		c.WithField("err", err).Error("im.pinata.Pin failed")
		return "", err
	}
	c.WithField("hash", hash).Info("im.pinata.Pin success")
	return hash, err
}

func (im *impl) UploadJson(c ctx.Ctx, file interface{}, pinOption pinata.PinOptions) (hash string, err error) {
	opts := []pinata.Options{}
	if pinOption.Metadata != nil {
		opts = append(opts, pinata.WithMetadata(*pinOption.Metadata))
	}
	if pinOption.Options != nil {
		opts = append(opts, pinata.WithOptions(*pinOption.Options))
	}
	hash, err = im.pinata.PinJson(c, file, opts...)
	if err != nil {
		c.WithField("err", err).Error("im.pinata.Pin failed")
		return "", err
	}
	c.WithField("hash", hash).Info("im.pinata.Pin success")
	return hash, err
}

func (im *impl) Fetch(c ctx.Ctx, cid string) (data []byte, contentType string, err error) {
	ctx, cancel := ctx.WithTimeout(c, fetchTimeout)
	defer cancel()

	resp, err := im.shell.Request("cat", cid).Send(ctx)
	if err != nil {
		c.WithField("err", err).Error("shell.Request failed")
		return nil, "", err
	}
	if resp.Error != nil {
		c.WithField("resp.Error", resp.Error).Error("shell.Request failed")
		return nil, "", resp.Error
	}
	data, err = ioutil.ReadAll(resp.Output)
	if err != nil {
		c.WithField("err", err).Error("read ipfs response failed")
		return nil, "", err
	}
	return data, mimetype.Detect(data).String(), nil
}

func (im *impl) parseImgData(data string) (reader io.Reader, extension string, err error) {
	if !strings.HasPrefix(data, imgDataHeaderPrefix) {
		return nil, "", fmt.Errorf("imeage data has wrong prefix")
	}
	// search header suffix in a limited range
	searchLength := imgDataHeaderMaxLength
	if len(data) < searchLength {
		searchLength = len(data)
	}
	headerSuffixIdx := strings.Index(data[:imgDataHeaderMaxLength], imgDataHeaderSuffix)
	if headerSuffixIdx == -1 {
		return nil, "", fmt.Errorf("can't find image data header suffix")
	}

	extension = data[len(imgDataHeaderPrefix):headerSuffixIdx]
	dataStartIdx := headerSuffixIdx + len(imgDataHeaderSuffix)
	decodedData, err := base64.StdEncoding.DecodeString(data[dataStartIdx:])
	if err != nil {
		return nil, "", err
	}
	return bytes.NewBuffer(decodedData), extension, nil
}
