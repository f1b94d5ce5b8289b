package listing

import (
	"github.com/properties-dex/goapi/base/ctx"
	"github.com/properties-dex/goapi/domain"
)

const (
	// client-side caps on free-form metadata, enforced before any chain call
	MaxUrlLength         = 256
	MaxDescriptionLength = 1024

	// DefaultDuration is applied when a seller does not pick one
	DefaultDuration = 604800 // 7 days in seconds
)

type Status string

const (
	StatusActive  Status = "active"
	StatusExpired Status = "expired"
	StatusSoldOut Status = "soldout"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusExpired, StatusSoldOut:
		return true
	}
	return false
}

type SortBy string

const (
	SortByPrice SortBy = "price"
	SortByName  SortBy = "name"
)

// TokenInfo describes the property token offered by a listing. Amount and
// PricePerShare are human-unit decimal strings, already divided by the
// token's own decimals.
type TokenInfo struct {
	Address       domain.Address `json:"address"`
	Name          string         `json:"name"`
	Symbol        string         `json:"symbol"`
	Amount        string         `json:"amount"`
	PricePerShare string         `json:"pricePerShare"`
}

type Metadata struct {
	ProjectWebsite     string `json:"projectWebsite"`
	SocialMediaLink    string `json:"socialMediaLink"`
	ImageUrl           string `json:"imageUrl"`
	TelegramUrl        string `json:"telegramUrl"`
	ProjectDescription string `json:"projectDescription"`
}

// Listing is a read-only projection of one marketplace slot. It is rebuilt
// from chain state on every aggregation pass and holds no client-side truth.
type Listing struct {
	Id                   domain.ListingId `json:"id"`
	Seller               domain.Address   `json:"seller"`
	SellerEnsName        string           `json:"sellerEnsName,omitempty"`
	Token                TokenInfo        `json:"token"`
	PaymentToken         domain.Address   `json:"paymentToken"`
	PaymentTokenSymbol   string           `json:"paymentTokenSymbol"`
	PaymentTokenDecimals int32            `json:"paymentTokenDecimals"`
	Active               bool             `json:"active"`
	EndTime              int64            `json:"endTime"`
	ReferralActive       bool             `json:"referralActive"`
	ReferralPercent      int64            `json:"referralPercent"`
	ReferralCode         string           `json:"referralCode,omitempty"`
	IsOwner              bool             `json:"isOwner"`
	TimeRemaining        string           `json:"timeRemaining"`
	Metadata             Metadata         `json:"metadata"`
}

type TxResult struct {
	TxHash      domain.TxHash      `json:"txHash"`
	BlockNumber domain.BlockNumber `json:"blockNumber"`
}

// Repo reads listings from the marketplace contract. Viewer may be empty for
// public browsing; when set it is used for the IsOwner flag only.
type Repo interface {
	Count(ctx.Ctx) (uint64, error)
	Get(c ctx.Ctx, id domain.ListingId, viewer domain.Address) (*Listing, error)
	// GetAll returns every listing it could fetch. A failure on one index is
	// logged and skipped, so the result may be sparse across passes.
	GetAll(c ctx.Ctx, viewer domain.Address) ([]*Listing, error)
}

type Usecase interface {
	Browse(c ctx.Ctx, opts *BrowseOptions) ([]*Listing, error)
	Get(c ctx.Ctx, id domain.ListingId, viewer domain.Address) (*Listing, error)
	// Refresh forces a re-aggregation pass, replacing the cached view.
	Refresh(c ctx.Ctx) error
}

// MarketUsecase drives the mutating marketplace flows through the wallet
// signer. Each call awaits one confirmation before returning.
type MarketUsecase interface {
	List(c ctx.Ctx, p *ListParams) (*TxResult, error)
	Buy(c ctx.Ctx, p *BuyParams) (*TxResult, error)
	Cancel(c ctx.Ctx, id domain.ListingId) (*TxResult, error)
	GenerateReferralCode(c ctx.Ctx, id domain.ListingId) (string, error)
}
