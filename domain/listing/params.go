package listing

import (
	"github.com/properties-dex/goapi/domain"
)

type BrowseOptions struct {
	Status  Status
	SortBy  SortBy
	SortDir domain.SortDir
	Search  string
	Viewer  domain.Address
}

type ListParams struct {
	TokenAddress  domain.Address `json:"tokenAddress" validate:"required"`
	Amount        string         `json:"amount" validate:"required"`
	PricePerShare string         `json:"pricePerShare" validate:"required"`
	UseStablecoin bool           `json:"useStablecoin"`
	// Duration is in seconds; DefaultDuration applies when zero.
	Duration        int64    `json:"duration"`
	ReferralActive  bool     `json:"referralActive"`
	ReferralPercent int64    `json:"referralPercent"`
	Metadata        Metadata `json:"metadata"`
}

type BuyParams struct {
	ListingId domain.ListingId `json:"-"`
	Amount    string           `json:"amount" validate:"required"`
	// ReferralCode is optional; when empty the default sentinel code routes
	// the referral share to the platform fee recipient.
	ReferralCode string `json:"referralCode"`
}

// PurchaseState tracks where a purchase attempt is in its lifecycle. States
// only move forward within one attempt; nothing is persisted between
// attempts because allowance and balance are re-read fresh each time.
type PurchaseState string

const (
	PurchaseIdle            PurchaseState = "idle"
	PurchaseValidating      PurchaseState = "validating"
	PurchaseCheckingBalance PurchaseState = "checkingBalance"
	PurchaseApproving       PurchaseState = "approving"
	PurchaseBuying          PurchaseState = "buying"
	PurchaseSettled         PurchaseState = "settled"
	PurchaseFailed          PurchaseState = "failed"
)
