package usecase

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"golang.org/x/xerrors"

	"github.com/properties-dex/goapi/domain"
)

// DefaultReferralCodeText is the sentinel the contract maps to the platform
// fee recipient when a buyer has no referral code.
const DefaultReferralCodeText = "default_to_fee_recipient"

const (
	queryKeyListingId = "listingId"
	queryKeyReferral  = "referral"
)

// EncodeReferralCode turns a user-entered code into the contract's bytes32
// form. Raw 32-byte hex codes (as read back from listings) pass through
// unchanged; anything else is treated as text, which must fit in 31 bytes
// with the terminating zero. Overlong codes are rejected instead of being
// silently truncated.
func EncodeReferralCode(code string) ([32]byte, error) {
	var out [32]byte
	if code == "" {
		code = DefaultReferralCodeText
	}
	if strings.HasPrefix(code, "0x") && len(code) == 66 {
		raw, err := hexutil.Decode(code)
		if err != nil {
			return out, xerrors.Errorf("decode referral code: %w", err)
		}
		copy(out[:], raw)
		return out, nil
	}
	if len(code) > 31 {
		return out, domain.ErrReferralCodeTooLong
	}
	copy(out[:], code)
	return out, nil
}

// BuildReferralLink renders the shareable url for a listing and code.
func BuildReferralLink(origin string, id domain.ListingId, code string) string {
	return fmt.Sprintf("%s?%s=%d&%s=%s", origin, queryKeyListingId, id, queryKeyReferral, url.QueryEscape(code))
}

// ParseReferralLink recovers the listing id and referral code from a shared
// url. Both parameters must be present.
func ParseReferralLink(raw string) (domain.ListingId, string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return 0, "", xerrors.Errorf("parse referral link: %w", err)
	}
	q := u.Query()
	idStr := q.Get(queryKeyListingId)
	code := q.Get(queryKeyReferral)
	if idStr == "" || code == "" {
		return 0, "", domain.ErrBadParamInput
	}
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		return 0, "", xerrors.Errorf("parse listing id %q: %w", idStr, domain.ErrInvalidNumberFormat)
	}
	return domain.ListingId(id), code, nil
}
