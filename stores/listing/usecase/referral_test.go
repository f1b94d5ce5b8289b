package usecase

import (
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/assert"

	"github.com/properties-dex/goapi/domain"
)

func TestEncodeReferralCodeDefaultsWhenEmpty(t *testing.T) {
	code, err := EncodeReferralCode("")
	assert.NoError(t, err)

	var want [32]byte
	copy(want[:], DefaultReferralCodeText)
	assert.Equal(t, want, code)
}

func TestEncodeReferralCodeTextIsZeroPadded(t *testing.T) {
	code, err := EncodeReferralCode("summer-promo")
	assert.NoError(t, err)
	assert.Equal(t, "summer-promo", string(code[:12]))
	for _, b := range code[12:] {
		assert.Zero(t, b)
	}
}

func TestEncodeReferralCodeHexPassthrough(t *testing.T) {
	var raw [32]byte
	for i := range raw {
		raw[i] = byte(i)
	}
	code, err := EncodeReferralCode(hexutil.Encode(raw[:]))
	assert.NoError(t, err)
	assert.Equal(t, raw, code)
}

func TestEncodeReferralCodeRejectsOverlongText(t *testing.T) {
	_, err := EncodeReferralCode(strings.Repeat("x", 32))
	assert.ErrorIs(t, err, domain.ErrReferralCodeTooLong)

	// 31 bytes still fits beside the terminating zero
	_, err = EncodeReferralCode(strings.Repeat("x", 31))
	assert.NoError(t, err)
}

func TestReferralLinkRoundTrip(t *testing.T) {
	link := BuildReferralLink("https://app.example.com/marketplace", domain.ListingId(42), "summer promo")
	assert.Equal(t, "https://app.example.com/marketplace?listingId=42&referral=summer+promo", link)

	id, code, err := ParseReferralLink(link)
	assert.NoError(t, err)
	assert.Equal(t, domain.ListingId(42), id)
	assert.Equal(t, "summer promo", code)
}

func TestParseReferralLinkRejectsMissingParams(t *testing.T) {
	_, _, err := ParseReferralLink("https://app.example.com/marketplace?listingId=42")
	assert.ErrorIs(t, err, domain.ErrBadParamInput)

	_, _, err = ParseReferralLink("https://app.example.com/marketplace?referral=abc")
	assert.ErrorIs(t, err, domain.ErrBadParamInput)

	_, _, err = ParseReferralLink("https://app.example.com/marketplace?listingId=abc&referral=x")
	assert.ErrorIs(t, err, domain.ErrInvalidNumberFormat)
}
