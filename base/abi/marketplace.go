package abi

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

var MarketplaceABI abi.ABI

// ABI of the deployed Properties DEX marketplace. The contract takes listing
// amounts and prices in whole human units, not raw token units.
var marketplaceABIJson = `[
	{"type":"function","name":"listToken","stateMutability":"nonpayable","inputs":[{"name":"tokenAddress","type":"address"},{"name":"amountHuman","type":"uint256"},{"name":"pricePerShareHuman","type":"uint256"},{"name":"paymentToken","type":"address"},{"name":"referralActive","type":"bool"},{"name":"referralPercent","type":"uint256"},{"name":"metadata","type":"tuple","components":[{"name":"projectWebsite","type":"string"},{"name":"socialMediaLink","type":"string"},{"name":"tokenImageUrl","type":"string"},{"name":"telegramUrl","type":"string"},{"name":"projectDescription","type":"string"}]},{"name":"durationInSeconds","type":"uint256"}],"outputs":[]},
	{"type":"function","name":"buyToken","stateMutability":"nonpayable","inputs":[{"name":"listingId","type":"uint256"},{"name":"amountHuman","type":"uint256"},{"name":"referralCode","type":"bytes32"}],"outputs":[]},
	{"type":"function","name":"cancelListing","stateMutability":"nonpayable","inputs":[{"name":"listingId","type":"uint256"}],"outputs":[]},
	{"type":"function","name":"listingCount","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"getListingMainDetails","stateMutability":"view","inputs":[{"name":"listingId","type":"uint256"}],"outputs":[{"name":"seller","type":"address"},{"name":"tokenAddress","type":"address"},{"name":"amount","type":"uint256"},{"name":"pricePerShare","type":"uint256"},{"name":"paymentToken","type":"address"},{"name":"active","type":"bool"},{"name":"referralActive","type":"bool"},{"name":"referralPercent","type":"uint256"},{"name":"referralCode","type":"bytes32"},{"name":"endTime","type":"uint256"}]},
	{"type":"function","name":"getListingMetadata","stateMutability":"view","inputs":[{"name":"listingId","type":"uint256"}],"outputs":[{"name":"projectWebsite","type":"string"},{"name":"socialMediaLink","type":"string"},{"name":"tokenImageUrl","type":"string"},{"name":"telegramUrl","type":"string"},{"name":"projectDescription","type":"string"}]},
	{"type":"function","name":"generateBuyerReferralCode","stateMutability":"nonpayable","inputs":[{"name":"listingId","type":"uint256"}],"outputs":[{"name":"","type":"bytes32"}]}
]`

func init() {
	_abi, err := abi.JSON(strings.NewReader(marketplaceABIJson))
	if err != nil {
		panic("Failed to parse marketplace abi")
	}
	MarketplaceABI = _abi
}

// ListingMainDetails mirrors the getListingMainDetails return tuple.
type ListingMainDetails struct {
	Seller          common.Address
	TokenAddress    common.Address
	Amount          *big.Int
	PricePerShare   *big.Int
	PaymentToken    common.Address
	Active          bool
	ReferralActive  bool
	ReferralPercent *big.Int
	ReferralCode    [32]byte
	EndTime         *big.Int
}

// ListingMetadataTuple is the listToken metadata argument and the
// getListingMetadata return tuple.
type ListingMetadataTuple struct {
	ProjectWebsite     string
	SocialMediaLink    string
	TokenImageUrl      string
	TelegramUrl        string
	ProjectDescription string
}
