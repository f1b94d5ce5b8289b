package contract

import (
	"math/big"

	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	baseabi "github.com/properties-dex/goapi/base/abi"
	bCtx "github.com/properties-dex/goapi/base/ctx"
	"github.com/properties-dex/goapi/service/chain"
	"github.com/properties-dex/goapi/service/wallet"
)

type ListTokenArgs struct {
	TokenAddress    common.Address
	AmountHuman     *big.Int
	PricePerShare   *big.Int
	PaymentToken    common.Address
	ReferralActive  bool
	ReferralPercent *big.Int
	Metadata        baseabi.ListingMetadataTuple
	Duration        *big.Int
}

type MarketplaceContract interface {
	ListingCount(ctx bCtx.Ctx, chainId int32, addr string) (uint64, error)
	GetListingMainDetails(ctx bCtx.Ctx, chainId int32, addr string, listingId uint64) (*baseabi.ListingMainDetails, error)
	GetListingMetadata(ctx bCtx.Ctx, chainId int32, addr string, listingId uint64) (*baseabi.ListingMetadataTuple, error)
	ListToken(ctx bCtx.Ctx, chainId int32, signer wallet.Signer, addr string, args *ListTokenArgs) (*types.Receipt, error)
	BuyToken(ctx bCtx.Ctx, chainId int32, signer wallet.Signer, addr string, listingId uint64, amountHuman *big.Int, referralCode [32]byte) (*types.Receipt, error)
	CancelListing(ctx bCtx.Ctx, chainId int32, signer wallet.Signer, addr string, listingId uint64) (*types.Receipt, error)
	GenerateBuyerReferralCode(ctx bCtx.Ctx, chainId int32, signer wallet.Signer, addr string, listingId uint64) (*types.Receipt, error)
}

type Marketplace struct {
	chainService chain.Client
	abi          ethabi.ABI
}

func NewMarketplace(chainService chain.Client) *Marketplace {
	return &Marketplace{
		abi:          baseabi.MarketplaceABI,
		chainService: chainService,
	}
}

func (m *Marketplace) ListingCount(ctx bCtx.Ctx, chainId int32, addr string) (uint64, error) {
	unpacked, err := m.chainService.Call(ctx, chainId, common.HexToAddress(addr), nil, m.abi, "listingCount")
	if err != nil {
		return 0, err
	}
	return unpacked[0].(*big.Int).Uint64(), nil
}

func (m *Marketplace) GetListingMainDetails(ctx bCtx.Ctx, chainId int32, addr string, listingId uint64) (*baseabi.ListingMainDetails, error) {
	unpacked, err := m.chainService.Call(ctx, chainId, common.HexToAddress(addr), nil, m.abi, "getListingMainDetails", new(big.Int).SetUint64(listingId))
	if err != nil {
		return nil, err
	}
	return &baseabi.ListingMainDetails{
		Seller:          unpacked[0].(common.Address),
		TokenAddress:    unpacked[1].(common.Address),
		Amount:          unpacked[2].(*big.Int),
		PricePerShare:   unpacked[3].(*big.Int),
		PaymentToken:    unpacked[4].(common.Address),
		Active:          unpacked[5].(bool),
		ReferralActive:  unpacked[6].(bool),
		ReferralPercent: unpacked[7].(*big.Int),
		ReferralCode:    unpacked[8].([32]byte),
		EndTime:         unpacked[9].(*big.Int),
	}, nil
}

func (m *Marketplace) GetListingMetadata(ctx bCtx.Ctx, chainId int32, addr string, listingId uint64) (*baseabi.ListingMetadataTuple, error) {
	unpacked, err := m.chainService.Call(ctx, chainId, common.HexToAddress(addr), nil, m.abi, "getListingMetadata", new(big.Int).SetUint64(listingId))
	if err != nil {
		return nil, err
	}
	return &baseabi.ListingMetadataTuple{
		ProjectWebsite:     unpacked[0].(string),
		SocialMediaLink:    unpacked[1].(string),
		TokenImageUrl:      unpacked[2].(string),
		TelegramUrl:        unpacked[3].(string),
		ProjectDescription: unpacked[4].(string),
	}, nil
}

func (m *Marketplace) ListToken(ctx bCtx.Ctx, chainId int32, signer wallet.Signer, addr string, args *ListTokenArgs) (*types.Receipt, error) {
	return m.chainService.Transact(ctx, chainId, signer, common.HexToAddress(addr), m.abi, "listToken",
		args.TokenAddress,
		args.AmountHuman,
		args.PricePerShare,
		args.PaymentToken,
		args.ReferralActive,
		args.ReferralPercent,
		args.Metadata,
		args.Duration,
	)
}

func (m *Marketplace) BuyToken(ctx bCtx.Ctx, chainId int32, signer wallet.Signer, addr string, listingId uint64, amountHuman *big.Int, referralCode [32]byte) (*types.Receipt, error) {
	return m.chainService.Transact(ctx, chainId, signer, common.HexToAddress(addr), m.abi, "buyToken",
		new(big.Int).SetUint64(listingId), amountHuman, referralCode)
}

func (m *Marketplace) CancelListing(ctx bCtx.Ctx, chainId int32, signer wallet.Signer, addr string, listingId uint64) (*types.Receipt, error) {
	return m.chainService.Transact(ctx, chainId, signer, common.HexToAddress(addr), m.abi, "cancelListing",
		new(big.Int).SetUint64(listingId))
}

func (m *Marketplace) GenerateBuyerReferralCode(ctx bCtx.Ctx, chainId int32, signer wallet.Signer, addr string, listingId uint64) (*types.Receipt, error) {
	return m.chainService.Transact(ctx, chainId, signer, common.HexToAddress(addr), m.abi, "generateBuyerReferralCode",
		new(big.Int).SetUint64(listingId))
}
