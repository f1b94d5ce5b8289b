package abi

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

var TokenCreatorABI abi.ABI

var tokenCreatorABIJson = `[
	{"type":"function","name":"createToken","stateMutability":"nonpayable","inputs":[{"name":"tokenName","type":"string"},{"name":"tokenSymbol","type":"string"},{"name":"initialSupply","type":"uint256"},{"name":"imageLink","type":"string"},{"name":"projectDesc","type":"string"},{"name":"websiteLink","type":"string"},{"name":"twitterLink","type":"string"},{"name":"telegramLink","type":"string"}],"outputs":[{"name":"","type":"tuple","components":[{"name":"tokenAddress","type":"address"},{"name":"name","type":"string"},{"name":"symbol","type":"string"},{"name":"initialSupply","type":"uint256"},{"name":"creator","type":"address"},{"name":"imageUrl","type":"string"},{"name":"projectDescription","type":"string"},{"name":"websiteUrl","type":"string"},{"name":"twitterUrl","type":"string"},{"name":"telegramUrl","type":"string"}]}]},
	{"type":"function","name":"getTokenDetails","stateMutability":"view","inputs":[{"name":"tokenAddress","type":"address"}],"outputs":[{"name":"","type":"address"},{"name":"","type":"string"},{"name":"","type":"string"},{"name":"","type":"uint256"},{"name":"","type":"address"},{"name":"","type":"string"},{"name":"","type":"string"},{"name":"","type":"string"},{"name":"","type":"string"}]}
]`

func init() {
	_abi, err := abi.JSON(strings.NewReader(tokenCreatorABIJson))
	if err != nil {
		panic("Failed to parse token creator abi")
	}
	TokenCreatorABI = _abi
}

// TokenDetails mirrors the getTokenDetails return values.
type TokenDetails struct {
	TokenAddress       common.Address
	Name               string
	Symbol             string
	InitialSupply      *big.Int
	Creator            common.Address
	ImageUrl           string
	ProjectDescription string
	WebsiteUrl         string
	TwitterUrl         string
	TelegramUrl        string
}
