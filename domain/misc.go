package domain

import (
	"math/big"
	"strings"

	"golang.org/x/xerrors"
)

type SortDir int8

const (
	SortDirAsc  SortDir = 1
	SortDirDesc SortDir = -1
)

type ChainId int32

type Address string

const EmptyAddress = Address("0x0000000000000000000000000000000000000000")

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerStr() string {
	return strings.ToLower(string(a))
}

// IsEmpty reports whether the address carries no identity. The zero address
// is the anonymous-viewer sentinel, so it counts as empty too.
func (a Address) IsEmpty() bool {
	return len(a) == 0 || a.Equals(EmptyAddress)
}

func (a Address) Equals(b Address) bool {
	return a.ToLowerStr() == b.ToLowerStr()
}

// ListingId is a stable index into the marketplace contract's listing array.
// Ids are assigned on-chain and never reused.
type ListingId uint64

func (i ListingId) BigInt() *big.Int {
	return new(big.Int).SetUint64(uint64(i))
}

type BlockNumber uint64

type TxHash string

func ToBigInt(nums []string) ([]*big.Int, error) {
	var bns []*big.Int
	for _, n := range nums {
		bn, ok := new(big.Int).SetString(n, 10)
		if !ok {
			return nil, ErrInvalidNumberFormat
		}
		bns = append(bns, bn)
	}
	return bns, nil
}

// ParseHumanAmount parses a decimal string entered by a user. The contract
// takes whole human units for listing amounts, so fractions are rejected.
func ParseHumanAmount(s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(strings.TrimSpace(s), 10)
	if !ok {
		return nil, xerrors.Errorf("parse amount %q: %w", s, ErrInvalidNumberFormat)
	}
	return v, nil
}
