package wallet

import (
	"crypto/ecdsa"
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
)

var ErrNoSigner = errors.New("no wallet signer configured")

// Signer abstracts the wallet boundary: something able to provide an address
// and sign transactions for it. Mutating contract calls require one; read
// paths never do.
type Signer interface {
	Address() common.Address
	SignTx(chainId *big.Int, tx *types.Transaction) (*types.Transaction, error)
}

type keyedSigner struct {
	key     *ecdsa.PrivateKey
	address common.Address
}

// NewKeyedSigner builds a Signer from a hex-encoded private key.
func NewKeyedSigner(hexKey string) (Signer, error) {
	key, err := crypto.HexToECDSA(hexKey)
	if err != nil {
		return nil, err
	}
	return &keyedSigner{
		key:     key,
		address: crypto.PubkeyToAddress(key.PublicKey),
	}, nil
}

func (s *keyedSigner) Address() common.Address {
	return s.address
}

func (s *keyedSigner) SignTx(chainId *big.Int, tx *types.Transaction) (*types.Transaction, error) {
	return types.SignTx(tx, types.LatestSignerForChainID(chainId), s.key)
}
