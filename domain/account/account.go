package account

import (
	"errors"
	"time"

	"github.com/properties-dex/goapi/base/ctx"
	"github.com/properties-dex/goapi/domain"
)

var (
	// ErrInvalidNonce occured when validating a signature but the nonce of the address has not generated
	ErrInvalidNonce = errors.New("invalid nonce")
	// ErrInvalidSignature occured when a signature is invalid
	ErrInvalidSignature = errors.New("invalid signature")
)

type Account struct {
	Address   domain.Address `bson:"address"`
	Alias     string         `bson:"alias"`
	Nonce     int32          `bson:"nonce"`
	CreatedAt time.Time      `bson:"createdAt,omitempty"`
	UpdatedAt time.Time      `bson:"updatedAt,omitempty"`
}

type Updater struct {
	Alias     *string   `bson:"alias,omitempty"`
	Nonce     int32     `bson:"nonce"`
	UpdatedAt time.Time `bson:"updatedAt,omitempty"`
}

// Balances are six-decimal display strings of the wallet's native coin,
// platform token and stablecoin holdings.
type Balances struct {
	Eth      string `json:"eth"`
	Platform string `json:"platform"`
	Stable   string `json:"stable"`
}

type Repo interface {
	Get(c ctx.Ctx, address domain.Address) (*Account, error)
	Insert(c ctx.Ctx, account *Account) error
	Update(c ctx.Ctx, address domain.Address, updater *Updater) error
}

type Usecase interface {
	Create(c ctx.Ctx, address domain.Address) (*Account, error)
	Get(c ctx.Ctx, address domain.Address) (*Account, error)
	GenerateNonce(c ctx.Ctx, address domain.Address) (int32, error)
	ValidateSignature(c ctx.Ctx, address domain.Address, signature string) error
	GetBalances(c ctx.Ctx, address domain.Address) (*Balances, error)
}
