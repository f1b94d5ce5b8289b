package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/properties-dex/goapi/base/ctx"
	"github.com/properties-dex/goapi/domain"
	mAccount "github.com/properties-dex/goapi/domain/account/mocks"
	"github.com/properties-dex/goapi/stores/auth/usecase"
)

func TestSignAndParseToken(t *testing.T) {
	mockAccountUC := &mAccount.Usecase{}

	mockAccountUC.On("Get", mock.Anything, domain.Address("my-address")).Return(nil, nil)
	mockAccountUC.On("ValidateSignature", mock.Anything, domain.Address("my-address"), "my-signature").Return(nil)

	ctx := ctx.Background()
	u := usecase.New("jwt-secret", mockAccountUC)
	tkn, err := u.SignToken(ctx, "my-address", "my-signature")
	assert.NoError(t, err)
	assert.NotEmpty(t, tkn)
	ads, err := u.ParseToken(ctx, tkn)
	assert.NoError(t, err)
	assert.Equal(t, "my-address", ads)
}

func TestParseTokenRejectsMalformedToken(t *testing.T) {
	mockAccountUC := &mAccount.Usecase{}

	ctx := ctx.Background()
	u := usecase.New("jwt-secret", mockAccountUC)
	for _, tkn := range []string{"", "garbage", "a.b", "a.b.c.d"} {
		_, err := u.ParseToken(ctx, tkn)
		assert.Error(t, err, tkn)
	}
}

func TestSignTokenRejectsBadSignature(t *testing.T) {
	mockAccountUC := &mAccount.Usecase{}

	mockAccountUC.On("Get", mock.Anything, domain.Address("my-address")).Return(nil, nil)
	mockAccountUC.On("ValidateSignature", mock.Anything, domain.Address("my-address"), "bogus").Return(domain.ErrInvalidSignature)

	ctx := ctx.Background()
	u := usecase.New("jwt-secret", mockAccountUC)
	_, err := u.SignToken(ctx, "my-address", "bogus")
	assert.ErrorIs(t, err, domain.ErrInvalidSignature)
}
