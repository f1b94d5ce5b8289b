package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/properties-dex/goapi/domain"
)

func TestAddressIsEmpty(t *testing.T) {
	assert.True(t, domain.Address("").IsEmpty())
	assert.True(t, domain.EmptyAddress.IsEmpty())
	assert.True(t, domain.Address("0x0000000000000000000000000000000000000000").IsEmpty())

	assert.False(t, domain.Address("0x00000000000000000000000000000000000000aa").IsEmpty())
}

func TestAddressEquals(t *testing.T) {
	a := domain.Address("0x00000000000000000000000000000000000000AA")
	b := domain.Address("0x00000000000000000000000000000000000000aa")
	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(domain.EmptyAddress))
}
