package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/properties-dex/goapi/domain"
	"github.com/properties-dex/goapi/domain/listing"
)

func named(name, symbol, price string) *listing.Listing {
	return &listing.Listing{Token: listing.TokenInfo{Name: name, Symbol: symbol, PricePerShare: price}}
}

func names(ls []*listing.Listing) []string {
	out := make([]string, 0, len(ls))
	for _, l := range ls {
		out = append(out, l.Token.Name)
	}
	return out
}

func TestSortListingsByPrice(t *testing.T) {
	ls := []*listing.Listing{
		named("a", "A", "10.5"),
		named("b", "B", "2"),
		named("c", "C", "0.25"),
	}

	SortListings(ls, listing.SortByPrice, domain.SortDirAsc)
	assert.Equal(t, []string{"c", "b", "a"}, names(ls))

	SortListings(ls, listing.SortByPrice, domain.SortDirDesc)
	assert.Equal(t, []string{"a", "b", "c"}, names(ls))
}

func TestSortListingsByNameIsCaseInsensitive(t *testing.T) {
	ls := []*listing.Listing{
		named("riverside Plaza", "RVP", "1"),
		named("Alpine Lofts", "ALP", "1"),
		named("harbor Tower", "HBT", "1"),
	}

	SortListings(ls, listing.SortByName, domain.SortDirAsc)
	assert.Equal(t, []string{"Alpine Lofts", "harbor Tower", "riverside Plaza"}, names(ls))
}

func TestSortListingsIsStable(t *testing.T) {
	first := named("first", "F", "3")
	second := named("second", "S", "3")
	third := named("third", "T", "3")
	ls := []*listing.Listing{first, second, third}

	SortListings(ls, listing.SortByPrice, domain.SortDirAsc)
	assert.Equal(t, []*listing.Listing{first, second, third}, ls)
}

func TestSearchListings(t *testing.T) {
	plaza := named("Riverside Plaza", "RVP", "1")
	lofts := named("Alpine Lofts", "ALP", "1")
	tower := named("Harbor Tower", "HBT", "1")
	ls := []*listing.Listing{plaza, lofts, tower}

	assert.Equal(t, []*listing.Listing{plaza}, SearchListings(ls, "PLAZA"))
	assert.Equal(t, []*listing.Listing{lofts}, SearchListings(ls, "alp"))
	assert.Equal(t, ls, SearchListings(ls, "  "))
	assert.Empty(t, SearchListings(ls, "warehouse"))
}
