package usecase

import (
	"sort"
	"strconv"
	"strings"

	"github.com/properties-dex/goapi/domain"
	"github.com/properties-dex/goapi/domain/listing"
)

// SortListings orders listings by price or name. The sort is stable so ties
// keep their aggregation order and output stays deterministic.
func SortListings(listings []*listing.Listing, by listing.SortBy, dir domain.SortDir) {
	less := func(a, b *listing.Listing) bool {
		if by == listing.SortByName {
			return strings.ToLower(a.Token.Name) < strings.ToLower(b.Token.Name)
		}
		pa, _ := strconv.ParseFloat(a.Token.PricePerShare, 64)
		pb, _ := strconv.ParseFloat(b.Token.PricePerShare, 64)
		return pa < pb
	}
	sort.SliceStable(listings, func(i, j int) bool {
		if dir == domain.SortDirDesc {
			return less(listings[j], listings[i])
		}
		return less(listings[i], listings[j])
	})
}

// SearchListings keeps listings whose token name or symbol contains the
// query, case-insensitively. An empty query keeps everything.
func SearchListings(listings []*listing.Listing, query string) []*listing.Listing {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return listings
	}
	out := make([]*listing.Listing, 0, len(listings))
	for _, l := range listings {
		if strings.Contains(strings.ToLower(l.Token.Name), q) || strings.Contains(strings.ToLower(l.Token.Symbol), q) {
			out = append(out, l)
		}
	}
	return out
}
