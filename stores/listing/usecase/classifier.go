package usecase

import (
	"strconv"

	"github.com/properties-dex/goapi/domain/listing"
)

// remainingAmount parses the human-unit amount string. Malformed amounts are
// treated as zero so a bad listing can never look purchasable.
func remainingAmount(l *listing.Listing) float64 {
	v, err := strconv.ParseFloat(l.Token.Amount, 64)
	if err != nil {
		return 0
	}
	return v
}

// IsActive reports whether a listing is purchasable at the given time.
func IsActive(l *listing.Listing, now int64) bool {
	return l.Active && l.EndTime > now && remainingAmount(l) > 0
}

// IsExpired reports whether a listing is eligible for owner withdrawal:
// still flagged active on-chain, past its end time, with stock remaining.
func IsExpired(l *listing.Listing, now int64) bool {
	return l.Active && l.EndTime <= now && remainingAmount(l) > 0
}

// IsSoldOut reports whether a listing has no stock left, regardless of its
// active flag or end time.
func IsSoldOut(l *listing.Listing) bool {
	return remainingAmount(l) == 0
}

// Classify partitions listings by status at a fixed observation time. An
// empty status keeps every partition. Listings that are inactive with stock
// remaining and not expired fall into no partition and stay hidden from
// every view.
func Classify(listings []*listing.Listing, status listing.Status, now int64) []*listing.Listing {
	out := make([]*listing.Listing, 0, len(listings))
	for _, l := range listings {
		switch status {
		case "":
			if IsActive(l, now) || IsExpired(l, now) || IsSoldOut(l) {
				out = append(out, l)
			}
		case listing.StatusActive:
			if IsActive(l, now) {
				out = append(out, l)
			}
		case listing.StatusExpired:
			if IsExpired(l, now) {
				out = append(out, l)
			}
		case listing.StatusSoldOut:
			if IsSoldOut(l) {
				out = append(out, l)
			}
		}
	}
	return out
}
