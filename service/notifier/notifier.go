package notifier

import (
	"github.com/properties-dex/goapi/base/ctx"
	"github.com/properties-dex/goapi/domain/listing"
)

// Notifier announces marketplace activity to an external channel. Failures
// are logged by implementations and never bubble into the calling flow.
type Notifier interface {
	NotifyListed(c ctx.Ctx, l *listing.Listing)
	NotifySold(c ctx.Ctx, l *listing.Listing, amount string)
	NotifyCancelled(c ctx.Ctx, l *listing.Listing)
}
