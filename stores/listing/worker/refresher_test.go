package worker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/xerrors"

	"github.com/properties-dex/goapi/base/ctx"
	listingMocks "github.com/properties-dex/goapi/domain/listing/mocks"
)

func TestRefresherLoops(t *testing.T) {
	listingUC := &listingMocks.Usecase{}
	listingUC.On("Refresh", mock.Anything).Return(nil)

	c, cancel := ctx.WithCancel(ctx.Background())
	r := NewRefresher(&RefresherCfg{
		Listing:  listingUC,
		Interval: 10 * time.Millisecond,
	})
	r.Start(c)

	time.Sleep(55 * time.Millisecond)
	cancel()
	r.Wait()

	listingUC.AssertCalled(t, "Refresh", mock.Anything)
}

func TestRefresherSurvivesRefreshErrors(t *testing.T) {
	listingUC := &listingMocks.Usecase{}
	listingUC.On("Refresh", mock.Anything).Return(xerrors.New("rpc down")).Once()
	listingUC.On("Refresh", mock.Anything).Return(nil)

	c, cancel := ctx.WithCancel(ctx.Background())
	r := NewRefresher(&RefresherCfg{
		Listing:  listingUC,
		Interval: 10 * time.Millisecond,
	})
	r.Start(c)

	time.Sleep(55 * time.Millisecond)
	cancel()
	r.Wait()

	assert.GreaterOrEqual(t, len(listingUC.Calls), 2, "loop must continue after a failed pass")
}
