package perftests

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	auction "auction-marketplace/internal/auctionService"
	"auction-marketplace/internal/auctionerrors"
	"auction-marketplace/internal/ledger"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// Many bidders race on one listing. Every submission either gets accepted
// or rejected as too low; afterwards the current price must equal the
// maximum accepted amount, never a lower bid that snuck past validation.
func TestConcurrentBidding_SharedListing(t *testing.T) {
	store := ledger.NewMemoryLedger()
	service := auction.NewAuctionService(store)

	listing, err := service.CreateListing("seller1", "Contested lot", "", "", "", decimal.NewFromInt(50))
	require.NoError(t, err)

	const bidders = 100

	var wg sync.WaitGroup
	var mu sync.Mutex
	accepted := make([]decimal.Decimal, 0, bidders)
	var unexpected []error

	for i := 0; i < bidders; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			amount := decimal.NewFromInt(int64(51 + i))
			_, err := service.PlaceBid(listing.ListingID, fmt.Sprintf("user%d", i), amount)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				accepted = append(accepted, amount)
			case !errors.Is(err, auctionerrors.ErrBidTooLow):
				unexpected = append(unexpected, err)
			}
		}(i)
	}
	wg.Wait()

	require.Empty(t, unexpected)
	require.NotEmpty(t, accepted)

	max := accepted[0]
	for _, amount := range accepted[1:] {
		if amount.GreaterThan(max) {
			max = amount
		}
	}

	got, err := service.GetListing(listing.ListingID)
	require.NoError(t, err)
	require.True(t, got.CurrentPrice.Equal(max),
		"current price %s, max accepted bid %s", got.CurrentPrice, max)

	leading, err := service.LeadingBid(listing.ListingID)
	require.NoError(t, err)
	require.True(t, leading.Amount.Equal(max))
}

// Closing races against bidders; exactly one close succeeds and the final
// winner holds the highest accepted bid.
func TestConcurrentCloseAndBid(t *testing.T) {
	store := ledger.NewMemoryLedger()
	service := auction.NewAuctionService(store)

	listing, err := service.CreateListing("seller1", "Closing lot", "", "", "", decimal.NewFromInt(10))
	require.NoError(t, err)

	_, err = service.PlaceBid(listing.ListingID, "user0", decimal.NewFromInt(20))
	require.NoError(t, err)

	const closers = 8

	var wg sync.WaitGroup
	var mu sync.Mutex
	var closedCount int
	var unexpected []error

	for i := 0; i < closers; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, err := service.CloseAuction(listing.ListingID, "seller1")

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				closedCount++
			case !errors.Is(err, auctionerrors.ErrAlreadyClosed):
				unexpected = append(unexpected, err)
			}
		}()
		go func(i int) {
			defer wg.Done()
			_, err := service.PlaceBid(listing.ListingID, fmt.Sprintf("user%d", i+1), decimal.NewFromInt(int64(21+i)))
			if err != nil && !errors.Is(err, auctionerrors.ErrAuctionClosed) && !errors.Is(err, auctionerrors.ErrBidTooLow) {
				mu.Lock()
				unexpected = append(unexpected, err)
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	require.Empty(t, unexpected)
	require.Equal(t, 1, closedCount, "close must succeed exactly once")

	got, err := service.GetListing(listing.ListingID)
	require.NoError(t, err)
	require.False(t, got.Active)
	require.NotEmpty(t, got.WinnerID)

	leading, err := service.LeadingBid(listing.ListingID)
	require.NoError(t, err)
	require.Equal(t, leading.UserID, got.WinnerID)
	require.True(t, got.CurrentPrice.Equal(leading.Amount))
}
