package prayer

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"prayertimes.app/internal/core/location"
	"prayertimes.app/internal/mocks"
	"prayertimes.app/internal/ports"
	"prayertimes.app/pkg/errors"
)

var (
	tallinn   = location.Location{City: "Tallinn", Country: "Estonia"}
	dubai     = location.Location{City: "Dubai", Country: "UAE"}
	march5    = Date{Year: 2024, Month: time.March, Day: 5}
	march6    = Date{Year: 2024, Month: time.March, Day: 6}
	tallinnT1 = []ports.PrayerTiming{{Name: "Fajr", Time: "05:12"}, {Name: "Dhuhr", Time: "12:31"}}
	tallinnT2 = []ports.PrayerTiming{{Name: "Fajr", Time: "05:09"}, {Name: "Dhuhr", Time: "12:30"}}
)

func setupSync(t *testing.T) (*Sync, *mocks.PrayerTimesProvider, *mocks.Logger) {
	provider := mocks.NewPrayerTimesProvider(t)
	logger := mocks.AllowLogs(mocks.NewLogger(t))

	s, err := NewSync(SyncDependencies{Provider: provider, Logger: logger})
	require.NoError(t, err)

	return s, provider, logger
}

func TestNewSync_MissingDependencies(t *testing.T) {
	_, err := NewSync(SyncDependencies{Logger: mocks.AllowLogs(mocks.NewLogger(t))})
	assert.True(t, errors.IsValidationError(err))

	_, err = NewSync(SyncDependencies{Provider: mocks.NewPrayerTimesProvider(t)})
	assert.True(t, errors.IsValidationError(err))
}

func TestSync_InitialState(t *testing.T) {
	s, _, _ := setupSync(t)

	assert.True(t, s.Loading())
	assert.Nil(t, s.Times())
}

func TestSync_Start_UnresolvedLocationIsPassedThrough(t *testing.T) {
	s, provider, _ := setupSync(t)

	provider.EXPECT().GetTimings(mock.Anything, ports.PrayerTimesQuery{City: "", Country: "", Date: "05-03-2024"}).
		Return(tallinnT1, nil).Once()

	s.Start(context.Background(), Inputs{Date: march5})
	s.Wait()

	assert.False(t, s.Loading())
	assert.Len(t, s.Times(), 2)
}

func TestSync_Update_FormatsDateForQuery(t *testing.T) {
	s, provider, _ := setupSync(t)

	provider.EXPECT().GetTimings(mock.Anything, ports.PrayerTimesQuery{City: "Tallinn", Country: "Estonia", Date: "05-03-2024"}).
		Return(tallinnT1, nil).Once()

	started := s.Update(context.Background(), Inputs{Location: tallinn, Date: march5})
	s.Wait()

	assert.True(t, started)
	fajr, ok := s.Times().Get("Fajr")
	assert.True(t, ok)
	assert.Equal(t, "05:12", fajr)
	assert.Equal(t, Inputs{Location: tallinn, Date: march5}, s.Inputs())
}

func TestSync_Update_SameInputsDoesNotRefetch(t *testing.T) {
	s, provider, _ := setupSync(t)
	ctx := context.Background()

	provider.EXPECT().GetTimings(mock.Anything, mock.Anything).Return(tallinnT1, nil).Once()

	require.True(t, s.Update(ctx, Inputs{Location: tallinn, Date: march5}))
	s.Wait()

	assert.False(t, s.Update(ctx, Inputs{Location: tallinn, Date: march5}))
	s.Wait()
	provider.AssertNumberOfCalls(t, "GetTimings", 1)
}

func TestSync_Update_LocationOrDateChangeRefetches(t *testing.T) {
	s, provider, _ := setupSync(t)
	ctx := context.Background()

	provider.EXPECT().GetTimings(mock.Anything, mock.Anything).Return(tallinnT1, nil).Times(3)

	assert.True(t, s.Update(ctx, Inputs{Location: tallinn, Date: march5}))
	s.Wait()
	assert.True(t, s.Update(ctx, Inputs{Location: tallinn, Date: march6}))
	s.Wait()
	assert.True(t, s.Update(ctx, Inputs{Location: dubai, Date: march6}))
	s.Wait()
}

func TestSync_FetchFailure_KeepsStaleResultAndClearsLoading(t *testing.T) {
	s, provider, logger := setupSync(t)
	ctx := context.Background()

	provider.EXPECT().GetTimings(mock.Anything, ports.PrayerTimesQuery{City: "Tallinn", Country: "Estonia", Date: "05-03-2024"}).
		Return(tallinnT1, nil).Once()
	provider.EXPECT().GetTimings(mock.Anything, ports.PrayerTimesQuery{City: "Tallinn", Country: "Estonia", Date: "06-03-2024"}).
		Return(nil, errors.NewExternalAPIError("prayer API returned status 500", nil)).Once()

	s.Update(ctx, Inputs{Location: tallinn, Date: march5})
	s.Wait()
	before := s.Times()

	s.Update(ctx, Inputs{Location: tallinn, Date: march6})
	s.Wait()

	assert.False(t, s.Loading())
	assert.Equal(t, before, s.Times())
	assert.True(t, mocks.Logged(logger, "Error", "Error fetching prayer times"))
}

func TestSync_FetchFailure_NoPriorResultStaysNil(t *testing.T) {
	s, provider, _ := setupSync(t)

	block := make(chan struct{})
	provider.EXPECT().GetTimings(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, query ports.PrayerTimesQuery) { <-block }).
		Return(nil, errors.NewExternalAPIError("prayer API returned status 500", nil)).Once()

	s.Update(context.Background(), Inputs{Location: tallinn, Date: march5})
	assert.True(t, s.Loading())

	close(block)
	s.Wait()

	assert.False(t, s.Loading())
	assert.Nil(t, s.Times())
}

func TestSync_OverlappingFetches_LastToSettleWins(t *testing.T) {
	s, provider, _ := setupSync(t)
	ctx := context.Background()

	releaseFirst := make(chan struct{})
	firstStarted := make(chan struct{})
	provider.EXPECT().GetTimings(mock.Anything, ports.PrayerTimesQuery{City: "Tallinn", Country: "Estonia", Date: "05-03-2024"}).
		Run(func(ctx context.Context, query ports.PrayerTimesQuery) {
			close(firstStarted)
			<-releaseFirst
		}).
		Return(tallinnT1, nil).Once()

	secondDone := make(chan struct{})
	provider.EXPECT().GetTimings(mock.Anything, ports.PrayerTimesQuery{City: "Tallinn", Country: "Estonia", Date: "06-03-2024"}).
		Run(func(ctx context.Context, query ports.PrayerTimesQuery) { close(secondDone) }).
		Return(tallinnT2, nil).Once()

	s.Update(ctx, Inputs{Location: tallinn, Date: march5})
	<-firstStarted
	s.Update(ctx, Inputs{Location: tallinn, Date: march6})
	<-secondDone

	// second has settled; give its goroutine time to apply before releasing the first
	require.Eventually(t, func() bool {
		fajr, _ := s.Times().Get("Fajr")
		return fajr == "05:09"
	}, time.Second, 5*time.Millisecond)

	close(releaseFirst)
	s.Wait()

	// the older request settled last, so its result is what is shown
	fajr, _ := s.Times().Get("Fajr")
	assert.Equal(t, "05:12", fajr)
	assert.Equal(t, Inputs{Location: tallinn, Date: march6}, s.Inputs())
}
