package usecase_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tablebridge/tablebridge/internal/domain"
	"github.com/tablebridge/tablebridge/internal/usecase"
)

// fakeClient is a scriptable RestaurantClient. It records the requests it
// receives so tests can assert on what the orchestrator sent upstream.
type fakeClient struct {
	mu sync.Mutex

	shopResults []domain.RestaurantRecord
	shopErr     error
	textResults []domain.RestaurantRecord
	textErr     error
	cuisines    []domain.CuisineRecord
	cuisinesErr error
	slots       []domain.AvailabilitySlot
	slotsErr    error

	shopCalls     []domain.SearchRequest
	textCalls     []domain.SearchRequest
	cuisineCalls  []domain.Locale
	calendarCalls []domain.AvailabilityRequest
}

func (f *fakeClient) SearchShops(ctx context.Context, req domain.SearchRequest) ([]domain.RestaurantRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.shopCalls = append(f.shopCalls, req)
	return f.shopResults, f.shopErr
}

func (f *fakeClient) SearchText(ctx context.Context, req domain.SearchRequest) ([]domain.RestaurantRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.textCalls = append(f.textCalls, req)
	return f.textResults, f.textErr
}

func (f *fakeClient) ListCuisines(ctx context.Context, locale domain.Locale) ([]domain.CuisineRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cuisineCalls = append(f.cuisineCalls, locale)
	return f.cuisines, f.cuisinesErr
}

func (f *fakeClient) AvailabilityCalendar(ctx context.Context, req domain.AvailabilityRequest) ([]domain.AvailabilitySlot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calendarCalls = append(f.calendarCalls, req)
	return f.slots, f.slotsErr
}

// fixedResolver resolves everything to one coordinate.
type fixedResolver struct {
	geo domain.Coordinate
}

func (r fixedResolver) Resolve(text string) domain.Coordinate { return r.geo }

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newSearchUseCase(client *fakeClient, resolver usecase.PlaceResolver) *usecase.SearchUseCase {
	logger := testLogger()
	cuisines := usecase.NewCuisineCatalogUseCase(client, logger)
	return usecase.NewSearchUseCase(client, cuisines, resolver, logger)
}

func rec(slug string) domain.RestaurantRecord {
	return domain.RestaurantRecord{ID: slug, Slug: slug, Name: slug}
}

func TestSearch_FilterOnlyPath(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	client := &fakeClient{shopResults: []domain.RestaurantRecord{rec("a"), rec("b")}}
	uc := newSearchUseCase(client, fixedResolver{})

	records, err := uc.Execute(context.Background(), domain.SearchRequest{Cuisines: []string{"sushi"}}, "")
	require.NoError(err)
	assert.Equal([]domain.RestaurantRecord{rec("a"), rec("b")}, records)

	// No free-text query: a single filtered call, no text search, no
	// cuisine catalog fetch.
	require.Len(client.shopCalls, 1)
	assert.Empty(client.textCalls)
	assert.Empty(client.cuisineCalls)
	assert.Equal(domain.DefaultLocale, client.shopCalls[0].Locale)
}

func TestSearch_LocationResolvedToAnchor(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	geo := domain.Coordinate{Latitude: 35.658034, Longitude: 139.701636}
	client := &fakeClient{}
	uc := newSearchUseCase(client, fixedResolver{geo: geo})

	_, err := uc.Execute(context.Background(), domain.SearchRequest{}, "shibuya")
	require.NoError(err)

	require.Len(client.shopCalls, 1)
	sent := client.shopCalls[0]
	require.NotNil(sent.Geo)
	assert.Equal(geo, *sent.Geo)
	// Radius default is applied at the orchestration boundary.
	require.NotNil(sent.GeoDistanceKM)
	assert.Equal(domain.DefaultGeoDistanceKM, *sent.GeoDistanceKM)
}

func TestSearch_ExplicitAnchorWinsOverLocation(t *testing.T) {
	require := require.New(t)

	explicit := domain.Coordinate{Latitude: 1, Longitude: 2}
	client := &fakeClient{}
	uc := newSearchUseCase(client, fixedResolver{geo: domain.Coordinate{Latitude: 9, Longitude: 9}})

	_, err := uc.Execute(context.Background(), domain.SearchRequest{Geo: &explicit}, "shibuya")
	require.NoError(err)
	require.Len(client.shopCalls, 1)
	require.NotNil(client.shopCalls[0].Geo)
	assert.Equal(t, explicit, *client.shopCalls[0].Geo)
}

func TestSearch_ExplicitRadiusPreserved(t *testing.T) {
	require := require.New(t)

	radius := 12.5
	client := &fakeClient{}
	uc := newSearchUseCase(client, fixedResolver{})

	_, err := uc.Execute(context.Background(), domain.SearchRequest{
		Geo:           &domain.Coordinate{Latitude: 1, Longitude: 2},
		GeoDistanceKM: &radius,
	}, "")
	require.NoError(err)
	require.NotNil(client.shopCalls[0].GeoDistanceKM)
	assert.Equal(t, 12.5, *client.shopCalls[0].GeoDistanceKM)
}

func TestSearch_NoAnchorNoRadius(t *testing.T) {
	client := &fakeClient{}
	uc := newSearchUseCase(client, fixedResolver{})

	_, err := uc.Execute(context.Background(), domain.SearchRequest{}, "")
	require.NoError(t, err)
	assert.Nil(t, client.shopCalls[0].Geo)
	assert.Nil(t, client.shopCalls[0].GeoDistanceKM)
}

func TestSearch_CombinedPathOrdering(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	client := &fakeClient{
		textResults: []domain.RestaurantRecord{rec("text-1"), rec("text-2")},
		shopResults: []domain.RestaurantRecord{rec("filtered-1"), rec("text-1")},
		cuisines:    []domain.CuisineRecord{{ID: "sushi", Name: "Sushi"}},
	}
	uc := newSearchUseCase(client, fixedResolver{})

	records, err := uc.Execute(context.Background(), domain.SearchRequest{Query: "sushi"}, "")
	require.NoError(err)

	// Text-search results come first, in upstream order; duplicates
	// across the two calls are kept.
	require.Len(records, 4)
	assert.Equal("text-1", records[0].Slug)
	assert.Equal("text-2", records[1].Slug)
	assert.Equal("filtered-1", records[2].Slug)
	assert.Equal("text-1", records[3].Slug)

	require.Len(client.textCalls, 1)
	require.Len(client.shopCalls, 1)
}

func TestSearch_CombinedPathInjectsMatchedCuisines(t *testing.T) {
	require := require.New(t)

	client := &fakeClient{
		cuisines: []domain.CuisineRecord{
			{ID: "indian-curry", Name: "Indian Curry"},
			{ID: "sushi", Name: "Sushi"},
		},
	}
	uc := newSearchUseCase(client, fixedResolver{})

	_, err := uc.Execute(context.Background(), domain.SearchRequest{Query: "indian curry"}, "")
	require.NoError(err)

	require.Len(client.shopCalls, 1)
	assert.Equal(t, []string{"indian-curry"}, client.shopCalls[0].Cuisines)
	// The narrow text endpoint gets the query regardless.
	require.Len(client.textCalls, 1)
	assert.Equal(t, "indian curry", client.textCalls[0].Query)
}

func TestSearch_CombinedPathNoCuisineMatch(t *testing.T) {
	require := require.New(t)

	client := &fakeClient{
		cuisines: []domain.CuisineRecord{{ID: "sushi", Name: "Sushi"}},
	}
	uc := newSearchUseCase(client, fixedResolver{})

	_, err := uc.Execute(context.Background(), domain.SearchRequest{Query: "unmatched-token"}, "")
	require.NoError(err)
	require.Len(client.shopCalls, 1)
	assert.Empty(t, client.shopCalls[0].Cuisines, "no match injects nothing")
}

func TestSearch_UpstreamErrorPropagates(t *testing.T) {
	client := &fakeClient{shopErr: domain.NewAPIError(429, []byte("slow down"))}
	uc := newSearchUseCase(client, fixedResolver{})

	_, err := uc.Execute(context.Background(), domain.SearchRequest{}, "")
	require.Error(t, err)
	apiErr, ok := domain.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, domain.ErrKindRateLimited, apiErr.Kind)
}

func TestSearch_CuisineFetchErrorStopsCombinedPath(t *testing.T) {
	client := &fakeClient{cuisinesErr: domain.NewAPIError(500, []byte("boom"))}
	uc := newSearchUseCase(client, fixedResolver{})

	_, err := uc.Execute(context.Background(), domain.SearchRequest{Query: "sushi"}, "")
	require.Error(t, err)
	assert.Empty(t, client.textCalls, "search calls must not run when cuisine resolution fails")
	assert.Empty(t, client.shopCalls)
}
