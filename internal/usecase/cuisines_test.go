package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tablebridge/tablebridge/internal/domain"
	"github.com/tablebridge/tablebridge/internal/usecase"
)

var fixtureCatalog = []domain.CuisineRecord{
	{ID: "sushi", Name: "Sushi"},
	{ID: "indian-curry", Name: "Indian Curry"},
	{ID: "italian", Name: "Italian"},
	{ID: "yakitori", Name: "Yakitori / Grilled Skewers"},
}

func TestCuisineCatalog_List(t *testing.T) {
	client := &fakeClient{cuisines: fixtureCatalog}
	uc := usecase.NewCuisineCatalogUseCase(client, testLogger())

	records, err := uc.List(context.Background(), domain.LocaleJP)
	require.NoError(t, err)
	assert.Equal(t, fixtureCatalog, records)
	require.Len(t, client.cuisineCalls, 1)
	assert.Equal(t, domain.LocaleJP, client.cuisineCalls[0])
}

func TestCuisineCatalog_ListDefaultsLocale(t *testing.T) {
	client := &fakeClient{}
	uc := usecase.NewCuisineCatalogUseCase(client, testLogger())

	_, err := uc.List(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, client.cuisineCalls, 1)
	assert.Equal(t, domain.DefaultLocale, client.cuisineCalls[0])
}

func TestCuisineCatalog_Match(t *testing.T) {
	client := &fakeClient{cuisines: fixtureCatalog}
	uc := usecase.NewCuisineCatalogUseCase(client, testLogger())
	ctx := context.Background()

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"matches id via dash-joined variant", "indian curry", []string{"indian-curry"}},
		{"matches display name substring", "curry", []string{"indian-curry"}},
		{"case-insensitive name match", "SUSHI", []string{"sushi"}},
		{"partial id token", "ital", []string{"italian"}},
		{"name with extra words", "grilled skewers", []string{"yakitori"}},
		{"no match yields empty, not error", "unmatched-token", nil},
		{"blank query matches nothing", "   ", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := uc.Match(ctx, tt.query, domain.LocaleEN)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCuisineCatalog_MatchPropagatesError(t *testing.T) {
	client := &fakeClient{cuisinesErr: domain.NewAPIError(500, nil)}
	uc := usecase.NewCuisineCatalogUseCase(client, testLogger())

	_, err := uc.Match(context.Background(), "sushi", domain.LocaleEN)
	require.Error(t, err)
}
