package catalog

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jooyongc/goldensnow360-dubai/models"
)

func TestFilter_EmptyQueryIsIdentity(t *testing.T) {
	records := dubaiCatalog()
	got := Filter(records, Query{})
	if diff := cmp.Diff(ids(records), ids(got)); diff != "" {
		t.Fatalf("identity filter changed the catalog (-want +got):\n%s", diff)
	}
}

func TestFilter_EmptyCatalog(t *testing.T) {
	got := Filter(nil, Query{Text: "palm"})
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFilter_TextIsCaseInsensitive(t *testing.T) {
	for _, text := range []string{"palm", "PALM", "jumeirah villa"} {
		t.Run(text, func(t *testing.T) {
			got := Filter(dubaiCatalog(), Query{Text: text})
			require.NotEmpty(t, got)
			assert.Equal(t, models.PropertyID("1"), got[0].ID)
		})
	}
}

func TestFilter_TextSearchesLocationAndDescription(t *testing.T) {
	got := Filter(dubaiCatalog(), Query{Text: "burj khalifa"})
	assert.Equal(t, []models.PropertyID{"2"}, ids(got))

	got = Filter(dubaiCatalog(), Query{Text: "beach residence"})
	assert.Equal(t, []models.PropertyID{"5"}, ids(got))
}

func TestFilter_MissingDescriptionIsEmpty(t *testing.T) {
	records := []models.Property{{ID: "x", Title: "Plain", Location: "Nowhere"}}
	assert.Empty(t, Filter(records, Query{Text: "view"}))
	assert.Len(t, Filter(records, Query{Text: "plain"}), 1)
}

func TestFilter_AreaAndTypeAreExact(t *testing.T) {
	records := append(dubaiCatalog(), models.Property{ID: "6", Title: "Lowercase", Area: "downtown dubai", PropertyType: "villa"})

	got := Filter(records, Query{Area: "Downtown Dubai"})
	assert.Equal(t, []models.PropertyID{"2"}, ids(got))

	got = Filter(records, Query{PropertyType: "Villa"})
	assert.Equal(t, []models.PropertyID{"1"}, ids(got))

	got = Filter(records, Query{PropertyType: "Apartment", Area: "JBR"})
	assert.Equal(t, []models.PropertyID{"5"}, ids(got))
}

func TestFilter_PreservesOrder(t *testing.T) {
	got := Filter(dubaiCatalog(), Query{PropertyType: "Apartment"})
	assert.Equal(t, []models.PropertyID{"3", "5"}, ids(got))
}

func TestFilter_Idempotent(t *testing.T) {
	queries := []Query{
		{},
		{Text: "dubai"},
		{Area: "Dubai Marina"},
		{Text: "a", PropertyType: "Apartment"},
		{Text: "nothing matches this"},
	}
	for _, q := range queries {
		once := Filter(dubaiCatalog(), q)
		twice := Filter(once, q)
		assert.Equal(t, ids(once), ids(twice), "query %+v", q)
	}
}

func TestFilter_MonotonicNarrowing(t *testing.T) {
	records := dubaiCatalog()
	steps := []struct {
		wide, narrow Query
	}{
		{Query{}, Query{Text: "dubai"}},
		{Query{Text: "dubai"}, Query{Text: "dubai", Area: "Dubai Marina"}},
		{Query{Area: "JBR"}, Query{Area: "JBR", PropertyType: "Villa"}},
	}
	for _, s := range steps {
		wide := map[models.PropertyID]bool{}
		for _, p := range Filter(records, s.wide) {
			wide[p.ID] = true
		}
		for _, p := range Filter(records, s.narrow) {
			assert.True(t, wide[p.ID], "%s passes %+v but not %+v", p.ID, s.narrow, s.wide)
		}
	}
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	records := dubaiCatalog()
	before := ids(records)
	_ = Filter(records, Query{Text: "marina"})
	assert.Equal(t, before, ids(records))
}

func TestFacetsOf_SortedDistinct(t *testing.T) {
	records := append(dubaiCatalog(), models.Property{ID: "6", Area: "JBR", PropertyType: ""})
	f := FacetsOf(records)
	assert.Equal(t, []string{"Business Bay", "Downtown Dubai", "Dubai Marina", "JBR", "Palm Jumeirah"}, f.Areas)
	assert.Equal(t, []string{"Apartment", "Office", "Penthouse", "Villa"}, f.Types)
}

func TestFacetsOf_Empty(t *testing.T) {
	f := FacetsOf(nil)
	assert.NotNil(t, f.Areas)
	assert.Empty(t, f.Areas)
	assert.Empty(t, f.Types)
}

func TestFeatured(t *testing.T) {
	assert.Equal(t, []models.PropertyID{"1", "2", "3"}, ids(Featured(dubaiCatalog(), 0)))
	assert.Equal(t, []models.PropertyID{"1", "2"}, ids(Featured(dubaiCatalog(), 2)))
	assert.Empty(t, Featured(dubaiCatalog()[3:], 3))
}
