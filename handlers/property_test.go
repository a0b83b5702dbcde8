package handlers_test

import (
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jooyongc/goldensnow360-dubai/catalog"
	"github.com/jooyongc/goldensnow360-dubai/handlers"
	"github.com/jooyongc/goldensnow360-dubai/models"
	"github.com/jooyongc/goldensnow360-dubai/store"
)

func propertyIDs(records []models.Property) []models.PropertyID {
	ids := make([]models.PropertyID, 0, len(records))
	for _, p := range records {
		ids = append(ids, p.ID)
	}
	return ids
}

func TestHealthCheck(t *testing.T) {
	env := newTestEnv(t, nil)
	rec := env.do(http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestListProperties(t *testing.T) {
	env := newTestEnv(t, nil)

	tests := []struct {
		name   string
		target string
		want   []models.PropertyID
	}{
		{"no filters keeps catalog order", "/api/properties", []models.PropertyID{"5", "4", "3", "2", "1"}},
		{"keyword is case insensitive", "/api/properties?keyword=PALM", []models.PropertyID{"1"}},
		{"keyword matches description", "/api/properties?keyword=burj", []models.PropertyID{"2"}},
		{"area is exact", "/api/properties?area=JBR", []models.PropertyID{"5"}},
		{"area does not fold case", "/api/properties?area=jbr", []models.PropertyID{}},
		{"type and keyword combine", "/api/properties?type=Apartment&keyword=marina", []models.PropertyID{"3"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(http.MethodGet, tt.target, "", "")
			require.Equal(t, http.StatusOK, rec.Code)
			var resp handlers.PropertyListResponse
			decodeBody(t, rec, &resp)
			if diff := cmp.Diff(tt.want, propertyIDs(resp.Properties)); diff != "" {
				t.Errorf("ids mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, len(tt.want), resp.Count)
			assert.Equal(t, 5, resp.Total)
			assert.False(t, resp.Demo)
			assert.Equal(t, []string{"Business Bay", "Downtown Dubai", "Dubai Marina", "JBR", "Palm Jumeirah"}, resp.Facets.Areas)
			assert.Equal(t, []string{"Apartment", "Office", "Penthouse", "Villa"}, resp.Facets.Types)
		})
	}
}

func TestListProperties_ETag(t *testing.T) {
	env := newTestEnv(t, nil)
	first := env.do(http.MethodGet, "/api/properties?area=JBR", "", "")
	require.Equal(t, http.StatusOK, first.Code)
	etag := first.Header().Get("ETag")
	require.NotEmpty(t, etag)

	cached := env.do(http.MethodGet, "/api/properties?area=JBR", "", "", "If-None-Match", etag)
	assert.Equal(t, http.StatusNotModified, cached.Code)
	assert.Empty(t, cached.Body.String())

	other := env.do(http.MethodGet, "/api/properties?area=Business%20Bay", "", "", "If-None-Match", etag)
	assert.Equal(t, http.StatusOK, other.Code)
	assert.NotEqual(t, etag, other.Header().Get("ETag"))
}

func TestListProperties_FallsBackToDemoCatalog(t *testing.T) {
	st := store.NewMemory()
	st.Properties = brokenProperties{}
	env := newTestEnv(t, st)

	rec := env.do(http.MethodGet, "/api/properties?keyword=villa", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var resp handlers.PropertyListResponse
	decodeBody(t, rec, &resp)
	assert.True(t, resp.Demo)
	assert.Equal(t, 5, resp.Total)
	assert.Equal(t, []models.PropertyID{"1"}, propertyIDs(resp.Properties))
}

func TestGetProperty_FallsBackToDemoListing(t *testing.T) {
	st := store.NewMemory()
	st.Properties = brokenProperties{}
	env := newTestEnv(t, st)

	rec := env.do(http.MethodGet, "/api/properties/1", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var resp handlers.PropertyDetailResponse
	decodeBody(t, rec, &resp)
	assert.True(t, resp.Demo)
	assert.Equal(t, models.PropertyID("1"), resp.Property.ID)
	assert.Equal(t, "/property/1", resp.Card.DetailURL)

	rec = env.do(http.MethodGet, "/api/properties/999", "", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestFeaturedProperties(t *testing.T) {
	env := newTestEnv(t, nil)

	rec := env.do(http.MethodGet, "/api/properties/featured", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string][]catalog.Card
	decodeBody(t, rec, &resp)
	require.Len(t, resp["cards"], 3)
	for _, c := range resp["cards"] {
		assert.True(t, c.Featured)
	}
	assert.Equal(t, models.PropertyID("3"), resp["cards"][0].ID)

	rec = env.do(http.MethodGet, "/api/properties/featured?limit=1", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	decodeBody(t, rec, &resp)
	assert.Len(t, resp["cards"], 1)
}

func TestGetProperty(t *testing.T) {
	env := newTestEnv(t, nil)

	rec := env.do(http.MethodGet, "/api/properties/4", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var resp handlers.PropertyDetailResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, "Business Bay Office", resp.Property.Title)
	assert.Equal(t, "/property/4", resp.Card.DetailURL)
	require.Len(t, resp.Card.Stats, 2)
	assert.Equal(t, "2 Baths", resp.Card.Stats[0].Label)
	assert.Equal(t, "3,500 sqft", resp.Card.Stats[1].Label)
	assert.Contains(t, resp.DescriptionHTML, "<p>Premium office space")
	assert.Equal(t, "https://my.matterport.com/show/?m=SxQL3iGyvft", resp.TourURL)

	rec = env.do(http.MethodGet, "/api/properties/999", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.do(http.MethodGet, "/api/properties/bad!id", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHome(t *testing.T) {
	env := newTestEnv(t, nil)
	rec := env.do(http.MethodGet, "/api/home", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp handlers.HomeResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, store.DemoHero().Title, resp.Hero.Title)
	require.Len(t, resp.Featured, 3)
	assert.Equal(t, "Dubai Marina Apartment", resp.Featured[0].Title)
	assert.Equal(t, "1 February 2026", resp.Featured[0].ListedOn)
}

func TestHome_BackendDownServesDemoContent(t *testing.T) {
	st := store.NewMemory()
	st.Properties = brokenProperties{}
	st.Content = brokenContent{st.Content}
	env := newTestEnv(t, st)

	rec := env.do(http.MethodGet, "/api/home", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var resp handlers.HomeResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, store.DemoHero().Title, resp.Hero.Title)
	assert.Len(t, resp.Featured, 3)
}
