package catalog

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jooyongc/goldensnow360-dubai/models"
)

func TestParseViewMode(t *testing.T) {
	assert.Equal(t, ViewMap, ParseViewMode("map"))
	assert.Equal(t, ViewMap, ParseViewMode(" MAP "))
	assert.Equal(t, ViewGrid, ParseViewMode("grid"))
	assert.Equal(t, ViewGrid, ParseViewMode(""))
	assert.Equal(t, ViewGrid, ParseViewMode("satellite"))
}

func TestReduce(t *testing.T) {
	s := InitialState()
	assert.Equal(t, ViewGrid, s.View)
	assert.False(t, s.HasFilters())

	s = Reduce(s, Action{Kind: SetText, Value: "villa"})
	s = Reduce(s, Action{Kind: SetArea, Value: "JBR"})
	s = Reduce(s, Action{Kind: SetType, Value: "Apartment"})
	assert.Equal(t, Query{Text: "villa", Area: "JBR", PropertyType: "Apartment"}, s.Query)
	assert.True(t, s.HasFilters())

	toggled := Reduce(s, Action{Kind: SetView, Value: "map"})
	assert.Equal(t, ViewMap, toggled.View)
	assert.Equal(t, s.Query, toggled.Query)

	assert.Equal(t, "", Reduce(s, Action{Kind: ClearText}).Query.Text)
	assert.Equal(t, "", Reduce(s, Action{Kind: ClearArea}).Query.Area)
	assert.Equal(t, "", Reduce(s, Action{Kind: ClearType}).Query.PropertyType)

	cleared := Reduce(toggled, Action{Kind: ClearFilters})
	assert.True(t, cleared.Query.IsEmpty())
	assert.Equal(t, ViewMap, cleared.View)
}

func TestReduce_DoesNotMutateInput(t *testing.T) {
	s := State{Query: Query{Text: "a"}, View: ViewGrid}
	_ = Reduce(s, Action{Kind: SetText, Value: "b"})
	assert.Equal(t, "a", s.Query.Text)
}

func TestBoundsOf_ThreeListings(t *testing.T) {
	records := dubaiCatalog()[:3]
	b, ok := BoundsOf(records)
	require.True(t, ok)
	assert.Equal(t, Bounds{MinLat: 25.0805, MaxLat: 25.1972, MinLng: 55.1390, MaxLng: 55.2744}, b)

	vp := FitViewport(records, DefaultMapConfig())
	assert.True(t, vp.Fitted)
	assert.LessOrEqual(t, vp.Zoom, 13)
	assert.Equal(t, 12, vp.Zoom)
	assert.InDelta(t, (55.1390+55.2744)/2, vp.Center.Lng, 1e-9)
	assert.Greater(t, vp.Center.Lat, 25.0805)
	assert.Less(t, vp.Center.Lat, 25.1972)
}

func TestBoundsOf_SkipsUnmappable(t *testing.T) {
	records := []models.Property{
		{ID: "a", Lat: nil, Lng: ptr(55.0)},
		{ID: "b", Lat: ptr(25.0), Lng: ptr(math.NaN())},
		{ID: "c", Lat: ptr(math.Inf(1)), Lng: ptr(55.0)},
		{ID: "d", Lat: ptr(125.0), Lng: ptr(55.0)},
	}
	_, ok := BoundsOf(records)
	assert.False(t, ok)

	vp := FitViewport(records, DefaultMapConfig())
	assert.False(t, vp.Fitted)
	assert.Nil(t, vp.Bounds)
	assert.Equal(t, LatLng{Lat: 25.2048, Lng: 55.2708}, vp.Center)
	assert.Equal(t, 11, vp.Zoom)
}

func TestFitViewport_SinglePointUsesMaxZoom(t *testing.T) {
	records := []models.Property{{ID: "a", Lat: ptr(25.1124), Lng: ptr(55.1390)}}
	vp := FitViewport(records, DefaultMapConfig())
	assert.Equal(t, 13, vp.Zoom)
	assert.InDelta(t, 25.1124, vp.Center.Lat, 1e-9)
	assert.InDelta(t, 55.1390, vp.Center.Lng, 1e-9)
}

func TestFitViewport_TightClusterIsCapped(t *testing.T) {
	records := []models.Property{
		{ID: "a", Lat: ptr(25.1124), Lng: ptr(55.1390)},
		{ID: "b", Lat: ptr(25.1125), Lng: ptr(55.1391)},
	}
	assert.Equal(t, 13, FitViewport(records, DefaultMapConfig()).Zoom)
}

func TestFitViewport_WideSpreadZoomsOut(t *testing.T) {
	records := []models.Property{
		{ID: "dubai", Lat: ptr(25.2), Lng: ptr(55.27)},
		{ID: "london", Lat: ptr(51.5), Lng: ptr(-0.12)},
	}
	vp := FitViewport(records, DefaultMapConfig())
	assert.GreaterOrEqual(t, vp.Zoom, 0)
	assert.Less(t, vp.Zoom, 6)
}

func TestFitViewport_PaddingLargerThanMap(t *testing.T) {
	cfg := DefaultMapConfig()
	cfg.Width, cfg.Height = 80, 80
	vp := FitViewport(dubaiCatalog(), cfg)
	assert.True(t, vp.Fitted)
	assert.Equal(t, 0, vp.Zoom)
}
