package catalog

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jooyongc/goldensnow360-dubai/models"
)

func newTestSession(records []models.Property) *Session {
	return NewSession(records, NewRenderer("", "en_US"), DefaultMapConfig())
}

func TestSession_Initial(t *testing.T) {
	s := newTestSession(dubaiCatalog())
	assert.Equal(t, InitialState(), s.State())
	assert.Len(t, s.Visible(), 5)
	assert.Len(t, s.Grid().Cards, 5)
}

func TestSession_FacetsStayStable(t *testing.T) {
	s := newTestSession(dubaiCatalog())
	before := s.Facets()

	s.Dispatch(Action{Kind: SetArea, Value: "JBR"}, Action{Kind: SetType, Value: "Apartment"})
	require.Len(t, s.Visible(), 1)
	assert.Equal(t, before, s.Facets())
	assert.Contains(t, s.Facets().Areas, "Palm Jumeirah")
}

func TestSession_GridAndMapAgree(t *testing.T) {
	records := dubaiCatalog()
	records[2].Lat = nil
	s := newTestSession(records)
	s.Dispatch(ActionsFromQuery("dubai", "", "", "map")...)

	assert.Equal(t, ViewMap, s.State().View)
	grid := s.Grid()
	m := s.Map()

	gridIDs := map[models.PropertyID]bool{}
	for _, c := range grid.Cards {
		gridIDs[c.ID] = true
	}
	for _, mk := range m.Markers {
		assert.True(t, gridIDs[mk.ID], "marker %s not in grid", mk.ID)
	}
	assert.True(t, gridIDs["3"], "unmappable record still listed in grid")
	assert.Len(t, m.Markers, len(grid.Cards)-1)
}

func TestSession_UnmappableRecordStaysInGrid(t *testing.T) {
	records := []models.Property{
		{ID: "nolat", Title: "No latitude", Lng: ptr(55.1)},
		{ID: "nan", Title: "Bad longitude", Lat: ptr(25.1), Lng: ptr(math.NaN())},
	}
	s := newTestSession(records)
	s.Dispatch(Action{Kind: SetView, Value: "map"})

	assert.Len(t, s.Grid().Cards, 2)
	m := s.Map()
	assert.Empty(t, m.Markers)
	assert.False(t, m.Viewport.Fitted)
	assert.Equal(t, DefaultMapConfig().DefaultCenter, m.Viewport.Center)
}

func TestSession_ViewToggleKeepsVisibleSet(t *testing.T) {
	s := newTestSession(dubaiCatalog())
	s.Dispatch(Action{Kind: SetText, Value: "marina"})
	visible := s.Visible()

	s.Dispatch(Action{Kind: SetView, Value: "map"})
	assert.Equal(t, ids(visible), ids(s.Visible()))

	s.Dispatch(Action{Kind: ClearFilters})
	assert.Len(t, s.Visible(), 5)
	assert.Equal(t, ViewMap, s.State().View)
}

func TestSession_EmptySnapshot(t *testing.T) {
	s := newTestSession(nil)
	assert.Empty(t, s.Visible())
	assert.Empty(t, s.Grid().Cards)
	assert.Empty(t, s.Map().Markers)
	assert.Equal(t, 11, s.Map().Viewport.Zoom)
}
