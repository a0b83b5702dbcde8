package catalog

import (
	"math"
	"strings"

	"github.com/jooyongc/goldensnow360-dubai/models"
)

type ViewMode string

const (
	ViewGrid ViewMode = "grid"
	ViewMap  ViewMode = "map"
)

// ParseViewMode maps request input onto a view mode. Anything other than
// "map" is the grid.
func ParseViewMode(s string) ViewMode {
	if strings.EqualFold(strings.TrimSpace(s), string(ViewMap)) {
		return ViewMap
	}
	return ViewGrid
}

// State is everything the VR room page tracks between input events.
type State struct {
	Query Query    `json:"query"`
	View  ViewMode `json:"view"`
}

func InitialState() State {
	return State{View: ViewGrid}
}

func (s State) HasFilters() bool { return !s.Query.IsEmpty() }

type ActionKind int

const (
	SetText ActionKind = iota
	SetArea
	SetType
	SetView
	ClearText
	ClearArea
	ClearType
	ClearFilters
)

// Action is a discrete input event. Value carries the new text, area, type or
// view mode for the Set* kinds and is ignored otherwise.
type Action struct {
	Kind  ActionKind
	Value string
}

// Reduce applies a to s. View changes leave the query alone and query changes
// leave the view alone.
func Reduce(s State, a Action) State {
	switch a.Kind {
	case SetText:
		s.Query.Text = a.Value
	case SetArea:
		s.Query.Area = a.Value
	case SetType:
		s.Query.PropertyType = a.Value
	case SetView:
		s.View = ParseViewMode(a.Value)
	case ClearText:
		s.Query.Text = ""
	case ClearArea:
		s.Query.Area = ""
	case ClearType:
		s.Query.PropertyType = ""
	case ClearFilters:
		s.Query = Query{}
	}
	return s
}

type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// MapConfig describes the map widget the viewport is fitted to.
type MapConfig struct {
	DefaultCenter LatLng `yaml:"default_center"`
	DefaultZoom   int    `yaml:"default_zoom"`
	Padding       int    `yaml:"padding"`
	MaxZoom       int    `yaml:"max_zoom"`
	Width         int    `yaml:"width"`
	Height        int    `yaml:"height"`
	TileSize      int    `yaml:"tile_size"`
}

func DefaultMapConfig() MapConfig {
	return MapConfig{
		DefaultCenter: LatLng{Lat: 25.2048, Lng: 55.2708},
		DefaultZoom:   11,
		Padding:       50,
		MaxZoom:       13,
		Width:         1200,
		Height:        600,
		TileSize:      256,
	}
}

type Bounds struct {
	MinLat float64 `json:"min_lat"`
	MaxLat float64 `json:"max_lat"`
	MinLng float64 `json:"min_lng"`
	MaxLng float64 `json:"max_lng"`
}

// BoundsOf returns the smallest box covering every mappable record. ok is
// false when no record can be placed on the map.
func BoundsOf(records []models.Property) (b Bounds, ok bool) {
	for _, p := range records {
		lat, lng, mappable := p.Coordinates()
		if !mappable {
			continue
		}
		if !ok {
			b = Bounds{MinLat: lat, MaxLat: lat, MinLng: lng, MaxLng: lng}
			ok = true
			continue
		}
		b.MinLat = math.Min(b.MinLat, lat)
		b.MaxLat = math.Max(b.MaxLat, lat)
		b.MinLng = math.Min(b.MinLng, lng)
		b.MaxLng = math.Max(b.MaxLng, lng)
	}
	return b, ok
}

type Viewport struct {
	Center LatLng  `json:"center"`
	Zoom   int     `json:"zoom"`
	Bounds *Bounds `json:"bounds,omitempty"`
	Fitted bool    `json:"fitted"`
}

// FitViewport centres the map on the mappable records and picks the largest
// whole zoom level at which their box fits inside the padded map, capped at
// cfg.MaxZoom. With nothing to show it returns the configured default view.
func FitViewport(records []models.Property, cfg MapConfig) Viewport {
	b, ok := BoundsOf(records)
	if !ok {
		return Viewport{Center: cfg.DefaultCenter, Zoom: cfg.DefaultZoom}
	}

	tile := float64(cfg.TileSize)
	if tile <= 0 {
		tile = 256
	}
	x1, y1 := project(b.MaxLat, b.MinLng, tile)
	x2, y2 := project(b.MinLat, b.MaxLng, tile)

	vp := Viewport{
		Center: LatLng{Lat: unprojectLat((y1+y2)/2, tile), Lng: (b.MinLng + b.MaxLng) / 2},
		Bounds: &b,
		Fitted: true,
	}

	availW := float64(cfg.Width - 2*cfg.Padding)
	availH := float64(cfg.Height - 2*cfg.Padding)
	if availW <= 0 || availH <= 0 {
		vp.Zoom = 0
		return vp
	}

	scale := math.Inf(1)
	if dx := x2 - x1; dx > 0 {
		scale = math.Min(scale, availW/dx)
	}
	if dy := y2 - y1; dy > 0 {
		scale = math.Min(scale, availH/dy)
	}

	zoom := cfg.MaxZoom
	if !math.IsInf(scale, 1) {
		if z := math.Floor(math.Log2(scale)); z < float64(cfg.MaxZoom) {
			zoom = int(z)
		}
	}
	if zoom < 0 {
		zoom = 0
	}
	vp.Zoom = zoom
	return vp
}

// Spherical Mercator at zoom 0, the projection web tile maps use.
const maxMercatorLat = 85.0511287798

func project(lat, lng, tile float64) (x, y float64) {
	lat = math.Max(math.Min(lat, maxMercatorLat), -maxMercatorLat)
	rad := lat * math.Pi / 180
	x = (lng + 180) / 360 * tile
	y = (1 - math.Log(math.Tan(rad)+1/math.Cos(rad))/math.Pi) / 2 * tile
	return x, y
}

func unprojectLat(y, tile float64) float64 {
	n := math.Pi * (1 - 2*y/tile)
	return math.Atan(math.Sinh(n)) * 180 / math.Pi
}
