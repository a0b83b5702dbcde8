package handlers

import (
	"bytes"
	"html/template"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/jooyongc/goldensnow360-dubai/catalog"
)

// VRRoomController serves the browsable catalog: filters, grid/map toggle and
// the derived cards or markers.
type VRRoomController struct {
	loader   *CatalogLoader
	renderer catalog.Renderer
	mapCfg   catalog.MapConfig
	logger   *zap.Logger
}

func NewVRRoomController(d Deps, loader *CatalogLoader) *VRRoomController {
	return &VRRoomController{loader: loader, renderer: d.Renderer, mapCfg: d.Map, logger: d.Logger}
}

type VRRoomResponse struct {
	State      catalog.State     `json:"state"`
	HasFilters bool              `json:"has_filters"`
	Count      int               `json:"count"`
	Total      int               `json:"total"`
	Facets     catalog.Facets    `json:"facets"`
	Grid       *catalog.GridView `json:"grid,omitempty"`
	Map        *catalog.MapView  `json:"map,omitempty"`
	Demo       bool              `json:"demo"`
}

func (vc *VRRoomController) session(c echo.Context) (*catalog.Session, int, bool) {
	snapshot, demo := vc.loader.Snapshot(c.Request().Context())
	s := catalog.NewSession(snapshot, vc.renderer, vc.mapCfg)
	s.Dispatch(catalog.ActionsFromQuery(
		c.QueryParam("keyword"),
		c.QueryParam("area"),
		c.QueryParam("type"),
		c.QueryParam("view"),
	)...)
	return s, len(snapshot), demo
}

func (vc *VRRoomController) VRRoom(c echo.Context) error {
	s, total, demo := vc.session(c)
	state := s.State()
	resp := VRRoomResponse{
		State:      state,
		HasFilters: state.HasFilters(),
		Count:      len(s.Visible()),
		Total:      total,
		Facets:     s.Facets(),
		Demo:       demo,
	}
	if state.View == catalog.ViewMap {
		m := s.Map()
		resp.Map = &m
	} else {
		g := s.Grid()
		resp.Grid = &g
	}
	return jsonWithETag(c, resp)
}

type filterChip struct {
	Label     string
	Value     string
	RemoveURL string
}

type vrRoomPage struct {
	State    catalog.State
	IsMap    bool
	Count    int
	Facets   catalog.Facets
	Chips    []filterChip
	ClearURL string
	GridURL  string
	MapURL   string
	Grid     catalog.GridView
	Map      catalog.MapView
}

// VRRoomURL encodes s as a /vr-room link. Empty filters and the default grid
// view are left out.
func VRRoomURL(s catalog.State) string {
	v := url.Values{}
	if s.Query.Text != "" {
		v.Set("keyword", s.Query.Text)
	}
	if s.Query.Area != "" {
		v.Set("area", s.Query.Area)
	}
	if s.Query.PropertyType != "" {
		v.Set("type", s.Query.PropertyType)
	}
	if s.View == catalog.ViewMap {
		v.Set("view", string(catalog.ViewMap))
	}
	if len(v) == 0 {
		return "/vr-room"
	}
	return "/vr-room?" + v.Encode()
}

func chipsFor(s catalog.State) []filterChip {
	var chips []filterChip
	add := func(label, value string, clear catalog.ActionKind) {
		if value == "" {
			return
		}
		chips = append(chips, filterChip{
			Label:     label,
			Value:     value,
			RemoveURL: VRRoomURL(catalog.Reduce(s, catalog.Action{Kind: clear})),
		})
	}
	add("Search", s.Query.Text, catalog.ClearText)
	add("Area", s.Query.Area, catalog.ClearArea)
	add("Type", s.Query.PropertyType, catalog.ClearType)
	return chips
}

func (vc *VRRoomController) VRRoomPage(c echo.Context) error {
	s, _, _ := vc.session(c)
	state := s.State()
	page := vrRoomPage{
		State:    state,
		IsMap:    state.View == catalog.ViewMap,
		Count:    len(s.Visible()),
		Facets:   s.Facets(),
		Chips:    chipsFor(state),
		ClearURL: VRRoomURL(catalog.Reduce(state, catalog.Action{Kind: catalog.ClearFilters})),
		GridURL:  VRRoomURL(catalog.Reduce(state, catalog.Action{Kind: catalog.SetView, Value: string(catalog.ViewGrid)})),
		MapURL:   VRRoomURL(catalog.Reduce(state, catalog.Action{Kind: catalog.SetView, Value: string(catalog.ViewMap)})),
	}
	if page.IsMap {
		page.Map = s.Map()
	} else {
		page.Grid = s.Grid()
	}

	var buf bytes.Buffer
	if err := vrRoomTemplate.Execute(&buf, page); err != nil {
		vc.logger.Error("render vr room", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to render page"})
	}
	return c.HTMLBlob(http.StatusOK, buf.Bytes())
}

var vrRoomTemplate = template.Must(template.New("vr-room").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>VR Room | Golden Snow 360</title>
</head>
<body>
<main class="vr-room">
<h1>VR Room</h1>
<form class="filters" method="get" action="/vr-room">
<input type="search" name="keyword" value="{{.State.Query.Text}}" placeholder="Search properties...">
<select name="area">
<option value="">All Areas</option>
{{- range .Facets.Areas}}
<option value="{{.}}"{{if eq . $.State.Query.Area}} selected{{end}}>{{.}}</option>
{{- end}}
</select>
<select name="type">
<option value="">All Types</option>
{{- range .Facets.Types}}
<option value="{{.}}"{{if eq . $.State.Query.PropertyType}} selected{{end}}>{{.}}</option>
{{- end}}
</select>
{{- if .IsMap}}
<input type="hidden" name="view" value="map">
{{- end}}
<button type="submit">Search</button>
</form>
<nav class="view-toggle">
<a class="view-grid{{if not .IsMap}} active{{end}}" href="{{.GridURL}}">Grid</a>
<a class="view-map{{if .IsMap}} active{{end}}" href="{{.MapURL}}">Map</a>
</nav>
{{- if .Chips}}
<div class="active-filters">
{{- range .Chips}}
<span class="chip">{{.Label}}: {{.Value}} <a class="chip-remove" href="{{.RemoveURL}}" aria-label="Remove filter">&times;</a></span>
{{- end}}
<a class="clear-all" href="{{.ClearURL}}">Clear all</a>
</div>
{{- end}}
<p class="result-count">{{.Count}} properties found</p>
{{- if eq .Count 0}}
<div class="empty-state">
<h2>No properties found</h2>
<p>Try adjusting your search or filters.</p>
</div>
{{- else if .IsMap}}
<div id="property-map" class="map" data-lat="{{.Map.Viewport.Center.Lat}}" data-lng="{{.Map.Viewport.Center.Lng}}" data-zoom="{{.Map.Viewport.Zoom}}">
<ul class="markers">
{{- range .Map.Markers}}
<li class="marker" data-id="{{.ID}}" data-lat="{{.Position.Lat}}" data-lng="{{.Position.Lng}}">
<div class="popup">
{{- with .Popup.Thumbnail}}
<img src="{{.}}" alt="">
{{- end}}
<strong class="title">{{.Popup.Title}}</strong>
<span class="location">{{.Popup.Location}}</span>
<span class="price">{{.Popup.Price}}</span>
{{- range .Popup.Stats}}
<span class="stat stat-{{.Kind}}">{{.Label}}</span>
{{- end}}
<a class="detail-link" href="{{.Popup.DetailURL}}">View details</a>
</div>
</li>
{{- end}}
</ul>
</div>
{{- else}}
<div class="property-grid">
{{- range .Grid.Cards}}
<article class="property-card" data-id="{{.ID}}">
<a class="thumbnail" href="{{.DetailURL}}"><img src="{{.Thumbnail}}" alt="{{.Title}}" loading="lazy"></a>
<span class="type-badge">{{.TypeBadge}}</span>
{{- if .Featured}}
<span class="featured-badge">Featured</span>
{{- end}}
<h3 class="title"><a href="{{.DetailURL}}">{{.Title}}</a></h3>
{{- with .TitleLocalized}}
<p class="title-localized" dir="rtl">{{.}}</p>
{{- end}}
<p class="location">{{.Location}}</p>
<p class="price">{{.Price}}</p>
{{- if .Stats}}
<ul class="stats">
{{- range .Stats}}
<li class="stat stat-{{.Kind}}">{{.Label}}</li>
{{- end}}
</ul>
{{- end}}
{{- with .ListedOn}}
<p class="listed-on">Listed {{.}}</p>
{{- end}}
{{- with .TourURL}}
<a class="tour-link" href="{{.}}" target="_blank" rel="noopener">360° Tour</a>
{{- end}}
</article>
{{- end}}
</div>
{{- end}}
</main>
</body>
</html>
`))
