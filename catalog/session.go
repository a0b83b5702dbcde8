package catalog

import "github.com/jooyongc/goldensnow360-dubai/models"

// Session is the single coordinating context of one VR room view: a snapshot,
// the current State and the visible set derived from both. It is not safe for
// concurrent use; build one per request or per UI context.
type Session struct {
	snapshot []models.Property
	facets   Facets
	state    State
	visible  []models.Property

	renderer Renderer
	mapCfg   MapConfig
}

func NewSession(snapshot []models.Property, renderer Renderer, mapCfg MapConfig) *Session {
	s := &Session{
		snapshot: snapshot,
		facets:   FacetsOf(snapshot),
		state:    InitialState(),
		renderer: renderer,
		mapCfg:   mapCfg,
	}
	s.visible = Filter(snapshot, s.state.Query)
	return s
}

// Dispatch applies the actions in order. The visible set is recomputed once,
// and only when the query changed.
func (s *Session) Dispatch(actions ...Action) State {
	next := s.state
	for _, a := range actions {
		next = Reduce(next, a)
	}
	if next.Query != s.state.Query {
		s.visible = Filter(s.snapshot, next.Query)
	}
	s.state = next
	return s.state
}

func (s *Session) State() State { return s.state }

func (s *Session) Visible() []models.Property { return s.visible }

func (s *Session) Facets() Facets { return s.facets }

func (s *Session) Grid() GridView {
	return GridView{Cards: s.renderer.Cards(s.visible)}
}

func (s *Session) Map() MapView {
	return MapView{
		Markers:  s.renderer.Markers(s.visible),
		Viewport: FitViewport(s.visible, s.mapCfg),
	}
}

// ActionsFromQuery turns request parameters into the actions a visitor would
// have performed to reach that state from the initial one.
func ActionsFromQuery(text, area, propertyType, view string) []Action {
	return []Action{
		{Kind: SetText, Value: text},
		{Kind: SetArea, Value: area},
		{Kind: SetType, Value: propertyType},
		{Kind: SetView, Value: view},
	}
}
