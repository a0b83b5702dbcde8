package catalog

import (
	"fmt"
	"net/url"

	"github.com/dustin/go-humanize"
	"github.com/goodsign/monday"

	"github.com/jooyongc/goldensnow360-dubai/models"
)

const DefaultPlaceholder = "https://images.unsplash.com/photo-1600596542815-ffad4c1539a9?w=800"

type StatKind string

const (
	StatBedrooms  StatKind = "bedrooms"
	StatBathrooms StatKind = "bathrooms"
	StatSize      StatKind = "size"
)

type StatBadge struct {
	Kind  StatKind `json:"kind"`
	Value int      `json:"value"`
	Label string   `json:"label"`
}

type Card struct {
	ID             models.PropertyID `json:"id"`
	Thumbnail      string            `json:"thumbnail"`
	TypeBadge      string            `json:"type_badge"`
	Featured       bool              `json:"featured"`
	Title          string            `json:"title"`
	TitleLocalized string            `json:"title_localized,omitempty"`
	Location       string            `json:"location"`
	Price          string            `json:"price"`
	Stats          []StatBadge       `json:"stats"`
	DetailURL      string            `json:"detail_url"`
	TourURL        string            `json:"tour_url,omitempty"`
	ListedOn       string            `json:"listed_on,omitempty"`
}

// Popup is what a marker shows on hover. Unlike cards it carries no
// placeholder image.
type Popup struct {
	Thumbnail string      `json:"thumbnail,omitempty"`
	Title     string      `json:"title"`
	Location  string      `json:"location"`
	Price     string      `json:"price"`
	Stats     []StatBadge `json:"stats"`
	DetailURL string      `json:"detail_url"`
}

type Marker struct {
	ID       models.PropertyID `json:"id"`
	Position LatLng            `json:"position"`
	Popup    Popup             `json:"popup"`
}

type GridView struct {
	Cards []Card `json:"cards"`
}

type MapView struct {
	Markers  []Marker `json:"markers"`
	Viewport Viewport `json:"viewport"`
}

type Renderer struct {
	Placeholder string
	Locale      monday.Locale
	DateLayout  string
}

func NewRenderer(placeholder, locale string) Renderer {
	if placeholder == "" {
		placeholder = DefaultPlaceholder
	}
	if locale == "" {
		locale = string(monday.LocaleEnUS)
	}
	return Renderer{
		Placeholder: placeholder,
		Locale:      monday.Locale(locale),
		DateLayout:  "2 January 2006",
	}
}

func DetailURL(id models.PropertyID) string {
	return "/property/" + url.PathEscape(id.String())
}

// Stats returns the bedroom, bathroom and size badges whose value is positive,
// in that order.
func Stats(p models.Property) []StatBadge {
	stats := make([]StatBadge, 0, 3)
	if p.Bedrooms > 0 {
		stats = append(stats, StatBadge{Kind: StatBedrooms, Value: p.Bedrooms, Label: fmt.Sprintf("%d Beds", p.Bedrooms)})
	}
	if p.Bathrooms > 0 {
		stats = append(stats, StatBadge{Kind: StatBathrooms, Value: p.Bathrooms, Label: fmt.Sprintf("%d Baths", p.Bathrooms)})
	}
	if p.SizeArea > 0 {
		stats = append(stats, StatBadge{Kind: StatSize, Value: p.SizeArea, Label: humanize.Comma(int64(p.SizeArea)) + " sqft"})
	}
	return stats
}

func (r Renderer) Card(p models.Property) Card {
	c := Card{
		ID:             p.ID,
		Thumbnail:      p.ThumbnailOr(r.Placeholder),
		TypeBadge:      p.PropertyType,
		Featured:       p.Featured,
		Title:          p.Title,
		TitleLocalized: p.LocalizedTitle(),
		Location:       p.Location,
		Price:          p.Price,
		Stats:          Stats(p),
		DetailURL:      DetailURL(p.ID),
		TourURL:        p.TourReference,
	}
	if !p.CreatedAt.IsZero() {
		c.ListedOn = monday.Format(p.CreatedAt, r.DateLayout, r.Locale)
	}
	return c
}

func (r Renderer) Cards(records []models.Property) []Card {
	cards := make([]Card, 0, len(records))
	for _, p := range records {
		cards = append(cards, r.Card(p))
	}
	return cards
}

// Markers projects the mappable records; the rest are skipped silently.
func (r Renderer) Markers(records []models.Property) []Marker {
	markers := make([]Marker, 0, len(records))
	for _, p := range records {
		lat, lng, ok := p.Coordinates()
		if !ok {
			continue
		}
		markers = append(markers, Marker{
			ID:       p.ID,
			Position: LatLng{Lat: lat, Lng: lng},
			Popup: Popup{
				Thumbnail: p.ThumbnailOr(""),
				Title:     p.Title,
				Location:  p.Location,
				Price:     p.Price,
				Stats:     Stats(p),
				DetailURL: DetailURL(p.ID),
			},
		})
	}
	return markers
}
