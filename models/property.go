package models

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/uptrace/bun"
)

// PropertyID is the opaque identifier of a listing. The backing stores hand out
// strings, but older rows and demo data use integers, so both decode.
type PropertyID string

func (id PropertyID) String() string { return string(id) }

func (id *PropertyID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*id = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = PropertyID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("property id: %w", err)
	}
	*id = PropertyID(n.String())
	return nil
}

type PropertyStatus string

const (
	StatusAvailable PropertyStatus = "available"
	StatusSold      PropertyStatus = "sold"
	StatusRented    PropertyStatus = "rented"
	StatusDraft     PropertyStatus = "draft"
)

func (s PropertyStatus) Valid() bool {
	switch s {
	case StatusAvailable, StatusSold, StatusRented, StatusDraft:
		return true
	}
	return false
}

// PropertyTypes lists the types offered by the admin editor. Stored values are
// free text and are never checked against this list when filtering.
var PropertyTypes = []string{"Apartment", "Villa", "Penthouse", "Townhouse", "Office", "Retail"}

type Property struct {
	bun.BaseModel `bun:"table:properties" json:"-" bson:"-"`

	ID             PropertyID     `bson:"_id" json:"id" bun:"id,pk"`
	Title          string         `bson:"title" json:"title" bun:"title"`
	TitleLocalized *string        `bson:"title_ar,omitempty" json:"title_ar,omitempty" bun:"title_ar"`
	Description    *string        `bson:"description,omitempty" json:"description,omitempty" bun:"description"`
	Location       string         `bson:"location" json:"location" bun:"location"`
	Area           string         `bson:"area" json:"area" bun:"area"`
	Lat            *float64       `bson:"lat,omitempty" json:"lat,omitempty" bun:"lat"`
	Lng            *float64       `bson:"lng,omitempty" json:"lng,omitempty" bun:"lng"`
	Price          string         `bson:"price" json:"price" bun:"price"`
	Bedrooms       int            `bson:"bedrooms" json:"bedrooms" bun:"bedrooms"`
	Bathrooms      int            `bson:"bathrooms" json:"bathrooms" bun:"bathrooms"`
	SizeArea       int            `bson:"size_sqft" json:"size_sqft" bun:"size_sqft"`
	TourReference  string         `bson:"matterport_url" json:"matterport_url" bun:"matterport_url"`
	Thumbnail      *string        `bson:"thumbnail,omitempty" json:"thumbnail,omitempty" bun:"thumbnail"`
	PropertyType   string         `bson:"property_type" json:"property_type" bun:"property_type"`
	Status         PropertyStatus `bson:"status" json:"status" bun:"status"`
	Featured       bool           `bson:"featured" json:"featured" bun:"featured"`
	CreatedAt      time.Time      `bson:"created_at" json:"created_at" bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt      time.Time      `bson:"updated_at" json:"updated_at" bun:"updated_at,nullzero"`
}

// Coordinates reports the record's position when it can be placed on a map:
// both coordinates present, finite and inside the WGS84 range.
func (p Property) Coordinates() (lat, lng float64, ok bool) {
	if p.Lat == nil || p.Lng == nil {
		return 0, 0, false
	}
	lat, lng = *p.Lat, *p.Lng
	if math.IsNaN(lat) || math.IsInf(lat, 0) || math.IsNaN(lng) || math.IsInf(lng, 0) {
		return 0, 0, false
	}
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return 0, 0, false
	}
	return lat, lng, true
}

func (p Property) Mappable() bool {
	_, _, ok := p.Coordinates()
	return ok
}

func (p Property) DescriptionText() string {
	if p.Description == nil {
		return ""
	}
	return *p.Description
}

func (p Property) LocalizedTitle() string {
	if p.TitleLocalized == nil {
		return ""
	}
	return strings.TrimSpace(*p.TitleLocalized)
}

// ThumbnailOr returns the thumbnail reference, or fallback when none is set.
func (p Property) ThumbnailOr(fallback string) string {
	if p.Thumbnail == nil || strings.TrimSpace(*p.Thumbnail) == "" {
		return fallback
	}
	return *p.Thumbnail
}

// PropertyInput is the admin editor payload. Blank optional strings are
// stored as absent.
type PropertyInput struct {
	Title          string         `json:"title" validate:"required"`
	TitleLocalized *string        `json:"title_ar"`
	Description    *string        `json:"description"`
	Location       string         `json:"location" validate:"required"`
	Area           string         `json:"area"`
	Lat            *float64       `json:"lat" validate:"omitempty,latitude"`
	Lng            *float64       `json:"lng" validate:"omitempty,longitude"`
	Price          string         `json:"price"`
	Bedrooms       int            `json:"bedrooms" validate:"gte=0"`
	Bathrooms      int            `json:"bathrooms" validate:"gte=0"`
	SizeArea       int            `json:"size_sqft" validate:"gte=0"`
	TourReference  string         `json:"matterport_url"`
	Thumbnail      *string        `json:"thumbnail"`
	PropertyType   string         `json:"property_type"`
	Status         PropertyStatus `json:"status" validate:"omitempty,oneof=available sold rented draft"`
	Featured       bool           `json:"featured"`
}

// Apply copies the editor payload onto p. Empty type and status fall back to
// the editor defaults.
func (in PropertyInput) Apply(p *Property) {
	p.Title = in.Title
	p.TitleLocalized = nonEmpty(in.TitleLocalized)
	p.Description = nonEmpty(in.Description)
	p.Location = in.Location
	p.Area = in.Area
	p.Lat = in.Lat
	p.Lng = in.Lng
	p.Price = in.Price
	p.Bedrooms = in.Bedrooms
	p.Bathrooms = in.Bathrooms
	p.SizeArea = in.SizeArea
	p.TourReference = in.TourReference
	p.Thumbnail = nonEmpty(in.Thumbnail)
	p.PropertyType = in.PropertyType
	if p.PropertyType == "" {
		p.PropertyType = "Apartment"
	}
	p.Status = in.Status
	if !p.Status.Valid() {
		p.Status = StatusAvailable
	}
	p.Featured = in.Featured
}

func nonEmpty(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	v := *s
	return &v
}
