package models

import (
	"time"

	"github.com/uptrace/bun"
)

type HeroSection struct {
	bun.BaseModel `bun:"table:hero_sections" json:"-" bson:"-"`

	ID              string    `bson:"_id" json:"id" bun:"id,pk"`
	Page            string    `bson:"page" json:"page" bun:"page"`
	Title           string    `bson:"title" json:"title" bun:"title"`
	Subtitle        string    `bson:"subtitle" json:"subtitle" bun:"subtitle"`
	Description     string    `bson:"description" json:"description" bun:"description"`
	BackgroundImage string    `bson:"background_image" json:"background_image" bun:"background_image"`
	CTAText         string    `bson:"cta_text" json:"cta_text" bun:"cta_text"`
	CTALink         string    `bson:"cta_link" json:"cta_link" bun:"cta_link"`
	IsActive        bool      `bson:"is_active" json:"is_active" bun:"is_active"`
	UpdatedAt       time.Time `bson:"updated_at" json:"updated_at" bun:"updated_at,nullzero"`
}

type AboutStat struct {
	bun.BaseModel `bun:"table:about_stats" json:"-" bson:"-"`

	ID        string `bson:"_id,omitempty" json:"id,omitempty" bun:"id,pk"`
	Label     string `bson:"label" json:"label" bun:"label"`
	Value     string `bson:"value" json:"value" bun:"value"`
	SortOrder int    `bson:"sort_order" json:"sort_order" bun:"sort_order"`
}

type AboutContent struct {
	bun.BaseModel `bun:"table:about_content" json:"-" bson:"-"`

	ID          string      `bson:"_id" json:"id" bun:"id,pk"`
	Title       string      `bson:"title" json:"title" bun:"title"`
	Subtitle    string      `bson:"subtitle" json:"subtitle" bun:"subtitle"`
	Description string      `bson:"description" json:"description" bun:"description"`
	Mission     string      `bson:"mission" json:"mission" bun:"mission"`
	Vision      string      `bson:"vision" json:"vision" bun:"vision"`
	Image       string      `bson:"image" json:"image" bun:"image"`
	IsActive    bool        `bson:"is_active" json:"is_active" bun:"is_active"`
	Stats       []AboutStat `bson:"stats" json:"stats" bun:"-"`
	UpdatedAt   time.Time   `bson:"updated_at" json:"updated_at" bun:"updated_at,nullzero"`
}

type ContactInfo struct {
	bun.BaseModel `bun:"table:contact_info" json:"-" bson:"-"`

	ID              string    `bson:"_id" json:"id" bun:"id,pk"`
	Address         string    `bson:"address" json:"address" bun:"address"`
	Phone           string    `bson:"phone" json:"phone" bun:"phone"`
	Email           string    `bson:"email" json:"email" bun:"email"`
	WhatsApp        string    `bson:"whatsapp" json:"whatsapp" bun:"whatsapp"`
	WorkingHours    string    `bson:"working_hours" json:"working_hours" bun:"working_hours"`
	MapLat          float64   `bson:"map_lat" json:"map_lat" bun:"map_lat"`
	MapLng          float64   `bson:"map_lng" json:"map_lng" bun:"map_lng"`
	SocialInstagram string    `bson:"social_instagram" json:"social_instagram" bun:"social_instagram"`
	SocialFacebook  string    `bson:"social_facebook" json:"social_facebook" bun:"social_facebook"`
	SocialLinkedIn  string    `bson:"social_linkedin" json:"social_linkedin" bun:"social_linkedin"`
	SocialYouTube   string    `bson:"social_youtube" json:"social_youtube" bun:"social_youtube"`
	IsActive        bool      `bson:"is_active" json:"is_active" bun:"is_active"`
	UpdatedAt       time.Time `bson:"updated_at" json:"updated_at" bun:"updated_at,nullzero"`
}

// SiteSetting is a key/value row; the footer editor owns the footer_* keys.
type SiteSetting struct {
	bun.BaseModel `bun:"table:site_settings" json:"-" bson:"-"`

	Key       string    `bson:"_id" json:"key" bun:"key,pk"`
	Value     string    `bson:"value" json:"value" bun:"value"`
	Type      string    `bson:"type" json:"type" bun:"type"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at" bun:"updated_at,nullzero"`
}

const (
	SettingFooterDescription = "footer_description"
	SettingFooterAreas       = "footer_areas"
	SettingFooterCopyright   = "footer_copyright"
	SettingFooterPrivacyURL  = "footer_privacy_url"
	SettingFooterTermsURL    = "footer_terms_url"
)

type Footer struct {
	Description string   `json:"description"`
	Areas       string   `json:"areas"`
	AreaList    []string `json:"area_list"`
	Copyright   string   `json:"copyright"`
	PrivacyURL  string   `json:"privacy_url"`
	TermsURL    string   `json:"terms_url"`
	Address     string   `json:"address"`
	Phone       string   `json:"phone"`
	Email       string   `json:"email"`
}
