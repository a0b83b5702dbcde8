package store

import (
	"time"

	"github.com/jooyongc/goldensnow360-dubai/models"
)

const demoTour = "https://my.matterport.com/show/?m=SxQL3iGyvft"

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

// DemoProperty looks up one record of the demo catalog.
func DemoProperty(id models.PropertyID) (models.Property, bool) {
	for _, p := range DemoProperties() {
		if p.ID == id {
			return p, true
		}
	}
	return models.Property{}, false
}

// DemoProperties is the catalog shown when no backend is configured or the
// backend cannot be read. It returns a fresh copy on every call.
func DemoProperties() []models.Property {
	return []models.Property{
		{
			ID:             "1",
			Title:          "Palm Jumeirah Villa",
			TitleLocalized: strPtr("فيلا نخلة جميرا"),
			Description:    strPtr("Luxury 5-bedroom villa with private beach access and stunning sea views. Experience the epitome of Dubai luxury living."),
			Location:       "Palm Jumeirah",
			Area:           "Palm Jumeirah",
			Lat:            floatPtr(25.1124),
			Lng:            floatPtr(55.1390),
			Price:          "AED 25,000,000",
			Bedrooms:       5,
			Bathrooms:      6,
			SizeArea:       8500,
			TourReference:  demoTour,
			Thumbnail:      strPtr("https://images.unsplash.com/photo-1613490493576-7fde63acd811?w=800"),
			PropertyType:   "Villa",
			Status:         models.StatusAvailable,
			Featured:       true,
			CreatedAt:      day(2026, time.January, 15),
		},
		{
			ID:             "2",
			Title:          "Downtown Dubai Penthouse",
			TitleLocalized: strPtr("بنتهاوس وسط مدينة دبي"),
			Description:    strPtr("Exclusive penthouse with panoramic Burj Khalifa views. Modern design with premium finishes throughout."),
			Location:       "Downtown Dubai",
			Area:           "Downtown Dubai",
			Lat:            floatPtr(25.1972),
			Lng:            floatPtr(55.2744),
			Price:          "AED 18,500,000",
			Bedrooms:       4,
			Bathrooms:      5,
			SizeArea:       6200,
			TourReference:  demoTour,
			Thumbnail:      strPtr("https://images.unsplash.com/photo-1600596542815-ffad4c1539a9?w=800"),
			PropertyType:   "Penthouse",
			Status:         models.StatusAvailable,
			Featured:       true,
			CreatedAt:      day(2026, time.January, 20),
		},
		{
			ID:             "3",
			Title:          "Dubai Marina Apartment",
			TitleLocalized: strPtr("شقة دبي مارينا"),
			Description:    strPtr("Stunning 3-bedroom apartment in the heart of Dubai Marina with marina and sea views."),
			Location:       "Dubai Marina",
			Area:           "Dubai Marina",
			Lat:            floatPtr(25.0805),
			Lng:            floatPtr(55.1403),
			Price:          "AED 5,200,000",
			Bedrooms:       3,
			Bathrooms:      4,
			SizeArea:       2800,
			TourReference:  demoTour,
			Thumbnail:      strPtr("https://images.unsplash.com/photo-1600585154340-be6161a56a0c?w=800"),
			PropertyType:   "Apartment",
			Status:         models.StatusAvailable,
			Featured:       true,
			CreatedAt:      day(2026, time.February, 1),
		},
		{
			ID:             "4",
			Title:          "Business Bay Office",
			TitleLocalized: strPtr("مكتب خليج الأعمال"),
			Description:    strPtr("Premium office space with canal views. Fully fitted and ready for immediate occupation."),
			Location:       "Business Bay",
			Area:           "Business Bay",
			Lat:            floatPtr(25.1851),
			Lng:            floatPtr(55.2628),
			Price:          "AED 3,800,000",
			Bedrooms:       0,
			Bathrooms:      2,
			SizeArea:       3500,
			TourReference:  demoTour,
			Thumbnail:      strPtr("https://images.unsplash.com/photo-1497366216548-37526070297c?w=800"),
			PropertyType:   "Office",
			Status:         models.StatusAvailable,
			CreatedAt:      day(2026, time.February, 5),
		},
		{
			ID:             "5",
			Title:          "JBR Beachfront Residence",
			TitleLocalized: strPtr("سكن جي بي آر على الشاطئ"),
			Description:    strPtr("Beachfront 2-bedroom apartment with direct beach access and stunning views of the Arabian Gulf."),
			Location:       "Jumeirah Beach Residence",
			Area:           "JBR",
			Lat:            floatPtr(25.0780),
			Lng:            floatPtr(55.1340),
			Price:          "AED 4,500,000",
			Bedrooms:       2,
			Bathrooms:      3,
			SizeArea:       2100,
			TourReference:  demoTour,
			Thumbnail:      strPtr("https://images.unsplash.com/photo-1600607687939-ce8a6c25118c?w=800"),
			PropertyType:   "Apartment",
			Status:         models.StatusAvailable,
			CreatedAt:      day(2026, time.February, 7),
		},
	}
}

func DemoHero() models.HeroSection {
	return models.HeroSection{
		ID:              "home",
		Page:            "home",
		Title:           "Experience Dubai Properties in 360°",
		Subtitle:        "Immersive Virtual Reality Tours of Premium Real Estate",
		Description:     "Explore luxury properties across Dubai through cutting-edge Matterport 3D virtual tours. Walk through your dream home from anywhere in the world.",
		BackgroundImage: "https://images.unsplash.com/photo-1512453979798-5ea266f8880c?w=1920",
		CTAText:         "Explore VR Room",
		CTALink:         "/vr-room",
		IsActive:        true,
	}
}

func DemoAbout() models.AboutContent {
	return models.AboutContent{
		ID:       "about",
		Title:    "About Golden Snow 360",
		Subtitle: "Your Trusted Partner in Dubai Real Estate",
		Description: "Golden Snow 360 is a premier real estate brokerage firm based in Dubai, UAE. We specialize in connecting global investors and homebuyers with the finest properties across Dubai's most prestigious locations.\n\n" +
			"Our innovative approach combines traditional real estate expertise with cutting-edge Matterport 3D virtual tour technology, allowing clients worldwide to experience properties as if they were physically present.\n\n" +
			"With deep knowledge of the Dubai property market and a commitment to excellence, we provide end-to-end service from property discovery through to final handover.",
		Mission:  "To revolutionize the Dubai real estate experience through immersive 3D technology, making property exploration accessible to anyone, anywhere in the world.",
		Vision:   "To become the leading virtual real estate platform in the Middle East, setting new standards for property presentation and client engagement.",
		Image:    "https://images.unsplash.com/photo-1582407947304-fd86f028f716?w=800",
		IsActive: true,
		Stats: []models.AboutStat{
			{ID: "1", Label: "Properties Listed", Value: "500+", SortOrder: 1},
			{ID: "2", Label: "Virtual Tours", Value: "200+", SortOrder: 2},
			{ID: "3", Label: "Happy Clients", Value: "1,000+", SortOrder: 3},
			{ID: "4", Label: "Years Experience", Value: "10+", SortOrder: 4},
		},
	}
}

func DemoContactInfo() models.ContactInfo {
	return models.ContactInfo{
		ID:              "contact",
		Address:         "Office 1205, Burj Khalifa Tower, Downtown Dubai, UAE",
		Phone:           "+971 4 123 4567",
		Email:           "info@goldensnow360.com",
		WhatsApp:        "+971501234567",
		WorkingHours:    "Sunday - Thursday: 9:00 AM - 6:00 PM",
		MapLat:          25.1972,
		MapLng:          55.2744,
		SocialInstagram: "https://instagram.com/goldensnow360",
		SocialFacebook:  "https://facebook.com/goldensnow360",
		SocialLinkedIn:  "https://linkedin.com/company/goldensnow360",
		SocialYouTube:   "https://youtube.com/@goldensnow360",
		IsActive:        true,
	}
}

// DemoFooterSettings are the footer values used for keys that were never
// saved.
func DemoFooterSettings() map[string]string {
	return map[string]string{
		models.SettingFooterDescription: "Premier Dubai real estate brokerage with immersive Matterport 3D virtual tours.",
		models.SettingFooterAreas:       "Palm Jumeirah, Downtown Dubai, Dubai Marina, Business Bay, JBR",
		models.SettingFooterCopyright:   "Golden Snow 360. All rights reserved.",
		models.SettingFooterPrivacyURL:  "",
		models.SettingFooterTermsURL:    "",
	}
}
