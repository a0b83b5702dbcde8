package catalog

import (
	"time"

	"github.com/jooyongc/goldensnow360-dubai/models"
)

func ptr[T any](v T) *T { return &v }

func dubaiCatalog() []models.Property {
	return []models.Property{
		{
			ID: "1", Title: "Palm Jumeirah Villa", Location: "Palm Jumeirah", Area: "Palm Jumeirah",
			Description: ptr("Luxury 5-bedroom villa with private beach access."),
			Lat:         ptr(25.1124), Lng: ptr(55.1390), Price: "AED 25,000,000",
			Bedrooms: 5, Bathrooms: 6, SizeArea: 8500, PropertyType: "Villa", Featured: true,
			Thumbnail: ptr("https://img.example/palm.jpg"),
			CreatedAt: time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			ID: "2", Title: "Downtown Dubai Penthouse", Location: "Downtown Dubai", Area: "Downtown Dubai",
			Description: ptr("Exclusive penthouse with panoramic Burj Khalifa views."),
			Lat:         ptr(25.1972), Lng: ptr(55.2744), Price: "AED 18,500,000",
			Bedrooms: 4, Bathrooms: 5, SizeArea: 6200, PropertyType: "Penthouse", Featured: true,
		},
		{
			ID: "3", Title: "Dubai Marina Apartment", Location: "Dubai Marina", Area: "Dubai Marina",
			Lat: ptr(25.0805), Lng: ptr(55.1403), Price: "AED 5,200,000",
			Bedrooms: 3, Bathrooms: 4, SizeArea: 2800, PropertyType: "Apartment", Featured: true,
		},
		{
			ID: "4", Title: "Business Bay Office", Location: "Business Bay", Area: "Business Bay",
			Description: ptr("Premium office space with canal views."),
			Price:       "AED 3,800,000", Bathrooms: 2, SizeArea: 3500, PropertyType: "Office",
		},
		{
			ID: "5", Title: "JBR Beachfront Residence", Location: "Jumeirah Beach Residence", Area: "JBR",
			Lat: ptr(25.0780), Lng: ptr(55.1340), Price: "AED 4,500,000",
			Bedrooms: 2, Bathrooms: 3, SizeArea: 2100, PropertyType: "Apartment",
		},
	}
}

func ids(records []models.Property) []models.PropertyID {
	out := make([]models.PropertyID, 0, len(records))
	for _, p := range records {
		out = append(out, p.ID)
	}
	return out
}
