package service

import (
	"gorm.io/datatypes"

	"intelliwheels/internal/models"
)

func ptr[T any](v T) *T { return &v }

// SeedDealers is the fixed dealer set loaded alongside the vendor catalog.
// Seeded dealers keep their listed verified flags; user-registered dealers
// always start unverified.
func SeedDealers() []models.Dealer {
	return []models.Dealer{
		{
			Name:         "Jordan Auto Elite",
			Location:     "Mecca St, Amman",
			Latitude:     ptr(31.975),
			Longitude:    ptr(35.860),
			Rating:       4.8,
			ReviewsCount: 124,
			ImageURL:     "https://images.unsplash.com/photo-1560958089-b8a1929cea89?q=80&w=1000&auto=format&fit=crop",
			ShowroomImages: datatypes.JSON(`["https://images.unsplash.com/photo-1485291571150-772bcfc10da5?q=80&w=1000","https://images.unsplash.com/photo-1562141993-27150e234f96?q=80&w=1000"]`),
			ContactEmail:  "sales@jordanautoelite.com",
			ContactPhone:  "+962 7 9000 1111",
			BusinessHours: datatypes.JSON(`{"Sun-Thu":"9:00 AM - 9:00 PM","Fri":"2:00 PM - 9:00 PM"}`),
			Description:   "Premium luxury vehicles in the heart of Amman. Certified dealer for BMW and Mercedes-Benz.",
			Verified:      true,
		},
		{
			Name:           "Al-Nour Cars",
			Location:       "Gardens St, Amman",
			Latitude:       ptr(31.980),
			Longitude:      ptr(35.880),
			Rating:         4.5,
			ReviewsCount:   89,
			ImageURL:       "https://images.unsplash.com/photo-1581458763581-291752b04753?q=80&w=1000",
			ShowroomImages: datatypes.JSON(`["https://images.unsplash.com/photo-1549317661-bd32c8ce0db2?q=80&w=1000"]`),
			ContactEmail:   "info@alnourcars.jo",
			ContactPhone:   "+962 7 9000 2222",
			BusinessHours:  datatypes.JSON(`{"Everyday":"10:00 AM - 10:00 PM"}`),
			Description:    "Best prices for family sedans and SUVs. We offer financing options.",
			Verified:       true,
		},
		{
			Name:           "Zarqa Free Zone Motors",
			Location:       "Zarqa Free Zone",
			Latitude:       ptr(32.067),
			Longitude:      ptr(36.140),
			Rating:         4.2,
			ReviewsCount:   215,
			ImageURL:       "https://images.unsplash.com/photo-1596701103001-f2fdb3ca511c?q=80&w=1000",
			ShowroomImages: datatypes.JSON(`[]`),
			ContactEmail:   "contact@zarqafreezone.com",
			ContactPhone:   "+962 7 9000 3333",
			BusinessHours:  datatypes.JSON(`{"Sun-Thu":"8:00 AM - 5:00 PM"}`),
			Description:    "Direct imports from Korea and USA. Unbeatable wholesale prices.",
			Verified:       false,
		},
		{
			Name:           "Royal Hybrid Center",
			Location:       "Abdallah Ghosheh St, Amman",
			Latitude:       ptr(31.968),
			Longitude:      ptr(35.850),
			Rating:         4.9,
			ReviewsCount:   56,
			ImageURL:       "https://images.unsplash.com/photo-1619405399517-d7fce0f13302?q=80&w=1000",
			ShowroomImages: datatypes.JSON(`["https://images.unsplash.com/photo-1550355291-bbee04a92027?q=80&w=1000"]`),
			ContactEmail:   "service@royalhybrid.com",
			ContactPhone:   "+962 7 9000 4444",
			BusinessHours:  datatypes.JSON(`{"Sat-Thu":"9:30 AM - 8:30 PM"}`),
			Description:    "Specialists in Hybrid and Electric Vehicles. Toyota, Lexus, and Tesla available.",
			Verified:       true,
		},
		{
			Name:           "Aqaba Auto Port",
			Location:       "Aqaba",
			Latitude:       ptr(29.530),
			Longitude:      ptr(35.000),
			Rating:         4.0,
			ReviewsCount:   32,
			ImageURL:       "https://images.unsplash.com/photo-1574766795819-3fde6eb2a36b?q=80&w=1000",
			ShowroomImages: datatypes.JSON(`[]`),
			ContactEmail:   "sales@aqabaauto.com",
			ContactPhone:   "+962 3 200 5555",
			BusinessHours:  datatypes.JSON(`{"Sun-Thu":"9:00 AM - 6:00 PM"}`),
			Description:    "Your gateway to tax-free cars in Aqaba Special Economic Zone.",
			Verified:       true,
		},
	}
}
