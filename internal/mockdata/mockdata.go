// Package mockdata holds the default datasets injected into each view at the
// composition root. Every function returns a fresh slice.
package mockdata

import (
	"time"

	"tourcrm/internal/models"
)

func Leads(now time.Time) []models.Lead {
	return []models.Lead{
		{ID: "L-1001", Name: "Aigerim Bekova", Email: "aigerim.b@mail.kz", Phone: "+7 701 555 1020", Status: models.LeadNew, Channel: models.ChannelWebsite, TourInterest: "Charyn Canyon Day Trip", LastActivity: now.Add(-2 * time.Hour)},
		{ID: "L-1002", Name: "Marco Rossi", Email: "marco.rossi@gmail.com", Status: models.LeadContacted, Channel: models.ChannelWhatsApp, TourInterest: "Big Almaty Lake Hike", LastActivity: now.Add(-5 * time.Hour)},
		{ID: "L-1003", Name: "Sophie Laurent", Email: "sophie@laurent.fr", Status: models.LeadQualified, Channel: models.ChannelEmail, TourInterest: "Kolsai Lakes Weekend", Notes: "Group of 6, vegetarian meals", LastActivity: now.Add(-26 * time.Hour)},
		{ID: "L-1004", Name: "Daniel Kim", Phone: "+82 10 4432 1180", Status: models.LeadBooked, Channel: models.ChannelReferral, TourInterest: "Almaty City Tour", LastActivity: now.Add(-72 * time.Hour)},
		{ID: "L-1005", Name: "Elena Petrova", Email: "elena.p@yandex.ru", Status: models.LeadLost, Channel: models.ChannelSocial, Notes: "Chose a cheaper operator", LastActivity: now.Add(-7 * 24 * time.Hour)},
		{ID: "L-1006", Name: "Tom Becker", Status: models.LeadNew, Channel: models.ChannelWalkIn, TourInterest: "Shymbulak Ski Day", LastActivity: now.Add(-30 * time.Minute)},
	}
}

func Bookings() []models.Booking {
	return []models.Booking{
		{ID: "B-2001", TourName: "Almaty City Tour", Date: "2024-05-01", ClientName: "Daniel Kim", Pax: 2, Status: models.BookingConfirmed, Pickup: "Rixos Almaty"},
		{ID: "B-2002", TourName: "Charyn Canyon Day Trip", Date: "2024-05-04", ClientName: "Hana Suzuki", Pax: 4, Status: models.BookingPending, Pickup: "Hotel Kazakhstan", Notes: "Early breakfast box"},
		{ID: "B-2003", TourName: "Big Almaty Lake Hike", Date: "2024-04-20", ClientName: "Lukas Meyer", Pax: 1, Status: models.BookingCompleted},
		{ID: "B-2004", TourName: "Kolsai Lakes Weekend", Date: "2024-05-11", ClientName: "Sophie Laurent", Pax: 6, Status: models.BookingPending, Notes: "Vegetarian meals"},
		{ID: "B-2005", TourName: "Charyn Canyon Day Trip", Date: "2024-04-28", ClientName: "Omar Haddad", Pax: 3, Status: models.BookingCancelled},
	}
}

func Tours() []models.Tour {
	return []models.Tour{
		{
			ID: "T-3001", Name: "Almaty City Tour", Price: 45, Duration: "4 hours", Difficulty: models.DifficultyEasy,
			MaxGroupSize: 15, Location: "Almaty", Tags: []string{"city", "history", "food"},
			Description: "Panfilov Park, Zenkov Cathedral, Green Bazaar and Kok-Tobe.", Active: true,
			Analytics: models.TourAnalytics{Bookings: 128, Revenue: 5760},
		},
		{
			ID: "T-3002", Name: "Charyn Canyon Day Trip", Price: 89, Duration: "Full day", Difficulty: models.DifficultyModerate,
			MaxGroupSize: 12, Location: "Charyn", Tags: []string{"nature", "canyon", "photography"},
			Description: "Valley of Castles walk with picnic lunch by the river.", Active: true,
			Analytics: models.TourAnalytics{Bookings: 96, Revenue: 8544},
		},
		{
			ID: "T-3003", Name: "Big Almaty Lake Hike", Price: 65, Duration: "6 hours", Difficulty: models.DifficultyModerate,
			MaxGroupSize: 10, Location: "Ile-Alatau", Tags: []string{"hiking", "lake", "mountain"},
			Active:    true,
			Analytics: models.TourAnalytics{Bookings: 74, Revenue: 4810},
		},
		{
			ID: "T-3004", Name: "Kolsai Lakes Weekend", Price: 240, Duration: "2 days", Difficulty: models.DifficultyHard,
			MaxGroupSize: 8, Location: "Kolsai", Tags: []string{"hiking", "camping", "lake"},
			Description: "Overnight in a guesthouse, hike to the second lake.", Active: true,
			Analytics: models.TourAnalytics{Bookings: 31, Revenue: 7440},
		},
		{
			ID: "T-3005", Name: "Peak Talgar Expedition", Price: 1200, Duration: "7 days", Difficulty: models.DifficultyExpert,
			MaxGroupSize: 4, Location: "Talgar", Tags: []string{"mountaineering", "glacier"},
			Active:    false,
			Analytics: models.TourAnalytics{Bookings: 3, Revenue: 3600},
		},
	}
}

func Team(now time.Time) []models.TeamMember {
	return []models.TeamMember{
		{ID: "U-4001", Name: "Aruzhan Sadykova", Email: "aruzhan@silkroad.travel", Role: models.RoleOwner, Status: models.MemberActive},
		{ID: "U-4002", Name: "Timur Akhmetov", Email: "timur@silkroad.travel", Role: models.RoleAdmin, Status: models.MemberActive},
		{ID: "U-4003", Name: "Maya Chen", Email: "maya@silkroad.travel", Role: models.RoleAgent, Status: models.MemberActive},
		{ID: "U-4004", Name: "Ivan Sokolov", Email: "ivan@silkroad.travel", Role: models.RoleViewer, Status: models.MemberInvited, InvitedAt: now.Add(-48 * time.Hour)},
	}
}

func Conversations(now time.Time) []models.Conversation {
	return []models.Conversation{
		{
			ID: "C-5001", ContactName: "Marco Rossi", Channel: models.ChannelWhatsApp, Unread: 2,
			Messages: []models.Message{
				{ID: "M-1", Direction: models.Outbound, Body: "Hi Marco, the lake hike starts at 8:00.", SentAt: now.Add(-6 * time.Hour)},
				{ID: "M-2", Direction: models.Inbound, Body: "Great! Do we need hiking poles?", SentAt: now.Add(-5 * time.Hour)},
				{ID: "M-3", Direction: models.Inbound, Body: "And is lunch included?", SentAt: now.Add(-5 * time.Hour)},
			},
		},
		{
			ID: "C-5002", ContactName: "Sophie Laurent", Channel: models.ChannelEmail,
			Messages: []models.Message{
				{ID: "M-4", Direction: models.Inbound, Body: "Could you send the Kolsai itinerary?", SentAt: now.Add(-27 * time.Hour)},
				{ID: "M-5", Direction: models.Outbound, Body: "Attached, see you on the 11th.", Attachment: "kolsai-itinerary.pdf", SentAt: now.Add(-26 * time.Hour)},
			},
		},
		{
			ID: "C-5003", ContactName: "Hana Suzuki", Channel: models.ChannelWebsite, Unread: 1,
			Messages: []models.Message{
				{ID: "M-6", Direction: models.Inbound, Body: "Can you pick us up at Hotel Kazakhstan?", SentAt: now.Add(-90 * time.Minute)},
			},
		},
	}
}

func Workspace(companyName, timezone, currency string) models.WorkspaceSettings {
	return models.WorkspaceSettings{
		CompanyName: companyName,
		Timezone:    timezone,
		Currency:    currency,
		EmailAlerts: true,
	}
}
