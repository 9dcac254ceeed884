package models

// Seed data supplied at process start. Read-only for the core; only the local
// user's own record mutates as onboarding steps complete.

// SeedVenues returns the fixed venue list.
func SeedVenues() []Venue {
	return []Venue{
		{
			ID:          1,
			Name:        "The Neon Cat",
			Address:     "123 Electric Ave, Austin, TX",
			ImageURL:    "https://picsum.photos/seed/venue1/800/600",
			MusicType:   "EDM & House",
			CrowdLevel:  92,
			CurrentSong: "Titanium - David Guetta ft. Sia",
		},
		{
			ID:          2,
			Name:        "The Velvet Rope",
			Address:     "456 Groove St, New York, NY",
			ImageURL:    "https://picsum.photos/seed/venue2/800/600",
			MusicType:   "Hip Hop & R&B",
			CrowdLevel:  78,
			CurrentSong: "Not Like Us - Kendrick Lamar",
		},
		{
			ID:          3,
			Name:        "Starlight Lounge",
			Address:     "789 Cosmo Blvd, Los Angeles, CA",
			ImageURL:    "https://picsum.photos/seed/venue3/800/600",
			MusicType:   "Top 40 & Pop",
			CrowdLevel:  45,
			CurrentSong: "Espresso - Sabrina Carpenter",
		},
		{
			ID:          4,
			Name:        "The Rusty Mug",
			Address:     "101 Beer Rd, Denver, CO",
			ImageURL:    "https://picsum.photos/seed/venue4/800/600",
			MusicType:   "Indie Rock",
			CrowdLevel:  25,
			CurrentSong: "A-Punk - Vampire Weekend",
		},
	}
}

// SeedUsers returns the fixed user list. Index 0 is the local user's starting record.
func SeedUsers() []User {
	return []User{
		{
			ID:             1,
			Name:           "Alex",
			Age:            28,
			Bio:            "Software engineer by day, dance floor enthusiast by night. Looking for someone to share a laugh and a drink with.",
			ImageURL:       "https://picsum.photos/seed/user1/400/600",
			CurrentVenueID: 1,
			Tags:           []string{"Here to Dance", "Cocktails", "Riding Solo"},
		},
		{
			ID:             2,
			Name:           "Brianna",
			Age:            25,
			Bio:            "Graphic designer with a passion for spicy food and good music. Let's find the best taco truck after this.",
			ImageURL:       "https://picsum.photos/seed/user2/400/600",
			CurrentVenueID: 1,
			Tags:           []string{"Make Friends", "Tequila", "With the Crew"},
		},
		{
			ID:             3,
			Name:           "Carlos",
			Age:            30,
			Bio:            "Just moved here! Exploring the city one bar at a time. Show me your favorite spot?",
			ImageURL:       "https://picsum.photos/seed/user3/400/600",
			CurrentVenueID: 1,
			Tags:           []string{"Find a Date", "Beer", "New in Town"},
		},
		{
			ID:             4,
			Name:           "Diana",
			Age:            27,
			Bio:            "Veterinarian. Will probably talk about your dog. My dog is the best, but I'm open to being proven wrong.",
			ImageURL:       "https://picsum.photos/seed/user4/400/600",
			CurrentVenueID: 1,
			Tags:           []string{"Just Chill", "Wine", "Dog Lover"},
		},
		{
			ID:             5,
			Name:           "Ethan",
			Age:            29,
			Bio:            "Musician and aspiring chef. I can play you a song or make you pasta. Or both.",
			ImageURL:       "https://picsum.photos/seed/user5/400/600",
			CurrentVenueID: 1,
			Tags:           []string{"Flirting", "Whiskey", "Artist"},
		},
		{
			ID:             6,
			Name:           "Fiona",
			Age:            26,
			Bio:            "Travel blogger who is surprisingly bad at navigating. Let's get lost together.",
			ImageURL:       "https://picsum.photos/seed/user6/400/600",
			CurrentVenueID: 2,
			Tags:           []string{"Adventure", "Gin & Tonic", "Traveler"},
		},
		{
			ID:             7,
			Name:           "George",
			Age:            31,
			Bio:            "Finance guy who promises not to be boring. My interests include hiking, comedy shows, and debating pineapple on pizza.",
			ImageURL:       "https://picsum.photos/seed/user7/400/600",
			CurrentVenueID: 2,
			Tags:           []string{"Conversation", "Craft Beer", "Foodie"},
		},
		{
			ID:             8,
			Name:           "Hannah",
			Age:            24,
			Bio:            "Just finished my masters in psychology. Let's overthink things together over a cocktail.",
			ImageURL:       "https://picsum.photos/seed/user8/400/600",
			CurrentVenueID: 2,
			Tags:           []string{"People Watching", "Martini", "Deep Chats"},
		},
		{
			ID:             9,
			Name:           "Ian",
			Age:            28,
			Bio:            "Architect. I like building things, both with LEGOs and in real life. Looking for my missing piece.",
			ImageURL:       "https://picsum.photos/seed/user9/400/600",
			CurrentVenueID: 3,
			Tags:           []string{"Find a Date", "Old Fashioned", "Creative"},
		},
		{
			ID:             10,
			Name:           "Julia",
			Age:            27,
			Bio:            "Yoga instructor and coffee addict. My aura is probably caffeine-colored.",
			ImageURL:       "https://picsum.photos/seed/user10/400/600",
			CurrentVenueID: 3,
			Tags:           []string{"Good Vibes", "Mocktails", "Spiritual"},
		},
		{
			ID:             11,
			Name:           "Kevin",
			Age:            29,
			Bio:            "Marketing exec. I can sell anything. Right now, I'm selling you on the idea of buying me a drink.",
			ImageURL:       "https://picsum.photos/seed/user11/400/600",
			CurrentVenueID: 4,
			Tags:           []string{"Network", "Scotch", "Ambitious"},
		},
		{
			ID:             12,
			Name:           "Laura",
			Age:            26,
			Bio:            "Loves dogs, dad jokes, and dancing off-beat. If you can handle all three, we'll get along.",
			ImageURL:       "https://picsum.photos/seed/user12/400/600",
			CurrentVenueID: 4,
			Tags:           []string{"Here to Dance", "Vodka Soda", "Fun"},
		},
	}
}

// SeedCoupons returns the fixed coupon pool matches draw from.
func SeedCoupons() []Coupon {
	return []Coupon{
		{
			Title:       "2-for-1 Cocktails",
			Description: "Get two signature cocktails for the price of one.",
			Code:        "MATCHDRINK",
		},
		{
			Title:       "Free Appetizer",
			Description: "Share a delicious appetizer on us with the purchase of two drinks.",
			Code:        "MATCHBITE",
		},
		{
			Title:       "15% Off First Round",
			Description: "Enjoy 15% off your first round of drinks together.",
			Code:        "MATCHROUND",
		},
		{
			Title:       "Priority Bar Access",
			Description: "Skip the line at the bar for your first order.",
			Code:        "MATCHVIP",
		},
	}
}
