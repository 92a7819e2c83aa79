package db

import (
	"database/sql"
	"fmt"
)

type seedUser struct {
	name, email, role, region, bio string
}

type seedProperty struct {
	scoutEmail  string
	name        string
	location    string
	category    string
	description string
	price       int64
	status      string
	bookings    int64
	rating      float64
	tags        string
	features    string
	amenities   string
	imageURL    string
	imageTitle  string
}

var seedUsers = []seedUser{
	{"Maria Santos", "maria@lokascout.ph", "scout", "Western Visayas", "Location scout covering Boracay and Panay island shoots."},
	{"Jun Dela Cruz", "jun@lokascout.ph", "scout", "Cordillera", "Mountain and highland locations around Baguio and Banaue."},
	{"Paolo Reyes", "paolo@lokascout.ph", "scout", "Metro Manila", "Urban rooftops, studios, and heritage sites in the capital."},
	{"Ana Lim", "ana@example.com", "user", "Metro Manila", ""},
	{"Carlo Tan", "carlo@example.com", "user", "Cebu", ""},
}

var seedProperties = []seedProperty{
	{
		"maria@lokascout.ph", "Boracay Beach Resort", "Boracay, Aklan", "Beach",
		"White-sand beachfront with unobstructed sunset views, ideal for golden hour shoots.",
		5000, "active", 156, 4.8,
		`["beach","sunset","white sand","resort"]`,
		`["beachfront access","sunset view","shallow water"]`,
		`["parking","restrooms","electricity","catering area"]`,
		"https://images.lokascout.ph/boracay-beach-1.jpg", "Beachfront at golden hour",
	},
	{
		"jun@lokascout.ph", "Baguio Mountain View", "Baguio, Benguet", "Mountain",
		"Pine-covered ridge overlooking the Cordillera range, frequent morning fog.",
		3500, "active", 89, 4.6,
		`["mountain","pine","fog","cold weather"]`,
		`["ridge viewpoint","morning fog","pine forest"]`,
		`["parking","caretaker","generator"]`,
		"https://images.lokascout.ph/baguio-ridge-1.jpg", "Ridge under morning fog",
	},
	{
		"paolo@lokascout.ph", "Intramuros Heritage Walk", "Manila", "Historical",
		"Spanish-era walled city streets with cobblestones and colonial facades.",
		8000, "active", 134, 4.7,
		`["heritage","colonial","cobblestone","walled city"]`,
		`["period architecture","wide streets","plaza"]`,
		`["permits assistance","security","restrooms"]`,
		"https://images.lokascout.ph/intramuros-1.jpg", "Calle Real cobblestones",
	},
	{
		"jun@lokascout.ph", "Banaue Rice Terraces Lookout", "Banaue, Ifugao", "Nature",
		"Terraced hillside lookout with sweeping views of the rice paddies.",
		4200, "active", 47, 4.9,
		`["terraces","nature","sunrise","unesco"]`,
		`["panoramic lookout","sunrise view"]`,
		`["local guide","parking"]`,
		"https://images.lokascout.ph/banaue-1.jpg", "Terraces at sunrise",
	},
	{
		"paolo@lokascout.ph", "BGC Rooftop Studio", "Taguig, Metro Manila", "Urban",
		"34th-floor rooftop with skyline backdrop and freight elevator access.",
		12000, "active", 203, 4.5,
		`["rooftop","skyline","night shoot","studio"]`,
		`["skyline backdrop","freight elevator","blackout option"]`,
		`["aircon","power outlets","restrooms","loading dock"]`,
		"https://images.lokascout.ph/bgc-rooftop-1.jpg", "Skyline from the helipad deck",
	},
	{
		"maria@lokascout.ph", "Siargao Cloud 9 Boardwalk", "General Luna, Siargao", "Island",
		"Iconic wooden boardwalk over reef break, best shot at low tide.",
		4500, "active", 72, 4.4,
		`["island","surf","boardwalk","reef"]`,
		`["boardwalk","surf break","tower viewpoint"]`,
		`["parking","nearby lodging"]`,
		"https://images.lokascout.ph/siargao-1.jpg", "Boardwalk at low tide",
	},
	{
		"maria@lokascout.ph", "Vigan Heritage Street", "Vigan, Ilocos Sur", "Heritage",
		"Calle Crisologo at dawn, kalesa access negotiable with the city.",
		6000, "pending", 28, 3.9,
		`["heritage","cobblestone","kalesa","dawn"]`,
		`["period houses","car-free street"]`,
		`["permits assistance","restrooms"]`,
		"https://images.lokascout.ph/vigan-1.jpg", "Calle Crisologo at dawn",
	},
	{
		"jun@lokascout.ph", "Taal Volcano Ridge", "Tagaytay, Cavite", "Nature",
		"Ridge-line view deck facing Taal lake and volcano island.",
		3000, "inactive", 12, 3.2,
		`["volcano","lake","ridge","view deck"]`,
		`["lake view","cool climate"]`,
		`["parking"]`,
		"https://images.lokascout.ph/taal-1.jpg", "Volcano island across the lake",
	},
}

// Seed loads the initial fixture dataset if the catalog is empty.
// Running it against a populated database is a no-op.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM properties").Scan(&count); err != nil {
		return fmt.Errorf("counting properties: %w", err)
	}
	if count > 0 {
		return nil
	}

	scoutIDs := make(map[string]int64)
	for _, u := range seedUsers {
		_, err := db.Exec(
			"INSERT OR IGNORE INTO users (name, email, role, region, bio) VALUES (?, ?, ?, ?, ?)",
			u.name, u.email, u.role, u.region, u.bio,
		)
		if err != nil {
			return fmt.Errorf("seeding user %s: %w", u.email, err)
		}
		var id int64
		if err := db.QueryRow("SELECT id FROM users WHERE email = ?", u.email).Scan(&id); err != nil {
			return fmt.Errorf("getting user id for %s: %w", u.email, err)
		}
		scoutIDs[u.email] = id
	}

	for _, p := range seedProperties {
		result, err := db.Exec(
			`INSERT INTO properties
			(scout_id, name, location, category, description, price, status, bookings, rating, tags, features, amenities)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			scoutIDs[p.scoutEmail], p.name, p.location, p.category, p.description,
			p.price, p.status, p.bookings, p.rating, p.tags, p.features, p.amenities,
		)
		if err != nil {
			return fmt.Errorf("seeding property %q: %w", p.name, err)
		}
		propID, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("getting property id: %w", err)
		}

		if p.imageURL != "" {
			_, err := db.Exec(
				`INSERT INTO property_images (property_id, url, title, alt_text, is_primary)
				 VALUES (?, ?, ?, ?, 1)`,
				propID, p.imageURL, p.imageTitle, p.imageTitle,
			)
			if err != nil {
				return fmt.Errorf("seeding image for %q: %w", p.name, err)
			}
		}
	}

	return nil
}
