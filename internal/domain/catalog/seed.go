// internal/domain/catalog/seed.go
package catalog

// Static seed data. The canonical catalog is read-only input; admin
// add/delete operations act on a session-local overlay, never here.

func seedDoctors() []Doctor {
	return []Doctor{
		{
			ID:           "d1",
			Name:         "Dr. Rahman",
			Specialty:    "Cardiology",
			Hospital:     "Square Hospital",
			Location:     "Dhaka",
			Experience:   15,
			Fee:          1200,
			Rating:       4.8,
			Patients:     3200,
			Availability: "Sat-Thu, 5pm-9pm",
			Image:        "https://images.unsplash.com/photo-1612349317150-e413f6a5b16d?w=400",
		},
		{
			ID:           "d2",
			Name:         "Dr. Khan",
			Specialty:    "Neurology",
			Hospital:     "United Hospital",
			Location:     "Dhaka",
			Experience:   12,
			Fee:          1500,
			Rating:       4.7,
			Patients:     2100,
			Availability: "Sun-Thu, 4pm-8pm",
			Image:        "https://images.unsplash.com/photo-1559839734-2b71ea197ec2?w=400",
		},
		{
			ID:           "d3",
			Name:         "Dr. Islam",
			Specialty:    "Pediatrics",
			Hospital:     "Evercare Hospital",
			Location:     "Chattogram",
			Experience:   9,
			Fee:          800,
			Rating:       4.9,
			Patients:     4100,
			Availability: "Sat-Wed, 3pm-7pm",
			Image:        "https://images.unsplash.com/photo-1594824476969-47c3f2f47c24?w=400",
		},
		{
			ID:           "d4",
			Name:         "Dr. Sultana",
			Specialty:    "Dermatology",
			Hospital:     "Labaid Hospital",
			Location:     "Dhaka",
			Experience:   11,
			Fee:          1000,
			Rating:       4.6,
			Patients:     1800,
			Availability: "Sun-Fri, 6pm-9pm",
			Image:        "https://images.unsplash.com/photo-1527613426441-4da17471b66d?w=400",
		},
	}
}

func seedMedicines() []Medicine {
	return []Medicine{
		{
			ID:          "m1",
			Name:        "Napa",
			Company:     "Beximco Pharma",
			Type:        "Tablet",
			Price:       10,
			Stock:       500,
			InStock:     true,
			Image:       "https://images.unsplash.com/photo-1584308666744-24d5c474f2ae?w=400",
			Description: "Paracetamol 500mg for fever and mild pain relief",
		},
		{
			ID:          "m2",
			Name:        "Ace",
			Company:     "Square Pharmaceuticals",
			Type:        "Tablet",
			Price:       12,
			Stock:       350,
			InStock:     true,
			Image:       "https://images.unsplash.com/photo-1471864190281-a93a3070b6de?w=400",
			Description: "Paracetamol 500mg analgesic and antipyretic",
		},
		{
			ID:          "m3",
			Name:        "Seclo",
			Company:     "Square Pharmaceuticals",
			Type:        "Capsule",
			Price:       80,
			Stock:       200,
			InStock:     true,
			Image:       "https://images.unsplash.com/photo-1587854692152-cbe660dbde88?w=400",
			Description: "Omeprazole 20mg for acidity and gastric ulcer",
		},
		{
			ID:          "m4",
			Name:        "Monas 10",
			Company:     "ACME Laboratories",
			Type:        "Tablet",
			Price:       175,
			Stock:       0,
			InStock:     false,
			Image:       "https://images.unsplash.com/photo-1550572017-edd951aa8f72?w=400",
			Description: "Montelukast 10mg for asthma and allergic rhinitis",
		},
	}
}

func seedHospitals() []Hospital {
	return []Hospital{
		{
			ID:          "h1",
			Name:        "Square Hospital",
			Location:    "Panthapath, Dhaka",
			Beds:        650,
			Specialties: []string{"Cardiology", "Oncology", "Neurology"},
			Rating:      4.7,
			Phone:       "10616",
			Emergency:   true,
			Image:       "https://images.unsplash.com/photo-1586773860418-d37222d8fce3?w=800",
		},
		{
			ID:          "h2",
			Name:        "United Hospital",
			Location:    "Gulshan, Dhaka",
			Beds:        500,
			Specialties: []string{"Cardiac Surgery", "Orthopedics", "Nephrology"},
			Rating:      4.6,
			Phone:       "10666",
			Emergency:   true,
			Image:       "https://images.unsplash.com/photo-1519494026892-80bbd2d6fd0d?w=800",
		},
		{
			ID:          "h3",
			Name:        "Evercare Hospital",
			Location:    "Bashundhara, Dhaka",
			Beds:        425,
			Specialties: []string{"Pediatrics", "Gynecology", "Gastroenterology"},
			Rating:      4.5,
			Phone:       "10678",
			Emergency:   true,
			Image:       "https://images.unsplash.com/photo-1538108149393-fbbd81895907?w=800",
		},
	}
}

func seedCarousel() []CarouselSlide {
	return []CarouselSlide{
		{
			ID:       "1",
			Image:    "https://images.unsplash.com/photo-1666886573230-2b730505f298?w=1200",
			Title:    "Expert Healthcare",
			Subtitle: "Book appointments with top specialists",
			CTA:      "Find Doctors",
		},
		{
			ID:       "2",
			Image:    "https://images.unsplash.com/photo-1596522016734-8e6136fe5cfa?w=1200",
			Title:    "Fast Medicine Delivery",
			Subtitle: "Order medicines online",
			CTA:      "Order Now",
		},
	}
}
