// internal/domain/catalog/entity.go
package catalog

// Doctor represents a bookable specialist in the seed catalog
type Doctor struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Specialty    string  `json:"specialty"`
	Hospital     string  `json:"hospital"`
	Location     string  `json:"location"`
	Experience   int     `json:"experience"` // years
	Fee          int64   `json:"fee"`        // consultation fee in BDT
	Rating       float64 `json:"rating"`
	Patients     int     `json:"patients"`
	Availability string  `json:"availability"`
	Image        string  `json:"image"`
}

// Medicine represents an orderable medicine in the seed catalog
type Medicine struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Company     string `json:"company"`
	Type        string `json:"type"` // Tablet, Syrup, ...
	Price       int64  `json:"price"`
	Stock       int    `json:"stock"`
	InStock     bool   `json:"in_stock"`
	Image       string `json:"image"`
	Description string `json:"description"`
}

// Hospital represents a partner hospital in the seed catalog
type Hospital struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Location    string   `json:"location"`
	Beds        int      `json:"beds"`
	Specialties []string `json:"specialties"`
	Rating      float64  `json:"rating"`
	Phone       string   `json:"phone"`
	Emergency   bool     `json:"emergency"`
	Image       string   `json:"image"`
}

// CarouselSlide represents one slide of the home page hero carousel
type CarouselSlide struct {
	ID       string `json:"id"`
	Image    string `json:"image"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	CTA      string `json:"cta"`
}
