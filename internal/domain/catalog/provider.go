// internal/domain/catalog/provider.go
package catalog

import "errors"

// ErrNotFound is returned when a catalog entity id does not exist
var ErrNotFound = errors.New("catalog: entity not found")

// Provider supplies the read-only seed catalog. The canonical lists are
// never mutated after construction; callers get copies.
type Provider struct {
	doctors   []Doctor
	medicines []Medicine
	hospitals []Hospital
	carousel  []CarouselSlide
}

// NewProvider creates a provider loaded with the static seed data
func NewProvider() *Provider {
	return &Provider{
		doctors:   seedDoctors(),
		medicines: seedMedicines(),
		hospitals: seedHospitals(),
		carousel:  seedCarousel(),
	}
}

// Doctors returns a copy of the doctor catalog
func (p *Provider) Doctors() []Doctor {
	out := make([]Doctor, len(p.doctors))
	copy(out, p.doctors)
	return out
}

// Medicines returns a copy of the medicine catalog
func (p *Provider) Medicines() []Medicine {
	out := make([]Medicine, len(p.medicines))
	copy(out, p.medicines)
	return out
}

// Hospitals returns a copy of the hospital catalog
func (p *Provider) Hospitals() []Hospital {
	out := make([]Hospital, len(p.hospitals))
	copy(out, p.hospitals)
	return out
}

// Carousel returns a copy of the hero carousel slides
func (p *Provider) Carousel() []CarouselSlide {
	out := make([]CarouselSlide, len(p.carousel))
	copy(out, p.carousel)
	return out
}

// DoctorByID looks up a doctor by id
func (p *Provider) DoctorByID(id string) (Doctor, error) {
	for _, d := range p.doctors {
		if d.ID == id {
			return d, nil
		}
	}
	return Doctor{}, ErrNotFound
}

// MedicineByID looks up a medicine by id
func (p *Provider) MedicineByID(id string) (Medicine, error) {
	for _, m := range p.medicines {
		if m.ID == id {
			return m, nil
		}
	}
	return Medicine{}, ErrNotFound
}

// HospitalByID looks up a hospital by id
func (p *Provider) HospitalByID(id string) (Hospital, error) {
	for _, h := range p.hospitals {
		if h.ID == id {
			return h, nil
		}
	}
	return Hospital{}, ErrNotFound
}
