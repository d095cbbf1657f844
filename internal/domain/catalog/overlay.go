// internal/domain/catalog/overlay.go
package catalog

import (
	"sync"

	"github.com/google/uuid"
)

// Overlay is a session-local copy of the catalog that admin add/delete
// operations act on. The canonical seed stays untouched; the overlay
// lives only as long as the admin session.
type Overlay struct {
	mu        sync.Mutex
	doctors   []Doctor
	medicines []Medicine
	carousel  []CarouselSlide
}

// NewOverlay copies the provider's current catalog into a mutable overlay
func NewOverlay(p *Provider) *Overlay {
	return &Overlay{
		doctors:   p.Doctors(),
		medicines: p.Medicines(),
		carousel:  p.Carousel(),
	}
}

// Doctors returns the overlay's doctor list
func (o *Overlay) Doctors() []Doctor {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]Doctor, len(o.doctors))
	copy(out, o.doctors)
	return out
}

// Medicines returns the overlay's medicine list
func (o *Overlay) Medicines() []Medicine {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]Medicine, len(o.medicines))
	copy(out, o.medicines)
	return out
}

// Carousel returns the overlay's carousel slides
func (o *Overlay) Carousel() []CarouselSlide {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]CarouselSlide, len(o.carousel))
	copy(out, o.carousel)
	return out
}

// AddDoctor appends a doctor to the overlay, assigning an id
func (o *Overlay) AddDoctor(d Doctor) Doctor {
	o.mu.Lock()
	defer o.mu.Unlock()
	d.ID = uuid.NewString()
	o.doctors = append(o.doctors, d)
	return d
}

// DeleteDoctor removes a doctor from the overlay; unknown id is a no-op
func (o *Overlay) DeleteDoctor(id string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	for i, d := range o.doctors {
		if d.ID == id {
			o.doctors = append(o.doctors[:i], o.doctors[i+1:]...)
			return
		}
	}
}

// AddMedicine appends a medicine to the overlay, assigning an id and
// deriving the in-stock flag from the stock count
func (o *Overlay) AddMedicine(m Medicine) Medicine {
	o.mu.Lock()
	defer o.mu.Unlock()
	m.ID = uuid.NewString()
	m.InStock = m.Stock > 0
	o.medicines = append(o.medicines, m)
	return m
}

// DeleteMedicine removes a medicine from the overlay; unknown id is a no-op
func (o *Overlay) DeleteMedicine(id string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	for i, m := range o.medicines {
		if m.ID == id {
			o.medicines = append(o.medicines[:i], o.medicines[i+1:]...)
			return
		}
	}
}

// AddSlide appends a carousel slide to the overlay, assigning an id
func (o *Overlay) AddSlide(s CarouselSlide) CarouselSlide {
	o.mu.Lock()
	defer o.mu.Unlock()
	s.ID = uuid.NewString()
	o.carousel = append(o.carousel, s)
	return s
}

// DeleteSlide removes a carousel slide; unknown id is a no-op
func (o *Overlay) DeleteSlide(id string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	for i, s := range o.carousel {
		if s.ID == id {
			o.carousel = append(o.carousel[:i], o.carousel[i+1:]...)
			return
		}
	}
}
