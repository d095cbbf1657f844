// internal/domain/navigation/router.go
package navigation

import "sync"

// Page identifies a top-level view
type Page string

const (
	PageHome            Page = "home"
	PageDoctors         Page = "doctors"
	PageMedicines       Page = "medicines"
	PageHospitals       Page = "hospitals"
	PageLogin           Page = "login"
	PageSignup          Page = "signup"
	PageBooking         Page = "booking"
	PageCart            Page = "cart"
	PagePayment         Page = "payment"
	PageDashboard       Page = "dashboard"
	PageAdmin           Page = "admin"
	PageAdminLogin      Page = "admin-login"
	PageDoctorProfile   Page = "doctor-profile"
	PageMedicineDetails Page = "medicine-details"
	PageHospitalDetails Page = "hospital-details"
)

var knownPages = map[Page]bool{
	PageHome:            true,
	PageDoctors:         true,
	PageMedicines:       true,
	PageHospitals:       true,
	PageLogin:           true,
	PageSignup:          true,
	PageBooking:         true,
	PageCart:            true,
	PagePayment:         true,
	PageDashboard:       true,
	PageAdmin:           true,
	PageAdminLogin:      true,
	PageDoctorProfile:   true,
	PageMedicineDetails: true,
	PageHospitalDetails: true,
}

// State is the current page plus the payload handed to Navigate.
// Exactly one State exists per router and it is replaced wholesale on
// every transition.
type State struct {
	Page Page
	Data interface{}
}

// Chrome says which shell elements render around the current page
type Chrome struct {
	Navbar    bool
	Footer    bool
	Assistant bool
}

// Router holds the process-wide navigation state. Navigate cannot fail:
// an unknown page resolves to home.
type Router struct {
	mu       sync.RWMutex
	state    State
	scrolled bool
}

// NewRouter creates a router positioned on the home page
func NewRouter() *Router {
	return &Router{
		state: State{Page: PageHome},
	}
}

// Navigate replaces the current state and raises the scroll-to-top
// signal. The previous payload is discarded even when the page repeats.
func (r *Router) Navigate(page Page, data interface{}) State {
	if !knownPages[page] {
		page = PageHome
		data = nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.state = State{Page: page, Data: data}
	r.scrolled = false
	return r.state
}

// Current returns the current navigation state
func (r *Router) Current() State {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state
}

// ConsumeScrollSignal reports whether a scroll-to-top is due and clears
// the signal
func (r *Router) ConsumeScrollSignal() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.scrolled {
		return false
	}
	r.scrolled = true
	return true
}

// Chrome derives the shell layout for the current page. Admin surfaces
// drop the storefront navbar and assistant; admin surfaces and the
// dashboard drop the footer.
func (r *Router) Chrome() Chrome {
	r.mu.RLock()
	page := r.state.Page
	r.mu.RUnlock()

	c := Chrome{Navbar: true, Footer: true, Assistant: true}
	switch page {
	case PageAdmin, PageAdminLogin:
		c.Navbar = false
		c.Footer = false
		c.Assistant = false
	case PageDashboard:
		c.Footer = false
	}
	return c
}
