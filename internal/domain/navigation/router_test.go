// internal/domain/navigation/router_test.go
package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRouter_StartsOnHome(t *testing.T) {
	r := NewRouter()
	assert.Equal(t, PageHome, r.Current().Page)
	assert.Nil(t, r.Current().Data)
}

func TestNavigate_ReplacesStateWholesale(t *testing.T) {
	r := NewRouter()

	r.Navigate(PageDoctorProfile, map[string]string{"doctorId": "d1"})
	assert.Equal(t, PageDoctorProfile, r.Current().Page)
	assert.Equal(t, map[string]string{"doctorId": "d1"}, r.Current().Data)

	// navigating without a payload drops the previous one
	r.Navigate(PageDoctors, nil)
	assert.Equal(t, PageDoctors, r.Current().Page)
	assert.Nil(t, r.Current().Data)
}

func TestNavigate_UnknownPageFallsBackToHome(t *testing.T) {
	r := NewRouter()
	r.Navigate(PageCart, nil)

	state := r.Navigate(Page("nonexistent-page"), map[string]string{"x": "y"})
	assert.Equal(t, PageHome, state.Page)
	assert.Nil(t, state.Data)
}

func TestNavigate_RaisesScrollSignalOnce(t *testing.T) {
	r := NewRouter()
	r.ConsumeScrollSignal()

	r.Navigate(PageMedicines, nil)
	assert.True(t, r.ConsumeScrollSignal())
	assert.False(t, r.ConsumeScrollSignal())
}

func TestChrome(t *testing.T) {
	tests := []struct {
		page      Page
		navbar    bool
		footer    bool
		assistant bool
	}{
		{PageHome, true, true, true},
		{PageCart, true, true, true},
		{PageDashboard, true, false, true},
		{PageAdmin, false, false, false},
		{PageAdminLogin, false, false, false},
	}

	r := NewRouter()
	for _, tt := range tests {
		t.Run(string(tt.page), func(t *testing.T) {
			r.Navigate(tt.page, nil)
			c := r.Chrome()
			assert.Equal(t, tt.navbar, c.Navbar)
			assert.Equal(t, tt.footer, c.Footer)
			assert.Equal(t, tt.assistant, c.Assistant)
		})
	}
}
