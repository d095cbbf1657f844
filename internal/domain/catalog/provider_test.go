// internal/domain/catalog/provider_test.go
package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvider_LookupByID(t *testing.T) {
	p := NewProvider()

	doc, err := p.DoctorByID("d1")
	require.NoError(t, err)
	assert.Equal(t, "Dr. Rahman", doc.Name)
	assert.Equal(t, "Cardiology", doc.Specialty)

	med, err := p.MedicineByID("m1")
	require.NoError(t, err)
	assert.Equal(t, "Napa", med.Name)

	hosp, err := p.HospitalByID("h1")
	require.NoError(t, err)
	assert.NotEmpty(t, hosp.Name)
}

func TestProvider_MissingID(t *testing.T) {
	p := NewProvider()

	_, err := p.DoctorByID("d999")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = p.MedicineByID("")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = p.HospitalByID("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProvider_ReturnsCopies(t *testing.T) {
	p := NewProvider()

	doctors := p.Doctors()
	doctors[0].Name = "mutated"

	fresh := p.Doctors()
	assert.NotEqual(t, "mutated", fresh[0].Name)
}

func TestOverlay_AddAndDelete(t *testing.T) {
	o := NewOverlay(NewProvider())

	base := len(o.Doctors())
	doc := o.AddDoctor(Doctor{Name: "Dr. Chowdhury", Specialty: "Dermatology", Fee: 900})
	assert.NotEmpty(t, doc.ID)
	assert.Len(t, o.Doctors(), base+1)

	o.DeleteDoctor(doc.ID)
	assert.Len(t, o.Doctors(), base)

	// deleting an unknown id is a no-op
	o.DeleteDoctor("nope")
	assert.Len(t, o.Doctors(), base)
}

func TestOverlay_AddMedicineDerivesStock(t *testing.T) {
	o := NewOverlay(NewProvider())

	in := o.AddMedicine(Medicine{Name: "Fexo", Price: 9, Stock: 120})
	assert.True(t, in.InStock)

	out := o.AddMedicine(Medicine{Name: "Zimax", Price: 35, Stock: 0})
	assert.False(t, out.InStock)
}

func TestOverlay_DoesNotTouchProvider(t *testing.T) {
	p := NewProvider()
	o := NewOverlay(p)

	o.AddDoctor(Doctor{Name: "Dr. Session Only"})
	for _, d := range p.Doctors() {
		assert.NotEqual(t, "Dr. Session Only", d.Name)
	}
}
