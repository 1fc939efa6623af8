package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPatient(t *testing.T, dni string) *Patient {
	t.Helper()
	p, err := NewPatient(dni, "Juan", "Pérez", 30)
	require.NoError(t, err)
	return p
}

func testDoctor(t *testing.T, license string) *Doctor {
	t.Helper()
	sp, err := NewSpecialty("Cardiología", []Weekday{Monday, Wednesday, Friday})
	require.NoError(t, err)
	d, err := NewDoctor(license, "Ana", "Ruiz", []*Specialty{sp})
	require.NoError(t, err)
	return d
}

func TestNewPatientValidation(t *testing.T) {
	_, err := NewPatient("", "Juan", "Pérez", 30)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = NewPatient("12345678", "", "Pérez", 30)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = NewPatient("12345678", "Juan", "", 30)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	p, err := NewPatient("12345678", "Juan", "Pérez", 30)
	require.NoError(t, err)
	assert.Equal(t, "Juan Pérez", p.FullName())
}

func TestAppointmentEqualUsesBusinessKey(t *testing.T) {
	patient := testPatient(t, "12345678")
	doctor := testDoctor(t, "M123")
	specialty := doctor.Specialties[0]
	at := time.Date(2025, 6, 9, 10, 30, 0, 0, time.UTC)

	a := NewAppointment(patient, doctor, at, specialty)
	b := NewAppointment(patient, doctor, at, specialty)

	// distinct instances with distinct IDs, same business key
	assert.NotEqual(t, a.ID, b.ID)
	assert.True(t, a.Equal(b))

	c := NewAppointment(patient, doctor, at.Add(time.Hour), specialty)
	assert.False(t, a.Equal(c))

	other := testPatient(t, "87654321")
	d := NewAppointment(other, doctor, at, specialty)
	assert.False(t, a.Equal(d))

	assert.False(t, a.Equal(nil))
}

func TestNewPrescriptionRequiresMedications(t *testing.T) {
	patient := testPatient(t, "12345678")
	doctor := testDoctor(t, "M123")

	_, err := NewPrescription(patient, doctor, nil)
	assert.ErrorIs(t, err, ErrInvalidPrescription)

	_, err = NewPrescription(patient, doctor, []string{})
	assert.ErrorIs(t, err, ErrInvalidPrescription)

	rx, err := NewPrescription(patient, doctor, []string{"Paracetamol"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Paracetamol"}, rx.Medications)
}

func TestNewPrescriptionCopiesMedications(t *testing.T) {
	patient := testPatient(t, "12345678")
	doctor := testDoctor(t, "M123")

	meds := []string{"Paracetamol"}
	rx, err := NewPrescription(patient, doctor, meds)
	require.NoError(t, err)

	meds[0] = "Ibuprofeno"
	assert.Equal(t, "Paracetamol", rx.Medications[0])
}
