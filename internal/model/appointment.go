package model

import (
	"time"

	"github.com/google/uuid"
)

// Appointment is one booked slot. The UUID is bookkeeping only; the business
// key is (patient DNI, doctor license, time, specialty name).
type Appointment struct {
	ID        uuid.UUID  `json:"id"`
	Patient   *Patient   `json:"patient"`
	Doctor    *Doctor    `json:"doctor"`
	Specialty *Specialty `json:"specialty"`
	Time      time.Time  `json:"time"`
	CreatedAt time.Time  `json:"created_at"`
}

type ScheduleAppointmentRequest struct {
	PatientDNI    string    `json:"patient_dni" validate:"required"`
	DoctorLicense string    `json:"doctor_license" validate:"required"`
	SpecialtyName string    `json:"specialty_name" validate:"required"`
	Time          time.Time `json:"time" validate:"required"`
}

func NewAppointment(patient *Patient, doctor *Doctor, at time.Time, specialty *Specialty) *Appointment {
	return &Appointment{
		ID:        uuid.New(),
		Patient:   patient,
		Doctor:    doctor,
		Specialty: specialty,
		Time:      at,
		CreatedAt: time.Now(),
	}
}

// Equal compares by business key, not object identity.
func (a *Appointment) Equal(other *Appointment) bool {
	return other != nil &&
		a.Patient.DNI == other.Patient.DNI &&
		a.Doctor.License == other.Doctor.License &&
		a.Time.Equal(other.Time) &&
		a.Specialty.Name == other.Specialty.Name
}
