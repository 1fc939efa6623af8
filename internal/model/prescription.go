package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Prescription names at least one medication.
type Prescription struct {
	ID          uuid.UUID `json:"id"`
	Patient     *Patient  `json:"patient"`
	Doctor      *Doctor   `json:"doctor"`
	Medications []string  `json:"medications"`
	CreatedAt   time.Time `json:"created_at"`
}

type IssuePrescriptionRequest struct {
	PatientDNI    string   `json:"patient_dni" validate:"required"`
	DoctorLicense string   `json:"doctor_license" validate:"required"`
	Medications   []string `json:"medications" validate:"required,min=1,dive,required"`
}

func NewPrescription(patient *Patient, doctor *Doctor, medications []string) (*Prescription, error) {
	if len(medications) == 0 {
		return nil, fmt.Errorf("%w: at least one medication is required", ErrInvalidPrescription)
	}
	return &Prescription{
		ID:          uuid.New(),
		Patient:     patient,
		Doctor:      doctor,
		Medications: append([]string(nil), medications...),
		CreatedAt:   time.Now(),
	}, nil
}

// History aggregates everything on file for one patient, insertion order.
type History struct {
	PatientDNI    string          `json:"patient_dni"`
	Appointments  []*Appointment  `json:"appointments"`
	Prescriptions []*Prescription `json:"prescriptions"`
}
