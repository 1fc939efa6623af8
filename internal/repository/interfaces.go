package repository

import (
	"context"
	"time"

	"github.com/jwalitptl/clinica/internal/model"
)

type PatientRepository interface {
	Create(ctx context.Context, patient *model.Patient) error
	Get(ctx context.Context, dni string) (*model.Patient, error)
	List(ctx context.Context) ([]*model.Patient, error)
	Count(ctx context.Context) (int, error)
}

type DoctorRepository interface {
	Create(ctx context.Context, doctor *model.Doctor) error
	Get(ctx context.Context, license string) (*model.Doctor, error)
	List(ctx context.Context) ([]*model.Doctor, error)
	Count(ctx context.Context) (int, error)
}

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *model.Appointment) error
	// CheckConflict reports whether the doctor already holds an appointment
	// at exactly this instant, for any patient and any specialty.
	CheckConflict(ctx context.Context, doctorLicense string, at time.Time) (bool, error)
	ListByPatient(ctx context.Context, dni string) ([]*model.Appointment, error)
	List(ctx context.Context) ([]*model.Appointment, error)
}

type PrescriptionRepository interface {
	Create(ctx context.Context, prescription *model.Prescription) error
	ListByPatient(ctx context.Context, dni string) ([]*model.Prescription, error)
	List(ctx context.Context) ([]*model.Prescription, error)
}
