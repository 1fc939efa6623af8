package memory

import (
	"context"
	"sync"
	"time"

	"github.com/jwalitptl/clinica/internal/model"
	"github.com/jwalitptl/clinica/internal/repository"
)

type appointmentRepository struct {
	mu           sync.RWMutex
	appointments []*model.Appointment
}

func NewAppointmentRepository() repository.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *model.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.appointments = append(r.appointments, appointment)
	return nil
}

func (r *appointmentRepository) CheckConflict(ctx context.Context, doctorLicense string, at time.Time) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, apt := range r.appointments {
		if apt.Doctor.License == doctorLicense && apt.Time.Equal(at) {
			return true, nil
		}
	}
	return false, nil
}

func (r *appointmentRepository) ListByPatient(ctx context.Context, dni string) ([]*model.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	appointments := make([]*model.Appointment, 0)
	for _, apt := range r.appointments {
		if apt.Patient.DNI == dni {
			appointments = append(appointments, apt)
		}
	}
	return appointments, nil
}

func (r *appointmentRepository) List(ctx context.Context) ([]*model.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]*model.Appointment(nil), r.appointments...), nil
}
