package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/jwalitptl/clinica/internal/model"
	"github.com/jwalitptl/clinica/internal/repository"
)

type patientRepository struct {
	mu       sync.RWMutex
	byDNI    map[string]*model.Patient
	ordering []string
}

func NewPatientRepository() repository.PatientRepository {
	return &patientRepository{byDNI: make(map[string]*model.Patient)}
}

func (r *patientRepository) Create(ctx context.Context, patient *model.Patient) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byDNI[patient.DNI]; ok {
		return fmt.Errorf("%w: dni %s", model.ErrPatientAlreadyRegistered, patient.DNI)
	}
	r.byDNI[patient.DNI] = patient
	r.ordering = append(r.ordering, patient.DNI)
	return nil
}

func (r *patientRepository) Get(ctx context.Context, dni string) (*model.Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	patient, ok := r.byDNI[dni]
	if !ok {
		return nil, fmt.Errorf("%w: dni %s", model.ErrPatientNotFound, dni)
	}
	return patient, nil
}

func (r *patientRepository) List(ctx context.Context) ([]*model.Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	patients := make([]*model.Patient, 0, len(r.ordering))
	for _, dni := range r.ordering {
		patients = append(patients, r.byDNI[dni])
	}
	return patients, nil
}

func (r *patientRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byDNI), nil
}
