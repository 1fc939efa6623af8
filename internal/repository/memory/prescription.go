package memory

import (
	"context"
	"sync"

	"github.com/jwalitptl/clinica/internal/model"
	"github.com/jwalitptl/clinica/internal/repository"
)

type prescriptionRepository struct {
	mu            sync.RWMutex
	prescriptions []*model.Prescription
}

func NewPrescriptionRepository() repository.PrescriptionRepository {
	return &prescriptionRepository{}
}

func (r *prescriptionRepository) Create(ctx context.Context, prescription *model.Prescription) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.prescriptions = append(r.prescriptions, prescription)
	return nil
}

func (r *prescriptionRepository) ListByPatient(ctx context.Context, dni string) ([]*model.Prescription, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	prescriptions := make([]*model.Prescription, 0)
	for _, rx := range r.prescriptions {
		if rx.Patient.DNI == dni {
			prescriptions = append(prescriptions, rx)
		}
	}
	return prescriptions, nil
}

func (r *prescriptionRepository) List(ctx context.Context) ([]*model.Prescription, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]*model.Prescription(nil), r.prescriptions...), nil
}
