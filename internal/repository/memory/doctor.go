package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/jwalitptl/clinica/internal/model"
	"github.com/jwalitptl/clinica/internal/repository"
)

type doctorRepository struct {
	mu        sync.RWMutex
	byLicense map[string]*model.Doctor
	ordering  []string
}

func NewDoctorRepository() repository.DoctorRepository {
	return &doctorRepository{byLicense: make(map[string]*model.Doctor)}
}

func (r *doctorRepository) Create(ctx context.Context, doctor *model.Doctor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byLicense[doctor.License]; ok {
		return fmt.Errorf("%w: license %s", model.ErrDoctorAlreadyRegistered, doctor.License)
	}
	r.byLicense[doctor.License] = doctor
	r.ordering = append(r.ordering, doctor.License)
	return nil
}

func (r *doctorRepository) Get(ctx context.Context, license string) (*model.Doctor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	doctor, ok := r.byLicense[license]
	if !ok {
		return nil, fmt.Errorf("%w: license %s", model.ErrDoctorNotFound, license)
	}
	return doctor, nil
}

func (r *doctorRepository) List(ctx context.Context) ([]*model.Doctor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	doctors := make([]*model.Doctor, 0, len(r.ordering))
	for _, license := range r.ordering {
		doctors = append(doctors, r.byLicense[license])
	}
	return doctors, nil
}

func (r *doctorRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byLicense), nil
}
