package clinic

import (
	"context"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"

	"github.com/jwalitptl/clinica/internal/model"
	"github.com/jwalitptl/clinica/internal/repository"
	"github.com/jwalitptl/clinica/pkg/metrics"
	"github.com/jwalitptl/clinica/pkg/validator"
)

// Service is the clinic registry: the single owner of patient, doctor,
// appointment and prescription state. Every operation validates before it
// mutates, so a failed call leaves the registry unchanged.
type Service struct {
	patients      repository.PatientRepository
	doctors       repository.DoctorRepository
	appointments  repository.AppointmentRepository
	prescriptions repository.PrescriptionRepository

	validator *validator.Validator
	history   *gocache.Cache
	metrics   *metrics.Metrics
	logger    zerolog.Logger
}

func NewService(
	patients repository.PatientRepository,
	doctors repository.DoctorRepository,
	appointments repository.AppointmentRepository,
	prescriptions repository.PrescriptionRepository,
	m *metrics.Metrics,
	logger zerolog.Logger,
	historyTTL time.Duration,
) *Service {
	return &Service{
		patients:      patients,
		doctors:       doctors,
		appointments:  appointments,
		prescriptions: prescriptions,
		validator:     validator.New(),
		history:       gocache.New(historyTTL, 2*historyTTL),
		metrics:       m,
		logger:        logger,
	}
}

func appointmentsKey(dni string) string { return "appointments:" + dni }

func prescriptionsKey(dni string) string { return "prescriptions:" + dni }

func (s *Service) RegisterPatient(ctx context.Context, req *model.CreatePatientRequest) (patient *model.Patient, err error) {
	defer func() { s.metrics.RecordOperation("register_patient", err) }()

	if err = s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrInvalidArgument, err)
	}

	patient, err = model.NewPatient(req.DNI, req.FirstName, req.LastName, req.Age)
	if err != nil {
		return nil, err
	}

	if err = s.patients.Create(ctx, patient); err != nil {
		return nil, fmt.Errorf("failed to register patient: %w", err)
	}

	if n, countErr := s.patients.Count(ctx); countErr == nil {
		s.metrics.PatientsRegistered.Set(float64(n))
	}
	s.logger.Info().Str("dni", patient.DNI).Str("name", patient.FullName()).Msg("patient registered")
	return patient, nil
}

func (s *Service) RegisterDoctor(ctx context.Context, req *model.CreateDoctorRequest) (doctor *model.Doctor, err error) {
	defer func() { s.metrics.RecordOperation("register_doctor", err) }()

	if err = s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrInvalidArgument, err)
	}

	doctor, err = model.NewDoctor(req.License, req.FirstName, req.LastName, nil)
	if err != nil {
		return nil, err
	}

	if err = s.doctors.Create(ctx, doctor); err != nil {
		return nil, fmt.Errorf("failed to register doctor: %w", err)
	}

	if n, countErr := s.doctors.Count(ctx); countErr == nil {
		s.metrics.DoctorsRegistered.Set(float64(n))
	}
	s.logger.Info().Str("license", doctor.License).Str("name", doctor.FullName()).Msg("doctor registered")
	return doctor, nil
}

// AddSpecialtyToDoctor appends a new specialty to a registered doctor.
func (s *Service) AddSpecialtyToDoctor(ctx context.Context, license string, req *model.CreateSpecialtyRequest) (specialty *model.Specialty, err error) {
	defer func() { s.metrics.RecordOperation("add_specialty", err) }()

	specialty, err = model.NewSpecialty(req.Name, req.Days)
	if err != nil {
		return nil, err
	}

	doctor, err := s.doctors.Get(ctx, license)
	if err != nil {
		return nil, err
	}

	if err = doctor.AddSpecialty(specialty); err != nil {
		return nil, err
	}

	s.logger.Info().Str("license", license).Str("specialty", specialty.Name).Msg("specialty added")
	return specialty, nil
}

// ScheduleAppointment books a slot. Checks run in a fixed order: patient,
// doctor, specialty ownership, weekday availability, slot conflict. The slot
// key is (doctor, exact timestamp) only.
func (s *Service) ScheduleAppointment(ctx context.Context, req *model.ScheduleAppointmentRequest) (apt *model.Appointment, err error) {
	defer func() { s.metrics.RecordOperation("schedule_appointment", err) }()

	patient, err := s.patients.Get(ctx, req.PatientDNI)
	if err != nil {
		return nil, err
	}

	doctor, err := s.doctors.Get(ctx, req.DoctorLicense)
	if err != nil {
		return nil, err
	}

	specialty, ok := doctor.SpecialtyNamed(req.SpecialtyName)
	if !ok {
		return nil, fmt.Errorf("%w: doctor %s does not practice %s",
			model.ErrInvalidAppointment, doctor.License, req.SpecialtyName)
	}

	day := model.WeekdayOf(req.Time)
	if !specialty.AvailableOn(day) {
		return nil, fmt.Errorf("%w: %s is not offered on %s",
			model.ErrInvalidAppointment, specialty.Name, day)
	}

	conflict, err := s.appointments.CheckConflict(ctx, doctor.License, req.Time)
	if err != nil {
		return nil, fmt.Errorf("failed to check conflicts: %w", err)
	}
	if conflict {
		return nil, fmt.Errorf("%w: doctor %s at %s",
			model.ErrSlotOccupied, doctor.License, req.Time.Format(time.RFC3339))
	}

	apt = model.NewAppointment(patient, doctor, req.Time, specialty)
	if err = s.appointments.Create(ctx, apt); err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	s.history.Delete(appointmentsKey(patient.DNI))
	s.metrics.AppointmentsScheduled.Inc()
	s.logger.Info().
		Str("patient", patient.DNI).
		Str("doctor", doctor.License).
		Str("specialty", specialty.Name).
		Time("at", req.Time).
		Msg("appointment scheduled")
	return apt, nil
}

// IssuePrescription records a prescription for a registered patient/doctor
// pair. The medication list must not be empty.
func (s *Service) IssuePrescription(ctx context.Context, req *model.IssuePrescriptionRequest) (rx *model.Prescription, err error) {
	defer func() { s.metrics.RecordOperation("issue_prescription", err) }()

	patient, err := s.patients.Get(ctx, req.PatientDNI)
	if err != nil {
		return nil, err
	}

	doctor, err := s.doctors.Get(ctx, req.DoctorLicense)
	if err != nil {
		return nil, err
	}

	rx, err = model.NewPrescription(patient, doctor, req.Medications)
	if err != nil {
		return nil, err
	}

	if err = s.prescriptions.Create(ctx, rx); err != nil {
		return nil, fmt.Errorf("failed to create prescription: %w", err)
	}

	s.history.Delete(prescriptionsKey(patient.DNI))
	s.metrics.PrescriptionsIssued.Inc()
	s.logger.Info().
		Str("patient", patient.DNI).
		Str("doctor", doctor.License).
		Int("medications", len(rx.Medications)).
		Msg("prescription issued")
	return rx, nil
}

// AppointmentsForPatient lists a patient's appointments in insertion order.
// An unknown patient yields an empty list, not an error.
func (s *Service) AppointmentsForPatient(ctx context.Context, dni string) ([]*model.Appointment, error) {
	key := appointmentsKey(dni)
	if cached, ok := s.history.Get(key); ok {
		s.metrics.HistoryCacheHits.Inc()
		return cached.([]*model.Appointment), nil
	}
	s.metrics.HistoryCacheMisses.Inc()

	appointments, err := s.appointments.ListByPatient(ctx, dni)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	s.history.Set(key, appointments, gocache.DefaultExpiration)
	return appointments, nil
}

// PrescriptionsForPatient lists a patient's prescriptions in insertion order.
func (s *Service) PrescriptionsForPatient(ctx context.Context, dni string) ([]*model.Prescription, error) {
	key := prescriptionsKey(dni)
	if cached, ok := s.history.Get(key); ok {
		s.metrics.HistoryCacheHits.Inc()
		return cached.([]*model.Prescription), nil
	}
	s.metrics.HistoryCacheMisses.Inc()

	prescriptions, err := s.prescriptions.ListByPatient(ctx, dni)
	if err != nil {
		return nil, fmt.Errorf("failed to list prescriptions: %w", err)
	}
	s.history.Set(key, prescriptions, gocache.DefaultExpiration)
	return prescriptions, nil
}

// History returns the combined clinical history for one patient.
func (s *Service) History(ctx context.Context, dni string) (*model.History, error) {
	appointments, err := s.AppointmentsForPatient(ctx, dni)
	if err != nil {
		return nil, err
	}
	prescriptions, err := s.PrescriptionsForPatient(ctx, dni)
	if err != nil {
		return nil, err
	}
	return &model.History{
		PatientDNI:    dni,
		Appointments:  appointments,
		Prescriptions: prescriptions,
	}, nil
}

// SpecialtyForDay returns the first specialty a doctor offers on day.
func (s *Service) SpecialtyForDay(ctx context.Context, license string, day model.Weekday) (*model.Specialty, error) {
	doctor, err := s.doctors.Get(ctx, license)
	if err != nil {
		return nil, err
	}
	return doctor.SpecialtyForDay(day)
}

func (s *Service) GetPatient(ctx context.Context, dni string) (*model.Patient, error) {
	return s.patients.Get(ctx, dni)
}

func (s *Service) GetDoctor(ctx context.Context, license string) (*model.Doctor, error) {
	return s.doctors.Get(ctx, license)
}

func (s *Service) ListPatients(ctx context.Context) ([]*model.Patient, error) {
	return s.patients.List(ctx)
}

func (s *Service) ListDoctors(ctx context.Context) ([]*model.Doctor, error) {
	return s.doctors.List(ctx)
}
