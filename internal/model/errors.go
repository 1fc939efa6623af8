package model

import "errors"

// Registry error taxonomy. Callers match with errors.Is; messages wrapped
// around these carry the offending identifier.
var (
	ErrPatientAlreadyRegistered = errors.New("patient already registered")
	ErrDoctorAlreadyRegistered  = errors.New("doctor already registered")
	ErrPatientNotFound          = errors.New("patient not found")
	ErrDoctorNotFound           = errors.New("doctor not found")
	ErrSpecialtyAlreadyPresent  = errors.New("specialty already present")
	ErrInvalidSpecialty         = errors.New("invalid specialty")
	ErrSlotOccupied             = errors.New("slot occupied")
	ErrInvalidAppointment       = errors.New("invalid appointment")
	ErrInvalidPrescription      = errors.New("invalid prescription")
	ErrInvalidArgument          = errors.New("invalid argument")
)
