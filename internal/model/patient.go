package model

import (
	"fmt"
	"time"
)

// Patient is immutable after construction; identity is the national ID (DNI).
type Patient struct {
	DNI       string    `json:"dni"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Age       int       `json:"age"`
	CreatedAt time.Time `json:"created_at"`
}

type CreatePatientRequest struct {
	DNI       string `json:"dni" validate:"required"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Age       int    `json:"age" validate:"gte=0,lte=150"`
}

func NewPatient(dni, firstName, lastName string, age int) (*Patient, error) {
	if dni == "" || firstName == "" || lastName == "" {
		return nil, fmt.Errorf("%w: dni, first name and last name are required", ErrInvalidArgument)
	}
	return &Patient{
		DNI:       dni,
		FirstName: firstName,
		LastName:  lastName,
		Age:       age,
		CreatedAt: time.Now(),
	}, nil
}

func (p *Patient) FullName() string {
	return p.FirstName + " " + p.LastName
}
