package model

import (
	"fmt"
	"time"
)

// Doctor carries an ordered list of specialties; no two share a name.
// Identity is the license number.
type Doctor struct {
	License     string       `json:"license"`
	FirstName   string       `json:"first_name"`
	LastName    string       `json:"last_name"`
	Specialties []*Specialty `json:"specialties"`
	CreatedAt   time.Time    `json:"created_at"`
}

type CreateDoctorRequest struct {
	License   string `json:"license" validate:"required"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
}

func NewDoctor(license, firstName, lastName string, specialties []*Specialty) (*Doctor, error) {
	if license == "" || firstName == "" || lastName == "" {
		return nil, fmt.Errorf("%w: license, first name and last name are required", ErrInvalidArgument)
	}
	d := &Doctor{
		License:   license,
		FirstName: firstName,
		LastName:  lastName,
		CreatedAt: time.Now(),
	}
	for _, sp := range specialties {
		if err := d.AddSpecialty(sp); err != nil {
			return nil, err
		}
	}
	return d, nil
}

func (d *Doctor) FullName() string {
	return d.FirstName + " " + d.LastName
}

// AddSpecialty appends sp, rejecting a second specialty with the same name.
func (d *Doctor) AddSpecialty(sp *Specialty) error {
	for _, existing := range d.Specialties {
		if existing.Equal(sp) {
			return fmt.Errorf("%w: %s", ErrSpecialtyAlreadyPresent, sp.Name)
		}
	}
	d.Specialties = append(d.Specialties, sp)
	return nil
}

// SpecialtyNamed returns the first specialty matching name, case-sensitive.
func (d *Doctor) SpecialtyNamed(name string) (*Specialty, bool) {
	for _, sp := range d.Specialties {
		if sp.Name == name {
			return sp, true
		}
	}
	return nil, false
}

// SpecialtyForDay returns the first specialty the doctor offers on day.
func (d *Doctor) SpecialtyForDay(day Weekday) (*Specialty, error) {
	for _, sp := range d.Specialties {
		if sp.AvailableOn(day) {
			return sp, nil
		}
	}
	return nil, fmt.Errorf("%w: doctor %s has no specialty on %s", ErrInvalidSpecialty, d.License, day)
}
