package model

import "fmt"

// Specialty is a named practice area with the weekdays it is offered on.
// Two specialties are the same specialty when their names match, whatever
// their day lists say.
type Specialty struct {
	Name string    `json:"name"`
	Days []Weekday `json:"days"`
}

type CreateSpecialtyRequest struct {
	Name string    `json:"name" validate:"required"`
	Days []Weekday `json:"days" validate:"required,min=1"`
}

func NewSpecialty(name string, days []Weekday) (*Specialty, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidSpecialty)
	}
	for _, d := range days {
		if !d.Valid() {
			return nil, fmt.Errorf("%w: day %d outside 0-6", ErrInvalidSpecialty, d)
		}
	}
	return &Specialty{Name: name, Days: append([]Weekday(nil), days...)}, nil
}

func (s *Specialty) Equal(other *Specialty) bool {
	return other != nil && s.Name == other.Name
}

func (s *Specialty) AvailableOn(day Weekday) bool {
	for _, d := range s.Days {
		if d == day {
			return true
		}
	}
	return false
}

// AddDay appends a day if absent. Re-adding an existing day is a no-op.
func (s *Specialty) AddDay(day Weekday) error {
	if !day.Valid() {
		return fmt.Errorf("%w: day %d outside 0-6", ErrInvalidSpecialty, day)
	}
	if !s.AvailableOn(day) {
		s.Days = append(s.Days, day)
	}
	return nil
}
