package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSpecialty(t *testing.T) {
	sp, err := NewSpecialty("Cardiología", []Weekday{Monday, Wednesday, Friday})
	require.NoError(t, err)
	assert.Equal(t, "Cardiología", sp.Name)
	assert.Len(t, sp.Days, 3)

	_, err = NewSpecialty("", []Weekday{Monday})
	assert.ErrorIs(t, err, ErrInvalidSpecialty)

	_, err = NewSpecialty("Pediatría", []Weekday{Weekday(7)})
	assert.ErrorIs(t, err, ErrInvalidSpecialty)

	_, err = NewSpecialty("Pediatría", []Weekday{Weekday(-1)})
	assert.ErrorIs(t, err, ErrInvalidSpecialty)
}

func TestSpecialtyEqualByNameOnly(t *testing.T) {
	a, err := NewSpecialty("Cardiología", []Weekday{Monday})
	require.NoError(t, err)
	b, err := NewSpecialty("Cardiología", []Weekday{Friday, Saturday})
	require.NoError(t, err)
	c, err := NewSpecialty("Pediatría", []Weekday{Monday})
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(nil))
}

func TestSpecialtyAvailableOn(t *testing.T) {
	sp, err := NewSpecialty("Cardiología", []Weekday{Monday, Wednesday})
	require.NoError(t, err)

	assert.True(t, sp.AvailableOn(Monday))
	assert.False(t, sp.AvailableOn(Tuesday))
}

func TestSpecialtyAddDay(t *testing.T) {
	sp, err := NewSpecialty("Cardiología", []Weekday{Monday})
	require.NoError(t, err)

	require.NoError(t, sp.AddDay(Friday))
	assert.True(t, sp.AvailableOn(Friday))

	// adding an existing day is a no-op
	require.NoError(t, sp.AddDay(Friday))
	assert.Len(t, sp.Days, 2)

	assert.ErrorIs(t, sp.AddDay(Weekday(9)), ErrInvalidSpecialty)
}

func TestWeekdayOf(t *testing.T) {
	// 2025-06-09 is a Monday, 2025-06-15 a Sunday
	monday := time.Date(2025, 6, 9, 10, 0, 0, 0, time.UTC)
	sunday := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, Monday, WeekdayOf(monday))
	assert.Equal(t, Sunday, WeekdayOf(sunday))
	assert.Equal(t, "Monday", WeekdayOf(monday).String())
}
