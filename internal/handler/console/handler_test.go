package console

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/clinica/internal/repository/memory"
	"github.com/jwalitptl/clinica/internal/service/clinic"
	"github.com/jwalitptl/clinica/pkg/metrics"
)

func runScript(t *testing.T, lines ...string) string {
	t.Helper()

	svc := clinic.NewService(
		memory.NewPatientRepository(),
		memory.NewDoctorRepository(),
		memory.NewAppointmentRepository(),
		memory.NewPrescriptionRepository(),
		metrics.NewMetrics(prometheus.NewRegistry(), "clinica_test"),
		zerolog.Nop(),
		time.Minute,
	)

	var out bytes.Buffer
	h := NewHandler(svc, strings.NewReader(strings.Join(lines, "\n")+"\n"), &out, "2006-01-02 15:04")
	require.NoError(t, h.Run(context.Background()))
	return out.String()
}

func TestConsoleFullFlow(t *testing.T) {
	out := runScript(t,
		"1", "12345678", "Juan", "Pérez", "30",
		"2", "M123", "Ana", "Ruiz",
		"3", "M123", "Cardiología", "monday,wednesday,friday",
		"4", "12345678", "M123", "Cardiología", "2025-06-09 10:30",
		"4", "12345678", "M123", "Cardiología", "2025-06-09 10:30",
		"5", "12345678", "M123", "Paracetamol",
		"6", "12345678",
		"0",
	)

	assert.Contains(t, out, "Patient Juan Pérez registered.")
	assert.Contains(t, out, "Doctor Ana Ruiz registered.")
	assert.Contains(t, out, "Specialty Cardiología added to doctor M123.")
	assert.Contains(t, out, "Appointment scheduled for Juan Pérez")
	assert.Contains(t, out, "Error: that slot is already taken for this doctor.")
	assert.Contains(t, out, "Prescription issued with 1 medication(s).")
	assert.Contains(t, out, "Appointments (1):")
	assert.Contains(t, out, "Prescriptions (1):")
	assert.Contains(t, out, "Leaving the system.")
}

func TestConsoleRejectsBadInput(t *testing.T) {
	out := runScript(t,
		"1", "12345678", "Juan", "Pérez", "thirty",
		"4", "12345678", "M123", "Cardiología", "not-a-date",
		"9",
		"0",
	)

	assert.Contains(t, out, "Error: age must be a number.")
	assert.Contains(t, out, "Error: date must match 2006-01-02 15:04.")
	assert.Contains(t, out, "Invalid option.")
}

func TestConsoleStopsOnEOF(t *testing.T) {
	out := runScript(t, "7")
	assert.Contains(t, out, "0 patient(s).")
}
