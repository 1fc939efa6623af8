package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/jwalitptl/clinica/internal/model"
	"github.com/jwalitptl/clinica/internal/service/clinic"
)

// Handler drives the numbered console menu. It parses raw input, calls the
// registry and renders results; all domain rules live in the service.
type Handler struct {
	svc            *clinic.Service
	in             *bufio.Scanner
	out            io.Writer
	dateTimeLayout string
}

func NewHandler(svc *clinic.Service, in io.Reader, out io.Writer, dateTimeLayout string) *Handler {
	return &Handler{
		svc:            svc,
		in:             bufio.NewScanner(in),
		out:            out,
		dateTimeLayout: dateTimeLayout,
	}
}

// Run loops over the menu until the user quits or input ends.
func (h *Handler) Run(ctx context.Context) error {
	for {
		h.printMenu()
		choice, ok := h.prompt("Select an option: ")
		if !ok {
			return nil
		}

		switch choice {
		case "1":
			h.addPatient(ctx)
		case "2":
			h.addDoctor(ctx)
		case "3":
			h.addSpecialty(ctx)
		case "4":
			h.scheduleAppointment(ctx)
		case "5":
			h.issuePrescription(ctx)
		case "6":
			h.viewHistory(ctx)
		case "7":
			h.listPatients(ctx)
		case "8":
			h.listDoctors(ctx)
		case "0":
			fmt.Fprintln(h.out, "Leaving the system.")
			return nil
		default:
			fmt.Fprintln(h.out, "Invalid option.")
		}
	}
}

func (h *Handler) printMenu() {
	fmt.Fprintln(h.out)
	fmt.Fprintln(h.out, "--- Clinic Management System ---")
	fmt.Fprintln(h.out, "1. Add patient")
	fmt.Fprintln(h.out, "2. Add doctor")
	fmt.Fprintln(h.out, "3. Add specialty to doctor")
	fmt.Fprintln(h.out, "4. Schedule appointment")
	fmt.Fprintln(h.out, "5. Issue prescription")
	fmt.Fprintln(h.out, "6. View clinical history")
	fmt.Fprintln(h.out, "7. List patients")
	fmt.Fprintln(h.out, "8. List doctors")
	fmt.Fprintln(h.out, "0. Quit")
}

func (h *Handler) prompt(label string) (string, bool) {
	fmt.Fprint(h.out, label)
	if !h.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(h.in.Text()), true
}

func (h *Handler) addPatient(ctx context.Context) {
	dni, ok := h.prompt("Patient DNI: ")
	if !ok {
		return
	}
	firstName, ok := h.prompt("First name: ")
	if !ok {
		return
	}
	lastName, ok := h.prompt("Last name: ")
	if !ok {
		return
	}
	rawAge, ok := h.prompt("Age: ")
	if !ok {
		return
	}
	age, err := strconv.Atoi(rawAge)
	if err != nil {
		fmt.Fprintln(h.out, "Error: age must be a number.")
		return
	}

	patient, err := h.svc.RegisterPatient(ctx, &model.CreatePatientRequest{
		DNI:       dni,
		FirstName: firstName,
		LastName:  lastName,
		Age:       age,
	})
	if err != nil {
		h.renderError(err)
		return
	}
	fmt.Fprintf(h.out, "Patient %s registered.\n", patient.FullName())
}

func (h *Handler) addDoctor(ctx context.Context) {
	license, ok := h.prompt("Doctor license: ")
	if !ok {
		return
	}
	firstName, ok := h.prompt("First name: ")
	if !ok {
		return
	}
	lastName, ok := h.prompt("Last name: ")
	if !ok {
		return
	}

	doctor, err := h.svc.RegisterDoctor(ctx, &model.CreateDoctorRequest{
		License:   license,
		FirstName: firstName,
		LastName:  lastName,
	})
	if err != nil {
		h.renderError(err)
		return
	}
	fmt.Fprintf(h.out, "Doctor %s registered.\n", doctor.FullName())
}

func (h *Handler) addSpecialty(ctx context.Context) {
	license, ok := h.prompt("Doctor license: ")
	if !ok {
		return
	}
	name, ok := h.prompt("Specialty name: ")
	if !ok {
		return
	}
	rawDays, ok := h.prompt("Available days (comma separated, e.g. monday,wednesday): ")
	if !ok {
		return
	}
	days, err := ParseDays(rawDays)
	if err != nil {
		h.renderError(err)
		return
	}

	specialty, err := h.svc.AddSpecialtyToDoctor(ctx, license, &model.CreateSpecialtyRequest{
		Name: name,
		Days: days,
	})
	if err != nil {
		h.renderError(err)
		return
	}
	fmt.Fprintf(h.out, "Specialty %s added to doctor %s.\n", specialty.Name, license)
}

func (h *Handler) scheduleAppointment(ctx context.Context) {
	dni, ok := h.prompt("Patient DNI: ")
	if !ok {
		return
	}
	license, ok := h.prompt("Doctor license: ")
	if !ok {
		return
	}
	specialty, ok := h.prompt("Specialty: ")
	if !ok {
		return
	}
	rawTime, ok := h.prompt(fmt.Sprintf("Date and time (%s): ", h.dateTimeLayout))
	if !ok {
		return
	}
	at, err := time.Parse(h.dateTimeLayout, rawTime)
	if err != nil {
		fmt.Fprintf(h.out, "Error: date must match %s.\n", h.dateTimeLayout)
		return
	}

	apt, err := h.svc.ScheduleAppointment(ctx, &model.ScheduleAppointmentRequest{
		PatientDNI:    dni,
		DoctorLicense: license,
		SpecialtyName: specialty,
		Time:          at,
	})
	if err != nil {
		h.renderError(err)
		return
	}
	fmt.Fprintf(h.out, "Appointment scheduled for %s with Dr. %s (%s) at %s.\n",
		apt.Patient.FullName(), apt.Doctor.LastName, apt.Specialty.Name,
		apt.Time.Format(h.dateTimeLayout))
}

func (h *Handler) issuePrescription(ctx context.Context) {
	dni, ok := h.prompt("Patient DNI: ")
	if !ok {
		return
	}
	license, ok := h.prompt("Doctor license: ")
	if !ok {
		return
	}
	rawMeds, ok := h.prompt("Medications (comma separated): ")
	if !ok {
		return
	}

	rx, err := h.svc.IssuePrescription(ctx, &model.IssuePrescriptionRequest{
		PatientDNI:    dni,
		DoctorLicense: license,
		Medications:   ParseList(rawMeds),
	})
	if err != nil {
		h.renderError(err)
		return
	}
	fmt.Fprintf(h.out, "Prescription issued with %d medication(s).\n", len(rx.Medications))
}

func (h *Handler) viewHistory(ctx context.Context) {
	dni, ok := h.prompt("Patient DNI: ")
	if !ok {
		return
	}
	history, err := h.svc.History(ctx, dni)
	if err != nil {
		h.renderError(err)
		return
	}

	fmt.Fprintf(h.out, "History for %s:\n", history.PatientDNI)
	fmt.Fprintf(h.out, "  Appointments (%d):\n", len(history.Appointments))
	for _, apt := range history.Appointments {
		fmt.Fprintf(h.out, "    %s  Dr. %s  %s\n",
			apt.Time.Format(h.dateTimeLayout), apt.Doctor.LastName, apt.Specialty.Name)
	}
	fmt.Fprintf(h.out, "  Prescriptions (%d):\n", len(history.Prescriptions))
	for _, rx := range history.Prescriptions {
		fmt.Fprintf(h.out, "    Dr. %s: %s\n",
			rx.Doctor.LastName, strings.Join(rx.Medications, ", "))
	}
}

func (h *Handler) listPatients(ctx context.Context) {
	patients, err := h.svc.ListPatients(ctx)
	if err != nil {
		h.renderError(err)
		return
	}
	for _, p := range patients {
		fmt.Fprintf(h.out, "%s  %s (%d)\n", p.DNI, p.FullName(), p.Age)
	}
	fmt.Fprintf(h.out, "%d patient(s).\n", len(patients))
}

func (h *Handler) listDoctors(ctx context.Context) {
	doctors, err := h.svc.ListDoctors(ctx)
	if err != nil {
		h.renderError(err)
		return
	}
	for _, d := range doctors {
		names := make([]string, 0, len(d.Specialties))
		for _, sp := range d.Specialties {
			names = append(names, sp.Name)
		}
		fmt.Fprintf(h.out, "%s  Dr. %s [%s]\n", d.License, d.FullName(), strings.Join(names, ", "))
	}
	fmt.Fprintf(h.out, "%d doctor(s).\n", len(doctors))
}

func (h *Handler) renderError(err error) {
	switch {
	case errors.Is(err, model.ErrPatientAlreadyRegistered):
		fmt.Fprintln(h.out, "Error: that patient is already registered.")
	case errors.Is(err, model.ErrDoctorAlreadyRegistered):
		fmt.Fprintln(h.out, "Error: that doctor is already registered.")
	case errors.Is(err, model.ErrPatientNotFound):
		fmt.Fprintln(h.out, "Error: patient not found.")
	case errors.Is(err, model.ErrDoctorNotFound):
		fmt.Fprintln(h.out, "Error: doctor not found.")
	case errors.Is(err, model.ErrSpecialtyAlreadyPresent):
		fmt.Fprintln(h.out, "Error: the doctor already has that specialty.")
	case errors.Is(err, model.ErrInvalidSpecialty):
		fmt.Fprintln(h.out, "Error: invalid specialty or day.")
	case errors.Is(err, model.ErrSlotOccupied):
		fmt.Fprintln(h.out, "Error: that slot is already taken for this doctor.")
	case errors.Is(err, model.ErrInvalidAppointment):
		fmt.Fprintln(h.out, "Error: the doctor does not offer that specialty on that day.")
	case errors.Is(err, model.ErrInvalidPrescription):
		fmt.Fprintln(h.out, "Error: a prescription needs at least one medication.")
	case errors.Is(err, model.ErrInvalidArgument):
		fmt.Fprintln(h.out, "Error: all required fields must be filled in.")
	default:
		fmt.Fprintf(h.out, "Error: %v\n", err)
	}
}
