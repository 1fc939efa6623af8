package main

import (
	"context"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"

	"github.com/jwalitptl/clinica/internal/config"
	"github.com/jwalitptl/clinica/internal/handler/console"
	"github.com/jwalitptl/clinica/internal/repository/memory"
	clinicService "github.com/jwalitptl/clinica/internal/service/clinic"
	"github.com/jwalitptl/clinica/pkg/logger"
	"github.com/jwalitptl/clinica/pkg/metrics"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	appLogger := logger.New(&logger.Config{
		Level:  cfg.LogLevel,
		Output: os.Stderr,
	})

	// Initialize repositories
	patientRepo := memory.NewPatientRepository()
	doctorRepo := memory.NewDoctorRepository()
	appointmentRepo := memory.NewAppointmentRepository()
	prescriptionRepo := memory.NewPrescriptionRepository()

	// Initialize metrics and the registry service
	m := metrics.NewMetrics(prometheus.DefaultRegisterer, "clinica")
	clinicSvc := clinicService.NewService(
		patientRepo,
		doctorRepo,
		appointmentRepo,
		prescriptionRepo,
		m,
		appLogger,
		cfg.HistoryCacheTTL,
	)

	// Run the console menu
	h := console.NewHandler(clinicSvc, os.Stdin, os.Stdout, cfg.DateTimeLayout)
	if err := h.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("console session failed")
	}
}
