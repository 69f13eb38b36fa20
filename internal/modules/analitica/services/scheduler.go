package services

import (
	"fmt"
	"log"

	"github.com/LuisGuzman07/backend-smart/internal/modules/analitica/models"
	"github.com/robfig/cron/v3"
)

// Daily catalog reports generated without user interaction.
var scheduledReports = []struct {
	tipoReporte string
	schedule    string
}{
	{tipoReporte: "productos_stock_bajo", schedule: "0 6 * * *"},
	{tipoReporte: "ventas_mes", schedule: "30 6 * * *"},
}

const scheduledReportUser = "sistema"

// ReportScheduler generates catalog reports on a cron schedule
type ReportScheduler struct {
	cron    *cron.Cron
	reports *ReportService
}

// NewReportScheduler creates a new scheduler
func NewReportScheduler(reports *ReportService) *ReportScheduler {
	return &ReportScheduler{
		cron:    cron.New(),
		reports: reports,
	}
}

// Start registers the scheduled reports and starts the cron loop
func (s *ReportScheduler) Start() error {
	log.Println("⏰ Starting report scheduler...")

	for _, entry := range scheduledReports {
		entry := entry
		_, err := s.cron.AddFunc(entry.schedule, func() {
			s.generate(entry.tipoReporte)
		})
		if err != nil {
			return fmt.Errorf("failed to schedule report %s: %w", entry.tipoReporte, err)
		}
		log.Printf("   ✅ Scheduled report %s: %s", entry.tipoReporte, entry.schedule)
	}

	s.cron.Start()
	log.Println("✅ Report scheduler started")
	return nil
}

// Stop stops the scheduler
func (s *ReportScheduler) Stop() {
	log.Println("⏰ Stopping report scheduler...")
	s.cron.Stop()
	log.Println("✅ Report scheduler stopped")
}

func (s *ReportScheduler) generate(tipoReporte string) {
	reporte, err := s.reports.GenerateEstatico(models.GenerarEstaticoRequest{
		TipoReporte: tipoReporte,
		Formato:     models.FormatoPDF,
		Usuario:     scheduledReportUser,
	})
	if err != nil {
		log.Printf("❌ Scheduled report %s failed: %v", tipoReporte, err)
		return
	}
	log.Printf("✅ Scheduled report %s generated: %s (%d registros)", tipoReporte, reporte.Archivo, reporte.RegistrosProcesados)
}
