package jobs

import (
	"context"
	"time"

	"coldrent-backend/internal/logger"
)

// SendMaintenanceDueReminders emails the provider for every scheduled
// maintenance whose date has arrived without the work being started.
func (jr *JobRunner) SendMaintenanceDueReminders() {
	jr.runWithRecovery("SendMaintenanceDueReminders", func() {
		ctx := context.Background()

		// Look back a week so a reminder missed on a down day still goes out.
		records, err := jr.store.MaintenanceRepository.FindByDateRange(ctx,
			time.Now().AddDate(0, 0, -7), time.Now())
		if err != nil {
			logger.Error("Failed to list due maintenance", "error", err)
			return
		}

		sent := 0
		for i := range records {
			m := &records[i]
			if !m.IsDue() || m.ProviderCompanyID == "" {
				continue
			}
			provider, err := jr.store.CompanyRepository.FindByID(ctx, m.ProviderCompanyID)
			if err != nil {
				logger.Warn("Failed to load provider for due reminder", "maintenance_id", m.ID, "error", err)
				continue
			}
			if err := jr.emailSvc.SendMaintenanceDueReminder(ctx, provider.Email, m.Title, m.ScheduledDate); err != nil {
				logger.Warn("Failed to send maintenance due reminder", "maintenance_id", m.ID, "error", err)
				continue
			}
			sent++
		}

		logger.Info("Sent maintenance due reminders", "count", sent)
	})
}
