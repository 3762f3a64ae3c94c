package jobs

import (
	"context"
	"time"

	"coldrent-backend/internal/logger"
)

// MarkExpiredRentals flips ACTIVE rentals past their end date to EXPIRED and
// returns the equipment to the available pool. Each contract goes through the
// entity state machine so the transition guards stay authoritative.
func (jr *JobRunner) MarkExpiredRentals() {
	jr.runWithRecovery("MarkExpiredRentals", func() {
		ctx := context.Background()

		rentals, err := jr.store.RentalRepository.FindActiveRentals(ctx)
		if err != nil {
			logger.Error("Failed to list active rentals", "error", err)
			return
		}

		count := 0
		for i := range rentals {
			rental := &rentals[i]
			if !rental.HasExpired() {
				continue
			}
			if err := rental.MarkExpired(); err != nil {
				logger.Error("Failed to expire rental", "rental_id", rental.ID, "error", err)
				continue
			}
			if err := jr.store.RentalRepository.Save(ctx, rental); err != nil {
				logger.Error("Failed to save expired rental", "rental_id", rental.ID, "error", err)
				continue
			}

			eq, err := jr.store.EquipmentRepository.FindByID(ctx, rental.EquipmentID)
			if err == nil {
				if err := eq.ReturnFromRental(); err == nil {
					if err := jr.store.EquipmentRepository.Save(ctx, eq); err != nil {
						logger.Error("Failed to release equipment", "equipment_id", eq.ID, "error", err)
					}
				}
			}
			count++
			logger.Debug("Marked rental as expired",
				"rental_id", rental.ID,
				"equipment_id", rental.EquipmentID,
				"end_date", rental.EndDate.Format("2006-01-02"))
		}

		logger.Info("Marked rentals as expired", "count", count)
	})
}

// SendExpiryReminders emails clients whose ACTIVE contract ends within the
// configured reminder window.
func (jr *JobRunner) SendExpiryReminders() {
	jr.runWithRecovery("SendExpiryReminders", func() {
		ctx := context.Background()
		window := time.Duration(jr.config.Scheduler.ExpiryReminderDays) * 24 * time.Hour

		rentals, err := jr.store.RentalRepository.FindExpiringRentals(ctx, window)
		if err != nil {
			logger.Error("Failed to list expiring rentals", "error", err)
			return
		}

		sent := 0
		for i := range rentals {
			rental := &rentals[i]
			client, err := jr.store.CompanyRepository.FindByID(ctx, rental.ClientCompanyID)
			if err != nil {
				logger.Warn("Failed to load client for reminder", "rental_id", rental.ID, "error", err)
				continue
			}
			eq, err := jr.store.EquipmentRepository.FindByID(ctx, rental.EquipmentID)
			if err != nil {
				logger.Warn("Failed to load equipment for reminder", "rental_id", rental.ID, "error", err)
				continue
			}

			daysLeft := rental.DaysUntilExpiry()
			if err := jr.emailSvc.SendRentalExpiryReminder(ctx, client.Email, client.Name, eq.Type, daysLeft); err != nil {
				logger.Warn("Failed to send expiry reminder", "rental_id", rental.ID, "error", err)
				continue
			}
			sent++
		}

		logger.Info("Sent rental expiry reminders", "count", sent)
	})
}
