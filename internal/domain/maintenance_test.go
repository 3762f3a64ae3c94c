package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validMaintenanceParams(t *testing.T) NewMaintenanceParams {
	t.Helper()
	return NewMaintenanceParams{
		Title:             "Quarterly compressor service",
		Type:              MaintenanceTypePreventive,
		Category:          "REFRIGERATION",
		ScheduledDate:     time.Now().AddDate(0, 0, 7),
		EquipmentID:       "eq-1",
		ProviderCompanyID: "provider-1",
	}
}

func newScheduled(t *testing.T) *Maintenance {
	t.Helper()
	m, err := NewMaintenance(validMaintenanceParams(t))
	assert.NoError(t, err)
	return m
}

func TestNewMaintenance(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		m := newScheduled(t)
		assert.NotEmpty(t, m.ID)
		assert.Equal(t, MaintenanceStatusScheduled, m.Status)
	})

	t.Run("Invalid Type", func(t *testing.T) {
		p := validMaintenanceParams(t)
		p.Type = "ROUTINE"
		_, err := NewMaintenance(p)
		assert.ErrorContains(t, err, "invalid maintenance type")
	})

	t.Run("Missing Required Fields", func(t *testing.T) {
		p := validMaintenanceParams(t)
		p.ScheduledDate = time.Time{}
		_, err := NewMaintenance(p)
		assert.ErrorContains(t, err, "scheduled date")

		p = validMaintenanceParams(t)
		p.EquipmentID = ""
		_, err = NewMaintenance(p)
		assert.ErrorContains(t, err, "equipment id")
	})

	t.Run("Non Positive Duration", func(t *testing.T) {
		p := validMaintenanceParams(t)
		zero := 0.0
		p.EstimatedDurationHours = &zero
		_, err := NewMaintenance(p)
		assert.ErrorContains(t, err, "duration")
	})

	t.Run("Negative Estimated Cost", func(t *testing.T) {
		p := validMaintenanceParams(t)
		cost := -50.0
		p.EstimatedCost = &cost
		_, err := NewMaintenance(p)
		assert.ErrorContains(t, err, "cost")
	})
}

func TestMaintenance_Lifecycle(t *testing.T) {
	t.Run("Start Stamps Actual Start", func(t *testing.T) {
		m := newScheduled(t)
		assert.NoError(t, m.Start())
		assert.Equal(t, MaintenanceStatusInProgress, m.Status)
		assert.NotNil(t, m.ActualStartTime)
	})

	t.Run("Complete From Scheduled Fails", func(t *testing.T) {
		m := newScheduled(t)
		err := m.Complete("replaced compressor", 500, 300, 200)
		assert.ErrorIs(t, err, ErrInvalidTransition)
		assert.Equal(t, MaintenanceStatusScheduled, m.Status)
	})

	t.Run("Complete Records Work And Costs", func(t *testing.T) {
		m := newScheduled(t)
		assert.NoError(t, m.Start())
		assert.NoError(t, m.Complete("replaced compressor", 500, 300, 200))
		assert.Equal(t, MaintenanceStatusCompleted, m.Status)
		assert.NotNil(t, m.ActualEndTime)
		assert.Equal(t, "replaced compressor", m.WorkPerformed)
		assert.Equal(t, 500.0, *m.ActualCost)
	})

	t.Run("Complete Rejects Negative Costs", func(t *testing.T) {
		m := newScheduled(t)
		assert.NoError(t, m.Start())
		assert.Error(t, m.Complete("work", -1, 0, 0))
	})

	t.Run("Preventive Completion Schedules Next Occurrence", func(t *testing.T) {
		m := newScheduled(t)
		scheduled := m.ScheduledDate
		assert.NoError(t, m.Start())
		assert.NoError(t, m.Complete("routine check", 100, 0, 100))
		assert.NotNil(t, m.NextScheduledDate)
		assert.Equal(t, scheduled.AddDate(0, 3, 0), *m.NextScheduledDate)
	})

	t.Run("Corrective Completion Schedules Nothing", func(t *testing.T) {
		p := validMaintenanceParams(t)
		p.Type = MaintenanceTypeCorrective
		m, err := NewMaintenance(p)
		assert.NoError(t, err)
		assert.NoError(t, m.Start())
		assert.NoError(t, m.Complete("fixed leak", 100, 50, 50))
		assert.Nil(t, m.NextScheduledDate)
	})
}

func TestMaintenance_Cancel(t *testing.T) {
	t.Run("From Scheduled And In Progress", func(t *testing.T) {
		m := newScheduled(t)
		assert.NoError(t, m.Cancel("client request"))
		assert.Equal(t, MaintenanceStatusCancelled, m.Status)
		assert.Contains(t, m.Findings, "client request")

		m = newScheduled(t)
		assert.NoError(t, m.Start())
		assert.NoError(t, m.Cancel("parts unavailable"))
		assert.Equal(t, MaintenanceStatusCancelled, m.Status)
	})

	t.Run("Completed Blocks Cancel", func(t *testing.T) {
		m := newScheduled(t)
		assert.NoError(t, m.Start())
		assert.NoError(t, m.Complete("done", 100, 0, 100))
		assert.ErrorIs(t, m.Cancel("too late"), ErrInvalidTransition)
	})
}

func TestMaintenance_Postpone(t *testing.T) {
	t.Run("Keeps Scheduled Status With Audit Note", func(t *testing.T) {
		m := newScheduled(t)
		oldDate := m.ScheduledDate
		newDate := oldDate.AddDate(0, 0, 14)

		assert.NoError(t, m.Postpone(newDate, "technician unavailable"))
		assert.Equal(t, MaintenanceStatusScheduled, m.Status)
		assert.Equal(t, newDate, m.ScheduledDate)
		assert.Contains(t, m.Findings, "Postponed")
		assert.Contains(t, m.Findings, "technician unavailable")
		assert.Contains(t, m.Findings, oldDate.Format("2006-01-02"))
	})

	t.Run("Future Dates Only", func(t *testing.T) {
		m := newScheduled(t)
		assert.Error(t, m.Postpone(time.Now().AddDate(0, 0, -1), "backdated"))
	})

	t.Run("Only From Scheduled", func(t *testing.T) {
		m := newScheduled(t)
		assert.NoError(t, m.Start())
		err := m.Postpone(time.Now().AddDate(0, 0, 7), "nope")
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})
}

func TestMaintenance_Reschedule(t *testing.T) {
	t.Run("Resets In Progress Work", func(t *testing.T) {
		m := newScheduled(t)
		assert.NoError(t, m.Start())

		newDate := time.Now().AddDate(0, 0, 10)
		assert.NoError(t, m.Reschedule(newDate))
		assert.Equal(t, MaintenanceStatusScheduled, m.Status)
		assert.Equal(t, newDate, m.ScheduledDate)
		assert.Nil(t, m.ActualStartTime)
	})

	t.Run("Cancelled Stays Cancelled", func(t *testing.T) {
		m := newScheduled(t)
		assert.NoError(t, m.Cancel("x"))
		err := m.Reschedule(time.Now().AddDate(0, 0, 10))
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})
}

func TestMaintenance_RateQuality(t *testing.T) {
	m := newScheduled(t)
	assert.ErrorIs(t, m.RateQuality(5), ErrInvalidTransition)

	assert.NoError(t, m.Start())
	assert.NoError(t, m.Complete("done", 100, 0, 100))

	assert.Error(t, m.RateQuality(0))
	assert.Error(t, m.RateQuality(6))
	assert.NoError(t, m.RateQuality(4))
	assert.Equal(t, 4, *m.QualityRating)
}

func TestMaintenance_DueAndOverdue(t *testing.T) {
	m := newScheduled(t)
	assert.False(t, m.IsDue())
	assert.False(t, m.IsOverdue())

	m.ScheduledDate = time.Now().AddDate(0, 0, -2)
	assert.True(t, m.IsDue())
	assert.True(t, m.IsOverdue())

	assert.NoError(t, m.Cancel("moot"))
	assert.False(t, m.IsDue())
	assert.False(t, m.IsOverdue())
}

func TestMaintenance_Metrics(t *testing.T) {
	t.Run("Actual Duration", func(t *testing.T) {
		m := newScheduled(t)
		assert.Nil(t, m.CalculateActualDuration())

		start := time.Now().Add(-150 * time.Minute)
		end := time.Now()
		m.ActualStartTime = &start
		m.ActualEndTime = &end
		assert.InDelta(t, 2.5, *m.CalculateActualDuration(), 0.01)
	})

	t.Run("On Time", func(t *testing.T) {
		m := newScheduled(t)
		assert.Nil(t, m.IsOnTime())

		m.Status = MaintenanceStatusCompleted
		end := m.ScheduledDate.Add(2 * time.Hour)
		m.ActualEndTime = &end
		assert.True(t, *m.IsOnTime(), "within the default one-day window")

		late := m.ScheduledDate.Add(48 * time.Hour)
		m.ActualEndTime = &late
		assert.False(t, *m.IsOnTime())

		hours := 72.0
		m.EstimatedDurationHours = &hours
		assert.True(t, *m.IsOnTime(), "estimate widens the window")
	})

	t.Run("On Budget", func(t *testing.T) {
		m := newScheduled(t)
		assert.Nil(t, m.IsOnBudget())

		m.Status = MaintenanceStatusCompleted
		estimated, actual := 500.0, 450.0
		m.EstimatedCost = &estimated
		m.ActualCost = &actual
		assert.True(t, *m.IsOnBudget())

		over := 600.0
		m.ActualCost = &over
		assert.False(t, *m.IsOnBudget())
	})
}

func TestMaintenance_ScheduleNextPreventive(t *testing.T) {
	m := newScheduled(t)
	next, err := m.ScheduleNextPreventiveMaintenance()
	assert.NoError(t, err)
	assert.Equal(t, m.ScheduledDate.AddDate(0, 3, 0), next)

	p := validMaintenanceParams(t)
	p.Type = MaintenanceTypeEmergency
	em, _ := NewMaintenance(p)
	_, err = em.ScheduleNextPreventiveMaintenance()
	assert.Error(t, err)
}
