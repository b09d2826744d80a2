package appointment_test

import (
	"testing"
	"time"

	"dealership/internal/core/domain/model/appointment"
	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var slotDate = time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)

func newTestAppointment(t *testing.T) *appointment.TestDriveAppointment {
	t.Helper()
	a, err := appointment.NewTestDriveAppointment(kernel.ID(8), kernel.ID(21), slotDate, "14:30")
	require.NoError(t, err)
	return a
}

func TestNewTestDriveAppointment(t *testing.T) {
	t.Run("should start SCHEDULED", func(t *testing.T) {
		a := newTestAppointment(t)

		assert.Equal(t, appointment.Scheduled, a.Status())
		assert.Equal(t, "14:30", a.TimeOfAppointment())
		require.NoError(t, a.EnsureDeletable())
	})

	t.Run("should reject malformed time slots", func(t *testing.T) {
		for _, slot := range []string{"", "2pm", "25:00", "14:60", "9:30"} {
			_, err := appointment.NewTestDriveAppointment(kernel.ID(8), kernel.ID(21), slotDate, slot)
			require.Error(t, err, "slot %q must be rejected", slot)
		}
	})

	t.Run("should reject missing ids and date", func(t *testing.T) {
		_, err := appointment.NewTestDriveAppointment(kernel.ID(0), kernel.ID(21), slotDate, "14:30")
		require.Error(t, err)

		_, err = appointment.NewTestDriveAppointment(kernel.ID(8), kernel.ID(21), time.Time{}, "14:30")
		require.Error(t, err)
	})
}

func TestTestDriveAppointment_TransitionTo(t *testing.T) {
	t.Run("should close as ARRIVED or CANCELLED", func(t *testing.T) {
		arrived := newTestAppointment(t)
		require.NoError(t, arrived.TransitionTo(appointment.Arrived))
		assert.True(t, arrived.Status().IsTerminal())

		cancelled := newTestAppointment(t)
		require.NoError(t, cancelled.TransitionTo(appointment.Cancelled))
		assert.True(t, cancelled.Status().IsTerminal())
	})

	t.Run("should refuse moves out of a terminal state", func(t *testing.T) {
		a := newTestAppointment(t)
		require.NoError(t, a.TransitionTo(appointment.Arrived))

		require.ErrorIs(t, a.TransitionTo(appointment.Cancelled), errs.ErrInvalidTransition)
		assert.Equal(t, appointment.Arrived, a.Status())
	})
}

func TestTestDriveAppointment_EditWindow(t *testing.T) {
	t.Run("should reschedule while SCHEDULED", func(t *testing.T) {
		a := newTestAppointment(t)
		newDate := slotDate.Add(7 * 24 * time.Hour)

		require.NoError(t, a.Update(kernel.ID(22), newDate, "09:00"))

		assert.Equal(t, kernel.ID(22), a.VehicleID())
		assert.Equal(t, newDate, a.DateOfAppointment())
		assert.Equal(t, "09:00", a.TimeOfAppointment())
	})

	t.Run("should freeze edits and deletion once closed", func(t *testing.T) {
		for _, target := range []appointment.Status{appointment.Arrived, appointment.Cancelled} {
			a := newTestAppointment(t)
			require.NoError(t, a.TransitionTo(target))

			require.ErrorIs(t, a.Update(kernel.ID(22), slotDate, "09:00"), errs.ErrGuardViolation)
			require.ErrorIs(t, a.EnsureDeletable(), errs.ErrGuardViolation)
		}
	})
}
