package servicelog_test

import (
	"testing"
	"time"

	"fleetcore/internal/core/domain/model/kernel"
	"fleetcore/internal/core/domain/model/servicelog"
	"fleetcore/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServiceLog(t *testing.T) *servicelog.ServiceLog {
	t.Helper()
	s, err := servicelog.NewServiceLog(
		kernel.NewUUID(), "SRV-000007", kernel.NewUUID(),
		"brake pads worn", time.Now().UTC().Add(48*time.Hour), 350,
	)
	require.NoError(t, err)
	return s
}

func TestNewServiceLog(t *testing.T) {
	validID := kernel.NewUUID()
	vehicleID := kernel.NewUUID()
	scheduled := time.Now().UTC().Add(48 * time.Hour)

	t.Run("should create valid service log with all valid parameters", func(t *testing.T) {
		s, err := servicelog.NewServiceLog(validID, "SRV-000007", vehicleID, "brake pads worn", scheduled, 350)

		require.NoError(t, err)
		assert.NotNil(t, s)
		require.NoError(t, s.Validate())
		assert.True(t, s.ID().IsEqual(validID))
		assert.Equal(t, "SRV-000007", s.Number())
		assert.True(t, s.VehicleID().IsEqual(vehicleID))
		assert.Equal(t, "brake pads worn", s.Issue())
		assert.Equal(t, scheduled, s.ScheduledDate())
		assert.InDelta(t, 350.0, s.EstimatedCost(), 0.001)
		assert.Equal(t, servicelog.New, s.Status())
		assert.Nil(t, s.StartedAt())
		assert.Nil(t, s.CompletedAt())
		assert.Zero(t, s.Cost())
		assert.Equal(t, 1, s.Version())
	})

	t.Run("should fail with empty number", func(t *testing.T) {
		s, err := servicelog.NewServiceLog(validID, "", vehicleID, "brake pads worn", scheduled, 350)

		require.Error(t, err)
		assert.Nil(t, s)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with empty issue", func(t *testing.T) {
		s, err := servicelog.NewServiceLog(validID, "SRV-000007", vehicleID, "", scheduled, 350)

		require.Error(t, err)
		assert.Nil(t, s)
		assert.Contains(t, err.Error(), "issue")
	})

	t.Run("should fail with negative estimated cost", func(t *testing.T) {
		s, err := servicelog.NewServiceLog(validID, "SRV-000007", vehicleID, "brake pads worn", scheduled, -1)

		require.Error(t, err)
		assert.Nil(t, s)
		assert.Contains(t, err.Error(), "cost")
	})

	t.Run("should fail with invalid vehicle ID", func(t *testing.T) {
		var invalidID kernel.UUID

		s, err := servicelog.NewServiceLog(validID, "SRV-000007", invalidID, "brake pads worn", scheduled, 350)

		require.Error(t, err)
		assert.Nil(t, s)
	})
}

func TestRestoreServiceLog(t *testing.T) {
	now := time.Now().UTC()
	started := now.Add(-2 * time.Hour)
	completed := now.Add(-1 * time.Hour)

	t.Run("should restore a service log with full persisted state", func(t *testing.T) {
		s, err := servicelog.RestoreServiceLog(
			kernel.NewUUID(), "SRV-000007", kernel.NewUUID(), "brake pads worn",
			now.Add(-3*time.Hour), &started, &completed, 350, 420.5, "replaced both sides", "",
			servicelog.Completed, 4,
		)

		require.NoError(t, err)
		require.NoError(t, s.Validate())
		assert.Equal(t, servicelog.Completed, s.Status())
		assert.InDelta(t, 420.5, s.Cost(), 0.001)
		assert.Equal(t, "replaced both sides", s.Notes())
		assert.Equal(t, 4, s.Version())
	})

	t.Run("should reject an invalid status", func(t *testing.T) {
		s, err := servicelog.RestoreServiceLog(
			kernel.NewUUID(), "SRV-000007", kernel.NewUUID(), "brake pads worn",
			now, nil, nil, 350, 0, "", "", servicelog.Unknown, 1,
		)

		require.Error(t, err)
		assert.Nil(t, s)
	})
}

func TestServiceLog_Validate(t *testing.T) {
	t.Run("should fail validation for nil service log", func(t *testing.T) {
		var s *servicelog.ServiceLog

		require.Equal(t, servicelog.ErrServiceLogIsNotConstructed, s.Validate())
	})

	t.Run("should fail validation for zero value service log", func(t *testing.T) {
		var s servicelog.ServiceLog

		require.Equal(t, servicelog.ErrServiceLogIsNotConstructed, s.Validate())
	})
}

func TestServiceLog_Start(t *testing.T) {
	t.Run("should start a new service and stamp the start time", func(t *testing.T) {
		s := newTestServiceLog(t)
		now := time.Now().UTC()

		err := s.Start(now)

		require.NoError(t, err)
		assert.Equal(t, servicelog.InProgress, s.Status())
		require.NotNil(t, s.StartedAt())
		assert.Equal(t, now, *s.StartedAt())
	})

	t.Run("should reject starting twice", func(t *testing.T) {
		s := newTestServiceLog(t)
		require.NoError(t, s.Start(time.Now().UTC()))

		err := s.Start(time.Now().UTC())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrPreconditionFailed)
	})
}

func TestServiceLog_Complete(t *testing.T) {
	t.Run("should complete straight from New", func(t *testing.T) {
		s := newTestServiceLog(t)
		now := time.Now().UTC()

		err := s.Complete(now, 420.5, "replaced both sides")

		require.NoError(t, err)
		assert.Equal(t, servicelog.Completed, s.Status())
		require.NotNil(t, s.CompletedAt())
		assert.Equal(t, now, *s.CompletedAt())
		assert.InDelta(t, 420.5, s.Cost(), 0.001)
		assert.Equal(t, "replaced both sides", s.Notes())
	})

	t.Run("should complete from InProgress", func(t *testing.T) {
		s := newTestServiceLog(t)
		require.NoError(t, s.Start(time.Now().UTC()))

		require.NoError(t, s.Complete(time.Now().UTC(), 400, ""))
		assert.Equal(t, servicelog.Completed, s.Status())
	})

	t.Run("should reject a negative cost", func(t *testing.T) {
		s := newTestServiceLog(t)

		err := s.Complete(time.Now().UTC(), -10, "")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, servicelog.New, s.Status())
	})

	t.Run("should reject completing a terminal log", func(t *testing.T) {
		s := newTestServiceLog(t)
		require.NoError(t, s.Cancel("duplicate entry"))

		err := s.Complete(time.Now().UTC(), 100, "")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrPreconditionFailed)
	})
}

func TestServiceLog_Cancel(t *testing.T) {
	t.Run("should cancel from New and record the reason", func(t *testing.T) {
		s := newTestServiceLog(t)

		err := s.Cancel("duplicate entry")

		require.NoError(t, err)
		assert.Equal(t, servicelog.Cancelled, s.Status())
		assert.Equal(t, "duplicate entry", s.CancelReason())
	})

	t.Run("should cancel from InProgress", func(t *testing.T) {
		s := newTestServiceLog(t)
		require.NoError(t, s.Start(time.Now().UTC()))

		require.NoError(t, s.Cancel("parts unavailable"))
		assert.Equal(t, servicelog.Cancelled, s.Status())
	})

	t.Run("should reject cancelling a terminal log", func(t *testing.T) {
		s := newTestServiceLog(t)
		require.NoError(t, s.Complete(time.Now().UTC(), 100, ""))

		err := s.Cancel("too late")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrPreconditionFailed)
	})
}

func TestServiceLog_UpdateDetails(t *testing.T) {
	t.Run("should update a non-terminal log", func(t *testing.T) {
		s := newTestServiceLog(t)
		newScheduled := time.Now().UTC().Add(72 * time.Hour)

		err := s.UpdateDetails("brake pads and discs worn", newScheduled, 500)

		require.NoError(t, err)
		assert.Equal(t, "brake pads and discs worn", s.Issue())
		assert.Equal(t, newScheduled, s.ScheduledDate())
		assert.InDelta(t, 500.0, s.EstimatedCost(), 0.001)
	})

	t.Run("should reject updates to a terminal log", func(t *testing.T) {
		s := newTestServiceLog(t)
		require.NoError(t, s.Cancel("duplicate entry"))

		err := s.UpdateDetails("anything", time.Now().UTC(), 100)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrPreconditionFailed)
	})
}

func TestStatus_ValidateCanDelete(t *testing.T) {
	require.NoError(t, servicelog.New.ValidateCanDelete())

	for _, status := range []servicelog.Status{servicelog.InProgress, servicelog.Completed, servicelog.Cancelled} {
		err := status.ValidateCanDelete()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrPreconditionFailed)
	}
}
