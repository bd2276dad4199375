package vehicle_test

import (
	"fmt"
	"testing"

	"fleetcore/internal/core/domain/model/vehicle"
	"fleetcore/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(vehicle.Unknown))
		assert.Equal(t, 1, int(vehicle.Available))
		assert.Equal(t, 2, int(vehicle.OnTrip))
		assert.Equal(t, 3, int(vehicle.InShop))
		assert.Equal(t, 4, int(vehicle.OutOfService))
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		validStatuses := []vehicle.Status{
			vehicle.Available,
			vehicle.OnTrip,
			vehicle.InShop,
			vehicle.OutOfService,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject Unknown status", func(t *testing.T) {
		err := vehicle.Unknown.Validate()

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Contains(t, err.Error(), "status is invalid")
	})

	t.Run("should reject out of range status values", func(t *testing.T) {
		for _, status := range []vehicle.Status{vehicle.Status(-1), vehicle.Status(5), vehicle.Status(100)} {
			err := status.Validate()

			require.Error(t, err)
			assert.Contains(t, err.Error(), fmt.Sprintf("%d is not a valid status", int(status)))
		}
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should return correct string for valid statuses", func(t *testing.T) {
		testCases := []struct {
			status   vehicle.Status
			expected string
		}{
			{vehicle.Available, "Available"},
			{vehicle.OnTrip, "OnTrip"},
			{vehicle.InShop, "InShop"},
			{vehicle.OutOfService, "OutOfService"},
		}

		for _, tc := range testCases {
			assert.Equal(t, tc.expected, tc.status.String())
		}
	})

	t.Run("should return Unknown for invalid values", func(t *testing.T) {
		assert.Equal(t, "Unknown", vehicle.Unknown.String())
		assert.Equal(t, "Unknown", vehicle.Status(42).String())
	})
}

func TestStatus_BeginTrip(t *testing.T) {
	t.Run("should transition Available to OnTrip", func(t *testing.T) {
		newStatus, err := vehicle.Available.BeginTrip()

		require.NoError(t, err)
		assert.Equal(t, vehicle.OnTrip, newStatus)
	})

	t.Run("should reject every non-Available status", func(t *testing.T) {
		for _, status := range []vehicle.Status{vehicle.OnTrip, vehicle.InShop, vehicle.OutOfService} {
			t.Run(fmt.Sprintf("from %s", status.String()), func(t *testing.T) {
				_, err := status.BeginTrip()

				require.Error(t, err)
				assert.IsType(t, &errs.PreconditionFailedError{}, err)
				assert.Contains(t, err.Error(), "must be Available to start a trip")
			})
		}
	})
}

func TestStatus_ReleaseFromTrip(t *testing.T) {
	t.Run("should transition OnTrip back to Available", func(t *testing.T) {
		newStatus, err := vehicle.OnTrip.ReleaseFromTrip()

		require.NoError(t, err)
		assert.Equal(t, vehicle.Available, newStatus)
	})

	t.Run("should reject release when not on a trip", func(t *testing.T) {
		for _, status := range []vehicle.Status{vehicle.Available, vehicle.InShop, vehicle.OutOfService} {
			_, err := status.ReleaseFromTrip()

			require.Error(t, err)
			assert.IsType(t, &errs.PreconditionFailedError{}, err)
		}
	})
}

func TestStatus_EnterShop(t *testing.T) {
	t.Run("should transition Available to InShop", func(t *testing.T) {
		newStatus, err := vehicle.Available.EnterShop()

		require.NoError(t, err)
		assert.Equal(t, vehicle.InShop, newStatus)
	})

	t.Run("should allow OutOfService vehicle into the shop", func(t *testing.T) {
		newStatus, err := vehicle.OutOfService.EnterShop()

		require.NoError(t, err)
		assert.Equal(t, vehicle.InShop, newStatus)
	})

	t.Run("should reject a vehicle already claimed", func(t *testing.T) {
		for _, status := range []vehicle.Status{vehicle.OnTrip, vehicle.InShop} {
			t.Run(fmt.Sprintf("from %s", status.String()), func(t *testing.T) {
				_, err := status.EnterShop()

				require.Error(t, err)
				assert.IsType(t, &errs.PreconditionFailedError{}, err)
				assert.Contains(t, err.Error(), "cannot enter the shop")
			})
		}
	})
}

func TestStatus_LeaveShop(t *testing.T) {
	t.Run("should transition InShop back to Available", func(t *testing.T) {
		newStatus, err := vehicle.InShop.LeaveShop()

		require.NoError(t, err)
		assert.Equal(t, vehicle.Available, newStatus)
	})

	t.Run("should reject leaving when not in the shop", func(t *testing.T) {
		for _, status := range []vehicle.Status{vehicle.Available, vehicle.OnTrip, vehicle.OutOfService} {
			_, err := status.LeaveShop()

			require.Error(t, err)
			assert.IsType(t, &errs.PreconditionFailedError{}, err)
		}
	})
}

func TestStatus_Retire(t *testing.T) {
	t.Run("should transition Available to OutOfService", func(t *testing.T) {
		newStatus, err := vehicle.Available.Retire()

		require.NoError(t, err)
		assert.Equal(t, vehicle.OutOfService, newStatus)
	})

	t.Run("should reject retiring a busy vehicle", func(t *testing.T) {
		for _, status := range []vehicle.Status{vehicle.OnTrip, vehicle.InShop, vehicle.OutOfService} {
			_, err := status.Retire()

			require.Error(t, err)
			assert.IsType(t, &errs.PreconditionFailedError{}, err)
			assert.Contains(t, err.Error(), "must be Available to be retired")
		}
	})
}

func TestStatus_ValidateCanHaveTrip(t *testing.T) {
	t.Run("should require a trip when OnTrip", func(t *testing.T) {
		require.NoError(t, vehicle.OnTrip.ValidateCanHaveTrip(true))

		err := vehicle.OnTrip.ValidateCanHaveTrip(false)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "requires a current trip")
	})

	t.Run("should forbid a trip in every other status", func(t *testing.T) {
		for _, status := range []vehicle.Status{vehicle.Available, vehicle.InShop, vehicle.OutOfService} {
			require.NoError(t, status.ValidateCanHaveTrip(false))

			err := status.ValidateCanHaveTrip(true)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "not a valid status to have a current trip")
		}
	})
}
