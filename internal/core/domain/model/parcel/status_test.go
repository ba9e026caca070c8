package parcel_test

import (
	"fmt"
	"testing"

	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allValidStatuses() []parcel.Status {
	return []parcel.Status{
		parcel.Created,
		parcel.Assigned,
		parcel.PickedUp,
		parcel.InTransit,
		parcel.OutForDelivery,
		parcel.Delivered,
		parcel.Cancelled,
		parcel.Returned,
	}
}

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(parcel.Unknown))
		assert.Equal(t, 1, int(parcel.Created))
		assert.Equal(t, 2, int(parcel.Assigned))
		assert.Equal(t, 3, int(parcel.PickedUp))
		assert.Equal(t, 4, int(parcel.InTransit))
		assert.Equal(t, 5, int(parcel.OutForDelivery))
		assert.Equal(t, 6, int(parcel.Delivered))
		assert.Equal(t, 7, int(parcel.Cancelled))
		assert.Equal(t, 8, int(parcel.Returned))
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate all valid statuses", func(t *testing.T) {
		for _, status := range allValidStatuses() {
			t.Run(status.String(), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject Unknown and out-of-range values", func(t *testing.T) {
		invalid := []parcel.Status{
			parcel.Unknown,
			parcel.Status(-1),
			parcel.Status(9),
			parcel.Status(100),
		}

		for _, status := range invalid {
			t.Run(fmt.Sprintf("value %d", int(status)), func(t *testing.T) {
				err := status.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
			})
		}
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should return wire-format names", func(t *testing.T) {
		testCases := []struct {
			status   parcel.Status
			expected string
		}{
			{parcel.Created, "CREATED"},
			{parcel.Assigned, "ASSIGNED"},
			{parcel.PickedUp, "PICKED_UP"},
			{parcel.InTransit, "IN_TRANSIT"},
			{parcel.OutForDelivery, "OUT_FOR_DELIVERY"},
			{parcel.Delivered, "DELIVERED"},
			{parcel.Cancelled, "CANCELLED"},
			{parcel.Returned, "RETURNED"},
		}

		for _, tc := range testCases {
			assert.Equal(t, tc.expected, tc.status.String())
		}
	})

	t.Run("should return UNKNOWN for invalid values", func(t *testing.T) {
		assert.Equal(t, "UNKNOWN", parcel.Unknown.String())
		assert.Equal(t, "UNKNOWN", parcel.Status(42).String())
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("should parse every valid wire name", func(t *testing.T) {
		for _, status := range allValidStatuses() {
			parsed, err := parcel.StatusFromString(status.String())

			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		for _, s := range []string{"", "UNKNOWN", "created", "SHIPPED", "IN TRANSIT"} {
			_, err := parcel.StatusFromString(s)

			require.Error(t, err, "expected error for %q", s)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	t.Run("should mark exactly Delivered, Cancelled, Returned as terminal", func(t *testing.T) {
		terminal := map[parcel.Status]bool{
			parcel.Delivered: true,
			parcel.Cancelled: true,
			parcel.Returned:  true,
		}

		for _, status := range allValidStatuses() {
			assert.Equal(t, terminal[status], status.IsTerminal(), "status %s", status)
		}
	})
}

func TestStatus_MovesParcel(t *testing.T) {
	t.Run("should mark physical-movement statuses", func(t *testing.T) {
		moving := map[parcel.Status]bool{
			parcel.PickedUp:       true,
			parcel.InTransit:      true,
			parcel.OutForDelivery: true,
			parcel.Delivered:      true,
		}

		for _, status := range allValidStatuses() {
			assert.Equal(t, moving[status], status.MovesParcel(), "status %s", status)
		}
	})
}

func TestStatus_TransitionTo(t *testing.T) {
	allowed := map[parcel.Status][]parcel.Status{
		parcel.Created:        {parcel.Assigned, parcel.Cancelled},
		parcel.Assigned:       {parcel.PickedUp, parcel.Cancelled},
		parcel.PickedUp:       {parcel.InTransit, parcel.Returned},
		parcel.InTransit:      {parcel.OutForDelivery, parcel.Returned},
		parcel.OutForDelivery: {parcel.Delivered, parcel.Returned},
	}

	isAllowed := func(from, to parcel.Status) bool {
		for _, s := range allowed[from] {
			if s == to {
				return true
			}
		}
		return false
	}

	t.Run("should accept every pair in the transition table", func(t *testing.T) {
		for from, targets := range allowed {
			for _, to := range targets {
				t.Run(fmt.Sprintf("%s to %s", from, to), func(t *testing.T) {
					next, err := from.TransitionTo(to)

					require.NoError(t, err)
					assert.Equal(t, to, next)
				})
			}
		}
	})

	t.Run("should reject every pair outside the table", func(t *testing.T) {
		for _, from := range allValidStatuses() {
			for _, to := range allValidStatuses() {
				if isAllowed(from, to) {
					continue
				}
				t.Run(fmt.Sprintf("%s to %s", from, to), func(t *testing.T) {
					_, err := from.TransitionTo(to)

					require.Error(t, err)
					require.ErrorIs(t, err, errs.ErrInvalidTransition)

					var transitionErr *errs.InvalidTransitionError
					require.ErrorAs(t, err, &transitionErr)
					assert.Equal(t, from.String(), transitionErr.Current)
					assert.Equal(t, to.String(), transitionErr.Requested)
				})
			}
		}
	})

	t.Run("should reject same-state transitions", func(t *testing.T) {
		for _, status := range allValidStatuses() {
			_, err := status.TransitionTo(status)

			require.Error(t, err, "same-state transition for %s must be rejected", status)
			require.ErrorIs(t, err, errs.ErrInvalidTransition)
		}
	})

	t.Run("should reject any transition out of a terminal status", func(t *testing.T) {
		for _, from := range []parcel.Status{parcel.Delivered, parcel.Cancelled, parcel.Returned} {
			for _, to := range allValidStatuses() {
				_, err := from.TransitionTo(to)

				require.Error(t, err, "%s to %s must be rejected", from, to)
			}
		}
	})

	t.Run("should reject DELIVERED to IN_TRANSIT regardless of anything else", func(t *testing.T) {
		_, err := parcel.Delivered.TransitionTo(parcel.InTransit)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Contains(t, err.Error(), "DELIVERED")
		assert.Contains(t, err.Error(), "IN_TRANSIT")
	})

	t.Run("should reject invalid requested status before table lookup", func(t *testing.T) {
		_, err := parcel.Created.TransitionTo(parcel.Unknown)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
