package parcel_test

import (
	"testing"

	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoute(t *testing.T) {
	t.Run("should create route with no progress", func(t *testing.T) {
		route, err := parcel.NewRoute([]string{"Istanbul", "Ankara", "Izmir"})

		require.NoError(t, err)
		require.NoError(t, route.Validate())
		assert.Equal(t, parcel.NoRouteProgress, route.CurrentIndex())
		assert.Equal(t, []string{"Istanbul", "Ankara", "Izmir"}, route.Cities())
		assert.False(t, route.IsEmpty())
	})

	t.Run("should allow empty route", func(t *testing.T) {
		route, err := parcel.NewRoute(nil)

		require.NoError(t, err)
		assert.True(t, route.IsEmpty())
		assert.Equal(t, parcel.NoRouteProgress, route.CurrentIndex())
	})

	t.Run("should reject blank city names", func(t *testing.T) {
		_, err := parcel.NewRoute([]string{"Istanbul", ""})

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should copy the input slice", func(t *testing.T) {
		cities := []string{"Istanbul", "Ankara"}
		route, err := parcel.NewRoute(cities)
		require.NoError(t, err)

		cities[0] = "mutated"

		assert.Equal(t, []string{"Istanbul", "Ankara"}, route.Cities())
	})
}

func TestRestoreRoute(t *testing.T) {
	t.Run("should restore valid progress", func(t *testing.T) {
		route, err := parcel.RestoreRoute([]string{"Istanbul", "Ankara"}, 1)

		require.NoError(t, err)
		assert.Equal(t, 1, route.CurrentIndex())

		city, ok := route.CurrentCity()
		require.True(t, ok)
		assert.Equal(t, "Ankara", city)
	})

	t.Run("should reject index beyond route length", func(t *testing.T) {
		_, err := parcel.RestoreRoute([]string{"Istanbul", "Ankara"}, 2)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject index below NoRouteProgress", func(t *testing.T) {
		_, err := parcel.RestoreRoute([]string{"Istanbul"}, -2)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject any progress on an empty route", func(t *testing.T) {
		_, err := parcel.RestoreRoute(nil, 0)

		require.Error(t, err)
	})
}

func TestRoute_Advance(t *testing.T) {
	t.Run("should advance one city at a time and clamp at the last", func(t *testing.T) {
		route, err := parcel.NewRoute([]string{"Istanbul", "Ankara"})
		require.NoError(t, err)

		route = route.Advance()
		assert.Equal(t, 0, route.CurrentIndex())

		route = route.Advance()
		assert.Equal(t, 1, route.CurrentIndex())

		// Clamped: further advances stay on the last city.
		route = route.Advance()
		assert.Equal(t, 1, route.CurrentIndex())

		city, ok := route.CurrentCity()
		require.True(t, ok)
		assert.Equal(t, "Ankara", city)
	})

	t.Run("should never advance an empty route", func(t *testing.T) {
		route, err := parcel.NewRoute(nil)
		require.NoError(t, err)

		for range 5 {
			route = route.Advance()
		}

		assert.Equal(t, parcel.NoRouteProgress, route.CurrentIndex())
		_, ok := route.CurrentCity()
		assert.False(t, ok)
	})

	t.Run("index should be monotonically non-decreasing", func(t *testing.T) {
		route, err := parcel.NewRoute([]string{"A", "B", "C"})
		require.NoError(t, err)

		previous := route.CurrentIndex()
		for range 10 {
			route = route.Advance()
			assert.GreaterOrEqual(t, route.CurrentIndex(), previous)
			assert.Less(t, route.CurrentIndex(), 3)
			previous = route.CurrentIndex()
		}
	})
}

func TestRoute_CurrentCity(t *testing.T) {
	t.Run("should report no city before departure", func(t *testing.T) {
		route, err := parcel.NewRoute([]string{"Istanbul"})
		require.NoError(t, err)

		_, ok := route.CurrentCity()
		assert.False(t, ok)
	})
}

func TestRoute_Validate(t *testing.T) {
	t.Run("should reject zero value", func(t *testing.T) {
		var route parcel.Route

		err := route.Validate()

		require.Error(t, err)
		assert.Equal(t, parcel.ErrRouteIsNotConstructed, err)
	})
}

func TestRoute_IsEqual(t *testing.T) {
	t.Run("should compare cities and progress", func(t *testing.T) {
		a, err := parcel.NewRoute([]string{"Istanbul", "Ankara"})
		require.NoError(t, err)
		b, err := parcel.NewRoute([]string{"Istanbul", "Ankara"})
		require.NoError(t, err)

		assert.True(t, a.IsEqual(b))
		assert.False(t, a.IsEqual(b.Advance()))
	})
}
