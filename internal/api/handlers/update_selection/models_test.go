package update_selection

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, body string) UpdateSelectionRequest {
	t.Helper()
	var req UpdateSelectionRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	return req
}

func TestToSelectionUpdate_TriState(t *testing.T) {
	t.Run("absent field is not applied", func(t *testing.T) {
		req := decode(t, `{}`)
		update := req.ToSelectionUpdate()

		assert.False(t, update.VehicleTypeID.Set)
		assert.False(t, update.PackageID.Set)
		assert.Nil(t, update.AddOnIDs)
		assert.Nil(t, update.Address)
	})

	t.Run("null clears the field", func(t *testing.T) {
		req := decode(t, `{"vehicleTypeId": null}`)
		update := req.ToSelectionUpdate()

		require.True(t, update.VehicleTypeID.Set)
		assert.Nil(t, update.VehicleTypeID.Value)
	})

	t.Run("value sets the field", func(t *testing.T) {
		req := decode(t, `{"vehicleTypeId": 3, "addOnIds": [100, 101]}`)
		update := req.ToSelectionUpdate()

		require.True(t, update.VehicleTypeID.Set)
		require.NotNil(t, update.VehicleTypeID.Value)
		assert.Equal(t, int64(3), *update.VehicleTypeID.Value)
		require.NotNil(t, update.AddOnIDs)
		assert.Equal(t, []int64{100, 101}, *update.AddOnIDs)
	})

	t.Run("empty add-on list differs from absent", func(t *testing.T) {
		req := decode(t, `{"addOnIds": []}`)
		update := req.ToSelectionUpdate()

		require.NotNil(t, update.AddOnIDs)
		assert.Empty(t, *update.AddOnIDs)
	})

	t.Run("contact fields pass through", func(t *testing.T) {
		req := decode(t, `{"firstName": "Иван", "email": "ivan@example.com"}`)
		update := req.ToSelectionUpdate()

		require.NotNil(t, update.FirstName)
		assert.Equal(t, "Иван", *update.FirstName)
		require.NotNil(t, update.Email)
		assert.Equal(t, "ivan@example.com", *update.Email)
		assert.Nil(t, update.LastName)
	})
}
