package entities_test

import (
	"testing"
	"time"

	"github.com/msa-lab/order-service/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrderStatus(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    entities.OrderStatus
		wantErr bool
	}{
		{name: "created", input: "CREATED", want: entities.StatusCreated},
		{name: "updated", input: "UPDATED", want: entities.StatusUpdated},
		{name: "shipped", input: "SHIPPED", want: entities.StatusShipped},
		{name: "cancelled", input: "CANCELLED", want: entities.StatusCancelled},
		{name: "unknown value", input: "SHIPPING", wantErr: true},
		{name: "lowercase is rejected", input: "created", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := entities.ParseOrderStatus(tc.input)

			if tc.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, entities.ErrInvalidStatus)
				assert.Contains(t, err.Error(), tc.input)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestOrder_Deleted(t *testing.T) {
	order := entities.Order{ID: 1}
	assert.False(t, order.Deleted())

	now := time.Now()
	order.DeletedAt = &now
	assert.True(t, order.Deleted())
}

func TestOrder_GobRoundTrip(t *testing.T) {
	now := time.Now().Truncate(time.Second)
	order := entities.Order{
		ID:        42,
		ItemIDs:   []int64{10, 10, 20},
		Status:    entities.StatusShipped,
		CreatedAt: now,
		CreatedBy: "user-1",
		UpdatedAt: now,
		UpdatedBy: "user-2",
	}

	data, err := order.Marshal()
	require.NoError(t, err)

	var got entities.Order
	require.NoError(t, got.Unmarshal(data))
	assert.Equal(t, order, got)
}
