package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/avGenie/flexihire/internal/app/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRecord(t *testing.T) {
	event := entity.StatusEvent{
		EventID:       "e1",
		OrderID:       "o1",
		Kind:          entity.KindOrder,
		From:          entity.StatusPending,
		To:            entity.StatusPaymentConfirmed,
		PaymentStatus: entity.PaymentPaid,
		At:            time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC),
	}

	record, err := createRecord("flexihire.order-status", event)
	require.NoError(t, err)

	assert.Equal(t, "flexihire.order-status", record.Topic)
	assert.Equal(t, []byte("o1"), record.Key)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(record.Value, &decoded))
	assert.Equal(t, "o1", decoded["order_id"])
	assert.Equal(t, "pending", decoded["from"])
	assert.Equal(t, "payment_confirmed", decoded["to"])
	assert.Equal(t, "paid", decoded["payment_status"])
	assert.Equal(t, "2024-03-01T12:00:00Z", decoded["at"])
	assert.NotContains(t, decoded, "actor_id")
}

func TestNop(t *testing.T) {
	assert.NoError(t, Nop{}.Publish(context.Background(), entity.StatusEvent{}))
}
