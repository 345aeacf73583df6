package rabbitmq

import (
	"encoding/json"
	"testing"
	"time"

	"cart-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	createdAt := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	body, err := Encode(domain.EventOrderCreated, domain.OrderCreatedEvent{
		OrderID:    7,
		MemberID:   1,
		TotalPrice: 21000,
		CreatedAt:  createdAt,
	})
	require.NoError(t, err)

	var decoded struct {
		Pattern string         `json:"pattern"`
		Data    map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.Equal(t, "order.created", decoded.Pattern)
	assert.Equal(t, float64(7), decoded.Data["orderId"])
	assert.Equal(t, float64(21000), decoded.Data["totalPrice"])
	assert.Equal(t, "2026-10-01T12:00:00Z", decoded.Data["createdAt"])
}

func TestEncode_Unmarshalable(t *testing.T) {
	_, err := Encode("order.created", make(chan int))
	assert.Error(t, err)
}
