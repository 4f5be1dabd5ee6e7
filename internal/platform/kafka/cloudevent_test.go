package kafka

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloudEvent_RoundTrip(t *testing.T) {
	type payload struct {
		OrderID string `json:"order_id"`
		Total   string `json:"total"`
	}

	ce, err := NewCloudEvent("service-storefront", "order.placed", payload{OrderID: "o-1", Total: "80.00"})
	require.NoError(t, err)
	assert.NotEmpty(t, ce.ID)
	assert.Equal(t, "1.0", ce.SpecVersion)

	raw, err := json.Marshal(ce)
	require.NoError(t, err)

	parsed, err := ParseCloudEvent(raw)
	require.NoError(t, err)
	assert.Equal(t, ce.ID, parsed.ID)
	assert.Equal(t, "order.placed", parsed.Type)

	var got payload
	require.NoError(t, parsed.ParseData(&got))
	assert.Equal(t, "80.00", got.Total)
}

func TestParseCloudEvent_Rejects(t *testing.T) {
	_, err := ParseCloudEvent([]byte("not json"))
	assert.Error(t, err)

	_, err = ParseCloudEvent([]byte(`{"id":"x"}`))
	assert.Error(t, err)
}
