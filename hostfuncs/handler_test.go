package hostfuncs

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJSONHandler_RoundTrip(t *testing.T) {
	handler := NewJSONHandler(echoHandler)

	resp, err := handler(context.Background(), []byte(`{"input":"ping"}`))
	require.NoError(t, err)

	var decoded echoResponse
	require.NoError(t, json.Unmarshal(resp, &decoded))
	assert.Equal(t, "ping", decoded.Output)
}

func TestNewJSONHandler_MalformedRequest(t *testing.T) {
	handler := NewJSONHandler(echoHandler)

	_, err := handler(context.Background(), []byte(`{not json`))
	assert.ErrorContains(t, err, "unmarshal")
}
