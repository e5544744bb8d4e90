package hostfuncs

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scriptguard-dev/scriptguard/internal/testutil"
)

type echoRequest struct {
	Input string `json:"input"`
}

type echoResponse struct {
	Output string `json:"output"`
}

func echoHandler(_ context.Context, req echoRequest) echoResponse {
	return echoResponse{Output: req.Input}
}

func TestRegistry_InvokeTypedHandler(t *testing.T) {
	registry, err := NewRegistry(WithHandler("echo", echoHandler))
	require.NoError(t, err)

	resp, err := registry.Invoke(context.Background(), "echo", []byte(`{"input":"hello"}`))
	require.NoError(t, err)

	testutil.AssertJSONEqual(t, `{"output":"hello"}`, string(resp))
}

func TestRegistry_UnknownHandlerReturnsErrorJSON(t *testing.T) {
	registry, err := NewRegistry()
	require.NoError(t, err)

	resp, err := registry.Invoke(context.Background(), "missing", nil)
	require.NoError(t, err)

	var errResp ErrorResponse
	require.NoError(t, json.Unmarshal(resp, &errResp))
	assert.Equal(t, "NOT_FOUND", errResp.Error)
	assert.Contains(t, errResp.Message, "missing")
}

func TestRegistry_DuplicateNameFails(t *testing.T) {
	_, err := NewRegistry(
		WithHandler("echo", echoHandler),
		WithHandler("echo", echoHandler),
	)
	assert.ErrorContains(t, err, "duplicate handler name")
}

func TestRegistry_EmptyNameFails(t *testing.T) {
	_, err := NewRegistry(WithHandler("", echoHandler))
	assert.ErrorContains(t, err, "cannot be empty")
}

func TestRegistry_NamesSorted(t *testing.T) {
	registry, err := NewRegistry(
		WithHandler("zeta", echoHandler),
		WithHandler("alpha", echoHandler),
		WithByteHandler("mid", func(context.Context, []byte) ([]byte, error) { return nil, nil }),
	)
	require.NoError(t, err)

	assert.Equal(t, []string{"alpha", "mid", "zeta"}, registry.Names())
	assert.True(t, registry.Has("alpha"))
	assert.False(t, registry.Has("omega"))
}
