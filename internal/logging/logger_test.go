package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"net/http/httptest"
	"os"
	"testing"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() {
		SetOutput(os.Stderr)
		_ = SetLevel("info")
	})
	return &buf
}

func TestLoggerWritesJSONWhenNotATerminal(t *testing.T) {
	buf := captureOutput(t)

	BuildLogger().WithError(errors.New("boom")).Info("embedding", "method", "LSB1")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "embedding", entry["msg"])
	assert.Equal(t, "LSB1", entry["method"])
	assert.Equal(t, "boom", entry["error"])
}

func TestSetLevel(t *testing.T) {
	buf := captureOutput(t)

	require.NoError(t, SetLevel("warn"))
	logger := BuildLogger()
	logger.Info("hidden")
	assert.Zero(t, buf.Len())

	require.NoError(t, SetLevel("debug"))
	logger.Debug("shown")
	assert.Contains(t, buf.String(), "shown")

	assert.Error(t, SetLevel("verbose"))
}

func TestBuildLoggerFromCtx(t *testing.T) {
	buf := captureOutput(t)
	gin.SetMode(gin.TestMode)

	ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
	ctx.Request = httptest.NewRequest("POST", "/api/v1/embed", nil)
	BuildLoggerFromCtx(ctx).Info("request")

	assert.Contains(t, buf.String(), `"path":"/api/v1/embed"`)
}
