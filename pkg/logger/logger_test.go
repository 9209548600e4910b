package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	logger := New()
	assert.NotNil(t, logger)
	assert.NotNil(t, logger.info)
	assert.NotNil(t, logger.error)
	assert.NotNil(t, logger.warn)
	assert.NotNil(t, logger.debug)
}

func TestLogger_Routing(t *testing.T) {
	var out, errOut bytes.Buffer
	logger := NewWithWriter(&out, &errOut)

	logger.Info("creator %s loaded", "luna-artistry")
	logger.Warn("cache miss for %s", "/api/creators")
	logger.Error("Failed to fetch tiers: %v", "boom")

	assert.Contains(t, out.String(), "INFO: creator luna-artistry loaded")
	assert.Contains(t, errOut.String(), "WARN: cache miss for /api/creators")
	assert.Contains(t, errOut.String(), "ERROR: Failed to fetch tiers: boom")
	assert.NotContains(t, out.String(), "ERROR")
}

func TestLogger_Debug(t *testing.T) {
	var out bytes.Buffer
	logger := NewWithWriter(&out, &out)

	logger.SetVerbose(false)
	logger.Debug("hidden %d", 1)
	assert.Empty(t, out.String())

	logger.SetVerbose(true)
	logger.Debug("shown %d", 2)
	assert.Contains(t, out.String(), "DEBUG: shown 2")
}
