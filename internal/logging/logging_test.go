package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Levels(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New("warn", "text", &buf)
	require.NoError(t, err)

	logger.Info("Cart is full. Cannot add more items.")
	assert.Empty(t, buf.String())

	logger.Warn("Price adjusted to 0.01 (must be between 0.01 and 999.99)")
	assert.Contains(t, buf.String(), "level=warning")
	assert.Contains(t, buf.String(), "Price adjusted to 0.01")
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New("info", "JSON", &buf)
	require.NoError(t, err)

	logger.WithField("product_id", 4).Info("removed")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "removed", entry["msg"])
	assert.Equal(t, float64(4), entry["product_id"])
	assert.Equal(t, "info", entry["level"])
}

func TestNew_Invalid(t *testing.T) {
	_, err := New("loud", "text", &bytes.Buffer{})
	assert.ErrorContains(t, err, "invalid log level")

	_, err = New("info", "xml", &bytes.Buffer{})
	assert.ErrorContains(t, err, `invalid log format "xml"`)
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
	logger.Warn("dropped")
}
