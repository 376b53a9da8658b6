package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/mess-menu/backend/config"
)

func TestNewProductionLoggerIsJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewWithOutput(buf, config.Production, "warn")

	logger.Info("dropped")
	logger.WithField("date", "2023-10-28").Warn("kept")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "kept", entry["msg"])
	assert.Equal(t, "2023-10-28", entry["date"])
}

func TestNewFallsBackToInfo(t *testing.T) {
	logger := NewWithOutput(&bytes.Buffer{}, config.Development, "nonsense")
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
	_, ok := logger.Formatter.(*logrus.TextFormatter)
	assert.True(t, ok)
}
