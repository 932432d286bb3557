package logger_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/partnerhub/iis-host/pkg/logger"
)

func TestNewReturnsSharedInstance(t *testing.T) {
	assert.Same(t, logger.New(), logger.New())
}

func TestSetLevelName(t *testing.T) {
	log := logger.New()
	original := log.GetLevel()
	defer log.SetLevel(original)

	require.NoError(t, log.SetLevelName("debug"))
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())
	assert.True(t, log.IsDebugEnabled())

	require.NoError(t, log.SetLevelName(" warn "))
	assert.Equal(t, logrus.WarnLevel, log.GetLevel())
	assert.False(t, log.IsDebugEnabled())

	// empty keeps the current level
	require.NoError(t, log.SetLevelName(""))
	assert.Equal(t, logrus.WarnLevel, log.GetLevel())

	assert.Error(t, log.SetLevelName("loud"))
}

func TestRequestEntryCarriesID(t *testing.T) {
	entry := logger.New().Request("abc-123")
	assert.Equal(t, "abc-123", entry.Data["request_id"])
}

func TestAvailabilityLines(t *testing.T) {
	log := logger.New()
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	log.Available("root %s is available", "/srv/repo")
	log.Unavailable("root %s is not available", "/srv/repo")

	out := buf.String()
	assert.Contains(t, out, "INFO")
	assert.Contains(t, out, "root /srv/repo is available")
	assert.Contains(t, out, "WARN")
	assert.Contains(t, out, "root /srv/repo is not available")
}
