package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ProductionWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, "production", "info")

	l.WithField("story_id", "abc").Info("story deleted")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "story deleted", entry["msg"])
	assert.Equal(t, "abc", entry["story_id"])
	assert.Equal(t, "info", entry["level"])
}

func TestNew_DevelopmentWritesText(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, "development", "debug")

	l.Debug("hello")

	assert.Equal(t, logrus.DebugLevel, l.GetLevel())
	assert.True(t, strings.Contains(buf.String(), "msg=hello"), buf.String())
}

func TestNew_UnknownLevelDefaultsToInfo(t *testing.T) {
	l := NewWithWriter(&bytes.Buffer{}, "development", "loud")
	assert.Equal(t, logrus.InfoLevel, l.GetLevel())
}
