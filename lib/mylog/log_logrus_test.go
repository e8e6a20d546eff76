package mylog

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/MarcGrol/fairywrenstore/lib/mycontext"
)

func TestLogger(t *testing.T) {
	t.Run("json output carries component, label and trace", func(t *testing.T) {
		// setup
		buf := &bytes.Buffer{}
		b := newBackend("json", "debug")
		b.SetOutput(buf)
		sut := logrusLogger{componentName: "shipping", entry: b.WithField("component", "shipping")}
		c := context.WithValue(context.Background(), mycontext.CtxTraceContext{}, "trace-123")

		// when
		sut.Log(c, "cs_123", SeverityWarn, "Cannot ship to %s", "ZZ")

		// then
		record := map[string]any{}
		assert.NoError(t, json.Unmarshal(buf.Bytes(), &record))
		assert.Equal(t, "shipping", record["component"])
		assert.Equal(t, "cs_123", record["label"])
		assert.Equal(t, "trace-123", record["trace"])
		assert.Equal(t, "warning", record["severity"])
		assert.Equal(t, "Cannot ship to ZZ", record["message"])
	})

	t.Run("debug is suppressed at info level", func(t *testing.T) {
		buf := &bytes.Buffer{}
		b := newBackend("text", "info")
		b.SetOutput(buf)
		sut := logrusLogger{componentName: "x", entry: b.WithField("component", "x")}

		sut.Log(context.Background(), "", SeverityDebug, "hidden")

		assert.Empty(t, buf.String())
	})

	t.Run("unknown level falls back to info", func(t *testing.T) {
		assert.Equal(t, logrus.InfoLevel, newBackend("", "nonsense").GetLevel())
	})
}
