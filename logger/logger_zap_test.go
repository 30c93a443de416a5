package logger_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/golangid/orderpush/logger"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func initBuffer() *bytes.Buffer {
	buf := new(bytes.Buffer)
	logger.InitZap(logger.OptionSetWriter(buf))
	return buf
}

func TestLog(t *testing.T) {
	buf := initBuffer()

	logger.Log(zapcore.WarnLevel, "delivery dropped", "realtime", "conn-1")

	assert.Contains(t, buf.String(), `"message":"delivery dropped"`)
	assert.Contains(t, buf.String(), `"context":"realtime"`)
	assert.Contains(t, buf.String(), `"scope":"conn-1"`)
	assert.Contains(t, buf.String(), `"level":"WARN"`)
}

func TestLogWithField(t *testing.T) {
	buf := initBuffer()

	logger.LogWithField(zapcore.InfoLevel, map[string]interface{}{
		"message": "fanout",
		"orderNo": "017",
	})

	assert.Contains(t, buf.String(), "fanout")
	assert.Contains(t, buf.String(), `"orderNo":"017"`)
}

func TestFormatHelpers(t *testing.T) {
	buf := initBuffer()

	logger.LogEf("formatted error: %s", "boom")
	logger.LogIf("formatted info: %d", 17)
	logger.LogWf("formatted warn: %s", "slow")
	logger.LogIfError(io.EOF)
	logger.LogIfError(nil)

	out := buf.String()
	assert.Contains(t, out, "formatted error: boom")
	assert.Contains(t, out, "formatted info: 17")
	assert.Contains(t, out, "formatted warn: slow")
	assert.Contains(t, out, "EOF")
	assert.Equal(t, 4, bytes.Count(buf.Bytes(), []byte("\n")))
}

func TestOptionSetLevel(t *testing.T) {
	buf := new(bytes.Buffer)
	logger.InitZap(logger.OptionSetWriter(buf), logger.OptionSetLevel(zapcore.WarnLevel))

	logger.LogI("hidden")
	logger.LogW("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}
