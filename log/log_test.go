package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestZeroLoggerDiscards(t *testing.T) {
	var logger Logger

	// Must not panic.
	logger.Trace("trace")
	logger.Debug("debug")
	logger.Info("info")
	logger.Warn("warn")
	logger.Error("error")

	if logger.Level() != DefaultLevel {
		t.Errorf("Level() = %v, want %v", logger.Level(), DefaultLevel)
	}
}

func TestMakeWritesMessage(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf)
	logger.Info("hello", slog.String("key", "value"))

	out := buf.String()
	if !strings.Contains(out, "hello") {
		t.Errorf("output missing message: %q", out)
	}

	if !strings.Contains(out, "key=value") {
		t.Errorf("output missing attribute: %q", out)
	}
}

func TestMakeJSONFormat(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithFormat(FormatJSON))
	logger.Info("structured", slog.Int("count", 3))

	var record map[string]any

	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("output is not JSON: %v: %q", err, buf.String())
	}

	if record["msg"] != "structured" {
		t.Errorf("msg = %v, want %q", record["msg"], "structured")
	}

	if record["count"] != float64(3) {
		t.Errorf("count = %v, want 3", record["count"])
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithLevel(LevelError))

	logger.Info("suppressed")

	if buf.Len() != 0 {
		t.Errorf("info message not suppressed: %q", buf.String())
	}

	logger.Error("reported")

	if !strings.Contains(buf.String(), "reported") {
		t.Errorf("error message missing: %q", buf.String())
	}
}

func TestTraceLevelLabel(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithLevel(LevelTrace))
	logger.Trace("fine detail")

	out := buf.String()
	if !strings.Contains(out, "TRACE") {
		t.Errorf("output missing TRACE label: %q", out)
	}

	if strings.Contains(out, "DEBUG-4") {
		t.Errorf("raw slog level leaked: %q", out)
	}
}

func TestWrapOverridesLevel(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithLevel(LevelError))

	wrapped := logger.Wrap(WithLevel(LevelDebug))
	wrapped.Debug("now visible")

	if !strings.Contains(buf.String(), "now visible") {
		t.Errorf("wrapped logger dropped message: %q", buf.String())
	}

	if logger.Level() != LevelError {
		t.Errorf("original logger level changed to %v", logger.Level())
	}
}

func TestWithAddsAttrs(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf).With(slog.String("component", "scan"))
	logger.Info("attached")

	if !strings.Contains(buf.String(), "component=scan") {
		t.Errorf("output missing attached attribute: %q", buf.String())
	}
}

func TestWithTimeLayoutNoneDropsTime(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithTimeLayout("none"))
	logger.Info("timeless")

	if strings.Contains(buf.String(), "time=") {
		t.Errorf("output still has timestamp: %q", buf.String())
	}
}

func TestDefaultConfig(t *testing.T) {
	var buf bytes.Buffer

	Config(WithOutput(&buf), WithLevel(LevelDebug))

	defer Config(WithDefaults(nil), WithLevel(DefaultLevel))

	Debug("package level")

	if !strings.Contains(buf.String(), "package level") {
		t.Errorf("default logger missing message: %q", buf.String())
	}
}
