package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestLoggerRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.DebugLevel)

	ctx := withLogger(context.Background(), logger)
	got := loggerFromContext(ctx)
	got.Debug("hello")

	if !strings.Contains(buf.String(), "hello") {
		t.Errorf("expected log output, got %q", buf.String())
	}
}

func TestLoggerFromContext_Fallback(t *testing.T) {
	if loggerFromContext(context.Background()) == nil {
		t.Fatal("loggerFromContext must never return nil")
	}
}

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)
	logger.Debug("invisible")

	if buf.Len() != 0 {
		t.Errorf("debug output should be filtered at info level, got %q", buf.String())
	}
}

func TestConfigRoundTrip(t *testing.T) {
	cfg := config{Endpoint: "https://example.com", TimeoutSeconds: 7}
	got := configFromContext(withConfig(context.Background(), cfg))
	if got != cfg {
		t.Errorf("configFromContext = %+v, want %+v", got, cfg)
	}
}

func TestConfigFromContext_Fallback(t *testing.T) {
	got := configFromContext(context.Background())
	if got.Endpoint == "" {
		t.Error("fallback config should carry the default endpoint")
	}
}
