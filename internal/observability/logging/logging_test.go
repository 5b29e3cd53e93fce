package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/google/uuid"
)

func TestNewHandler_AddsServiceAndRequestID(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, HandlerConfig{
		Service:     ServiceInfo{Name: "group-matching", Version: "v1.2.3"},
		Environment: EnvProd,
		Module:      Module("matching"),
		Level:       slog.LevelInfo,
	}))

	ctx := WithRequestID(context.Background(), "req-1")
	logger.InfoContext(ctx, "hello", slog.Int("count", 2))

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("failed to decode log line %q: %v", buf.String(), err)
	}

	want := map[string]any{
		"msg":        "hello",
		"service":    "group-matching",
		"version":    "v1.2.3",
		"env":        "prod",
		"module":     "matching",
		"request_id": "req-1",
	}
	for k, v := range want {
		if entry[k] != v {
			t.Errorf("%s = %v, want %v", k, entry[k], v)
		}
	}
	if entry["count"] != float64(2) {
		t.Errorf("count = %v, want 2", entry["count"])
	}
}

func TestNewHandler_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, HandlerConfig{
		Environment: EnvProd,
		Level:       slog.LevelWarn,
	}))

	logger.Info("dropped")
	if buf.Len() != 0 {
		t.Errorf("expected info to be filtered, got %q", buf.String())
	}
}

func TestValidateAndExtractRequestID(t *testing.T) {
	valid := uuid.NewString()
	if got := ValidateAndExtractRequestID(valid); got != valid {
		t.Errorf("valid id replaced: got %q, want %q", got, valid)
	}

	for _, in := range []string{"", "not-a-uuid", "<script>"} {
		got := ValidateAndExtractRequestID(in)
		if got == in {
			t.Errorf("invalid id %q was kept", in)
		}
		if _, err := uuid.Parse(got); err != nil {
			t.Errorf("replacement %q is not a uuid", got)
		}
	}
}
