package telemetry

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
)

func TestInitTracer(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	shutdown, err := InitTracer("update-webhooks-test", &buf, logger)
	if err != nil {
		t.Fatalf("InitTracer() error = %v", err)
	}

	_, span := Tracer().Start(context.Background(), "extract")
	span.End()

	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown() error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "\"Name\": \"extract\"") {
		t.Errorf("exported spans missing extract span:\n%s", out)
	}
	if !strings.Contains(out, "update-webhooks-test") {
		t.Errorf("exported spans missing service name:\n%s", out)
	}
}
