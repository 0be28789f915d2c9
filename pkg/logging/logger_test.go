// pkg/logging/logger_test.go
package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestLogger_IncludesCorrelationID(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithOutput(&buf)

	ctx := WithCorrelationID(context.Background(), "abc123")
	logger.Info(ctx, "game started", "lives", 3)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log output is not valid JSON: %v", err)
	}

	if entry["correlation_id"] != "abc123" {
		t.Errorf("correlation_id = %v, want abc123", entry["correlation_id"])
	}
	if entry["msg"] != "game started" {
		t.Errorf("msg = %v, want 'game started'", entry["msg"])
	}
	if entry["lives"] != float64(3) {
		t.Errorf("lives = %v, want 3", entry["lives"])
	}
}

func TestLogger_NoCorrelationIDWithoutContext(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithOutput(&buf)

	logger.Info(context.Background(), "plain message")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log output is not valid JSON: %v", err)
	}

	if _, present := entry["correlation_id"]; present {
		t.Error("correlation_id should be absent without one in context")
	}
}

func TestLogger_ErrorIncludesErrorField(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithOutput(&buf)

	logger.Error(context.Background(), "load failed", errors.New("file missing"))

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log output is not valid JSON: %v", err)
	}

	if entry["error"] != "file missing" {
		t.Errorf("error = %v, want 'file missing'", entry["error"])
	}
}

func TestGenerateCorrelationID(t *testing.T) {
	id1 := GenerateCorrelationID()
	id2 := GenerateCorrelationID()

	if len(id1) != 16 {
		t.Errorf("correlation ID length = %d, want 16 hex chars", len(id1))
	}
	if id1 == id2 {
		t.Error("consecutive correlation IDs should differ")
	}
}

func TestGetCorrelationID_Empty(t *testing.T) {
	if id := GetCorrelationID(context.Background()); id != "" {
		t.Errorf("GetCorrelationID() = %q, want empty", id)
	}
}

func TestWithCorrelationID_GeneratesWhenEmpty(t *testing.T) {
	ctx := WithCorrelationID(context.Background(), "")

	if GetCorrelationID(ctx) == "" {
		t.Error("WithCorrelationID(\"\") should generate an ID")
	}
}
