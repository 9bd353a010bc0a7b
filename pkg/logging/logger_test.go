package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestNewLogger_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&Config{
		Level:       LevelInfo,
		ServiceName: "stitch-test",
		JSONFormat:  true,
		Output:      &buf,
	})

	log.Info("stitched file", F("file", "a.json"), F("blocks", 3))

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log output is not JSON: %v", err)
	}
	if entry["message"] != "stitched file" {
		t.Errorf("message = %v, want %q", entry["message"], "stitched file")
	}
	if entry["service_name"] != "stitch-test" {
		t.Errorf("service_name = %v, want stitch-test", entry["service_name"])
	}
	if entry["file"] != "a.json" {
		t.Errorf("file = %v, want a.json", entry["file"])
	}
	if entry["blocks"] != float64(3) {
		t.Errorf("blocks = %v, want 3", entry["blocks"])
	}
}

func TestNewLogger_LevelFiltersDebug(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&Config{Level: LevelInfo, JSONFormat: true, Output: &buf})

	log.Debug("should not appear")
	if buf.Len() != 0 {
		t.Errorf("debug message logged at info level: %s", buf.String())
	}

	log.Info("should appear")
	if !strings.Contains(buf.String(), "should appear") {
		t.Errorf("info message missing: %s", buf.String())
	}
}

func TestWith_AttachesFieldsToSubsequentLogs(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&Config{Level: LevelDebug, JSONFormat: true, Output: &buf})

	runLog := log.With(F("run_id", "abc-123"))
	runLog.Info("first")

	if !strings.Contains(buf.String(), `"run_id":"abc-123"`) {
		t.Errorf("run_id field missing: %s", buf.String())
	}
}

func TestErr_Field(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&Config{Level: LevelInfo, JSONFormat: true, Output: &buf})

	log.Error("stitch failed", Err(errors.New("stream desynchronization")))

	if !strings.Contains(buf.String(), "stream desynchronization") {
		t.Errorf("error field missing: %s", buf.String())
	}
}

func TestNopLogger_DiscardsEverything(t *testing.T) {
	log := NewNopLogger()
	// Must not panic and With must return a usable logger.
	log.With(F("k", "v")).Info("ignored")
	log.Debug("ignored")
	log.Error("ignored", Err(errors.New("x")))
}
