package jsonlog

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
)

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer

	t.Run("below minimum level is discarded", func(t *testing.T) {
		buf.Reset()
		l := New(&buf, LevelError)
		l.PrintInfo("ignored", nil)
		if buf.Len() != 0 {
			t.Errorf("expected no output, got %q", buf.String())
		}
	})

	t.Run("info entry carries properties", func(t *testing.T) {
		buf.Reset()
		l := New(&buf, LevelInfo)
		l.PrintInfo("starting server", map[string]string{"addr": ":4000", "env": "development"})
		var entry struct {
			Level      string            `json:"level"`
			Message    string            `json:"message"`
			Properties map[string]string `json:"properties"`
			Trace      string            `json:"trace"`
		}
		if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
			t.Fatalf("invalid JSON log line: %v", err)
		}
		if entry.Level != "INFO" || entry.Message != "starting server" {
			t.Errorf("entry = %+v, want INFO starting server", entry)
		}
		if entry.Properties["addr"] != ":4000" {
			t.Errorf("addr property = %q, want %q", entry.Properties["addr"], ":4000")
		}
		if entry.Trace != "" {
			t.Errorf("info entry should not carry a stack trace")
		}
	})

	t.Run("error entry carries stack trace", func(t *testing.T) {
		buf.Reset()
		l := New(&buf, LevelInfo)
		l.PrintError(errors.New("boom"), nil)
		var entry struct {
			Level string `json:"level"`
			Trace string `json:"trace"`
		}
		if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
			t.Fatalf("invalid JSON log line: %v", err)
		}
		if entry.Level != "ERROR" {
			t.Errorf("level = %q, want ERROR", entry.Level)
		}
		if entry.Trace == "" {
			t.Errorf("error entry should carry a stack trace")
		}
	})

	t.Run("write logs at error level", func(t *testing.T) {
		buf.Reset()
		l := New(&buf, LevelInfo)
		if _, err := l.Write([]byte("http server error")); err != nil {
			t.Fatal(err)
		}
		var entry struct {
			Level   string `json:"level"`
			Message string `json:"message"`
		}
		if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
			t.Fatalf("invalid JSON log line: %v", err)
		}
		if entry.Level != "ERROR" || entry.Message != "http server error" {
			t.Errorf("entry = %+v, want ERROR http server error", entry)
		}
	})
}
